package quote_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/JMP-BookingService/internal/domain"
	voucherRepo "github.com/m04kA/JMP-BookingService/internal/infra/storage/voucher"
	"github.com/m04kA/JMP-BookingService/internal/pricing"
)

// UseCase use case предварительного расчета стоимости
// Ничего не сохраняет и не списывает: портал показывает клиенту итоговую
// сумму до подтверждения бронирования
type UseCase struct {
	voucherRepo  VoucherRepository
	rates        RatesProvider
	engine       PricingEngine
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	voucherRepo VoucherRepository,
	rates RatesProvider,
	engine PricingEngine,
	logger Logger,
) *UseCase {
	return &UseCase{
		voucherRepo:  voucherRepo,
		rates:        rates,
		engine:       engine,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute рассчитывает стоимость сессии
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuoteBooking: adults=%d, kids=%d, spectators=%d, duration=%d",
		req.Adults, req.Kids, req.Spectators, req.DurationMinutes)

	rates, _, err := uc.rates.Current(ctx)
	if err != nil {
		uc.logger.Error("QuoteBooking: failed to get rates: %v", err)
		return nil, fmt.Errorf("%w: failed to get rates: %v", ErrInternal, err)
	}

	quote, err := uc.engine.Quote(ctx, pricing.QuoteRequest{
		Adults:          req.Adults,
		Kids:            req.Kids,
		Spectators:      req.Spectators,
		DurationMinutes: req.DurationMinutes,
		VoucherCode:     req.VoucherCode,
	}, rates, uc.timeProvider.Now(), uc.voucherLookup)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidInput) {
			uc.logger.Warn("QuoteBooking: invalid input: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("QuoteBooking: failed to compute quote: %v", err)
		return nil, fmt.Errorf("%w: failed to compute quote: %v", ErrInternal, err)
	}

	resp := &Response{
		Subtotal:       quote.Subtotal,
		GST:            quote.GST,
		DiscountAmount: quote.DiscountAmount,
		TotalAmount:    quote.TotalAmount,
		VoucherApplied: quote.VoucherApplied,
	}
	if quote.RejectionReason != nil {
		reason := string(*quote.RejectionReason)
		resp.VoucherRejectionReason = &reason
	}

	return resp, nil
}

// ExecuteParty рассчитывает стоимость party
func (uc *UseCase) ExecuteParty(ctx context.Context, req *PartyRequest) (*PartyResponse, error) {
	uc.logger.Info("QuoteParty: participants=%d, spectators=%d", req.Participants, req.Spectators)

	quote, err := uc.engine.QuoteParty(pricing.PartyQuoteRequest{
		Participants: req.Participants,
		Spectators:   req.Spectators,
	}, domain.DefaultPartyPricingRates())
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidInput) {
			uc.logger.Warn("QuoteParty: invalid input: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("QuoteParty: failed to compute quote: %v", err)
		return nil, fmt.Errorf("%w: failed to compute quote: %v", ErrInternal, err)
	}

	return &PartyResponse{
		Subtotal:      quote.Subtotal,
		GST:           quote.GST,
		TotalAmount:   quote.TotalAmount,
		DepositAmount: quote.DepositAmount,
	}, nil
}

// voucherLookup адаптирует репозиторий под pricing.VoucherLookup
// Отсутствующий voucher не является ошибкой поиска
func (uc *UseCase) voucherLookup(ctx context.Context, code string) (*domain.Voucher, error) {
	voucher, err := uc.voucherRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, voucherRepo.ErrVoucherNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return voucher, nil
}

package create_party_booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/JMP-BookingService/internal/domain"
	"github.com/m04kA/JMP-BookingService/internal/pricing"
)

// UseCase use case для создания party-бронирования
//
// Party рассчитывается по собственным тарифам: фиксированная ставка за
// участника, первые FreeSpectators зрителей бесплатны, vouchers не
// принимаются. Бронирование создается в статусе PENDING и подтверждается
// администратором после внесения депозита
type UseCase struct {
	bookingRepo  BookingRepository
	engine       PricingEngine
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, engine PricingEngine, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		engine:       engine,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// qrPayload данные, которые портал кодирует в QR-код бронирования
type qrPayload struct {
	Reference string `json:"reference"`
	Name      string `json:"name"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	Guests    int    `json:"guests"`
}

// Execute выполняет use case создания party-бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreatePartyBooking: name=%s, date=%s, time=%s, participants=%d, spectators=%d",
		req.Name, req.Date.Format(domain.DateFormat), req.StartTime, req.Participants, req.Spectators)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreatePartyBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что дата не в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreatePartyBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Считаем quote по party-тарифам
	quote, err := uc.engine.QuoteParty(pricing.PartyQuoteRequest{
		Participants: req.Participants,
		Spectators:   req.Spectators,
	}, domain.DefaultPartyPricingRates())
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidInput) {
			uc.logger.Warn("CreatePartyBooking: quote rejected: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("CreatePartyBooking: failed to compute quote: %v", err)
		return nil, fmt.Errorf("%w: failed to compute quote: %v", ErrInternal, err)
	}

	deposit := quote.DepositAmount

	// 4. Собираем бронирование
	// Участники party хранятся в колонке adults, разбивки на взрослых
	// и детей для party нет
	booking := &domain.Booking{
		Reference:       uuid.NewString(),
		Type:            domain.TypeParty,
		Name:            req.Name,
		Email:           normalizeEmail(req.Email),
		Phone:           req.Phone,
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: domain.PartyDurationMinutes,
		Adults:          req.Participants,
		Spectators:      req.Spectators,
		Subtotal:        quote.Subtotal,
		GST:             quote.GST,
		TotalAmount:     quote.TotalAmount,
		DepositAmount:   &deposit,
		BookingStatus:   domain.StatusPending,
		PaymentStatus:   domain.PaymentPending,
		WaiverStatus:    domain.WaiverPending,
	}

	payload, err := buildQRPayload(booking)
	if err != nil {
		uc.logger.Error("CreatePartyBooking: failed to build QR payload: %v", err)
		return nil, fmt.Errorf("%w: failed to build QR payload: %v", ErrInternal, err)
	}
	booking.QRPayload = payload

	// 5. Сохраняем бронирование
	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreatePartyBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreatePartyBooking: successfully created booking id=%d reference=%s deposit=%s",
		created.ID, created.Reference, deposit)

	return fromDomainBooking(created), nil
}

// buildQRPayload собирает JSON для QR-кода бронирования
func buildQRPayload(b *domain.Booking) (*string, error) {
	raw, err := json.Marshal(qrPayload{
		Reference: b.Reference,
		Name:      b.Name,
		Date:      b.Date.Format(domain.DateFormat),
		StartTime: b.StartTime.String(),
		Guests:    b.TotalGuests(),
	})
	if err != nil {
		return nil, err
	}
	payload := string(raw)
	return &payload, nil
}

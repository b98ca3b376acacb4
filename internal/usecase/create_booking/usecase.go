package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/JMP-BookingService/internal/domain"
	voucherRepo "github.com/m04kA/JMP-BookingService/internal/infra/storage/voucher"
	"github.com/m04kA/JMP-BookingService/internal/pricing"
)

// UseCase use case для создания бронирования сессии
type UseCase struct {
	bookingRepo  BookingRepository
	voucherRepo  VoucherRepository
	rates        RatesProvider
	engine       PricingEngine
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	voucherRepo VoucherRepository,
	rates RatesProvider,
	engine PricingEngine,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		voucherRepo:  voucherRepo,
		rates:        rates,
		engine:       engine,
		txManager:    txManager,
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

// Execute выполняет use case создания бронирования
//
// Расчет суммы, вставка бронирования и списание voucher выполняются в одной
// сериализуемой транзакции. Снимок voucher, прошедший проверки при расчете,
// перепроверяется атомарным условным UPDATE при списании: если к моменту
// коммита voucher исчерпан или отключен, транзакция откатывается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: name=%s, date=%s, time=%s, adults=%d, kids=%d, spectators=%d",
		req.Name, req.Date.Format(domain.DateFormat), req.StartTime, req.Adults, req.Kids, req.Spectators)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем, что дата не в прошлом
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем актуальные тарифы
	rates, isDefault, err := uc.rates.Current(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get rates: %v", err)
		return nil, fmt.Errorf("%w: failed to get rates: %v", ErrInternal, err)
	}
	if isDefault {
		uc.logger.Info("CreateBooking: using default pricing rates")
	}

	quoteReq := pricing.QuoteRequest{
		Adults:          req.Adults,
		Kids:            req.Kids,
		Spectators:      req.Spectators,
		DurationMinutes: req.DurationMinutes,
		VoucherCode:     req.VoucherCode,
	}

	var result *domain.Booking
	var rejectionReason *string

	// 5. Расчет, вставка и списание voucher в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Считаем quote со снимком voucher из БД
		quote, err := uc.engine.Quote(txCtx, quoteReq, rates, now, uc.voucherLookup)
		if err != nil {
			if errors.Is(err, pricing.ErrInvalidInput) {
				uc.logger.Warn("CreateBooking: quote rejected: %v", err)
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			uc.logger.Error("CreateBooking: failed to compute quote: %v", err)
			return fmt.Errorf("%w: failed to compute quote: %v", ErrInternal, err)
		}

		// Отклоненный voucher не блокирует бронирование, скидка просто
		// не применяется, а причина возвращается клиенту
		if quote.RejectionReason != nil {
			reason := string(*quote.RejectionReason)
			rejectionReason = &reason
			uc.logger.Info("CreateBooking: voucher rejected: %s", reason)
		}

		// 5.2. Собираем бронирование с зафиксированными суммами
		booking := &domain.Booking{
			Reference:       uuid.NewString(),
			Type:            domain.TypeSession,
			Name:            req.Name,
			Email:           normalizeEmail(req.Email),
			Phone:           req.Phone,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: req.DurationMinutes,
			Adults:          req.Adults,
			Kids:            req.Kids,
			Spectators:      req.Spectators,
			Subtotal:        quote.Subtotal,
			GST:             quote.GST,
			DiscountAmount:  quote.DiscountAmount,
			TotalAmount:     quote.TotalAmount,
			VoucherCode:     quote.VoucherApplied,
			BookingStatus:   domain.StatusConfirmed,
			PaymentStatus:   domain.PaymentPending,
			WaiverStatus:    domain.WaiverPending,
		}

		payload, err := buildQRPayload(booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to build QR payload: %v", err)
			return fmt.Errorf("%w: failed to build QR payload: %v", ErrInternal, err)
		}
		booking.QRPayload = payload

		// 5.3. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 5.4. Списываем voucher атомарным условным UPDATE
		if quote.VoucherApplied != nil {
			if err := uc.voucherRepo.RedeemIfEligible(txCtx, *quote.VoucherApplied, now); err != nil {
				if errors.Is(err, voucherRepo.ErrNotEligible) {
					uc.logger.Warn("CreateBooking: voucher %s no longer eligible at commit", *quote.VoucherApplied)
					return ErrVoucherNoLongerEligible
				}
				uc.logger.Error("CreateBooking: failed to redeem voucher %s: %v", *quote.VoucherApplied, err)
				return fmt.Errorf("%w: failed to redeem voucher: %v", ErrInternal, err)
			}
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d reference=%s total=%s",
		result.ID, result.Reference, result.TotalAmount)

	return fromDomainBooking(result, rejectionReason), nil
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

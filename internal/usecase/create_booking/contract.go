package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/JMP-BookingService/internal/domain"
	"github.com/m04kA/JMP-BookingService/internal/pricing"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// VoucherRepository интерфейс репозитория vouchers
// RedeemIfEligible инкрементирует used_count одним условным UPDATE,
// снимок из GetByCode не является гарантией применимости на момент коммита
type VoucherRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Voucher, error)
	RedeemIfEligible(ctx context.Context, code string, now time.Time) error
}

// RatesProvider интерфейс источника актуальных тарифов
type RatesProvider interface {
	Current(ctx context.Context) (domain.PricingRates, bool, error)
}

// PricingEngine интерфейс pricing engine
type PricingEngine interface {
	Quote(
		ctx context.Context,
		req pricing.QuoteRequest,
		rates domain.PricingRates,
		now time.Time,
		lookup pricing.VoucherLookup,
	) (*pricing.Quote, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

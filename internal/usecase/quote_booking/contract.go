package quote_booking

import (
	"context"
	"time"

	"github.com/m04kA/JMP-BookingService/internal/domain"
	"github.com/m04kA/JMP-BookingService/internal/pricing"
)

// VoucherRepository интерфейс репозитория vouchers
// Quote только читает снимок, списание происходит при создании бронирования
type VoucherRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Voucher, error)
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
	QuoteParty(req pricing.PartyQuoteRequest, rates domain.PartyPricingRates) (*pricing.PartyQuote, error)
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

package rates

import (
	"context"

	"github.com/m04kA/JMP-BookingService/internal/domain"
)

// RatesRepository интерфейс репозитория тарифов
type RatesRepository interface {
	Get(ctx context.Context) (*domain.PricingRates, error)
	Upsert(ctx context.Context, rates *domain.PricingRates) (*domain.PricingRates, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

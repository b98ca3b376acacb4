package vouchers

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/JMP-BookingService/internal/domain"
	voucherRepo "github.com/m04kA/JMP-BookingService/internal/infra/storage/voucher"
	"github.com/m04kA/JMP-BookingService/internal/pricing"
)

// VoucherRepository интерфейс репозитория vouchers
type VoucherRepository interface {
	Create(ctx context.Context, voucher *domain.Voucher) (*domain.Voucher, error)
	GetByCode(ctx context.Context, code string) (*domain.Voucher, error)
	List(ctx context.Context, isActive *bool, limit, offset uint64) ([]*domain.Voucher, error)
	Count(ctx context.Context, isActive *bool) (int64, error)
	Update(ctx context.Context, code string, update voucherRepo.VoucherUpdate) (*domain.Voucher, error)
	Delete(ctx context.Context, code string) error
}

// PricingEngine интерфейс pricing engine для проверки voucher
type PricingEngine interface {
	ValidateVoucher(voucher *domain.Voucher, orderAmount decimal.Decimal, now time.Time) (decimal.Decimal, *pricing.RejectionReason)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

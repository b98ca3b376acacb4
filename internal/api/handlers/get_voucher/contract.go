package get_voucher

import (
	"context"

	"github.com/m04kA/JMP-BookingService/internal/service/vouchers/models"
)

type VoucherService interface {
	GetByCode(ctx context.Context, code string) (*models.VoucherResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

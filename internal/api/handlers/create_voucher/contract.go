package create_voucher

import (
	"context"

	"github.com/m04kA/JMP-BookingService/internal/service/vouchers/models"
)

type VoucherService interface {
	Create(ctx context.Context, req *models.CreateVoucherRequest) (*models.VoucherResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

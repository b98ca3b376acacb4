package update_voucher

import (
	"context"

	"github.com/m04kA/JMP-BookingService/internal/service/vouchers/models"
)

type VoucherService interface {
	Update(ctx context.Context, code string, req *models.UpdateVoucherRequest) (*models.VoucherResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

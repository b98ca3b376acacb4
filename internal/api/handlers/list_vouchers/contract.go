package list_vouchers

import (
	"context"

	"github.com/m04kA/JMP-BookingService/internal/service/vouchers/models"
)

type VoucherService interface {
	List(ctx context.Context, req *models.ListVouchersRequest) (*models.VoucherListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

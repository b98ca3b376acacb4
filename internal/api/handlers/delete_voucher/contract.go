package delete_voucher

import (
	"context"
)

type VoucherService interface {
	Delete(ctx context.Context, code string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package validate_voucher

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/JMP-BookingService/internal/service/vouchers/models"
)

// ValidateVoucherRequest HTTP request model
type ValidateVoucherRequest struct {
	Code        string          `json:"code"`
	OrderAmount decimal.Decimal `json:"orderAmount"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *ValidateVoucherRequest) ToServiceRequest() *models.ValidateVoucherRequest {
	return &models.ValidateVoucherRequest{
		Code:        r.Code,
		OrderAmount: r.OrderAmount,
	}
}

package create_voucher

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/JMP-BookingService/internal/service/vouchers/models"
)

// CreateVoucherRequest HTTP request model
type CreateVoucherRequest struct {
	Code           string           `json:"code"`
	Description    *string          `json:"description,omitempty"`
	DiscountType   string           `json:"discountType"` // PERCENTAGE | FIXED
	DiscountValue  decimal.Decimal  `json:"discountValue"`
	MinOrderAmount *decimal.Decimal `json:"minOrderAmount,omitempty"`
	ExpiryDate     *time.Time       `json:"expiryDate,omitempty"`
	UsageLimit     *int64           `json:"usageLimit,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateVoucherRequest) ToServiceRequest() *models.CreateVoucherRequest {
	return &models.CreateVoucherRequest{
		Code:           r.Code,
		Description:    r.Description,
		DiscountType:   r.DiscountType,
		DiscountValue:  r.DiscountValue,
		MinOrderAmount: r.MinOrderAmount,
		ExpiryDate:     r.ExpiryDate,
		UsageLimit:     r.UsageLimit,
	}
}

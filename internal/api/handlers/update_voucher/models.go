package update_voucher

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/JMP-BookingService/internal/service/vouchers/models"
)

// UpdateVoucherRequest HTTP request model
// nil-поля не изменяются
type UpdateVoucherRequest struct {
	Description    *string          `json:"description,omitempty"`
	IsActive       *bool            `json:"isActive,omitempty"`
	DiscountType   *string          `json:"discountType,omitempty"`
	DiscountValue  *decimal.Decimal `json:"discountValue,omitempty"`
	MinOrderAmount *decimal.Decimal `json:"minOrderAmount,omitempty"`
	ExpiryDate     *time.Time       `json:"expiryDate,omitempty"`
	UsageLimit     *int64           `json:"usageLimit,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateVoucherRequest) ToServiceRequest() *models.UpdateVoucherRequest {
	return &models.UpdateVoucherRequest{
		Description:    r.Description,
		IsActive:       r.IsActive,
		DiscountType:   r.DiscountType,
		DiscountValue:  r.DiscountValue,
		MinOrderAmount: r.MinOrderAmount,
		ExpiryDate:     r.ExpiryDate,
		UsageLimit:     r.UsageLimit,
	}
}

package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/JMP-BookingService/internal/domain"
)

// CreateVoucherRequest модель запроса создания voucher
type CreateVoucherRequest struct {
	Code           string
	Description    *string
	DiscountType   string
	DiscountValue  decimal.Decimal
	MinOrderAmount *decimal.Decimal
	ExpiryDate     *time.Time
	UsageLimit     *int64
}

// UpdateVoucherRequest модель запроса обновления voucher
// nil-поля не изменяются
type UpdateVoucherRequest struct {
	Description    *string
	IsActive       *bool
	DiscountType   *string
	DiscountValue  *decimal.Decimal
	MinOrderAmount *decimal.Decimal
	ExpiryDate     *time.Time
	UsageLimit     *int64
}

// ListVouchersRequest модель запроса списка vouchers
type ListVouchersRequest struct {
	IsActive *bool
	Limit    uint64
	Offset   uint64
}

// ValidateVoucherRequest модель запроса проверки voucher
// OrderAmount - сумма заказа, против которой проверяется voucher
type ValidateVoucherRequest struct {
	Code        string
	OrderAmount decimal.Decimal
}

// ValidateVoucherResponse результат проверки voucher
// Valid=false сопровождается причиной отказа
type ValidateVoucherResponse struct {
	Valid           bool             `json:"valid"`
	Code            string           `json:"code"`
	DiscountType    *string          `json:"discountType,omitempty"`
	DiscountValue   *decimal.Decimal `json:"discountValue,omitempty"`
	DiscountAmount  *decimal.Decimal `json:"discountAmount,omitempty"`
	RejectionReason *string          `json:"rejectionReason,omitempty"`
}

// VoucherResponse ответ с данными voucher
type VoucherResponse struct {
	ID             int64            `json:"id"`
	Code           string           `json:"code"`
	Description    *string          `json:"description,omitempty"`
	IsActive       bool             `json:"isActive"`
	DiscountType   string           `json:"discountType"`
	DiscountValue  decimal.Decimal  `json:"discountValue"`
	MinOrderAmount *decimal.Decimal `json:"minOrderAmount,omitempty"`
	ExpiryDate     *time.Time       `json:"expiryDate,omitempty"`
	UsageLimit     *int64           `json:"usageLimit,omitempty"`
	UsedCount      int64            `json:"usedCount"`
	RemainingUses  *int64           `json:"remainingUses,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// VoucherListResponse ответ со списком vouchers
type VoucherListResponse struct {
	Vouchers []*VoucherResponse `json:"vouchers"`
	Total    int64              `json:"total"`
	Limit    uint64             `json:"limit"`
	Offset   uint64             `json:"offset"`
}

// FromDomainVoucher конвертирует domain.Voucher в ответ сервиса
func FromDomainVoucher(v *domain.Voucher) *VoucherResponse {
	return &VoucherResponse{
		ID:             v.ID,
		Code:           v.Code,
		Description:    v.Description,
		IsActive:       v.IsActive,
		DiscountType:   string(v.DiscountType),
		DiscountValue:  v.DiscountValue,
		MinOrderAmount: v.MinOrderAmount,
		ExpiryDate:     v.ExpiryDate,
		UsageLimit:     v.UsageLimit,
		UsedCount:      v.UsedCount,
		RemainingUses:  v.RemainingUses(),
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

// FromDomainVoucherList конвертирует список domain.Voucher в ответ сервиса
func FromDomainVoucherList(vouchers []*domain.Voucher, total int64, limit, offset uint64) *VoucherListResponse {
	result := make([]*VoucherResponse, 0, len(vouchers))
	for _, v := range vouchers {
		result = append(result, FromDomainVoucher(v))
	}
	return &VoucherListResponse{
		Vouchers: result,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}
}

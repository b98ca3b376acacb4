package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DiscountType represents the kind of voucher discount
type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFixed      DiscountType = "FIXED"
)

// IsValid returns true if the discount type is a known value
func (t DiscountType) IsValid() bool {
	return t == DiscountPercentage || t == DiscountFixed
}

// Voucher represents a discount code with eligibility constraints.
// A voucher loaded from storage is a point-in-time snapshot: the usage
// counter may advance concurrently, so redemption must go through the
// repository's conditional increment, never through a read-then-write.
type Voucher struct {
	ID             int64
	Code           string // unique, stored upper-case
	Description    *string
	IsActive       bool
	DiscountType   DiscountType
	DiscountValue  decimal.Decimal
	MinOrderAmount *decimal.Decimal
	ExpiryDate     *time.Time
	UsageLimit     *int64
	UsedCount      int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsExpired returns true if the voucher has an expiry date in the past
func (v *Voucher) IsExpired(now time.Time) bool {
	return v.ExpiryDate != nil && v.ExpiryDate.Before(now)
}

// IsExhausted returns true if one more use would exceed the usage limit
func (v *Voucher) IsExhausted() bool {
	return v.UsageLimit != nil && v.UsedCount >= *v.UsageLimit
}

// RemainingUses returns how many redemptions are left, or nil if unlimited
func (v *Voucher) RemainingUses() *int64 {
	if v.UsageLimit == nil {
		return nil
	}
	remaining := *v.UsageLimit - v.UsedCount
	if remaining < 0 {
		remaining = 0
	}
	return &remaining
}

// NormalizeVoucherCode normalizes a user-supplied voucher code
// Codes are case-insensitive and stored upper-case
func NormalizeVoucherCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

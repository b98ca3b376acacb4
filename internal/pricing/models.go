package pricing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/m04kA/JMP-BookingService/internal/domain"
)

// QuoteRequest input for a session quote
type QuoteRequest struct {
	Adults          int
	Kids            int
	Spectators      int
	DurationMinutes int     // one of domain.RecognizedDurations
	VoucherCode     *string // optional, case-insensitive
}

// PartyQuoteRequest input for a party quote
type PartyQuoteRequest struct {
	Participants int
	Spectators   int
}

// RejectionReason explains why a supplied voucher was not applied.
// A rejected voucher is an expected business outcome, not an error:
// the quote is still produced, without the discount.
type RejectionReason string

const (
	RejectionNotFound     RejectionReason = "NOT_FOUND"
	RejectionInactive     RejectionReason = "INACTIVE"
	RejectionExpired      RejectionReason = "EXPIRED"
	RejectionLimitReached RejectionReason = "LIMIT_REACHED"
	RejectionBelowMinimum RejectionReason = "BELOW_MINIMUM"
)

// Quote the computed pricing result for one booking request.
// Immutable value; amounts are rounded to domain.MoneyScale.
type Quote struct {
	Subtotal       decimal.Decimal
	GST            decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal

	// VoucherApplied is the normalized code that was actually applied,
	// nil when no voucher was supplied or the voucher was rejected
	VoucherApplied  *string
	RejectionReason *RejectionReason
}

// PartyQuote the computed pricing result for a party request
type PartyQuote struct {
	Subtotal      decimal.Decimal
	GST           decimal.Decimal
	TotalAmount   decimal.Decimal
	DepositAmount decimal.Decimal
}

// VoucherLookup supplies a point-in-time voucher snapshot by normalized code.
// Returns (nil, nil) when no voucher with that code exists. The snapshot must
// be re-validated atomically at commit time (see the voucher repository's
// RedeemIfEligible); the engine only uses it to compute the quote.
type VoucherLookup func(ctx context.Context, code string) (*domain.Voucher, error)

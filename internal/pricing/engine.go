package pricing

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/JMP-BookingService/internal/domain"
)

var oneHundred = decimal.NewFromInt(100)

// Engine computes price quotes for bookings.
//
// The engine is stateless and re-entrant: it holds no mutable state, performs
// no I/O of its own and may be called concurrently without coordination.
// Identical inputs always produce identical quotes. Rates are injected per
// call so tests and per-tenant configurations never touch global state.
//
// All monetary arithmetic uses decimal values; every derived quantity (GST,
// discount) is rounded half-up to domain.MoneyScale exactly once, at the end
// of its computation.
type Engine struct{}

// NewEngine creates a new pricing engine
func NewEngine() *Engine {
	return &Engine{}
}

// Quote computes a session quote.
//
// The voucher lookup returns a point-in-time snapshot; the engine never
// mutates the voucher. Incrementing used_count is the caller's job and must
// happen through an atomic conditional update after the booking is created -
// a snapshot that passed the checks here can become ineligible before commit.
//
// Voucher rejections are reported in Quote.RejectionReason, in a fixed check
// order: NOT_FOUND, INACTIVE, EXPIRED, LIMIT_REACHED, BELOW_MINIMUM. Only
// malformed input and lookup failures are returned as errors.
func (e *Engine) Quote(
	ctx context.Context,
	req QuoteRequest,
	rates domain.PricingRates,
	now time.Time,
	lookup VoucherLookup,
) (*Quote, error) {
	if err := validateQuoteRequest(req); err != nil {
		return nil, err
	}

	subtotal := decimal.NewFromInt(int64(req.Kids)).Mul(rates.ChildRate).
		Add(decimal.NewFromInt(int64(req.Adults)).Mul(rates.AdultRate)).
		Add(decimal.NewFromInt(int64(req.Spectators)).Mul(rates.SpectatorRate))

	// Extended sessions pay the extra hour per participating guest,
	// spectators excluded
	if req.DurationMinutes == domain.ExtendedDurationMinutes {
		subtotal = subtotal.Add(
			decimal.NewFromInt(int64(req.Adults + req.Kids)).Mul(rates.ExtraHourRate))
	}
	subtotal = roundMoney(subtotal)

	gst := roundMoney(subtotal.Mul(rates.GSTRate))
	total := subtotal.Add(gst)

	quote := &Quote{
		Subtotal:       subtotal,
		GST:            gst,
		DiscountAmount: decimal.Zero,
		TotalAmount:    total,
	}

	if req.VoucherCode == nil || domain.NormalizeVoucherCode(*req.VoucherCode) == "" {
		return quote, nil
	}

	code := domain.NormalizeVoucherCode(*req.VoucherCode)

	voucher, err := lookup(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: code=%s: %v", ErrVoucherLookup, code, err)
	}

	if reason := evaluateVoucher(voucher, subtotal, now); reason != nil {
		quote.RejectionReason = reason
		return quote, nil
	}

	discount := rawDiscount(voucher, subtotal)

	// The discount can never exceed the pre-discount total, so the
	// payable amount stays non-negative
	if discount.GreaterThan(total) {
		discount = total
	}

	quote.DiscountAmount = discount
	quote.TotalAmount = total.Sub(discount)
	quote.VoucherApplied = &code

	return quote, nil
}

// QuoteParty computes a party quote.
// The first rates.FreeSpectators spectators are free; parties take no
// vouchers and require a deposit share of the total upfront.
func (e *Engine) QuoteParty(req PartyQuoteRequest, rates domain.PartyPricingRates) (*PartyQuote, error) {
	if err := validatePartyQuoteRequest(req); err != nil {
		return nil, err
	}

	chargeableSpectators := req.Spectators - rates.FreeSpectators
	if chargeableSpectators < 0 {
		chargeableSpectators = 0
	}

	subtotal := decimal.NewFromInt(int64(req.Participants)).Mul(rates.ParticipantRate).
		Add(decimal.NewFromInt(int64(chargeableSpectators)).Mul(rates.ExtraSpectatorRate))
	subtotal = roundMoney(subtotal)

	gst := roundMoney(subtotal.Mul(rates.GSTRate))
	total := subtotal.Add(gst)
	deposit := roundMoney(total.Mul(rates.DepositFraction))

	return &PartyQuote{
		Subtotal:      subtotal,
		GST:           gst,
		TotalAmount:   total,
		DepositAmount: deposit,
	}, nil
}

// ValidateVoucher checks a voucher against an order amount without building
// a full quote. Used by the standalone voucher validation endpoint, where the
// portal already knows the order amount. Returns the clamped discount that
// would apply, or the rejection reason.
func (e *Engine) ValidateVoucher(
	voucher *domain.Voucher,
	orderAmount decimal.Decimal,
	now time.Time,
) (decimal.Decimal, *RejectionReason) {
	if reason := evaluateVoucher(voucher, orderAmount, now); reason != nil {
		return decimal.Zero, reason
	}

	discount := rawDiscount(voucher, orderAmount)
	if discount.GreaterThan(orderAmount) {
		discount = orderAmount
	}

	return discount, nil
}

// evaluateVoucher checks voucher eligibility against the quote subtotal.
// Returns nil when the voucher can be applied. Checks short-circuit in a
// fixed documented order so callers can rely on the reported reason.
func evaluateVoucher(v *domain.Voucher, subtotal decimal.Decimal, now time.Time) *RejectionReason {
	reject := func(r RejectionReason) *RejectionReason { return &r }

	switch {
	case v == nil:
		return reject(RejectionNotFound)
	case !v.IsActive:
		return reject(RejectionInactive)
	case v.IsExpired(now):
		return reject(RejectionExpired)
	case v.IsExhausted():
		return reject(RejectionLimitReached)
	case v.MinOrderAmount != nil && subtotal.LessThan(*v.MinOrderAmount):
		return reject(RejectionBelowMinimum)
	default:
		return nil
	}
}

// rawDiscount computes the unclamped discount amount
func rawDiscount(v *domain.Voucher, subtotal decimal.Decimal) decimal.Decimal {
	if v.DiscountType == domain.DiscountPercentage {
		return roundMoney(subtotal.Mul(v.DiscountValue).Div(oneHundred))
	}
	return roundMoney(v.DiscountValue)
}

func validateQuoteRequest(req QuoteRequest) error {
	if req.Adults < 0 || req.Kids < 0 || req.Spectators < 0 {
		return fmt.Errorf("%w: guest counts must be non-negative", ErrInvalidInput)
	}
	if !domain.IsRecognizedDuration(req.DurationMinutes) {
		return fmt.Errorf("%w: unrecognized duration %d minutes", ErrInvalidInput, req.DurationMinutes)
	}
	return nil
}

func validatePartyQuoteRequest(req PartyQuoteRequest) error {
	if req.Participants < 0 || req.Spectators < 0 {
		return fmt.Errorf("%w: guest counts must be non-negative", ErrInvalidInput)
	}
	return nil
}

// roundMoney rounds to the money scale, half-up
func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(domain.MoneyScale)
}

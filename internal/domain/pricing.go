package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricingRates per-guest session rates, admin-editable.
// Amounts are decimal rupees with paise precision; the engine never
// does arithmetic on binary floats.
type PricingRates struct {
	ID            int64
	AdultRate     decimal.Decimal
	ChildRate     decimal.Decimal
	SpectatorRate decimal.Decimal
	ExtraHourRate decimal.Decimal // per adult and kid when the session is extended
	GSTRate       decimal.Decimal // fractional, e.g. 0.18
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PartyPricingRates rates for party bookings
type PartyPricingRates struct {
	ParticipantRate    decimal.Decimal
	ExtraSpectatorRate decimal.Decimal // charged beyond FreeSpectators
	FreeSpectators     int
	GSTRate            decimal.Decimal
	DepositFraction    decimal.Decimal // share of the total due upfront
}

// DefaultPricingRates returns the built-in session rates
// Used when the settings table has no row yet
func DefaultPricingRates() PricingRates {
	return PricingRates{
		AdultRate:     decimal.NewFromInt(DefaultAdultRate),
		ChildRate:     decimal.NewFromInt(DefaultChildRate),
		SpectatorRate: decimal.NewFromInt(DefaultSpectatorRate),
		ExtraHourRate: decimal.NewFromInt(DefaultExtraHourRate),
		GSTRate:       decimal.New(DefaultGSTRatePercent, -2),
	}
}

// DefaultPartyPricingRates returns the built-in party rates
func DefaultPartyPricingRates() PartyPricingRates {
	return PartyPricingRates{
		ParticipantRate:    decimal.NewFromInt(DefaultPartyParticipantRate),
		ExtraSpectatorRate: decimal.NewFromInt(DefaultPartyExtraSpectatorRate),
		FreeSpectators:     DefaultPartyFreeSpectators,
		GSTRate:            decimal.New(DefaultGSTRatePercent, -2),
		DepositFraction:    decimal.New(DefaultPartyDepositPercent, -2),
	}
}

package domain

// Session durations recognized by the pricing engine.
// 120 minutes is the extended tier with the per-guest extra-hour surcharge;
// any other value is rejected as invalid input.
const (
	BaseDurationMinutes     = 60
	ExtendedDurationMinutes = 120
)

// RecognizedDurations the set of valid session durations
var RecognizedDurations = []int{BaseDurationMinutes, ExtendedDurationMinutes}

// IsRecognizedDuration returns true if the duration is a known tier
func IsRecognizedDuration(minutes int) bool {
	for _, d := range RecognizedDurations {
		if d == minutes {
			return true
		}
	}
	return false
}

// Default session pricing (rupees), used until an admin saves custom rates
const (
	DefaultAdultRate      = 899
	DefaultChildRate      = 500
	DefaultSpectatorRate  = 150
	DefaultExtraHourRate  = 500
	DefaultGSTRatePercent = 18 // stored as percent, applied as 0.18
)

// Default party pricing
const (
	DefaultPartyParticipantRate    = 1500
	DefaultPartyExtraSpectatorRate = 100
	DefaultPartyFreeSpectators     = 10
	DefaultPartyDepositPercent     = 50 // parties require a 50% deposit
	PartyDurationMinutes           = ExtendedDurationMinutes
)

// Business validation constants
const (
	MaxGuestsPerBooking         = 200
	MaxNameLength               = 200
	MaxNotesLength              = 500
	MaxVoucherCodeLength        = 50
	MaxVoucherDescriptionLength = 500
	MaxCancellationReasonLength = 500
)

// MoneyScale number of decimal places for monetary amounts (paise)
// Every derived quantity is rounded half-up to this scale exactly once
const MoneyScale = 2

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Pagination defaults
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

package pricing

import "errors"

var (
	// ErrInvalidInput is returned for malformed quote input:
	// negative guest counts or an unrecognized duration
	ErrInvalidInput = errors.New("pricing: invalid input")

	// ErrVoucherLookup is returned when the voucher lookup collaborator fails
	ErrVoucherLookup = errors.New("pricing: voucher lookup failed")
)

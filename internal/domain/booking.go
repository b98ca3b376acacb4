package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/JMP-BookingService/pkg/types"
)

// BookingType represents the kind of booking
type BookingType string

const (
	TypeSession BookingType = "SESSION"
	TypeParty   BookingType = "PARTY"
	TypeManual  BookingType = "MANUAL"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusCompleted BookingStatus = "COMPLETED"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
	PaymentFailed   PaymentStatus = "FAILED"
)

// WaiverStatus represents the waiver state of a booking
type WaiverStatus string

const (
	WaiverPending WaiverStatus = "PENDING"
	WaiverSigned  WaiverStatus = "SIGNED"
)

// Booking represents a session or party reservation
type Booking struct {
	ID        int64
	Reference string // public UUID embedded into the QR payload
	Type      BookingType

	// Customer contact data (no separate customer service, kept inline)
	Name  string
	Email string // stored lowercased
	Phone string

	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int

	Adults     int
	Kids       int
	Spectators int

	// Quote amounts, computed once at creation and never recalculated
	Subtotal       decimal.Decimal
	GST            decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
	DepositAmount  *decimal.Decimal // parties only, 50% of total
	VoucherCode    *string

	BookingStatus BookingStatus
	PaymentStatus PaymentStatus
	WaiverStatus  WaiverStatus

	QRPayload *string // JSON embedded into the QR code by the portal

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking is in an active state
func (b *Booking) IsActive() bool {
	return b.BookingStatus != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.BookingStatus == StatusPending || b.BookingStatus == StatusConfirmed
}

// TotalGuests returns the number of guests including spectators
func (b *Booking) TotalGuests() int {
	return b.Adults + b.Kids + b.Spectators
}

// ValidBookingStatusTransitions allowed booking status transitions
var ValidBookingStatusTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCancelled: {},
	StatusCompleted: {},
}

// CanTransitionTo returns true if the booking status can move to target
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	for _, allowed := range ValidBookingStatusTransitions[b.BookingStatus] {
		if allowed == target {
			return true
		}
	}
	return false
}

// BookingsFilter filter for listing bookings
type BookingsFilter struct {
	Type             *BookingType   // optional, filter by booking type
	Status           *BookingStatus // optional, filter by booking status
	Date             *time.Time     // optional, exact booking date
	Search           *string        // optional, matches name, email or phone
	IncludeCancelled bool           // include cancelled bookings in the result
	Limit            uint64
	Offset           uint64
}

package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/JMP-BookingService/internal/domain"
	"github.com/m04kA/JMP-BookingService/pkg/types"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
	Type      string `json:"type"`

	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	Date            string           `json:"date"`      // "2026-03-15"
	StartTime       types.TimeString `json:"startTime"` // "10:00"
	DurationMinutes int              `json:"durationMinutes"`

	Adults     int `json:"adults"`
	Kids       int `json:"kids"`
	Spectators int `json:"spectators"`

	Subtotal       decimal.Decimal  `json:"subtotal"`
	GST            decimal.Decimal  `json:"gst"`
	DiscountAmount decimal.Decimal  `json:"discountAmount"`
	TotalAmount    decimal.Decimal  `json:"totalAmount"`
	DepositAmount  *decimal.Decimal `json:"depositAmount,omitempty"`
	VoucherCode    *string          `json:"voucherCode,omitempty"`

	BookingStatus string `json:"bookingStatus"`
	PaymentStatus string `json:"paymentStatus"`
	WaiverStatus  string `json:"waiverStatus"`

	QRPayload *string `json:"qrPayload,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int64              `json:"total"`
	Limit    uint64             `json:"limit"`
	Offset   uint64             `json:"offset"`
}

// ListBookingsRequest модель запроса списка бронирований
type ListBookingsRequest struct {
	Type             *string
	Status           *string
	Date             *time.Time
	Search           *string
	IncludeCancelled bool
	Limit            uint64
	Offset           uint64
}

// CancelBookingRequest модель запроса отмены бронирования
type CancelBookingRequest struct {
	CancellationReason *string
}

// UpdateStatusRequest модель запроса обновления статусов
// nil-поля не изменяются
type UpdateStatusRequest struct {
	BookingStatus *string
	PaymentStatus *string
	WaiverStatus  *string
}

// ToDomainFilter конвертирует запрос списка в domain-фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		Date:             r.Date,
		Search:           r.Search,
		IncludeCancelled: r.IncludeCancelled,
		Limit:            r.Limit,
		Offset:           r.Offset,
	}

	if r.Type != nil {
		bookingType, err := ToDomainBookingType(*r.Type)
		if err != nil {
			return domain.BookingsFilter{}, err
		}
		filter.Type = &bookingType
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.BookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ToDomainBookingType конвертирует строку в domain.BookingType
func ToDomainBookingType(s string) (domain.BookingType, error) {
	switch domain.BookingType(s) {
	case domain.TypeSession, domain.TypeParty, domain.TypeManual:
		return domain.BookingType(s), nil
	default:
		return "", fmt.Errorf("unknown booking type: %s", s)
	}
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled, domain.StatusCompleted:
		return domain.BookingStatus(s), nil
	default:
		return "", fmt.Errorf("unknown booking status: %s", s)
	}
}

// ToDomainPaymentStatus конвертирует строку в domain.PaymentStatus
func ToDomainPaymentStatus(s string) (domain.PaymentStatus, error) {
	switch domain.PaymentStatus(s) {
	case domain.PaymentPending, domain.PaymentPaid, domain.PaymentRefunded, domain.PaymentFailed:
		return domain.PaymentStatus(s), nil
	default:
		return "", fmt.Errorf("unknown payment status: %s", s)
	}
}

// ToDomainWaiverStatus конвертирует строку в domain.WaiverStatus
func ToDomainWaiverStatus(s string) (domain.WaiverStatus, error) {
	switch domain.WaiverStatus(s) {
	case domain.WaiverPending, domain.WaiverSigned:
		return domain.WaiverStatus(s), nil
	default:
		return "", fmt.Errorf("unknown waiver status: %s", s)
	}
}

// FromDomainBooking конвертирует domain.Booking в ответ сервиса
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:                 b.ID,
		Reference:          b.Reference,
		Type:               string(b.Type),
		Name:               b.Name,
		Email:              b.Email,
		Phone:              b.Phone,
		Date:               b.Date.Format(domain.DateFormat),
		StartTime:          b.StartTime,
		DurationMinutes:    b.DurationMinutes,
		Adults:             b.Adults,
		Kids:               b.Kids,
		Spectators:         b.Spectators,
		Subtotal:           b.Subtotal,
		GST:                b.GST,
		DiscountAmount:     b.DiscountAmount,
		TotalAmount:        b.TotalAmount,
		DepositAmount:      b.DepositAmount,
		VoucherCode:        b.VoucherCode,
		BookingStatus:      string(b.BookingStatus),
		PaymentStatus:      string(b.PaymentStatus),
		WaiverStatus:       string(b.WaiverStatus),
		QRPayload:          b.QRPayload,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}
	return resp
}

// FromDomainBookingList конвертирует список domain.Booking в ответ сервиса
func FromDomainBookingList(bookings []*domain.Booking, total int64, limit, offset uint64) *BookingListResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}
}

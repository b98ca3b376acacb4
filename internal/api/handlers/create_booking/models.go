package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/JMP-BookingService/internal/domain"
	createBooking "github.com/m04kA/JMP-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/JMP-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Date            string  `json:"date"`      // "2026-03-15"
	StartTime       string  `json:"startTime"` // "10:00"
	DurationMinutes int     `json:"durationMinutes"`
	Adults          int     `json:"adults"`
	Kids            int     `json:"kids"`
	Spectators      int     `json:"spectators"`
	VoucherCode     *string `json:"voucherCode,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64  `json:"id"`
	Reference       string `json:"reference"`
	Type            string `json:"type"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Adults          int    `json:"adults"`
	Kids            int    `json:"kids"`
	Spectators      int    `json:"spectators"`

	Subtotal       decimal.Decimal `json:"subtotal"`
	GST            decimal.Decimal `json:"gst"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	VoucherCode    *string         `json:"voucherCode,omitempty"`

	VoucherRejectionReason *string `json:"voucherRejectionReason,omitempty"`

	BookingStatus string `json:"bookingStatus"`
	PaymentStatus string `json:"paymentStatus"`
	WaiverStatus  string `json:"waiverStatus"`

	QRPayload *string `json:"qrPayload,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		Adults:          r.Adults,
		Kids:            r.Kids,
		Spectators:      r.Spectators,
		VoucherCode:     r.VoucherCode,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                     resp.ID,
		Reference:              resp.Reference,
		Type:                   resp.Type,
		Name:                   resp.Name,
		Email:                  resp.Email,
		Phone:                  resp.Phone,
		Date:                   resp.Date.Format(domain.DateFormat),
		StartTime:              resp.StartTime.String(),
		DurationMinutes:        resp.DurationMinutes,
		Adults:                 resp.Adults,
		Kids:                   resp.Kids,
		Spectators:             resp.Spectators,
		Subtotal:               resp.Subtotal,
		GST:                    resp.GST,
		DiscountAmount:         resp.DiscountAmount,
		TotalAmount:            resp.TotalAmount,
		VoucherCode:            resp.VoucherCode,
		VoucherRejectionReason: resp.VoucherRejectionReason,
		BookingStatus:          resp.BookingStatus,
		PaymentStatus:          resp.PaymentStatus,
		WaiverStatus:           resp.WaiverStatus,
		QRPayload:              resp.QRPayload,
		CreatedAt:              resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:              resp.UpdatedAt.Format(time.RFC3339),
	}
}

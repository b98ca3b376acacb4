package create_party_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/JMP-BookingService/internal/domain"
	createPartyBooking "github.com/m04kA/JMP-BookingService/internal/usecase/create_party_booking"
	"github.com/m04kA/JMP-BookingService/pkg/types"
)

// CreatePartyBookingRequest HTTP request model
type CreatePartyBookingRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Date         string `json:"date"`      // "2026-03-15"
	StartTime    string `json:"startTime"` // "14:00"
	Participants int    `json:"participants"`
	Spectators   int    `json:"spectators"`
}

// PartyBookingResponse HTTP response model
type PartyBookingResponse struct {
	ID              int64  `json:"id"`
	Reference       string `json:"reference"`
	Type            string `json:"type"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Participants    int    `json:"participants"`
	Spectators      int    `json:"spectators"`

	Subtotal      decimal.Decimal `json:"subtotal"`
	GST           decimal.Decimal `json:"gst"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	DepositAmount decimal.Decimal `json:"depositAmount"`

	BookingStatus string `json:"bookingStatus"`
	PaymentStatus string `json:"paymentStatus"`
	WaiverStatus  string `json:"waiverStatus"`

	QRPayload *string `json:"qrPayload,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreatePartyBookingRequest) ToUseCaseRequest() (*createPartyBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createPartyBooking.Request{
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		Date:         date,
		StartTime:    startTime,
		Participants: r.Participants,
		Spectators:   r.Spectators,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createPartyBooking.Response) *PartyBookingResponse {
	return &PartyBookingResponse{
		ID:              resp.ID,
		Reference:       resp.Reference,
		Type:            resp.Type,
		Name:            resp.Name,
		Email:           resp.Email,
		Phone:           resp.Phone,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Participants:    resp.Participants,
		Spectators:      resp.Spectators,
		Subtotal:        resp.Subtotal,
		GST:             resp.GST,
		TotalAmount:     resp.TotalAmount,
		DepositAmount:   resp.DepositAmount,
		BookingStatus:   resp.BookingStatus,
		PaymentStatus:   resp.PaymentStatus,
		WaiverStatus:    resp.WaiverStatus,
		QRPayload:       resp.QRPayload,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}

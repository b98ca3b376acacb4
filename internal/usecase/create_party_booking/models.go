package create_party_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/JMP-BookingService/internal/domain"
	"github.com/m04kA/JMP-BookingService/pkg/types"
)

// Request модель запроса на создание party-бронирования
type Request struct {
	Name         string           // Имя клиента
	Email        string           // Email клиента
	Phone        string           // Телефон клиента
	Date         time.Time        // Дата мероприятия (без времени)
	StartTime    types.TimeString // Время начала (например, "14:00")
	Participants int              // Количество участников
	Spectators   int              // Количество зрителей
}

// Response модель ответа с созданным party-бронированием
// Party создается в статусе PENDING и требует депозит
type Response struct {
	ID              int64
	Reference       string
	Type            string
	Name            string
	Email           string
	Phone           string
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Participants    int
	Spectators      int

	Subtotal      decimal.Decimal
	GST           decimal.Decimal
	TotalAmount   decimal.Decimal
	DepositAmount decimal.Decimal

	BookingStatus string
	PaymentStatus string
	WaiverStatus  string

	QRPayload *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// fromDomainBooking конвертирует domain.Booking в ответ usecase
func fromDomainBooking(b *domain.Booking) *Response {
	resp := &Response{
		ID:              b.ID,
		Reference:       b.Reference,
		Type:            string(b.Type),
		Name:            b.Name,
		Email:           b.Email,
		Phone:           b.Phone,
		Date:            b.Date,
		StartTime:       b.StartTime,
		DurationMinutes: b.DurationMinutes,
		Participants:    b.Adults,
		Spectators:      b.Spectators,
		Subtotal:        b.Subtotal,
		GST:             b.GST,
		TotalAmount:     b.TotalAmount,
		BookingStatus:   string(b.BookingStatus),
		PaymentStatus:   string(b.PaymentStatus),
		WaiverStatus:    string(b.WaiverStatus),
		QRPayload:       b.QRPayload,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
	if b.DepositAmount != nil {
		resp.DepositAmount = *b.DepositAmount
	}
	return resp
}

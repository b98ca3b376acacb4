package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/JMP-BookingService/internal/domain"
	"github.com/m04kA/JMP-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования сессии
type Request struct {
	Name            string           // Имя клиента
	Email           string           // Email клиента
	Phone           string           // Телефон клиента
	Date            time.Time        // Дата бронирования (без времени)
	StartTime       types.TimeString // Время начала сессии (например, "10:00")
	DurationMinutes int              // Длительность сессии: 60 или 120 минут
	Adults          int              // Количество взрослых
	Kids            int              // Количество детей
	Spectators      int              // Количество зрителей
	VoucherCode     *string          // Код voucher (опционально)
}

// Response модель ответа с созданным бронированием
// Суммы фиксируются на момент создания и больше не пересчитываются
type Response struct {
	ID              int64
	Reference       string // публичный UUID бронирования
	Type            string
	Name            string
	Email           string
	Phone           string
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Adults          int
	Kids            int
	Spectators      int

	Subtotal       decimal.Decimal
	GST            decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
	VoucherCode    *string

	// VoucherRejectionReason причина, по которой переданный voucher не был
	// применен; бронирование при этом создается без скидки
	VoucherRejectionReason *string

	BookingStatus string
	PaymentStatus string
	WaiverStatus  string

	QRPayload *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// fromDomainBooking конвертирует domain.Booking в ответ usecase
func fromDomainBooking(b *domain.Booking, rejectionReason *string) *Response {
	return &Response{
		ID:                     b.ID,
		Reference:              b.Reference,
		Type:                   string(b.Type),
		Name:                   b.Name,
		Email:                  b.Email,
		Phone:                  b.Phone,
		Date:                   b.Date,
		StartTime:              b.StartTime,
		DurationMinutes:        b.DurationMinutes,
		Adults:                 b.Adults,
		Kids:                   b.Kids,
		Spectators:             b.Spectators,
		Subtotal:               b.Subtotal,
		GST:                    b.GST,
		DiscountAmount:         b.DiscountAmount,
		TotalAmount:            b.TotalAmount,
		VoucherCode:            b.VoucherCode,
		VoucherRejectionReason: rejectionReason,
		BookingStatus:          string(b.BookingStatus),
		PaymentStatus:          string(b.PaymentStatus),
		WaiverStatus:           string(b.WaiverStatus),
		QRPayload:              b.QRPayload,
		CreatedAt:              b.CreatedAt,
		UpdatedAt:              b.UpdatedAt,
	}
}

package bookings

import (
	"context"

	"github.com/m04kA/JMP-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Count(ctx context.Context, filter domain.BookingsFilter) (int64, error)
	Cancel(ctx context.Context, id int64, reason *string) error
	UpdateStatuses(ctx context.Context, id int64, bookingStatus *domain.BookingStatus, paymentStatus *domain.PaymentStatus, waiverStatus *domain.WaiverStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

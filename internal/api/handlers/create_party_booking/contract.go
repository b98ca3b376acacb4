package create_party_booking

import (
	"context"

	createPartyBooking "github.com/m04kA/JMP-BookingService/internal/usecase/create_party_booking"
)

type CreatePartyBookingUseCase interface {
	Execute(ctx context.Context, req *createPartyBooking.Request) (*createPartyBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

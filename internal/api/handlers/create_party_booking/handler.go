package create_party_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/JMP-BookingService/internal/api/handlers"
	createPartyBooking "github.com/m04kA/JMP-BookingService/internal/usecase/create_party_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateFormat  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные бронирования"
	msgInvalidDate        = "дата бронирования в прошлом"
)

type Handler struct {
	useCase CreatePartyBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreatePartyBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/party
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreatePartyBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/party - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/party - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createPartyBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/party - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createPartyBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings/party - Invalid booking date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("POST /bookings/party - Failed to create party booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/party - Party booking created: booking_id=%d, reference=%s, deposit=%s",
		result.ID, result.Reference, result.DepositAmount)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

package update_rates

import (
	"errors"
	"net/http"

	"github.com/m04kA/JMP-BookingService/internal/api/handlers"
	"github.com/m04kA/JMP-BookingService/internal/service/rates"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRates       = "некорректные значения тарифов"
)

type Handler struct {
	service RatesService
	logger  Logger
}

func NewHandler(service RatesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/pricing/rates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateRatesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /pricing/rates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, rates.ErrInvalidInput):
			h.logger.Warn("PUT /pricing/rates - Invalid rates: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRates)

		default:
			h.logger.Error("PUT /pricing/rates - Failed to update rates: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /pricing/rates - Rates updated")
	handlers.RespondJSON(w, http.StatusOK, result)
}

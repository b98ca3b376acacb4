package get_rates

import (
	"net/http"

	"github.com/m04kA/JMP-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/pricing/rates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rates, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /pricing/rates - Failed to get rates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /pricing/rates - Rates retrieved, default=%t", rates.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, rates)
}

package validate_voucher

import (
	"errors"
	"net/http"

	"github.com/m04kA/JMP-BookingService/internal/api/handlers"
	"github.com/m04kA/JMP-BookingService/internal/service/vouchers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные параметры проверки voucher"
)

type Handler struct {
	service VoucherService
	logger  Logger
}

func NewHandler(service VoucherService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/vouchers/validate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidateVoucherRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vouchers/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Validate(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, vouchers.ErrInvalidInput):
			h.logger.Warn("POST /vouchers/validate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /vouchers/validate - Failed to validate voucher: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vouchers/validate - Voucher validated: code=%s, valid=%t", result.Code, result.Valid)
	handlers.RespondJSON(w, http.StatusOK, result)
}

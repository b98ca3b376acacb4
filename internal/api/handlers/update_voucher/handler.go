package update_voucher

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/JMP-BookingService/internal/api/handlers"
	"github.com/m04kA/JMP-BookingService/internal/service/vouchers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные voucher"
	msgNotFound           = "voucher не найден"
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

// Handle PUT /api/v1/vouchers/{code}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	code := vars["code"]

	var req UpdateVoucherRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /vouchers/{code} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), code, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, vouchers.ErrInvalidInput):
			h.logger.Warn("PUT /vouchers/{code} - Invalid input: code=%s, error=%v", code, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, vouchers.ErrVoucherNotFound):
			h.logger.Warn("PUT /vouchers/{code} - Voucher not found: code=%s", code)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /vouchers/{code} - Failed to update voucher: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /vouchers/{code} - Voucher updated: code=%s", result.Code)
	handlers.RespondJSON(w, http.StatusOK, result)
}

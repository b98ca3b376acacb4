package delete_voucher

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/JMP-BookingService/internal/api/handlers"
	"github.com/m04kA/JMP-BookingService/internal/service/vouchers"
)

const (
	msgNotFound = "voucher не найден"
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

// Handle DELETE /api/v1/vouchers/{code}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	code := vars["code"]

	err := h.service.Delete(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, vouchers.ErrVoucherNotFound):
			h.logger.Warn("DELETE /vouchers/{code} - Voucher not found: code=%s", code)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /vouchers/{code} - Failed to delete voucher: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /vouchers/{code} - Voucher deleted: code=%s", code)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

package create_voucher

import (
	"errors"
	"net/http"

	"github.com/m04kA/JMP-BookingService/internal/api/handlers"
	"github.com/m04kA/JMP-BookingService/internal/service/vouchers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные voucher"
	msgCodeExists         = "voucher с таким кодом уже существует"
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

// Handle POST /api/v1/vouchers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateVoucherRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vouchers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, vouchers.ErrInvalidInput):
			h.logger.Warn("POST /vouchers - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, vouchers.ErrCodeAlreadyExists):
			h.logger.Warn("POST /vouchers - Code already exists: code=%s", req.Code)
			handlers.RespondConflict(w, msgCodeExists)

		default:
			h.logger.Error("POST /vouchers - Failed to create voucher: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vouchers - Voucher created: id=%d, code=%s", result.ID, result.Code)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

package list_vouchers

import (
	"net/http"
	"strconv"

	"github.com/m04kA/JMP-BookingService/internal/api/handlers"
	"github.com/m04kA/JMP-BookingService/internal/service/vouchers/models"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
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

// Handle GET /api/v1/vouchers
// Query params: isActive, limit, offset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r)
	if err != nil {
		h.logger.Warn("GET /vouchers - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /vouchers - Failed to list vouchers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /vouchers - Listed %d of %d vouchers", len(result.Vouchers), result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// parseQuery разбирает query-параметры списка vouchers
func parseQuery(r *http.Request) (*models.ListVouchersRequest, error) {
	q := r.URL.Query()
	req := &models.ListVouchersRequest{}

	if v := q.Get("isActive"); v != "" {
		isActive, err := strconv.ParseBool(v)
		if err != nil {
			return nil, err
		}
		req.IsActive = &isActive
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.Limit = limit
	}
	if v := q.Get("offset"); v != "" {
		offset, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.Offset = offset
	}

	return req, nil
}

package handler

import (
	"net/http"

	"three-tier-api/internal/model"
	"three-tier-api/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles /api/orders requests.
type OrderHandler struct {
	service service.OrderService
	opts    Options
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, opts Options, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		opts:    opts,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// ServeHTTP lists orders on GET and creates one on POST.
func (h *OrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	}
}

func (h *OrderHandler) list(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, h.opts, err, h.logger)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, model.ListResponse[model.Order]{
		Status: model.StatusSuccess,
		Data:   orders,
		Count:  len(orders),
		Server: h.opts.Server,
	})
}

func (h *OrderHandler) create(w http.ResponseWriter, r *http.Request) {
	var req model.OrderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.Debug().Err(err).Msg("failed to decode request body")
		writeServiceError(w, h.opts, model.ErrOrderFieldsRequired, h.logger)
		return
	}

	id, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.opts, err, h.logger)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, model.OrderCreatedResponse{
		Status:  model.StatusSuccess,
		Message: "Order created successfully",
		OrderID: id,
		Server:  h.opts.Server,
	})
}

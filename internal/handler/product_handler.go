package handler

import (
	"net/http"

	"three-tier-api/internal/model"
	"three-tier-api/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles /api/products requests.
type ProductHandler struct {
	service service.ProductService
	opts    Options
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, opts Options, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		opts:    opts,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// ServeHTTP lists products on GET and creates one on POST.
func (h *ProductHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	}
}

func (h *ProductHandler) list(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, h.opts, err, h.logger)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, model.ListResponse[model.Product]{
		Status: model.StatusSuccess,
		Data:   products,
		Count:  len(products),
		Server: h.opts.Server,
	})
}

func (h *ProductHandler) create(w http.ResponseWriter, r *http.Request) {
	var req model.ProductRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.Debug().Err(err).Msg("failed to decode request body")
		writeServiceError(w, h.opts, model.ErrProductFieldsRequired, h.logger)
		return
	}

	id, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.opts, err, h.logger)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, model.ProductCreatedResponse{
		Status:    model.StatusSuccess,
		Message:   "Product created successfully",
		ProductID: id,
		Server:    h.opts.Server,
	})
}

package handler

import (
	"net/http"

	"three-tier-api/internal/model"
	"three-tier-api/internal/service"

	"github.com/rs/zerolog"
)

// UserHandler handles /api/users requests.
type UserHandler struct {
	service service.UserService
	opts    Options
	logger  zerolog.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(service service.UserService, opts Options, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		opts:    opts,
		logger:  logger.With().Str("handler", "user").Logger(),
	}
}

// ServeHTTP lists users on GET and creates one on POST. Other methods get
// an empty 200 response.
func (h *UserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	}
}

func (h *UserHandler) list(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, h.opts, err, h.logger)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, model.ListResponse[model.User]{
		Status: model.StatusSuccess,
		Data:   users,
		Count:  len(users),
		Server: h.opts.Server,
	})
}

func (h *UserHandler) create(w http.ResponseWriter, r *http.Request) {
	var req model.UserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.Debug().Err(err).Msg("failed to decode request body")
		writeServiceError(w, h.opts, model.ErrUserFieldsRequired, h.logger)
		return
	}

	id, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.opts, err, h.logger)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, model.UserCreatedResponse{
		Status:  model.StatusSuccess,
		Message: "User created successfully",
		UserID:  id,
		Server:  h.opts.Server,
	})
}

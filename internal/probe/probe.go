// Package probe serves the standalone web health endpoint. It reports
// process metadata only and never touches the database.
package probe

import (
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"three-tier-api/internal/middleware"
	"three-tier-api/internal/model"

	"github.com/rs/zerolog"
)

// ServiceName identifies the probe in its envelope.
const ServiceName = "web-frontend"

// Handler answers every path and method with the probe envelope.
type Handler struct {
	server      string
	environment string
	now         func() time.Time
	logger      zerolog.Logger
}

// NewHandler creates a probe handler reporting server and environment.
func NewHandler(server, environment string, logger zerolog.Logger) *Handler {
	return &Handler{
		server:      server,
		environment: environment,
		now:         time.Now,
		logger:      logger.With().Str("handler", "probe").Logger(),
	}
}

// ServeHTTP writes the probe envelope. load_balancer echoes the Host header
// the request arrived with.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	lb := r.Host
	if lb == "" {
		lb = "unknown"
	}

	resp := model.ProbeResponse{
		Status:       model.StatusHealthy,
		Service:      ServiceName,
		Timestamp:    h.now().Format(time.RFC3339),
		Server:       h.server,
		GoVersion:    runtime.Version(),
		LoadBalancer: lb,
		Environment:  h.environment,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Debug().Err(err).Msg("failed to write probe response")
	}
}

// New wraps the probe handler in the probe's middleware chain.
func New(server, environment string, logger zerolog.Logger) http.Handler {
	var handler http.Handler = NewHandler(server, environment, logger)
	handler = middleware.CORS(middleware.ProbePolicy)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recovery(server, false, logger)(handler)

	return handler
}

package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"three-tier-api/internal/config"
	"three-tier-api/internal/model"
	"three-tier-api/internal/service"

	"github.com/rs/zerolog"
)

// ServiceName identifies the API in health and test envelopes.
const ServiceName = "api-backend"

// endpoints is the table advertised by the welcome envelope, in routing
// order.
var endpoints = model.Endpoints{
	{Route: "GET /api/health", Description: "Health check"},
	{Route: "GET /api/test", Description: "Test endpoint"},
	{Route: "GET /api/db-test", Description: "Test database connection"},
	{Route: "GET /api/users", Description: "Get all users"},
	{Route: "POST /api/users", Description: "Create new user"},
	{Route: "GET /api/products", Description: "Get all products"},
	{Route: "POST /api/products", Description: "Create new product"},
	{Route: "GET /api/orders", Description: "Get all orders"},
	{Route: "POST /api/orders", Description: "Create new order"},
	{Route: "GET /api/info", Description: "System information"},
}

// ResourceSampler reports process resource usage.
type ResourceSampler interface {
	Sample(ctx context.Context) model.ResourceInfo
}

// DiagnosticsHandler serves the health, test, db-test, info and welcome
// endpoints.
type DiagnosticsHandler struct {
	service service.DiagnosticsService
	sampler ResourceSampler
	cfg     *config.Config
	opts    Options
	now     func() time.Time
	logger  zerolog.Logger
}

// NewDiagnosticsHandler creates a new diagnostics handler.
func NewDiagnosticsHandler(
	service service.DiagnosticsService,
	sampler ResourceSampler,
	cfg *config.Config,
	logger zerolog.Logger,
) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		service: service,
		sampler: sampler,
		cfg:     cfg,
		opts:    NewOptions(cfg),
		now:     time.Now,
		logger:  logger.With().Str("handler", "diagnostics").Logger(),
	}
}

func (h *DiagnosticsHandler) timestamp() string {
	return h.now().Format(time.RFC3339)
}

// Health handles /api/health. It does not touch the database.
func (h *DiagnosticsHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, model.HealthResponse{
		Status:            model.StatusHealthy,
		Service:           ServiceName,
		Timestamp:         h.timestamp(),
		Server:            h.opts.Server,
		Environment:       h.cfg.App.Environment,
		DatabaseConnected: true,
	})
}

// Test handles /api/test.
func (h *DiagnosticsHandler) Test(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, model.TestResponse{
		Status:    model.StatusSuccess,
		Message:   "Backend API is working perfectly! 🎉",
		Service:   ServiceName,
		Server:    h.opts.Server,
		Timestamp: h.timestamp(),
		Features: model.Features{
			DatabaseConnection: true,
			RestAPI:            true,
			JSONResponse:       true,
			CORSEnabled:        true,
		},
	})
}

// DBTest handles /api/db-test. Failures are reported in the body with
// status 200.
func (h *DiagnosticsHandler) DBTest(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.TestDatabase(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("database test failed")
		writeJSON(w, h.logger, http.StatusOK, h.opts.errorResponse("Database connection failed", err))
		return
	}

	writeJSON(w, h.logger, http.StatusOK, model.DBTestResponse{
		Status:   model.StatusSuccess,
		Message:  "Database connection successful!",
		Server:   h.opts.Server,
		Database: *status,
	})
}

// Info handles /api/info. The database section echoes configuration only.
func (h *DiagnosticsHandler) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, model.InfoResponse{
		System: model.SystemInfo{
			Server:      h.opts.Server,
			GoVersion:   runtime.Version(),
			Environment: h.cfg.App.Environment,
			Project:     h.cfg.App.ProjectName,
			Timestamp:   h.timestamp(),
		},
		Database: model.DatabaseInfo{
			Host: h.cfg.Database.Host,
			Name: h.cfg.Database.Name,
			User: h.cfg.Database.Username,
		},
		Resources: h.sampler.Sample(r.Context()),
	})
}

// Welcome handles every path no other route matches.
func (h *DiagnosticsHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, model.WelcomeResponse{
		Message:       "Welcome to Three-Tier API",
		Endpoints:     endpoints,
		Server:        h.opts.Server,
		Documentation: "See frontend for interactive testing",
	})
}

package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"three-tier-api/internal/config"
	"three-tier-api/internal/handler"
	"three-tier-api/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDiagnostics struct{}

func (fakeDiagnostics) TestDatabase(ctx context.Context) (*model.DatabaseStatus, error) {
	return &model.DatabaseStatus{Connected: true}, nil
}

func (fakeDiagnostics) EnsureSchema(ctx context.Context) error { return nil }

type fakeSampler struct{}

func (fakeSampler) Sample(ctx context.Context) model.ResourceInfo {
	return model.ResourceInfo{LoadAverage: "N/A"}
}

// named answers with its own name so tests can tell which route ran.
func named(name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"route": name})
	})
}

func newTestRouter(t *testing.T, users http.Handler) http.Handler {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Hostname: "api-1"},
		App:    config.AppConfig{Environment: "test", ExposeInternalErrors: true},
	}
	logger := zerolog.Nop()

	if users == nil {
		users = named("users")
	}

	return New(Handlers{
		Users:       users,
		Products:    named("products"),
		Orders:      named("orders"),
		Diagnostics: handler.NewDiagnosticsHandler(fakeDiagnostics{}, fakeSampler{}, cfg, logger),
	}, handler.NewOptions(cfg), logger)
}

func TestRouter_Dispatch(t *testing.T) {
	router := newTestRouter(t, nil)

	tests := []struct {
		name     string
		path     string
		expected map[string]interface{}
	}{
		{name: "Users", path: "/api/users", expected: map[string]interface{}{"route": "users"}},
		{name: "Users with suffix", path: "/api/users/5", expected: map[string]interface{}{"route": "users"}},
		{name: "Users with query", path: "/api/users?sort=asc", expected: map[string]interface{}{"route": "users"}},
		{name: "Products", path: "/api/products", expected: map[string]interface{}{"route": "products"}},
		{name: "Orders", path: "/api/orders/", expected: map[string]interface{}{"route": "orders"}},
		{name: "Health", path: "/api/health", expected: map[string]interface{}{"status": "healthy"}},
		{name: "Health with suffix", path: "/api/healthz", expected: map[string]interface{}{"status": "healthy"}},
		{name: "Test", path: "/api/test", expected: map[string]interface{}{"status": "success", "service": "api-backend"}},
		{name: "DB test", path: "/api/db-test", expected: map[string]interface{}{"message": "Database connection successful!"}},
		{name: "Info", path: "/api/info", expected: map[string]interface{}{}},
		{name: "Unmatched path", path: "/nope", expected: map[string]interface{}{"message": "Welcome to Three-Tier API"}},
		{name: "Root", path: "/", expected: map[string]interface{}{"message": "Welcome to Three-Tier API"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			for key, want := range tt.expected {
				assert.Equal(t, want, body[key], key)
			}
		})
	}
}

func TestRouter_InfoShape(t *testing.T) {
	router := newTestRouter(t, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/info", nil))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "system")
	assert.Contains(t, body, "database")
	assert.Contains(t, body, "resources")
}

func TestRouter_Headers(t *testing.T) {
	router := newTestRouter(t, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS, PUT, DELETE", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, Authorization", w.Header().Get("Access-Control-Allow-Headers"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_Options(t *testing.T) {
	called := false
	users := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	router := newTestRouter(t, users)

	for _, path := range []string{"/api/users", "/anything"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, path, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	}
	assert.False(t, called)
}

func TestRouter_RecoversPanics(t *testing.T) {
	users := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("nil map write")
	})
	router := newTestRouter(t, users)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t,
		`{"status":"error","message":"Internal server error","error":"nil map write","server":"api-1"}`,
		w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

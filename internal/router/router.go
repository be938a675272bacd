package router

import (
	"net/http"
	"strings"

	"three-tier-api/internal/handler"
	"three-tier-api/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers groups the handlers the router dispatches to.
type Handlers struct {
	Users       http.Handler
	Products    http.Handler
	Orders      http.Handler
	Diagnostics *handler.DiagnosticsHandler
}

// route binds a path prefix to a handler.
type route struct {
	prefix  string
	handler http.Handler
}

// New creates the API router. Paths are matched by prefix in a fixed order;
// the first match wins and unmatched paths get the welcome envelope.
func New(h Handlers, opts handler.Options, logger zerolog.Logger) http.Handler {
	routes := []route{
		{prefix: "/api/health", handler: http.HandlerFunc(h.Diagnostics.Health)},
		{prefix: "/api/test", handler: http.HandlerFunc(h.Diagnostics.Test)},
		{prefix: "/api/db-test", handler: http.HandlerFunc(h.Diagnostics.DBTest)},
		{prefix: "/api/users", handler: h.Users},
		{prefix: "/api/products", handler: h.Products},
		{prefix: "/api/orders", handler: h.Orders},
		{prefix: "/api/info", handler: http.HandlerFunc(h.Diagnostics.Info)},
	}
	fallback := http.HandlerFunc(h.Diagnostics.Welcome)

	var mux http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, rt := range routes {
			if strings.HasPrefix(r.URL.Path, rt.prefix) {
				rt.handler.ServeHTTP(w, r)
				return
			}
		}
		fallback.ServeHTTP(w, r)
	})

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS
	var handler http.Handler = mux
	handler = middleware.CORS(middleware.APIPolicy)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recovery(opts.Server, opts.ExposeErrors, logger)(handler)

	return handler
}

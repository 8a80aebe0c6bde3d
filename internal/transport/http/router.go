// Package httptransport assembles the public HTTP surface: middleware,
// versioned fixture routes, health and metrics.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"eutestdata/internal/platform/metrics"
	dErrors "eutestdata/pkg/domain-errors"
	"eutestdata/pkg/platform/httputil"
	"eutestdata/pkg/platform/middleware/accesslog"
	"eutestdata/pkg/platform/middleware/requestid"
	"eutestdata/pkg/platform/middleware/requesttime"
)

// Registrar mounts a module's routes.
type Registrar interface {
	Register(r chi.Router)
}

// NewRouter wires the middleware chain and mounts every registrar under /v1.
// A nil m disables request metrics and the /metrics endpoint.
func NewRouter(logger *slog.Logger, m *metrics.Metrics, v1 ...Registrar) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(accesslog.Middleware(logger))
	r.Use(chimw.Recoverer)
	r.Use(m.Middleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method_not_allowed"})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	r.Route("/v1", func(r chi.Router) {
		for _, reg := range v1 {
			reg.Register(r)
		}
	})
	return r
}

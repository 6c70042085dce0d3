// Package demo wires the CSRF protector into a small chi application: a
// templ form, a JSON endpoint, a Datastar action and an excluded public API.
package demo

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/csrfkit/pkg/csrf"
	"github.com/dmitrymomot/csrfkit/pkg/httpserver"
)

// NewRouter mounts the demo routes. Probes and metrics sit outside the
// protector; everything else passes through it.
func NewRouter(p *csrf.Protector, reg *prometheus.Registry, log *slog.Logger) http.Handler {
	h := &handlers{protector: p, log: log}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", httpserver.HealthCheckHandler(log))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	r.Group(func(r chi.Router) {
		r.Use(p.Middleware)

		r.Get("/", h.form)
		r.Post("/submit", h.submit)
		r.Post("/api/notes", h.createNote)
		r.Post("/ds/increment", h.increment)
		r.Get("/api/public/ping", ping)
		r.Post("/api/public/ping", ping)
	})

	return r
}

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SessionPath is where the session endpoint is served.
const SessionPath = "/api/auth/session"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)

	router.Get("/healthz", h.health)
	router.Handle("/metrics", promhttp.Handler())

	router.Group(func(r chi.Router) {
		r.Use(h.withLogging)
		r.With(h.withSessionID).Get(SessionPath, h.getSession)
		r.Get("/version", h.getVersion)
	})

	return router
}

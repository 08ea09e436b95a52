package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Routes are registered with full patterns so that
// CheckHTTPMethod can match them.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	// read-only routes
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/users/names", h.names)
		r.Get("/api/users/roles", h.roles)
		r.Get("/api/users/view", h.roleView)
		r.Post("/api/users/filter", h.filter)
	})

	// mutating and audit routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/users/load", h.load)
		r.Post("/api/users/unload", h.unload)
		r.Get("/api/journal", h.journal)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version/", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(h.withAuthRateLimit)
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/profile/", h.getProfile)

		r.Post("/api/family/", h.createFamily)
		r.Post("/api/family/join", h.joinFamily)
		r.Get("/api/family/members", h.listFamilyMembers)

		r.Post("/api/vault/items", h.createItem)
		r.Get("/api/vault/items", h.listItems)
		r.Get("/api/vault/items/{id}", h.getItem)
		r.Delete("/api/vault/items/{id}", h.deleteItem)

		r.Get("/api/vault/items/{id}/shares", h.listShares)
		r.Put("/api/vault/items/{id}/shares", h.replaceShares)
		r.Delete("/api/vault/items/{id}/shares", h.deleteShares)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

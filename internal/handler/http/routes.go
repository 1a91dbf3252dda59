package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/user/exists", h.emailExists)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/user/logout", h.logout)
		r.Put("/api/user/password", h.changePassword)

		r.Get("/api/user/profile", h.getProfile)
		r.Put("/api/user/profile", h.updateProfile)

		r.Get("/api/contacts", h.listContacts)
		r.Post("/api/contacts", h.createContact)
		r.Get("/api/contacts/search", h.searchContacts)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

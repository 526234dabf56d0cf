package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.serverConfig.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/health", h.health)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)

		r.Get("/api/contact", h.allContacts)
		r.Get("/api/contact/{contactID}", h.contactByID)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/contact/new", h.createContact)
		r.Get("/api/contact/userid", h.myContacts)
		r.Put("/api/contact/{contactID}", h.updateContact)
		r.Delete("/api/contact/{contactID}", h.deleteContact)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

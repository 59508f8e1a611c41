package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-secret-vault/internal/validators"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.With(h.validate(h.validators.Auth)).Post("/sign-up", h.signUp)
		r.With(h.validate(h.validators.Auth)).Post("/sign-in", h.signIn)
		r.Get("/api/version", h.getServerVersion)
	})

	mountResource(router, h, "/credentials", h.validators.Credential, newResourceHandler("Credential", h.services.Credentials))
	mountResource(router, h, "/cards", h.validators.Card, newResourceHandler("Card", h.services.Cards))
	mountResource(router, h, "/notes", h.validators.Note, newResourceHandler("Note", h.services.Notes))
	mountResource(router, h, "/wifi", h.validators.Wifi, newResourceHandler("Wifi", h.services.WifiNetworks))

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// mountResource registers the uniform route set of one vault record kind.
// Body validation runs before the token check on mutating routes, so a
// client with no token still learns everything wrong with its payload.
func mountResource[T any](router chi.Router, h *Handler, pattern string, validator validators.Validator, rh *resourceHandler[T]) {
	router.Route(pattern, func(r chi.Router) {
		r.With(h.validate(validator), h.auth).Post("/", rh.create)
		r.With(h.auth).Get("/all", rh.list)
		r.With(h.auth).Get("/{id}", rh.getByID)
		r.With(h.validate(validator), h.auth).Put("/{id}", rh.update)
		r.With(h.auth).Delete("/{id}/delete", rh.delete)
	})
}

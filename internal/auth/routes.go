package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SetupRoutes mounts the unauthenticated credential endpoints. The rate
// limiter is injected so tests can run without one.
func (h *Handler) SetupRoutes(limit func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	if limit != nil {
		r.Use(limit)
	}

	r.Post("/signup", h.SignupHandler)
	r.Post("/login", h.LoginHandler)

	return r
}

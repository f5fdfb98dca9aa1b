package donation

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lifestream-health/donation-backend/internal/auth"
	"github.com/lifestream-health/donation-backend/internal/middleware"
)

// SetupRoutes mounts the /api/donations subtree. Every route requires a
// bearer token; the admin-only routes additionally require the admin role.
func (h *Handler) SetupRoutes(authn func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(authn)

	r.Post("/", h.CreateHandler)
	r.Delete("/{id}", h.CancelHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(auth.RoleAdmin))
		r.Get("/", h.ListAllHandler)
		r.Put("/{id}", h.TransitionHandler)
	})

	return r
}

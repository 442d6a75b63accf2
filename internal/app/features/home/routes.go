// internal/app/features/home/routes.go
package home

import "github.com/go-chi/chi/v5"

// MountRoutes mounts the root banner.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.ServeRoot)
}

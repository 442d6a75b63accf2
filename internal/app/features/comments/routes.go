// internal/app/features/comments/routes.go
package comments

import "github.com/go-chi/chi/v5"

// MountRoutes mounts the comment routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/lessons/{id}/comments", h.Create)
	r.Get("/lessons/{id}/comments", h.List)
	r.Patch("/comments/{id}/like", h.ToggleLike)
	r.Delete("/comments/{id}", h.Delete)
}

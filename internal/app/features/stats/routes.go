// internal/app/features/stats/routes.go
package stats

import "github.com/go-chi/chi/v5"

// MountRoutes mounts the derived-view routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/top-contributors", h.TopContributors)
	r.Get("/most-saved-lessons", h.MostSaved)
	r.Get("/stats/my-favorites-count", h.MyFavoritesCount)
}

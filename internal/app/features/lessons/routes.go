// internal/app/features/lessons/routes.go
package lessons

import "github.com/go-chi/chi/v5"

// MountRoutes mounts the lesson lifecycle and engagement routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/lessons", h.Submit)
	r.Get("/lessons/{id}", h.Get)
	r.Patch("/lessons/{id}", h.Update)
	r.Delete("/lessons/{id}", h.Delete)

	r.Get("/featured-lessons", h.Featured)
	r.Get("/public-lessons", h.Public)
	r.Get("/user-lessons/{email}", h.ByAuthor)
	r.Get("/my-lessons", h.MyLessons)
	r.Get("/my-favorites", h.MyFavorites)

	r.Patch("/lessons/{id}/like", h.ToggleLike)
	r.Patch("/lessons/{id}/favorite", h.ToggleFavorite)
	r.Post("/lessons/{id}/report", h.Report)
}

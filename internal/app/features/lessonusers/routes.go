// internal/app/features/lessonusers/routes.go
package lessonusers

import "github.com/go-chi/chi/v5"

// MountRoutes mounts the lesson-user routes on the given router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/lesson-users", h.Register)
	r.Get("/lesson-users/role", h.Role)
}

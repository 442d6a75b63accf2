// internal/app/features/admin/routes.go
package admin

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hridoylabs/lessonhub/internal/app/system/identity"
)

// MountRoutes mounts the admin console routes behind the identity gate.
func (h *Handler) MountRoutes(r chi.Router, resolver *identity.Resolver, log *zap.Logger) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(resolver.AdminOnly(log))

		r.Get("/lesson-requests", h.LessonRequests)
		r.Patch("/approve-lesson/{id}", h.ApproveLesson)

		r.Get("/users", h.ListUsers)
		r.Patch("/users/{id}", h.UpdateUser)
		r.Delete("/users/{id}", h.DeleteUser)

		r.Get("/lessons", h.ListLessons)
		r.Delete("/lessons/{id}", h.DeleteLesson)
	})
}

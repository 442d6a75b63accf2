// internal/app/features/moderation/routes.go
package moderation

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hridoylabs/lessonhub/internal/app/system/identity"
)

// MountRoutes mounts the report-review routes behind the identity gate.
func (h *Handler) MountRoutes(r chi.Router, resolver *identity.Resolver, log *zap.Logger) {
	r.Route("/reported-lessons", func(r chi.Router) {
		r.Use(resolver.AdminOnly(log))

		r.Get("/", h.List)
		r.Patch("/{id}", h.Ignore)
		r.Delete("/{lessonId}", h.Remove)
	})
}

// internal/app/features/bills/routes.go
package bills

import "github.com/go-chi/chi/v5"

// MountRoutes mounts the utility-bill routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/bills", h.List)
	r.Get("/bills/{id}", h.Get)
	r.Post("/my-bills", h.Pay)
	r.Get("/my-bills", h.MyBills)
}

// internal/app/features/payments/routes.go
package payments

import "github.com/go-chi/chi/v5"

// MountRoutes mounts the payment routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/create-checkout-session", h.CreateCheckoutSession)
	r.Post("/users/make-premium", h.MakePremium)
}

// internal/app/features/payments/handler.go
package payments

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	userstore "github.com/hridoylabs/lessonhub/internal/app/store/users"
	"github.com/hridoylabs/lessonhub/internal/app/system/httpjson"
	"github.com/hridoylabs/lessonhub/internal/app/system/inputval"
	"github.com/hridoylabs/lessonhub/internal/app/system/timeouts"
)

// checkoutCreator is the slice of the Stripe client the handler uses.
// Narrowed to an interface so tests can stub session creation.
type checkoutCreator interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// Handler owns the premium-upgrade payment endpoints.
type Handler struct {
	Users       *userstore.Store
	Checkout    checkoutCreator
	SiteDomain  string
	PriceAmount int64
	Log         *zap.Logger
}

// NewHandler constructs a payments Handler with its own Stripe client.
// priceAmount is in the smallest currency unit (BDT paisa).
func NewHandler(db *mongo.Database, stripeSecret, siteDomain string, priceAmount int64, logger *zap.Logger) *Handler {
	sc := &client.API{}
	sc.Init(stripeSecret, nil)

	return &Handler{
		Users:       userstore.New(db),
		Checkout:    sc.CheckoutSessions,
		SiteDomain:  siteDomain,
		PriceAmount: priceAmount,
		Log:         logger,
	}
}

type checkoutRequest struct {
	UserEmail string `json:"userEmail" validate:"required,email"`
}

// CreateCheckoutSession handles POST /create-checkout-session: creates a
// Stripe hosted-checkout session for the lifetime premium product and
// returns its URL. Premium is not granted here; that happens on
// /users/make-premium after the frontend confirms the payment.
func (h *Handler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.BadRequest(w, "Invalid request body")
		return
	}
	if err := inputval.Struct(req); err != nil {
		httpjson.BadRequest(w, "Valid userEmail required")
		return
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String("bdt"),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String("Digital Life Lessons - Premium Lifetime Access"),
					Description: stripe.String("Lifetime Premium access for " + req.UserEmail),
					Images: stripe.StringSlice([]string{
						"https://images.unsplash.com/photo-1529333166437-7750a6dd5a70",
					}),
				},
				UnitAmount: stripe.Int64(h.PriceAmount),
			},
			Quantity: stripe.Int64(1),
		}},
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(req.UserEmail),
		SuccessURL:    stripe.String(h.SiteDomain + "/payment/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:     stripe.String(h.SiteDomain + "/payment/cancel"),
	}
	params.AddMetadata("userEmail", req.UserEmail)
	params.SetIdempotencyKey(uuid.NewString())

	sess, err := h.Checkout.New(params)
	if err != nil {
		h.Log.Error("payments: checkout session failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to create checkout session")
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]any{"url": sess.URL})
}

type makePremiumRequest struct {
	Email string `json:"email"`
}

// MakePremium handles POST /users/make-premium: flips the premium flag and
// stamps the activation time. 404 when no user matches the email.
func (h *Handler) MakePremium(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var req makePremiumRequest
	if err := httpjson.Decode(r, &req); err != nil || req.Email == "" {
		httpjson.BadRequest(w, "Email required")
		return
	}

	matched, err := h.Users.MakePremium(ctx, req.Email)
	if err != nil {
		h.Log.Error("payments: make premium failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to update premium status")
		return
	}
	if matched == 0 {
		httpjson.NotFound(w, "User not found")
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]any{"success": true})
}

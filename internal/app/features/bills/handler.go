// internal/app/features/bills/handler.go
package bills

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	billstore "github.com/hridoylabs/lessonhub/internal/app/store/bills"
	"github.com/hridoylabs/lessonhub/internal/app/system/httpjson"
	"github.com/hridoylabs/lessonhub/internal/app/system/inputval"
	"github.com/hridoylabs/lessonhub/internal/app/system/timeouts"
	"github.com/hridoylabs/lessonhub/internal/domain/models"
)

// Handler owns the utility-bill endpoints.
type Handler struct {
	Bills *billstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a bills Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Bills: billstore.New(db),
		Log:   logger,
	}
}

// List handles GET /bills.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	bills, err := h.Bills.List(ctx)
	if err != nil {
		h.Log.Error("bills: list failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to load bills")
		return
	}
	if bills == nil {
		bills = []models.Bill{}
	}
	httpjson.Respond(w, http.StatusOK, bills)
}

// Get handles GET /bills/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.NotFound(w, "Bill not found")
		return
	}

	bill, err := h.Bills.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		httpjson.NotFound(w, "Bill not found")
		return
	}
	if err != nil {
		h.Log.Error("bills: get failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to load bill")
		return
	}
	httpjson.Respond(w, http.StatusOK, bill)
}

type payRequest struct {
	BillID string `json:"billId" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Amount int64  `json:"amount" validate:"required,gt=0"`
}

// Pay handles POST /my-bills: records that the user paid a bill.
func (h *Handler) Pay(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var req payRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.BadRequest(w, "Invalid request body")
		return
	}
	if err := inputval.Struct(req); err != nil {
		httpjson.BadRequest(w, "Missing fields")
		return
	}

	billID, err := primitive.ObjectIDFromHex(req.BillID)
	if err != nil {
		httpjson.NotFound(w, "Bill not found")
		return
	}
	if _, err := h.Bills.GetByID(ctx, billID); errors.Is(err, mongo.ErrNoDocuments) {
		httpjson.NotFound(w, "Bill not found")
		return
	} else if err != nil {
		h.Log.Error("bills: pay lookup failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to record payment")
		return
	}

	payment, err := h.Bills.RecordPayment(ctx, models.BillPayment{
		BillID: billID,
		Email:  req.Email,
		Amount: req.Amount,
	})
	if err != nil {
		h.Log.Error("bills: record payment failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to record payment")
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]any{
		"success": true,
		"payment": payment,
	})
}

// MyBills handles GET /my-bills?email=.
func (h *Handler) MyBills(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	email := r.URL.Query().Get("email")
	if email == "" {
		httpjson.Respond(w, http.StatusOK, []models.BillPayment{})
		return
	}

	payments, err := h.Bills.PaymentsByEmail(ctx, email)
	if err != nil {
		h.Log.Error("bills: payments lookup failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to load payments")
		return
	}
	if payments == nil {
		payments = []models.BillPayment{}
	}
	httpjson.Respond(w, http.StatusOK, payments)
}

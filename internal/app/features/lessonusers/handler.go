// internal/app/features/lessonusers/handler.go
package lessonusers

import (
	"context"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	userstore "github.com/hridoylabs/lessonhub/internal/app/store/users"
	"github.com/hridoylabs/lessonhub/internal/app/system/httpjson"
	"github.com/hridoylabs/lessonhub/internal/app/system/identity"
	"github.com/hridoylabs/lessonhub/internal/app/system/sanitize"
	"github.com/hridoylabs/lessonhub/internal/app/system/timeouts"
	"github.com/hridoylabs/lessonhub/internal/domain/models"
)

// Handler owns the lesson-user registration and role endpoints.
type Handler struct {
	Users    *userstore.Store
	Resolver *identity.Resolver
	Log      *zap.Logger
}

// NewHandler constructs a lesson-users Handler.
func NewHandler(db *mongo.Database, resolver *identity.Resolver, logger *zap.Logger) *Handler {
	return &Handler{
		Users:    userstore.New(db),
		Resolver: resolver,
		Log:      logger,
	}
}

type registerRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

// Register handles POST /lesson-users. Registration is idempotent by email:
// an existing record is returned unchanged rather than erroring, because the
// frontend fires this on every sign-in. A missing email returns an empty
// object, matching what clients already expect.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var req registerRequest
	if err := httpjson.Decode(r, &req); err != nil && !errors.Is(err, httpjson.ErrEmptyBody) {
		httpjson.BadRequest(w, "Invalid request body")
		return
	}
	if req.Email == "" {
		httpjson.Respond(w, http.StatusOK, map[string]any{})
		return
	}

	if existing, err := h.Users.GetByEmail(ctx, req.Email); err == nil {
		httpjson.Respond(w, http.StatusOK, existing)
		return
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		h.Log.Error("lesson-users: lookup failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to register user")
		return
	}

	created, err := h.Users.Create(ctx, models.User{
		Email: req.Email,
		Name:  req.Name,
		Photo: sanitize.PhotoURL(req.Photo),
	})
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			// Lost a registration race; the record exists now.
			if existing, lookupErr := h.Users.GetByEmail(ctx, req.Email); lookupErr == nil {
				httpjson.Respond(w, http.StatusOK, existing)
				return
			}
		}
		h.Log.Error("lesson-users: create failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to register user")
		return
	}
	httpjson.Respond(w, http.StatusOK, created)
}

// Role handles GET /lesson-users/role?email=. Unknown emails resolve to a
// plain non-premium user rather than 404, so the frontend can render a
// default experience without a registration round trip.
func (h *Handler) Role(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := h.Resolver.Resolve(ctx, r.URL.Query().Get("email"))
	if err != nil {
		h.Log.Error("lesson-users: role resolve failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to resolve role")
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]any{
		"role":    id.Role,
		"premium": id.Premium,
	})
}

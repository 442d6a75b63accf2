// internal/app/features/admin/handler.go
package admin

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	lessonstore "github.com/hridoylabs/lessonhub/internal/app/store/lessons"
	"github.com/hridoylabs/lessonhub/internal/app/store/queries/lessonqueries"
	requeststore "github.com/hridoylabs/lessonhub/internal/app/store/requests"
	userstore "github.com/hridoylabs/lessonhub/internal/app/store/users"
	"github.com/hridoylabs/lessonhub/internal/app/system/httpjson"
	"github.com/hridoylabs/lessonhub/internal/app/system/timeouts"
	"github.com/hridoylabs/lessonhub/internal/app/system/txn"
	"github.com/hridoylabs/lessonhub/internal/domain/models"
)

// Handler owns the admin console endpoints. Every route here sits behind the
// identity gate; the handlers themselves assume the caller is an admin.
type Handler struct {
	Client   *mongo.Client
	DB       *mongo.Database
	Lessons  *lessonstore.Store
	Requests *requeststore.Store
	Users    *userstore.Store
	Log      *zap.Logger
}

// NewHandler constructs an admin Handler.
func NewHandler(client *mongo.Client, db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Client:   client,
		DB:       db,
		Lessons:  lessonstore.New(db),
		Requests: requeststore.New(db),
		Users:    userstore.New(db),
		Log:      logger,
	}
}

// LessonRequests handles GET /admin/lesson-requests: the pending moderation
// queue, newest first. Approved requests stay in the collection but not in
// this view.
func (h *Handler) LessonRequests(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	pending, err := h.Requests.Pending(ctx)
	if err != nil {
		h.Log.Error("admin: lesson requests failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to load lesson requests")
		return
	}
	if pending == nil {
		pending = []models.LessonRequest{}
	}
	httpjson.Respond(w, http.StatusOK, pending)
}

// ApproveLesson handles PATCH /admin/approve-lesson/{id}. The id addresses
// the request record, not the lesson. The lesson status flip and the request
// approval flag are written in one transaction where supported, so the queue
// can never show an approved request whose lesson is still pending.
func (h *Handler) ApproveLesson(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.NotFound(w, "Lesson request not found")
		return
	}

	req, err := h.Requests.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		httpjson.NotFound(w, "Lesson request not found")
		return
	}
	if err != nil {
		h.Log.Error("admin: approve lookup failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to approve lesson")
		return
	}

	err = txn.WithTransaction(ctx, h.Client, h.Log, func(ctx context.Context) error {
		if _, err := h.Lessons.Approve(ctx, req.LessonID); err != nil {
			return err
		}
		_, err := h.Requests.MarkApproved(ctx, id)
		return err
	})
	if err != nil {
		h.Log.Error("admin: approve failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to approve lesson")
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]any{"success": true})
}

// ListUsers handles GET /admin/users.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		h.Log.Error("admin: list users failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to load users")
		return
	}
	if users == nil {
		users = []models.User{}
	}
	httpjson.Respond(w, http.StatusOK, users)
}

type updateUserRequest struct {
	Role    string `json:"role"`
	Premium bool   `json:"premium"`
}

// UpdateUser handles PATCH /admin/users/{id}: role and premium only. Other
// profile fields are the user's own.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.NotFound(w, "User not found")
		return
	}

	var req updateUserRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.BadRequest(w, "Invalid request body")
		return
	}
	if req.Role != "user" && req.Role != "admin" {
		httpjson.BadRequest(w, "Invalid role")
		return
	}

	matched, err := h.Users.UpdateRolePremium(ctx, id, req.Role, req.Premium)
	if err != nil {
		h.Log.Error("admin: update user failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to update user")
		return
	}
	if matched == 0 {
		httpjson.NotFound(w, "User not found")
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]any{"success": true})
}

// DeleteUser handles DELETE /admin/users/{id}.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.NotFound(w, "User not found")
		return
	}

	deleted, err := h.Users.Delete(ctx, id)
	if err != nil {
		h.Log.Error("admin: delete user failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to delete user")
		return
	}
	if deleted == 0 {
		httpjson.NotFound(w, "User not found")
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]any{"success": true})
}

// ListLessons handles GET /admin/lessons: every lesson regardless of status,
// joined with its request id so the console can approve in place.
func (h *Handler) ListLessons(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, err := lessonqueries.AdminLessons(ctx, h.DB)
	if err != nil {
		h.Log.Error("admin: list lessons failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to load lessons")
		return
	}
	if rows == nil {
		rows = []lessonqueries.AdminLesson{}
	}
	httpjson.Respond(w, http.StatusOK, rows)
}

// DeleteLesson handles DELETE /admin/lessons/{id}.
func (h *Handler) DeleteLesson(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.NotFound(w, "Lesson not found")
		return
	}

	deleted, err := h.Lessons.Delete(ctx, id)
	if err != nil {
		h.Log.Error("admin: delete lesson failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to delete lesson")
		return
	}
	if deleted == 0 {
		httpjson.NotFound(w, "Lesson not found")
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]any{"success": true})
}

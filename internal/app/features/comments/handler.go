// internal/app/features/comments/handler.go
package comments

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	commentstore "github.com/hridoylabs/lessonhub/internal/app/store/comments"
	"github.com/hridoylabs/lessonhub/internal/app/system/httpjson"
	"github.com/hridoylabs/lessonhub/internal/app/system/identity"
	"github.com/hridoylabs/lessonhub/internal/app/system/sanitize"
	"github.com/hridoylabs/lessonhub/internal/app/system/timeouts"
	"github.com/hridoylabs/lessonhub/internal/domain/models"
)

// Handler owns the comment endpoints.
type Handler struct {
	Comments *commentstore.Store
	Resolver *identity.Resolver
	Log      *zap.Logger
}

// NewHandler constructs a comments Handler.
func NewHandler(db *mongo.Database, resolver *identity.Resolver, logger *zap.Logger) *Handler {
	return &Handler{
		Comments: commentstore.New(db),
		Resolver: resolver,
		Log:      logger,
	}
}

type createRequest struct {
	UserID    string `json:"userId"`
	UserEmail string `json:"userEmail"`
	UserName  string `json:"userName"`
	UserPhoto string `json:"userPhoto"`
	Content   string `json:"content"`
}

// Create handles POST /lessons/{id}/comments. Content is trimmed and run
// through the strict sanitizer; blank content after trimming is a validation
// failure and nothing is inserted.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	lessonID := chi.URLParam(r, "id")

	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.BadRequest(w, "Invalid request body")
		return
	}
	content := strings.TrimSpace(req.Content)
	if req.UserID == "" || req.UserEmail == "" || content == "" {
		httpjson.BadRequest(w, "Missing fields")
		return
	}

	userName := strings.TrimSpace(req.UserName)
	if userName == "" {
		userName = "Anonymous"
	}

	created, err := h.Comments.Create(ctx, models.Comment{
		LessonID:  lessonID,
		UserID:    req.UserID,
		UserEmail: req.UserEmail,
		UserName:  userName,
		UserPhoto: sanitize.PhotoURL(req.UserPhoto),
		Content:   sanitize.CommentContent(content),
	})
	if err != nil {
		h.Log.Error("comments: create failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to add comment")
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]any{
		"success": true,
		"comment": created,
	})
}

// List handles GET /lessons/{id}/comments.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	comments, err := h.Comments.ListByLesson(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.Log.Error("comments: list failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to load comments")
		return
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	httpjson.Respond(w, http.StatusOK, map[string]any{"comments": comments})
}

type toggleRequest struct {
	UserID string `json:"userId"`
}

// ToggleLike handles PATCH /comments/{id}/like.
func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, ok := commentID(w, r)
	if !ok {
		return
	}

	var req toggleRequest
	if err := httpjson.Decode(r, &req); err != nil || req.UserID == "" {
		httpjson.BadRequest(w, "User ID required")
		return
	}

	count, err := h.Comments.ToggleLike(ctx, id, req.UserID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		httpjson.NotFound(w, "Comment not found")
		return
	}
	if err != nil {
		h.Log.Error("comments: toggle like failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to update comment")
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]any{
		"success":    true,
		"likesCount": count,
	})
}

type deleteRequest struct {
	UserID    string `json:"userId"`
	UserEmail string `json:"userEmail"`
}

// Delete handles DELETE /comments/{id}. Allowed for the comment's author or
// any identity that resolves to the admin role.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, ok := commentID(w, r)
	if !ok {
		return
	}

	var req deleteRequest
	if err := httpjson.Decode(r, &req); err != nil && !errors.Is(err, httpjson.ErrEmptyBody) {
		httpjson.BadRequest(w, "Invalid request body")
		return
	}

	comment, err := h.Comments.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		httpjson.NotFound(w, "Comment not found")
		return
	}
	if err != nil {
		h.Log.Error("comments: delete lookup failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to delete comment")
		return
	}

	if comment.UserID != req.UserID {
		resolved, err := h.Resolver.Resolve(ctx, req.UserEmail)
		if err != nil {
			h.Log.Error("comments: delete role resolve failed", zap.Error(err))
			httpjson.ServerError(w, "Failed to delete comment")
			return
		}
		if resolved.Role != "admin" {
			httpjson.Forbidden(w, "Unauthorized")
			return
		}
	}

	if _, err := h.Comments.Delete(ctx, id); err != nil {
		h.Log.Error("comments: delete failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to delete comment")
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]any{"success": true})
}

func commentID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.NotFound(w, "Comment not found")
		return primitive.NilObjectID, false
	}
	return id, true
}

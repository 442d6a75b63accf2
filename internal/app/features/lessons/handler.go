// internal/app/features/lessons/handler.go
package lessons

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	lessonstore "github.com/hridoylabs/lessonhub/internal/app/store/lessons"
	reportstore "github.com/hridoylabs/lessonhub/internal/app/store/reports"
	requeststore "github.com/hridoylabs/lessonhub/internal/app/store/requests"
	userstore "github.com/hridoylabs/lessonhub/internal/app/store/users"
	"github.com/hridoylabs/lessonhub/internal/app/system/httpjson"
	"github.com/hridoylabs/lessonhub/internal/app/system/sanitize"
	"github.com/hridoylabs/lessonhub/internal/app/system/timeouts"
	"github.com/hridoylabs/lessonhub/internal/app/system/txn"
	"github.com/hridoylabs/lessonhub/internal/domain/models"
)

// Handler owns the lesson lifecycle and engagement endpoints.
type Handler struct {
	Client   *mongo.Client
	Lessons  *lessonstore.Store
	Requests *requeststore.Store
	Reports  *reportstore.Store
	Users    *userstore.Store
	Log      *zap.Logger
}

// NewHandler constructs a lessons Handler.
func NewHandler(client *mongo.Client, db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Client:   client,
		Lessons:  lessonstore.New(db),
		Requests: requeststore.New(db),
		Reports:  reportstore.New(db),
		Users:    userstore.New(db),
		Log:      logger,
	}
}

type submitRequest struct {
	AuthorEmail      string `json:"authorEmail"`
	AuthorName       string `json:"authorName"`
	AuthorPhoto      string `json:"authorPhoto"`
	Title            string `json:"title"`
	Category         string `json:"category"`
	ShortDescription string `json:"shortDescription"`
	EmotionalTone    string `json:"emotionalTone"`
	AccessLevel      string `json:"accessLevel"`
	Content          string `json:"content"`
}

// Submit handles POST /lessons. The lesson and its moderation-queue entry are
// written in one transaction where the deployment supports it, so a crash
// cannot leave an orphaned lesson with no queue entry. The author's user
// record is ensured first, outside the transaction: a leftover user record
// from a failed submission is harmless.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var req submitRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.BadRequest(w, "Invalid request body")
		return
	}
	if req.AuthorEmail == "" || req.Title == "" {
		httpjson.BadRequest(w, "Missing fields")
		return
	}

	if _, err := h.Users.EnsureByEmail(ctx, req.AuthorEmail, req.AuthorName, sanitize.PhotoURL(req.AuthorPhoto)); err != nil {
		h.Log.Error("lessons: ensure author failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to submit lesson")
		return
	}

	accessLevel := req.AccessLevel
	if accessLevel != models.AccessPremium {
		accessLevel = models.AccessPublic
	}

	var created models.Lesson
	err := txn.WithTransaction(ctx, h.Client, h.Log, func(ctx context.Context) error {
		var err error
		created, err = h.Lessons.Create(ctx, models.Lesson{
			Title:            req.Title,
			ShortDescription: req.ShortDescription,
			Category:         req.Category,
			EmotionalTone:    req.EmotionalTone,
			Content:          sanitize.LessonContent(req.Content),
			Author: models.AuthorSnapshot{
				Email: req.AuthorEmail,
				Name:  req.AuthorName,
				Photo: sanitize.PhotoURL(req.AuthorPhoto),
			},
			AccessLevel: accessLevel,
		})
		if err != nil {
			return err
		}

		_, err = h.Requests.Create(ctx, models.LessonRequest{
			LessonID:    created.ID,
			Title:       req.Title,
			Category:    req.Category,
			AuthorEmail: req.AuthorEmail,
			AccessLevel: accessLevel,
		})
		return err
	})
	if err != nil {
		h.Log.Error("lessons: submit failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to submit lesson")
		return
	}

	httpjson.Respond(w, http.StatusOK, map[string]any{
		"success":  true,
		"lessonId": created.ID.Hex(),
	})
}

// Get handles GET /lessons/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, ok := lessonID(w, r)
	if !ok {
		return
	}

	lesson, err := h.Lessons.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		httpjson.NotFound(w, "Lesson not found")
		return
	}
	if err != nil {
		h.Log.Error("lessons: get failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to load lesson")
		return
	}
	httpjson.Respond(w, http.StatusOK, lesson)
}

// Update handles PATCH /lessons/{id}. The body is merged as-is into the
// document; which fields may be overwritten is left to the caller, as it
// always has been. Only the identity field is stripped.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, ok := lessonID(w, r)
	if !ok {
		return
	}

	var fields map[string]any
	if err := httpjson.Decode(r, &fields); err != nil || len(fields) == 0 {
		httpjson.BadRequest(w, "Invalid request body")
		return
	}
	delete(fields, "_id")
	if content, ok := fields["content"].(string); ok {
		fields["content"] = sanitize.LessonContent(content)
	}

	matched, err := h.Lessons.Update(ctx, id, bson.M(fields))
	if err != nil {
		h.Log.Error("lessons: update failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to update lesson")
		return
	}
	if matched == 0 {
		httpjson.NotFound(w, "Lesson not found")
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]any{"success": true})
}

// Delete handles DELETE /lessons/{id}. Comments and reports are left in
// place; only the moderation removal path cascades.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, ok := lessonID(w, r)
	if !ok {
		return
	}

	deleted, err := h.Lessons.Delete(ctx, id)
	if err != nil {
		h.Log.Error("lessons: delete failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to delete lesson")
		return
	}
	if deleted == 0 {
		httpjson.NotFound(w, "Lesson not found")
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]any{"success": true})
}

// Featured handles GET /featured-lessons.
func (h *Handler) Featured(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.Lessons.Featured)
}

// Public handles GET /public-lessons.
func (h *Handler) Public(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.Lessons.Public)
}

// ByAuthor handles GET /user-lessons/{email}.
func (h *Handler) ByAuthor(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	h.list(w, r, func(ctx context.Context) ([]models.Lesson, error) {
		return h.Lessons.ByAuthor(ctx, email)
	})
}

// MyLessons handles GET /my-lessons?email=. A missing email returns an empty
// list rather than an error; the frontend calls this before sign-in resolves.
func (h *Handler) MyLessons(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		httpjson.Respond(w, http.StatusOK, []models.Lesson{})
		return
	}
	h.list(w, r, func(ctx context.Context) ([]models.Lesson, error) {
		return h.Lessons.ByAuthor(ctx, email)
	})
}

// MyFavorites handles GET /my-favorites?userId=.
func (h *Handler) MyFavorites(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		httpjson.Respond(w, http.StatusOK, []models.Lesson{})
		return
	}
	h.list(w, r, func(ctx context.Context) ([]models.Lesson, error) {
		return h.Lessons.ByFavoriter(ctx, userID)
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, load func(ctx context.Context) ([]models.Lesson, error)) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	lessons, err := load(ctx)
	if err != nil {
		h.Log.Error("lessons: list failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to load lessons")
		return
	}
	if lessons == nil {
		lessons = []models.Lesson{}
	}
	httpjson.Respond(w, http.StatusOK, lessons)
}

type toggleRequest struct {
	UserID string `json:"userId"`
}

// ToggleLike handles PATCH /lessons/{id}/like.
func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.Lessons.ToggleLike, "likesCount")
}

// ToggleFavorite handles PATCH /lessons/{id}/favorite.
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.Lessons.ToggleFavorite, "favoritesCount")
}

func (h *Handler) toggle(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id primitive.ObjectID, userID string) (int, error), countField string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, ok := lessonID(w, r)
	if !ok {
		return
	}

	var req toggleRequest
	if err := httpjson.Decode(r, &req); err != nil || req.UserID == "" {
		httpjson.BadRequest(w, "User ID required")
		return
	}

	count, err := op(ctx, id, req.UserID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		httpjson.NotFound(w, "Lesson not found")
		return
	}
	if err != nil {
		h.Log.Error("lessons: toggle failed", zap.String("field", countField), zap.Error(err))
		httpjson.ServerError(w, "Failed to update lesson")
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]any{
		"success":  true,
		countField: count,
	})
}

type reportRequest struct {
	UserID string `json:"userId"`
	Reason string `json:"reason"`
}

// Report handles POST /lessons/{id}/report. Repeated reports by the same
// user are accepted as-is; moderators see the duplication.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	lessonID := chi.URLParam(r, "id")

	var req reportRequest
	if err := httpjson.Decode(r, &req); err != nil || req.UserID == "" || req.Reason == "" {
		httpjson.BadRequest(w, "Missing fields")
		return
	}

	if _, err := h.Reports.Create(ctx, models.ReportedLesson{
		LessonID:       lessonID,
		ReporterUserID: req.UserID,
		Reason:         req.Reason,
	}); err != nil {
		h.Log.Error("lessons: report failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to submit report")
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Report submitted",
	})
}

// lessonID parses the {id} route parameter, writing a 404 when it is not a
// valid object id: a malformed id can never reference a lesson.
func lessonID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.NotFound(w, "Lesson not found")
		return primitive.NilObjectID, false
	}
	return id, true
}

// internal/app/features/moderation/handler.go
package moderation

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	lessonstore "github.com/hridoylabs/lessonhub/internal/app/store/lessons"
	reportstore "github.com/hridoylabs/lessonhub/internal/app/store/reports"
	"github.com/hridoylabs/lessonhub/internal/app/system/httpjson"
	"github.com/hridoylabs/lessonhub/internal/app/system/timeouts"
	"github.com/hridoylabs/lessonhub/internal/app/system/txn"
	"github.com/hridoylabs/lessonhub/internal/domain/models"
)

// Handler owns the report-review endpoints. All routes are admin-gated.
type Handler struct {
	Client  *mongo.Client
	Lessons *lessonstore.Store
	Reports *reportstore.Store
	Log     *zap.Logger
}

// NewHandler constructs a moderation Handler.
func NewHandler(client *mongo.Client, db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Client:  client,
		Lessons: lessonstore.New(db),
		Reports: reportstore.New(db),
		Log:     logger,
	}
}

// List handles GET /reported-lessons. Every report comes back, ignored ones
// included; the console shows the ignored flag rather than filtering here.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	reports, err := h.Reports.All(ctx)
	if err != nil {
		h.Log.Error("moderation: list failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to load reports")
		return
	}
	if reports == nil {
		reports = []models.ReportedLesson{}
	}
	httpjson.Respond(w, http.StatusOK, reports)
}

// Ignore handles PATCH /reported-lessons/{id}: resolve a report by marking
// it ignored. An id that matches nothing still reports success, as the
// console treats ignore as fire-and-forget.
func (h *Handler) Ignore(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.NotFound(w, "Report not found")
		return
	}

	if _, err := h.Reports.Ignore(ctx, id); err != nil {
		h.Log.Error("moderation: ignore failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to update report")
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]any{"success": true})
}

// Remove handles DELETE /reported-lessons/{lessonId}: resolve reports by
// removing the lesson itself, cascading to every report that references it.
// Both deletes run in one transaction where the deployment supports it.
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	lessonHex := chi.URLParam(r, "lessonId")
	lessonID, err := primitive.ObjectIDFromHex(lessonHex)
	if err != nil {
		httpjson.NotFound(w, "Lesson not found")
		return
	}

	err = txn.WithTransaction(ctx, h.Client, h.Log, func(ctx context.Context) error {
		if _, err := h.Lessons.Delete(ctx, lessonID); err != nil {
			return err
		}
		// Reports reference the lesson by hex string, not ObjectID.
		_, err := h.Reports.DeleteByLesson(ctx, lessonHex)
		return err
	})
	if err != nil {
		h.Log.Error("moderation: remove failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to delete lesson")
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Lesson and reports deleted successfully",
	})
}

// internal/app/features/stats/handler.go
package stats

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	lessonstore "github.com/hridoylabs/lessonhub/internal/app/store/lessons"
	"github.com/hridoylabs/lessonhub/internal/app/store/queries/lessonqueries"
	"github.com/hridoylabs/lessonhub/internal/app/system/httpjson"
	"github.com/hridoylabs/lessonhub/internal/app/system/timeouts"
)

// Handler owns the derived-view endpoints. All of them recompute per
// request; nothing here is cached.
type Handler struct {
	DB      *mongo.Database
	Lessons *lessonstore.Store
	Log     *zap.Logger
}

// NewHandler constructs a stats Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		Lessons: lessonstore.New(db),
		Log:     logger,
	}
}

// TopContributors handles GET /top-contributors.
func (h *Handler) TopContributors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, err := lessonqueries.TopContributors(ctx, h.DB)
	if err != nil {
		h.Log.Error("stats: top contributors failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to load contributors")
		return
	}
	if rows == nil {
		rows = []lessonqueries.Contributor{}
	}
	httpjson.Respond(w, http.StatusOK, rows)
}

// MostSaved handles GET /most-saved-lessons.
func (h *Handler) MostSaved(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, err := lessonqueries.MostSaved(ctx, h.DB)
	if err != nil {
		h.Log.Error("stats: most saved failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to load lessons")
		return
	}
	if rows == nil {
		rows = []lessonqueries.SavedLesson{}
	}
	httpjson.Respond(w, http.StatusOK, rows)
}

// MyFavoritesCount handles GET /stats/my-favorites-count?userId=. A missing
// userId reads as zero favorites, not an error.
func (h *Handler) MyFavoritesCount(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		httpjson.Respond(w, http.StatusOK, map[string]any{"count": 0})
		return
	}

	count, err := h.Lessons.CountFavoritedBy(ctx, userID)
	if err != nil {
		h.Log.Error("stats: favorites count failed", zap.Error(err))
		httpjson.ServerError(w, "Failed to count favorites")
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]any{"count": count})
}

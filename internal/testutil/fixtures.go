package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hridoylabs/lessonhub/internal/domain/models"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user with the given role.
func (f *Fixtures) CreateUser(ctx context.Context, email, name, role string) models.User {
	f.t.Helper()

	u := models.User{
		ID:        primitive.NewObjectID(),
		Email:     email,
		EmailCI:   email,
		Name:      name,
		Role:      role,
		Premium:   false,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("lessonUsers").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateAdmin inserts an admin user.
func (f *Fixtures) CreateAdmin(ctx context.Context, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, email, "Test Admin", "admin")
}

// CreateLesson inserts a lesson with the given status and returns it.
func (f *Fixtures) CreateLesson(ctx context.Context, title, authorEmail, status string) models.Lesson {
	f.t.Helper()

	l := models.Lesson{
		ID:    primitive.NewObjectID(),
		Title: title,
		Author: models.AuthorSnapshot{
			Email: authorEmail,
			Name:  "Test Author",
		},
		AccessLevel: models.AccessPublic,
		Status:      status,
		Likes:       []string{},
		Favorites:   []string{},
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := f.db.Collection("lessons").InsertOne(ctx, l); err != nil {
		f.t.Fatalf("failed to create test lesson: %v", err)
	}
	return l
}

// CreateApprovedLesson inserts an approved, public lesson.
func (f *Fixtures) CreateApprovedLesson(ctx context.Context, title, authorEmail string) models.Lesson {
	f.t.Helper()
	return f.CreateLesson(ctx, title, authorEmail, models.StatusApproved)
}

// CreateLessonRequest inserts a pending request for the given lesson.
func (f *Fixtures) CreateLessonRequest(ctx context.Context, lessonID primitive.ObjectID, title, authorEmail string) models.LessonRequest {
	f.t.Helper()

	req := models.LessonRequest{
		ID:          primitive.NewObjectID(),
		LessonID:    lessonID,
		Title:       title,
		AuthorEmail: authorEmail,
		AccessLevel: models.AccessPublic,
		Approved:    false,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := f.db.Collection("lessonRequests").InsertOne(ctx, req); err != nil {
		f.t.Fatalf("failed to create test lesson request: %v", err)
	}
	return req
}

// CreateComment inserts a comment on the given lesson hex id.
func (f *Fixtures) CreateComment(ctx context.Context, lessonID, userID, content string) models.Comment {
	f.t.Helper()

	c := models.Comment{
		ID:        primitive.NewObjectID(),
		LessonID:  lessonID,
		UserID:    userID,
		UserEmail: userID + "@test.com",
		UserName:  "Commenter",
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("comments").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("failed to create test comment: %v", err)
	}
	return c
}

// CreateReport inserts a report against the given lesson hex id.
func (f *Fixtures) CreateReport(ctx context.Context, lessonID, reporterID, reason string) models.ReportedLesson {
	f.t.Helper()

	rep := models.ReportedLesson{
		ID:             primitive.NewObjectID(),
		LessonID:       lessonID,
		ReporterUserID: reporterID,
		Reason:         reason,
		Timestamp:      time.Now().UTC(),
	}
	if _, err := f.db.Collection("reportedLessons").InsertOne(ctx, rep); err != nil {
		f.t.Fatalf("failed to create test report: %v", err)
	}
	return rep
}

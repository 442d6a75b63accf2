// Package indexes creates the index sets the query paths rely on. EnsureAll
// runs at startup from the schema hook; every ensure* function is idempotent,
// and problems are aggregated so startup can fail fast with the full picture.
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureAll creates all collection indexes.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureLessonUsers(ctx, db); err != nil {
		problems = append(problems, "lessonUsers: "+err.Error())
	}
	if err := ensureLessons(ctx, db); err != nil {
		problems = append(problems, "lessons: "+err.Error())
	}
	if err := ensureLessonRequests(ctx, db); err != nil {
		problems = append(problems, "lessonRequests: "+err.Error())
	}
	if err := ensureReportedLessons(ctx, db); err != nil {
		problems = append(problems, "reportedLessons: "+err.Error())
	}
	if err := ensureComments(ctx, db); err != nil {
		problems = append(problems, "comments: "+err.Error())
	}
	if err := ensureBills(ctx, db); err != nil {
		problems = append(problems, "bills: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	_, err := coll.Indexes().CreateMany(ctx, models)
	return err
}

func ensureLessonUsers(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("lessonUsers")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Identity lookups resolve by exact email; it is the unique key.
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_lessonusers_email"),
		},
	})
}

func ensureLessons(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("lessons")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Public and featured lists: status (+ accessLevel for featured),
		// newest first.
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_lessons_status_created"),
		},
		{
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "accessLevel", Value: 1},
				{Key: "createdAt", Value: -1},
			},
			Options: options.Index().SetName("idx_lessons_status_access_created"),
		},
		// Per-author lists and the top-contributors grouping.
		{
			Keys:    bson.D{{Key: "author.email", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_lessons_author_created"),
		},
		// My-favorites list and count: multikey over the favorites array.
		{
			Keys:    bson.D{{Key: "favorites", Value: 1}},
			Options: options.Index().SetName("idx_lessons_favorites"),
		},
		// Most-saved ranking.
		{
			Keys:    bson.D{{Key: "favoritesCount", Value: -1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_lessons_favcount_created"),
		},
	})
}

func ensureLessonRequests(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("lessonRequests")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// The moderation queue filters on approved (requests are never
		// deleted) and shows newest first.
		{
			Keys:    bson.D{{Key: "approved", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_requests_approved_created"),
		},
		// The admin lessons view joins requests back onto lessons.
		{
			Keys:    bson.D{{Key: "lessonId", Value: 1}},
			Options: options.Index().SetName("idx_requests_lesson"),
		},
	})
}

func ensureReportedLessons(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("reportedLessons")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Cascade delete matches reports by the lesson's hex id.
		{
			Keys:    bson.D{{Key: "lessonId", Value: 1}},
			Options: options.Index().SetName("idx_reports_lesson"),
		},
	})
}

func ensureComments(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("comments")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Per-lesson comment list, newest first, capped at 50.
		{
			Keys:    bson.D{{Key: "lessonId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_comments_lesson_created"),
		},
	})
}

func ensureBills(ctx context.Context, db *mongo.Database) error {
	if err := ensureIndexSet(ctx, db.Collection("utilityBills"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_bills_created"),
		},
	}); err != nil {
		return err
	}
	return ensureIndexSet(ctx, db.Collection("billPayments"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}, {Key: "paidAt", Value: -1}},
			Options: options.Index().SetName("idx_billpayments_email_paid"),
		},
	})
}

// Package lessonqueries provides the read-only aggregation views over the
// lessons collection. Each view is computed fresh per request; at the
// traffic this service sees, re-scanning beats maintaining materialized
// views.
package lessonqueries

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hridoylabs/lessonhub/internal/domain/models"
)

// contributorWindow is the trailing activity window for the ranking.
const contributorWindow = 7 * 24 * time.Hour

// contributorLimit caps the leaderboard.
const contributorLimit = 12

// Contributor is one row of the top-contributors leaderboard.
type Contributor struct {
	Email       string `bson:"email" json:"email"`
	Name        string `bson:"name" json:"name"`
	Photo       string `bson:"photo,omitempty" json:"photo,omitempty"`
	LessonCount int64  `bson:"lessonCount" json:"lessonCount"`
	Premium     bool   `bson:"premium" json:"premium"`
}

// TopContributors groups the last week's approved lessons by author email,
// counts them, and ranks by count then recency. The author's profile is
// joined for display fields with a fallback chain: per-lesson snapshot, then
// profile, then the literal "Anonymous". Pending lessons never count toward
// the leaderboard; a submission earns rank only once it is public.
func TopContributors(ctx context.Context, db *mongo.Database) ([]Contributor, error) {
	since := time.Now().Add(-contributorWindow).UTC()

	pipeline := []bson.M{
		{"$match": bson.M{
			"status":       models.StatusApproved,
			"createdAt":    bson.M{"$gte": since},
			"author.email": bson.M{"$ne": nil},
		}},
		{"$group": bson.M{
			"_id":            "$author.email",
			"name":           bson.M{"$first": "$author.name"},
			"photo":          bson.M{"$first": "$author.photo"},
			"lessonCount":    bson.M{"$sum": 1},
			"latestActivity": bson.M{"$max": "$createdAt"},
		}},
		{"$sort": bson.D{{Key: "lessonCount", Value: -1}, {Key: "latestActivity", Value: -1}}},
		{"$limit": contributorLimit},
		{"$lookup": bson.M{
			"from":         "lessonUsers",
			"localField":   "_id",
			"foreignField": "email",
			"as":           "profile",
		}},
		{"$unwind": bson.M{
			"path":                       "$profile",
			"preserveNullAndEmptyArrays": true,
		}},
		{"$project": bson.M{
			"email":       "$_id",
			"name":        bson.M{"$ifNull": bson.A{"$name", "$profile.name", "Anonymous"}},
			"photo":       bson.M{"$ifNull": bson.A{"$photo", "$profile.photo"}},
			"lessonCount": 1,
			"premium":     bson.M{"$ifNull": bson.A{"$profile.premium", false}},
		}},
	}

	cur, err := db.Collection("lessons").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []Contributor
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

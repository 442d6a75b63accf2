package lessonqueries

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// mostSavedLimit caps the most-saved listing.
const mostSavedLimit = 12

// SavedAuthor is the display-only author projection on a saved-lesson card.
type SavedAuthor struct {
	Name  string `bson:"name" json:"name"`
	Photo string `bson:"photo,omitempty" json:"photo,omitempty"`
}

// SavedLesson is a reduced lesson card for the most-saved listing.
type SavedLesson struct {
	ID               primitive.ObjectID `bson:"_id" json:"_id"`
	Title            string             `bson:"title" json:"title"`
	ShortDescription string             `bson:"shortDescription,omitempty" json:"shortDescription,omitempty"`
	Category         string             `bson:"category,omitempty" json:"category,omitempty"`
	EmotionalTone    string             `bson:"emotionalTone,omitempty" json:"emotionalTone,omitempty"`
	AccessLevel      string             `bson:"accessLevel" json:"accessLevel"`
	FavoritesCount   int64              `bson:"favoritesCount" json:"favoritesCount"`
	LikesCount       int64              `bson:"likesCount" json:"likesCount"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	Author           SavedAuthor        `bson:"author" json:"author"`
}

// MostSaved lists approved lessons that have been favorited at least once,
// ranked by favorites count then recency. The author's profile is joined for
// the same snapshot → profile → "Anonymous" display fallback the contributor
// board uses. Pending lessons never appear here regardless of their counts.
func MostSaved(ctx context.Context, db *mongo.Database) ([]SavedLesson, error) {
	pipeline := []bson.M{
		{"$match": bson.M{
			"status":         "approved",
			"favoritesCount": bson.M{"$gt": 0},
		}},
		{"$sort": bson.D{{Key: "favoritesCount", Value: -1}, {Key: "createdAt", Value: -1}}},
		{"$limit": mostSavedLimit},
		{"$lookup": bson.M{
			"from":         "lessonUsers",
			"localField":   "author.email",
			"foreignField": "email",
			"as":           "authorProfile",
		}},
		{"$unwind": bson.M{
			"path":                       "$authorProfile",
			"preserveNullAndEmptyArrays": true,
		}},
		{"$project": bson.M{
			"_id":              1,
			"title":            1,
			"shortDescription": 1,
			"category":         1,
			"emotionalTone":    1,
			"accessLevel":      1,
			"favoritesCount":   1,
			"likesCount":       1,
			"createdAt":        1,
			"author": bson.M{
				"name":  bson.M{"$ifNull": bson.A{"$author.name", "$authorProfile.name", "Anonymous"}},
				"photo": bson.M{"$ifNull": bson.A{"$author.photo", "$authorProfile.photo"}},
			},
		}},
	}

	cur, err := db.Collection("lessons").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []SavedLesson
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

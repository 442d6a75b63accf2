package lessonqueries

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hridoylabs/lessonhub/internal/domain/models"
)

// AdminLesson is a lesson joined with the id of its submission request, so
// the admin console can approve from the same listing.
type AdminLesson struct {
	models.Lesson `bson:",inline"`
	RequestID     *primitive.ObjectID `bson:"requestId,omitempty" json:"requestId,omitempty"`
}

// AdminLessons lists every lesson regardless of status, newest first, each
// carrying the id of its lessonRequests record when one exists. Lessons
// created before the request queue existed simply have no requestId.
func AdminLessons(ctx context.Context, db *mongo.Database) ([]AdminLesson, error) {
	pipeline := []bson.M{
		{"$sort": bson.M{"createdAt": -1}},
		{"$lookup": bson.M{
			"from":         "lessonRequests",
			"localField":   "_id",
			"foreignField": "lessonId",
			"as":           "request",
		}},
		{"$unwind": bson.M{
			"path":                       "$request",
			"preserveNullAndEmptyArrays": true,
		}},
		{"$addFields": bson.M{"requestId": "$request._id"}},
		{"$project": bson.M{"request": 0}},
	}

	cur, err := db.Collection("lessons").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []AdminLesson
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

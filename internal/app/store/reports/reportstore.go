package reportstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hridoylabs/lessonhub/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("reportedLessons")}
}

// Create inserts a report. Repeated reports from the same user against the
// same lesson are not deduplicated.
func (s *Store) Create(ctx context.Context, rep models.ReportedLesson) (models.ReportedLesson, error) {
	rep.ID = primitive.NewObjectID()
	rep.Ignored = false
	rep.Timestamp = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, rep); err != nil {
		return models.ReportedLesson{}, err
	}
	return rep, nil
}

// All returns every report record, including already-ignored ones, newest
// first.
func (s *Store) All(ctx context.Context) ([]models.ReportedLesson, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var reports []models.ReportedLesson
	if err := cur.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// Ignore marks a report resolved without removing the lesson. A zero matched
// count is not an error; the caller passes the write result through.
func (s *Store) Ignore(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"ignored": true}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// DeleteByLesson removes every report referencing the lesson's hex id. The
// match is by stored string value, which is exactly how the reports were
// written.
func (s *Store) DeleteByLesson(ctx context.Context, lessonID string) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"lessonId": lessonID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

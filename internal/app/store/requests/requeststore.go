package requeststore

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
	return &Store{c: db.Collection("lessonRequests")}
}

// Create inserts the queue entry paired with a lesson submission.
func (s *Store) Create(ctx context.Context, req models.LessonRequest) (models.LessonRequest, error) {
	req.ID = primitive.NewObjectID()
	req.Approved = false
	req.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, req); err != nil {
		return models.LessonRequest{}, err
	}
	return req, nil
}

// GetByID loads a request. Returns mongo.ErrNoDocuments when absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.LessonRequest, error) {
	var req models.LessonRequest
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// Pending returns the unapproved queue, newest first. Approved requests are
// kept forever as an audit trail, which is why this filters on the flag
// instead of relying on collection membership.
func (s *Store) Pending(ctx context.Context) ([]models.LessonRequest, error) {
	cur, err := s.c.Find(ctx,
		bson.M{"approved": false},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var reqs []models.LessonRequest
	if err := cur.All(ctx, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

// MarkApproved flips the approval flag. The record itself is retained.
func (s *Store) MarkApproved(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"approved": true}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

package commentstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hridoylabs/lessonhub/internal/app/store/toggle"
	"github.com/hridoylabs/lessonhub/internal/domain/models"
)

// listLimit caps how many comments a single lesson page loads.
const listLimit = 50

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("comments")}
}

// Create inserts a comment with a server-assigned timestamp and returns it
// with the generated id stringified for transport.
func (s *Store) Create(ctx context.Context, c models.Comment) (models.Comment, error) {
	c.ID = primitive.NewObjectID()
	c.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, c); err != nil {
		return models.Comment{}, err
	}
	c.IDHex = c.ID.Hex()
	return c, nil
}

// GetByID loads a comment. Returns mongo.ErrNoDocuments when absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	var c models.Comment
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, err
	}
	c.IDHex = c.ID.Hex()
	return &c, nil
}

// ListByLesson returns up to 50 comments for the lesson's hex id, newest
// first, ids stringified.
func (s *Store) ListByLesson(ctx context.Context, lessonID string) ([]models.Comment, error) {
	cur, err := s.c.Find(ctx,
		bson.M{"lessonId": lessonID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(listLimit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var comments []models.Comment
	if err := cur.All(ctx, &comments); err != nil {
		return nil, err
	}
	for i := range comments {
		comments[i].IDHex = comments[i].ID.Hex()
	}
	return comments, nil
}

// ToggleLike atomically flips userID's membership in the comment's likes
// list and returns the new cached count. Returns mongo.ErrNoDocuments when
// the comment does not exist.
func (s *Store) ToggleLike(ctx context.Context, id primitive.ObjectID, userID string) (int, error) {
	var updated models.Comment
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		toggle.Pipeline("likes", "likesCount", userID),
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return 0, err
	}
	return updated.LikesCount, nil
}

// Delete removes a comment. Returns the deleted count (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

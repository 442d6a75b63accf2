package lessonstore

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

// featuredLimit caps the featured-lessons strip on the landing page.
const featuredLimit = 6

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("lessons")}
}

// Collection exposes the underlying collection for transactional callers
// that combine lesson writes with other collections.
func (s *Store) Collection() *mongo.Collection {
	return s.c
}

// Create inserts a new lesson. Submissions always enter the moderation queue:
// status starts pending, engagement lists start empty with zeroed counts, and
// the access level defaults to public.
func (s *Store) Create(ctx context.Context, l models.Lesson) (models.Lesson, error) {
	l.ID = primitive.NewObjectID()
	l.Status = models.StatusPending
	l.Featured = false
	l.Reviewed = false
	l.Likes = []string{}
	l.LikesCount = 0
	l.Favorites = []string{}
	l.FavoritesCount = 0
	if l.AccessLevel == "" {
		l.AccessLevel = models.AccessPublic
	}
	l.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, l); err != nil {
		return models.Lesson{}, err
	}
	return l, nil
}

// GetByID loads a lesson. Returns mongo.ErrNoDocuments when absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Lesson, error) {
	var l models.Lesson
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&l); err != nil {
		return nil, err
	}
	return &l, nil
}

// Update merges an arbitrary caller-supplied field set into the lesson.
// Which fields are legal to overwrite is not checked here; the route is
// only reachable by the lesson's owner or an admin. Returns the matched
// count so the handler can report not-found.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error) {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// Delete removes a lesson. Returns the deleted count (0 or 1). Comments and
// reports are not touched here; only the moderation removal path cascades.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Featured returns up to 6 approved public lessons, newest first.
func (s *Store) Featured(ctx context.Context) ([]models.Lesson, error) {
	return s.find(ctx,
		bson.M{"status": models.StatusApproved, "accessLevel": models.AccessPublic},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(featuredLimit))
}

// Public returns every approved lesson, newest first.
func (s *Store) Public(ctx context.Context) ([]models.Lesson, error) {
	return s.find(ctx,
		bson.M{"status": models.StatusApproved},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

// ByAuthor returns all lessons with the given author email, newest first.
// No status filter: authors see their own pending submissions.
func (s *Store) ByAuthor(ctx context.Context, email string) ([]models.Lesson, error) {
	return s.find(ctx,
		bson.M{"author.email": email},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

// ByFavoriter returns every lesson the given user has favorited, newest
// first, regardless of status.
func (s *Store) ByFavoriter(ctx context.Context, userID string) ([]models.Lesson, error) {
	return s.find(ctx,
		bson.M{"favorites": userID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (s *Store) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Lesson, error) {
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var lessons []models.Lesson
	if err := cur.All(ctx, &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}

// ToggleLike atomically flips userID's membership in the likes list and
// returns the new cached count. Returns mongo.ErrNoDocuments when the lesson
// does not exist.
func (s *Store) ToggleLike(ctx context.Context, id primitive.ObjectID, userID string) (int, error) {
	return s.toggle(ctx, id, "likes", "likesCount", userID)
}

// ToggleFavorite is ToggleLike for the favorites list.
func (s *Store) ToggleFavorite(ctx context.Context, id primitive.ObjectID, userID string) (int, error) {
	return s.toggle(ctx, id, "favorites", "favoritesCount", userID)
}

func (s *Store) toggle(ctx context.Context, id primitive.ObjectID, field, countField, userID string) (int, error) {
	var updated models.Lesson
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		toggle.Pipeline(field, countField, userID),
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return 0, err
	}
	if field == "likes" {
		return updated.LikesCount, nil
	}
	return updated.FavoritesCount, nil
}

// Approve flips the lesson's status to approved. Returns the matched count.
func (s *Store) Approve(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": models.StatusApproved}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// CountFavoritedBy counts lessons carrying userID in their favorites list.
func (s *Store) CountFavoritedBy(ctx context.Context, userID string) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"favorites": userID})
}

// InsertedAt overrides the creation timestamp of an existing lesson.
// Test fixtures use it to build aged data for the trailing-window queries.
func (s *Store) InsertedAt(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"createdAt": at}})
	return err
}

package userstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hridoylabs/lessonhub/internal/app/system/normalize"
	"github.com/hridoylabs/lessonhub/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("lessonUsers")}
}

// ErrDuplicateEmail is returned when attempting to create a user with an
// email that already exists.
var ErrDuplicateEmail = errors.New("a user with this email already exists")

// GetByEmail looks up a user by normalized email. Returns
// mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID loads a user by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user after normalizing fields. Role defaults to
// "user" and display name to "Unknown User" when absent.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = primitive.NewObjectID()
	u.Email = normalize.Email(u.Email)
	u.EmailCI = text.Fold(u.Email)
	u.Name = normalize.Name(u.Name)
	if u.Name == "" {
		u.Name = "Unknown User"
	}
	if u.Role == "" {
		u.Role = "user"
	}
	u.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// EnsureByEmail returns the user for email, creating a minimal record when
// none exists. Used by lesson submission, which must leave an author record
// behind. A concurrent create by the same email is absorbed via the unique
// index: on a duplicate error the existing record is loaded and returned.
func (s *Store) EnsureByEmail(ctx context.Context, email, name, photo string) (*models.User, error) {
	if u, err := s.GetByEmail(ctx, email); err == nil {
		return u, nil
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	created, err := s.Create(ctx, models.User{Email: email, Name: name, Photo: photo})
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return s.GetByEmail(ctx, email)
		}
		return nil, err
	}
	return &created, nil
}

// List returns every user record. The admin console is the only caller; the
// user population is small enough that it is unpaginated, as it always was.
func (s *Store) List(ctx context.Context) ([]models.User, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateRolePremium sets the role and premium flag on a user. Returns the
// matched count so callers can report not-found.
func (s *Store) UpdateRolePremium(ctx context.Context, id primitive.ObjectID, role string, premium bool) (int64, error) {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"role":    role,
		"premium": premium,
	}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// Delete removes a user by ID. Returns the deleted count (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// MakePremium flips the premium flag on and stamps the activation time.
// Returns the matched count (0 when no user has that email).
func (s *Store) MakePremium(ctx context.Context, email string) (int64, error) {
	now := time.Now().UTC()
	res, err := s.c.UpdateOne(ctx, bson.M{"email": normalize.Email(email)}, bson.M{"$set": bson.M{
		"premium":            true,
		"premiumActivatedAt": now,
	}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

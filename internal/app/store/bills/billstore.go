package billstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hridoylabs/lessonhub/internal/app/system/normalize"
	"github.com/hridoylabs/lessonhub/internal/domain/models"
)

// Store covers the utility-bill tracker: the catalog of bills plus the
// per-user payment records.
type Store struct {
	bills    *mongo.Collection
	payments *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		bills:    db.Collection("utilityBills"),
		payments: db.Collection("billPayments"),
	}
}

// List returns every bill, newest first.
func (s *Store) List(ctx context.Context) ([]models.Bill, error) {
	cur, err := s.bills.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var bills []models.Bill
	if err := cur.All(ctx, &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

// GetByID loads a bill. Returns mongo.ErrNoDocuments when absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Bill, error) {
	var b models.Bill
	if err := s.bills.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

// RecordPayment stores that the given email paid the bill.
func (s *Store) RecordPayment(ctx context.Context, p models.BillPayment) (models.BillPayment, error) {
	p.ID = primitive.NewObjectID()
	p.Email = normalize.Email(p.Email)
	p.PaidAt = time.Now().UTC()

	if _, err := s.payments.InsertOne(ctx, p); err != nil {
		return models.BillPayment{}, err
	}
	return p, nil
}

// PaymentsByEmail returns a user's payment history, newest first.
func (s *Store) PaymentsByEmail(ctx context.Context, email string) ([]models.BillPayment, error) {
	cur, err := s.payments.Find(ctx,
		bson.M{"email": normalize.Email(email)},
		options.Find().SetSort(bson.D{{Key: "paidAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var payments []models.BillPayment
	if err := cur.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

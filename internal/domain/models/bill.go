// internal/domain/models/bill.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Bill is a utility bill offered for payment tracking.
type Bill struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Type        string             `bson:"type" json:"type"` // electricity | gas | water | internet
	Provider    string             `bson:"provider" json:"provider"`
	Amount      int64              `bson:"amount" json:"amount"` // smallest currency unit
	DueDate     time.Time          `bson:"dueDate" json:"dueDate"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// BillPayment records that a user paid a bill. Keyed by the paying user's
// email, like everything else in the system.
type BillPayment struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	BillID primitive.ObjectID `bson:"billId" json:"billId"`
	Email  string             `bson:"email" json:"email"`
	Amount int64              `bson:"amount" json:"amount"`
	PaidAt time.Time          `bson:"paidAt" json:"paidAt"`
}

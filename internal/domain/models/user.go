// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a lesson-platform account keyed by email.
//
// NOTE:
//   - Records are created lazily: by self-registration or as a side effect of
//     a lesson submission. An email with no record resolves to role "user",
//     premium false.
//   - BSON field names match the documents of the deployed service, so an
//     existing database keeps working without migration.
type User struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email   string             `bson:"email" json:"email"`
	EmailCI string             `bson:"emailCI,omitempty" json:"-"` // lowercase, diacritics-stripped
	Name    string             `bson:"name" json:"name"`
	Photo   string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role    string             `bson:"role" json:"role"` // user | admin
	Premium bool               `bson:"premium" json:"premium"`

	PremiumActivatedAt *time.Time `bson:"premiumActivatedAt,omitempty" json:"premiumActivatedAt,omitempty"`
	CreatedAt          time.Time  `bson:"createdAt" json:"createdAt"`
}

// internal/domain/models/lesson.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthorSnapshot is a point-in-time copy of the submitting user's identity,
// embedded on each lesson. It is deliberately not a live reference: later
// profile edits do not retroactively change how a lesson is displayed.
type AuthorSnapshot struct {
	Email string `bson:"email" json:"email"`
	Name  string `bson:"name" json:"name"`
	Photo string `bson:"photo,omitempty" json:"photo,omitempty"`
}

// Lesson is a user-submitted piece of content subject to moderation and
// public/premium access gating.
//
// LikesCount and FavoritesCount are denormalized caches of the list lengths.
// They are never settable on their own; the toggle operations recompute them
// in the same update that mutates the list.
type Lesson struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title            string             `bson:"title" json:"title"`
	ShortDescription string             `bson:"shortDescription,omitempty" json:"shortDescription,omitempty"`
	Category         string             `bson:"category,omitempty" json:"category,omitempty"`
	EmotionalTone    string             `bson:"emotionalTone,omitempty" json:"emotionalTone,omitempty"`
	Content          string             `bson:"content,omitempty" json:"content,omitempty"`
	Author           AuthorSnapshot     `bson:"author" json:"author"`
	AccessLevel      string             `bson:"accessLevel" json:"accessLevel"` // public | premium
	Status           string             `bson:"status" json:"status"`           // pending | approved
	Featured         bool               `bson:"featured" json:"featured"`
	Reviewed         bool               `bson:"reviewed" json:"reviewed"`
	Likes            []string           `bson:"likes" json:"likes"`
	LikesCount       int                `bson:"likesCount" json:"likesCount"`
	Favorites        []string           `bson:"favorites" json:"favorites"`
	FavoritesCount   int                `bson:"favoritesCount" json:"favoritesCount"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
}

// Lesson lifecycle status values.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
)

// Lesson access levels.
const (
	AccessPublic  = "public"
	AccessPremium = "premium"
)

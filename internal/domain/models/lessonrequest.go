// internal/domain/models/lessonrequest.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LessonRequest is the moderation-queue entry created 1:1 with each lesson
// submission. It denormalizes the fields an admin needs to review without
// loading the lesson itself.
//
// Requests are never deleted, even after approval: the queue query filters on
// Approved rather than relying on collection membership, and the approved
// records remain as an audit trail.
type LessonRequest struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	LessonID    primitive.ObjectID `bson:"lessonId" json:"lessonId"`
	Title       string             `bson:"title" json:"title"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	AuthorEmail string             `bson:"authorEmail" json:"authorEmail"`
	AccessLevel string             `bson:"accessLevel" json:"accessLevel"`
	Approved    bool               `bson:"approved" json:"approved"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

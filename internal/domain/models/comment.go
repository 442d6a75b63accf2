// internal/domain/models/comment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a user comment on a lesson, with its own toggleable like list.
// LessonID is the lesson's hex id as a string, matching how the client
// addresses lessons over the wire.
type Comment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	IDHex      string             `bson:"-" json:"_id"` // stringified for transport
	LessonID   string             `bson:"lessonId" json:"lessonId"`
	UserID     string             `bson:"userId" json:"userId"`
	UserEmail  string             `bson:"userEmail" json:"userEmail"`
	UserName   string             `bson:"userName" json:"userName"`
	UserPhoto  string             `bson:"userPhoto" json:"userPhoto"` // empty unless http-prefixed
	Content    string             `bson:"content" json:"content"`
	Likes      []string           `bson:"likes,omitempty" json:"likes,omitempty"`
	LikesCount int                `bson:"likesCount,omitempty" json:"likesCount"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

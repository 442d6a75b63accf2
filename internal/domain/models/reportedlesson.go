// internal/domain/models/reportedlesson.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportedLesson is a user-submitted report against a lesson.
//
// LessonID is stored as the lesson's hex id in a plain string, not an
// ObjectID reference, so a report stays decodable even if the lesson it
// points at is gone. In practice the moderation removal path cascade-deletes
// reports together with their lesson.
type ReportedLesson struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	LessonID       string             `bson:"lessonId" json:"lessonId"`
	ReporterUserID string             `bson:"reporterUserId" json:"reporterUserId"`
	Reason         string             `bson:"reason" json:"reason"`
	Timestamp      time.Time          `bson:"timestamp" json:"timestamp"`
	Ignored        bool               `bson:"ignored" json:"ignored"`
}

package model

import "time"

// Notification is a scheduled in-app message. Delivery is handled by an
// external collaborator; this service only records and lists them.
type Notification struct {
	ID            string    `bson:"_id" json:"id"`
	UserID        string    `bson:"user_id" json:"user_id"`
	Title         string    `bson:"title" json:"title"`
	Message       string    `bson:"message" json:"message"`
	Type          string    `bson:"type" json:"type"` // reminder, nudge, achievement, reflection
	RelatedID     string    `bson:"related_id,omitempty" json:"related_id,omitempty"`
	ScheduledTime time.Time `bson:"scheduled_time" json:"scheduled_time"`
	Sent          bool      `bson:"sent" json:"sent"`
	Opened        bool      `bson:"opened" json:"opened"`
	ActionTaken   bool      `bson:"action_taken" json:"action_taken"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

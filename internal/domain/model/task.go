package model

import "time"

// Task is a standalone user task outside any task group.
type Task struct {
	ID                string     `bson:"_id" json:"id"`
	UserID            string     `bson:"user_id" json:"user_id"`
	Title             string     `bson:"title" json:"title"`
	Description       string     `bson:"description" json:"description"`
	Priority          int        `bson:"priority" json:"priority"`
	AIPriority        *int       `bson:"ai_priority,omitempty" json:"ai_priority,omitempty"`
	Category          string     `bson:"category" json:"category"`
	Tags              []string   `bson:"tags" json:"tags"`
	DueDate           *time.Time `bson:"due_date,omitempty" json:"due_date,omitempty"`
	StartDate         *time.Time `bson:"start_date,omitempty" json:"start_date,omitempty"`
	EstimatedDuration *int       `bson:"estimated_duration,omitempty" json:"estimated_duration,omitempty"`
	Context           string     `bson:"context,omitempty" json:"context,omitempty"`
	Completed         bool       `bson:"completed" json:"completed"`
	CompletedAt       *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	CreatedAt         time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `bson:"updated_at" json:"updated_at"`
}

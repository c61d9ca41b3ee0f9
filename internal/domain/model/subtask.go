package model

import "time"

// Subtask is one persisted unit of work belonging to exactly one TaskGroup.
// Dependencies are ordering hints surfaced to the client; completion is not
// gated on them.
type Subtask struct {
	ID                string     `bson:"_id" json:"id"`
	GroupID           string     `bson:"group_id" json:"group_id"`
	Title             string     `bson:"title" json:"title"`
	Description       string     `bson:"description" json:"description"`
	EstimatedDuration int        `bson:"estimated_duration" json:"estimated_duration"`
	Priority          int        `bson:"priority" json:"priority"`
	Order             int        `bson:"order" json:"order"`
	Dependencies      []string   `bson:"dependencies" json:"dependencies"`
	Completed         bool       `bson:"completed" json:"completed"`
	CompletedAt       *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	CreatedAt         time.Time  `bson:"created_at" json:"created_at"`
}

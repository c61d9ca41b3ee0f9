package dto

import "time"

// TaskCreate is the request body for creating a task.
type TaskCreate struct {
	Title             string     `json:"title" validate:"required,max=500"`
	Description       string     `json:"description" validate:"max=1000"`
	Priority          int        `json:"priority" validate:"min=0,max=5"`
	Category          string     `json:"category"`
	Tags              []string   `json:"tags"`
	DueDate           *time.Time `json:"due_date,omitempty"`
	StartDate         *time.Time `json:"start_date,omitempty"`
	EstimatedDuration *int       `json:"estimated_duration,omitempty"`
	Context           string     `json:"context"`
}

// TaskUpdate carries partial updates; nil fields are left untouched.
type TaskUpdate struct {
	Title             *string    `json:"title,omitempty"`
	Description       *string    `json:"description,omitempty"`
	Priority          *int       `json:"priority,omitempty"`
	Category          *string    `json:"category,omitempty"`
	Tags              []string   `json:"tags,omitempty"`
	DueDate           *time.Time `json:"due_date,omitempty"`
	StartDate         *time.Time `json:"start_date,omitempty"`
	EstimatedDuration *int       `json:"estimated_duration,omitempty"`
	Completed         *bool      `json:"completed,omitempty"`
	Context           *string    `json:"context,omitempty"`
}

// NextBestTask is the recommendation returned by the next-best-task endpoint.
type NextBestTask struct {
	Recommendation string    `json:"recommendation"`
	Timestamp      time.Time `json:"timestamp"`
}

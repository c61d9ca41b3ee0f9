package model

import "time"

// TaskGroup is a persisted collection of subtasks materialized from one
// decomposition result. Owned by exactly one user.
type TaskGroup struct {
	ID                  string    `bson:"_id" json:"id"`
	UserID              string    `bson:"user_id" json:"user_id"`
	MainTaskTitle       string    `bson:"main_task_title" json:"main_task_title"`
	MainTaskDescription string    `bson:"main_task_description" json:"main_task_description"`
	Category            string    `bson:"category" json:"category"`
	TotalSubtasks       int       `bson:"total_subtasks" json:"total_subtasks"`
	CompletedSubtasks   int       `bson:"completed_subtasks" json:"completed_subtasks"`
	ProgressPercentage  float64   `bson:"progress_percentage" json:"progress_percentage"`
	IsActive            bool      `bson:"is_active" json:"is_active"`
	CreatedAt           time.Time `bson:"created_at" json:"created_at"`
}

// ApplyCompletion advances the group's counters by one completed subtask and
// recomputes the derived fields. The store-side pipeline update performs the
// same arithmetic atomically on the document; this in-memory form backs
// responses and tests.
func (g *TaskGroup) ApplyCompletion() {
	if g.CompletedSubtasks >= g.TotalSubtasks {
		return
	}
	g.CompletedSubtasks++
	g.ProgressPercentage = 100 * float64(g.CompletedSubtasks) / float64(g.TotalSubtasks)
	g.IsActive = g.CompletedSubtasks < g.TotalSubtasks
}

package dto

import (
	"github.com/taskflowhq/taskflow-server/internal/domain/model"
)

// MaterializeResponse reports a successful materialization.
type MaterializeResponse struct {
	GroupID         string `json:"group_id"`
	SubtasksCreated int    `json:"subtasks_created"`
}

// GroupProgress is the per-group progress view returned after a subtask
// completes and from the group listing.
type GroupProgress struct {
	GroupID            string  `json:"group_id"`
	TotalSubtasks      int     `json:"total_subtasks"`
	CompletedSubtasks  int     `json:"completed_subtasks"`
	ProgressPercentage float64 `json:"progress_percentage"`
	IsActive           bool    `json:"is_active"`
}

// NewGroupProgress builds the progress view from a group document.
func NewGroupProgress(g *model.TaskGroup) GroupProgress {
	return GroupProgress{
		GroupID:            g.ID,
		TotalSubtasks:      g.TotalSubtasks,
		CompletedSubtasks:  g.CompletedSubtasks,
		ProgressPercentage: g.ProgressPercentage,
		IsActive:           g.IsActive,
	}
}

// GroupDetail is a group with its ordered subtasks.
type GroupDetail struct {
	Group    *model.TaskGroup `json:"group"`
	Subtasks []*model.Subtask `json:"subtasks"`
}

package repository

import (
	"context"

	"github.com/taskflowhq/taskflow-server/internal/domain/model"
)

// TaskGroupRepository persists task groups and their subtasks.
type TaskGroupRepository interface {
	// CreateGroupWithSubtasks durably creates the group and all its subtasks
	// in one atomic operation. On failure nothing is persisted.
	CreateGroupWithSubtasks(ctx context.Context, group *model.TaskGroup, subtasks []*model.Subtask) error

	GetGroup(ctx context.Context, id string) (*model.TaskGroup, error)

	// ListGroupsByUser returns the user's groups ordered by creation time,
	// most recent first.
	ListGroupsByUser(ctx context.Context, userID string) ([]*model.TaskGroup, error)

	// ListSubtasks returns the group's subtasks ordered by their order field.
	ListSubtasks(ctx context.Context, groupID string) ([]*model.Subtask, error)

	GetSubtask(ctx context.Context, id string) (*model.Subtask, error)

	// CompleteSubtask marks the subtask completed exactly once and updates
	// the owning group's counters atomically. The returned flag is true only
	// for the first completion; repeats are a no-op and return the current
	// group state.
	CompleteSubtask(ctx context.Context, subtaskID string) (*model.TaskGroup, bool, error)
}

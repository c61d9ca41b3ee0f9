package repository

import (
	"context"
	"time"

	"github.com/taskflowhq/taskflow-server/internal/domain/dto"
	"github.com/taskflowhq/taskflow-server/internal/domain/model"
)

// TaskRepository persists standalone tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, id, userID string) (*model.Task, error)

	// ListByUser returns tasks newest first; completed filters when non-nil.
	ListByUser(ctx context.Context, userID string, completed *bool) ([]*model.Task, error)

	Update(ctx context.Context, id, userID string, update *dto.TaskUpdate) (*model.Task, error)
	Delete(ctx context.Context, id, userID string) error

	Count(ctx context.Context, userID string, completedOnly bool) (int64, error)
	ListCompletedSince(ctx context.Context, userID string, since time.Time, limit int) ([]*model.Task, error)
}

package repository

import (
	"context"
	"time"

	"github.com/taskflowhq/taskflow-server/internal/domain/model"
)

// HabitRepository persists habits and their completion history.
type HabitRepository interface {
	Create(ctx context.Context, habit *model.Habit) error
	ListActive(ctx context.Context, userID string) ([]*model.Habit, error)

	// RecordCompletion inserts a completion record and advances the habit's
	// streak counters atomically. Returns the new current streak.
	RecordCompletion(ctx context.Context, completion *model.HabitCompletion) (int, error)

	CountCompletionsSince(ctx context.Context, userID string, since time.Time) (int64, error)
}

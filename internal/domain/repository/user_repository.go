package repository

import (
	"context"

	"github.com/taskflowhq/taskflow-server/internal/domain/model"
)

// UserRepository persists user accounts and their XP counters.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)

	// AddXP atomically increments the user's XP points.
	AddXP(ctx context.Context, userID string, points int) error
}

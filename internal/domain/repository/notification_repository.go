package repository

import (
	"context"

	"github.com/taskflowhq/taskflow-server/internal/domain/model"
)

// NotificationRepository persists scheduled notifications.
type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	ListRecent(ctx context.Context, userID string, limit int) ([]*model.Notification, error)
}

// InsightRepository persists generated AI insights.
type InsightRepository interface {
	Create(ctx context.Context, insight *model.AIInsight) error
}

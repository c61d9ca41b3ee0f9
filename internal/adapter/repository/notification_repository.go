package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/taskflowhq/taskflow-server/internal/domain/model"
	"github.com/taskflowhq/taskflow-server/internal/domain/repository"
)

type notificationRepository struct {
	notifications *mongo.Collection
	logger        *zap.Logger
}

// NewNotificationRepository creates a MongoDB-backed notification repository.
func NewNotificationRepository(db *mongo.Database, logger *zap.Logger) repository.NotificationRepository {
	return &notificationRepository{
		notifications: db.Collection("notifications"),
		logger:        logger,
	}
}

func (r *notificationRepository) Create(ctx context.Context, notification *model.Notification) error {
	_, err := r.notifications.InsertOne(ctx, notification)
	return err
}

func (r *notificationRepository) ListRecent(ctx context.Context, userID string, limit int) ([]*model.Notification, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.notifications.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []*model.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

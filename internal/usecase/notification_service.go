package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/taskflowhq/taskflow-server/internal/domain/dto"
	"github.com/taskflowhq/taskflow-server/internal/domain/model"
	"github.com/taskflowhq/taskflow-server/internal/domain/repository"
	"github.com/taskflowhq/taskflow-server/internal/utils"
)

const recentNotificationLimit = 50

// NotificationService records and lists in-app notifications. Delivery is
// out of scope.
type NotificationService struct {
	notifications repository.NotificationRepository
	logger        *zap.Logger
}

// NewNotificationService creates a new notification service.
func NewNotificationService(notifications repository.NotificationRepository, logger *zap.Logger) *NotificationService {
	return &NotificationService{notifications: notifications, logger: logger}
}

// Create schedules a notification.
func (s *NotificationService) Create(ctx context.Context, userID string, req *dto.NotificationCreate) (*model.Notification, error) {
	id, err := utils.GenerateID(utils.PrefixNotification)
	if err != nil {
		return nil, err
	}

	notification := &model.Notification{
		ID:            id,
		UserID:        userID,
		Title:         req.Title,
		Message:       req.Message,
		Type:          req.Type,
		RelatedID:     req.RelatedID,
		ScheduledTime: req.ScheduledTime,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.notifications.Create(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// ListRecent returns the user's most recent notifications.
func (s *NotificationService) ListRecent(ctx context.Context, userID string) ([]*model.Notification, error) {
	return s.notifications.ListRecent(ctx, userID, recentNotificationLimit)
}

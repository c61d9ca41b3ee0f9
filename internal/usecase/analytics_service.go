package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/taskflowhq/taskflow-server/internal/domain/dto"
	"github.com/taskflowhq/taskflow-server/internal/domain/repository"
)

// AnalyticsService assembles the dashboard numbers.
type AnalyticsService struct {
	tasks  repository.TaskRepository
	habits repository.HabitRepository
	users  repository.UserRepository
	logger *zap.Logger
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(tasks repository.TaskRepository, habits repository.HabitRepository, users repository.UserRepository, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{
		tasks:  tasks,
		habits: habits,
		users:  users,
		logger: logger,
	}
}

// Dashboard returns the user's headline productivity numbers.
func (s *AnalyticsService) Dashboard(ctx context.Context, userID string) (*dto.DashboardAnalytics, error) {
	totalTasks, err := s.tasks.Count(ctx, userID, false)
	if err != nil {
		return nil, err
	}
	completedTasks, err := s.tasks.Count(ctx, userID, true)
	if err != nil {
		return nil, err
	}

	weekStart := time.Now().UTC().AddDate(0, 0, -7)
	habitCompletions, err := s.habits.CountCompletionsSince(ctx, userID, weekStart)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	completionRate := 0.0
	if totalTasks > 0 {
		completionRate = float64(completedTasks) / float64(totalTasks)
	}

	return &dto.DashboardAnalytics{
		TotalTasks:               totalTasks,
		CompletedTasks:           completedTasks,
		CompletionRate:           completionRate,
		HabitCompletionsThisWeek: habitCompletions,
		XPPoints:                 user.XPPoints,
		KarmaLevel:               user.KarmaLevel(),
	}, nil
}

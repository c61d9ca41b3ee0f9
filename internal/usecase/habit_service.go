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

// HabitService handles habit tracking and streaks.
type HabitService struct {
	habits repository.HabitRepository
	users  repository.UserRepository
	logger *zap.Logger
}

// NewHabitService creates a new habit service.
func NewHabitService(habits repository.HabitRepository, users repository.UserRepository, logger *zap.Logger) *HabitService {
	return &HabitService{
		habits: habits,
		users:  users,
		logger: logger,
	}
}

// Create stores a new habit.
func (s *HabitService) Create(ctx context.Context, userID string, req *dto.HabitCreate) (*model.Habit, error) {
	id, err := utils.GenerateID(utils.PrefixHabit)
	if err != nil {
		return nil, err
	}

	frequency := req.Frequency
	if frequency == "" {
		frequency = "daily"
	}
	targetCount := req.TargetCount
	if targetCount == 0 {
		targetCount = 1
	}

	habit := &model.Habit{
		ID:           id,
		UserID:       userID,
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Frequency:    frequency,
		TargetCount:  targetCount,
		IsActive:     true,
		ReminderTime: req.ReminderTime,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.habits.Create(ctx, habit); err != nil {
		return nil, err
	}
	return habit, nil
}

// List returns the user's active habits.
func (s *HabitService) List(ctx context.Context, userID string) ([]*model.Habit, error) {
	return s.habits.ListActive(ctx, userID)
}

// Complete records one habit completion, advances the streak and awards XP.
func (s *HabitService) Complete(ctx context.Context, userID, habitID string) (*dto.HabitCompleteResponse, error) {
	id, err := utils.GenerateID(utils.PrefixCompletion)
	if err != nil {
		return nil, err
	}

	completion := &model.HabitCompletion{
		ID:            id,
		UserID:        userID,
		HabitID:       habitID,
		CompletedDate: time.Now().UTC(),
		Count:         1,
	}

	streak, err := s.habits.RecordCompletion(ctx, completion)
	if err != nil {
		return nil, err
	}

	if err := s.users.AddXP(ctx, userID, model.XPHabitCompletion); err != nil {
		s.logger.Warn("Failed to award habit XP",
			zap.String("user_id", userID),
			zap.String("habit_id", habitID),
			zap.Error(err))
	}

	return &dto.HabitCompleteResponse{Message: "Habit completed successfully", Streak: streak}, nil
}

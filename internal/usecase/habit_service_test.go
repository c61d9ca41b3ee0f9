package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/taskflowhq/taskflow-server/internal/domain/dto"
	domainerrors "github.com/taskflowhq/taskflow-server/internal/domain/errors"
	"github.com/taskflowhq/taskflow-server/internal/domain/model"
	"github.com/taskflowhq/taskflow-server/internal/usecase"
)

// MockHabitRepository is a mock implementation of HabitRepository
type MockHabitRepository struct {
	mock.Mock
}

func (m *MockHabitRepository) Create(ctx context.Context, habit *model.Habit) error {
	args := m.Called(ctx, habit)
	return args.Error(0)
}

func (m *MockHabitRepository) ListActive(ctx context.Context, userID string) ([]*model.Habit, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Habit), args.Error(1)
}

func (m *MockHabitRepository) RecordCompletion(ctx context.Context, completion *model.HabitCompletion) (int, error) {
	args := m.Called(ctx, completion)
	return args.Int(0), args.Error(1)
}

func (m *MockHabitRepository) CountCompletionsSince(ctx context.Context, userID string, since time.Time) (int64, error) {
	args := m.Called(ctx, userID, since)
	return args.Get(0).(int64), args.Error(1)
}

func TestHabitService_Create(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("applies defaults", func(t *testing.T) {
		mockHabits := new(MockHabitRepository)
		mockUsers := new(MockUserRepository)
		service := usecase.NewHabitService(mockHabits, mockUsers, logger)

		var gotHabit *model.Habit
		mockHabits.On("Create", ctx, mock.Anything).
			Run(func(args mock.Arguments) {
				gotHabit = args.Get(1).(*model.Habit)
			}).
			Return(nil)

		habit, err := service.Create(ctx, "user-1", &dto.HabitCreate{Name: "Morning run", Category: "health"})

		assert.NoError(t, err)
		assert.Equal(t, "daily", habit.Frequency)
		assert.Equal(t, 1, habit.TargetCount)
		assert.True(t, habit.IsActive)
		assert.Zero(t, habit.CurrentStreak)
		assert.Equal(t, gotHabit, habit)
	})
}

func TestHabitService_Complete(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("records completion and awards XP", func(t *testing.T) {
		mockHabits := new(MockHabitRepository)
		mockUsers := new(MockUserRepository)
		service := usecase.NewHabitService(mockHabits, mockUsers, logger)

		var gotCompletion *model.HabitCompletion
		mockHabits.On("RecordCompletion", ctx, mock.Anything).
			Run(func(args mock.Arguments) {
				gotCompletion = args.Get(1).(*model.HabitCompletion)
			}).
			Return(5, nil)
		mockUsers.On("AddXP", ctx, "user-1", model.XPHabitCompletion).Return(nil)

		resp, err := service.Complete(ctx, "user-1", "h1")

		assert.NoError(t, err)
		assert.Equal(t, 5, resp.Streak)
		assert.Equal(t, "h1", gotCompletion.HabitID)
		assert.Equal(t, 1, gotCompletion.Count)
		mockUsers.AssertExpectations(t)
	})

	t.Run("XP failure does not fail the completion", func(t *testing.T) {
		mockHabits := new(MockHabitRepository)
		mockUsers := new(MockUserRepository)
		service := usecase.NewHabitService(mockHabits, mockUsers, logger)

		mockHabits.On("RecordCompletion", ctx, mock.Anything).Return(3, nil)
		mockUsers.On("AddXP", ctx, "user-1", model.XPHabitCompletion).Return(errors.New("write failed"))

		resp, err := service.Complete(ctx, "user-1", "h1")

		assert.NoError(t, err)
		assert.Equal(t, 3, resp.Streak)
	})

	t.Run("unknown habit returns not found", func(t *testing.T) {
		mockHabits := new(MockHabitRepository)
		mockUsers := new(MockUserRepository)
		service := usecase.NewHabitService(mockHabits, mockUsers, logger)

		mockHabits.On("RecordCompletion", ctx, mock.Anything).
			Return(0, domainerrors.NewNotFoundError("habit", "missing"))

		resp, err := service.Complete(ctx, "user-1", "missing")

		assert.Nil(t, resp)
		var notFound *domainerrors.NotFoundError
		assert.ErrorAs(t, err, &notFound)
		mockUsers.AssertNotCalled(t, "AddXP", mock.Anything, mock.Anything, mock.Anything)
	})
}

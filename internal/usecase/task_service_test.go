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
	"github.com/taskflowhq/taskflow-server/internal/domain/model"
	"github.com/taskflowhq/taskflow-server/internal/usecase"
)

// MockTaskRepository is a mock implementation of TaskRepository
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) GetByID(ctx context.Context, id, userID string) (*model.Task, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepository) ListByUser(ctx context.Context, userID string, completed *bool) ([]*model.Task, error) {
	args := m.Called(ctx, userID, completed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Task), args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, id, userID string, update *dto.TaskUpdate) (*model.Task, error) {
	args := m.Called(ctx, id, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockTaskRepository) Count(ctx context.Context, userID string, completedOnly bool) (int64, error) {
	args := m.Called(ctx, userID, completedOnly)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTaskRepository) ListCompletedSince(ctx context.Context, userID string, since time.Time, limit int) ([]*model.Task, error) {
	args := m.Called(ctx, userID, since, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Task), args.Error(1)
}

// MockTaskPrioritizer is a mock implementation of TaskPrioritizer
type MockTaskPrioritizer struct {
	mock.Mock
}

func (m *MockTaskPrioritizer) SuggestPriority(ctx context.Context, task *model.Task, existing []*model.Task) (int, error) {
	args := m.Called(ctx, task, existing)
	return args.Int(0), args.Error(1)
}

func (m *MockTaskPrioritizer) RecommendNextTask(ctx context.Context, tasks []*model.Task) (string, error) {
	args := m.Called(ctx, tasks)
	return args.String(0), args.Error(1)
}

func TestTaskService_Create(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("stores the AI-suggested priority", func(t *testing.T) {
		mockTasks := new(MockTaskRepository)
		mockUsers := new(MockUserRepository)
		mockAI := new(MockTaskPrioritizer)
		service := usecase.NewTaskService(mockTasks, mockUsers, mockAI, time.Minute, logger)

		mockTasks.On("ListByUser", ctx, "user-1", (*bool)(nil)).Return([]*model.Task{}, nil)
		mockAI.On("SuggestPriority", mock.Anything, mock.Anything, mock.Anything).Return(4, nil)
		mockTasks.On("Create", ctx, mock.Anything).Return(nil)

		task, err := service.Create(ctx, "user-1", &dto.TaskCreate{Title: "File taxes"})

		assert.NoError(t, err)
		assert.Equal(t, "personal", task.Category)
		assert.Equal(t, 1, task.Priority)
		assert.NotNil(t, task.AIPriority)
		assert.Equal(t, 4, *task.AIPriority)
	})

	t.Run("falls back to the user priority when the model fails", func(t *testing.T) {
		mockTasks := new(MockTaskRepository)
		mockUsers := new(MockUserRepository)
		mockAI := new(MockTaskPrioritizer)
		service := usecase.NewTaskService(mockTasks, mockUsers, mockAI, time.Minute, logger)

		mockTasks.On("ListByUser", ctx, "user-1", (*bool)(nil)).Return([]*model.Task{}, nil)
		mockAI.On("SuggestPriority", mock.Anything, mock.Anything, mock.Anything).Return(0, errors.New("model unavailable"))
		mockTasks.On("Create", ctx, mock.Anything).Return(nil)

		task, err := service.Create(ctx, "user-1", &dto.TaskCreate{Title: "File taxes", Priority: 3})

		assert.NoError(t, err)
		assert.Equal(t, 3, task.Priority)
		assert.Nil(t, task.AIPriority)
	})
}

func TestTaskService_Update(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	completed := true

	t.Run("first completion awards XP", func(t *testing.T) {
		mockTasks := new(MockTaskRepository)
		mockUsers := new(MockUserRepository)
		service := usecase.NewTaskService(mockTasks, mockUsers, nil, time.Minute, logger)

		existing := &model.Task{ID: "t1", UserID: "user-1", Completed: false}
		updated := &model.Task{ID: "t1", UserID: "user-1", Completed: true}
		update := &dto.TaskUpdate{Completed: &completed}

		mockTasks.On("GetByID", ctx, "t1", "user-1").Return(existing, nil)
		mockTasks.On("Update", ctx, "t1", "user-1", update).Return(updated, nil)
		mockUsers.On("AddXP", ctx, "user-1", model.XPTaskCompletion).Return(nil)

		task, err := service.Update(ctx, "user-1", "t1", update)

		assert.NoError(t, err)
		assert.True(t, task.Completed)
		mockUsers.AssertExpectations(t)
	})

	t.Run("re-completing an already completed task awards nothing", func(t *testing.T) {
		mockTasks := new(MockTaskRepository)
		mockUsers := new(MockUserRepository)
		service := usecase.NewTaskService(mockTasks, mockUsers, nil, time.Minute, logger)

		existing := &model.Task{ID: "t1", UserID: "user-1", Completed: true}
		updated := &model.Task{ID: "t1", UserID: "user-1", Completed: true}
		update := &dto.TaskUpdate{Completed: &completed}

		mockTasks.On("GetByID", ctx, "t1", "user-1").Return(existing, nil)
		mockTasks.On("Update", ctx, "t1", "user-1", update).Return(updated, nil)

		_, err := service.Update(ctx, "user-1", "t1", update)

		assert.NoError(t, err)
		mockUsers.AssertNotCalled(t, "AddXP", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestTaskService_NextBest(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	open := false

	t.Run("returns the model recommendation", func(t *testing.T) {
		mockTasks := new(MockTaskRepository)
		mockUsers := new(MockUserRepository)
		mockAI := new(MockTaskPrioritizer)
		service := usecase.NewTaskService(mockTasks, mockUsers, mockAI, time.Minute, logger)

		tasks := []*model.Task{{ID: "t1", Title: "Renew passport"}}
		mockTasks.On("ListByUser", ctx, "user-1", &open).Return(tasks, nil)
		mockAI.On("RecommendNextTask", mock.Anything, tasks).Return("Start with the passport renewal.", nil)

		rec, err := service.NextBest(ctx, "user-1")

		assert.NoError(t, err)
		assert.Equal(t, "Start with the passport renewal.", rec.Recommendation)
	})

	t.Run("returns nil when there are no open tasks", func(t *testing.T) {
		mockTasks := new(MockTaskRepository)
		mockUsers := new(MockUserRepository)
		mockAI := new(MockTaskPrioritizer)
		service := usecase.NewTaskService(mockTasks, mockUsers, mockAI, time.Minute, logger)

		mockTasks.On("ListByUser", ctx, "user-1", &open).Return([]*model.Task{}, nil)

		rec, err := service.NextBest(ctx, "user-1")

		assert.NoError(t, err)
		assert.Nil(t, rec)
		mockAI.AssertNotCalled(t, "RecommendNextTask", mock.Anything, mock.Anything)
	})

	t.Run("returns nil when the model fails", func(t *testing.T) {
		mockTasks := new(MockTaskRepository)
		mockUsers := new(MockUserRepository)
		mockAI := new(MockTaskPrioritizer)
		service := usecase.NewTaskService(mockTasks, mockUsers, mockAI, time.Minute, logger)

		tasks := []*model.Task{{ID: "t1"}}
		mockTasks.On("ListByUser", ctx, "user-1", &open).Return(tasks, nil)
		mockAI.On("RecommendNextTask", mock.Anything, tasks).Return("", errors.New("model unavailable"))

		rec, err := service.NextBest(ctx, "user-1")

		assert.NoError(t, err)
		assert.Nil(t, rec)
	})
}

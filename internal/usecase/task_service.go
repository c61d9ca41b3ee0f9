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

// TaskPrioritizer ranks tasks with the external model.
type TaskPrioritizer interface {
	SuggestPriority(ctx context.Context, task *model.Task, existing []*model.Task) (int, error)
	RecommendNextTask(ctx context.Context, tasks []*model.Task) (string, error)
}

// TaskService handles standalone task CRUD and AI-assisted prioritization.
type TaskService struct {
	tasks       repository.TaskRepository
	users       repository.UserRepository
	prioritizer TaskPrioritizer
	aiTimeout   time.Duration
	logger      *zap.Logger
}

// NewTaskService creates a new task service.
func NewTaskService(tasks repository.TaskRepository, users repository.UserRepository, prioritizer TaskPrioritizer, aiTimeout time.Duration, logger *zap.Logger) *TaskService {
	return &TaskService{
		tasks:       tasks,
		users:       users,
		prioritizer: prioritizer,
		aiTimeout:   aiTimeout,
		logger:      logger,
	}
}

// Create stores a new task, asking the model for a suggested priority. A
// model failure falls back to the user-supplied priority.
func (s *TaskService) Create(ctx context.Context, userID string, req *dto.TaskCreate) (*model.Task, error) {
	id, err := utils.GenerateID(utils.PrefixTask)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	category := req.Category
	if category == "" {
		category = "personal"
	}
	priority := req.Priority
	if priority == 0 {
		priority = 1
	}

	task := &model.Task{
		ID:                id,
		UserID:            userID,
		Title:             req.Title,
		Description:       req.Description,
		Priority:          priority,
		Category:          category,
		Tags:              req.Tags,
		DueDate:           req.DueDate,
		StartDate:         req.StartDate,
		EstimatedDuration: req.EstimatedDuration,
		Context:           req.Context,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if s.prioritizer != nil {
		existing, err := s.tasks.ListByUser(ctx, userID, nil)
		if err != nil {
			s.logger.Warn("Failed to load tasks for priority context", zap.Error(err))
		} else {
			aiCtx, cancel := context.WithTimeout(ctx, s.aiTimeout)
			suggested, err := s.prioritizer.SuggestPriority(aiCtx, task, existing)
			cancel()
			if err != nil {
				s.logger.Warn("AI priority suggestion failed", zap.Error(err))
			} else {
				task.AIPriority = &suggested
			}
		}
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Get returns one of the user's tasks.
func (s *TaskService) Get(ctx context.Context, userID, taskID string) (*model.Task, error) {
	return s.tasks.GetByID(ctx, taskID, userID)
}

// List returns the user's tasks, newest first, optionally filtered by
// completion state.
func (s *TaskService) List(ctx context.Context, userID string, completed *bool) ([]*model.Task, error) {
	return s.tasks.ListByUser(ctx, userID, completed)
}

// Update applies a partial update. Marking a task completed for the first
// time stamps the completion time and awards XP.
func (s *TaskService) Update(ctx context.Context, userID, taskID string, update *dto.TaskUpdate) (*model.Task, error) {
	existing, err := s.tasks.GetByID(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	task, err := s.tasks.Update(ctx, taskID, userID, update)
	if err != nil {
		return nil, err
	}

	if update.Completed != nil && *update.Completed && !existing.Completed {
		if err := s.users.AddXP(ctx, userID, model.XPTaskCompletion); err != nil {
			s.logger.Warn("Failed to award task XP",
				zap.String("user_id", userID),
				zap.String("task_id", taskID),
				zap.Error(err))
		}
	}

	return task, nil
}

// Delete removes one of the user's tasks.
func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	return s.tasks.Delete(ctx, taskID, userID)
}

// NextBest recommends which open task to work on now. Returns nil when the
// user has no open tasks.
func (s *TaskService) NextBest(ctx context.Context, userID string) (*dto.NextBestTask, error) {
	open := false
	tasks, err := s.tasks.ListByUser(ctx, userID, &open)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, nil
	}
	if len(tasks) > 50 {
		tasks = tasks[:50]
	}

	aiCtx, cancel := context.WithTimeout(ctx, s.aiTimeout)
	defer cancel()

	recommendation, err := s.prioritizer.RecommendNextTask(aiCtx, tasks)
	if err != nil {
		s.logger.Warn("Next best task recommendation failed", zap.Error(err))
		return nil, nil
	}

	return &dto.NextBestTask{Recommendation: recommendation, Timestamp: time.Now().UTC()}, nil
}

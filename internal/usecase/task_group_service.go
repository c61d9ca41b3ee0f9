package usecase

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/taskflowhq/taskflow-server/internal/domain/dto"
	"github.com/taskflowhq/taskflow-server/internal/domain/errors"
	"github.com/taskflowhq/taskflow-server/internal/domain/model"
	"github.com/taskflowhq/taskflow-server/internal/domain/repository"
	"github.com/taskflowhq/taskflow-server/internal/utils"
)

// TaskGroupService materializes decomposition results into durable task
// groups and tracks their completion progress.
type TaskGroupService struct {
	groups repository.TaskGroupRepository
	users  repository.UserRepository
	logger *zap.Logger
}

// NewTaskGroupService creates a new task group service.
func NewTaskGroupService(groups repository.TaskGroupRepository, users repository.UserRepository, logger *zap.Logger) *TaskGroupService {
	return &TaskGroupService{
		groups: groups,
		users:  users,
		logger: logger,
	}
}

// Materialize persists the selected suggestions of a decomposition result as
// one task group plus its subtasks. The write is all-or-nothing: a failure
// leaves no group and no subtasks behind.
//
// Dependency references resolve against the other selected suggestions of
// the same batch, by title or by source order number; a reference to a
// suggestion that was not selected is dropped.
func (s *TaskGroupService) Materialize(ctx context.Context, userID string, result *dto.TaskDecompositionResult) (*dto.MaterializeResponse, error) {
	selected := result.SelectedSuggestions()
	if len(selected) == 0 {
		return nil, errors.NewEmptySelectionError()
	}

	groupID, err := utils.GenerateID(utils.PrefixGroup)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	// Assign ids first so dependency references can resolve within the batch.
	ids := make([]string, len(selected))
	byTitle := make(map[string]string, len(selected))
	byOrder := make(map[string]string, len(selected))
	for i, sg := range selected {
		id, err := utils.GenerateID(utils.PrefixSubtask)
		if err != nil {
			return nil, err
		}
		ids[i] = id
		byTitle[sg.Title] = id
		byOrder[strconv.Itoa(sg.Order)] = id
	}

	subtasks := make([]*model.Subtask, len(selected))
	for i, sg := range selected {
		subtasks[i] = &model.Subtask{
			ID:                ids[i],
			GroupID:           groupID,
			Title:             sg.Title,
			Description:       sg.Description,
			EstimatedDuration: sg.EstimatedDuration,
			Priority:          sg.Priority,
			Order:             i,
			Dependencies:      resolveDependencies(sg.Dependencies, ids[i], byTitle, byOrder),
			Completed:         false,
			CreatedAt:         now,
		}
	}

	group := &model.TaskGroup{
		ID:                  groupID,
		UserID:              userID,
		MainTaskTitle:       result.MainTask,
		MainTaskDescription: result.Description,
		Category:            result.Category,
		TotalSubtasks:       len(subtasks),
		CompletedSubtasks:   0,
		ProgressPercentage:  0,
		IsActive:            true,
		CreatedAt:           now,
	}

	if err := s.groups.CreateGroupWithSubtasks(ctx, group, subtasks); err != nil {
		s.logger.Error("Failed to materialize task group",
			zap.String("user_id", userID),
			zap.String("main_task", result.MainTask),
			zap.Error(err))
		return nil, errors.NewPersistenceError("materialize task group", err)
	}

	s.logger.Info("Task group materialized",
		zap.String("group_id", groupID),
		zap.String("user_id", userID),
		zap.Int("subtasks", len(subtasks)),
	)

	return &dto.MaterializeResponse{GroupID: groupID, SubtasksCreated: len(subtasks)}, nil
}

// resolveDependencies maps suggestion references to the new subtask ids of
// the same materialization batch. Unresolved references and self references
// are dropped.
func resolveDependencies(refs []string, selfID string, byTitle, byOrder map[string]string) []string {
	resolved := make([]string, 0, len(refs))
	seen := make(map[string]bool, len(refs))
	for _, ref := range refs {
		id, ok := byTitle[ref]
		if !ok {
			id, ok = byOrder[ref]
		}
		if !ok || id == selfID || seen[id] {
			continue
		}
		seen[id] = true
		resolved = append(resolved, id)
	}
	return resolved
}

// CompleteSubtask marks a subtask done. Completing an already-completed
// subtask is a no-op that returns the group's current progress; the first
// completion updates the group counters atomically and awards XP. A fully
// completed group is archived (is_active becomes false).
func (s *TaskGroupService) CompleteSubtask(ctx context.Context, subtaskID string) (*dto.GroupProgress, error) {
	group, first, err := s.groups.CompleteSubtask(ctx, subtaskID)
	if err != nil {
		return nil, err
	}

	if first {
		if err := s.users.AddXP(ctx, group.UserID, model.XPSubtaskCompletion); err != nil {
			// Progress already committed; XP is best-effort.
			s.logger.Warn("Failed to award subtask XP",
				zap.String("user_id", group.UserID),
				zap.String("subtask_id", subtaskID),
				zap.Error(err))
		}

		s.logger.Info("Subtask completed",
			zap.String("subtask_id", subtaskID),
			zap.String("group_id", group.ID),
			zap.Float64("progress", group.ProgressPercentage),
		)
	}

	progress := dto.NewGroupProgress(group)
	return &progress, nil
}

// ListGroups returns the user's task groups, most recent first, with their
// live progress counters.
func (s *TaskGroupService) ListGroups(ctx context.Context, userID string) ([]*model.TaskGroup, error) {
	return s.groups.ListGroupsByUser(ctx, userID)
}

// GetGroup returns one of the user's groups with its ordered subtasks.
func (s *TaskGroupService) GetGroup(ctx context.Context, userID, groupID string) (*dto.GroupDetail, error) {
	group, err := s.groups.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group.UserID != userID {
		return nil, errors.NewNotFoundError("task group", groupID)
	}

	subtasks, err := s.groups.ListSubtasks(ctx, groupID)
	if err != nil {
		return nil, err
	}

	return &dto.GroupDetail{Group: group, Subtasks: subtasks}, nil
}

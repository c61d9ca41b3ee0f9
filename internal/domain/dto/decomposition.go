package dto

import (
	"sort"
	"strings"

	"github.com/taskflowhq/taskflow-server/internal/domain/errors"
)

// Difficulty levels accepted on a decomposition request.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
	DifficultyExpert = "expert"
)

const (
	maxMainTaskLength    = 500
	maxDescriptionLength = 1000
)

// TaskDecompositionRequest is the user's ask: break this task down.
type TaskDecompositionRequest struct {
	MainTask          string `json:"main_task" validate:"required"`
	Description       string `json:"description"`
	Category          string `json:"category"`
	EstimatedDuration *int   `json:"estimated_duration,omitempty"` // minutes, total budget
	DifficultyLevel   string `json:"difficulty_level"`
}

// Normalize applies the request defaults and validates field constraints.
func (r *TaskDecompositionRequest) Normalize() error {
	r.MainTask = strings.TrimSpace(r.MainTask)
	if r.MainTask == "" {
		return errors.NewValidationError("main_task", "must not be empty")
	}
	if len(r.MainTask) > maxMainTaskLength {
		return errors.NewValidationError("main_task", "exceeds 500 characters")
	}
	if len(r.Description) > maxDescriptionLength {
		return errors.NewValidationError("description", "exceeds 1000 characters")
	}
	if r.Category == "" {
		r.Category = "personal"
	}
	if r.DifficultyLevel == "" {
		r.DifficultyLevel = DifficultyMedium
	}
	switch r.DifficultyLevel {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert:
	default:
		return errors.NewValidationError("difficulty_level", "must be one of easy, medium, hard, expert")
	}
	if r.EstimatedDuration != nil && *r.EstimatedDuration < 0 {
		return errors.NewValidationError("estimated_duration", "must not be negative")
	}
	return nil
}

// SubtaskSuggestion is an ephemeral candidate subtask proposed by the
// decomposition service. Selected defaults to true on arrival and is
// toggled by the user before materialization.
type SubtaskSuggestion struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	EstimatedDuration int      `json:"estimated_duration"`
	Priority          int      `json:"priority"`
	Order             int      `json:"order"`
	Dependencies      []string `json:"dependencies"`
	Selected          bool     `json:"selected"`
}

// TaskDecompositionResult is the normalized decomposition response reviewed
// and edited by the user before materialization.
type TaskDecompositionResult struct {
	MainTask               string              `json:"main_task"`
	SuggestedSubtasks      []SubtaskSuggestion `json:"suggested_subtasks"`
	TotalEstimatedDuration int                 `json:"total_estimated_duration"`
	CompletionStrategy     string              `json:"completion_strategy"`
	AIConfidence           float64             `json:"ai_confidence"`

	// Echoed request fields carried through to materialization.
	Description string `json:"description"`
	Category    string `json:"category"`
}

// ToggleSelection flips the selected flag of the suggestion at index.
// Pure in-memory state transition; any subset, including all-off, is allowed.
func (r *TaskDecompositionResult) ToggleSelection(index int) error {
	if index < 0 || index >= len(r.SuggestedSubtasks) {
		return errors.NewValidationError("index", "out of range")
	}
	r.SuggestedSubtasks[index].Selected = !r.SuggestedSubtasks[index].Selected
	return nil
}

// SelectedSuggestions returns the selected suggestions in stable order of
// their Order field.
func (r *TaskDecompositionResult) SelectedSuggestions() []SubtaskSuggestion {
	var selected []SubtaskSuggestion
	for _, s := range r.SuggestedSubtasks {
		if s.Selected {
			selected = append(selected, s)
		}
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Order < selected[j].Order
	})
	return selected
}

package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskflowhq/taskflow-server/internal/domain/dto"
	"github.com/taskflowhq/taskflow-server/internal/domain/errors"
)

func result() *dto.TaskDecompositionResult {
	return &dto.TaskDecompositionResult{
		MainTask: "Organize garage",
		SuggestedSubtasks: []dto.SubtaskSuggestion{
			{Title: "Sort boxes", Order: 0, Selected: true},
			{Title: "Donate extras", Order: 1, Selected: true},
			{Title: "Sweep floor", Order: 2, Selected: true},
		},
	}
}

func TestToggleSelection(t *testing.T) {
	t.Run("flips the flag both ways", func(t *testing.T) {
		r := result()

		assert.NoError(t, r.ToggleSelection(1))
		assert.False(t, r.SuggestedSubtasks[1].Selected)

		assert.NoError(t, r.ToggleSelection(1))
		assert.True(t, r.SuggestedSubtasks[1].Selected)
	})

	t.Run("allows deselecting everything", func(t *testing.T) {
		r := result()
		for i := range r.SuggestedSubtasks {
			assert.NoError(t, r.ToggleSelection(i))
		}
		assert.Empty(t, r.SelectedSuggestions())
	})

	t.Run("rejects out-of-range indexes", func(t *testing.T) {
		r := result()

		var validationErr *errors.ValidationError
		assert.ErrorAs(t, r.ToggleSelection(-1), &validationErr)
		assert.ErrorAs(t, r.ToggleSelection(3), &validationErr)
	})
}

func TestSelectedSuggestions(t *testing.T) {
	t.Run("filters and preserves order", func(t *testing.T) {
		r := result()
		assert.NoError(t, r.ToggleSelection(0))

		selected := r.SelectedSuggestions()

		assert.Len(t, selected, 2)
		assert.Equal(t, "Donate extras", selected[0].Title)
		assert.Equal(t, "Sweep floor", selected[1].Title)
	})

	t.Run("orders by the order field regardless of slice position", func(t *testing.T) {
		r := &dto.TaskDecompositionResult{
			SuggestedSubtasks: []dto.SubtaskSuggestion{
				{Title: "Second", Order: 1, Selected: true},
				{Title: "First", Order: 0, Selected: true},
			},
		}

		selected := r.SelectedSuggestions()

		assert.Equal(t, "First", selected[0].Title)
		assert.Equal(t, "Second", selected[1].Title)
	})
}

func TestTaskDecompositionRequestNormalize(t *testing.T) {
	t.Run("defaults category and difficulty", func(t *testing.T) {
		req := &dto.TaskDecompositionRequest{MainTask: "Plan move"}

		assert.NoError(t, req.Normalize())
		assert.Equal(t, "personal", req.Category)
		assert.Equal(t, dto.DifficultyMedium, req.DifficultyLevel)
	})

	t.Run("rejects oversized titles", func(t *testing.T) {
		long := make([]byte, 501)
		for i := range long {
			long[i] = 'a'
		}
		req := &dto.TaskDecompositionRequest{MainTask: string(long)}

		var validationErr *errors.ValidationError
		assert.ErrorAs(t, req.Normalize(), &validationErr)
	})

	t.Run("rejects negative duration budget", func(t *testing.T) {
		minus := -10
		req := &dto.TaskDecompositionRequest{MainTask: "Plan move", EstimatedDuration: &minus}

		var validationErr *errors.ValidationError
		assert.ErrorAs(t, req.Normalize(), &validationErr)
	})
}

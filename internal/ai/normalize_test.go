package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflowhq/taskflow-server/internal/domain/dto"
)

func request() *dto.TaskDecompositionRequest {
	return &dto.TaskDecompositionRequest{
		MainTask:    "Launch newsletter",
		Description: "Weekly product newsletter",
		Category:    "work",
	}
}

func TestNormalizeDecomposition(t *testing.T) {
	t.Run("parses a well-formed reply", func(t *testing.T) {
		output := `{
			"subtasks": [
				{"title": "Pick a platform", "description": "Compare providers", "estimated_duration": 60, "priority": 4, "order": 0},
				{"title": "Write first issue", "estimated_duration": 90, "priority": 3, "order": 1, "dependencies": ["Pick a platform"]}
			],
			"total_estimated_duration": 150,
			"completion_strategy": "Start with infrastructure, then content.",
			"confidence": 0.9
		}`

		result, err := NormalizeDecomposition(output, request())

		require.NoError(t, err)
		assert.Equal(t, "Launch newsletter", result.MainTask)
		assert.Equal(t, "work", result.Category)
		assert.Len(t, result.SuggestedSubtasks, 2)
		assert.Equal(t, 150, result.TotalEstimatedDuration)
		assert.Equal(t, 0.9, result.AIConfidence)
		for _, s := range result.SuggestedSubtasks {
			assert.True(t, s.Selected)
		}
	})

	t.Run("strips a markdown code fence", func(t *testing.T) {
		output := "```json\n{\"subtasks\": [{\"title\": \"Only step\", \"estimated_duration\": 10, \"priority\": 2, \"order\": 0}], \"confidence\": 0.5}\n```"

		result, err := NormalizeDecomposition(output, request())

		require.NoError(t, err)
		assert.Equal(t, "Only step", result.SuggestedSubtasks[0].Title)
	})

	t.Run("re-sequences order and keeps relative position", func(t *testing.T) {
		output := `{"subtasks": [
			{"title": "Third", "order": 7},
			{"title": "First", "order": 2},
			{"title": "Second", "order": 5}
		], "confidence": 0.8}`

		result, err := NormalizeDecomposition(output, request())

		require.NoError(t, err)
		require.Len(t, result.SuggestedSubtasks, 3)
		assert.Equal(t, "First", result.SuggestedSubtasks[0].Title)
		assert.Equal(t, "Second", result.SuggestedSubtasks[1].Title)
		assert.Equal(t, "Third", result.SuggestedSubtasks[2].Title)
		for i, s := range result.SuggestedSubtasks {
			assert.Equal(t, i, s.Order)
		}
	})

	t.Run("clamps priority and confidence", func(t *testing.T) {
		output := `{"subtasks": [
			{"title": "Too high", "priority": 9, "order": 0},
			{"title": "Too low", "priority": -3, "order": 1}
		], "confidence": 1.7}`

		result, err := NormalizeDecomposition(output, request())

		require.NoError(t, err)
		assert.Equal(t, 5, result.SuggestedSubtasks[0].Priority)
		assert.Equal(t, 1, result.SuggestedSubtasks[1].Priority)
		assert.Equal(t, 1.0, result.AIConfidence)
	})

	t.Run("recomputes the duration total", func(t *testing.T) {
		output := `{"subtasks": [
			{"title": "A", "estimated_duration": 30, "order": 0},
			{"title": "B", "estimated_duration": 45, "order": 1}
		], "total_estimated_duration": 999, "confidence": 0.8}`

		result, err := NormalizeDecomposition(output, request())

		require.NoError(t, err)
		assert.Equal(t, 75, result.TotalEstimatedDuration)
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		_, err := NormalizeDecomposition("I could not break this down, sorry!", request())
		assert.Error(t, err)
	})

	t.Run("rejects an empty subtask list", func(t *testing.T) {
		_, err := NormalizeDecomposition(`{"subtasks": [], "confidence": 0.9}`, request())
		assert.Error(t, err)
	})

	t.Run("rejects blank titles", func(t *testing.T) {
		_, err := NormalizeDecomposition(`{"subtasks": [{"title": "   ", "order": 0}], "confidence": 0.9}`, request())
		assert.Error(t, err)
	})

	t.Run("rejects negative durations", func(t *testing.T) {
		_, err := NormalizeDecomposition(`{"subtasks": [{"title": "A", "estimated_duration": -5, "order": 0}], "confidence": 0.9}`, request())
		assert.Error(t, err)
	})

	t.Run("rejects dependency cycles", func(t *testing.T) {
		output := `{"subtasks": [
			{"title": "A", "order": 0, "dependencies": ["B"]},
			{"title": "B", "order": 1, "dependencies": ["A"]}
		], "confidence": 0.8}`

		_, err := NormalizeDecomposition(output, request())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cycle")
	})

	t.Run("ignores references to unknown titles", func(t *testing.T) {
		output := `{"subtasks": [
			{"title": "A", "order": 0, "dependencies": ["Nonexistent step"]}
		], "confidence": 0.8}`

		result, err := NormalizeDecomposition(output, request())

		require.NoError(t, err)
		assert.Equal(t, []string{"Nonexistent step"}, result.SuggestedSubtasks[0].Dependencies)
	})
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence(`{"a":1}`))
}

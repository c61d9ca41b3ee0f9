package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/taskflowhq/taskflow-server/internal/domain/model"
)

func TestApplyCompletion(t *testing.T) {
	t.Run("advances progress", func(t *testing.T) {
		g := &model.TaskGroup{TotalSubtasks: 4, IsActive: true}

		g.ApplyCompletion()

		assert.Equal(t, 1, g.CompletedSubtasks)
		assert.Equal(t, 25.0, g.ProgressPercentage)
		assert.True(t, g.IsActive)
	})

	t.Run("archives on final completion", func(t *testing.T) {
		g := &model.TaskGroup{TotalSubtasks: 2, CompletedSubtasks: 1, IsActive: true}

		g.ApplyCompletion()

		assert.Equal(t, 100.0, g.ProgressPercentage)
		assert.False(t, g.IsActive)
	})

	t.Run("saturates at full completion", func(t *testing.T) {
		g := &model.TaskGroup{TotalSubtasks: 2, CompletedSubtasks: 2, ProgressPercentage: 100}

		g.ApplyCompletion()

		assert.Equal(t, 2, g.CompletedSubtasks)
		assert.Equal(t, 100.0, g.ProgressPercentage)
	})
}

// Progress invariants hold for any group size and any completion count.
func TestApplyCompletionProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		total := rapid.IntRange(1, 500).Draw(t, "total")
		completions := rapid.IntRange(0, 600).Draw(t, "completions")

		g := &model.TaskGroup{TotalSubtasks: total, IsActive: true}
		for i := 0; i < completions; i++ {
			g.ApplyCompletion()
		}

		if g.CompletedSubtasks > g.TotalSubtasks {
			t.Fatalf("completed %d exceeds total %d", g.CompletedSubtasks, g.TotalSubtasks)
		}
		if g.ProgressPercentage < 0 || g.ProgressPercentage > 100 {
			t.Fatalf("progress %f out of range", g.ProgressPercentage)
		}
		if g.CompletedSubtasks == g.TotalSubtasks {
			if g.IsActive {
				t.Fatal("fully completed group still active")
			}
			if g.ProgressPercentage != 100 {
				t.Fatalf("fully completed group at %f%%", g.ProgressPercentage)
			}
		}
		if completions > 0 && completions < total && g.CompletedSubtasks != completions {
			t.Fatalf("expected %d completions, got %d", completions, g.CompletedSubtasks)
		}
	})
}

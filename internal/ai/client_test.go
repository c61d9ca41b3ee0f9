package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"

	"github.com/taskflowhq/taskflow-server/internal/domain/dto"
	domainerrors "github.com/taskflowhq/taskflow-server/internal/domain/errors"
	"github.com/taskflowhq/taskflow-server/internal/domain/model"
)

// stubGenerator returns a canned reply or error.
type stubGenerator struct {
	reply string
	err   error
}

func (s *stubGenerator) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: s.reply}},
	}, nil
}

func TestClient_DecomposeTask(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	req := &dto.TaskDecompositionRequest{MainTask: "Clean the house", Category: "personal"}

	t.Run("normalizes a valid reply", func(t *testing.T) {
		client := NewClient(&stubGenerator{
			reply: `{"subtasks": [{"title": "Vacuum", "estimated_duration": 20, "priority": 2, "order": 0}], "confidence": 0.7}`,
		}, logger)

		result, err := client.DecomposeTask(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "Clean the house", result.MainTask)
		assert.Len(t, result.SuggestedSubtasks, 1)
	})

	t.Run("wraps transport errors", func(t *testing.T) {
		client := NewClient(&stubGenerator{err: errors.New("connection refused")}, logger)

		_, err := client.DecomposeTask(ctx, req)

		var svcErr *domainerrors.DecompositionServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Contains(t, err.Error(), "request failed")
	})

	t.Run("wraps malformed replies", func(t *testing.T) {
		client := NewClient(&stubGenerator{reply: "I can't help with that."}, logger)

		_, err := client.DecomposeTask(ctx, req)

		var svcErr *domainerrors.DecompositionServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Contains(t, err.Error(), "malformed response")
	})
}

func TestClient_SuggestPriority(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	task := &model.Task{Title: "Pay rent"}

	t.Run("parses a numeric reply", func(t *testing.T) {
		client := NewClient(&stubGenerator{reply: "4"}, logger)

		priority, err := client.SuggestPriority(ctx, task, nil)

		assert.NoError(t, err)
		assert.Equal(t, 4, priority)
	})

	t.Run("clamps out-of-range replies", func(t *testing.T) {
		client := NewClient(&stubGenerator{reply: "11"}, logger)

		priority, err := client.SuggestPriority(ctx, task, nil)

		assert.NoError(t, err)
		assert.Equal(t, 5, priority)
	})

	t.Run("rejects non-numeric replies", func(t *testing.T) {
		client := NewClient(&stubGenerator{reply: "very important"}, logger)

		_, err := client.SuggestPriority(ctx, task, nil)

		assert.Error(t, err)
	})
}

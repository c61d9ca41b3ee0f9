package usecase

import (
	"context"
	stderrors "errors"
	"time"

	"go.uber.org/zap"

	"github.com/taskflowhq/taskflow-server/internal/ai"
	"github.com/taskflowhq/taskflow-server/internal/domain/dto"
	"github.com/taskflowhq/taskflow-server/internal/domain/errors"
)

const decompositionCachePrefix = "crusher:decompose"

// DecompositionClient produces subtask suggestions for a task description.
type DecompositionClient interface {
	DecomposeTask(ctx context.Context, req *dto.TaskDecompositionRequest) (*dto.TaskDecompositionResult, error)
}

// DecompositionService is the decomposition requester: it validates the
// request, consults the response cache, and calls the external service with
// a caller-visible timeout. It performs no retries and persists nothing.
type DecompositionService struct {
	client  DecompositionClient
	cache   *ai.ResponseCache
	timeout time.Duration
	logger  *zap.Logger
}

// NewDecompositionService creates a new decomposition service.
func NewDecompositionService(client DecompositionClient, cache *ai.ResponseCache, timeout time.Duration, logger *zap.Logger) *DecompositionService {
	return &DecompositionService{
		client:  client,
		cache:   cache,
		timeout: timeout,
		logger:  logger,
	}
}

// Decompose turns a decomposition request into a reviewed candidate list.
// Every returned suggestion arrives selected.
func (s *DecompositionService) Decompose(ctx context.Context, req *dto.TaskDecompositionRequest) (*dto.TaskDecompositionResult, error) {
	if err := req.Normalize(); err != nil {
		return nil, err
	}

	var cached dto.TaskDecompositionResult
	if s.cache.Get(ctx, decompositionCachePrefix, req, &cached) {
		return &cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.client.DecomposeTask(ctx, req)
	if err != nil {
		var svcErr *errors.DecompositionServiceError
		if stderrors.As(err, &svcErr) {
			return nil, err
		}
		return nil, errors.NewDecompositionServiceError("request failed", err)
	}

	s.cache.Set(ctx, decompositionCachePrefix, req, result)

	s.logger.Info("Task decomposed",
		zap.String("main_task", req.MainTask),
		zap.Int("suggestions", len(result.SuggestedSubtasks)),
		zap.Float64("confidence", result.AIConfidence),
	)

	return result, nil
}

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

const (
	insightLookbackDays = 30
	insightTaskLimit    = 100
	insightMinTasks     = 3
)

// InsightGenerator produces productivity insights from completed tasks.
type InsightGenerator interface {
	GenerateInsights(ctx context.Context, completed []*model.Task) (string, error)
}

// InsightService generates and stores AI productivity insights.
type InsightService struct {
	tasks     repository.TaskRepository
	insights  repository.InsightRepository
	generator InsightGenerator
	aiTimeout time.Duration
	logger    *zap.Logger
}

// NewInsightService creates a new insight service.
func NewInsightService(tasks repository.TaskRepository, insights repository.InsightRepository, generator InsightGenerator, aiTimeout time.Duration, logger *zap.Logger) *InsightService {
	return &InsightService{
		tasks:     tasks,
		insights:  insights,
		generator: generator,
		aiTimeout: aiTimeout,
		logger:    logger,
	}
}

// Insights analyzes the user's recent completions. With too little history
// or a model failure it returns a friendly fallback instead of an error.
func (s *InsightService) Insights(ctx context.Context, userID string) (*dto.InsightsResponse, error) {
	since := time.Now().UTC().AddDate(0, 0, -insightLookbackDays)
	completed, err := s.tasks.ListCompletedSince(ctx, userID, since, insightTaskLimit)
	if err != nil {
		return nil, err
	}

	if len(completed) < insightMinTasks {
		return &dto.InsightsResponse{Insights: []string{"Complete more tasks to get personalized insights!"}}, nil
	}

	aiCtx, cancel := context.WithTimeout(ctx, s.aiTimeout)
	defer cancel()

	content, err := s.generator.GenerateInsights(aiCtx, completed)
	if err != nil {
		s.logger.Warn("Insight generation failed", zap.String("user_id", userID), zap.Error(err))
		return &dto.InsightsResponse{Insights: []string{"Unable to generate insights at this time"}}, nil
	}

	insight := &model.AIInsight{
		ID:          utils.MustGenerateID(utils.PrefixInsight),
		UserID:      userID,
		InsightType: "productivity_pattern",
		Content:     content,
		Confidence:  0.8,
		GeneratedAt: time.Now().UTC(),
	}
	if err := s.insights.Create(ctx, insight); err != nil {
		// The insight was generated; storage is best-effort history.
		s.logger.Warn("Failed to store insight", zap.String("user_id", userID), zap.Error(err))
	}

	return &dto.InsightsResponse{Insights: []string{content}}, nil
}

package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/taskflowhq/taskflow-server/internal/domain/model"
	"github.com/taskflowhq/taskflow-server/internal/domain/repository"
)

type insightRepository struct {
	insights *mongo.Collection
	logger   *zap.Logger
}

// NewInsightRepository creates a MongoDB-backed insight repository.
func NewInsightRepository(db *mongo.Database, logger *zap.Logger) repository.InsightRepository {
	return &insightRepository{
		insights: db.Collection("ai_insights"),
		logger:   logger,
	}
}

func (r *insightRepository) Create(ctx context.Context, insight *model.AIInsight) error {
	_, err := r.insights.InsertOne(ctx, insight)
	return err
}

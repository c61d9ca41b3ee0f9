package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureIndexes creates the indexes the query paths depend on. Safe to call
// on every startup; MongoDB treats existing identical indexes as a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	indexes := map[string][]mongo.IndexModel{
		"task_groups": {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		"subtasks": {
			{Keys: bson.D{{Key: "group_id", Value: 1}, {Key: "order", Value: 1}}},
		},
		"tasks": {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "completed", Value: 1}}},
		},
		"habits": {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "is_active", Value: 1}}},
		},
		"habit_completions": {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "completed_date", Value: -1}}},
		},
		"notifications": {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
		logger.Debug("Ensured indexes", zap.String("collection", collection))
	}
	return nil
}

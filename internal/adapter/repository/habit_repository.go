package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/taskflowhq/taskflow-server/internal/domain/errors"
	"github.com/taskflowhq/taskflow-server/internal/domain/model"
	"github.com/taskflowhq/taskflow-server/internal/domain/repository"
)

type habitRepository struct {
	habits      *mongo.Collection
	completions *mongo.Collection
	client      *mongo.Client
	logger      *zap.Logger
}

// NewHabitRepository creates a MongoDB-backed habit repository.
func NewHabitRepository(db *mongo.Database, logger *zap.Logger) repository.HabitRepository {
	return &habitRepository{
		habits:      db.Collection("habits"),
		completions: db.Collection("habit_completions"),
		client:      db.Client(),
		logger:      logger,
	}
}

func (r *habitRepository) Create(ctx context.Context, habit *model.Habit) error {
	_, err := r.habits.InsertOne(ctx, habit)
	return err
}

func (r *habitRepository) ListActive(ctx context.Context, userID string) ([]*model.Habit, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.habits.Find(ctx, bson.M{"user_id": userID, "is_active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var habits []*model.Habit
	if err := cursor.All(ctx, &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

// RecordCompletion inserts the completion record and advances the habit's
// counters in one transaction. Streak math is kept simple: every completion
// extends the current streak by one, best streak trails via $max.
func (r *habitRepository) RecordCompletion(ctx context.Context, completion *model.HabitCompletion) (int, error) {
	session, err := r.client.StartSession()
	if err != nil {
		return 0, err
	}
	defer session.EndSession(ctx)

	var habit model.Habit

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.completions.InsertOne(sc, completion); err != nil {
			return nil, err
		}

		update := mongo.Pipeline{
			bson.D{{Key: "$set", Value: bson.D{
				{Key: "current_streak", Value: bson.D{{Key: "$add", Value: bson.A{"$current_streak", 1}}}},
				{Key: "total_completions", Value: bson.D{{Key: "$add", Value: bson.A{"$total_completions", 1}}}},
			}}},
			bson.D{{Key: "$set", Value: bson.D{
				{Key: "best_streak", Value: bson.D{{Key: "$max", Value: bson.A{"$best_streak", "$current_streak"}}}},
			}}},
		}

		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err := r.habits.FindOneAndUpdate(sc,
			bson.M{"_id": completion.HabitID, "user_id": completion.UserID},
			update, opts,
		).Decode(&habit)
		return nil, err
	})
	if err == mongo.ErrNoDocuments {
		return 0, errors.NewNotFoundError("habit", completion.HabitID)
	}
	if err != nil {
		return 0, err
	}

	return habit.CurrentStreak, nil
}

func (r *habitRepository) CountCompletionsSince(ctx context.Context, userID string, since time.Time) (int64, error) {
	return r.completions.CountDocuments(ctx, bson.M{
		"user_id":        userID,
		"completed_date": bson.M{"$gte": since},
	})
}

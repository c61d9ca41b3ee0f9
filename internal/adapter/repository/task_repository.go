package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/taskflowhq/taskflow-server/internal/domain/dto"
	"github.com/taskflowhq/taskflow-server/internal/domain/errors"
	"github.com/taskflowhq/taskflow-server/internal/domain/model"
	"github.com/taskflowhq/taskflow-server/internal/domain/repository"
)

type taskRepository struct {
	tasks  *mongo.Collection
	logger *zap.Logger
}

// NewTaskRepository creates a MongoDB-backed task repository.
func NewTaskRepository(db *mongo.Database, logger *zap.Logger) repository.TaskRepository {
	return &taskRepository{
		tasks:  db.Collection("tasks"),
		logger: logger,
	}
}

func (r *taskRepository) Create(ctx context.Context, task *model.Task) error {
	_, err := r.tasks.InsertOne(ctx, task)
	return err
}

func (r *taskRepository) GetByID(ctx context.Context, id, userID string) (*model.Task, error) {
	var task model.Task
	err := r.tasks.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&task)
	if err == mongo.ErrNoDocuments {
		return nil, errors.NewNotFoundError("task", id)
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) ListByUser(ctx context.Context, userID string, completed *bool) ([]*model.Task, error) {
	filter := bson.M{"user_id": userID}
	if completed != nil {
		filter["completed"] = *completed
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.tasks.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []*model.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, id, userID string, update *dto.TaskUpdate) (*model.Task, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Priority != nil {
		set["priority"] = *update.Priority
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.Tags != nil {
		set["tags"] = update.Tags
	}
	if update.DueDate != nil {
		set["due_date"] = *update.DueDate
	}
	if update.StartDate != nil {
		set["start_date"] = *update.StartDate
	}
	if update.EstimatedDuration != nil {
		set["estimated_duration"] = *update.EstimatedDuration
	}
	if update.Context != nil {
		set["context"] = *update.Context
	}
	if update.Completed != nil {
		set["completed"] = *update.Completed
		if *update.Completed {
			set["completed_at"] = time.Now().UTC()
		} else {
			set["completed_at"] = nil
		}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var task model.Task
	err := r.tasks.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "user_id": userID},
		bson.M{"$set": set},
		opts,
	).Decode(&task)
	if err == mongo.ErrNoDocuments {
		return nil, errors.NewNotFoundError("task", id)
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) Delete(ctx context.Context, id, userID string) error {
	res, err := r.tasks.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.NewNotFoundError("task", id)
	}
	return nil
}

func (r *taskRepository) Count(ctx context.Context, userID string, completedOnly bool) (int64, error) {
	filter := bson.M{"user_id": userID}
	if completedOnly {
		filter["completed"] = true
	}
	return r.tasks.CountDocuments(ctx, filter)
}

func (r *taskRepository) ListCompletedSince(ctx context.Context, userID string, since time.Time, limit int) ([]*model.Task, error) {
	filter := bson.M{
		"user_id":      userID,
		"completed":    true,
		"completed_at": bson.M{"$gte": since},
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "completed_at", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.tasks.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []*model.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

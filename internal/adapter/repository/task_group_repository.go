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

type taskGroupRepository struct {
	groups   *mongo.Collection
	subtasks *mongo.Collection
	client   *mongo.Client
	logger   *zap.Logger
}

// NewTaskGroupRepository creates a MongoDB-backed task group repository.
func NewTaskGroupRepository(db *mongo.Database, logger *zap.Logger) repository.TaskGroupRepository {
	return &taskGroupRepository{
		groups:   db.Collection("task_groups"),
		subtasks: db.Collection("subtasks"),
		client:   db.Client(),
		logger:   logger,
	}
}

// CreateGroupWithSubtasks inserts the group and its subtasks inside one
// multi-document transaction so a mid-batch failure leaves nothing behind.
func (r *taskGroupRepository) CreateGroupWithSubtasks(ctx context.Context, group *model.TaskGroup, subtasks []*model.Subtask) error {
	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	docs := make([]interface{}, len(subtasks))
	for i, st := range subtasks {
		docs[i] = st
	}

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.groups.InsertOne(sc, group); err != nil {
			return nil, err
		}
		// Ordered insert keeps creation order aligned with subtask order.
		if _, err := r.subtasks.InsertMany(sc, docs, options.InsertMany().SetOrdered(true)); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}

func (r *taskGroupRepository) GetGroup(ctx context.Context, id string) (*model.TaskGroup, error) {
	var group model.TaskGroup
	err := r.groups.FindOne(ctx, bson.M{"_id": id}).Decode(&group)
	if err == mongo.ErrNoDocuments {
		return nil, errors.NewNotFoundError("task group", id)
	}
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *taskGroupRepository) ListGroupsByUser(ctx context.Context, userID string) ([]*model.TaskGroup, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.groups.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []*model.TaskGroup
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *taskGroupRepository) ListSubtasks(ctx context.Context, groupID string) ([]*model.Subtask, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := r.subtasks.Find(ctx, bson.M{"group_id": groupID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subtasks []*model.Subtask
	if err := cursor.All(ctx, &subtasks); err != nil {
		return nil, err
	}
	return subtasks, nil
}

func (r *taskGroupRepository) GetSubtask(ctx context.Context, id string) (*model.Subtask, error) {
	var subtask model.Subtask
	err := r.subtasks.FindOne(ctx, bson.M{"_id": id}).Decode(&subtask)
	if err == mongo.ErrNoDocuments {
		return nil, errors.NewNotFoundError("subtask", id)
	}
	if err != nil {
		return nil, err
	}
	return &subtask, nil
}

// CompleteSubtask flips the subtask to completed exactly once. The flip is
// conditional on completed=false, so concurrent requests for the same
// subtask collapse to a single counter increment; the group update is a
// single-document pipeline that recomputes the derived fields in place.
func (r *taskGroupRepository) CompleteSubtask(ctx context.Context, subtaskID string) (*model.TaskGroup, bool, error) {
	subtask, err := r.GetSubtask(ctx, subtaskID)
	if err != nil {
		return nil, false, err
	}

	session, err := r.client.StartSession()
	if err != nil {
		return nil, false, err
	}
	defer session.EndSession(ctx)

	var group model.TaskGroup
	var first bool

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := r.subtasks.UpdateOne(sc,
			bson.M{"_id": subtaskID, "completed": false},
			bson.M{"$set": bson.M{"completed": true, "completed_at": time.Now().UTC()}},
		)
		if err != nil {
			return nil, err
		}
		first = res.ModifiedCount == 1

		if !first {
			// Already completed: report current progress unchanged.
			return nil, r.groups.FindOne(sc, bson.M{"_id": subtask.GroupID}).Decode(&group)
		}

		update := mongo.Pipeline{
			bson.D{{Key: "$set", Value: bson.D{
				{Key: "completed_subtasks", Value: bson.D{{Key: "$min", Value: bson.A{
					bson.D{{Key: "$add", Value: bson.A{"$completed_subtasks", 1}}},
					"$total_subtasks",
				}}}},
			}}},
			bson.D{{Key: "$set", Value: bson.D{
				{Key: "progress_percentage", Value: bson.D{{Key: "$multiply", Value: bson.A{
					100,
					bson.D{{Key: "$divide", Value: bson.A{"$completed_subtasks", "$total_subtasks"}}},
				}}}},
				{Key: "is_active", Value: bson.D{{Key: "$lt", Value: bson.A{"$completed_subtasks", "$total_subtasks"}}}},
			}}},
		}

		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		if err := r.groups.FindOneAndUpdate(sc, bson.M{"_id": subtask.GroupID}, update, opts).Decode(&group); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err == mongo.ErrNoDocuments {
		return nil, false, errors.NewNotFoundError("task group", subtask.GroupID)
	}
	if err != nil {
		return nil, false, err
	}

	return &group, first, nil
}

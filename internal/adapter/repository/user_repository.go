package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/taskflowhq/taskflow-server/internal/domain/errors"
	"github.com/taskflowhq/taskflow-server/internal/domain/model"
	"github.com/taskflowhq/taskflow-server/internal/domain/repository"
)

type userRepository struct {
	users  *mongo.Collection
	logger *zap.Logger
}

// NewUserRepository creates a MongoDB-backed user repository.
func NewUserRepository(db *mongo.Database, logger *zap.Logger) repository.UserRepository {
	return &userRepository{
		users:  db.Collection("users"),
		logger: logger,
	}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	_, err := r.users.InsertOne(ctx, user)
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, errors.NewNotFoundError("user", id)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) AddXP(ctx context.Context, userID string, points int) error {
	res, err := r.users.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$inc": bson.M{"xp_points": points}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.NewNotFoundError("user", userID)
	}
	return nil
}

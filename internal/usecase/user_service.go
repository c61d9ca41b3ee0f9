package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/taskflowhq/taskflow-server/internal/domain/dto"
	"github.com/taskflowhq/taskflow-server/internal/domain/model"
	"github.com/taskflowhq/taskflow-server/internal/domain/repository"
)

// UserService handles registration and user lookup.
type UserService struct {
	users  repository.UserRepository
	logger *zap.Logger
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// Register creates a new user account.
func (s *UserService) Register(ctx context.Context, req *dto.UserCreate) (*dto.UserResponse, error) {
	timezone := req.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	user := &model.User{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Email:       req.Email,
		Timezone:    timezone,
		Preferences: map[string]interface{}{},
		XPPoints:    0,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID))

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// Get returns a user by id.
func (s *UserService) Get(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

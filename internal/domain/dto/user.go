package dto

import "github.com/taskflowhq/taskflow-server/internal/domain/model"

// UserCreate is the registration request body.
type UserCreate struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Timezone string `json:"timezone"`
}

// UserResponse is the user view with the derived karma level.
type UserResponse struct {
	*model.User
	KarmaLevel int `json:"karma_level"`
}

// NewUserResponse wraps a user document with its derived fields.
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{User: u, KarmaLevel: u.KarmaLevel()}
}

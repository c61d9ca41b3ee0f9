package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/taskflowhq/taskflow-server/internal/domain/dto"
	"github.com/taskflowhq/taskflow-server/internal/usecase"
)

// UserHandler handles user registration and profile HTTP requests
type UserHandler struct {
	logger      *zap.Logger
	userService *usecase.UserService
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(logger *zap.Logger, userService *usecase.UserService) *UserHandler {
	return &UserHandler{
		logger:      logger,
		userService: userService,
	}
}

// Register handles POST /api/v1/auth/register
func (h *UserHandler) Register(c echo.Context) error {
	var req dto.UserCreate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.userService.Register(c.Request().Context(), &req)
	if err != nil {
		h.logger.Error("Failed to register user",
			zap.String("email", req.Email),
			zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, user)
}

// Get handles GET /api/v1/users/:id
func (h *UserHandler) Get(c echo.Context) error {
	if _, ok := authUserID(c); !ok {
		return unauthorized(c)
	}

	user, err := h.userService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

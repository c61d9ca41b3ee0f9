package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/taskflowhq/taskflow-server/internal/domain/dto"
	"github.com/taskflowhq/taskflow-server/internal/usecase"
)

// NotificationHandler handles notification HTTP requests
type NotificationHandler struct {
	logger              *zap.Logger
	notificationService *usecase.NotificationService
}

// NewNotificationHandler creates a new notification handler instance
func NewNotificationHandler(logger *zap.Logger, notificationService *usecase.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		logger:              logger,
		notificationService: notificationService,
	}
}

// Create handles POST /api/v1/notifications
func (h *NotificationHandler) Create(c echo.Context) error {
	userID, ok := authUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.NotificationCreate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	notification, err := h.notificationService.Create(c.Request().Context(), userID, &req)
	if err != nil {
		h.logger.Error("Failed to create notification",
			zap.String("user_id", userID),
			zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, notification)
}

// List handles GET /api/v1/notifications
func (h *NotificationHandler) List(c echo.Context) error {
	userID, ok := authUserID(c)
	if !ok {
		return unauthorized(c)
	}

	notifications, err := h.notificationService.ListRecent(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list notifications",
			zap.String("user_id", userID),
			zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, notifications)
}

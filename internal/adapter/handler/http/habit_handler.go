package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/taskflowhq/taskflow-server/internal/domain/dto"
	"github.com/taskflowhq/taskflow-server/internal/usecase"
)

// HabitHandler handles habit tracking HTTP requests
type HabitHandler struct {
	logger       *zap.Logger
	habitService *usecase.HabitService
}

// NewHabitHandler creates a new habit handler instance
func NewHabitHandler(logger *zap.Logger, habitService *usecase.HabitService) *HabitHandler {
	return &HabitHandler{
		logger:       logger,
		habitService: habitService,
	}
}

// Create handles POST /api/v1/habits
func (h *HabitHandler) Create(c echo.Context) error {
	userID, ok := authUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.HabitCreate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	habit, err := h.habitService.Create(c.Request().Context(), userID, &req)
	if err != nil {
		h.logger.Error("Failed to create habit",
			zap.String("user_id", userID),
			zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, habit)
}

// List handles GET /api/v1/habits
func (h *HabitHandler) List(c echo.Context) error {
	userID, ok := authUserID(c)
	if !ok {
		return unauthorized(c)
	}

	habits, err := h.habitService.List(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list habits",
			zap.String("user_id", userID),
			zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, habits)
}

// Complete handles POST /api/v1/habits/:id/complete
func (h *HabitHandler) Complete(c echo.Context) error {
	userID, ok := authUserID(c)
	if !ok {
		return unauthorized(c)
	}

	resp, err := h.habitService.Complete(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		h.logger.Error("Failed to complete habit",
			zap.String("user_id", userID),
			zap.String("habit_id", c.Param("id")),
			zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

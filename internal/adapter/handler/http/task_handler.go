package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/taskflowhq/taskflow-server/internal/domain/dto"
	"github.com/taskflowhq/taskflow-server/internal/usecase"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	logger      *zap.Logger
	taskService *usecase.TaskService
}

// NewTaskHandler creates a new task handler instance
func NewTaskHandler(logger *zap.Logger, taskService *usecase.TaskService) *TaskHandler {
	return &TaskHandler{
		logger:      logger,
		taskService: taskService,
	}
}

// Create handles POST /api/v1/tasks
func (h *TaskHandler) Create(c echo.Context) error {
	userID, ok := authUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.TaskCreate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	task, err := h.taskService.Create(c.Request().Context(), userID, &req)
	if err != nil {
		h.logger.Error("Failed to create task",
			zap.String("user_id", userID),
			zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, task)
}

// List handles GET /api/v1/tasks
func (h *TaskHandler) List(c echo.Context) error {
	userID, ok := authUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var completed *bool
	if completedStr := c.QueryParam("completed"); completedStr != "" {
		value, err := strconv.ParseBool(completedStr)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid completed parameter"})
		}
		completed = &value
	}

	tasks, err := h.taskService.List(c.Request().Context(), userID, completed)
	if err != nil {
		h.logger.Error("Failed to list tasks",
			zap.String("user_id", userID),
			zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, tasks)
}

// Get handles GET /api/v1/tasks/:id
func (h *TaskHandler) Get(c echo.Context) error {
	userID, ok := authUserID(c)
	if !ok {
		return unauthorized(c)
	}

	task, err := h.taskService.Get(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, task)
}

// Update handles PUT /api/v1/tasks/:id
func (h *TaskHandler) Update(c echo.Context) error {
	userID, ok := authUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.TaskUpdate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	task, err := h.taskService.Update(c.Request().Context(), userID, c.Param("id"), &req)
	if err != nil {
		h.logger.Error("Failed to update task",
			zap.String("user_id", userID),
			zap.String("task_id", c.Param("id")),
			zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, task)
}

// Delete handles DELETE /api/v1/tasks/:id
func (h *TaskHandler) Delete(c echo.Context) error {
	userID, ok := authUserID(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.taskService.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "task deleted"})
}

// NextBest handles GET /api/v1/tasks/next-best
func (h *TaskHandler) NextBest(c echo.Context) error {
	userID, ok := authUserID(c)
	if !ok {
		return unauthorized(c)
	}

	recommendation, err := h.taskService.NextBest(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("Failed to recommend next task",
			zap.String("user_id", userID),
			zap.Error(err))
		return errorResponse(c, err)
	}
	if recommendation == nil {
		return c.JSON(http.StatusOK, map[string]string{"message": "no open tasks"})
	}

	return c.JSON(http.StatusOK, recommendation)
}

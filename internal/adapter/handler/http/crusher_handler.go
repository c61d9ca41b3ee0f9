package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/taskflowhq/taskflow-server/internal/domain/dto"
	"github.com/taskflowhq/taskflow-server/internal/usecase"
)

// CrusherHandler handles task decomposition and task group HTTP requests
type CrusherHandler struct {
	logger               *zap.Logger
	decompositionService *usecase.DecompositionService
	taskGroupService     *usecase.TaskGroupService
}

// NewCrusherHandler creates a new crusher handler instance
func NewCrusherHandler(
	logger *zap.Logger,
	decompositionService *usecase.DecompositionService,
	taskGroupService *usecase.TaskGroupService,
) *CrusherHandler {
	return &CrusherHandler{
		logger:               logger,
		decompositionService: decompositionService,
		taskGroupService:     taskGroupService,
	}
}

// Decompose handles POST /api/v1/crusher/decompose
func (h *CrusherHandler) Decompose(c echo.Context) error {
	if _, ok := authUserID(c); !ok {
		return unauthorized(c)
	}

	var req dto.TaskDecompositionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	result, err := h.decompositionService.Decompose(c.Request().Context(), &req)
	if err != nil {
		h.logger.Error("Failed to decompose task",
			zap.String("main_task", req.MainTask),
			zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// Materialize handles POST /api/v1/crusher/groups
func (h *CrusherHandler) Materialize(c echo.Context) error {
	userID, ok := authUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var result dto.TaskDecompositionResult
	if err := c.Bind(&result); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	resp, err := h.taskGroupService.Materialize(c.Request().Context(), userID, &result)
	if err != nil {
		h.logger.Error("Failed to materialize task group",
			zap.String("user_id", userID),
			zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, resp)
}

// ListGroups handles GET /api/v1/crusher/groups
func (h *CrusherHandler) ListGroups(c echo.Context) error {
	userID, ok := authUserID(c)
	if !ok {
		return unauthorized(c)
	}

	groups, err := h.taskGroupService.ListGroups(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list task groups",
			zap.String("user_id", userID),
			zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, groups)
}

// GetGroup handles GET /api/v1/crusher/groups/:id
func (h *CrusherHandler) GetGroup(c echo.Context) error {
	userID, ok := authUserID(c)
	if !ok {
		return unauthorized(c)
	}

	detail, err := h.taskGroupService.GetGroup(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		h.logger.Error("Failed to get task group",
			zap.String("user_id", userID),
			zap.String("group_id", c.Param("id")),
			zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, detail)
}

// CompleteSubtask handles POST /api/v1/crusher/subtasks/:id/complete
func (h *CrusherHandler) CompleteSubtask(c echo.Context) error {
	if _, ok := authUserID(c); !ok {
		return unauthorized(c)
	}

	progress, err := h.taskGroupService.CompleteSubtask(c.Request().Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("Failed to complete subtask",
			zap.String("subtask_id", c.Param("id")),
			zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, progress)
}

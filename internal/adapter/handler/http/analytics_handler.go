package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/taskflowhq/taskflow-server/internal/usecase"
)

// AnalyticsHandler handles analytics and AI insight HTTP requests
type AnalyticsHandler struct {
	logger           *zap.Logger
	analyticsService *usecase.AnalyticsService
	insightService   *usecase.InsightService
}

// NewAnalyticsHandler creates a new analytics handler instance
func NewAnalyticsHandler(
	logger *zap.Logger,
	analyticsService *usecase.AnalyticsService,
	insightService *usecase.InsightService,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		logger:           logger,
		analyticsService: analyticsService,
		insightService:   insightService,
	}
}

// Dashboard handles GET /api/v1/analytics/dashboard
func (h *AnalyticsHandler) Dashboard(c echo.Context) error {
	userID, ok := authUserID(c)
	if !ok {
		return unauthorized(c)
	}

	analytics, err := h.analyticsService.Dashboard(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("Failed to build dashboard analytics",
			zap.String("user_id", userID),
			zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, analytics)
}

// Insights handles GET /api/v1/ai/insights
func (h *AnalyticsHandler) Insights(c echo.Context) error {
	userID, ok := authUserID(c)
	if !ok {
		return unauthorized(c)
	}

	insights, err := h.insightService.Insights(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("Failed to generate insights",
			zap.String("user_id", userID),
			zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, insights)
}

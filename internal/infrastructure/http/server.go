package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	handlers "github.com/taskflowhq/taskflow-server/internal/adapter/handler/http"
	"github.com/taskflowhq/taskflow-server/internal/ai"
	"github.com/taskflowhq/taskflow-server/internal/config"
	"github.com/taskflowhq/taskflow-server/internal/infrastructure/database"
	"github.com/taskflowhq/taskflow-server/internal/middleware/auth"
	"github.com/taskflowhq/taskflow-server/internal/usecase"
)

type Server struct {
	config   *config.Config
	logger   *zap.Logger
	echo     *echo.Echo
	repos    *database.Repositories
	aiClient *ai.Client
	cache    *ai.ResponseCache
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func NewServer(cfg *config.Config, logger *zap.Logger, repos *database.Repositories, aiClient *ai.Client, cache *ai.ResponseCache) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &requestValidator{validate: validator.New()}

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.Service.ClientURL},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
	}))

	return &Server{
		config:   cfg,
		logger:   logger,
		echo:     e,
		repos:    repos,
		aiClient: aiClient,
		cache:    cache,
	}
}

func (s *Server) Start() error {
	// Setup routes
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	// Health check
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": s.config.Service.Name,
		})
	})

	aiTimeout := time.Duration(s.config.Service.LLM.TimeoutSeconds) * time.Second

	// Initialize services
	decompositionService := usecase.NewDecompositionService(s.aiClient, s.cache, aiTimeout, s.logger)
	taskGroupService := usecase.NewTaskGroupService(s.repos.TaskGroup, s.repos.User, s.logger)
	userService := usecase.NewUserService(s.repos.User, s.logger)
	taskService := usecase.NewTaskService(s.repos.Task, s.repos.User, s.aiClient, aiTimeout, s.logger)
	habitService := usecase.NewHabitService(s.repos.Habit, s.repos.User, s.logger)
	notificationService := usecase.NewNotificationService(s.repos.Notification, s.logger)
	analyticsService := usecase.NewAnalyticsService(s.repos.Task, s.repos.Habit, s.repos.User, s.logger)
	insightService := usecase.NewInsightService(s.repos.Task, s.repos.Insight, s.aiClient, aiTimeout, s.logger)

	// Initialize handlers
	crusherHandler := handlers.NewCrusherHandler(s.logger, decompositionService, taskGroupService)
	userHandler := handlers.NewUserHandler(s.logger, userService)
	taskHandler := handlers.NewTaskHandler(s.logger, taskService)
	habitHandler := handlers.NewHabitHandler(s.logger, habitService)
	notificationHandler := handlers.NewNotificationHandler(s.logger, notificationService)
	analyticsHandler := handlers.NewAnalyticsHandler(s.logger, analyticsService, insightService)

	// JWT middleware configuration
	jwtConfig := auth.JWTConfig{
		Secret: s.config.JWT.Secret,
		Logger: s.logger,
		SkipPaths: []string{
			"/health",
			"/api/v1/auth/register",
		},
	}

	// API v1 routes
	v1 := s.echo.Group("/api/v1", auth.JWTMiddleware(jwtConfig))

	// Registration is public; the skip list above lets it through
	v1.POST("/auth/register", userHandler.Register)
	v1.GET("/users/:id", userHandler.Get)

	// Task crusher: decomposition, groups, subtask completion
	crusher := v1.Group("/crusher")
	crusher.POST("/decompose", crusherHandler.Decompose)
	crusher.POST("/groups", crusherHandler.Materialize)
	crusher.GET("/groups", crusherHandler.ListGroups)
	crusher.GET("/groups/:id", crusherHandler.GetGroup)
	crusher.POST("/subtasks/:id/complete", crusherHandler.CompleteSubtask)

	// Standalone tasks
	tasks := v1.Group("/tasks")
	tasks.POST("", taskHandler.Create)
	tasks.GET("", taskHandler.List)
	tasks.GET("/next-best", taskHandler.NextBest)
	tasks.GET("/:id", taskHandler.Get)
	tasks.PUT("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)

	// Habits
	habits := v1.Group("/habits")
	habits.POST("", habitHandler.Create)
	habits.GET("", habitHandler.List)
	habits.POST("/:id/complete", habitHandler.Complete)

	// Notifications
	v1.POST("/notifications", notificationHandler.Create)
	v1.GET("/notifications", notificationHandler.List)

	// Analytics and insights
	v1.GET("/analytics/dashboard", analyticsHandler.Dashboard)
	v1.GET("/ai/insights", analyticsHandler.Insights)
}

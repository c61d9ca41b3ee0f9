package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"

	"github.com/taskflowhq/taskflow-server/internal/ai"
	"github.com/taskflowhq/taskflow-server/internal/config"
	"github.com/taskflowhq/taskflow-server/internal/infrastructure/database"
	httpServer "github.com/taskflowhq/taskflow-server/internal/infrastructure/http"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database connection
	db, err := database.Connect(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Disconnect(context.Background(), db); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	// Ensure indexes
	if err := database.EnsureIndexes(context.Background(), db, logger); err != nil {
		logger.Fatal("Failed to ensure indexes", zap.Error(err))
	}

	// Initialize repositories
	repos := database.NewRepositories(db, logger)

	// Initialize LLM client
	llmOpts := []openai.Option{
		openai.WithToken(cfg.Service.LLM.APIKey),
		openai.WithModel(cfg.Service.LLM.Model),
	}
	if cfg.Service.LLM.BaseURL != "" {
		llmOpts = append(llmOpts, openai.WithBaseURL(cfg.Service.LLM.BaseURL))
	}
	llm, err := openai.New(llmOpts...)
	if err != nil {
		logger.Fatal("Failed to initialize LLM client", zap.Error(err))
	}
	aiClient := ai.NewClient(llm, logger)

	// Optional Redis-backed AI response cache
	var cache *ai.ResponseCache
	if cfg.Redis.Address != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})
		ttl := time.Duration(cfg.Service.LLM.CacheTTLHours) * time.Hour
		cache = ai.NewResponseCache(redisClient, ttl, logger)
		logger.Info("AI response cache enabled", zap.String("address", cfg.Redis.Address))
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize server
	httpSrv := httpServer.NewServer(cfg, logger, repos, aiClient, cache)

	// Start server
	go func() {
		if err := httpSrv.Start(); err != nil {
			logger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")

	if err := httpSrv.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown HTTP server", zap.Error(err))
	}

	logger.Info("Server shut down successfully")
}

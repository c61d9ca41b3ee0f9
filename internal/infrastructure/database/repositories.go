package database

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	adapter "github.com/taskflowhq/taskflow-server/internal/adapter/repository"
	"github.com/taskflowhq/taskflow-server/internal/domain/repository"
)

// Repositories bundles every MongoDB-backed repository behind one handle.
type Repositories struct {
	TaskGroup    repository.TaskGroupRepository
	User         repository.UserRepository
	Task         repository.TaskRepository
	Habit        repository.HabitRepository
	Notification repository.NotificationRepository
	Insight      repository.InsightRepository
}

// NewRepositories wires all repositories against the given database.
func NewRepositories(db *mongo.Database, logger *zap.Logger) *Repositories {
	return &Repositories{
		TaskGroup:    adapter.NewTaskGroupRepository(db, logger),
		User:         adapter.NewUserRepository(db, logger),
		Task:         adapter.NewTaskRepository(db, logger),
		Habit:        adapter.NewHabitRepository(db, logger),
		Notification: adapter.NewNotificationRepository(db, logger),
		Insight:      adapter.NewInsightRepository(db, logger),
	}
}

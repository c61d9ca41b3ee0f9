package model

import "time"

// Habit is a recurring practice the user tracks completions against.
type Habit struct {
	ID               string    `bson:"_id" json:"id"`
	UserID           string    `bson:"user_id" json:"user_id"`
	Name             string    `bson:"name" json:"name"`
	Description      string    `bson:"description" json:"description"`
	Category         string    `bson:"category" json:"category"`
	Frequency        string    `bson:"frequency" json:"frequency"` // daily, weekly, monthly
	TargetCount      int       `bson:"target_count" json:"target_count"`
	CurrentStreak    int       `bson:"current_streak" json:"current_streak"`
	BestStreak       int       `bson:"best_streak" json:"best_streak"`
	TotalCompletions int       `bson:"total_completions" json:"total_completions"`
	IsActive         bool      `bson:"is_active" json:"is_active"`
	ReminderTime     string    `bson:"reminder_time,omitempty" json:"reminder_time,omitempty"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
}

// HabitCompletion is one recorded completion of a habit.
type HabitCompletion struct {
	ID            string    `bson:"_id" json:"id"`
	UserID        string    `bson:"user_id" json:"user_id"`
	HabitID       string    `bson:"habit_id" json:"habit_id"`
	CompletedDate time.Time `bson:"completed_date" json:"completed_date"`
	Count         int       `bson:"count" json:"count"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
}

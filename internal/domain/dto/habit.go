package dto

import "time"

// HabitCreate is the request body for creating a habit.
type HabitCreate struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description"`
	Category     string `json:"category" validate:"required"`
	Frequency    string `json:"frequency" validate:"omitempty,oneof=daily weekly monthly"`
	TargetCount  int    `json:"target_count"`
	ReminderTime string `json:"reminder_time"`
}

// HabitCompleteResponse reports the streak after a completion.
type HabitCompleteResponse struct {
	Message string `json:"message"`
	Streak  int    `json:"streak"`
}

// NotificationCreate is the request body for scheduling a notification.
type NotificationCreate struct {
	Title         string    `json:"title" validate:"required"`
	Message       string    `json:"message" validate:"required"`
	Type          string    `json:"type" validate:"required,oneof=reminder nudge achievement reflection"`
	RelatedID     string    `json:"related_id"`
	ScheduledTime time.Time `json:"scheduled_time" validate:"required"`
}

package dto

// DashboardAnalytics aggregates the user's headline numbers.
type DashboardAnalytics struct {
	TotalTasks               int64   `json:"total_tasks"`
	CompletedTasks           int64   `json:"completed_tasks"`
	CompletionRate           float64 `json:"completion_rate"`
	HabitCompletionsThisWeek int64   `json:"habit_completions_this_week"`
	XPPoints                 int     `json:"xp_points"`
	KarmaLevel               int     `json:"karma_level"`
}

// InsightsResponse wraps generated productivity insights.
type InsightsResponse struct {
	Insights []string `json:"insights"`
}

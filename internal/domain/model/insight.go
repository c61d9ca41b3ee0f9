package model

import "time"

// AIInsight is a generated productivity insight stored for later review.
type AIInsight struct {
	ID          string    `bson:"_id" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	InsightType string    `bson:"insight_type" json:"insight_type"` // productivity_pattern, next_best_task
	Content     string    `bson:"content" json:"content"`
	Confidence  float64   `bson:"confidence" json:"confidence"`
	GeneratedAt time.Time `bson:"generated_at" json:"generated_at"`
}

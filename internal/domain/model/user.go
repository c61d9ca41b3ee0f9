package model

import "time"

// User represents a registered app user.
type User struct {
	ID          string                 `bson:"_id" json:"id"`
	Name        string                 `bson:"name" json:"name"`
	Email       string                 `bson:"email" json:"email"`
	Timezone    string                 `bson:"timezone" json:"timezone"`
	Preferences map[string]interface{} `bson:"preferences" json:"preferences"`
	XPPoints    int                    `bson:"xp_points" json:"xp_points"`
	CreatedAt   time.Time              `bson:"created_at" json:"created_at"`
}

// KarmaLevel is derived from accumulated XP: one level per 100 points.
func (u *User) KarmaLevel() int {
	return u.XPPoints/100 + 1
}

// XP awards per completed unit of work.
const (
	XPTaskCompletion    = 10
	XPSubtaskCompletion = 5
	XPHabitCompletion   = 5
)

package models

import "time"

// Progress statuses
const (
	ProgressNotStarted = "not-started"
	ProgressCompleted  = "completed"
)

// UserProgress tracks a user's completion of a single step.
// At most one record exists per (user, step) pair; the composite unique
// index makes concurrent completion upserts race-safe at the database.
type UserProgress struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	UserID      uint       `json:"user" gorm:"uniqueIndex:idx_user_step;not null"`
	StepID      uint       `json:"step" gorm:"uniqueIndex:idx_user_step;not null"`
	Status      string     `json:"status" gorm:"default:'not-started'"`
	CompletedAt *time.Time `json:"completedAt"` // set iff status is completed
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

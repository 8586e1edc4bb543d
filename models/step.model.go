package models

import "time"

// Step types
const (
	StepVideo    = "video"
	StepReading  = "reading"
	StepExercise = "exercise"
	StepQuiz     = "quiz"
)

// Step is a leaf content unit within a module
type Step struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title" gorm:"not null"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	ModuleID   uint      `json:"module" gorm:"index;not null"`
	OrderIndex int       `json:"orderIndex" gorm:"default:0"` // step order within module
	Type       string    `json:"type" gorm:"not null"`        // video, reading, exercise, quiz
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

package models

import "time"

// Module types
const (
	ModuleLesson     = "lesson"
	ModuleExercise   = "exercise"
	ModuleAssessment = "assessment"
)

// Module is an ordered section within a therapy
type Module struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	TherapyID   uint      `json:"therapy" gorm:"index;not null"`
	OrderIndex  int       `json:"orderIndex" gorm:"default:0"` // module order within therapy
	Type        string    `json:"type" gorm:"not null"`        // lesson, exercise, assessment
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

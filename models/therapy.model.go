package models

import "time"

// Therapy is a guided program authored by a therapist
type Therapy struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Category    string    `json:"category" gorm:"not null"`
	Duration    int       `json:"duration" gorm:"default:0"` // duration in weeks
	CreatedByID uint      `json:"-" gorm:"index;not null"`
	CreatedBy   User      `json:"-" gorm:"foreignKey:CreatedByID"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

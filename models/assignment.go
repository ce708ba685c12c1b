package models

import (
	"time"

	"gorm.io/gorm"
)

type Assignment struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	CourseID     uint           `json:"course_id" gorm:"not null"`
	Title        string         `json:"title" gorm:"not null"`
	Instructions string         `json:"instructions"`
	DueDate      *time.Time     `json:"due_date"`
	MaxMarks     int            `json:"max_marks" gorm:"not null;default:100"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Course      Course                 `json:"course,omitempty"`
	Submissions []AssignmentSubmission `json:"submissions,omitempty" gorm:"foreignKey:AssignmentID"`
}

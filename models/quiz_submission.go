package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// A QuizSubmission is written exactly once, after grading completes in
// memory, and is never mutated afterwards.
type QuizSubmission struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	QuizID        uint           `json:"quiz_id" gorm:"not null;index"`
	UserID        uint           `json:"user_id" gorm:"not null;index"`
	Answers       datatypes.JSON `json:"answers" gorm:"type:jsonb"`
	MarksObtained int            `json:"marks_obtained" gorm:"not null"`
	SubmittedAt   time.Time      `json:"submitted_at"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Quiz Quiz `json:"quiz,omitempty"`
	User User `json:"user,omitempty"`
}

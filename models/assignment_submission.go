package models

import (
	"time"

	"gorm.io/gorm"
)

type AssignmentSubmission struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	AssignmentID  uint           `json:"assignment_id" gorm:"not null;index"`
	UserID        uint           `json:"user_id" gorm:"not null;index"`
	Content       string         `json:"content"`
	AttachmentURL string         `json:"attachment_url"`
	Grade         *int           `json:"grade"`
	Feedback      string         `json:"feedback"`
	SubmittedAt   time.Time      `json:"submitted_at"`
	GradedAt      *time.Time     `json:"graded_at"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Assignment Assignment `json:"assignment,omitempty"`
	User       User       `json:"user,omitempty"`
}

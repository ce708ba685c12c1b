package models

import (
	"time"

	"gorm.io/gorm"
)

type Enrollment struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	CourseID    uint           `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_course_user"`
	UserID      uint           `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_course_user"`
	EnrolledAt  time.Time      `json:"enrolled_at"`
	CompletedAt *time.Time     `json:"completed_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Course Course `json:"course,omitempty"`
	User   User   `json:"user,omitempty"`
}

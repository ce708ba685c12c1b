package models

import (
	"time"

	"gorm.io/gorm"
)

type Certificate struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CourseID  uint           `json:"course_id" gorm:"not null;uniqueIndex:idx_certificate_course_user"`
	UserID    uint           `json:"user_id" gorm:"not null;uniqueIndex:idx_certificate_course_user"`
	Serial    string         `json:"serial" gorm:"uniqueIndex;not null"`
	IssuedAt  time.Time      `json:"issued_at"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Course Course `json:"course,omitempty"`
	User   User   `json:"user,omitempty"`
}

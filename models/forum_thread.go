package models

import (
	"time"

	"gorm.io/gorm"
)

type ForumThread struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CourseID  uint           `json:"course_id" gorm:"not null;index"`
	UserID    uint           `json:"user_id" gorm:"not null"`
	Title     string         `json:"title" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Course Course      `json:"course,omitempty"`
	User   User        `json:"user,omitempty"`
	Posts  []ForumPost `json:"posts,omitempty" gorm:"foreignKey:ThreadID"`
}

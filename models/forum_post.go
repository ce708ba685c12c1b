package models

import (
	"time"

	"gorm.io/gorm"
)

type ForumPost struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	ThreadID  uint           `json:"thread_id" gorm:"not null;index"`
	UserID    uint           `json:"user_id" gorm:"not null"`
	Body      string         `json:"body" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Thread ForumThread `json:"thread,omitempty" gorm:"foreignKey:ThreadID"`
	User   User        `json:"user,omitempty"`
}

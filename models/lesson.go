package models

import (
	"time"

	"gorm.io/gorm"
)

type Lesson struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	ModuleID  uint           `json:"module_id" gorm:"not null"`
	Title     string         `json:"title" gorm:"not null"`
	Body      string         `json:"body"`
	VideoURL  string         `json:"video_url"`
	Order     int            `json:"order" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Module CourseModule `json:"module,omitempty" gorm:"foreignKey:ModuleID"`
}

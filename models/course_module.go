package models

import (
	"time"

	"gorm.io/gorm"
)

type CourseModule struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CourseID  uint           `json:"course_id" gorm:"not null"`
	Title     string         `json:"title" gorm:"not null"`
	Order     int            `json:"order" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Course  Course   `json:"course,omitempty"`
	Lessons []Lesson `json:"lessons,omitempty" gorm:"foreignKey:ModuleID"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

type Course struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Title        string         `json:"title" gorm:"not null"`
	Description  string         `json:"description"`
	InstructorID uint           `json:"instructor_id" gorm:"not null"`
	Published    bool           `json:"published" gorm:"not null;default:false"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Instructor  User           `json:"instructor,omitempty"`
	Modules     []CourseModule `json:"modules,omitempty" gorm:"foreignKey:CourseID"`
	Enrollments []Enrollment   `json:"enrollments,omitempty" gorm:"foreignKey:CourseID"`
	Quizzes     []Quiz         `json:"quizzes,omitempty" gorm:"foreignKey:CourseID"`
	Assignments []Assignment   `json:"assignments,omitempty" gorm:"foreignKey:CourseID"`
	Threads     []ForumThread  `json:"threads,omitempty" gorm:"foreignKey:CourseID"`
}

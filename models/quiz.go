package models

import (
	"time"

	"gorm.io/gorm"
)

// TotalMarks always equals the sum of the questions' marks. The quiz
// service recomputes it in the same transaction as any question change.
type Quiz struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	CourseID   uint           `json:"course_id" gorm:"not null"`
	Title      string         `json:"title" gorm:"not null"`
	TotalMarks int            `json:"total_marks" gorm:"not null;default:0"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Course      Course           `json:"course,omitempty"`
	Questions   []Question       `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
	Submissions []QuizSubmission `json:"submissions,omitempty" gorm:"foreignKey:QuizID"`
}

func (q *Quiz) SumMarks() int {
	total := 0
	for _, question := range q.Questions {
		total += question.Marks
	}
	return total
}

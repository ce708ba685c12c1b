package services

import (
	"errors"
	"time"

	"learnhub/models"

	"gorm.io/gorm"
)

type EnrollmentService struct {
	db *gorm.DB
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{db: db}
}

func (s *EnrollmentService) Enroll(courseID, userID uint) (*models.Enrollment, error) {
	var course models.Course
	if err := s.db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !course.Published {
		return nil, ErrNotFound
	}

	var existing models.Enrollment
	err := s.db.Where("course_id = ? AND user_id = ?", courseID, userID).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyEnrolled
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment := models.Enrollment{
		CourseID:   courseID,
		UserID:     userID,
		EnrolledAt: time.Now(),
	}
	if err := s.db.Create(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (s *EnrollmentService) Drop(courseID, userID uint) error {
	result := s.db.Where("course_id = ? AND user_id = ?", courseID, userID).
		Delete(&models.Enrollment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotEnrolled
	}
	return nil
}

func (s *EnrollmentService) ListForUser(userID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := s.db.Where("user_id = ?", userID).
		Preload("Course").
		Preload("Course.Instructor").
		Order("enrolled_at DESC").
		Find(&enrollments).Error
	return enrollments, err
}

func (s *EnrollmentService) ListForCourse(courseID, callerID uint, callerRole string) ([]models.Enrollment, error) {
	var course models.Course
	if err := s.db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if callerRole != models.RoleAdmin && course.InstructorID != callerID {
		return nil, ErrAccessDenied
	}

	var enrollments []models.Enrollment
	err := s.db.Where("course_id = ?", courseID).
		Preload("User").
		Order("enrolled_at").
		Find(&enrollments).Error
	return enrollments, err
}

func (s *EnrollmentService) IsEnrolled(courseID, userID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Enrollment{}).
		Where("course_id = ? AND user_id = ?", courseID, userID).
		Count(&count).Error
	return count > 0, err
}

// MarkCompleted stamps the enrollment; completion is what gates
// certificate issuance.
func (s *EnrollmentService) MarkCompleted(courseID, userID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := s.db.Where("course_id = ? AND user_id = ?", courseID, userID).First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotEnrolled
		}
		return nil, err
	}

	if enrollment.CompletedAt == nil {
		now := time.Now()
		enrollment.CompletedAt = &now
		if err := s.db.Save(&enrollment).Error; err != nil {
			return nil, err
		}
	}
	return &enrollment, nil
}

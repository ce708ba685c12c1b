package services

import (
	"errors"
	"time"

	"learnhub/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CertificateService struct {
	db *gorm.DB
}

func NewCertificateService(db *gorm.DB) *CertificateService {
	return &CertificateService{db: db}
}

// Issue creates a certificate for a completed enrollment. Rendering the
// certificate to PDF is the client's concern; the backend only owns the
// verifiable record.
func (s *CertificateService) Issue(courseID, userID uint) (*models.Certificate, error) {
	var enrollment models.Enrollment
	err := s.db.Where("course_id = ? AND user_id = ?", courseID, userID).First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotEnrolled
		}
		return nil, err
	}
	if enrollment.CompletedAt == nil {
		return nil, ErrCourseNotCompleted
	}

	var existing models.Certificate
	err = s.db.Where("course_id = ? AND user_id = ?", courseID, userID).First(&existing).Error
	if err == nil {
		return nil, ErrCertificateExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cert := models.Certificate{
		CourseID: courseID,
		UserID:   userID,
		Serial:   uuid.NewString(),
		IssuedAt: time.Now(),
	}
	if err := s.db.Create(&cert).Error; err != nil {
		return nil, err
	}
	return &cert, nil
}

func (s *CertificateService) ListForUser(userID uint) ([]models.Certificate, error) {
	var certs []models.Certificate
	err := s.db.Where("user_id = ?", userID).
		Preload("Course").
		Order("issued_at DESC").
		Find(&certs).Error
	return certs, err
}

// Verify is public: anyone holding a serial can confirm who earned what.
func (s *CertificateService) Verify(serial string) (*models.Certificate, error) {
	var cert models.Certificate
	err := s.db.Where("serial = ?", serial).
		Preload("Course").
		Preload("User").
		First(&cert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cert, nil
}

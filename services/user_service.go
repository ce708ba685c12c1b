package services

import (
	"errors"

	"learnhub/models"

	"gorm.io/gorm"
)

// UserService backs the admin console: user listing, role changes, and
// the aggregate counts shown on the dashboard.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type AdminStats struct {
	Users           int64 `json:"users"`
	Courses         int64 `json:"courses"`
	Enrollments     int64 `json:"enrollments"`
	Quizzes         int64 `json:"quizzes"`
	QuizSubmissions int64 `json:"quiz_submissions"`
	Assignments     int64 `json:"assignments"`
	Certificates    int64 `json:"certificates"`
}

func (s *UserService) ListUsers() ([]models.User, error) {
	var users []models.User
	err := s.db.Order("created_at").Find(&users).Error
	return users, err
}

func (s *UserService) UpdateRole(userID uint, req *UpdateRoleRequest) (*models.User, error) {
	if !models.ValidRole(req.Role) {
		return nil, ErrInvalidInput
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	user.Role = req.Role
	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Stats() (*AdminStats, error) {
	stats := &AdminStats{}
	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.User{}, &stats.Users},
		{&models.Course{}, &stats.Courses},
		{&models.Enrollment{}, &stats.Enrollments},
		{&models.Quiz{}, &stats.Quizzes},
		{&models.QuizSubmission{}, &stats.QuizSubmissions},
		{&models.Assignment{}, &stats.Assignments},
		{&models.Certificate{}, &stats.Certificates},
	}
	for _, c := range counts {
		if err := s.db.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return stats, nil
}

package services

import (
	"errors"
	"time"

	"learnhub/models"

	"gorm.io/gorm"
)

type AssignmentService struct {
	db *gorm.DB
}

func NewAssignmentService(db *gorm.DB) *AssignmentService {
	return &AssignmentService{db: db}
}

type CreateAssignmentRequest struct {
	Title        string     `json:"title" binding:"required"`
	Instructions string     `json:"instructions"`
	DueDate      *time.Time `json:"due_date"`
	MaxMarks     int        `json:"max_marks"`
}

type SubmitAssignmentRequest struct {
	Content       string `json:"content"`
	AttachmentURL string `json:"attachment_url"`
}

type GradeAssignmentRequest struct {
	Grade    int    `json:"grade" binding:"min=0"`
	Feedback string `json:"feedback"`
}

func (s *AssignmentService) Create(courseID, callerID uint, callerRole string, req *CreateAssignmentRequest) (*models.Assignment, error) {
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

	maxMarks := req.MaxMarks
	if maxMarks <= 0 {
		maxMarks = 100
	}

	assignment := models.Assignment{
		CourseID:     courseID,
		Title:        req.Title,
		Instructions: req.Instructions,
		DueDate:      req.DueDate,
		MaxMarks:     maxMarks,
	}
	if err := s.db.Create(&assignment).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (s *AssignmentService) ListForCourse(courseID uint) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := s.db.Where("course_id = ?", courseID).
		Order("due_date").
		Find(&assignments).Error
	return assignments, err
}

func (s *AssignmentService) Delete(assignmentID, callerID uint, callerRole string) error {
	assignment, err := s.get(assignmentID)
	if err != nil {
		return err
	}
	if err := s.checkOwner(assignment.CourseID, callerID, callerRole); err != nil {
		return err
	}
	return s.db.Delete(&models.Assignment{}, assignmentID).Error
}

// Submit records a student's work. Students must be enrolled in the
// assignment's course; resubmission replaces nothing, each upload is a
// separate row, graded independently.
func (s *AssignmentService) Submit(assignmentID, userID uint, req *SubmitAssignmentRequest) (*models.AssignmentSubmission, error) {
	assignment, err := s.get(assignmentID)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Enrollment{}).
		Where("course_id = ? AND user_id = ?", assignment.CourseID, userID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNotEnrolled
	}

	if req.Content == "" && req.AttachmentURL == "" {
		return nil, ErrInvalidInput
	}

	sub := models.AssignmentSubmission{
		AssignmentID:  assignmentID,
		UserID:        userID,
		Content:       req.Content,
		AttachmentURL: req.AttachmentURL,
		SubmittedAt:   time.Now(),
	}
	if err := s.db.Create(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *AssignmentService) ListSubmissions(assignmentID, callerID uint, callerRole string) ([]models.AssignmentSubmission, error) {
	assignment, err := s.get(assignmentID)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwner(assignment.CourseID, callerID, callerRole); err != nil {
		return nil, err
	}

	var subs []models.AssignmentSubmission
	err = s.db.Where("assignment_id = ?", assignmentID).
		Preload("User").
		Order("submitted_at").
		Find(&subs).Error
	return subs, err
}

func (s *AssignmentService) Grade(submissionID, callerID uint, callerRole string, req *GradeAssignmentRequest) (*models.AssignmentSubmission, error) {
	var sub models.AssignmentSubmission
	if err := s.db.Preload("Assignment").First(&sub, submissionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.checkOwner(sub.Assignment.CourseID, callerID, callerRole); err != nil {
		return nil, err
	}
	if req.Grade > sub.Assignment.MaxMarks {
		return nil, ErrInvalidInput
	}

	now := time.Now()
	sub.Grade = &req.Grade
	sub.Feedback = req.Feedback
	sub.GradedAt = &now
	if err := s.db.Save(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *AssignmentService) get(assignmentID uint) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := s.db.First(&assignment, assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &assignment, nil
}

func (s *AssignmentService) checkOwner(courseID, callerID uint, callerRole string) error {
	var course models.Course
	if err := s.db.First(&course, courseID).Error; err != nil {
		return err
	}
	if callerRole != models.RoleAdmin && course.InstructorID != callerID {
		return ErrAccessDenied
	}
	return nil
}

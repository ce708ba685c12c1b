package services

import (
	"errors"

	"learnhub/models"

	"gorm.io/gorm"
)

type CourseService struct {
	db *gorm.DB
}

func NewCourseService(db *gorm.DB) *CourseService {
	return &CourseService{db: db}
}

type CreateCourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Published   bool   `json:"published"`
}

type UpdateCourseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Published   *bool  `json:"published"`
}

type CreateModuleRequest struct {
	Title string `json:"title" binding:"required"`
	Order int    `json:"order" binding:"required"`
}

type CreateLessonRequest struct {
	Title    string `json:"title" binding:"required"`
	Body     string `json:"body"`
	VideoURL string `json:"video_url"`
	Order    int    `json:"order" binding:"required"`
}

func (s *CourseService) CreateCourse(instructorID uint, req *CreateCourseRequest) (*models.Course, error) {
	course := models.Course{
		Title:        req.Title,
		Description:  req.Description,
		InstructorID: instructorID,
		Published:    req.Published,
	}
	if err := s.db.Create(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// ListCourses returns published courses. Instructors and admins also see
// unpublished ones (their own drafts, or everything for admins).
func (s *CourseService) ListCourses(callerID uint, callerRole string) ([]models.Course, error) {
	query := s.db.Preload("Instructor").Order("created_at DESC")
	switch callerRole {
	case models.RoleAdmin:
		// no filter
	case models.RoleInstructor:
		query = query.Where("published = ? OR instructor_id = ?", true, callerID)
	default:
		query = query.Where("published = ?", true)
	}

	var courses []models.Course
	err := query.Find(&courses).Error
	return courses, err
}

func (s *CourseService) GetCourse(courseID uint) (*models.Course, error) {
	var course models.Course
	err := s.db.
		Preload("Instructor").
		Preload("Modules", func(db *gorm.DB) *gorm.DB {
			return db.Order("course_modules.order")
		}).
		Preload("Modules.Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("lessons.order")
		}).
		First(&course, courseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &course, nil
}

// checkCourseOwnership allows the owning instructor and any admin.
func (s *CourseService) checkCourseOwnership(courseID, callerID uint, callerRole string) (*models.Course, error) {
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
	return &course, nil
}

func (s *CourseService) UpdateCourse(courseID, callerID uint, callerRole string, req *UpdateCourseRequest) (*models.Course, error) {
	course, err := s.checkCourseOwnership(courseID, callerID, callerRole)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		course.Title = req.Title
	}
	if req.Description != "" {
		course.Description = req.Description
	}
	if req.Published != nil {
		course.Published = *req.Published
	}

	if err := s.db.Save(course).Error; err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) DeleteCourse(courseID, callerID uint, callerRole string) error {
	if _, err := s.checkCourseOwnership(courseID, callerID, callerRole); err != nil {
		return err
	}
	return s.db.Delete(&models.Course{}, courseID).Error
}

func (s *CourseService) CreateModule(courseID, callerID uint, callerRole string, req *CreateModuleRequest) (*models.CourseModule, error) {
	if _, err := s.checkCourseOwnership(courseID, callerID, callerRole); err != nil {
		return nil, err
	}

	module := models.CourseModule{
		CourseID: courseID,
		Title:    req.Title,
		Order:    req.Order,
	}
	if err := s.db.Create(&module).Error; err != nil {
		return nil, err
	}
	return &module, nil
}

func (s *CourseService) DeleteModule(moduleID, callerID uint, callerRole string) error {
	var module models.CourseModule
	if err := s.db.First(&module, moduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if _, err := s.checkCourseOwnership(module.CourseID, callerID, callerRole); err != nil {
		return err
	}
	return s.db.Delete(&models.CourseModule{}, moduleID).Error
}

func (s *CourseService) CreateLesson(moduleID, callerID uint, callerRole string, req *CreateLessonRequest) (*models.Lesson, error) {
	var module models.CourseModule
	if err := s.db.First(&module, moduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if _, err := s.checkCourseOwnership(module.CourseID, callerID, callerRole); err != nil {
		return nil, err
	}

	lesson := models.Lesson{
		ModuleID: moduleID,
		Title:    req.Title,
		Body:     req.Body,
		VideoURL: req.VideoURL,
		Order:    req.Order,
	}
	if err := s.db.Create(&lesson).Error; err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (s *CourseService) DeleteLesson(lessonID, callerID uint, callerRole string) error {
	var lesson models.Lesson
	if err := s.db.Preload("Module").First(&lesson, lessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if _, err := s.checkCourseOwnership(lesson.Module.CourseID, callerID, callerRole); err != nil {
		return err
	}
	return s.db.Delete(&models.Lesson{}, lessonID).Error
}

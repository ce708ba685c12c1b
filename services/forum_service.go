package services

import (
	"errors"

	"learnhub/models"

	"gorm.io/gorm"
)

type ForumService struct {
	db  *gorm.DB
	hub *Hub
}

func NewForumService(db *gorm.DB, hub *Hub) *ForumService {
	return &ForumService{db: db, hub: hub}
}

type CreateThreadRequest struct {
	Title string `json:"title" binding:"required"`
}

type CreatePostRequest struct {
	Body string `json:"body" binding:"required"`
}

// checkCourseMembership admits enrolled students, the course instructor,
// and admins. Everyone else cannot read or write the course forum.
func (s *ForumService) checkCourseMembership(courseID, callerID uint, callerRole string) error {
	var course models.Course
	if err := s.db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if callerRole == models.RoleAdmin || course.InstructorID == callerID {
		return nil
	}

	var count int64
	if err := s.db.Model(&models.Enrollment{}).
		Where("course_id = ? AND user_id = ?", courseID, callerID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrAccessDenied
	}
	return nil
}

func (s *ForumService) CreateThread(courseID, callerID uint, callerRole string, req *CreateThreadRequest) (*models.ForumThread, error) {
	if err := s.checkCourseMembership(courseID, callerID, callerRole); err != nil {
		return nil, err
	}

	thread := models.ForumThread{
		CourseID: courseID,
		UserID:   callerID,
		Title:    req.Title,
	}
	if err := s.db.Create(&thread).Error; err != nil {
		return nil, err
	}
	return &thread, nil
}

func (s *ForumService) ListThreads(courseID, callerID uint, callerRole string) ([]models.ForumThread, error) {
	if err := s.checkCourseMembership(courseID, callerID, callerRole); err != nil {
		return nil, err
	}

	var threads []models.ForumThread
	err := s.db.Where("course_id = ?", courseID).
		Preload("User").
		Order("created_at DESC").
		Find(&threads).Error
	return threads, err
}

func (s *ForumService) CreatePost(threadID, callerID uint, callerRole string, req *CreatePostRequest) (*models.ForumPost, error) {
	var thread models.ForumThread
	if err := s.db.First(&thread, threadID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.checkCourseMembership(thread.CourseID, callerID, callerRole); err != nil {
		return nil, err
	}

	post := models.ForumPost{
		ThreadID: threadID,
		UserID:   callerID,
		Body:     req.Body,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}

	// Thread author hears about replies from others.
	if s.hub != nil && thread.UserID != callerID {
		s.hub.NotifyUser(thread.UserID, "forum_reply", post)
	}

	return &post, nil
}

func (s *ForumService) ListPosts(threadID, callerID uint, callerRole string) ([]models.ForumPost, error) {
	var thread models.ForumThread
	if err := s.db.First(&thread, threadID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.checkCourseMembership(thread.CourseID, callerID, callerRole); err != nil {
		return nil, err
	}

	var posts []models.ForumPost
	err := s.db.Where("thread_id = ?", threadID).
		Preload("User").
		Order("created_at").
		Find(&posts).Error
	return posts, err
}

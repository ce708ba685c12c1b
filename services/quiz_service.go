package services

import (
	"context"
	"encoding/json"
	"errors"

	"learnhub/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuizService struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewQuizService(db *gorm.DB, redisClient *redis.Client) *QuizService {
	return &QuizService{db: db, redis: redisClient}
}

type CreateQuizRequest struct {
	Title     string                  `json:"title" binding:"required"`
	Questions []CreateQuestionRequest `json:"questions" binding:"required,min=1,dive"`
}

type CreateQuestionRequest struct {
	Text string `json:"text" binding:"required"`
	// Options is informational (rendered by the client); CorrectAnswer is
	// a JSON string for scalar questions or a JSON array for multi-select.
	Options       []string        `json:"options"`
	CorrectAnswer json.RawMessage `json:"correct_answer" binding:"required"`
	Marks         int             `json:"marks"`
	Order         int             `json:"order"`
}

type UpdateQuizRequest struct {
	Title     string                  `json:"title"`
	Questions []CreateQuestionRequest `json:"questions" binding:"omitempty,min=1,dive"`
}

func (s *QuizService) CreateQuiz(ctx context.Context, courseID, callerID uint, callerRole string, req *CreateQuizRequest) (*models.Quiz, error) {
	if err := s.checkCourseAccess(courseID, callerID, callerRole); err != nil {
		return nil, err
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	quiz := models.Quiz{
		CourseID: courseID,
		Title:    req.Title,
	}
	if err := tx.Create(&quiz).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := createQuestions(tx, quiz.ID, req.Questions); err != nil {
		tx.Rollback()
		return nil, err
	}

	// Keep the total-marks invariant inside the same transaction as the
	// question writes.
	if err := recomputeTotalMarks(tx, quiz.ID); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return s.getQuiz(quiz.ID)
}

func (s *QuizService) UpdateQuiz(ctx context.Context, quizID, callerID uint, callerRole string, req *UpdateQuizRequest) (*models.Quiz, error) {
	quiz, err := s.getQuiz(quizID)
	if err != nil {
		return nil, err
	}
	if err := s.checkCourseAccess(quiz.CourseID, callerID, callerRole); err != nil {
		return nil, err
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if req.Title != "" {
		quiz.Title = req.Title
	}
	if err := tx.Save(quiz).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	// Providing questions replaces the whole set.
	if req.Questions != nil {
		if err := tx.Where("quiz_id = ?", quizID).Delete(&models.Question{}).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := createQuestions(tx, quizID, req.Questions); err != nil {
			tx.Rollback()
			return nil, err
		}
		if err := recomputeTotalMarks(tx, quizID); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	InvalidateQuizCache(ctx, s.redis, quizID)

	return s.getQuiz(quizID)
}

func (s *QuizService) DeleteQuiz(ctx context.Context, quizID, callerID uint, callerRole string) error {
	quiz, err := s.getQuiz(quizID)
	if err != nil {
		return err
	}
	if err := s.checkCourseAccess(quiz.CourseID, callerID, callerRole); err != nil {
		return err
	}

	if err := s.db.Delete(&models.Quiz{}, quizID).Error; err != nil {
		return err
	}
	InvalidateQuizCache(ctx, s.redis, quizID)
	return nil
}

func (s *QuizService) ListForCourse(courseID uint) ([]models.Quiz, error) {
	var quizzes []models.Quiz
	err := s.db.Where("course_id = ?", courseID).
		Order("created_at").
		Find(&quizzes).Error
	return quizzes, err
}

// GetQuizForCaller returns the quiz with its questions. For students the
// answer key is stripped so the quiz can be taken, not read.
func (s *QuizService) GetQuizForCaller(quizID uint, callerRole string) (*models.Quiz, error) {
	quiz, err := s.getQuiz(quizID)
	if err != nil {
		return nil, err
	}
	if callerRole == models.RoleStudent {
		for i := range quiz.Questions {
			quiz.Questions[i].CorrectAnswer = nil
		}
	}
	return quiz, nil
}

func (s *QuizService) getQuiz(quizID uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := s.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.order")
		}).
		First(&quiz, quizID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

func (s *QuizService) checkCourseAccess(courseID, callerID uint, callerRole string) error {
	var course models.Course
	if err := s.db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if callerRole != models.RoleAdmin && course.InstructorID != callerID {
		return ErrAccessDenied
	}
	return nil
}

func createQuestions(tx *gorm.DB, quizID uint, reqs []CreateQuestionRequest) error {
	for i, qReq := range reqs {
		marks := qReq.Marks
		if marks <= 0 {
			marks = 1
		}
		order := qReq.Order
		if order == 0 {
			order = i + 1
		}

		var options datatypes.JSON
		if qReq.Options != nil {
			encoded, err := json.Marshal(qReq.Options)
			if err != nil {
				return err
			}
			options = datatypes.JSON(encoded)
		}

		question := models.Question{
			QuizID:        quizID,
			Text:          qReq.Text,
			Options:       options,
			CorrectAnswer: datatypes.JSON(qReq.CorrectAnswer),
			Marks:         marks,
			Order:         order,
		}
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
	}
	return nil
}

func recomputeTotalMarks(tx *gorm.DB, quizID uint) error {
	var quiz models.Quiz
	if err := tx.Preload("Questions").First(&quiz, quizID).Error; err != nil {
		return err
	}
	return tx.Model(&models.Quiz{}).
		Where("id = ?", quizID).
		Update("total_marks", quiz.SumMarks()).Error
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"learnhub/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// QuizStore is the persistence boundary of the grading engine: one read
// for the quiz and its questions, one write for the submission record.
type QuizStore interface {
	FetchQuizWithQuestions(ctx context.Context, quizID uint) (*models.Quiz, error)
	CreateSubmission(ctx context.Context, sub *models.QuizSubmission) error
	// ReplaceSubmissions soft-deletes the user's earlier submissions for
	// the quiz and creates sub in the same transaction.
	ReplaceSubmissions(ctx context.Context, sub *models.QuizSubmission) error
	HasSubmission(ctx context.Context, quizID, userID uint) (bool, error)
	ListByQuiz(ctx context.Context, quizID uint) ([]models.QuizSubmission, error)
	ListByQuizAndUser(ctx context.Context, quizID, userID uint) ([]models.QuizSubmission, error)
}

const quizCacheTTL = 5 * time.Minute

type gormQuizStore struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewQuizStore(db *gorm.DB, redisClient *redis.Client) QuizStore {
	return &gormQuizStore{db: db, redis: redisClient}
}

func quizCacheKey(quizID uint) string {
	return fmt.Sprintf("quiz:%d", quizID)
}

func (s *gormQuizStore) FetchQuizWithQuestions(ctx context.Context, quizID uint) (*models.Quiz, error) {
	// Cache hit avoids the preload on the hot grading path.
	if s.redis != nil {
		if data, err := s.redis.Get(ctx, quizCacheKey(quizID)).Bytes(); err == nil {
			var quiz models.Quiz
			if err := json.Unmarshal(data, &quiz); err == nil {
				return &quiz, nil
			}
		}
	}

	var quiz models.Quiz
	err := s.db.WithContext(ctx).
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

	if s.redis != nil {
		if data, err := json.Marshal(&quiz); err == nil {
			if err := s.redis.Set(ctx, quizCacheKey(quizID), data, quizCacheTTL).Err(); err != nil {
				log.Printf("Failed to cache quiz %d: %v", quizID, err)
			}
		}
	}

	return &quiz, nil
}

func (s *gormQuizStore) CreateSubmission(ctx context.Context, sub *models.QuizSubmission) error {
	return s.db.WithContext(ctx).Create(sub).Error
}

func (s *gormQuizStore) ReplaceSubmissions(ctx context.Context, sub *models.QuizSubmission) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ? AND user_id = ?", sub.QuizID, sub.UserID).
			Delete(&models.QuizSubmission{}).Error; err != nil {
			return err
		}
		return tx.Create(sub).Error
	})
}

func (s *gormQuizStore) HasSubmission(ctx context.Context, quizID, userID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.QuizSubmission{}).
		Where("quiz_id = ? AND user_id = ?", quizID, userID).
		Count(&count).Error
	return count > 0, err
}

func (s *gormQuizStore) ListByQuiz(ctx context.Context, quizID uint) ([]models.QuizSubmission, error) {
	var subs []models.QuizSubmission
	err := s.db.WithContext(ctx).
		Where("quiz_id = ?", quizID).
		Preload("User").
		Order("submitted_at DESC").
		Find(&subs).Error
	return subs, err
}

func (s *gormQuizStore) ListByQuizAndUser(ctx context.Context, quizID, userID uint) ([]models.QuizSubmission, error) {
	var subs []models.QuizSubmission
	err := s.db.WithContext(ctx).
		Where("quiz_id = ? AND user_id = ?", quizID, userID).
		Order("submitted_at DESC").
		Find(&subs).Error
	return subs, err
}

// InvalidateQuizCache drops the cached copy after a quiz or its
// questions change.
func InvalidateQuizCache(ctx context.Context, redisClient *redis.Client, quizID uint) {
	if redisClient == nil {
		return
	}
	if err := redisClient.Del(ctx, quizCacheKey(quizID)).Err(); err != nil {
		log.Printf("Failed to invalidate quiz cache %d: %v", quizID, err)
	}
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"learnhub/config"
	"learnhub/models"

	"gorm.io/datatypes"
)

type SubmissionService struct {
	store  QuizStore
	policy string
}

func NewSubmissionService(store QuizStore, attemptPolicy string) *SubmissionService {
	return &SubmissionService{store: store, policy: attemptPolicy}
}

// GradeAndRecordSubmission scores the answer map against the quiz and
// persists exactly one submission record. Grading completes fully in
// memory before the single write, so a persistence failure never leaves
// a partially graded submission behind.
func (s *SubmissionService) GradeAndRecordSubmission(ctx context.Context, quizID uint, answers map[string]interface{}, userID uint) (*models.QuizSubmission, error) {
	if answers == nil {
		return nil, ErrInvalidInput
	}

	quiz, err := s.store.FetchQuizWithQuestions(ctx, quizID)
	if err != nil {
		return nil, err
	}

	if s.policy == config.AttemptRejectDuplicate {
		exists, err := s.store.HasSubmission(ctx, quizID, userID)
		if err != nil {
			return nil, fmt.Errorf("checking previous submissions: %w", err)
		}
		if exists {
			return nil, ErrDuplicateSubmission
		}
	}

	score := GradeQuiz(quiz.Questions, answers)

	raw, err := json.Marshal(answers)
	if err != nil {
		return nil, ErrInvalidInput
	}

	sub := &models.QuizSubmission{
		QuizID:        quizID,
		UserID:        userID,
		Answers:       datatypes.JSON(raw),
		MarksObtained: score,
		SubmittedAt:   time.Now(),
	}

	if s.policy == config.AttemptOverwrite {
		err = s.store.ReplaceSubmissions(ctx, sub)
	} else {
		err = s.store.CreateSubmission(ctx, sub)
	}
	if err != nil {
		return nil, fmt.Errorf("saving submission: %w", err)
	}

	return sub, nil
}

func (s *SubmissionService) ListForQuiz(ctx context.Context, quizID uint) ([]models.QuizSubmission, error) {
	return s.store.ListByQuiz(ctx, quizID)
}

func (s *SubmissionService) ListOwn(ctx context.Context, quizID, userID uint) ([]models.QuizSubmission, error) {
	return s.store.ListByQuizAndUser(ctx, quizID, userID)
}

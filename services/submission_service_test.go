package services

import (
	"context"
	"errors"
	"testing"

	"learnhub/config"
	"learnhub/models"

	"gorm.io/datatypes"
)

type fakeQuizStore struct {
	quizzes map[uint]*models.Quiz
	subs    []models.QuizSubmission

	createCalls  int
	replaceCalls int
	createErr    error
}

func newFakeQuizStore() *fakeQuizStore {
	return &fakeQuizStore{quizzes: make(map[uint]*models.Quiz)}
}

func (f *fakeQuizStore) FetchQuizWithQuestions(_ context.Context, quizID uint) (*models.Quiz, error) {
	quiz, ok := f.quizzes[quizID]
	if !ok {
		return nil, ErrNotFound
	}
	return quiz, nil
}

func (f *fakeQuizStore) CreateSubmission(_ context.Context, sub *models.QuizSubmission) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	f.subs = append(f.subs, *sub)
	return nil
}

func (f *fakeQuizStore) ReplaceSubmissions(_ context.Context, sub *models.QuizSubmission) error {
	f.replaceCalls++
	kept := f.subs[:0]
	for _, existing := range f.subs {
		if existing.QuizID != sub.QuizID || existing.UserID != sub.UserID {
			kept = append(kept, existing)
		}
	}
	f.subs = append(kept, *sub)
	return nil
}

func (f *fakeQuizStore) HasSubmission(_ context.Context, quizID, userID uint) (bool, error) {
	for _, existing := range f.subs {
		if existing.QuizID == quizID && existing.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeQuizStore) ListByQuiz(_ context.Context, quizID uint) ([]models.QuizSubmission, error) {
	var out []models.QuizSubmission
	for _, existing := range f.subs {
		if existing.QuizID == quizID {
			out = append(out, existing)
		}
	}
	return out, nil
}

func (f *fakeQuizStore) ListByQuizAndUser(_ context.Context, quizID, userID uint) ([]models.QuizSubmission, error) {
	var out []models.QuizSubmission
	for _, existing := range f.subs {
		if existing.QuizID == quizID && existing.UserID == userID {
			out = append(out, existing)
		}
	}
	return out, nil
}

func seedQuiz(store *fakeQuizStore) {
	store.quizzes[1] = &models.Quiz{
		ID:         1,
		Title:      "Capitals",
		TotalMarks: 2,
		Questions: []models.Question{
			{ID: 10, Text: "Capital of France?", CorrectAnswer: datatypes.JSON(`"Paris"`), Marks: 2},
		},
	}
}

func TestGradeAndRecordSubmission(t *testing.T) {
	store := newFakeQuizStore()
	seedQuiz(store)
	svc := NewSubmissionService(store, config.AttemptKeepAll)

	sub, err := svc.GradeAndRecordSubmission(context.Background(), 1, map[string]interface{}{"10": "paris"}, 7)
	if err != nil {
		t.Fatalf("GradeAndRecordSubmission: %v", err)
	}
	if sub.MarksObtained != 2 {
		t.Fatalf("MarksObtained = %d, want 2", sub.MarksObtained)
	}
	if sub.QuizID != 1 || sub.UserID != 7 {
		t.Fatalf("submission references = quiz %d user %d", sub.QuizID, sub.UserID)
	}
	if sub.SubmittedAt.IsZero() {
		t.Fatal("SubmittedAt not set")
	}
	if store.createCalls != 1 {
		t.Fatalf("createCalls = %d, want 1", store.createCalls)
	}
}

func TestGradeAndRecordSubmissionUnknownQuiz(t *testing.T) {
	store := newFakeQuizStore()
	svc := NewSubmissionService(store, config.AttemptKeepAll)

	_, err := svc.GradeAndRecordSubmission(context.Background(), 99, map[string]interface{}{}, 7)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if store.createCalls != 0 {
		t.Fatal("no submission should be created for an unknown quiz")
	}
}

func TestGradeAndRecordSubmissionNilAnswers(t *testing.T) {
	store := newFakeQuizStore()
	seedQuiz(store)
	svc := NewSubmissionService(store, config.AttemptKeepAll)

	_, err := svc.GradeAndRecordSubmission(context.Background(), 1, nil, 7)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestGradeAndRecordSubmissionPersistenceFailure(t *testing.T) {
	store := newFakeQuizStore()
	seedQuiz(store)
	store.createErr = errors.New("disk full")
	svc := NewSubmissionService(store, config.AttemptKeepAll)

	_, err := svc.GradeAndRecordSubmission(context.Background(), 1, map[string]interface{}{"10": "paris"}, 7)
	if err == nil {
		t.Fatal("expected persistence error")
	}
	if len(store.subs) != 0 {
		t.Fatal("no partial submission should remain after a failed write")
	}
}

func TestAttemptPolicyKeepAll(t *testing.T) {
	store := newFakeQuizStore()
	seedQuiz(store)
	svc := NewSubmissionService(store, config.AttemptKeepAll)

	for i := 0; i < 3; i++ {
		if _, err := svc.GradeAndRecordSubmission(context.Background(), 1, map[string]interface{}{"10": "paris"}, 7); err != nil {
			t.Fatalf("attempt %d: %v", i, err)
		}
	}
	if len(store.subs) != 3 {
		t.Fatalf("stored submissions = %d, want 3", len(store.subs))
	}
}

func TestAttemptPolicyRejectDuplicate(t *testing.T) {
	store := newFakeQuizStore()
	seedQuiz(store)
	svc := NewSubmissionService(store, config.AttemptRejectDuplicate)

	if _, err := svc.GradeAndRecordSubmission(context.Background(), 1, map[string]interface{}{"10": "paris"}, 7); err != nil {
		t.Fatalf("first attempt: %v", err)
	}
	_, err := svc.GradeAndRecordSubmission(context.Background(), 1, map[string]interface{}{"10": "paris"}, 7)
	if !errors.Is(err, ErrDuplicateSubmission) {
		t.Fatalf("second attempt err = %v, want ErrDuplicateSubmission", err)
	}

	// A different user is unaffected.
	if _, err := svc.GradeAndRecordSubmission(context.Background(), 1, map[string]interface{}{"10": "paris"}, 8); err != nil {
		t.Fatalf("other user: %v", err)
	}
}

func TestAttemptPolicyOverwrite(t *testing.T) {
	store := newFakeQuizStore()
	seedQuiz(store)
	svc := NewSubmissionService(store, config.AttemptOverwrite)

	if _, err := svc.GradeAndRecordSubmission(context.Background(), 1, map[string]interface{}{"10": "london"}, 7); err != nil {
		t.Fatalf("first attempt: %v", err)
	}
	if _, err := svc.GradeAndRecordSubmission(context.Background(), 1, map[string]interface{}{"10": "paris"}, 7); err != nil {
		t.Fatalf("second attempt: %v", err)
	}

	subs, _ := store.ListByQuizAndUser(context.Background(), 1, 7)
	if len(subs) != 1 {
		t.Fatalf("stored submissions = %d, want 1", len(subs))
	}
	if subs[0].MarksObtained != 2 {
		t.Fatalf("kept submission score = %d, want 2", subs[0].MarksObtained)
	}
	if store.replaceCalls != 2 {
		t.Fatalf("replaceCalls = %d, want 2", store.replaceCalls)
	}
}

package services

import (
	"testing"

	"learnhub/models"

	"gorm.io/datatypes"
)

func scalarQuestion(id uint, correct string, marks int) models.Question {
	return models.Question{
		ID:            id,
		Text:          "q",
		CorrectAnswer: datatypes.JSON(`"` + correct + `"`),
		Marks:         marks,
	}
}

func listQuestion(id uint, correct string, marks int) models.Question {
	return models.Question{
		ID:            id,
		Text:          "q",
		CorrectAnswer: datatypes.JSON(correct),
		Marks:         marks,
	}
}

func TestGradeQuizScalarAnswers(t *testing.T) {
	questions := []models.Question{
		scalarQuestion(1, "Paris", 2),
		scalarQuestion(2, "42", 1),
	}

	tests := []struct {
		name    string
		answers map[string]interface{}
		want    int
	}{
		{"exact match", map[string]interface{}{"1": "Paris", "2": "42"}, 3},
		{"case and whitespace insensitive", map[string]interface{}{"1": " paris ", "2": "42"}, 3},
		{"upper case", map[string]interface{}{"1": "PARIS", "2": "42"}, 3},
		{"wrong answer", map[string]interface{}{"1": "London", "2": "42"}, 1},
		{"numeric value stringified", map[string]interface{}{"1": "Paris", "2": float64(42)}, 3},
		{"empty map", map[string]interface{}{}, 0},
		{"near match gets nothing", map[string]interface{}{"1": "Pariss", "2": "43"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GradeQuiz(questions, tt.answers); got != tt.want {
				t.Fatalf("GradeQuiz() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGradeQuizListAnswers(t *testing.T) {
	questions := []models.Question{
		listQuestion(1, `["A","b"]`, 3),
	}

	tests := []struct {
		name    string
		answers map[string]interface{}
		want    int
	}{
		{"order and case insensitive", map[string]interface{}{"1": []interface{}{"B", "a"}}, 3},
		{"whitespace trimmed", map[string]interface{}{"1": []interface{}{" b ", "A "}}, 3},
		{"subset scores zero", map[string]interface{}{"1": []interface{}{"A"}}, 0},
		{"superset scores zero", map[string]interface{}{"1": []interface{}{"A", "b", "c"}}, 0},
		{"encoded list string", map[string]interface{}{"1": `["b","A"]`}, 3},
		{"plain string becomes single element", map[string]interface{}{"1": "A"}, 0},
		{"unanswered", map[string]interface{}{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GradeQuiz(questions, tt.answers); got != tt.want {
				t.Fatalf("GradeQuiz() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGradeQuizMixedScenario(t *testing.T) {
	// Q1 scalar "Paris" worth 2, Q2 list ["red","blue"] worth 3.
	questions := []models.Question{
		scalarQuestion(1, "Paris", 2),
		listQuestion(2, `["red","blue"]`, 3),
	}

	full := GradeQuiz(questions, map[string]interface{}{
		"1": " paris ",
		"2": []interface{}{"Blue", "Red"},
	})
	if full != 5 {
		t.Fatalf("full-marks submission scored %d, want 5", full)
	}

	zero := GradeQuiz(questions, map[string]interface{}{"1": "London"})
	if zero != 0 {
		t.Fatalf("wrong-and-omitted submission scored %d, want 0", zero)
	}
}

func TestGradeQuizIgnoresUnknownKeys(t *testing.T) {
	questions := []models.Question{scalarQuestion(1, "yes", 1)}

	score := GradeQuiz(questions, map[string]interface{}{
		"1":     "yes",
		"999":   "whatever",
		"bogus": []interface{}{"x"},
	})
	if score != 1 {
		t.Fatalf("score = %d, want 1", score)
	}
}

func TestGradeQuizNilAnswerTreatedAsUnanswered(t *testing.T) {
	questions := []models.Question{scalarQuestion(1, "yes", 1)}

	if got := GradeQuiz(questions, map[string]interface{}{"1": nil}); got != 0 {
		t.Fatalf("score = %d, want 0", got)
	}
}

func TestGradeQuizMalformedStoredAnswer(t *testing.T) {
	// Not valid JSON at all: grading degrades to comparing the raw bytes
	// as an opaque string instead of failing.
	questions := []models.Question{
		{ID: 1, Text: "q", CorrectAnswer: datatypes.JSON(`{broken`), Marks: 2},
	}

	if got := GradeQuiz(questions, map[string]interface{}{"1": "{broken"}); got != 2 {
		t.Fatalf("opaque comparison score = %d, want 2", got)
	}
	if got := GradeQuiz(questions, map[string]interface{}{"1": "something else"}); got != 0 {
		t.Fatalf("mismatch score = %d, want 0", got)
	}
}

func TestGradeQuizScoreBounds(t *testing.T) {
	questions := []models.Question{
		scalarQuestion(1, "a", 2),
		listQuestion(2, `["x","y"]`, 3),
	}
	total := 5

	inputs := []map[string]interface{}{
		nil,
		{},
		{"1": "a", "2": []interface{}{"y", "x"}},
		{"1": []interface{}{"a"}, "2": "x"},
		{"unknown": "a", "1": 12.5, "2": true},
	}

	for _, answers := range inputs {
		score := GradeQuiz(questions, answers)
		if score < 0 || score > total {
			t.Fatalf("score %d out of range [0,%d] for %v", score, total, answers)
		}
	}
}

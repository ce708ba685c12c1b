package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Question struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	QuizID        uint           `json:"quiz_id" gorm:"not null"`
	Text          string         `json:"text" gorm:"not null"`
	Options       datatypes.JSON `json:"options,omitempty" gorm:"type:jsonb"`
	CorrectAnswer datatypes.JSON `json:"correct_answer,omitempty" gorm:"type:jsonb"`
	Marks         int            `json:"marks" gorm:"not null;default:1"`
	Order         int            `json:"order" gorm:"not null"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Quiz Quiz `json:"quiz,omitempty"`
}

// AnswerValue is the decoded form of a stored correct answer. The column
// holds one of two legacy encodings: an already-structured JSON array, or a
// JSON string that may itself contain an encoded array. Decoding happens
// once at the model boundary; grading only ever sees this variant.
type AnswerValue struct {
	IsList bool
	List   []string
	Scalar string
}

// DecodeAnswerValue never fails: anything that cannot be parsed as
// structured data is kept as an opaque scalar string.
func DecodeAnswerValue(raw datatypes.JSON) AnswerValue {
	if len(raw) == 0 {
		return AnswerValue{}
	}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		// Legacy rows occasionally hold bare unquoted text.
		return AnswerValue{Scalar: string(raw)}
	}

	switch t := v.(type) {
	case []interface{}:
		return AnswerValue{IsList: true, List: StringifyList(t)}
	case string:
		// A stored string may itself be an encoded array.
		trimmed := strings.TrimSpace(t)
		if strings.HasPrefix(trimmed, "[") {
			var nested []interface{}
			if err := json.Unmarshal([]byte(trimmed), &nested); err == nil {
				return AnswerValue{IsList: true, List: StringifyList(nested)}
			}
		}
		return AnswerValue{Scalar: t}
	default:
		return AnswerValue{Scalar: Stringify(v)}
	}
}

func Stringify(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func StringifyList(items []interface{}) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, Stringify(item))
	}
	return out
}

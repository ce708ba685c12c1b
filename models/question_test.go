package models

import (
	"reflect"
	"testing"

	"gorm.io/datatypes"
)

func TestDecodeAnswerValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want AnswerValue
	}{
		{"json string", `"Paris"`, AnswerValue{Scalar: "Paris"}},
		{"json array", `["red","blue"]`, AnswerValue{IsList: true, List: []string{"red", "blue"}}},
		{"double-encoded array", `"[\"red\",\"blue\"]"`, AnswerValue{IsList: true, List: []string{"red", "blue"}}},
		{"number", `42`, AnswerValue{Scalar: "42"}},
		{"bool", `true`, AnswerValue{Scalar: "true"}},
		{"mixed array", `["a", 2, true]`, AnswerValue{IsList: true, List: []string{"a", "2", "true"}}},
		{"bare unquoted text", `plain old text`, AnswerValue{Scalar: "plain old text"}},
		{"broken json", `{broken`, AnswerValue{Scalar: "{broken"}},
		{"string with leading bracket but invalid list", `"[not a list"`, AnswerValue{Scalar: "[not a list"}},
		{"empty", ``, AnswerValue{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeAnswerValue(datatypes.JSON(tt.raw))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("DecodeAnswerValue(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestQuizSumMarks(t *testing.T) {
	quiz := Quiz{
		Questions: []Question{
			{Marks: 2},
			{Marks: 3},
			{Marks: 1},
		},
	}
	if got := quiz.SumMarks(); got != 6 {
		t.Fatalf("SumMarks() = %d, want 6", got)
	}

	var empty Quiz
	if got := empty.SumMarks(); got != 0 {
		t.Fatalf("SumMarks() on empty quiz = %d, want 0", got)
	}
}

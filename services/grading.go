package services

import (
	"encoding/json"
	"strconv"
	"strings"

	"learnhub/models"
)

// GradeQuiz computes the score for a submitted answer map against a
// quiz's questions. It is deterministic and never fails: malformed
// stored answer keys degrade to opaque string comparison, unknown
// answer keys are ignored, and unanswered questions contribute zero.
// The result is always within [0, sum of question marks].
func GradeQuiz(questions []models.Question, answers map[string]interface{}) int {
	score := 0
	for _, question := range questions {
		submitted, ok := answers[strconv.FormatUint(uint64(question.ID), 10)]
		if !ok || submitted == nil {
			// Unanswered: zero contribution, same as a wrong answer.
			continue
		}
		if answerIsCorrect(question, submitted) {
			score += question.Marks
		}
	}
	return score
}

func answerIsCorrect(question models.Question, submitted interface{}) bool {
	correct := models.DecodeAnswerValue(question.CorrectAnswer)
	if correct.IsList {
		return listsMatch(correct.List, coerceList(submitted))
	}
	return normalize(models.Stringify(submitted)) == normalize(correct.Scalar)
}

// listsMatch compares two answer lists as case- and whitespace-insensitive
// sets. Full marks require exact set equality; subsets get nothing.
func listsMatch(correct, submitted []string) bool {
	correctSet := normalizeSet(correct)
	submittedSet := normalizeSet(submitted)
	if len(correctSet) != len(submittedSet) {
		return false
	}
	for item := range correctSet {
		if _, ok := submittedSet[item]; !ok {
			return false
		}
	}
	return true
}

// coerceList interprets a submitted value against a list-valued answer
// key. Strings are given one chance to parse as an encoded list; a
// string that does not parse counts as a single-element list.
func coerceList(submitted interface{}) []string {
	switch t := submitted.(type) {
	case []interface{}:
		return models.StringifyList(t)
	case []string:
		return t
	case string:
		var parsed []interface{}
		if err := json.Unmarshal([]byte(t), &parsed); err == nil {
			return models.StringifyList(parsed)
		}
		return []string{t}
	default:
		return []string{models.Stringify(t)}
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func normalizeSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[normalize(item)] = struct{}{}
	}
	return set
}

package problemgen

import (
	"fmt"
	"strconv"
	"strings"
)

// CheckAnswer compares the learner's input against the question's answer.
//
// Normalization rules:
// - Whitespace is trimmed
// - Thousands separators are ignored (e.g., "1,200" matches 1200)
// - Leading zeros and a leading plus sign are ignored (e.g., "007" matches 7)
func CheckAnswer(learnerAnswer string, question *Question) bool {
	n, err := ParseAnswer(learnerAnswer)
	if err != nil {
		return false
	}
	return n == question.Answer
}

// ParseAnswer normalizes a written answer to an integer.
func ParseAnswer(answer string) (int, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return 0, fmt.Errorf("empty answer")
	}
	answer = strings.ReplaceAll(answer, ",", "")

	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("invalid integer: %w", err)
	}
	return n, nil
}

package narration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pms-safya/abacus/internal/problemgen"
)

func addition(id string, rows ...int) problemgen.Question {
	sum := 0
	for _, r := range rows {
		sum += r
	}
	return problemgen.Question{
		ID:       id,
		Rows:     rows,
		Answer:   sum,
		Category: problemgen.CategoryAddition,
		Rule:     problemgen.RuleStandard,
	}
}

func TestQuestionText(t *testing.T) {
	tests := []struct {
		name string
		q    problemgen.Question
		want string
	}{
		{"addition", addition("a", 5, -3, 9), "plus 5, minus 3, plus 9"},
		{"single row", addition("a", 42), "plus 42"},
		{"zero row", addition("a", 0), "minus 0"},
		{"multiplication", problemgen.Question{
			ID:       "m",
			Rows:     []int{412, 3},
			Answer:   1236,
			Category: problemgen.CategoryMultiplication,
		}, "412 times 3"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := QuestionText(tc.q); got != tc.want {
				t.Errorf("QuestionText() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestAnswerTextAndKeys(t *testing.T) {
	q := addition("abc", 5, -3, 9)
	assert.Equal(t, "Answer is 11", AnswerText(q))
	assert.Equal(t, "abc_question", QuestionKey(q))
	assert.Equal(t, "abc_answer", AnswerKey(q))
}

func TestScript_AlternatesQuestionAndAnswer(t *testing.T) {
	qs := []problemgen.Question{addition("a", 1, 2), addition("b", 9, -4)}
	cues := Script(qs)

	require.Len(t, cues, 4)
	assert.Equal(t, Cue{Key: "a_question", Text: "plus 1, plus 2"}, cues[0])
	assert.Equal(t, Cue{Key: "a_answer", Text: "Answer is 3"}, cues[1])
	assert.Equal(t, Cue{Key: "b_question", Text: "plus 9, minus 4"}, cues[2])
	assert.Equal(t, Cue{Key: "b_answer", Text: "Answer is 5"}, cues[3])

	assert.Empty(t, Script(nil))
}

func TestPrefetchWindow(t *testing.T) {
	tests := []struct {
		current, total int
		start, end     int
	}{
		{0, 20, 0, 5},
		{17, 20, 17, 20},
		{19, 20, 19, 20},
		{20, 20, 20, 20},
		{0, 3, 0, 3},
		{0, 0, 0, 0},
		{-2, 10, 0, 5},
	}

	for _, tc := range tests {
		start, end := PrefetchWindow(tc.current, tc.total)
		if start != tc.start || end != tc.end {
			t.Errorf("PrefetchWindow(%d, %d) = [%d, %d), want [%d, %d)", tc.current, tc.total, start, end, tc.start, tc.end)
		}
	}
}

func TestDisplayRow(t *testing.T) {
	assert.Equal(t, "+7", DisplayRow(7))
	assert.Equal(t, "-3", DisplayRow(-3))
	assert.Equal(t, "0", DisplayRow(0))
	assert.Equal(t, "+45", DisplayRow(45))
}

func TestFontClass(t *testing.T) {
	rows := func(n int) problemgen.Question {
		return addition("a", make([]int, n)...)
	}

	tests := []struct {
		q    problemgen.Question
		want FontSize
	}{
		{rows(3), Font5XL},
		{rows(5), Font5XL},
		{rows(6), Font4XL},
		{rows(7), Font4XL},
		{rows(8), Font3XL},
		{rows(10), Font3XL},
		{rows(11), Font2XL},
		{rows(15), Font2XL},
		{rows(16), FontXL},
		{rows(20), FontXL},
		{problemgen.Question{Rows: []int{99, 99}, Category: problemgen.CategoryMultiplication}, Font5XL},
	}

	for _, tc := range tests {
		if got := FontClass(tc.q); got != tc.want {
			t.Errorf("FontClass(%d rows) = %q, want %q", len(tc.q.Rows), got, tc.want)
		}
	}
}

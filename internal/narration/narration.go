// Package narration turns generated questions into the phrases a drill
// caller reads aloud, and keys them for audio caches.
package narration

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pms-safya/abacus/internal/problemgen"
)

// PrefetchAhead is how many questions, counting the current one, a runner
// should have narrated before they are shown.
const PrefetchAhead = 5

// Cue is one phrase of a narration script and its cache key.
type Cue struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

// QuestionText returns the spoken form of a question. Addition rows read
// "plus 7, minus 3"; multiplication reads "12 times 4".
func QuestionText(q problemgen.Question) string {
	if q.Category == problemgen.CategoryMultiplication && len(q.Rows) == 2 {
		return fmt.Sprintf("%d times %d", q.Rows[0], q.Rows[1])
	}

	parts := make([]string, len(q.Rows))
	for i, r := range q.Rows {
		if r > 0 {
			parts[i] = "plus " + strconv.Itoa(r)
		} else {
			parts[i] = "minus " + strconv.Itoa(-r)
		}
	}
	return strings.Join(parts, ", ")
}

// AnswerText returns the spoken answer.
func AnswerText(q problemgen.Question) string {
	return "Answer is " + strconv.Itoa(q.Answer)
}

func QuestionKey(q problemgen.Question) string { return q.ID + "_question" }

func AnswerKey(q problemgen.Question) string { return q.ID + "_answer" }

// Script returns the question and answer cues for every question, in order.
func Script(qs []problemgen.Question) []Cue {
	cues := make([]Cue, 0, 2*len(qs))
	for _, q := range qs {
		cues = append(cues,
			Cue{Key: QuestionKey(q), Text: QuestionText(q)},
			Cue{Key: AnswerKey(q), Text: AnswerText(q)},
		)
	}
	return cues
}

// PrefetchWindow returns the half-open index range [start, end) of
// questions to narrate ahead while question current is on screen.
func PrefetchWindow(current, total int) (start, end int) {
	start = min(max(current, 0), max(total, 0))
	end = min(max(total, 0), start+PrefetchAhead)
	return start, end
}

// DisplayRow formats a row for on-screen display: "+7", "-3".
func DisplayRow(r int) string {
	if r > 0 {
		return "+" + strconv.Itoa(r)
	}
	return strconv.Itoa(r)
}

// FontSize is a display size bucket for a question card.
type FontSize string

const (
	FontXL  FontSize = "xl"
	Font2XL FontSize = "2xl"
	Font3XL FontSize = "3xl"
	Font4XL FontSize = "4xl"
	Font5XL FontSize = "5xl"
)

// FontClass picks the largest size that keeps all rows of q on screen.
func FontClass(q problemgen.Question) FontSize {
	if q.Category == problemgen.CategoryMultiplication {
		return Font5XL
	}
	switch n := len(q.Rows); {
	case n > 15:
		return FontXL
	case n > 10:
		return Font2XL
	case n > 7:
		return Font3XL
	case n > 5:
		return Font4XL
	default:
		return Font5XL
	}
}

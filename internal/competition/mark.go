package competition

import "github.com/pms-safya/abacus/internal/problemgen"

// Result is the outcome of marking an answer sheet.
type Result struct {
	Correct int      `json:"correct"`
	Total   int      `json:"total"`
	Wrong   []string `json:"wrong,omitempty"`   // IDs answered incorrectly
	Skipped []string `json:"skipped,omitempty"` // IDs with no answer
}

// Mark checks written answers, keyed by question ID, against qs.
func Mark(qs []problemgen.Question, answers map[string]string) Result {
	res := Result{Total: len(qs)}
	for i := range qs {
		q := &qs[i]
		given, ok := answers[q.ID]
		switch {
		case !ok:
			res.Skipped = append(res.Skipped, q.ID)
		case problemgen.CheckAnswer(given, q):
			res.Correct++
		default:
			res.Wrong = append(res.Wrong, q.ID)
		}
	}
	return res
}

// Percent returns the score out of 100. An empty sheet scores 0.
func (r Result) Percent() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) * 100 / float64(r.Total)
}

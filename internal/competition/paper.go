package competition

import (
	"time"

	"github.com/pms-safya/abacus/internal/narration"
	"github.com/pms-safya/abacus/internal/problemgen"
)

// Paper is a generated competition paper.
type Paper struct {
	Title  string       `json:"title"`
	Branch string       `json:"branch,omitempty"`
	Rounds []PaperRound `json:"rounds"`
}

// PaperRound holds the questions of one round in the order they are read.
type PaperRound struct {
	Name      string                `json:"name"`
	Settings  Settings              `json:"settings"`
	Questions []problemgen.Question `json:"questions"`
	Narration []narration.Cue       `json:"narration,omitempty"`
}

// Build generates every round of plan with gen. The plan should already be
// normalized and valid.
func Build(gen *problemgen.Generator, plan *Plan) Paper {
	paper := Paper{
		Title:  plan.Title,
		Branch: plan.Branch,
		Rounds: make([]PaperRound, 0, len(plan.Rounds)),
	}
	for _, r := range plan.Rounds {
		qs := gen.QuizSet(r.GenerationConfig())
		round := PaperRound{
			Name:      r.Name,
			Settings:  r.Settings,
			Questions: qs,
		}
		if r.EnableAudio {
			round.Narration = narration.Script(qs)
		}
		paper.Rounds = append(paper.Rounds, round)
	}
	return paper
}

// NewGenerator returns a generator for plan: seeded when the plan sets a
// seed, randomly seeded otherwise.
func NewGenerator(plan *Plan, opts ...problemgen.Option) *problemgen.Generator {
	if plan.Seed == nil {
		return problemgen.New(nil, opts...)
	}
	seed := *plan.Seed
	opts = append([]problemgen.Option{problemgen.WithIDs(problemgen.SeededIDs(seed))}, opts...)
	return problemgen.New(problemgen.NewSource(seed), opts...)
}

// Questions returns every question of the paper in order.
func (p Paper) Questions() []problemgen.Question {
	var qs []problemgen.Question
	for _, r := range p.Rounds {
		qs = append(qs, r.Questions...)
	}
	return qs
}

// RoundSummary is the size and timed length of one round.
type RoundSummary struct {
	Name      string        `json:"name"`
	Questions int           `json:"questions"`
	Duration  time.Duration `json:"duration"`
}

// Summary totals a paper.
type Summary struct {
	Rounds    []RoundSummary `json:"rounds"`
	Questions int            `json:"questions"`
	Duration  time.Duration  `json:"duration"`
}

// Summary returns per-round and overall question counts and timed
// durations. Time spent revealing answers is not counted.
func (p Paper) Summary() Summary {
	var sum Summary
	for _, r := range p.Rounds {
		rs := RoundSummary{
			Name:      r.Name,
			Questions: len(r.Questions),
			Duration:  time.Duration(len(r.Questions)) * r.Settings.QuestionDuration(),
		}
		sum.Rounds = append(sum.Rounds, rs)
		sum.Questions += rs.Questions
		sum.Duration += rs.Duration
	}
	return sum
}

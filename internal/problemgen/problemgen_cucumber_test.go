//go:build cucumber

package problemgen

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/cucumber/godog"
)

// TestGenerationScenarios runs the quiz set generation feature.
func TestGenerationScenarios(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "generation",
		ScenarioInitializer: InitializeGenerationScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{filepath.Join("testdata", "generation.feature")},
			Strict:   true,
			TestingT: t,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeGenerationScenario wires steps for generation scenarios.
func InitializeGenerationScenario(ctx *godog.ScenarioContext) {
	state := &generationState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.Step(`^a generator seeded with (\d+)$`, state.givenSeed)
	ctx.Step(`^I generate (\d+) addition questions with rule "([^"]+)", (\d+) rows of "([^"]+)" digits$`, state.whenAddition)
	ctx.Step(`^I generate (\d+) multiplication questions at level "([^"]+)"$`, state.whenMultiplication)
	ctx.Step(`^the quiz set has (\d+) questions$`, state.thenSetSize)
	ctx.Step(`^every question has (\d+) rows$`, state.thenRowCount)
	ctx.Step(`^every row is a non-zero value between (-?\d+) and (-?\d+)$`, state.thenRowsBetween)
	ctx.Step(`^every running total stays between (\d+) and (\d+)$`, state.thenTotalsBetween)
	ctx.Step(`^every first row is non-negative$`, state.thenFirstRowNonNegative)
	ctx.Step(`^every answer equals the sum of its rows$`, state.thenAnswerIsSum)
	ctx.Step(`^every answer equals the product of its rows$`, state.thenAnswerIsProduct)
	ctx.Step(`^every answer is between (\d+) and (\d+) unless it is the fallback$`, state.thenProductBetween)
	ctx.Step(`^every row that was not forced has a ones digit of at least (\d+)$`, state.thenOnesDigitAtLeast)
	ctx.Step(`^every question passes validation$`, state.thenAllValid)
}

type generationState struct {
	gen       *Generator
	stats     *Stats
	cfg       GenerationConfig
	questions []Question
}

// reset clears scenario state.
func (s *generationState) reset() {
	s.stats = &Stats{}
	s.gen = New(nil, WithObserver(s.stats))
	s.cfg = GenerationConfig{}
	s.questions = nil
}

// givenSeed replaces the generator with a deterministic one.
func (s *generationState) givenSeed(seed int) error {
	s.gen = New(NewSource(uint64(seed)), WithIDs(SeededIDs(uint64(seed))), WithObserver(s.stats))
	return nil
}

func (s *generationState) whenAddition(count int, rule string, rows int, digits string) error {
	s.cfg = GenerationConfig{
		Category:  CategoryAddition,
		Rule:      Rule(rule),
		Count:     count,
		RowCount:  rows,
		DigitType: DigitType(digits),
	}
	if err := s.cfg.Validate(); err != nil {
		return err
	}
	s.questions = s.gen.QuizSet(s.cfg)
	return nil
}

func (s *generationState) whenMultiplication(count int, level string) error {
	s.cfg = GenerationConfig{
		Category:  CategoryMultiplication,
		MultLevel: MultLevel(level),
		Count:     count,
	}
	if err := s.cfg.Validate(); err != nil {
		return err
	}
	s.questions = s.gen.QuizSet(s.cfg)
	return nil
}

func (s *generationState) thenSetSize(n int) error {
	if len(s.questions) != n {
		return fmt.Errorf("expected %d questions, got %d", n, len(s.questions))
	}
	return nil
}

func (s *generationState) thenRowCount(n int) error {
	for i, q := range s.questions {
		if len(q.Rows) != n {
			return fmt.Errorf("question %d: expected %d rows, got %d", i, n, len(q.Rows))
		}
	}
	return nil
}

func (s *generationState) thenRowsBetween(lo, hi int) error {
	for i, q := range s.questions {
		for _, r := range q.Rows {
			if r == 0 || r < lo || r > hi {
				return fmt.Errorf("question %d: row %d outside [%d, %d]", i, r, lo, hi)
			}
		}
	}
	return nil
}

func (s *generationState) thenTotalsBetween(lo, hi int) error {
	for i, q := range s.questions {
		total := 0
		for _, r := range q.Rows {
			total += r
			if total < lo || total > hi {
				return fmt.Errorf("question %d %v: running total %d outside [%d, %d]", i, q.Rows, total, lo, hi)
			}
		}
	}
	return nil
}

func (s *generationState) thenFirstRowNonNegative() error {
	for i, q := range s.questions {
		if len(q.Rows) > 0 && q.Rows[0] < 0 {
			return fmt.Errorf("question %d: first row %d", i, q.Rows[0])
		}
	}
	return nil
}

func (s *generationState) thenAnswerIsSum() error {
	for i, q := range s.questions {
		sum := 0
		for _, r := range q.Rows {
			sum += r
		}
		if q.Answer != sum {
			return fmt.Errorf("question %d: answer %d, sum %d", i, q.Answer, sum)
		}
	}
	return nil
}

func (s *generationState) thenAnswerIsProduct() error {
	for i, q := range s.questions {
		if q.Answer != q.Rows[0]*q.Rows[1] {
			return fmt.Errorf("question %d: answer %d, product %d", i, q.Answer, q.Rows[0]*q.Rows[1])
		}
	}
	return nil
}

func (s *generationState) thenProductBetween(lo, hi int) error {
	for i, q := range s.questions {
		if q.ID == FallbackID {
			continue
		}
		if q.Answer < lo || q.Answer > hi {
			return fmt.Errorf("question %d: product %d outside [%d, %d]", i, q.Answer, lo, hi)
		}
	}
	return nil
}

func (s *generationState) thenOnesDigitAtLeast(d int) error {
	for _, e := range s.stats.Rows() {
		if e.Forced {
			continue
		}
		if abs(e.Value)%10 < d {
			return fmt.Errorf("row %d of %s: %d has ones digit below %d", e.Index, e.QuestionID, e.Value, d)
		}
	}
	return nil
}

func (s *generationState) thenAllValid() error {
	if failures := CheckSet(s.questions, s.cfg); len(failures) > 0 {
		for i, err := range failures {
			return fmt.Errorf("question %d %v: %w", i, s.questions[i].Rows, err)
		}
	}
	return nil
}

package competition

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/pms-safya/abacus/internal/problemgen"
)

// ErrInvalidSettings is wrapped by Settings validation failures that are
// not already generation config failures.
var ErrInvalidSettings = errors.New("invalid quiz settings")

// Presets offered by the setup form.
var (
	QuestionCounts = []int{5, 10, 20, 30, 50, 100}
	RowCounts      = []int{3, 5, 7, 10, 15, 20}
)

// Time per question bounds, in seconds, and the form's step.
const (
	MinTimePerQuestion  = 0.5
	MaxTimePerQuestion  = 15.0
	TimePerQuestionStep = 0.5
)

// Settings is everything a learner picks before a drill starts.
type Settings struct {
	Category        problemgen.Category  `json:"category" yaml:"category" mapstructure:"category"`
	Rule            problemgen.Rule      `json:"rule" yaml:"rule" mapstructure:"rule"`
	MultLevel       problemgen.MultLevel `json:"multLevel" yaml:"mult_level" mapstructure:"mult_level"`
	QuestionCount   int                  `json:"questionCount" yaml:"question_count" mapstructure:"question_count"`
	TimePerQuestion float64              `json:"timePerQuestion" yaml:"time_per_question" mapstructure:"time_per_question"` // seconds
	DigitType       problemgen.DigitType `json:"digitType" yaml:"digit_type" mapstructure:"digit_type"`
	RowCount        int                  `json:"rowCount" yaml:"row_count" mapstructure:"row_count"`
	EnableAudio     bool                 `json:"enableAudio" yaml:"-" mapstructure:"enable_audio"`
}

// DefaultSettings returns the setup form's initial state.
func DefaultSettings() Settings {
	return Settings{
		Category:        problemgen.CategoryAddition,
		Rule:            problemgen.RuleStandard,
		MultLevel:       problemgen.Level1x1,
		QuestionCount:   20,
		TimePerQuestion: 3,
		DigitType:       problemgen.DigitSingle,
		RowCount:        6,
		EnableAudio:     true,
	}
}

// GenerationConfig maps the settings onto a generator request.
func (s Settings) GenerationConfig() problemgen.GenerationConfig {
	return problemgen.GenerationConfig{
		Category:  s.Category,
		Rule:      s.Rule,
		MultLevel: s.MultLevel,
		Count:     s.QuestionCount,
		RowCount:  s.RowCount,
		DigitType: s.DigitType,
	}
}

// QuestionDuration is how long each question stays on screen.
func (s Settings) QuestionDuration() time.Duration {
	return time.Duration(s.TimePerQuestion * float64(time.Second))
}

// Validate checks the generation fields and the timer.
func (s Settings) Validate() error {
	if err := s.GenerationConfig().Validate(); err != nil {
		return err
	}
	if s.TimePerQuestion < MinTimePerQuestion || s.TimePerQuestion > MaxTimePerQuestion {
		return fmt.Errorf("%w: time per question must be between %.1fs and %.1fs, got %gs",
			ErrInvalidSettings, MinTimePerQuestion, MaxTimePerQuestion, s.TimePerQuestion)
	}
	if math.Mod(s.TimePerQuestion, TimePerQuestionStep) != 0 {
		return fmt.Errorf("%w: time per question must be a multiple of %.1fs, got %gs",
			ErrInvalidSettings, TimePerQuestionStep, s.TimePerQuestion)
	}
	return nil
}

// withDefaults fills zero-valued fields from base. EnableAudio is left
// untouched.
func (s Settings) withDefaults(base Settings) Settings {
	if s.Category == "" {
		s.Category = base.Category
	}
	if s.Rule == "" {
		s.Rule = base.Rule
	}
	if s.MultLevel == "" {
		s.MultLevel = base.MultLevel
	}
	if s.QuestionCount == 0 {
		s.QuestionCount = base.QuestionCount
	}
	if s.TimePerQuestion == 0 {
		s.TimePerQuestion = base.TimePerQuestion
	}
	if s.DigitType == "" {
		s.DigitType = base.DigitType
	}
	if s.RowCount == 0 {
		s.RowCount = base.RowCount
	}
	return s
}

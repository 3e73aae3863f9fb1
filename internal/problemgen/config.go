package problemgen

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every GenerationConfig validation failure.
var ErrInvalidConfig = errors.New("invalid generation config")

// Bounds enforced by Validate.
const (
	MaxCount    = 100
	MaxRowCount = 20
)

// DefaultConfig returns the setup-form defaults: 20 single-digit standard
// addition questions of 6 rows.
func DefaultConfig() GenerationConfig {
	return GenerationConfig{
		Category:  CategoryAddition,
		Rule:      RuleStandard,
		MultLevel: Level1x1,
		Count:     20,
		RowCount:  6,
		DigitType: DigitSingle,
	}
}

// Validate checks that cfg describes a set the generator can produce.
// Only the fields relevant to the category are checked.
func (c GenerationConfig) Validate() error {
	if !c.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidConfig, c.Category)
	}
	if c.Count < 0 || c.Count > MaxCount {
		return fmt.Errorf("%w: count must be between 0 and %d, got %d", ErrInvalidConfig, MaxCount, c.Count)
	}

	if c.Category == CategoryMultiplication {
		if !c.MultLevel.Valid() {
			return fmt.Errorf("%w: unknown multiplication level %q", ErrInvalidConfig, c.MultLevel)
		}
		return nil
	}

	if !c.Rule.Valid() {
		return fmt.Errorf("%w: unknown rule %q", ErrInvalidConfig, c.Rule)
	}
	if !c.DigitType.Valid() {
		return fmt.Errorf("%w: unknown digit type %q", ErrInvalidConfig, c.DigitType)
	}
	if c.RowCount < 1 || c.RowCount > MaxRowCount {
		return fmt.Errorf("%w: row count must be between 1 and %d, got %d", ErrInvalidConfig, MaxRowCount, c.RowCount)
	}
	return nil
}

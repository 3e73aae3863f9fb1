package problemgen

// Question is a single generated drill problem. It is fully determined at
// creation and never mutated afterwards.
type Question struct {
	// ID is an opaque identifier used by collaborators to key cached
	// narration audio. Very likely distinct within one batch.
	ID string `json:"id"`

	// Rows holds the operands in display order.
	// Addition: signed addends; the running total after each row stays
	// within [0, 100] and the first row is always positive.
	// Multiplication: exactly two positive factors [a, b].
	Rows []int `json:"rows"`

	// Answer is the final running total (addition) or a*b (multiplication).
	Answer int `json:"answer"`

	Category Category `json:"category"`

	// Rule is set only for addition questions.
	Rule Rule `json:"rule,omitempty"`

	// MultLevel is set only for multiplication questions.
	MultLevel MultLevel `json:"multLevel,omitempty"`
}

// Category selects the kind of drill.
type Category string

const (
	CategoryAddition       Category = "addition"
	CategoryMultiplication Category = "multiplication"
)

// Rule is the abacus technique an addition sequence is built to exercise.
type Rule string

const (
	RuleStandard     Rule = "standard"      // direct bead movement only
	RuleSmallFriends Rule = "small-friends" // complements to 5
	RuleBigFriends   Rule = "big-friends"   // complements to 10
	RuleMixedFriends Rule = "mixed-friends" // combined family technique
)

// MultLevel describes the digit shape of a multiplication problem.
type MultLevel string

const (
	Level1x1 MultLevel = "1x1"
	Level2x1 MultLevel = "2x1"
	Level3x1 MultLevel = "3x1"
	Level2x2 MultLevel = "2x2"
)

// DigitType controls the magnitude of addition operands.
type DigitType string

const (
	DigitSingle DigitType = "single" // 1-9
	DigitDouble DigitType = "double" // 10-99
	DigitMixed  DigitType = "mixed"  // either range, chosen per draw
)

// GenerationConfig is the caller-supplied description of one quiz set.
type GenerationConfig struct {
	Category  Category  `json:"category" yaml:"category" mapstructure:"category"`
	Rule      Rule      `json:"rule" yaml:"rule" mapstructure:"rule"`
	MultLevel MultLevel `json:"multLevel" yaml:"mult_level" mapstructure:"mult_level"`
	Count     int       `json:"count" yaml:"count" mapstructure:"count"`
	RowCount  int       `json:"rowCount" yaml:"row_count" mapstructure:"row_count"`
	DigitType DigitType `json:"digitType" yaml:"digit_type" mapstructure:"digit_type"`
}

// Categories, Rules, MultLevels and DigitTypes list the accepted values in
// display order.
var (
	Categories = []Category{CategoryAddition, CategoryMultiplication}
	Rules      = []Rule{RuleStandard, RuleSmallFriends, RuleBigFriends, RuleMixedFriends}
	MultLevels = []MultLevel{Level1x1, Level2x1, Level3x1, Level2x2}
	DigitTypes = []DigitType{DigitSingle, DigitDouble, DigitMixed}
)

func (c Category) Valid() bool  { return contains(Categories, c) }
func (r Rule) Valid() bool      { return contains(Rules, r) }
func (l MultLevel) Valid() bool { return contains(MultLevels, l) }
func (d DigitType) Valid() bool { return contains(DigitTypes, d) }

func contains[T comparable](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

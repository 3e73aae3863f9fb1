package problemgen

import "fmt"

// Validator checks a generated question against the config it was built
// from. Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for error messages and logging,
	// e.g. "structural", "range", "rule".
	Name() string

	// Validate returns nil if the question passes.
	Validate(q *Question, cfg GenerationConfig) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// DefaultValidators returns the full check chain in evaluation order.
func DefaultValidators() []Validator {
	return []Validator{
		&StructuralValidator{},
		&RangeValidator{},
		&DigitValidator{},
		&RuleValidator{},
		&MultiplicationValidator{},
	}
}

// Check runs validators in order and returns the first failure. With no
// validators it runs DefaultValidators.
func Check(q *Question, cfg GenerationConfig, validators ...Validator) *ValidationError {
	if len(validators) == 0 {
		validators = DefaultValidators()
	}
	for _, v := range validators {
		if err := v.Validate(q, cfg); err != nil {
			return err
		}
	}
	return nil
}

// CheckSet runs Check over every question and returns the failures keyed by
// position in the set.
func CheckSet(qs []Question, cfg GenerationConfig, validators ...Validator) map[int]*ValidationError {
	failures := make(map[int]*ValidationError)
	for i := range qs {
		if err := Check(&qs[i], cfg, validators...); err != nil {
			failures[i] = err
		}
	}
	return failures
}

func fail(v Validator, format string, args ...any) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...)}
}

// isUnitStep reports whether n is a ±1 row, the shape of a forced fallback.
func isUnitStep(n int) bool {
	return n == 1 || n == -1
}

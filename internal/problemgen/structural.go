package problemgen

// StructuralValidator checks that the question's shape matches its config:
// ID present, category/rule/level consistent, and the right number of rows.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, cfg GenerationConfig) *ValidationError {
	if q.ID == "" {
		return fail(v, "id is empty")
	}

	if q.Category == CategoryMultiplication {
		if cfg.Category != CategoryMultiplication {
			return fail(v, "category %q does not match config %q", q.Category, cfg.Category)
		}
		if len(q.Rows) != 2 {
			return fail(v, "multiplication needs 2 rows, got %d", len(q.Rows))
		}
		if q.MultLevel != cfg.MultLevel {
			return fail(v, "level %q does not match config %q", q.MultLevel, cfg.MultLevel)
		}
		if q.Rule != "" {
			return fail(v, "multiplication question carries rule %q", q.Rule)
		}
		return nil
	}

	if q.Category != CategoryAddition {
		return fail(v, "unknown category %q", q.Category)
	}
	if cfg.Category == CategoryMultiplication {
		return fail(v, "category %q does not match config %q", q.Category, cfg.Category)
	}
	if len(q.Rows) != cfg.RowCount {
		return fail(v, "expected %d rows, got %d", cfg.RowCount, len(q.Rows))
	}
	if q.Rule != cfg.Rule {
		return fail(v, "rule %q does not match config %q", q.Rule, cfg.Rule)
	}
	if q.MultLevel != "" {
		return fail(v, "addition question carries level %q", q.MultLevel)
	}
	return nil
}

// RangeValidator checks the arithmetic: running totals within [0, 100], a
// non-negative opening row, and an answer equal to the sum or product.
type RangeValidator struct{}

func (v *RangeValidator) Name() string { return "range" }

func (v *RangeValidator) Validate(q *Question, _ GenerationConfig) *ValidationError {
	if q.Category == CategoryMultiplication {
		if len(q.Rows) == 2 && q.Answer != q.Rows[0]*q.Rows[1] {
			return fail(v, "answer %d != %d x %d", q.Answer, q.Rows[0], q.Rows[1])
		}
		return nil
	}

	if len(q.Rows) > 0 && q.Rows[0] < 0 {
		return fail(v, "first row %d is a subtraction", q.Rows[0])
	}
	total := 0
	for i, r := range q.Rows {
		total += r
		if total < MinTotal || total > MaxTotal {
			return fail(v, "running total %d after row %d is outside [%d, %d]", total, i+1, MinTotal, MaxTotal)
		}
	}
	if q.Answer != total {
		return fail(v, "answer %d != row sum %d", q.Answer, total)
	}
	return nil
}

// DigitValidator checks that addition operands fit the configured digit
// type. Forced ±1 steps are exempt.
type DigitValidator struct{}

func (v *DigitValidator) Name() string { return "digits" }

func (v *DigitValidator) Validate(q *Question, cfg GenerationConfig) *ValidationError {
	if q.Category != CategoryAddition {
		return nil
	}
	for i, r := range q.Rows {
		if isUnitStep(r) {
			continue
		}
		a := abs(r)
		single := a >= 1 && a <= 9
		double := a >= 10 && a <= 99
		switch cfg.DigitType {
		case DigitSingle:
			if !single {
				return fail(v, "row %d (%d) is not single-digit", i+1, r)
			}
		case DigitDouble:
			if !double {
				return fail(v, "row %d (%d) is not double-digit", i+1, r)
			}
		default:
			if !single && !double {
				return fail(v, "row %d (%d) is neither single- nor double-digit", i+1, r)
			}
		}
	}
	return nil
}

// RuleValidator checks the static operand constraints of the friend rules:
// small friends use ones digits 1-4, mixed friends use 6-9. The
// technique-needed conditions are probabilistic and not checked here.
type RuleValidator struct{}

func (v *RuleValidator) Name() string { return "rule" }

func (v *RuleValidator) Validate(q *Question, _ GenerationConfig) *ValidationError {
	if q.Category != CategoryAddition {
		return nil
	}
	for i, r := range q.Rows {
		if isUnitStep(r) {
			continue
		}
		ones := abs(r) % 10
		switch q.Rule {
		case RuleSmallFriends:
			if ones < 1 || ones > 4 {
				return fail(v, "row %d (%d) has ones digit %d, want 1-4", i+1, r, ones)
			}
		case RuleMixedFriends:
			if ones < 6 {
				return fail(v, "row %d (%d) has ones digit %d, want 6-9", i+1, r, ones)
			}
		}
	}
	return nil
}

// MultiplicationValidator checks factor ranges and product bounds for the
// question's level. The fixed 100 x 5 fallback is exempt.
type MultiplicationValidator struct{}

func (v *MultiplicationValidator) Name() string { return "multiplication" }

func (v *MultiplicationValidator) Validate(q *Question, _ GenerationConfig) *ValidationError {
	if q.Category != CategoryMultiplication || len(q.Rows) != 2 {
		return nil
	}
	if q.ID == FallbackID {
		return nil
	}
	spec, ok := levelSpecs[q.MultLevel]
	if !ok {
		return nil
	}
	a, b := q.Rows[0], q.Rows[1]
	if !spec.a.contains(a) {
		return fail(v, "first factor %d outside [%d, %d]", a, spec.a.lo, spec.a.hi)
	}
	if !spec.b.contains(b) {
		return fail(v, "second factor %d outside [%d, %d]", b, spec.b.lo, spec.b.hi)
	}
	if !spec.accept(a * b) {
		return fail(v, "product %d out of bounds for level %s", a*b, q.MultLevel)
	}
	return nil
}

package problemgen

const (
	maxRowAttempts     = 100
	relaxAfterAttempts = 50

	// A later row becomes a subtraction when Float64 exceeds this value.
	subtractThreshold = 0.4

	// Totals above this fall back to a -1 step instead of +1.
	fallbackPivot = 50
)

// Addition builds a rowCount-row addition sequence. Each row is sampled up
// to 100 times; rule-specific technique requirements are dropped after 50
// attempts, and a row that never resolves becomes a forced ±1 step.
func (g *Generator) Addition(rowCount int, digits DigitType, rule Rule) Question {
	id := g.newID()
	rows := make([]int, 0, max(rowCount, 0))
	total := 0

	for i := 0; i < rowCount; i++ {
		value, attempts, relaxed, ok := g.drawRow(i, total, digits, rule)
		if !ok {
			value = 1
			if total > fallbackPivot {
				value = -1
			}
		}

		g.observer.ObserveRow(RowEvent{
			QuestionID: id,
			Rule:       rule,
			Index:      i,
			Before:     total,
			Value:      value,
			Attempts:   attempts,
			Relaxed:    relaxed,
			Forced:     !ok,
		})

		rows = append(rows, value)
		total += value
	}

	return Question{
		ID:       id,
		Rows:     rows,
		Answer:   total,
		Category: CategoryAddition,
		Rule:     rule,
	}
}

// drawRow samples candidates for row index until one passes the range and
// rule filters. ok is false when every attempt was rejected.
func (g *Generator) drawRow(index, total int, digits DigitType, rule Rule) (value, attempts int, relaxed, ok bool) {
	for attempts = 1; attempts <= maxRowAttempts; attempts++ {
		signed := g.magnitude(digits)
		if index > 0 && g.src.Float64() > subtractThreshold {
			signed = -signed
		}

		next := total + signed
		if next < MinTotal || next > MaxTotal {
			continue
		}

		accept, lenient := acceptRow(rule, total, signed, attempts)
		if !accept {
			continue
		}
		return signed, attempts, lenient, true
	}
	return 0, maxRowAttempts, false, false
}

// magnitude draws an unsigned operand for the digit type. Mixed picks the
// range independently on every draw.
func (g *Generator) magnitude(digits DigitType) int {
	switch digits {
	case DigitSingle:
		return g.src.IntN(9) + 1
	case DigitDouble:
		return g.src.IntN(90) + 10
	default:
		if g.src.Float64() > 0.5 {
			return g.src.IntN(9) + 1
		}
		return g.src.IntN(90) + 10
	}
}

// acceptRow applies the rule filter to a candidate that already passed the
// range check. relaxed reports acceptance only because the technique
// requirement was lifted after relaxAfterAttempts.
func acceptRow(rule Rule, total, delta, attempts int) (accept, relaxed bool) {
	lenient := attempts >= relaxAfterAttempts
	ones := abs(delta) % 10

	switch rule {
	case RuleSmallFriends:
		if ones == 0 || ones > 4 {
			return false, false
		}
		if SmallFriendNeeded(total, delta) {
			return true, false
		}
		return lenient, lenient
	case RuleBigFriends:
		if BigFriendNeeded(total, delta) {
			return true, false
		}
		return lenient, lenient
	case RuleMixedFriends:
		if ones < 6 {
			return false, false
		}
		if BigFriendNeeded(total, delta) {
			return true, false
		}
		return lenient, lenient
	default:
		return true, false
	}
}

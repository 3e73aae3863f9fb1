package problemgen

const maxPairAttempts = 200

// FallbackID is the ID of the fixed question returned when factor sampling
// is exhausted.
const FallbackID = "fallback"

// factorRange is an inclusive integer interval.
type factorRange struct {
	lo, hi int
}

func (r factorRange) draw(src Source) int {
	return src.IntN(r.hi-r.lo+1) + r.lo
}

func (r factorRange) contains(n int) bool {
	return n >= r.lo && n <= r.hi
}

// levelSpec bounds the factors of a level and the accepted products.
type levelSpec struct {
	a, b   factorRange
	accept func(product int) bool
}

var levelSpecs = map[MultLevel]levelSpec{
	// Two-digit products (10-81).
	Level1x1: {
		a:      factorRange{2, 9},
		b:      factorRange{2, 9},
		accept: func(p int) bool { return p >= 10 },
	},
	// Three-digit products.
	Level2x1: {
		a:      factorRange{10, 99},
		b:      factorRange{1, 9},
		accept: func(p int) bool { return p >= 100 && p < 1000 },
	},
	// Four-digit products; the multiplier is limited to 2-5.
	Level3x1: {
		a:      factorRange{100, 999},
		b:      factorRange{2, 5},
		accept: func(p int) bool { return p >= 1000 && p < 10000 },
	},
	// Three- or four-digit products.
	Level2x2: {
		a:      factorRange{10, 99},
		b:      factorRange{10, 99},
		accept: func(p int) bool { return p >= 100 },
	},
}

// Multiplication draws a factor pair for level, retrying up to 200 times.
// Unknown levels yield the pair (2, 5). If sampling is exhausted the fixed
// 100 x 5 question is returned.
func (g *Generator) Multiplication(level MultLevel) Question {
	id := g.newID()
	for attempts := 1; attempts <= maxPairAttempts; attempts++ {
		a, b, ok := g.drawPair(level)
		if !ok {
			continue
		}
		g.observer.ObservePair(PairEvent{QuestionID: id, Level: level, Attempts: attempts})
		return Question{
			ID:        id,
			Rows:      []int{a, b},
			Answer:    a * b,
			Category:  CategoryMultiplication,
			MultLevel: level,
		}
	}

	g.observer.ObservePair(PairEvent{QuestionID: FallbackID, Level: level, Attempts: maxPairAttempts, Fallback: true})
	return fallbackQuestion(level)
}

func (g *Generator) drawPair(level MultLevel) (a, b int, ok bool) {
	spec, known := levelSpecs[level]
	if !known {
		return 2, 5, true
	}
	a = spec.a.draw(g.src)
	b = spec.b.draw(g.src)
	return a, b, spec.accept(a * b)
}

func fallbackQuestion(level MultLevel) Question {
	return Question{
		ID:        FallbackID,
		Rows:      []int{100, 5},
		Answer:    500,
		Category:  CategoryMultiplication,
		MultLevel: level,
	}
}

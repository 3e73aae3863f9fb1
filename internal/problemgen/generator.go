package problemgen

// Generator produces abacus drill questions by bounded rejection sampling.
// A Generator owns its Source and is not safe for concurrent use; build one
// per goroutine.
type Generator struct {
	src      Source
	newID    func() string
	observer Observer
}

// Option configures a Generator.
type Option func(*Generator)

// WithIDs overrides the question ID function.
func WithIDs(fn func() string) Option {
	return func(g *Generator) { g.newID = fn }
}

// WithObserver installs an observer notified as rows and factor pairs
// are resolved.
func WithObserver(o Observer) Option {
	return func(g *Generator) { g.observer = o }
}

// New creates a Generator drawing from src. A nil src uses a randomly
// seeded source.
func New(src Source, opts ...Option) *Generator {
	if src == nil {
		src = NewRandomSource()
	}
	g := &Generator{
		src:      src,
		newID:    RandomIDs(),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.observer == nil {
		g.observer = nopObserver{}
	}
	return g
}

// QuizSet generates cfg.Count independent questions in generation order.
// Any category other than multiplication produces addition questions.
// A non-positive count yields an empty set.
func (g *Generator) QuizSet(cfg GenerationConfig) []Question {
	questions := make([]Question, 0, max(cfg.Count, 0))
	for i := 0; i < cfg.Count; i++ {
		if cfg.Category == CategoryMultiplication {
			questions = append(questions, g.Multiplication(cfg.MultLevel))
			continue
		}
		questions = append(questions, g.Addition(cfg.RowCount, cfg.DigitType, cfg.Rule))
	}
	return questions
}

// GenerateAddition builds one addition question from a fresh random source.
func GenerateAddition(rowCount int, digits DigitType, rule Rule) Question {
	return New(nil).Addition(rowCount, digits, rule)
}

// GenerateMultiplication builds one multiplication question from a fresh
// random source.
func GenerateMultiplication(level MultLevel) Question {
	return New(nil).Multiplication(level)
}

// GenerateQuizSet builds a full quiz set from a fresh random source.
// Callers should Validate cfg first.
func GenerateQuizSet(cfg GenerationConfig) []Question {
	return New(nil).QuizSet(cfg)
}

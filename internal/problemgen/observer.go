package problemgen

import "sync"

// RowEvent describes how one addition row was resolved.
type RowEvent struct {
	QuestionID string
	Rule       Rule
	Index      int
	Before     int // running total before this row
	Value      int
	Attempts   int
	Relaxed    bool // accepted only after the technique requirement was lifted
	Forced     bool // fallback ±1 step after all attempts were rejected
}

// PairEvent describes how one multiplication factor pair was resolved.
type PairEvent struct {
	QuestionID string
	Level      MultLevel
	Attempts   int
	Fallback   bool
}

// Observer receives resolution events from a Generator.
// Implementations must be safe for concurrent use.
type Observer interface {
	ObserveRow(RowEvent)
	ObservePair(PairEvent)
}

type nopObserver struct{}

func (nopObserver) ObserveRow(RowEvent)   {}
func (nopObserver) ObservePair(PairEvent) {}

// Observers fans events out to several observers in order.
type Observers []Observer

func (obs Observers) ObserveRow(e RowEvent) {
	for _, o := range obs {
		o.ObserveRow(e)
	}
}

func (obs Observers) ObservePair(e PairEvent) {
	for _, o := range obs {
		o.ObservePair(e)
	}
}

// Stats records every event it observes.
type Stats struct {
	mu    sync.Mutex
	rows  []RowEvent
	pairs []PairEvent
}

func (s *Stats) ObserveRow(e RowEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, e)
}

func (s *Stats) ObservePair(e PairEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pairs = append(s.pairs, e)
}

// Rows returns a copy of the recorded row events.
func (s *Stats) Rows() []RowEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RowEvent(nil), s.rows...)
}

// Pairs returns a copy of the recorded pair events.
func (s *Stats) Pairs() []PairEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]PairEvent(nil), s.pairs...)
}

// Summary aggregates recorded events.
type Summary struct {
	Rows          int
	RelaxedRows   int
	ForcedRows    int
	Pairs         int
	FallbackPairs int
	Attempts      int
}

// Summary returns totals over every recorded event.
func (s *Stats) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum Summary
	for _, r := range s.rows {
		sum.Rows++
		sum.Attempts += r.Attempts
		if r.Relaxed {
			sum.RelaxedRows++
		}
		if r.Forced {
			sum.ForcedRows++
		}
	}
	for _, p := range s.pairs {
		sum.Pairs++
		sum.Attempts += p.Attempts
		if p.Fallback {
			sum.FallbackPairs++
		}
	}
	return sum
}

// IsForced reports whether row index of question id was a forced step.
func (s *Stats) IsForced(id string, index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.rows {
		if r.QuestionID == id && r.Index == index {
			return r.Forced
		}
	}
	return false
}

package problemgen

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// Source is the pseudo-random stream the generator draws from.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a uniform integer in [0, n).
	IntN(n int) int

	// Float64 returns a uniform float in [0.0, 1.0).
	Float64() float64
}

// NewSource returns a deterministic source for the given seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandomSource returns a source seeded from the runtime's random state.
func NewRandomSource() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// RandomIDs returns an ID function backed by random UUIDs.
func RandomIDs() func() string {
	return uuid.NewString
}

// SeededIDs returns an ID function producing a reproducible UUID stream.
// It draws from its own PCG stream so question draws are unaffected.
func SeededIDs(seed uint64) func() string {
	r := &sourceReader{src: rand.New(rand.NewPCG(seed, ^seed))}
	return func() string {
		id, err := uuid.NewRandomFromReader(r)
		if err != nil {
			return uuid.NewString()
		}
		return id.String()
	}
}

// sourceReader adapts a *rand.Rand to io.Reader for uuid generation.
type sourceReader struct {
	src *rand.Rand
}

func (r *sourceReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.src.Uint32())
	}
	return len(p), nil
}

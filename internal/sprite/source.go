package sprite

import "math/rand/v2"

// Source is the random capability the generator consumes. Implementations
// must be deterministic for a given seed if reproducible sprites are needed.
type Source interface {
	// Float64 returns a uniform sample in [0, 1).
	Float64() float64
	// Range returns a uniform sample in [lo, hi).
	Range(lo, hi float64) float64
}

// streamSalt derives the PCG stream from the seed.
const streamSalt = 0x9e3779b97f4a7c15

type pcgSource struct {
	r *rand.Rand
}

// NewSource returns a permuted congruential generator seeded with seed.
func NewSource(seed uint64) Source {
	return &pcgSource{r: rand.New(rand.NewPCG(seed, seed^streamSalt))}
}

func (s *pcgSource) Float64() float64 {
	return s.r.Float64()
}

// Range returns lo without advancing the stream when the range is empty.
func (s *pcgSource) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + (hi-lo)*s.r.Float64()
}

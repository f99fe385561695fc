package game

import "math/rand/v2"

// RNG is the seedable uniform source every kind behavior draws from.
// Two worlds built with the same seed and fed the same inputs play out identically.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a generator from a seed
func NewRNG(seed uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Between returns a value in [lo, hi)
func (g *RNG) Between(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + g.r.Float64()*(hi-lo)
}

// OneIn reports true with probability 1/n
func (g *RNG) OneIn(n int) bool {
	if n <= 1 {
		return true
	}
	return g.r.IntN(n) == 0
}

// Sign returns -1 or +1 with equal probability
func (g *RNG) Sign() float64 {
	if g.OneIn(2) {
		return -1
	}
	return 1
}

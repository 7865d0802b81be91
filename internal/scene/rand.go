package scene

import (
	"math"
	"math/rand/v2"
)

// Rand is the single random source behind every factory. Populations are
// non-deterministic unless the caller seeds it.
type Rand struct {
	r *rand.Rand
}

func NewRand() *Rand {
	return NewSeededRand(rand.Uint64())
}

func NewSeededRand(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Float64 returns a value in [0, 1).
func (r *Rand) Float64() float64 { return r.r.Float64() }

func (r *Rand) IntN(n int) int { return r.r.IntN(n) }

// Range returns a value in [lo, hi).
func (r *Rand) Range(lo, hi float64) float64 {
	return lo + r.r.Float64()*(hi-lo)
}

// Spread returns a value in [-half, half).
func (r *Rand) Spread(half float64) float64 {
	return (r.r.Float64() - 0.5) * 2 * half
}

func (r *Rand) Angle() float64 {
	return r.r.Float64() * 2 * math.Pi
}

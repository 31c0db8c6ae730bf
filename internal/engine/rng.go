package engine

import (
	"math"
	"math/rand"
)

// Source yields uniform draws in [0,1). Callers inject one so every
// decision is replayable from a seed; see NewSeeded.
type Source interface {
	Float64() float64
}

// Rand wraps a uniform Source and derives the Gaussian draws the
// imperfection model needs via Box-Muller, caching the spare deviate.
type Rand struct {
	src      Source
	spare    float64
	hasSpare bool
}

// NewRand wraps an arbitrary uniform source.
func NewRand(src Source) *Rand {
	return &Rand{src: src}
}

// NewSeeded returns a Rand whose entire draw sequence is determined by
// seed. Identical seeds reproduce identical decisions on every platform.
func NewSeeded(seed uint64) *Rand {
	return &Rand{src: rand.New(rand.NewSource(int64(seed)))}
}

// Float64 returns a uniform draw in [0,1).
func (r *Rand) Float64() float64 {
	return r.src.Float64()
}

// Bool returns true with probability p.
func (r *Rand) Bool(p float64) bool {
	return r.src.Float64() < p
}

// Between returns a uniform draw in [lo,hi).
func (r *Rand) Between(lo, hi float64) float64 {
	return lo + r.src.Float64()*(hi-lo)
}

// Sign returns +1 or -1 with equal probability.
func (r *Rand) Sign() int {
	if r.src.Float64() < 0.5 {
		return -1
	}
	return 1
}

// Norm returns a standard normal deviate (Box-Muller).
func (r *Rand) Norm() float64 {
	if r.hasSpare {
		r.hasSpare = false
		return r.spare
	}
	u1 := r.src.Float64()
	for u1 <= 1e-12 {
		u1 = r.src.Float64()
	}
	u2 := r.src.Float64()
	mag := math.Sqrt(-2 * math.Log(u1))
	r.spare = mag * math.Sin(2*math.Pi*u2)
	r.hasSpare = true
	return mag * math.Cos(2*math.Pi*u2)
}

// NormScaled returns a normal deviate with the given standard deviation.
func (r *Rand) NormScaled(stddev float64) float64 {
	return r.Norm() * stddev
}

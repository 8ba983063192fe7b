package core

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Range returns a uniform value in [lo, hi).
func (r *RNG) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.r.Float64()*(hi-lo)
}

// Spread returns a uniform value in [-half, half).
func (r *RNG) Spread(half float64) float64 {
	return r.Range(-half, half)
}

// InBox returns a uniform point inside the axis-aligned box [-half, half).
func (r *RNG) InBox(half mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{r.Spread(half[0]), r.Spread(half[1]), r.Spread(half[2])}
}

// Direction returns a random unit vector. Degenerate draws are retried.
func (r *RNG) Direction() mgl64.Vec3 {
	for {
		v := mgl64.Vec3{r.Spread(1), r.Spread(1), r.Spread(1)}
		if l := v.Len(); l > 1e-9 {
			return v.Mul(1 / l)
		}
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

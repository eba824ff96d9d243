// Package random wraps math/rand/v2 with a deterministic, explicitly seeded
// source. Generation code takes an *RNG instead of touching global state.
package random

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
// It is not safe for concurrent use.
type RNG struct {
	seed int64
	r    *rand.Rand
}

// New creates a deterministic RNG using the provided seed.
func New(seed int64) *RNG {
	return &RNG{seed: seed, r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Range returns a uniform int in [lo, hi). It panics if hi <= lo.
func (r *RNG) Range(lo, hi int) int {
	if hi <= lo {
		panic("random: empty range")
	}
	return lo + r.r.IntN(hi-lo)
}

// Float64 returns a uniform float64 in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

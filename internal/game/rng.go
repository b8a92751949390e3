package game

import (
	"math/rand"
	"time"
)

// RNG is one side's deterministic randomness stream. Each Team and each
// Shop owns its own stream, so re-seeding one never perturbs the other.
type RNG struct {
	seed int64
	src  *rand.Rand
}

// NewRNG creates a deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// NewEntropyRNG creates an RNG seeded from the clock. Tests must always
// supply an explicit seed instead.
func NewEntropyRNG() *RNG {
	return NewRNG(time.Now().UnixNano())
}

// Seed returns the seed this stream was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a random integer in [0, n).
func (r *RNG) Intn(n int) int {
	return r.src.Intn(n)
}

// Shuffle randomizes the order of n elements via the swap function.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.src.Shuffle(n, swap)
}

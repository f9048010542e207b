package pkg

import (
	"math/rand/v2"
	"time"
)

// RNG abstracts random number generation so shuffles and bots can be made deterministic in tests.
type RNG interface {
	// Intn returns a uniformly distributed value in [0, n). It panics if n <= 0.
	Intn(n int) int
}

type pcgRNG struct {
	rnd *rand.Rand
}

// NewSeededRNG - returns a deterministic RNG for the given seed.
func NewSeededRNG(seed uint64) RNG {
	return &pcgRNG{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))} //nolint: gosec // game shuffles only
}

// NewRNG - returns an RNG seeded from the current time.
func NewRNG() RNG {
	return NewSeededRNG(uint64(time.Now().UnixNano())) //nolint: gosec // it's ok
}

func (that *pcgRNG) Intn(n int) int {
	return that.rnd.IntN(n)
}

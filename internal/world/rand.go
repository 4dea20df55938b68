package world

import (
	"math/rand"
	"time"
)

// Rand is the randomness provider every random choice routes through.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a seeded source. A seed of 0 means a time-based seed.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// pick returns a uniformly chosen element. items must be non-empty.
func pick[T any](rng Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

// shuffle permutes items in place (Fisher-Yates).
func shuffle[T any](rng Rand, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

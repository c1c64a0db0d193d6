package loot

import "math/rand"

// Source abstracts the randomness used by loot generation and rarity picks
// so tests can substitute a deterministic sequence. *rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform int in [0, n). Panics if n <= 0.
	Intn(n int) int
	// Float64 returns a uniform float64 in [0.0, 1.0).
	Float64() float64
}

// NewSource returns a Source seeded with the given value.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

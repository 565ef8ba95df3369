// Package dice provides the tabletop-style random rolls used by map generation.
package dice

import (
	"math/rand"
	"time"
)

// Roller rolls n dice of the given number of sides.
type Roller interface {
	RollDice(n, sides int) int
}

// Rand is a Roller backed by math/rand.
type Rand struct {
	rng *rand.Rand
}

// New returns a Roller seeded with seed. A zero seed picks a time-based one.
func New(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// FromRand wraps an existing *rand.Rand.
func FromRand(rng *rand.Rand) *Rand {
	return &Rand{rng: rng}
}

// RollDice returns the sum of n rolls of a 1-based die with the given sides,
// so each roll is in [1, sides]. Returns 0 when n or sides is not positive.
func (r *Rand) RollDice(n, sides int) int {
	if n <= 0 || sides <= 0 {
		return 0
	}
	total := 0
	for iterIdx := 0; iterIdx < n; iterIdx++ {
		total += r.rng.Intn(sides) + 1
	}
	return total
}

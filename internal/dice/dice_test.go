package dice

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRollDiceRange(t *testing.T) {
	r := New(7)
	seen := make(map[int]bool)
	for iterIdx := 0; iterIdx < 2000; iterIdx++ {
		v := r.RollDice(1, 6)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 6)
		seen[v] = true
	}
	assert.Len(t, seen, 6, "every face should come up over 2000 rolls")
}

func TestRollDiceSum(t *testing.T) {
	r := New(11)
	for iterIdx := 0; iterIdx < 500; iterIdx++ {
		v := r.RollDice(3, 4)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 12)
	}
}

func TestRollDiceDegenerate(t *testing.T) {
	r := New(1)
	assert.Zero(t, r.RollDice(0, 6))
	assert.Zero(t, r.RollDice(1, 0))
	assert.Equal(t, 1, r.RollDice(1, 1))
}

func TestSameSeedSameRolls(t *testing.T) {
	a := FromRand(rand.New(rand.NewSource(42)))
	b := New(42)
	for iterIdx := 0; iterIdx < 100; iterIdx++ {
		assert.Equal(t, a.RollDice(1, 79), b.RollDice(1, 79))
	}
}

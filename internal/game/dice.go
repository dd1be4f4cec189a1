package game

import "math/rand/v2"

// Dice draws a uniform integer in [0, n). *rand.Rand satisfies it.
type Dice interface {
	IntN(n int) int
}

// NewDice returns a PCG-backed generator. The same seed replays the same game.
func NewDice(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed>>8|3))
}

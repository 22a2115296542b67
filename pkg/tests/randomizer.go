package tests

import (
	"math/rand"
	"time"
)

// Randomizer wraps a time-seeded source for property style tests.
type Randomizer struct {
	Intn func(n int) int
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().Unix())) //nolint:gosec // for tests

	return Randomizer{
		Intn: random.Intn,
	}
}

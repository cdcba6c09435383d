package scheduler

import "math/rand/v2"

// Rand abstracts the random source used for bot selection, jitter, and
// fan-out shuffling so tests can pin it.
type Rand interface {
	Float64() float64
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

type systemRand struct{}

func (systemRand) Float64() float64 { return rand.Float64() }

func (systemRand) IntN(n int) int { return rand.IntN(n) }

func (systemRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// SystemRand returns the process-wide random source.
func SystemRand() Rand {
	return systemRand{}
}

package pong

import "math/rand/v2"

// EntropySource supplies raw, hard to predict readings used to seed a serve.
type EntropySource interface {
	ReadEntropy() uint64
}

// FixedEntropy always returns the same reading. Useful for deterministic play.
type FixedEntropy uint64

func (f FixedEntropy) ReadEntropy() uint64 { return uint64(f) }

// EntropyFunc adapts a function to EntropySource.
type EntropyFunc func() uint64

func (f EntropyFunc) ReadEntropy() uint64 { return f() }

// Dice produces the random vectors used for serves and stalled balls.
type Dice struct {
	pcg      *rand.PCG
	rng      *rand.Rand
	maxSpeed int
}

// NewDice creates dice seeded with seed whose vectors are bounded by maxSpeed.
func NewDice(seed uint64, maxSpeed int) *Dice {
	if maxSpeed < 1 {
		maxSpeed = 1
	}
	pcg := rand.NewPCG(seed, seed)
	return &Dice{
		pcg:      pcg,
		rng:      rand.New(pcg),
		maxSpeed: maxSpeed,
	}
}

// Seed restarts the sequence from seed.
func (d *Dice) Seed(seed uint64) {
	d.pcg.Seed(seed, seed)
}

// Vector returns a speed in [1, maxSpeed] with a random sign.
func (d *Dice) Vector() int {
	sign := -1
	if d.rng.IntN(2) == 1 {
		sign = +1
	}
	return sign * (d.rng.IntN(d.maxSpeed) + 1)
}

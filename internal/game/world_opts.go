package game

import "math/rand/v2"

type WorldOpt func(*World)

// WithRand sets the random source used for wandering entities.
func WithRand(r *rand.Rand) WorldOpt {
	return func(w *World) {
		w.rng = r
	}
}

// WithSeed seeds a fresh random source. A zero seed leaves the default in place.
func WithSeed(seed uint64) WorldOpt {
	return func(w *World) {
		if seed == 0 {
			return
		}
		w.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
}

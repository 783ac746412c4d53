package kintsugi

import (
	"math/rand"
	"time"
)

// Fracturer generates fractures for one vessel. The host may overwrite Vessel
// between calls (viewport resize); every operation reads it at call time.
//
// Rand is the sole source of randomness. Production hosts pass nil for a
// time-seeded source; tests inject a fixed-seed *rand.Rand for reproducible
// geometry.
//
// A Fracturer is not safe for concurrent use. Crack growth mutates paths in
// place and is meant to be driven by a single animation loop.
type Fracturer struct {
	Vessel Vessel
	Rand   *rand.Rand
}

func NewFracturer(v Vessel, rng *rand.Rand) *Fracturer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Fracturer{
		Vessel: v,
		Rand:   rng,
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

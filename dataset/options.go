// SPDX-License-Identifier: MIT
// Package: dataset
//
// options.go — functional options for generators.

package dataset

import (
	"math"
	"math/rand"
)

// Option customizes a generator by mutating a genConfig before construction.
type Option func(*genConfig)

// WithRand provides an explicit RNG shared with the caller.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("dataset: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic stream).
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithAmplitude scales the input draw. Panics unless a is finite and > 0.
func WithAmplitude(a float64) Option {
	if math.IsNaN(a) || math.IsInf(a, 0) || a <= 0 {
		panic("dataset: WithAmplitude: amplitude must be finite and > 0")
	}
	return func(c *genConfig) {
		c.amplitude = a
	}
}

// WithNoise adds N(0, sigma²) to every target element. Panics unless sigma is finite and ≥ 0.
func WithNoise(sigma float64) Option {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma < 0 {
		panic("dataset: WithNoise: sigma must be finite and >= 0")
	}
	return func(c *genConfig) {
		c.noiseSigma = sigma
	}
}

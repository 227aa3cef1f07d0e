// SPDX-License-Identifier: MIT
// Package: mlp
//
// options.go — functional configuration for New.
//
// Deterministic defaults:
//   • learningRate = DefaultLearningRate
//   • rng          = nil (process-wide math/rand source; pass WithSeed for reproducible weights)

package mlp

import (
	"math"
	"math/rand"
)

// DefaultLearningRate is the step size used when WithLearningRate is not given.
const DefaultLearningRate = 0.001

// config aggregates all knobs used by New. Passed by value; immutable to callers.
type config struct {
	learningRate float64
	rng          *rand.Rand
}

// Option customizes New by mutating a config before any allocation.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// newConfig applies opts in order over the defaults (later overrides earlier).
func newConfig(opts ...Option) config {
	cfg := config{learningRate: DefaultLearningRate}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLearningRate sets the fixed gradient step size.
// Panics unless lr is finite and > 0.
func WithLearningRate(lr float64) Option {
	if math.IsNaN(lr) || math.IsInf(lr, 0) || lr <= 0 {
		panic("mlp: WithLearningRate: lr must be finite and > 0")
	}
	return func(c *config) {
		c.learningRate = lr
	}
}

// WithRand provides an explicit RNG for weight initialization.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("mlp: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic weights).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

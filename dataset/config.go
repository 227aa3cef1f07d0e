// SPDX-License-Identifier: MIT
// Package: dataset
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • genConfig is the single source of truth for all generator knobs.
//   • newGenConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng        = nil   (process-wide math/rand source)
//   • amplitude  = 3.0   (x ~ N(0, 3²) for one channel)
//   • noiseSigma = 0.0   (noise-free targets)

package dataset

import "math/rand"

// genConfig aggregates all knobs used by generators.
// It is passed by VALUE to constructors (immutable to callers).
type genConfig struct {
	rng        *rand.Rand // nil means the process-wide source
	amplitude  float64    // > 0, scales the unit-variance input draw
	noiseSigma float64    // ≥ 0, Gaussian noise on targets
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultAmplitude  = 3.0
	defaultNoiseSigma = 0.0
)

// newGenConfig constructs a config with defaults and applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		amplitude:  defaultAmplitude,
		noiseSigma: defaultNoiseSigma,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

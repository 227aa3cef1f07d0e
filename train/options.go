// SPDX-License-Identifier: MIT
// Package: train
//
// options.go — functional options for Run.

package train

import "github.com/katalvlaran/lvnet/matrix"

// DefaultIterations is the number of training steps when WithIterations is absent.
const DefaultIterations = 1000

type config[T matrix.Float] struct {
	iterations int
	window     int // 0 means "all iterations"
	recorder   Recorder[T]
}

// Option configures Run.
type Option[T matrix.Float] func(*config[T])

func newConfig[T matrix.Float](opts ...Option[T]) config[T] {
	cfg := config[T]{iterations: DefaultIterations}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIterations sets the number of training steps. Panics if n <= 0.
func WithIterations[T matrix.Float](n int) Option[T] {
	if n <= 0 {
		panic("train: WithIterations: n must be > 0")
	}
	return func(c *config[T]) { c.iterations = n }
}

// WithWindow limits Summary window statistics to the last n losses. Panics if n <= 0.
func WithWindow[T matrix.Float](n int) Option[T] {
	if n <= 0 {
		panic("train: WithWindow: n must be > 0")
	}
	return func(c *config[T]) { c.window = n }
}

// WithRecorder receives one Record per iteration. Panics on nil.
func WithRecorder[T matrix.Float](r Recorder[T]) Option[T] {
	if r == nil {
		panic("train: WithRecorder(nil)")
	}
	return func(c *config[T]) { c.recorder = r }
}

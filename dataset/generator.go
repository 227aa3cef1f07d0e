// SPDX-License-Identifier: MIT
// Package: dataset
//
// generator.go — (x, f(x)) sample stream.
//
// Model (per call to Next):
//   - x = Random(rng, channels, 1) · amplitude     (std = amplitude/sqrt(channels))
//   - y = f(x) element-wise (+ sigma · N(0,1) when noise is enabled)
//
// Draw order is fixed: all x draws, then noise draws for y. A seeded rng
// therefore reproduces the exact stream.

package dataset

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnet/matrix"
)

// Generator produces (input, target) column pairs of width Channels().
// It is not safe for concurrent use (it advances a shared rng).
type Generator[T matrix.Float] struct {
	channels int
	target   func(float64) float64
	cfg      genConfig
}

// New returns a Generator mapping inputs through target.
//
// Errors:
//   - ErrTooFewChannels when channels <= 0.
//   - ErrNilTarget when target is nil.
func New[T matrix.Float](channels int, target func(float64) float64, opts ...Option) (*Generator[T], error) {
	if channels <= 0 {
		return nil, wrapf(methodNew, fmt.Errorf("%d: %w", channels, ErrTooFewChannels))
	}
	if target == nil {
		return nil, wrapf(methodNew, ErrNilTarget)
	}

	return &Generator[T]{channels: channels, target: target, cfg: newGenConfig(opts...)}, nil
}

// NewSinSquared returns the demo generator y = sin²(x).
func NewSinSquared[T matrix.Float](channels int, opts ...Option) (*Generator[T], error) {
	return New[T](channels, SinSquared, opts...)
}

// SinSquared returns sin(x)², a target bounded in [0,1] and therefore
// reachable by a sigmoid output.
func SinSquared(x float64) float64 {
	s := math.Sin(x)

	return s * s
}

// Channels returns the width of produced columns.
func (g *Generator[T]) Channels() int { return g.channels }

// Next draws one (x, y) pair, both of shape (channels, 1).
func (g *Generator[T]) Next() (x, y *matrix.Dense[T], err error) {
	base, err := matrix.Random[T](g.cfg.rng, g.channels, 1)
	if err != nil {
		return nil, nil, wrapf(methodNext, err)
	}
	x = base.Scale(T(g.cfg.amplitude))
	y = x.Map(func(v T) T { return T(g.target(float64(v))) })

	if g.cfg.noiseSigma > 0 {
		noise, err := matrix.Random[T](g.cfg.rng, g.channels, 1)
		if err != nil {
			return nil, nil, wrapf(methodNext, err)
		}
		// Random has std 1/sqrt(channels); rescale to sigma.
		noise = noise.Scale(T(g.cfg.noiseSigma * math.Sqrt(float64(g.channels))))
		if y, err = y.Add(noise); err != nil {
			return nil, nil, wrapf(methodNext, err)
		}
	}

	return x, y, nil
}

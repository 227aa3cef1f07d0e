// SPDX-License-Identifier: MIT
// Package: train
//
// run.go — the online training loop.
//
// Per iteration k (1-based):
//
//	(x, y) = src.Next();  ŷ = model.Forward(x);  model.Backprop(y)
//	loss   = SquaredError(y, ŷ)   (scored on the pre-update prediction)
//
// The most recent `window` losses are kept in a ring for Summary statistics.

package train

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvnet/matrix"
	"github.com/katalvlaran/lvnet/mlp"
)

// Model is a trainable predictor with a Forward/Backprop cycle.
// *mlp.Network satisfies it.
type Model[T matrix.Float] interface {
	Forward(input *matrix.Dense[T]) (*matrix.Dense[T], error)
	Backprop(target *matrix.Dense[T]) error
}

// Source yields (input, target) pairs. *dataset.Generator satisfies it.
type Source[T matrix.Float] interface {
	Next() (x, y *matrix.Dense[T], err error)
}

// Record is one training step as seen by a Recorder.
type Record[T matrix.Float] struct {
	Iteration int
	Loss      T
	Input     *matrix.Dense[T]
	Target    *matrix.Dense[T]
	Output    *matrix.Dense[T]
}

// Summary aggregates the losses of a Run.
type Summary[T matrix.Float] struct {
	Iterations int
	FirstLoss  T
	LastLoss   T

	// Window statistics over the last Window losses.
	Window     int
	WindowMean float64
	WindowStd  float64
	WindowMin  float64
	WindowMax  float64
}

// Run trains model on samples from src.
//
// Implementation:
//   - Stage 1: resolve options; clamp the window to the iteration count.
//   - Stage 2: per iteration draw, predict, update, score and record.
//   - Stage 3: summarize the loss window with gonum stat/floats.
//
// Errors:
//   - ErrNilModel, ErrNilSource.
//   - Any error from src, model or the recorder, tagged with the iteration.
//     Steps completed before the failure remain applied to the model.
func Run[T matrix.Float](model Model[T], src Source[T], opts ...Option[T]) (Summary[T], error) {
	var sum Summary[T]
	if model == nil {
		return sum, trainErrorf(opRun, 0, ErrNilModel)
	}
	if src == nil {
		return sum, trainErrorf(opRun, 0, ErrNilSource)
	}
	cfg := newConfig(opts...)
	window := cfg.window
	if window == 0 || window > cfg.iterations {
		window = cfg.iterations
	}

	ring := make([]float64, window)
	for k := 1; k <= cfg.iterations; k++ {
		x, y, err := src.Next()
		if err != nil {
			return sum, trainErrorf(opRun, k, err)
		}
		yHat, err := model.Forward(x)
		if err != nil {
			return sum, trainErrorf(opRun, k, err)
		}
		if err = model.Backprop(y); err != nil {
			return sum, trainErrorf(opRun, k, err)
		}
		loss, err := mlp.SquaredError(y, yHat)
		if err != nil {
			return sum, trainErrorf(opRun, k, err)
		}

		if k == 1 {
			sum.FirstLoss = loss
		}
		sum.LastLoss = loss
		sum.Iterations = k
		ring[(k-1)%window] = float64(loss)

		if cfg.recorder != nil {
			rec := Record[T]{Iteration: k, Loss: loss, Input: x, Target: y, Output: yHat}
			if err = cfg.recorder.Record(rec); err != nil {
				return sum, trainErrorf(opRun, k, err)
			}
		}
	}

	sum.Window = window
	sum.WindowMean, sum.WindowStd = stat.MeanStdDev(ring, nil)
	if window == 1 {
		sum.WindowStd = 0 // sample std is undefined for one value
	}
	sum.WindowMin, sum.WindowMax = floats.Min(ring), floats.Max(ring)

	return sum, nil
}

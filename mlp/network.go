// SPDX-License-Identifier: MIT
// Package: mlp
//
// network.go — Network construction and read accessors.
//
// Invariants:
//   • len(weights) == len(biases) == len(unitsPerLayer)-1.
//   • weights[i] is (units[i+1], units[i]); biases[i] is (units[i+1], 1).
//   • The Network exclusively owns every matrix; accessors hand out copies.

package mlp

import (
	"fmt"

	"github.com/katalvlaran/lvnet/matrix"
)

// Network is a sigmoid multi-layer perceptron over element type T.
type Network[T matrix.Float] struct {
	unitsPerLayer []int
	weights       []*matrix.Dense[T]
	biases        []*matrix.Dense[T]
	learningRate  T

	// cache holds the activations of the latest Forward; nil when stale.
	cache *Trace[T]
}

// New builds a Network for the given layer widths [in, hidden..., out].
//
// Implementation:
//   - Stage 1: validate the width list (len ≥ 2, every width > 0).
//   - Stage 2: resolve options (learning rate, rng).
//   - Stage 3: for each transition draw W (out,in) then b (out,1) via matrix.Random.
//
// Errors:
//   - ErrTooFewLayers, ErrInvalidWidth.
//
// Complexity:
//   - Time/Space O(Σ units[i]·units[i+1]).
func New[T matrix.Float](unitsPerLayer []int, opts ...Option) (*Network[T], error) {
	if len(unitsPerLayer) < 2 {
		return nil, mlpErrorf(opNew, fmt.Errorf("%d layers: %w", len(unitsPerLayer), ErrTooFewLayers))
	}
	for i, u := range unitsPerLayer {
		if u <= 0 {
			return nil, mlpErrorf(opNew, fmt.Errorf("layer %d width %d: %w", i, u, ErrInvalidWidth))
		}
	}
	cfg := newConfig(opts...)

	n := &Network[T]{
		unitsPerLayer: append([]int(nil), unitsPerLayer...),
		weights:       make([]*matrix.Dense[T], 0, len(unitsPerLayer)-1),
		biases:        make([]*matrix.Dense[T], 0, len(unitsPerLayer)-1),
		learningRate:  T(cfg.learningRate),
	}
	for i := 0; i+1 < len(unitsPerLayer); i++ {
		in, out := unitsPerLayer[i], unitsPerLayer[i+1]

		w, err := matrix.Random[T](cfg.rng, out, in)
		if err != nil {
			return nil, mlpErrorf(opNew, err)
		}
		b, err := matrix.Random[T](cfg.rng, out, 1)
		if err != nil {
			return nil, mlpErrorf(opNew, err)
		}
		n.weights = append(n.weights, w)
		n.biases = append(n.biases, b)
	}

	return n, nil
}

// HiddenLayers returns the width list [in, hidden×hiddenLayers, out] for a
// network whose hidden layers all share one width.
func HiddenLayers(in, out, hiddenUnits, hiddenLayers int) []int {
	units := make([]int, 0, hiddenLayers+2)
	units = append(units, in)
	for i := 0; i < hiddenLayers; i++ {
		units = append(units, hiddenUnits)
	}

	return append(units, out)
}

// UnitsPerLayer returns a copy of the layer widths.
func (n *Network[T]) UnitsPerLayer() []int { return append([]int(nil), n.unitsPerLayer...) }

// NumLayers returns L, the number of layers including input and output.
func (n *Network[T]) NumLayers() int { return len(n.unitsPerLayer) }

// InputWidth returns units[0].
func (n *Network[T]) InputWidth() int { return n.unitsPerLayer[0] }

// OutputWidth returns units[L-1].
func (n *Network[T]) OutputWidth() int { return n.unitsPerLayer[len(n.unitsPerLayer)-1] }

// LearningRate returns the fixed step size.
func (n *Network[T]) LearningRate() T { return n.learningRate }

// Fresh reports whether Forward has cached activations that Backprop may consume.
func (n *Network[T]) Fresh() bool { return n.cache != nil }

// Weights returns a copy of the weight matrix of transition i (layer i → i+1).
func (n *Network[T]) Weights(i int) (*matrix.Dense[T], error) {
	if i < 0 || i >= len(n.weights) {
		return nil, mlpErrorf(opWeights, fmt.Errorf("%d: %w", i, ErrLayerIndex))
	}

	return n.weights[i].Clone(), nil
}

// Biases returns a copy of the bias column of transition i.
func (n *Network[T]) Biases(i int) (*matrix.Dense[T], error) {
	if i < 0 || i >= len(n.biases) {
		return nil, mlpErrorf(opBiases, fmt.Errorf("%d: %w", i, ErrLayerIndex))
	}

	return n.biases[i].Clone(), nil
}

// Activations returns copies of the cached activations (activations[0] is the
// input), or nil when no Forward is pending.
func (n *Network[T]) Activations() []*matrix.Dense[T] {
	if n.cache == nil {
		return nil
	}

	return n.cache.Activations()
}

// SPDX-License-Identifier: MIT
// Package: mlp
//
// trace.go — forward pass and backpropagation.
//
// Forward (per transition i, in order):
//
//	z = W[i]·a[i] + b[i];  a[i+1] = σ(z)
//
// Backprop (i from L-2 down to 0), with e = target − a[L-1]:
//
//	prev = W[i]ᵀ·e                      (uses W[i] before its update)
//	g    = lr · (e ⊙ a[i+1]⊙(1−a[i+1]))
//	W[i] += g·a[i]ᵀ;  b[i] += g;  e = prev
//
// With e = target − output the update is added, which is gradient descent on
// ½‖target − output‖².

package mlp

import (
	"fmt"

	"github.com/katalvlaran/lvnet/matrix"
)

// Trace is the activation record of one forward pass: a[0] is the input,
// a[L-1] the prediction. Every matrix in it is owned by the trace.
type Trace[T matrix.Float] struct {
	activations []*matrix.Dense[T]
}

// Len returns the number of recorded activations (L).
func (tr *Trace[T]) Len() int { return len(tr.activations) }

// Output returns a copy of the final activation (the prediction).
func (tr *Trace[T]) Output() *matrix.Dense[T] {
	return tr.activations[len(tr.activations)-1].Clone()
}

// Activations returns copies of all recorded activations.
func (tr *Trace[T]) Activations() []*matrix.Dense[T] {
	out := make([]*matrix.Dense[T], len(tr.activations))
	for i, a := range tr.activations {
		out[i] = a.Clone()
	}

	return out
}

// ForwardTrace runs the forward pass without touching the cached state.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil input.
//   - matrix.ErrDimensionMismatch unless input is (units[0], 1).
func (n *Network[T]) ForwardTrace(input *matrix.Dense[T]) (*Trace[T], error) {
	if input == nil {
		return nil, mlpErrorf(opForwardTrace, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateColumn(input, n.InputWidth()); err != nil {
		return nil, mlpErrorf(opForwardTrace, err)
	}

	acts := make([]*matrix.Dense[T], len(n.unitsPerLayer))
	acts[0] = input.Clone()
	prev := acts[0]
	for i, w := range n.weights {
		z, err := w.Mul(prev)
		if err != nil {
			return nil, mlpErrorf(opForwardTrace, fmt.Errorf("layer %d: %w", i, err))
		}
		if z, err = z.Add(n.biases[i]); err != nil {
			return nil, mlpErrorf(opForwardTrace, fmt.Errorf("layer %d: %w", i, err))
		}
		prev = z.Map(Sigmoid[T])
		acts[i+1] = prev
	}

	return &Trace[T]{activations: acts}, nil
}

// Forward runs the forward pass, caches the activations for Backprop and
// returns a copy of the prediction, shape (units[L-1], 1).
// A failed Forward leaves the previous cache in place.
func (n *Network[T]) Forward(input *matrix.Dense[T]) (*matrix.Dense[T], error) {
	tr, err := n.ForwardTrace(input)
	if err != nil {
		return nil, mlpErrorf(opForward, err)
	}
	n.cache = tr

	return tr.Output(), nil
}

// Predict is ForwardTrace(input).Output(): inference with no cache update.
func (n *Network[T]) Predict(input *matrix.Dense[T]) (*matrix.Dense[T], error) {
	tr, err := n.ForwardTrace(input)
	if err != nil {
		return nil, err
	}

	return tr.Output(), nil
}

// Backprop updates weights and biases from the activations cached by the
// latest Forward and the matching target, then marks the cache consumed.
//
// Errors:
//   - ErrStaleActivations when no Forward is pending.
//   - matrix.ErrDimensionMismatch unless target is (units[L-1], 1).
//
// On error no parameter and no cached activation is modified.
func (n *Network[T]) Backprop(target *matrix.Dense[T]) error {
	if n.cache == nil {
		return mlpErrorf(opBackprop, ErrStaleActivations)
	}
	if err := n.BackpropTrace(n.cache, target); err != nil {
		return mlpErrorf(opBackprop, err)
	}
	n.cache = nil

	return nil
}

// BackpropTrace applies one gradient step using an explicit trace.
//
// Implementation:
//   - Stage 1: validate trace topology and target shape.
//   - Stage 2: walk transitions from output to input collecting (ΔW, Δb);
//     the error signal propagates through the pre-update weights.
//   - Stage 3: apply all deltas in place.
//
// Behavior highlights:
//   - All-or-nothing: parameters are written only after every delta is computed.
//
// Complexity:
//   - Time O(Σ units[i]·units[i+1]), Space O(same) for the deltas.
func (n *Network[T]) BackpropTrace(tr *Trace[T], target *matrix.Dense[T]) error {
	if err := n.validateTrace(tr); err != nil {
		return mlpErrorf(opBackpropTrace, err)
	}
	if target == nil {
		return mlpErrorf(opBackpropTrace, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateColumn(target, n.OutputWidth()); err != nil {
		return mlpErrorf(opBackpropTrace, err)
	}

	acts := tr.activations
	last := len(n.weights) - 1
	dW := make([]*matrix.Dense[T], len(n.weights))
	dB := make([]*matrix.Dense[T], len(n.biases))

	errSignal, err := target.Sub(acts[last+1])
	if err != nil {
		return mlpErrorf(opBackpropTrace, err)
	}
	for i := last; i >= 0; i-- {
		prevErrors, err := n.weights[i].Transpose().Mul(errSignal)
		if err != nil {
			return mlpErrorf(opBackpropTrace, fmt.Errorf("layer %d: %w", i, err))
		}
		d := acts[i+1].Map(SigmoidDerivative[T])
		grad, err := errSignal.Hadamard(d)
		if err != nil {
			return mlpErrorf(opBackpropTrace, fmt.Errorf("layer %d: %w", i, err))
		}
		grad = grad.Scale(n.learningRate)

		wGrad, err := grad.Mul(acts[i].Transpose())
		if err != nil {
			return mlpErrorf(opBackpropTrace, fmt.Errorf("layer %d: %w", i, err))
		}
		dW[i], dB[i] = wGrad, grad
		errSignal = prevErrors
	}

	// Shapes were fixed by validateTrace; AddInPlace cannot fail past this point.
	for i := range n.weights {
		_ = n.biases[i].AddInPlace(dB[i])
		_ = n.weights[i].AddInPlace(dW[i])
	}

	return nil
}

// validateTrace checks that tr has one (units[i], 1) activation per layer.
func (n *Network[T]) validateTrace(tr *Trace[T]) error {
	if tr == nil || len(tr.activations) != len(n.unitsPerLayer) {
		return ErrTraceMismatch
	}
	for i, a := range tr.activations {
		if a == nil || matrix.ValidateColumn(a, n.unitsPerLayer[i]) != nil {
			return fmt.Errorf("activation %d: %w", i, ErrTraceMismatch)
		}
	}

	return nil
}

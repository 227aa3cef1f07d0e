// SPDX-License-Identifier: MIT
// Package: mlp
//
// errors.go — sentinel errors for the mlp package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Shape violations on inputs/targets surface matrix.ErrDimensionMismatch.
//   • Every failing call leaves weights and biases untouched.
//   • Option constructors (WithX) panic on nonsensical values (programmer error).

package mlp

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewLayers indicates a width list shorter than two (input and output).
	ErrTooFewLayers = errors.New("mlp: need at least input and output layers")

	// ErrInvalidWidth indicates a non-positive layer width.
	ErrInvalidWidth = errors.New("mlp: layer width must be > 0")

	// ErrStaleActivations indicates Backprop without a preceding Forward
	// (or a second Backprop on the same Forward).
	ErrStaleActivations = errors.New("mlp: no activations cached; call Forward first")

	// ErrTraceMismatch indicates a trace that was not produced for this topology.
	ErrTraceMismatch = errors.New("mlp: trace does not match network topology")

	// ErrLayerIndex indicates a layer-transition index outside [0, NumLayers()-1).
	ErrLayerIndex = errors.New("mlp: layer index out of range")
)

// Method tags used in error wrappers.
const (
	opNew           = "New"
	opForward       = "Network.Forward"
	opBackprop      = "Network.Backprop"
	opForwardTrace  = "Network.ForwardTrace"
	opBackpropTrace = "Network.BackpropTrace"
	opWeights       = "Network.Weights"
	opBiases        = "Network.Biases"
	opSquaredError  = "SquaredError"
)

// mlpErrorf wraps err with an operation tag, preserving it for errors.Is.
func mlpErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

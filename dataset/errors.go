// SPDX-License-Identifier: MIT
// Package: dataset
//
// errors.go — sentinel errors for the dataset package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Option constructors (WithX) panic on nonsensical values; generators never panic.

package dataset

import (
	"errors"
	"fmt"
)

// ErrTooFewChannels indicates a non-positive channel count.
var ErrTooFewChannels = errors.New("dataset: channels must be > 0")

// ErrNilTarget indicates a nil target function.
var ErrNilTarget = errors.New("dataset: target function is nil")

// Method tags used in error wrappers.
const (
	methodNew  = "New"
	methodNext = "Generator.Next"
)

// wrapf attaches method context to err while preserving errors.Is.
func wrapf(method string, err error) error {
	return fmt.Errorf("dataset: %s: %w", method, err)
}

// SPDX-License-Identifier: MIT
// Package: train
//
// errors.go — sentinel errors and wrappers for the training loop.

package train

import (
	"errors"
	"fmt"
)

var (
	// ErrNilModel indicates Run was called without a model.
	ErrNilModel = errors.New("train: model is nil")

	// ErrNilSource indicates Run was called without a sample source.
	ErrNilSource = errors.New("train: source is nil")
)

const (
	opRun    = "Run"
	opRecord = "TextRecorder.Record"
	opFlush  = "TextRecorder.Flush"
)

// trainErrorf wraps err with the operation tag and, when iter > 0, the iteration.
func trainErrorf(op string, iter int, err error) error {
	if iter > 0 {
		return fmt.Errorf("train: %s: iteration %d: %w", op, iter, err)
	}

	return fmt.Errorf("train: %s: %w", op, err)
}

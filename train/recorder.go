// SPDX-License-Identifier: MIT
// Package: train
//
// recorder.go — per-iteration sinks.
//
// TextRecorder line format (one per iteration, space-separated, trailing space):
//
//	<loss> <x[0]> <y[0]> <ŷ[0]> \n

package train

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/lvnet/matrix"
)

// Recorder consumes training records. Returning an error aborts Run.
type Recorder[T matrix.Float] interface {
	Record(rec Record[T]) error
}

// RecorderFunc adapts a plain function to Recorder.
type RecorderFunc[T matrix.Float] func(rec Record[T]) error

// Record calls f(rec).
func (f RecorderFunc[T]) Record(rec Record[T]) error { return f(rec) }

// TextRecorder writes one text line per record through a buffered writer.
// Call Flush when training is done.
type TextRecorder[T matrix.Float] struct {
	w *bufio.Writer
}

// NewTextRecorder returns a TextRecorder writing to w.
func NewTextRecorder[T matrix.Float](w io.Writer) *TextRecorder[T] {
	return &TextRecorder[T]{w: bufio.NewWriter(w)}
}

// Record writes the loss and the first element of input, target and output.
func (r *TextRecorder[T]) Record(rec Record[T]) error {
	x0, err := first(rec.Input)
	if err != nil {
		return trainErrorf(opRecord, 0, err)
	}
	y0, err := first(rec.Target)
	if err != nil {
		return trainErrorf(opRecord, 0, err)
	}
	yHat0, err := first(rec.Output)
	if err != nil {
		return trainErrorf(opRecord, 0, err)
	}
	if _, err = fmt.Fprintf(r.w, "%g %g %g %g \n", rec.Loss, x0, y0, yHat0); err != nil {
		return trainErrorf(opRecord, 0, err)
	}

	return nil
}

// Flush writes any buffered lines to the underlying writer.
func (r *TextRecorder[T]) Flush() error {
	if err := r.w.Flush(); err != nil {
		return trainErrorf(opFlush, 0, err)
	}

	return nil
}

func first[T matrix.Float](m *matrix.Dense[T]) (T, error) {
	if m == nil {
		return 0, matrix.ErrNilMatrix
	}

	return m.At(0, 0)
}

// Package train_test contains unit tests for the training loop and recorders.
package train_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvnet/dataset"
	"github.com/katalvlaran/lvnet/matrix"
	"github.com/katalvlaran/lvnet/mlp"
	"github.com/katalvlaran/lvnet/train"
)

// zeroModel predicts a zero column and counts calls.
type zeroModel struct {
	forwards, backprops int
	failAt              int
}

func (m *zeroModel) Forward(x *matrix.Dense[float64]) (*matrix.Dense[float64], error) {
	m.forwards++
	return matrix.NewDense[float64](x.Rows(), 1)
}

func (m *zeroModel) Backprop(_ *matrix.Dense[float64]) error {
	m.backprops++
	if m.failAt == m.backprops {
		return errBoom
	}
	return nil
}

// countingSource yields x = [k], y = [k] for k = 1, 2, ...
type countingSource struct{ k int }

func (s *countingSource) Next() (x, y *matrix.Dense[float64], err error) {
	s.k++
	return matrix.NewColumn(float64(s.k)), matrix.NewColumn(float64(s.k)), nil
}

var errBoom = errors.New("boom")

// TestRunSummaryExact: against a zero model the losses are k², so the
// summary is known in closed form.
func TestRunSummaryExact(t *testing.T) {
	m := &zeroModel{}
	sum, err := train.Run[float64](m, &countingSource{},
		train.WithIterations[float64](4), train.WithWindow[float64](2))
	require.NoError(t, err)

	require.Equal(t, 4, m.forwards)
	require.Equal(t, 4, m.backprops)
	require.Equal(t, 4, sum.Iterations)
	require.Equal(t, 1.0, sum.FirstLoss)
	require.Equal(t, 16.0, sum.LastLoss)
	require.Equal(t, 2, sum.Window)
	assert.InDelta(t, 12.5, sum.WindowMean, 1e-12)
	assert.InDelta(t, stat.StdDev([]float64{9, 16}, nil), sum.WindowStd, 1e-12)
	assert.Equal(t, 9.0, sum.WindowMin)
	assert.Equal(t, 16.0, sum.WindowMax)
}

// TestRunDefaults: 1000 iterations and a window spanning all of them.
func TestRunDefaults(t *testing.T) {
	m := &zeroModel{}
	sum, err := train.Run[float64](m, &countingSource{})
	require.NoError(t, err)
	require.Equal(t, train.DefaultIterations, sum.Iterations)
	require.Equal(t, train.DefaultIterations, sum.Window)
	assert.Equal(t, 1.0, sum.WindowMin)
}

// TestRunWindowClamped: a window wider than the run is clamped.
func TestRunWindowClamped(t *testing.T) {
	sum, err := train.Run[float64](&zeroModel{}, &countingSource{},
		train.WithIterations[float64](3), train.WithWindow[float64](10))
	require.NoError(t, err)
	require.Equal(t, 3, sum.Window)
	assert.InDelta(t, (1.0+4+9)/3, sum.WindowMean, 1e-12)
}

// TestRunErrors: nil arguments and mid-run failures are reported with context.
func TestRunErrors(t *testing.T) {
	_, err := train.Run[float64](nil, &countingSource{})
	require.ErrorIs(t, err, train.ErrNilModel)

	_, err = train.Run[float64](&zeroModel{}, nil)
	require.ErrorIs(t, err, train.ErrNilSource)

	m := &zeroModel{failAt: 3}
	sum, err := train.Run[float64](m, &countingSource{}, train.WithIterations[float64](10))
	require.ErrorIs(t, err, errBoom)
	require.Contains(t, err.Error(), "iteration 3")
	require.Equal(t, 2, sum.Iterations)

	rec := train.RecorderFunc[float64](func(r train.Record[float64]) error {
		if r.Iteration == 2 {
			return errBoom
		}
		return nil
	})
	_, err = train.Run[float64](&zeroModel{}, &countingSource{},
		train.WithIterations[float64](5), train.WithRecorder[float64](rec))
	require.ErrorIs(t, err, errBoom)
}

// TestRunShapeMismatch: a source whose targets do not fit the network fails on Backprop.
func TestRunShapeMismatch(t *testing.T) {
	net, err := mlp.New[float64]([]int{1, 2, 2}, mlp.WithSeed(1))
	require.NoError(t, err)
	src, err := dataset.NewSinSquared[float64](1, dataset.WithSeed(1))
	require.NoError(t, err)

	_, err = train.Run[float64](net, src, train.WithIterations[float64](1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestRunRecordsEveryStep: records arrive in order with consistent losses.
func TestRunRecordsEveryStep(t *testing.T) {
	var got []train.Record[float64]
	rec := train.RecorderFunc[float64](func(r train.Record[float64]) error {
		got = append(got, r)
		return nil
	})
	net, err := mlp.New[float64](mlp.HiddenLayers(1, 1, 4, 1), mlp.WithSeed(3), mlp.WithLearningRate(0.5))
	require.NoError(t, err)
	src, err := dataset.NewSinSquared[float64](1, dataset.WithSeed(4))
	require.NoError(t, err)

	sum, err := train.Run[float64](net, src, train.WithIterations[float64](25), train.WithRecorder[float64](rec))
	require.NoError(t, err)
	require.Len(t, got, 25)
	for i, r := range got {
		require.Equal(t, i+1, r.Iteration)
		loss, err := mlp.SquaredError(r.Target, r.Output)
		require.NoError(t, err)
		require.Equal(t, loss, r.Loss)
	}
	require.Equal(t, got[0].Loss, sum.FirstLoss)
	require.Equal(t, got[24].Loss, sum.LastLoss)
}

// TestRunLearnsMonotoneTarget: a small sigmoid network fits a squashed tanh.
func TestRunLearnsMonotoneTarget(t *testing.T) {
	target := func(x float64) float64 { return 0.5 + 0.4*math.Tanh(x) }
	net, err := mlp.New[float64]([]int{1, 4, 1}, mlp.WithSeed(42069), mlp.WithLearningRate(0.5))
	require.NoError(t, err)
	src, err := dataset.New[float64](1, target, dataset.WithSeed(42069))
	require.NoError(t, err)

	const n, w = 4000, 300
	losses := make([]float64, 0, n)
	rec := train.RecorderFunc[float64](func(r train.Record[float64]) error {
		losses = append(losses, r.Loss)
		return nil
	})
	sum, err := train.Run[float64](net, src,
		train.WithIterations[float64](n), train.WithWindow[float64](w), train.WithRecorder[float64](rec))
	require.NoError(t, err)

	early := stat.Mean(losses[:w], nil)
	assert.InDelta(t, stat.Mean(losses[n-w:], nil), sum.WindowMean, 1e-12)
	assert.Less(t, sum.WindowMean, early)
}

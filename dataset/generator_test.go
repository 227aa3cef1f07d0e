// Package dataset_test contains unit tests for sample generators.
package dataset_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvnet/dataset"
	"github.com/katalvlaran/lvnet/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

// TestNewValidation: bad channel counts and nil targets are rejected.
func TestNewValidation(t *testing.T) {
	_, err := dataset.New[float64](0, math.Sin)
	require.ErrorIs(t, err, dataset.ErrTooFewChannels)

	_, err = dataset.New[float64](-3, math.Sin)
	require.ErrorIs(t, err, dataset.ErrTooFewChannels)

	_, err = dataset.New[float64](1, nil)
	require.ErrorIs(t, err, dataset.ErrNilTarget)
}

// TestNextShapesAndRelation: y is sin²(x) element-wise and both are columns.
func TestNextShapesAndRelation(t *testing.T) {
	g, err := dataset.NewSinSquared[float64](4, dataset.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, 4, g.Channels())

	for k := 0; k < 20; k++ {
		x, y, err := g.Next()
		require.NoError(t, err)
		require.Equal(t, 4, x.Rows())
		require.Equal(t, 1, x.Cols())
		require.Equal(t, 4, y.Rows())
		require.Equal(t, 1, y.Cols())

		for i := 0; i < 4; i++ {
			xv, _ := x.At(i, 0)
			yv, _ := y.At(i, 0)
			assert.InDelta(t, math.Pow(math.Sin(xv), 2), yv, 1e-15)
			assert.GreaterOrEqual(t, yv, 0.0)
			assert.LessOrEqual(t, yv, 1.0)
		}
	}
}

// TestNextMatchesRandomScaled: x is exactly Random(rng,in,1)·amplitude on the same stream.
func TestNextMatchesRandomScaled(t *testing.T) {
	g, err := dataset.New[float64](1, math.Cos, dataset.WithRand(rand.New(rand.NewSource(42069))))
	require.NoError(t, err)
	x, _, err := g.Next()
	require.NoError(t, err)

	ref, err := matrix.Random[float64](rand.New(rand.NewSource(42069)), 1, 1)
	require.NoError(t, err)
	require.True(t, matrix.Equal(ref.Scale(3), x))
}

// TestDeterminism: equal seeds give equal streams.
func TestDeterminism(t *testing.T) {
	a, err := dataset.NewSinSquared[float64](2, dataset.WithSeed(3), dataset.WithNoise(0.1))
	require.NoError(t, err)
	b, err := dataset.NewSinSquared[float64](2, dataset.WithSeed(3), dataset.WithNoise(0.1))
	require.NoError(t, err)

	for k := 0; k < 10; k++ {
		xa, ya, err := a.Next()
		require.NoError(t, err)
		xb, yb, err := b.Next()
		require.NoError(t, err)
		require.True(t, matrix.Equal(xa, xb))
		require.True(t, matrix.Equal(ya, yb))
	}
}

// TestAmplitudeMoments: single-channel inputs have std close to the amplitude.
func TestAmplitudeMoments(t *testing.T) {
	g, err := dataset.New[float64](1, math.Sin, dataset.WithSeed(99), dataset.WithAmplitude(2))
	require.NoError(t, err)

	const n = 20000
	xs := make([]float64, n)
	for k := range xs {
		x, _, err := g.Next()
		require.NoError(t, err)
		xs[k], _ = x.At(0, 0)
	}
	mean, std := stat.MeanStdDev(xs, nil)
	assert.InDelta(t, 0, mean, 0.06)
	assert.InDelta(t, 2, std, 0.06)
}

// TestNoiseResidual: with noise, y - f(x) has std close to sigma.
func TestNoiseResidual(t *testing.T) {
	const sigma = 0.25
	g, err := dataset.New[float64](3, math.Sin, dataset.WithSeed(5), dataset.WithNoise(sigma))
	require.NoError(t, err)

	res := make([]float64, 0, 3*5000)
	for k := 0; k < 5000; k++ {
		x, y, err := g.Next()
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			xv, _ := x.At(i, 0)
			yv, _ := y.At(i, 0)
			res = append(res, yv-math.Sin(xv))
		}
	}
	assert.InDelta(t, sigma, stat.StdDev(res, nil), 0.01)
}

// TestFloat32: the generator works for float32 elements.
func TestFloat32(t *testing.T) {
	g, err := dataset.NewSinSquared[float32](1, dataset.WithSeed(1))
	require.NoError(t, err)
	x, y, err := g.Next()
	require.NoError(t, err)
	xv, _ := x.At(0, 0)
	yv, _ := y.At(0, 0)
	s := math.Sin(float64(xv))
	assert.InDelta(t, s*s, float64(yv), 1e-6)
}

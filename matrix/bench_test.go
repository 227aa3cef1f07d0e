// Package matrix_test provides benchmarks for the Dense kernels,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvnet/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{32, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense[float64]
	sinkE error
)

func BenchmarkAdd(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilledDense(b, n, n, 1337)
			B := RandFilledDense(b, n, n, 4242)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM, sinkE = A.Add(B)
			}
		})
	}
}

func BenchmarkHadamard(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilledDense(b, n, n, 11)
			B := RandFilledDense(b, n, n, 22)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM, sinkE = A.Hadamard(B)
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilledDense(b, n, n, 33)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = A.Transpose()
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilledDense(b, n, n, 44)
			B := RandFilledDense(b, n, n, 55)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM, sinkE = A.Mul(B)
			}
		})
	}
}

func BenchmarkRandom(b *testing.B) {
	rng := rand.New(rand.NewSource(66))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkM, sinkE = matrix.Random[float64](rng, 64, 64)
	}
}

package mlp

import (
	"math"

	"github.com/katalvlaran/lvnet/matrix"
)

// Sigmoid returns 1/(1+e^-x).
func Sigmoid[T matrix.Float](x T) T {
	return 1 / (1 + T(math.Exp(-float64(x))))
}

// SigmoidDerivative returns σ'(x) expressed through the activation a = σ(x):
// a·(1−a). It expects the already-activated value, not x.
func SigmoidDerivative[T matrix.Float](a T) T {
	return a * (1 - a)
}

package mlp

import "github.com/katalvlaran/lvnet/matrix"

// SquaredError returns Σ (target − output)² over all elements.
// For single-output networks this is the per-sample squared error the
// training log reports.
func SquaredError[T matrix.Float](target, output *matrix.Dense[T]) (T, error) {
	diff, err := target.Sub(output)
	if err != nil {
		return 0, mlpErrorf(opSquaredError, err)
	}

	return diff.Square().Sum(), nil
}

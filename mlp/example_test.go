package mlp_test

import (
	"fmt"

	"github.com/katalvlaran/lvnet/matrix"
	"github.com/katalvlaran/lvnet/mlp"
)

// ExampleNetwork shows the forward → backprop training cycle on one sample.
func ExampleNetwork() {
	net, err := mlp.New[float64](mlp.HiddenLayers(1, 1, 8, 3), mlp.WithSeed(42069), mlp.WithLearningRate(0.5))
	if err != nil {
		fmt.Println(err)
		return
	}
	x, y := matrix.NewColumn(0.5), matrix.NewColumn(0.2298)

	var first, last float64
	for i := 0; i < 500; i++ {
		yHat, _ := net.Forward(x)
		se, _ := mlp.SquaredError(y, yHat)
		if i == 0 {
			first = se
		}
		last = se
		_ = net.Backprop(y)
	}
	fmt.Println("layers:", net.NumLayers())
	fmt.Println("error decreased:", last < first)

	// Output:
	// layers: 5
	// error decreased: true
}

// ExampleNetwork_BackpropTrace passes the activation trace explicitly.
func ExampleNetwork_BackpropTrace() {
	net, _ := mlp.New[float64]([]int{2, 1}, mlp.WithSeed(1))

	tr, _ := net.ForwardTrace(matrix.NewColumn(0.1, 0.2))
	fmt.Println("activations:", tr.Len())

	err := net.BackpropTrace(tr, matrix.NewColumn(1.0, 0.0))
	fmt.Println(err)

	// Output:
	// activations: 2
	// Network.BackpropTrace: ValidateColumn: (2,1) vs (1,1): matrix: dimension mismatch
}

// Package lvnet is a small, dependency-light toolkit for dense linear algebra
// and multi-layer perceptrons in pure Go.
//
// Subpackages:
//
//	matrix/   — generic row-major Dense[T] with shape-checked algebra and Gaussian init
//	mlp/      — sigmoid Network[T]: Forward, Backprop, explicit Trace variants, SquaredError
//	dataset/  — deterministic (x, f(x)) sample generators, including sin²
//	train/    — online training loop, loss summaries, text loss log
//	cmd/      — mlpdemo, the end-to-end sin² training demo
//
// Quick start:
//
//	net, _ := mlp.New[float64](mlp.HiddenLayers(1, 1, 8, 3), mlp.WithSeed(42), mlp.WithLearningRate(0.5))
//	src, _ := dataset.NewSinSquared[float64](1, dataset.WithSeed(43))
//	sum, _ := train.Run[float64](net, src, train.WithIterations[float64](1000))
//	fmt.Println(sum.FirstLoss, sum.LastLoss)
//
// Every operation returns errors wrapping package sentinels; branch with errors.Is.
// Randomness is always injectable through WithSeed or WithRand.
package lvnet

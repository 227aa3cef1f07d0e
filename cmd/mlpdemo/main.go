// Command mlpdemo trains a sigmoid MLP on y = sin²(x) and writes a loss log.
//
// Usage:
//
//	mlpdemo [-iterations 1000] [-lr 0.5] [-hidden-units 8] [-hidden-layers 3] \
//	        [-in 1] [-out 1] [-seed 42069] [-log data.txt]
//
// Every iteration appends "<loss> <x0> <y0> <yhat0> " to the log file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/lvnet/dataset"
	"github.com/katalvlaran/lvnet/mlp"
	"github.com/katalvlaran/lvnet/train"
)

type options struct {
	iterations   int
	lr           float64
	hiddenUnits  int
	hiddenLayers int
	in, out      int
	seed         int64
	logPath      string
}

func main() {
	var o options
	flag.IntVar(&o.iterations, "iterations", 1000, "number of training steps")
	flag.Float64Var(&o.lr, "lr", 0.5, "learning rate")
	flag.IntVar(&o.hiddenUnits, "hidden-units", 8, "units per hidden layer")
	flag.IntVar(&o.hiddenLayers, "hidden-layers", 3, "number of hidden layers")
	flag.IntVar(&o.in, "in", 1, "input channels")
	flag.IntVar(&o.out, "out", 1, "output channels")
	flag.Int64Var(&o.seed, "seed", 42069, "random seed for weights and samples")
	flag.StringVar(&o.logPath, "log", "data.txt", "loss log path")
	flag.Parse()

	if err := run(o); err != nil {
		log.Fatalf("mlpdemo: %v", err)
	}
}

func run(o options) error {
	if o.in != o.out {
		return fmt.Errorf("sin² targets need -in == -out, got %d and %d", o.in, o.out)
	}
	if o.iterations <= 0 || o.lr <= 0 {
		return fmt.Errorf("-iterations and -lr must be > 0")
	}

	units := mlp.HiddenLayers(o.in, o.out, o.hiddenUnits, o.hiddenLayers)
	// Weights and samples draw from separate seeded streams.
	net, err := mlp.New[float32](units, mlp.WithSeed(o.seed), mlp.WithLearningRate(o.lr))
	if err != nil {
		return err
	}
	src, err := dataset.NewSinSquared[float32](o.in, dataset.WithSeed(o.seed+1))
	if err != nil {
		return err
	}

	f, err := os.Create(o.logPath)
	if err != nil {
		return err
	}
	defer f.Close()

	rec := train.NewTextRecorder[float32](f)
	window := o.iterations / 10
	if window == 0 {
		window = 1
	}
	sum, err := train.Run[float32](net, src,
		train.WithIterations[float32](o.iterations),
		train.WithWindow[float32](window),
		train.WithRecorder[float32](rec),
	)
	if err != nil {
		return err
	}
	if err = rec.Flush(); err != nil {
		return err
	}

	log.Printf("units=%v lr=%g iterations=%d", units, o.lr, sum.Iterations)
	log.Printf("loss: first=%.6f last=%.6f", sum.FirstLoss, sum.LastLoss)
	log.Printf("last %d: mean=%.6f std=%.6f min=%.6f max=%.6f",
		sum.Window, sum.WindowMean, sum.WindowStd, sum.WindowMin, sum.WindowMax)
	log.Printf("log written to %s", o.logPath)

	return nil
}

// Package train drives online training of a model against a sample source.
//
// Run alternates Forward and Backprop for a fixed number of iterations,
// scoring every prediction with mlp.SquaredError before the update lands.
// Each step is handed to an optional Recorder; TextRecorder writes the
// plain-text loss log consumed by plotting scripts.
//
// The package knows nothing about network internals: any type with
// Forward/Backprop satisfies Model, and any (x, y) stream satisfies Source.
package train

// Package dataset generates deterministic (input, target) column pairs for
// training and demos.
//
// A Generator draws x from matrix.Random scaled by an amplitude and maps it
// element-wise through a pure target function f, optionally adding Gaussian
// noise to the target. NewSinSquared reproduces the demo task y = sin²(x)
// with x ~ N(0, 3²) for a single input channel.
//
// Determinism: WithSeed or WithRand fixes the whole sample stream.
package dataset

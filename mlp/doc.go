// Package mlp implements a fully-connected feed-forward network (multi-layer
// perceptron) with sigmoid activations, trained one sample at a time by
// error backpropagation with a fixed learning rate.
//
// A Network is sized from a list of layer widths [in, h1, ..., out]. Layer i
// owns a weight matrix of shape (width[i+1], width[i]) and a bias column of
// shape (width[i+1], 1), both drawn from matrix.Random.
//
// Two call styles are offered:
//
//	// cached: Forward stores the activations, Backprop consumes them.
//	yHat, err := net.Forward(x)
//	err = net.Backprop(y)
//
//	// explicit: the activation trace is a value passed between the calls.
//	tr, err := net.ForwardTrace(x)
//	err = net.BackpropTrace(tr, y)
//
// A Network is not safe for concurrent use; it mutates its parameters in place.
package mlp

// Package network implements a fully connected feed-forward network with
// online back-propagation and plain-text weight persistence.
//
// A network is built from a layer-size sequence (input first, output last)
// and one activation.Func shared by every layer:
//
//	net, err := network.New([]int{784, 256, 10}, activation.Sigmoid{}, network.WithSeed(7))
//	out, err := net.Analyze(pixels)        // raw output layer
//	err = net.BackPropagate(label, 0.1)    // one gradient step on the cached pass
//
// Analyze caches every pre-activation sum and activation; BackPropagate
// consumes that cache, so a training step is always the pair in that order.
// Train bundles the two. Errors are the sentinels in errors.go, wrapped with
// the operation name.
//
// Save/Load use a whitespace-delimited text format (see weights.go). Load
// rebuilds the architecture from the stream and leaves the network untouched
// on any error.
package network

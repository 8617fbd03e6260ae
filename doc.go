// Package neuron is a small, dependency-light engine for fully connected
// feed-forward networks: dense matrices, pluggable activations, online
// back-propagation and a plain-text weights format.
//
// 🚀 What is in the box?
//
//   - Dense matrices: row-major float64 storage, checked shapes, gonum interop
//   - Activations: mod-ReLU (leaky, slope 0.01) and the logistic sigmoid
//   - Networks: Analyze (forward), BackPropagate (one gradient step), Classify
//   - Persistence: whitespace-delimited text, bit-exact float round-trip
//   - Training: online loop with mistakes-only updates and rate decay
//   - Input: a headless drawing canvas with soft-ink falloff
//   - Serving: gin HTTP API plus a websocket drawing session
//
// Under the hood, everything is organized in flat subpackages:
//
//	matrix/      Dense type, Mul/Transpose/Add/Sub/Scale/Hadamard/Outer
//	activation/  Func interface, ModReLU, Sigmoid, ByName
//	network/     layered network, forward cache, back-propagation, weights I/O
//	canvas/      rows×cols drawing surface, pointer mapping, stroke search
//	dataset/     labelled samples: text, CSV and MNIST IDX readers
//	trainer/     epoch loop, schedules, Evaluate, confusion matrix
//	server/      HTTP + websocket front end over one shared network
//	cmd/neuron/  train, eval, predict and serve from the command line
//
// Quick example:
//
//	net, _ := network.New([]int{784, 256, 10}, activation.Sigmoid{})
//	class, out, _ := net.Classify(pixels)   // forward pass, cached
//	_ = net.BackPropagate(label, 0.1)       // one step toward one-hot(label)
//	_ = net.SaveFile("weights.txt")
//
// A Network is not safe for concurrent use; the server package shows the
// one-mutex pattern for sharing it.
//
//	go get github.com/katalvlaran/neuron
package neuron

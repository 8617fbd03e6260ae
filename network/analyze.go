// SPDX-License-Identifier: MIT
// Package: network
//
// analyze.go: forward inference.

package network

import (
	"fmt"

	"github.com/katalvlaran/neuron/activation"
	"github.com/katalvlaran/neuron/matrix"
	"gonum.org/v1/gonum/floats"
)

// Analyze runs a forward pass and returns the raw output-layer activations.
// No normalisation is applied; the output is not a probability distribution.
//
// Implementation:
//   - Stage 1: validate len(input) == sizes[0]; A_0 = input.
//   - Stage 2: for each transition S_k = W_k·A_k + b_k, A_{k+1} = f(S_k).
//
// The sums and activations are cached for the next BackPropagate.
//
// Errors:
//   - ErrInputSize (also matches matrix.ErrDimensionMismatch).
//
// Complexity:
//   - Time O(Σ s_k*s_{k+1}).
func (n *Network) Analyze(input []float64) ([]float64, error) {
	n.primed = false
	if len(input) != n.sizes[0] {
		return nil, netErrorf(opAnalyze, fmt.Errorf("%d != %d: %w: %w",
			len(input), n.sizes[0], ErrInputSize, matrix.ErrDimensionMismatch))
	}
	if err := n.acts[0].AssignVec(input); err != nil {
		return nil, netErrorf(opAnalyze, err)
	}

	for k, w := range n.weights {
		wa, err := matrix.Mul(w, n.acts[k])
		if err != nil {
			return nil, netErrorf(opAnalyze, err)
		}
		s, err := matrix.Add(wa, n.biases[k])
		if err != nil {
			return nil, netErrorf(opAnalyze, err)
		}
		a, err := activation.ApplyTo(n.act, s)
		if err != nil {
			return nil, netErrorf(opAnalyze, err)
		}
		n.sums[k], n.acts[k+1] = s, a
	}
	n.primed = true

	out, err := n.acts[len(n.acts)-1].Column()
	if err != nil {
		return nil, netErrorf(opAnalyze, err)
	}

	return out, nil
}

// Classify runs Analyze and returns the index of the largest output together
// with the raw output. Ties resolve to the lowest index.
//
// Errors:
//   - as Analyze.
func (n *Network) Classify(input []float64) (int, []float64, error) {
	out, err := n.Analyze(input)
	if err != nil {
		return -1, nil, netErrorf(opClassify, err)
	}

	return ArgMax(out), out, nil
}

// ArgMax returns the index of the largest value in v, the first one on ties,
// or -1 for an empty v.
func ArgMax(v []float64) int {
	if len(v) == 0 {
		return -1
	}

	return floats.MaxIdx(v)
}

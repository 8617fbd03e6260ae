// SPDX-License-Identifier: MIT
// Package: network
//
// network.go: the Network type, construction and read-only accessors.
//
// Layout for L layers (k = 0..L-2 indexes transitions):
//   weights[k] : sizes[k+1] × sizes[k]
//   biases[k]  : sizes[k+1] × 1
//   sums[k]    : sizes[k+1] × 1   (pre-activation, cached by Analyze)
//   acts[k]    : sizes[k] × 1     (k = 0..L-1; acts[0] is the input)

package network

import (
	"fmt"

	"github.com/katalvlaran/neuron/activation"
	"github.com/katalvlaran/neuron/matrix"
)

// Operation tags for netErrorf.
const (
	opNew      = "New"
	opAnalyze  = "Analyze"
	opClassify = "Classify"
	opBackProp = "BackPropagate"
	opCheckNaN = "CheckNaN"
	opWeights  = "Weights"
	opBiases   = "Biases"
	opSave     = "Save"
	opLoad     = "Load"
	opSaveFile = "SaveFile"
	opLoadFile = "LoadFile"
)

// netErrorf wraps err with an operation tag, preserving it for errors.Is.
func netErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Network is a fully connected feed-forward network trained online.
//
// A Network is not safe for concurrent use: Analyze caches the state that
// BackPropagate consumes, so callers sharing one instance must serialise the
// (Analyze, BackPropagate) pair behind their own lock.
type Network struct {
	sizes   []int
	act     activation.Func
	weights []*matrix.Dense
	biases  []*matrix.Dense
	sums    []*matrix.Dense
	acts    []*matrix.Dense
	primed  bool // sums/acts hold a forward pass not yet consumed
}

// New allocates a network for the given layer sizes (input first, output last).
//
// Implementation:
//   - Stage 1: validate sizes and act.
//   - Stage 2: allocate every matrix and fill weights/biases from the options.
//
// Errors:
//   - ErrBadLayout, ErrNilActivation.
//
// Complexity:
//   - Time O(Σ s_k*s_{k+1}), Space the same.
func New(sizes []int, act activation.Func, opts ...Option) (*Network, error) {
	if err := validateSizes(sizes); err != nil {
		return nil, netErrorf(opNew, err)
	}
	if act == nil {
		return nil, netErrorf(opNew, ErrNilActivation)
	}
	cfg := newConfig(opts...)

	n := &Network{act: act}
	if err := n.rebuild(sizes); err != nil {
		return nil, netErrorf(opNew, err)
	}
	for k, w := range n.weights {
		rows := w.Rows()
		w.Apply(func(_, _ int, _ float64) float64 { return cfg.initWeight(rows) })
		n.biases[k].Apply(func(_, _ int, _ float64) float64 { return cfg.initBias() })
	}

	return n, nil
}

// validateSizes checks L >= 2 and every size > 0.
func validateSizes(sizes []int) error {
	if len(sizes) < 2 {
		return fmt.Errorf("%d layers: %w", len(sizes), ErrBadLayout)
	}
	for i, s := range sizes {
		if s <= 0 {
			return fmt.Errorf("layer %d has size %d: %w", i, s, ErrBadLayout)
		}
	}

	return nil
}

// rebuild discards every matrix and allocates zeroed ones for sizes.
// The cached forward pass is invalidated.
func (n *Network) rebuild(sizes []int) error {
	L := len(sizes)
	n.sizes = append([]int(nil), sizes...)
	n.weights = make([]*matrix.Dense, L-1)
	n.biases = make([]*matrix.Dense, L-1)
	n.sums = make([]*matrix.Dense, L-1)
	n.acts = make([]*matrix.Dense, L)
	n.primed = false

	var err error
	for k := 0; k < L-1; k++ {
		if n.weights[k], err = matrix.NewDense(sizes[k+1], sizes[k]); err != nil {
			return err
		}
		if n.biases[k], err = matrix.NewDense(sizes[k+1], 1); err != nil {
			return err
		}
		if n.sums[k], err = matrix.NewDense(sizes[k+1], 1); err != nil {
			return err
		}
	}
	for k := 0; k < L; k++ {
		if n.acts[k], err = matrix.NewDense(sizes[k], 1); err != nil {
			return err
		}
	}

	return nil
}

// Sizes returns a copy of the layer-size sequence.
func (n *Network) Sizes() []int {
	return append([]int(nil), n.sizes...)
}

// Activation returns the activation strategy shared by every layer.
func (n *Network) Activation() activation.Func { return n.act }

// Transitions returns L-1, the number of weight matrices.
func (n *Network) Transitions() int { return len(n.weights) }

// Weights returns a copy of the weight matrix of transition k.
//
// Errors:
//   - ErrLayerIndex.
func (n *Network) Weights(k int) (*matrix.Dense, error) {
	if k < 0 || k >= len(n.weights) {
		return nil, netErrorf(opWeights, fmt.Errorf("k=%d of %d: %w", k, len(n.weights), ErrLayerIndex))
	}

	return n.weights[k].Clone(), nil
}

// Biases returns a copy of the bias column of transition k.
//
// Errors:
//   - ErrLayerIndex.
func (n *Network) Biases(k int) (*matrix.Dense, error) {
	if k < 0 || k >= len(n.biases) {
		return nil, netErrorf(opBiases, fmt.Errorf("k=%d of %d: %w", k, len(n.biases), ErrLayerIndex))
	}

	return n.biases[k].Clone(), nil
}

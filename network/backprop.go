// SPDX-License-Identifier: MIT
// Package: network
//
// backprop.go: one online gradient-descent step on the squared error
// E = Σ_i (t_i - o_i)^2 against a one-hot target.
//
// Notation (k = 0..L-2): δ_k = ∂E/∂S_k.
//   δ_{L-2} = -2(t - o) ⊙ f'(S_{L-2})
//   δ_{k-1} = (W_kᵀ δ_k) ⊙ f'(S_{k-1})
//   W_k -= rate · δ_k A_kᵀ,   b_k -= rate · δ_k
//
// All deltas are computed from the pre-update weights before any matrix is
// written, so a failed step leaves the network untouched.

package network

import (
	"fmt"
	"math"

	"github.com/katalvlaran/neuron/activation"
	"github.com/katalvlaran/neuron/matrix"
)

// BackPropagate applies one gradient step toward the one-hot target at label
// using the forward pass cached by the last Analyze. The cached pass is
// consumed: a second call needs a new Analyze.
//
// Errors:
//   - ErrNoForwardPass, ErrLabelRange, ErrRate.
//
// Complexity:
//   - Time O(Σ s_k*s_{k+1}), Space the same for the new matrices.
func (n *Network) BackPropagate(label int, rate float64) error {
	if !n.primed {
		return netErrorf(opBackProp, ErrNoForwardPass)
	}
	out := n.sizes[len(n.sizes)-1]
	if label < 0 || label >= out {
		return netErrorf(opBackProp, fmt.Errorf("label %d of %d outputs: %w", label, out, ErrLabelRange))
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return netErrorf(opBackProp, fmt.Errorf("rate=%g: %w", rate, ErrRate))
	}

	deltas, err := n.deltas(label)
	if err != nil {
		return netErrorf(opBackProp, err)
	}

	T := len(n.weights)
	newW := make([]*matrix.Dense, T)
	newB := make([]*matrix.Dense, T)
	for k := 0; k < T; k++ {
		grad, err := matrix.Outer(deltas[k], n.acts[k])
		if err != nil {
			return netErrorf(opBackProp, err)
		}
		if grad, err = matrix.Scale(grad, rate); err != nil {
			return netErrorf(opBackProp, err)
		}
		if newW[k], err = matrix.Sub(n.weights[k], grad); err != nil {
			return netErrorf(opBackProp, err)
		}
		step, err := matrix.Scale(deltas[k], rate)
		if err != nil {
			return netErrorf(opBackProp, err)
		}
		if newB[k], err = matrix.Sub(n.biases[k], step); err != nil {
			return netErrorf(opBackProp, err)
		}
	}
	n.weights, n.biases = newW, newB
	n.primed = false

	return nil
}

// deltas returns δ_k for every transition, output first computed, from the
// cached sums and the current weights.
func (n *Network) deltas(label int) ([]*matrix.Dense, error) {
	T := len(n.weights)
	deltas := make([]*matrix.Dense, T)

	target := make([]float64, n.sizes[T])
	target[label] = 1
	diff, err := matrix.SubVec(n.acts[T], target) // o - t
	if err != nil {
		return nil, err
	}
	if diff, err = matrix.Scale(diff, 2); err != nil {
		return nil, err
	}
	fprime, err := activation.DerivativeTo(n.act, n.sums[T-1])
	if err != nil {
		return nil, err
	}
	if deltas[T-1], err = matrix.Hadamard(diff, fprime); err != nil {
		return nil, err
	}

	for k := T - 1; k > 0; k-- {
		wt, err := matrix.Transpose(n.weights[k])
		if err != nil {
			return nil, err
		}
		back, err := matrix.Mul(wt, deltas[k])
		if err != nil {
			return nil, err
		}
		if fprime, err = activation.DerivativeTo(n.act, n.sums[k-1]); err != nil {
			return nil, err
		}
		if deltas[k-1], err = matrix.Hadamard(back, fprime); err != nil {
			return nil, err
		}
	}

	return deltas, nil
}

// Train is the (Analyze, BackPropagate) pair. It returns the class predicted
// before the update.
func (n *Network) Train(input []float64, label int, rate float64) (int, error) {
	class, _, err := n.Classify(input)
	if err != nil {
		return -1, err
	}
	if err = n.BackPropagate(label, rate); err != nil {
		return class, err
	}

	return class, nil
}

// CheckNaN scans weights, biases and cached activations for NaN or ±Inf.
// A development aid; nothing in the training path calls it.
//
// Errors:
//   - ErrNaN (also matches matrix.ErrNaNInf) naming the first bad matrix.
//
// Complexity: O(number of parameters).
func (n *Network) CheckNaN() error {
	check := func(kind string, ms []*matrix.Dense) error {
		for k, m := range ms {
			if err := matrix.ValidateFinite(m); err != nil {
				return netErrorf(opCheckNaN, fmt.Errorf("%s[%d]: %w: %w", kind, k, ErrNaN, err))
			}
		}
		return nil
	}
	if err := check("weights", n.weights); err != nil {
		return err
	}
	if err := check("biases", n.biases); err != nil {
		return err
	}

	return check("activations", n.acts)
}

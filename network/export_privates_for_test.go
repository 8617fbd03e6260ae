// SPDX-License-Identifier: MIT
// Package network: test-only exports.
//
// Lets external tests perturb single parameters for finite-difference checks.

package network

// SetWeight sets W_k[i,j] directly.
func SetWeight(n *Network, k, i, j int, v float64) error { return n.weights[k].Set(i, j, v) }

// SetBias sets b_k[i] directly.
func SetBias(n *Network, k, i int, v float64) error { return n.biases[k].Set(i, 0, v) }

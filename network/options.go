// SPDX-License-Identifier: MIT
// Package: network
//
// options.go: functional options for New.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//     New itself never panics.
//   • Determinism is explicit: WithSeed or WithRand; the default seed is fixed.

package network

import (
	"math"
	"math/rand"
)

// Option customizes New by mutating a config before allocation.
type Option func(*config)

// WithSeed draws initial weights from a new RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand draws initial weights from r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("network: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithUniform sets every weight and bias to v; no RNG is consumed.
// Panics on a non-finite v.
func WithUniform(v float64) Option {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic("network: WithUniform(non-finite)")
	}
	return func(c *config) {
		c.useUniform, c.uniform = true, v
	}
}

// WithBias sets the initial bias of every unit for random initialisation.
// Ignored when WithUniform is also given. Panics on a non-finite v.
func WithBias(v float64) Option {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic("network: WithBias(non-finite)")
	}
	return func(c *config) {
		c.bias = v
	}
}

// SPDX-License-Identifier: MIT
// Package: network
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = rand.New(rand.NewSource(DefaultSeed))
//   • uniform  = off (weights drawn from rng)
//   • bias     = 0.0

package network

import "math/rand"

// DefaultSeed seeds the weight RNG when neither WithSeed nor WithRand is given,
// so two networks built with the same sizes start identical.
const DefaultSeed int64 = 1

// Weight initialisation constants: w = rng.Intn(initLevels)*initStep/(rows+initRowPad).
const (
	initLevels = 50
	initStep   = 0.06
	initRowPad = 15
)

// config aggregates all knobs used by New.
type config struct {
	rng        *rand.Rand
	useUniform bool    // WithUniform given
	uniform    float64 // fill for weights and biases when useUniform
	bias       float64 // bias fill for random init
}

// newConfig applies options in order over the defaults (last wins).
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		rng:  nil,
		bias: 0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return cfg
}

// initWeight draws one initial weight for a matrix with the given row count.
func (c *config) initWeight(rows int) float64 {
	if c.useUniform {
		return c.uniform
	}

	return float64(c.rng.Intn(initLevels)) * initStep / float64(rows+initRowPad)
}

// initBias returns the initial bias value.
func (c *config) initBias() float64 {
	if c.useUniform {
		return c.uniform
	}

	return c.bias
}

// SPDX-License-Identifier: MIT
// Package: trainer
//
// config.go: options and deterministic defaults for Run.
//
// Defaults:
//   • maxEpochs      = 100
//   • target         = 0.98
//   • epochSize      = 0 (one pass over the samples)
//   • schedule       = ExpDecay(0.1, maxEpochs)
//   • mistakesOnly   = true
//   • shuffle        = nil (samples visited in order)
//   • logger         = discard

package trainer

import (
	"log/slog"
	"math/rand"
)

// Defaults.
const (
	DefaultMaxEpochs      = 100
	DefaultTargetAccuracy = 0.98
	DefaultBaseRate       = 0.1
)

// config aggregates all knobs used by Run.
type config struct {
	maxEpochs    int
	target       float64
	epochSize    int
	schedule     Schedule
	mistakesOnly bool
	shuffle      *rand.Rand
	logger       *slog.Logger
	onEpoch      func(EpochStats)
}

// Option customizes Run.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		maxEpochs:    DefaultMaxEpochs,
		target:       DefaultTargetAccuracy,
		mistakesOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.schedule == nil {
		cfg.schedule = ExpDecay(DefaultBaseRate, cfg.maxEpochs)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}

	return cfg
}

// WithMaxEpochs caps the number of epochs. Panics if n <= 0.
func WithMaxEpochs(n int) Option {
	if n <= 0 {
		panic("trainer: WithMaxEpochs(n<=0)")
	}
	return func(c *config) { c.maxEpochs = n }
}

// WithTargetAccuracy stops training after an epoch whose accuracy reaches a.
// Panics unless 0 < a <= 1.
func WithTargetAccuracy(a float64) Option {
	if !(a > 0 && a <= 1) {
		panic("trainer: WithTargetAccuracy(a∉(0,1])")
	}
	return func(c *config) { c.target = a }
}

// WithEpochSize sets the number of samples per epoch; 0 means one pass.
// Panics if n < 0.
func WithEpochSize(n int) Option {
	if n < 0 {
		panic("trainer: WithEpochSize(n<0)")
	}
	return func(c *config) { c.epochSize = n }
}

// WithSchedule sets the learning-rate schedule. Panics on nil.
func WithSchedule(s Schedule) Option {
	if s == nil {
		panic("trainer: WithSchedule(nil)")
	}
	return func(c *config) { c.schedule = s }
}

// WithMistakesOnly selects whether correctly classified samples are skipped
// (true, the default) or also back-propagated.
func WithMistakesOnly(on bool) Option {
	return func(c *config) { c.mistakesOnly = on }
}

// WithShuffle reshuffles a private copy of the samples with r before every
// pass. Panics on nil.
func WithShuffle(r *rand.Rand) Option {
	if r == nil {
		panic("trainer: WithShuffle(nil)")
	}
	return func(c *config) { c.shuffle = r }
}

// WithLogger reports one Info record per epoch. nil means discard.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithOnEpoch calls fn after every epoch, e.g. to checkpoint weights.
// Panics on nil.
func WithOnEpoch(fn func(EpochStats)) Option {
	if fn == nil {
		panic("trainer: WithOnEpoch(nil)")
	}
	return func(c *config) { c.onEpoch = fn }
}

// SPDX-License-Identifier: MIT
// Package: server
//
// options.go: functional options for New.
//
// Defaults:
//   • logger       = discard
//   • weightsPath  = "" (save/load endpoints answer 409)
//   • canvas       = 28×28, canvas.DefaultOptions()
//   • defaultRate  = 0.1

package server

import (
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/neuron/canvas"
)

// Defaults.
const (
	DefaultCanvasRows = 28
	DefaultCanvasCols = 28
	DefaultRate       = 0.1
)

type config struct {
	logger      *slog.Logger
	weightsPath string
	rows, cols  int
	canvasOpts  canvas.Options
	defaultRate float64
	pongWait    time.Duration
}

// Option customizes New.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		rows:        DefaultCanvasRows,
		cols:        DefaultCanvasCols,
		canvasOpts:  canvas.DefaultOptions(),
		defaultRate: DefaultRate,
		pongWait:    pongWait,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}

	return cfg
}

// WithLogger sets the request and session logger. nil means discard.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithWeightsPath enables POST /v1/weights/save and /v1/weights/load on path.
func WithWeightsPath(path string) Option {
	return func(c *config) { c.weightsPath = path }
}

// WithCanvas sets the size and options of every websocket drawing session.
// Panics unless rows and cols are positive.
func WithCanvas(rows, cols int, opts canvas.Options) Option {
	if rows <= 0 || cols <= 0 {
		panic("server: WithCanvas(rows<=0 || cols<=0)")
	}
	return func(c *config) {
		c.rows, c.cols, c.canvasOpts = rows, cols, opts
	}
}

// WithDefaultRate sets the learning rate used when a train request omits one.
// Panics on a non-finite or non-positive r.
func WithDefaultRate(r float64) Option {
	if !(r > 0) || math.IsInf(r, 0) {
		panic("server: WithDefaultRate(r<=0)")
	}
	return func(c *config) { c.defaultRate = r }
}

// SPDX-License-Identifier: MIT
// Package: trainer
//
// trainer.go: the online training loop and evaluation.

package trainer

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/neuron/dataset"
	"github.com/katalvlaran/neuron/matrix"
	"gonum.org/v1/gonum/floats"
)

// Classifier is the inference half of a network.
type Classifier interface {
	Classify(input []float64) (int, []float64, error)
}

// Learner is a Classifier that can take a gradient step on its last pass.
type Learner interface {
	Classifier
	BackPropagate(label int, rate float64) error
}

// EpochStats summarises one epoch.
type EpochStats struct {
	Epoch    int
	Good     int
	Total    int
	Accuracy float64
	Rate     float64
	Steps    int // back-propagation steps taken
	Elapsed  time.Duration
}

// Report is the outcome of Run.
type Report struct {
	Epochs       int
	Accuracy     float64 // last completed epoch
	BestAccuracy float64
	Converged    bool // target accuracy reached
	Steps        int
	History      []EpochStats
}

// Run trains net online over samples, one (Classify, BackPropagate) pair at
// a time, cycling through the samples until MaxEpochs epochs have completed
// or an epoch reaches the target accuracy.
//
// ctx is checked before every sample; on cancellation the partial Report is
// returned with ctx.Err().
//
// Errors:
//   - ErrNoSamples; any error from net (wrapped with the sample index).
func Run(ctx context.Context, net Learner, samples []dataset.Sample, opts ...Option) (Report, error) {
	var rep Report
	if len(samples) == 0 {
		return rep, fmt.Errorf("Run: %w", ErrNoSamples)
	}
	cfg := newConfig(opts...)
	epochSize := cfg.epochSize
	if epochSize == 0 {
		epochSize = len(samples)
	}

	order := samples
	if cfg.shuffle != nil {
		order = append([]dataset.Sample(nil), samples...)
		dataset.Shuffle(order, cfg.shuffle)
	}

	var (
		next  int
		cur   = EpochStats{Rate: cfg.schedule(0)}
		start = time.Now()
	)
	for rep.Epochs < cfg.maxEpochs {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		s := order[next]
		idx := next
		if next++; next == len(order) {
			next = 0
			if cfg.shuffle != nil {
				dataset.Shuffle(order, cfg.shuffle)
			}
		}

		class, _, err := net.Classify(s.Input)
		if err != nil {
			return rep, fmt.Errorf("Run: sample %d: %w", idx, err)
		}
		if class == s.Label {
			cur.Good++
		}
		if class != s.Label || !cfg.mistakesOnly {
			if err = net.BackPropagate(s.Label, cur.Rate); err != nil {
				return rep, fmt.Errorf("Run: sample %d: %w", idx, err)
			}
			cur.Steps++
		}
		cur.Total++

		if cur.Total < epochSize {
			continue
		}
		cur.Epoch = rep.Epochs
		cur.Accuracy = float64(cur.Good) / float64(cur.Total)
		cur.Elapsed = time.Since(start)
		rep.record(cur)

		cfg.logger.Info("epoch done",
			"epoch", cur.Epoch,
			"good", cur.Good,
			"total", cur.Total,
			"accuracy", cur.Accuracy,
			"rate", cur.Rate,
			"steps", cur.Steps,
			"elapsed", cur.Elapsed)
		if cfg.onEpoch != nil {
			cfg.onEpoch(cur)
		}
		if cur.Accuracy >= cfg.target {
			rep.Converged = true
			break
		}
		cur = EpochStats{Rate: cfg.schedule(rep.Epochs)}
	}

	return rep, nil
}

// record appends an epoch to the report and refreshes its summary fields.
func (r *Report) record(e EpochStats) {
	r.History = append(r.History, e)
	r.Epochs = len(r.History)
	r.Accuracy = e.Accuracy
	r.Steps += e.Steps

	acc := make([]float64, len(r.History))
	for i, h := range r.History {
		acc[i] = h.Accuracy
	}
	r.BestAccuracy = floats.Max(acc)
}

// Evaluate returns the fraction of samples net classifies correctly.
//
// Errors:
//   - ErrNoSamples; any error from net.
func Evaluate(net Classifier, samples []dataset.Sample) (float64, error) {
	if len(samples) == 0 {
		return 0, fmt.Errorf("Evaluate: %w", ErrNoSamples)
	}
	hits := make([]float64, len(samples))
	for i, s := range samples {
		class, _, err := net.Classify(s.Input)
		if err != nil {
			return 0, fmt.Errorf("Evaluate: sample %d: %w", i, err)
		}
		if class == s.Label {
			hits[i] = 1
		}
	}

	return floats.Sum(hits) / float64(len(samples)), nil
}

// Confusion returns a classes×classes matrix whose (i,j) cell counts samples
// labelled i and classified as j. Labels or predictions outside [0,classes)
// are not counted.
//
// Errors:
//   - ErrClasses, ErrNoSamples; any error from net.
func Confusion(net Classifier, samples []dataset.Sample, classes int) (*matrix.Dense, error) {
	if classes <= 0 {
		return nil, fmt.Errorf("Confusion(%d): %w", classes, ErrClasses)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("Confusion: %w", ErrNoSamples)
	}
	counts := make([][]float64, classes)
	for i := range counts {
		counts[i] = make([]float64, classes)
	}
	for i, s := range samples {
		class, _, err := net.Classify(s.Input)
		if err != nil {
			return nil, fmt.Errorf("Confusion: sample %d: %w", i, err)
		}
		if s.Label < 0 || s.Label >= classes || class < 0 || class >= classes {
			continue
		}
		counts[s.Label][class]++
	}
	m, err := matrix.NewFromRows(counts)
	if err != nil {
		return nil, fmt.Errorf("Confusion: %w", err)
	}

	return m, nil
}

// SPDX-License-Identifier: MIT
// Package: dataset
//
// sample.go: the Sample type and in-memory helpers.

package dataset

import (
	"fmt"
	"math/rand"
)

// Sample is one labelled input vector.
type Sample struct {
	Label int
	Input []float64
}

// Shuffle permutes samples in place using rng (Fisher–Yates).
func Shuffle(samples []Sample, rng *rand.Rand) {
	rng.Shuffle(len(samples), func(i, j int) {
		samples[i], samples[j] = samples[j], samples[i]
	})
}

// Split returns the first ⌊frac·n⌋ samples and the rest. Both halves share
// storage with samples.
//
// Errors:
//   - ErrFraction for frac outside [0,1] or NaN.
func Split(samples []Sample, frac float64) (head, tail []Sample, err error) {
	if !(frac >= 0 && frac <= 1) {
		return nil, nil, fmt.Errorf("Split(%g): %w", frac, ErrFraction)
	}
	cut := int(frac * float64(len(samples)))

	return samples[:cut], samples[cut:], nil
}

// Labels returns the number of distinct classes needed to cover every
// label, i.e. max label + 1 (0 for no samples).
func Labels(samples []Sample) int {
	n := 0
	for _, s := range samples {
		if s.Label+1 > n {
			n = s.Label + 1
		}
	}

	return n
}

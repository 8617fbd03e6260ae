// SPDX-License-Identifier: MIT
// Package: trainer
//
// schedule.go: learning-rate schedules.

package trainer

import "math"

// Schedule maps a zero-based epoch number to a learning rate.
type Schedule func(epoch int) float64

// Constant returns r for every epoch.
func Constant(r float64) Schedule {
	return func(int) float64 { return r }
}

// ExpDecay returns base·exp(-epoch/epochs). Panics if epochs <= 0.
func ExpDecay(base float64, epochs int) Schedule {
	if epochs <= 0 {
		panic("trainer: ExpDecay(epochs<=0)")
	}
	return func(epoch int) float64 {
		return base * math.Exp(-float64(epoch)/float64(epochs))
	}
}

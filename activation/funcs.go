// SPDX-License-Identifier: MIT
// Package: activation
//
// funcs.go: the built-in variants.

package activation

import "math"

// Leak is the slope of ModReLU outside [0,1].
const Leak = 0.01

// ModReLU is the leaky clipped identity.
type ModReLU struct{}

// Apply evaluates f(x).
func (ModReLU) Apply(x float64) float64 {
	switch {
	case x < 0:
		return Leak * x
	case x > 1:
		return 1 + Leak*(x-1)
	default:
		return x
	}
}

// Derivative is piecewise constant: Leak outside [0,1], 1 inside.
func (ModReLU) Derivative(x float64) float64 {
	if x < 0 || x > 1 {
		return Leak
	}

	return 1
}

// Sigmoid is the logistic function.
type Sigmoid struct{}

// Apply evaluates 1/(1+e^-x).
func (Sigmoid) Apply(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Derivative evaluates e^-x/(1+e^-x)^2 in the form s(1-s), which stays
// finite where e^-x overflows.
func (s Sigmoid) Derivative(x float64) float64 {
	v := s.Apply(x)

	return v * (1 - v)
}

// Compile-time conformance.
var (
	_ Func = ModReLU{}
	_ Func = Sigmoid{}
)

// SPDX-License-Identifier: MIT
// Package: activation
//
// activation.go: the Func strategy and its matrix-level helpers.

package activation

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/neuron/matrix"
)

// Canonical names accepted by ByName and returned by Name.
const (
	NameModReLU = "modrelu"
	NameSigmoid = "sigmoid"
)

// Func is a scalar activation and its first derivative.
// Both methods are total over the real line and never fail.
type Func interface {
	Apply(x float64) float64
	Derivative(x float64) float64
}

// ApplyTo returns a new matrix with f applied to every element of m.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil m.
//
// Complexity: O(r*c).
func ApplyTo(f Func, m *matrix.Dense) (*matrix.Dense, error) {
	return matrix.Map(m, f.Apply)
}

// DerivativeTo returns a new matrix with f' applied to every element of m.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil m.
//
// Complexity: O(r*c).
func DerivativeTo(f Func, m *matrix.Dense) (*matrix.Dense, error) {
	return matrix.Map(m, f.Derivative)
}

// ByName resolves a case-insensitive name ("modrelu", "mod-relu", "sigmoid").
func ByName(name string) (Func, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameModReLU, "mod-relu", "mod_relu":
		return ModReLU{}, nil
	case NameSigmoid:
		return Sigmoid{}, nil
	}

	return nil, fmt.Errorf("ByName(%q): %w", name, ErrUnknown)
}

// Name returns the canonical name of a built-in variant, or "" otherwise.
func Name(f Func) string {
	switch f.(type) {
	case ModReLU, *ModReLU:
		return NameModReLU
	case Sigmoid, *Sigmoid:
		return NameSigmoid
	}

	return ""
}

// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with
// call-site context) and tests MUST check them via errors.Is.
// No kernel panics on a user-triggered error condition.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Kernels wrap
// these sentinels with the operation tag and the offending shapes, e.g.
// "Mul: 3x2 * 3x3: matrix: dimension mismatch"; errors.Is keeps working.
//
// All four shape/bounds sentinels belong to the same "incompatible operands"
// class: callers that do not care about the exact reason can test with
// IsShapeError.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value found by ValidateFinite.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// IsShapeError reports whether err belongs to the shape/bounds class
// (invalid dimensions, out of range index, dimension mismatch, nil operand).
func IsShapeError(err error) bool {
	return errors.Is(err, ErrInvalidDimensions) ||
		errors.Is(err, ErrOutOfRange) ||
		errors.Is(err, ErrDimensionMismatch) ||
		errors.Is(err, ErrNilMatrix)
}

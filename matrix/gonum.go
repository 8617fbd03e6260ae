// SPDX-License-Identifier: MIT
// Package: matrix
//
// gonum.go: conversions between *Dense and gonum's mat types.
// Both sides are row-major, so conversion is a single copy; the results
// never share storage with their source.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a new *mat.Dense.
// Returns nil for a nil m.
// Complexity: O(r*c).
func ToGonum(m *Dense) *mat.Dense {
	if m == nil {
		return nil
	}

	return mat.NewDense(m.r, m.c, m.Raw())
}

// FromGonum copies any gonum matrix into a new *Dense.
//
// Errors:
//   - ErrNilMatrix for a nil source; ErrInvalidDimensions for an empty one.
//
// Complexity: O(r*c).
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}
	r, c := src.Dims()
	m, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			m.data[i*c+j] = src.At(i, j)
		}
	}

	return m, nil
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise map and comparison helpers built over the flat buffer.
//   - Map is the single loop every activation function goes through, so the
//     matrix form of a scalar function can never drift from the scalar form.
//
// Determinism & Performance:
//   - Fixed flat 0..n-1 loop order; one output allocation.

package matrix

import "math"

// Map returns a new matrix with out[i,j] = f(m[i,j]); m is not mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Map(m *Dense, f func(float64) float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMap, err)
	}
	res := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for idx, v := range m.data {
		res.data[idx] = f(v)
	}

	return res, nil
}

// Equal reports exact equality of shape and contents (NaN never equals NaN).
// Nil matrices are equal only to each other.
// Complexity: O(r*c).
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for idx := range a.data {
		if a.data[idx] != b.data[idx] {
			return false
		}
	}

	return true
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Negative tolerances are normalized to their absolute value.
//
// Errors:
//   - ErrNaNInf for a non-finite tolerance; ErrNilMatrix; ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf) // invalid tolerance
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	for idx := range a.data {
		if math.Abs(a.data[idx]-b.data[idx]) > atol+rtol*math.Abs(b.data[idx]) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}

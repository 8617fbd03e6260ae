// SPDX-License-Identifier: MIT
// Package matrix provides the dense linear-algebra kernels: element-wise
// addition and subtraction, matrix multiplication, transpose, scalar scaling,
// outer product and the column-minus-vector form. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Every kernel allocates and returns a NEW matrix; operands are never mutated.
//   - Validation is delegated to validators.go; kernels wrap with matrixErrorf.
//
// Determinism:
//   - Fixed loop orders (flat 0..n-1 for element-wise, i→k→j for Mul).

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opSubVec    = "SubVec"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opOuter     = "Outer"
	opMap       = "Map"
)

// matrixErrorf wraps err with an operation tag, preserving the cause via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation and the flat loop.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b *Dense, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// SubVec computes C = A - x where A is a single-column matrix and len(x) == A.Rows.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (A not a column, or length differs).
//
// Complexity:
//   - Time O(r), Space O(r).
func SubVec(a *Dense, x []float64) (*Dense, error) {
	if err := ValidateColumnVec(a, x); err != nil {
		return nil, matrixErrorf(opSubVec, err)
	}
	res := &Dense{r: a.r, c: 1, data: make([]float64, a.r)}
	for i := range res.data {
		res.data[i] = a.data[i] - x[i]
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j over row-major strides; zero A[i,k] are skipped.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res := &Dense{r: aRows, c: bCols, data: make([]float64, aRows*bCols)}

	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	// a.data layout: i*aCols + k
	// b.data layout: k*bCols + j
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix T with T[j,i] = A[i,j].
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return res, nil
}

// Scale returns α*m as a new matrix.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for idx, v := range m.data {
		res.data[idx] = v * alpha
	}

	return res, nil
}

// Hadamard computes the element-wise product C[i,j] = A[i,j]*B[i,j].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Hadamard(a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	res := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	for idx := range res.data {
		res.data[idx] = a.data[idx] * b.data[idx]
	}

	return res, nil
}

// Outer computes the outer product of two column matrices: C[i,j] = u[i]*v[j].
// The result has shape u.Rows × v.Rows. Equivalent to Mul(u, Transpose(v))
// without materializing the transpose.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch when u or v is not a single column.
//
// Complexity:
//   - Time O(n*m), Space O(n*m).
func Outer(u, v *Dense) (*Dense, error) {
	if err := ValidateNotNil(u); err != nil {
		return nil, matrixErrorf(opOuter, err)
	}
	if err := ValidateNotNil(v); err != nil {
		return nil, matrixErrorf(opOuter, err)
	}
	if u.c != 1 || v.c != 1 {
		return nil, matrixErrorf(opOuter,
			fmt.Errorf("%dx%d (x) %dx%d: %w", u.r, u.c, v.r, v.c, ErrDimensionMismatch))
	}
	res := &Dense{r: u.r, c: v.r, data: make([]float64, u.r*v.r)}
	var i, j, base int
	for i = 0; i < u.r; i++ {
		base = i * v.r
		for j = 0; j < v.r; j++ {
			res.data[base+j] = u.data[i] * v.data[j]
		}
	}

	return res, nil
}

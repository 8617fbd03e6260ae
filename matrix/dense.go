// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep copies deep: no two Dense values ever share a backing slice.
//
// Complexity quicksheet:
//   - NewDense/NewFilled: O(r*c); At/Set: O(1); Clone/Assign: O(r*c); AssignVec: O(n).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"        // method tag used in error wrappers
	ctxSet       = "Set"       // method tag used in error wrappers
	ctxAssign    = "Assign"    // method tag used in error wrappers
	ctxAssignVec = "AssignVec" // method tag used in error wrappers
	ctxColumn    = "Column"    // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col) in RxC: %w". The sentinel is preserved.
// Complexity: O(1).
func denseErrorf(method string, m *Dense, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d) in %dx%d: %w", method, row, col, m.r, m.c, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value is not usable; build matrices with NewDense, NewFilled,
// NewColumn or NewFromRows.
type Dense struct {
	r, c int       // row and column counts (>0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	return NewFilled(rows, cols, 0)
}

// NewFilled creates an r×c matrix with every cell set to fill.
//
// Implementation:
//   - Stage 1: validate shape.
//   - Stage 2: allocate buffer; skip the fill loop for the zero value.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFilled(rows, cols int, fill float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewFilled(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	buf := make([]float64, rows*cols) // make() zero-fills deterministically
	if fill != 0 {
		for i := range buf {
			buf[i] = fill
		}
	}

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewColumn builds a len(vec)×1 column matrix holding a copy of vec.
// The result never aliases vec.
//
// Errors:
//   - ErrInvalidDimensions when vec is empty.
//
// Complexity:
//   - Time O(n), Space O(n).
func NewColumn(vec []float64) (*Dense, error) {
	if len(vec) == 0 {
		return nil, fmt.Errorf("NewColumn(len=0): %w", ErrInvalidDimensions)
	}
	buf := make([]float64, len(vec))
	copy(buf, vec)

	return &Dense{r: len(vec), c: 1, data: buf}, nil
}

// NewFromRows builds a matrix from a rectangular [][]float64 literal.
// Handy in tests and examples: NewFromRows([][]float64{{1, 2}, {3, 4}}).
//
// Errors:
//   - ErrInvalidDimensions for empty input or empty first row.
//   - ErrDimensionMismatch for ragged rows.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewFromRows: %w", ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d cols, want %d: %w", i, len(row), c, ErrDimensionMismatch)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, m, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Any float64 is accepted, NaN included; use ValidateFinite to scan for corruption.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, m, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy (new buffer, same shape).
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Assign deep-copies src's shape and contents into m.
// The previous storage of m is released when the shapes differ, reused otherwise.
//
// Errors:
//   - ErrNilMatrix when m or src is nil.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) on reshape.
func (m *Dense) Assign(src *Dense) error {
	if m == nil || src == nil {
		return fmt.Errorf("Dense.%s: %w", ctxAssign, ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	if len(m.data) != len(src.data) {
		m.data = make([]float64, len(src.data))
	}
	m.r, m.c = src.r, src.c
	copy(m.data, src.data)

	return nil
}

// AssignVec reshapes m into a len(vec)×1 column holding vec's values.
// This is a destructive resize, not an elementwise copy: the old shape is discarded.
//
// Errors:
//   - ErrNilMatrix for a nil receiver; ErrInvalidDimensions for an empty vec.
//
// Complexity:
//   - Time O(n), Space O(n) on reshape.
func (m *Dense) AssignVec(vec []float64) error {
	if m == nil {
		return fmt.Errorf("Dense.%s: %w", ctxAssignVec, ErrNilMatrix)
	}
	if len(vec) == 0 {
		return fmt.Errorf("Dense.%s(len=0): %w", ctxAssignVec, ErrInvalidDimensions)
	}
	if len(m.data) != len(vec) {
		m.data = make([]float64, len(vec))
	}
	m.r, m.c = len(vec), 1
	copy(m.data, vec)

	return nil
}

// Column flattens a single-column matrix into a fresh []float64.
//
// Errors:
//   - ErrDimensionMismatch when m has more than one column.
//
// Complexity: O(r).
func (m *Dense) Column() ([]float64, error) {
	if m.c != 1 {
		return nil, fmt.Errorf("Dense.%s: %dx%d is not a column: %w", ctxColumn, m.r, m.c, ErrDimensionMismatch)
	}
	out := make([]float64, m.r)
	copy(out, m.data)

	return out, nil
}

// Raw returns a copy of the row-major backing data.
// Complexity: O(r*c).
func (m *Dense) Raw() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
// Complexity: O(r*c).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, row-major order.
// Complexity: O(r*c).
func (m *Dense) Apply(f func(i, j int, v float64) float64) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}

// String renders rows as lines with comma-separated values, for diagnostics.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Package matrix offers a small, hand-rolled dense matrix for numeric engines.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set that return
//     errors instead of panicking.
//   - Kernels that always allocate a fresh result and never mutate operands:
//     Add, Sub, SubVec, Mul, Transpose, Scale, Hadamard, Outer, Map.
//   - Destructive reshaping assignment: (*Dense).Assign and (*Dense).AssignVec.
//   - Comparison and diagnostics: Equal, AllClose, ValidateFinite.
//   - Interop with gonum: ToGonum, FromGonum.
//
// Every shape or bounds violation is reported with one of the sentinels in
// errors.go, wrapped with the operation name and the offending dimensions:
//
//	_, err := matrix.Mul(a, b)
//	if errors.Is(err, matrix.ErrDimensionMismatch) { ... }
//
// See the examples in this package for usage patterns.
package matrix

// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/neuron/matrix"
	"github.com/stretchr/testify/require"
)

// mustDense allocates an r×c zero matrix or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// mustRows builds a matrix from a row literal or fails the test.
func mustRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(tb, err)

	return m
}

// fillDenseRand fills m with deterministic values in [-1,1) from seed.
func fillDenseRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m.Apply(func(_, _ int, _ float64) float64 { return rng.Float64()*2 - 1 })
}

// requireEqualDense asserts exact shape and content equality with a readable diff.
func requireEqualDense(tb testing.TB, want, got *matrix.Dense) {
	tb.Helper()
	require.NotNil(tb, got)
	wr, wc := want.Shape()
	gr, gc := got.Shape()
	require.Equal(tb, [2]int{wr, wc}, [2]int{gr, gc}, "shape")
	require.Equal(tb, want.Raw(), got.Raw(), "data")
}

// shapes used by table-driven property tests.
var propertyShapes = [][2]int{{1, 1}, {1, 5}, {5, 1}, {3, 3}, {4, 7}, {16, 9}}

// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/neuron/matrix"
	"github.com/stretchr/testify/require"
)

func TestMap_ShapePreservingAndPure(t *testing.T) {
	a := mustRows(t, [][]float64{{1, -2, 3}, {-4, 5, -6}})
	a0 := a.Clone()

	got, err := matrix.Map(a, math.Abs)
	require.NoError(t, err)
	requireEqualDense(t, mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}), got)
	requireEqualDense(t, a0, a)

	_, err = matrix.Map(nil, math.Abs)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestEqual(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}})
	require.True(t, matrix.Equal(a, a.Clone()))
	require.False(t, matrix.Equal(a, mustRows(t, [][]float64{{1}, {2}})))
	require.False(t, matrix.Equal(a, nil))
	require.True(t, matrix.Equal(nil, nil))
}

func TestAllClose(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}})
	b := mustRows(t, [][]float64{{1 + 1e-10, 2 - 1e-10}})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-12)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.AllClose(a, mustDense(t, 2, 1), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestValidateFinite(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, matrix.ValidateFinite(a))

	require.NoError(t, a.Set(1, 0, math.NaN()))
	err := matrix.ValidateFinite(a)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.ErrorContains(t, err, "cell (1,0)")

	require.NoError(t, a.Set(1, 0, math.Inf(-1)))
	require.ErrorIs(t, matrix.ValidateFinite(a), matrix.ErrNaNInf)
}

// SPDX-License-Identifier: MIT
package network_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/neuron/activation"
	"github.com/katalvlaran/neuron/matrix"
	"github.com/katalvlaran/neuron/network"
	"github.com/stretchr/testify/require"
)

// mustNet builds a network or fails the test.
func mustNet(tb testing.TB, sizes []int, act activation.Func, opts ...network.Option) *network.Network {
	tb.Helper()
	n, err := network.New(sizes, act, opts...)
	require.NoError(tb, err)

	return n
}

// squaredError is Σ(t_i - o_i)^2 for a one-hot t at label.
func squaredError(out []float64, label int) float64 {
	var e float64
	for i, o := range out {
		t := 0.0
		if i == label {
			t = 1
		}
		e += (t - o) * (t - o)
	}

	return e
}

func TestNew_BadLayout(t *testing.T) {
	for _, sizes := range [][]int{nil, {3}, {3, 0}, {2, -1, 2}} {
		_, err := network.New(sizes, activation.Sigmoid{})
		require.ErrorIs(t, err, network.ErrBadLayout, "%v", sizes)
	}
	_, err := network.New([]int{2, 2}, nil)
	require.ErrorIs(t, err, network.ErrNilActivation)
}

func TestNew_Shapes(t *testing.T) {
	n := mustNet(t, []int{4, 3, 2}, activation.Sigmoid{})
	require.Equal(t, []int{4, 3, 2}, n.Sizes())
	require.Equal(t, 2, n.Transitions())

	want := [][2]int{{3, 4}, {2, 3}}
	for k, s := range want {
		w, err := n.Weights(k)
		require.NoError(t, err)
		r, c := w.Shape()
		require.Equal(t, s, [2]int{r, c})

		b, err := n.Biases(k)
		require.NoError(t, err)
		r, c = b.Shape()
		require.Equal(t, [2]int{s[0], 1}, [2]int{r, c})
	}

	_, err := n.Weights(2)
	require.ErrorIs(t, err, network.ErrLayerIndex)
	_, err = n.Biases(-1)
	require.ErrorIs(t, err, network.ErrLayerIndex)
}

func TestNew_DefaultInit(t *testing.T) {
	a := mustNet(t, []int{6, 5, 3}, activation.ModReLU{})
	b := mustNet(t, []int{6, 5, 3}, activation.ModReLU{})
	c := mustNet(t, []int{6, 5, 3}, activation.ModReLU{}, network.WithSeed(99))

	differs := false
	for k := 0; k < a.Transitions(); k++ {
		wa, _ := a.Weights(k)
		wb, _ := b.Weights(k)
		wc, _ := c.Weights(k)
		require.True(t, matrix.Equal(wa, wb), "same default seed")
		if !matrix.Equal(wa, wc) {
			differs = true
		}

		limit := 49 * 0.06 / float64(wa.Rows()+15)
		wa.Do(func(i, j int, v float64) bool {
			require.GreaterOrEqual(t, v, 0.0)
			require.LessOrEqual(t, v, limit+1e-15)
			return true
		})

		ba, _ := a.Biases(k)
		ba.Do(func(_, _ int, v float64) bool {
			require.Equal(t, 0.0, v)
			return true
		})
	}
	require.True(t, differs, "different seeds")
}

func TestNew_UniformAndBias(t *testing.T) {
	n := mustNet(t, []int{3, 2}, activation.Sigmoid{}, network.WithUniform(0.25))
	w, _ := n.Weights(0)
	b, _ := n.Biases(0)
	for _, m := range []*matrix.Dense{w, b} {
		m.Do(func(_, _ int, v float64) bool {
			require.Equal(t, 0.25, v)
			return true
		})
	}

	n = mustNet(t, []int{3, 2}, activation.Sigmoid{}, network.WithBias(0.5))
	b, _ = n.Biases(0)
	b.Do(func(_, _ int, v float64) bool {
		require.Equal(t, 0.5, v)
		return true
	})
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { network.WithRand(nil) })
	require.Panics(t, func() { network.WithUniform(math.NaN()) })
}

func TestAccessorsReturnCopies(t *testing.T) {
	n := mustNet(t, []int{2, 2}, activation.Sigmoid{}, network.WithUniform(1))
	w, _ := n.Weights(0)
	require.NoError(t, w.Set(0, 0, 42))
	w2, _ := n.Weights(0)
	v, _ := w2.At(0, 0)
	require.Equal(t, 1.0, v)

	s := n.Sizes()
	s[0] = 100
	require.Equal(t, []int{2, 2}, n.Sizes())
}

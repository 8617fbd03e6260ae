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

func TestAnalyze_InputSizeMismatch(t *testing.T) {
	n := mustNet(t, []int{784, 256, 10}, activation.Sigmoid{})
	_, err := n.Analyze(make([]float64, 10))
	require.ErrorIs(t, err, network.ErrInputSize)
	require.True(t, matrix.IsShapeError(err))
	require.ErrorContains(t, err, "10 != 784")

	_, _, err = n.Classify(nil)
	require.ErrorIs(t, err, network.ErrInputSize)
}

func TestAnalyze_KnownValues(t *testing.T) {
	n := mustNet(t, []int{2, 1}, activation.ModReLU{}, network.WithUniform(0.5))
	out, err := n.Analyze([]float64{0.25, 0.5})
	require.NoError(t, err)
	require.Equal(t, []float64{0.875}, out) // 0.5*0.25 + 0.5*0.5 + 0.5

	n = mustNet(t, []int{2, 2, 1}, activation.Sigmoid{}, network.WithUniform(1))
	out, err = n.Analyze([]float64{1, -1})
	require.NoError(t, err)
	h := 1 / (1 + math.Exp(-1)) // each hidden unit: 1 - 1 + 1
	want := 1 / (1 + math.Exp(-(2*h + 1)))
	require.InDelta(t, want, out[0], 1e-15)
}

func TestAnalyze_MatchesManualForward(t *testing.T) {
	n := mustNet(t, []int{3, 4, 2}, activation.Sigmoid{}, network.WithSeed(5), network.WithBias(0.1))
	x := []float64{0.3, -0.7, 1.2}
	out, err := n.Analyze(x)
	require.NoError(t, err)

	a, err := matrix.NewColumn(x)
	require.NoError(t, err)
	for k := 0; k < n.Transitions(); k++ {
		w, _ := n.Weights(k)
		b, _ := n.Biases(k)
		s, err := matrix.Mul(w, a)
		require.NoError(t, err)
		s, err = matrix.Add(s, b)
		require.NoError(t, err)
		a, err = activation.ApplyTo(activation.Sigmoid{}, s)
		require.NoError(t, err)
	}
	want, err := a.Column()
	require.NoError(t, err)
	require.Equal(t, want, out)
}

func TestClassify_ArgMax(t *testing.T) {
	n := mustNet(t, []int{2, 3}, activation.ModReLU{}, network.WithUniform(0.1))
	class, out, err := n.Classify([]float64{1, 1})
	require.NoError(t, err)
	require.Len(t, out, 3)
	require.Equal(t, 0, class, "ties resolve to the lowest index")

	require.Equal(t, 2, network.ArgMax([]float64{0.1, 0.2, 0.9, 0.9}))
	require.Equal(t, -1, network.ArgMax(nil))
}

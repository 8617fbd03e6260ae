// SPDX-License-Identifier: MIT
// Package: network
//
// weights.go: plain-text weight persistence.
//
// Format (whitespace-delimited):
//
//	<L> <s_0> <s_1> ... <s_{L-1}>
//	<weights of transition 0 row-major> <weights of transition 1> ...
//	<biases of transition 0> <biases of transition 1> ...
//
// Values are written in the shortest form that parses back to the same
// float64, so Save→Load is bit-identical.

package network

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"

	"github.com/katalvlaran/neuron/matrix"
)

// MaxParams bounds the number of weights and biases Load will allocate.
const MaxParams = 1 << 28

// maxLayers is the largest layer count whose transitions fit in MaxParams.
const maxLayers = MaxParams/2 + 1

// Save writes the layer sizes, every weight and every bias to w.
//
// Errors:
//   - any error from w.
//
// Complexity: O(number of parameters).
func (n *Network) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)

	buf = strconv.AppendInt(buf[:0], int64(len(n.sizes)), 10)
	bw.Write(buf)
	for _, s := range n.sizes {
		bw.WriteByte(' ')
		bw.Write(strconv.AppendInt(buf[:0], int64(s), 10))
	}
	bw.WriteByte('\n')

	writeVal := func(v float64, first bool) {
		if !first {
			bw.WriteByte(' ')
		}
		bw.Write(strconv.AppendFloat(buf[:0], v, 'g', -1, 64))
	}
	first := true
	for _, m := range n.weights {
		for _, v := range m.Raw() {
			writeVal(v, first)
			first = false
		}
	}
	bw.WriteByte('\n')
	first = true
	for _, m := range n.biases {
		for _, v := range m.Raw() {
			writeVal(v, first)
			first = false
		}
	}
	bw.WriteByte('\n')

	if err := bw.Flush(); err != nil {
		return netErrorf(opSave, err)
	}

	return nil
}

// Load replaces the architecture, weights and biases with those read from r.
// The stream is parsed into a fresh network first; n is modified only when
// the whole stream is valid. The activation strategy is kept.
//
// Errors:
//   - ErrWeightFormat for a bad token, a bad layout, a short stream or
//     trailing data; read errors from r.
//
// Complexity: O(number of parameters).
func (n *Network) Load(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	tok := 0

	next := func(what string) (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("token %d (%s): unexpected end of data: %w", tok, what, ErrWeightFormat)
		}
		tok++
		return sc.Text(), nil
	}
	nextInt := func(what string) (int, error) {
		s, err := next(what)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("token %d (%s) %q: %w", tok, what, s, ErrWeightFormat)
		}
		return v, nil
	}
	nextFloat := func(what string) (float64, error) {
		s, err := next(what)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("token %d (%s) %q: %w", tok, what, s, ErrWeightFormat)
		}
		return v, nil
	}

	L, err := nextInt("layer count")
	if err != nil {
		return netErrorf(opLoad, err)
	}
	// Every transition costs at least one weight and one bias.
	if L < 2 || L > maxLayers {
		return netErrorf(opLoad, fmt.Errorf("layer count %d: %w: %w", L, ErrWeightFormat, ErrBadLayout))
	}
	// Sizes grow with the tokens actually present, never with the header.
	var sizes []int
	params := 0
	for i := 0; i < L; i++ {
		s, err := nextInt("layer size")
		if err != nil {
			return netErrorf(opLoad, err)
		}
		if s <= 0 || s > MaxParams {
			return netErrorf(opLoad, fmt.Errorf("layer %d size %d: %w: %w", i, s, ErrWeightFormat, ErrBadLayout))
		}
		if i > 0 {
			params += s*sizes[i-1] + s
			if params > MaxParams {
				return netErrorf(opLoad, fmt.Errorf("more than %d parameters: %w", MaxParams, ErrWeightFormat))
			}
		}
		sizes = append(sizes, s)
	}

	fresh := &Network{act: n.act}
	if err = fresh.rebuild(sizes); err != nil {
		return netErrorf(opLoad, err)
	}
	for _, m := range fresh.weights {
		if err = fillFrom(m, nextFloat, "weight"); err != nil {
			return netErrorf(opLoad, err)
		}
	}
	for _, m := range fresh.biases {
		if err = fillFrom(m, nextFloat, "bias"); err != nil {
			return netErrorf(opLoad, err)
		}
	}
	if sc.Scan() {
		return netErrorf(opLoad, fmt.Errorf("trailing token %q after %d values: %w", sc.Text(), tok, ErrWeightFormat))
	}
	if err = sc.Err(); err != nil {
		return netErrorf(opLoad, err)
	}

	*n = *fresh

	return nil
}

// fillFrom sets every cell of m, row-major, from successive read values.
func fillFrom(m *matrix.Dense, read func(string) (float64, error), what string) error {
	var err error
	m.Apply(func(_, _ int, _ float64) float64 {
		if err != nil {
			return 0
		}
		var v float64
		v, err = read(what)
		return v
	})

	return err
}

// SaveFile writes the weights to path, creating or truncating it.
func (n *Network) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return netErrorf(opSaveFile, err)
	}
	if err = n.Save(f); err != nil {
		f.Close()
		return netErrorf(opSaveFile, err)
	}
	if err = f.Close(); err != nil {
		return netErrorf(opSaveFile, err)
	}

	return nil
}

// LoadFile loads weights from path.
//
// Errors:
//   - ErrWeightsNotFound together with fs.ErrNotExist for a missing file;
//   - as Load otherwise.
func (n *Network) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return netErrorf(opLoadFile, fmt.Errorf("%w: %w", ErrWeightsNotFound, err))
		}
		return netErrorf(opLoadFile, err)
	}
	defer f.Close()

	if err = n.Load(f); err != nil {
		return netErrorf(opLoadFile, fmt.Errorf("%s: %w", path, err))
	}

	return nil
}

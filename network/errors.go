// SPDX-License-Identifier: MIT
// Package network: sentinel error set.
//
// Call sites wrap these with netErrorf(op, err) and, where it helps, with the
// offending sizes. Shape-class errors additionally wrap
// matrix.ErrDimensionMismatch so matrix.IsShapeError recognises them.

package network

import "errors"

var (
	// ErrBadLayout indicates fewer than two layers or a non-positive layer size.
	ErrBadLayout = errors.New("network: layer sizes must be >= 2 entries, each > 0")

	// ErrNilActivation indicates New was called without an activation strategy.
	ErrNilActivation = errors.New("network: nil activation")

	// ErrInputSize indicates an input vector whose length differs from layer 0.
	ErrInputSize = errors.New("network: input size mismatch")

	// ErrNoForwardPass indicates BackPropagate was called without a fresh Analyze.
	ErrNoForwardPass = errors.New("network: back-propagation without a preceding forward pass")

	// ErrLabelRange indicates a label outside [0, output layer size).
	ErrLabelRange = errors.New("network: label out of range")

	// ErrRate indicates a NaN or infinite learning rate.
	ErrRate = errors.New("network: learning rate must be finite")

	// ErrNaN signals numeric corruption found by CheckNaN.
	ErrNaN = errors.New("network: invalid numeric state")

	// ErrLayerIndex indicates a transition index outside [0, L-1).
	ErrLayerIndex = errors.New("network: transition index out of range")

	// ErrWeightFormat indicates a malformed or truncated weight stream.
	ErrWeightFormat = errors.New("network: malformed weight data")

	// ErrWeightsNotFound indicates a missing weight file. It is always
	// returned together with fs.ErrNotExist.
	ErrWeightsNotFound = errors.New("network: weight file not found")
)

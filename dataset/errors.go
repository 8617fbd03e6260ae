// SPDX-License-Identifier: MIT
// Package dataset: sentinel error set.

package dataset

import "errors"

var (
	// ErrFormat indicates a malformed record or token.
	ErrFormat = errors.New("dataset: malformed data")

	// ErrMagic indicates an IDX stream with an unexpected magic number.
	ErrMagic = errors.New("dataset: bad IDX magic number")

	// ErrCountMismatch indicates image and label streams of different lengths.
	ErrCountMismatch = errors.New("dataset: image and label counts differ")

	// ErrInputSize indicates a sample whose input length differs from the rest.
	ErrInputSize = errors.New("dataset: input size mismatch")

	// ErrFraction indicates a split fraction outside [0,1].
	ErrFraction = errors.New("dataset: fraction must be within [0,1]")
)

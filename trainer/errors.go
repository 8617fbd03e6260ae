// SPDX-License-Identifier: MIT
// Package trainer: sentinel error set.

package trainer

import "errors"

var (
	// ErrNoSamples indicates an empty training or evaluation set.
	ErrNoSamples = errors.New("trainer: no samples")

	// ErrClasses indicates a non-positive class count for Confusion.
	ErrClasses = errors.New("trainer: class count must be > 0")
)

// SPDX-License-Identifier: MIT
// Package server: sentinel error set.

package server

import "errors"

var (
	// ErrNilNetwork indicates New was called without a network.
	ErrNilNetwork = errors.New("server: nil network")

	// ErrNoWeightsPath indicates a save or load request on a server built
	// without WithWeightsPath.
	ErrNoWeightsPath = errors.New("server: no weights path configured")

	// ErrMissingField indicates a canvas message without a field its op needs.
	ErrMissingField = errors.New("server: missing field")

	// ErrUnknownOp indicates a canvas message with an unsupported op.
	ErrUnknownOp = errors.New("server: unknown canvas op")
)

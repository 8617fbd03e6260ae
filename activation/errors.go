// SPDX-License-Identifier: MIT
// Package activation: sentinel error set.

package activation

import "errors"

// ErrUnknown is returned by ByName for a name no variant answers to.
var ErrUnknown = errors.New("activation: unknown function")

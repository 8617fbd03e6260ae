// Package canvas defines the drawing-surface types, options and constants.
package canvas

import "github.com/katalvlaran/neuron/matrix"

// Connectivity selects which neighbours receive the falloff: orthogonal
// (Conn4) or including diagonals (Conn8). It also drives Strokes.
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell intensities.
const (
	// Ink is the value of an enabled cell.
	Ink = 1.0
	// DefaultFalloff is written to blank neighbours of an enabled cell.
	DefaultFalloff = 0.8
	// NoFalloff disables the soft edge: Enable touches only the inked cell.
	NoFalloff = -1.0
)

// Options contains tunable parameters for a Canvas.
type Options struct {
	// Conn chooses which neighbours receive Falloff.
	Conn Connectivity
	// Falloff is the soft intensity given to blank neighbours.
	// Zero selects DefaultFalloff; a negative value (NoFalloff) disables it.
	Falloff float64
}

// DefaultOptions returns Conn4 with a 0.8 falloff.
func DefaultOptions() Options {
	return Options{
		Conn:    Conn4,
		Falloff: DefaultFalloff,
	}
}

// Canvas is a rows×cols grid of ink intensities in [0,1] backed by a
// matrix.Dense. It is not safe for concurrent use.
type Canvas struct {
	rows, cols      int
	opts            Options
	cells           *matrix.Dense
	neighborOffsets [][2]int
}

// Package canvas is a headless drawing surface that turns strokes on a small
// grid into the flat input vector a network consumes.
//
//   - Enable inks a cell and softens its blank neighbours.
//   - Vector flattens the grid row-major, so a 28×28 canvas feeds a
//     784-input network directly.
//   - Strokes groups fully inked cells into connected regions.
package canvas

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/neuron/matrix"
)

// New constructs a blank rows×cols canvas. A zero opts.Falloff means
// DefaultFalloff, so Options{} behaves like DefaultOptions().
// Returns ErrEmptyCanvas if rows or cols is not positive.
// Complexity: O(rows×cols).
func New(rows, cols int, opts Options) (*Canvas, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrEmptyCanvas)
	}
	cells, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if opts.Falloff == 0 {
		opts.Falloff = DefaultFalloff
	}
	// Precompute neighbour offsets (dr, dc) based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {-1, -1}, {-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {-1, 0}, {0, 1}, {1, 0}}
	}

	return &Canvas{
		rows:            rows,
		cols:            cols,
		opts:            opts,
		cells:           cells,
		neighborOffsets: offsets,
	}, nil
}

// FromVector builds a canvas holding a row-major vector, for display of
// dataset samples. Values are copied as is.
// Returns ErrVectorSize if len(vec) != rows*cols.
func FromVector(rows, cols int, vec []float64, opts Options) (*Canvas, error) {
	c, err := New(rows, cols, opts)
	if err != nil {
		return nil, err
	}
	if len(vec) != rows*cols {
		return nil, fmt.Errorf("%d values for %dx%d: %w", len(vec), rows, cols, ErrVectorSize)
	}
	c.cells.Apply(func(i, j int, _ float64) float64 { return vec[c.index(i, j)] })

	return c, nil
}

// Rows returns the number of rows.
func (c *Canvas) Rows() int { return c.rows }

// Cols returns the number of columns.
func (c *Canvas) Cols() int { return c.cols }

// InBounds reports whether (row,col) lies within the canvas.
// Complexity: O(1).
func (c *Canvas) InBounds(row, col int) bool {
	return row >= 0 && row < c.rows && col >= 0 && col < c.cols
}

// Enable inks (row,col) and sets every blank neighbour to the falloff.
// Out-of-range cells are ignored. Reports whether anything was inked.
// Complexity: O(1).
func (c *Canvas) Enable(row, col int) bool {
	if !c.InBounds(row, col) {
		return false
	}
	_ = c.cells.Set(row, col, Ink)
	if c.opts.Falloff < 0 {
		return true
	}
	for _, d := range c.neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if !c.InBounds(nr, nc) {
			continue
		}
		if v, _ := c.cells.At(nr, nc); v == 0 {
			_ = c.cells.Set(nr, nc, c.opts.Falloff)
		}
	}

	return true
}

// Reset blanks every cell.
func (c *Canvas) Reset() {
	c.cells.Apply(func(_, _ int, _ float64) float64 { return 0 })
}

// Cell returns the intensity at (row,col).
// Errors wrap matrix.ErrOutOfRange.
func (c *Canvas) Cell(row, col int) (float64, error) {
	return c.cells.At(row, col)
}

// Vector flattens the canvas row-major into a fresh slice.
// Complexity: O(rows×cols).
func (c *Canvas) Vector() []float64 {
	return c.cells.Raw()
}

// FromPointer maps window pixel coordinates to the cell under them, for a
// canvas drawn with square blocks of blockSize pixels.
// ok is false when the point is outside the canvas or blockSize <= 0.
func (c *Canvas) FromPointer(x, y, blockSize int) (row, col int, ok bool) {
	if blockSize <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/blockSize, x/blockSize

	return row, col, c.InBounds(row, col)
}

// index maps (row,col) to a row-major index: row*cols + col.
// Complexity: O(1).
func (c *Canvas) index(row, col int) int {
	return row*c.cols + col
}

// Coordinate converts a row-major index back to (row,col).
// Complexity: O(1).
func (c *Canvas) Coordinate(idx int) (row, col int) {
	return idx / c.cols, idx % c.cols
}

// String renders the canvas as text: '#' for ink, '+' for partial, '.' for blank.
func (c *Canvas) String() string {
	var b strings.Builder
	c.cells.Do(func(_, j int, v float64) bool {
		switch {
		case v >= Ink:
			b.WriteByte('#')
		case v > 0:
			b.WriteByte('+')
		default:
			b.WriteByte('.')
		}
		if j == c.cols-1 {
			b.WriteByte('\n')
		}
		return true
	})

	return b.String()
}

package canvas

import "errors"

var (
	// ErrEmptyCanvas indicates a canvas with no rows or no columns.
	ErrEmptyCanvas = errors.New("canvas: canvas must have at least one row and one column")
	// ErrVectorSize indicates a flat vector whose length is not rows*cols.
	ErrVectorSize = errors.New("canvas: vector length does not match canvas size")
)

package board

import "errors"

var (
	// ErrInvalidDimensions is returned when a board cannot be built from the
	// given grid size or cell metrics.
	ErrInvalidDimensions = errors.New("board: invalid dimensions")

	// ErrLayoutDimensions is returned when a level layout does not fit the
	// board or is inconsistent with its declared extent.
	ErrLayoutDimensions = errors.New("board: layout dimensions mismatch")

	// ErrInvalidBrick is returned for bricks with an unknown type or negative life.
	ErrInvalidBrick = errors.New("board: invalid brick")
)

package world

import "errors"

var (
	// ErrInvalidDimensions indicates a grid with no rows or no columns.
	ErrInvalidDimensions = errors.New("world: grid dimensions must be positive")
	// ErrCellCount indicates cell storage that does not match the grid shape.
	ErrCellCount = errors.New("world: cell storage does not match grid shape")
	// ErrBrokenLink indicates a neighbor link that is missing, misplaced or one-sided.
	ErrBrokenLink = errors.New("world: inconsistent neighbor link")
)

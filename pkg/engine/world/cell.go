// Package world provides the heightmap grid primitives: cells with fixed
// coordinates and cardinal neighbor links, and the row-major grid that owns them.
package world

// Cell represents a single heightmap cell in the grid.
type Cell struct {
	// Index is the row-major position, Row*cols + Col.
	Index int

	// Grid position
	Row int
	Col int

	// Height is the terrain elevation. Only the terrain generator mutates it.
	Height int

	// Navigation - links to adjacent cells, nil at the grid edge
	North *Cell
	East  *Cell
	South *Cell
	West  *Cell

	// Search state, owned by whichever expansion pass stamped SearchPhase last.
	Distance        int
	SearchHeuristic int
	SearchPhase     int
}

// NewCell creates a new cell at the given position
func NewCell(index, row, col int) *Cell {
	return &Cell{
		Index: index,
		Row:   row,
		Col:   col,
	}
}

// SearchPriority is the frontier key: Distance + SearchHeuristic.
func (c *Cell) SearchPriority() int {
	return c.Distance + c.SearchHeuristic
}

// GetNeighbor returns the neighboring cell in the given direction
func (c *Cell) GetNeighbor(dir Direction) *Cell {
	if c == nil {
		return nil
	}
	switch dir {
	case North:
		return c.North
	case East:
		return c.East
	case South:
		return c.South
	case West:
		return c.West
	default:
		return nil
	}
}

// SetNeighbor sets the neighboring cell in the given direction
func (c *Cell) SetNeighbor(dir Direction, neighbor *Cell) {
	if c == nil {
		return
	}
	switch dir {
	case North:
		c.North = neighbor
	case East:
		c.East = neighbor
	case South:
		c.South = neighbor
	case West:
		c.West = neighbor
	}
}

// Neighbors returns the four links in North, East, South, West order.
// Missing neighbors are nil.
func (c *Cell) Neighbors() [4]*Cell {
	return [4]*Cell{c.North, c.East, c.South, c.West}
}

// NeighborCount returns the number of non-nil links
func (c *Cell) NeighborCount() int {
	n := 0
	for _, nb := range c.Neighbors() {
		if nb != nil {
			n++
		}
	}
	return n
}

// IsLand reports whether the cell is at or above waterLevel.
func (c *Cell) IsLand(waterLevel int) bool {
	return c.Height >= waterLevel
}

package world

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"
)

// Grid represents the heightmap with encapsulated row-major cell storage.
// Its shape is fixed once built; only cell heights and search state change.
type Grid struct {
	cells []*Cell
	rows  int
	cols  int
}

// NewGrid creates a new grid with the given dimensions
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	return g
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Len returns the total number of cells
func (g *Grid) Len() int {
	return len(g.cells)
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// CellAtIndex returns the cell at a row-major index.
// It panics if index is outside [0, Len()).
func (g *Grid) CellAtIndex(index int) *Cell {
	if index < 0 || index >= len(g.cells) {
		panic(fmt.Sprintf("world: cell index %d out of range [0,%d)", index, len(g.cells)))
	}
	return g.cells[index]
}

// CellAt returns the cell at row, col. It panics if the position is out of bounds.
func (g *Grid) CellAt(row, col int) *Cell {
	if !g.IsValidPosition(row, col) {
		panic(fmt.Sprintf("world: cell (%d,%d) out of bounds for %dx%d grid", row, col, g.rows, g.cols))
	}
	return g.cells[row*g.cols+col]
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(row, col int) *Cell {
	if !g.IsValidPosition(row, col) {
		return nil
	}
	return g.cells[row*g.cols+col]
}

// GetCellRelative returns the cell adjacent to the given cell in the specified direction
func (g *Grid) GetCellRelative(c *Cell, dir Direction) *Cell {
	if c == nil || !dir.IsValid() {
		return nil
	}
	rowRel, colRel := dir.Delta()
	return g.GetCell(c.Row+rowRel, c.Col+colRel)
}

// Distance returns the Euclidean distance between the coordinates of a and b.
func (g *Grid) Distance(a, b *Cell) float64 {
	return math.Hypot(float64(a.Row-b.Row), float64(a.Col-b.Col))
}

// Build allocates rows*cols cells in row-major order and links neighbors.
// Each new cell links back to the cell above it and the cell to its left, so
// every link pair is set exactly once.
func (g *Grid) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.cells = make([]*Cell, 0, rows*cols)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := NewCell(len(g.cells), row, col)
			g.cells = append(g.cells, c)

			if row > 0 {
				g.link(c, North)
			}
			if col > 0 {
				g.link(c, West)
			}
		}
	}
}

func (g *Grid) link(current *Cell, dir Direction) {
	adj := g.GetCellRelative(current, dir)
	if adj == nil {
		return
	}
	current.SetNeighbor(dir, adj)
	adj.SetNeighbor(dir.Opposite(), current)
}

// ForEachCell iterates over all cells in row-major order, calling the provided function for each
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for _, c := range g.cells {
		fn(c.Row, c.Col, c)
	}
}

// Heights returns a copy of all cell heights in row-major order.
func (g *Grid) Heights() []int {
	out := make([]int, len(g.cells))
	for i, c := range g.cells {
		out[i] = c.Height
	}
	return out
}

// Validate checks the cell storage and neighbor links. Every link must point
// at the geometrically adjacent cell and be mirrored by the opposite link on
// that cell; links off the grid edge must be nil.
func (g *Grid) Validate() error {
	if g.rows <= 0 || g.cols <= 0 {
		return ErrInvalidDimensions
	}
	if len(g.cells) != g.rows*g.cols {
		return fmt.Errorf("%w: have %d cells, want %d", ErrCellCount, len(g.cells), g.rows*g.cols)
	}

	seen := mapset.New[*Cell]()
	for i, c := range g.cells {
		if c.Index != i || c.Row != i/g.cols || c.Col != i%g.cols {
			return fmt.Errorf("%w: cell at slot %d reports index %d (%d,%d)", ErrCellCount, i, c.Index, c.Row, c.Col)
		}
		if seen.Has(c) {
			return fmt.Errorf("%w: cell %d stored twice", ErrCellCount, c.Index)
		}
		seen.Put(c)

		for _, dir := range AllDirections() {
			want := g.GetCellRelative(c, dir)
			got := c.GetNeighbor(dir)
			if got != want {
				return fmt.Errorf("%w: cell (%d,%d) %v", ErrBrokenLink, c.Row, c.Col, dir)
			}
			if got != nil && got.GetNeighbor(dir.Opposite()) != c {
				return fmt.Errorf("%w: cell (%d,%d) %v is not mirrored", ErrBrokenLink, c.Row, c.Col, dir)
			}
		}
	}
	return nil
}

package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_RowMajorIndices(t *testing.T) {
	g := NewGrid(3, 4)
	require.Equal(t, 12, g.Len())

	for i := 0; i < g.Len(); i++ {
		c := g.CellAtIndex(i)
		assert.Equal(t, i, c.Index)
		assert.Equal(t, i/4, c.Row)
		assert.Equal(t, i%4, c.Col)
		assert.Same(t, c, g.CellAt(c.Row, c.Col))
		assert.Zero(t, c.Height)
	}
}

func TestBuild_NeighborsSymmetric(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"Single", 1, 1},
		{"Row", 1, 5},
		{"Column", 6, 1},
		{"Square", 5, 5},
		{"Wide", 4, 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(tc.rows, tc.cols)
			require.NoError(t, g.Validate())

			g.ForEachCell(func(row, col int, cell *Cell) {
				interior := row > 0 && row < tc.rows-1 && col > 0 && col < tc.cols-1
				if interior {
					assert.Equal(t, 4, cell.NeighborCount(), "interior cell (%d,%d)", row, col)
				}
				for _, dir := range AllDirections() {
					nb := cell.GetNeighbor(dir)
					if nb == nil {
						assert.Nil(t, g.GetCellRelative(cell, dir), "missing %v link at (%d,%d)", dir, row, col)
						continue
					}
					assert.Same(t, cell, nb.GetNeighbor(dir.Opposite()), "asymmetric %v link at (%d,%d)", dir, row, col)
				}
			})
		})
	}
}

func TestBuild_EdgeLinksNil(t *testing.T) {
	g := NewGrid(3, 3)

	corner := g.CellAt(0, 0)
	assert.Nil(t, corner.North)
	assert.Nil(t, corner.West)
	assert.Same(t, g.CellAt(0, 1), corner.East)
	assert.Same(t, g.CellAt(1, 0), corner.South)

	far := g.CellAt(2, 2)
	assert.Nil(t, far.South)
	assert.Nil(t, far.East)
	assert.Equal(t, 2, far.NeighborCount())
}

func TestBuild_PanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { NewGrid(0, 3) })
	assert.Panics(t, func() { NewGrid(3, -1) })
}

func TestCellLookup_PanicsOutOfRange(t *testing.T) {
	g := NewGrid(2, 3)
	assert.Panics(t, func() { g.CellAtIndex(-1) })
	assert.Panics(t, func() { g.CellAtIndex(6) })
	assert.Panics(t, func() { g.CellAt(2, 0) })
	assert.Panics(t, func() { g.CellAt(0, 3) })
	assert.Nil(t, g.GetCell(-1, 0))
}

func TestDistance(t *testing.T) {
	g := NewGrid(5, 5)
	a := g.CellAt(0, 0)
	b := g.CellAt(3, 4)
	assert.InDelta(t, 5.0, g.Distance(a, b), 1e-9)
	assert.InDelta(t, g.Distance(a, b), g.Distance(b, a), 1e-9)
	assert.Zero(t, g.Distance(a, a))
}

func TestValidate_DetectsBrokenLink(t *testing.T) {
	g := NewGrid(3, 3)
	g.CellAt(1, 1).East = nil
	assert.ErrorIs(t, g.Validate(), ErrBrokenLink)

	g = NewGrid(3, 3)
	g.CellAt(1, 1).North.South = g.CellAt(2, 2)
	assert.ErrorIs(t, g.Validate(), ErrBrokenLink)
}

func TestHeights_Copy(t *testing.T) {
	g := NewGrid(2, 2)
	g.CellAt(1, 0).Height = 7
	h := g.Heights()
	assert.Equal(t, []int{0, 0, 7, 0}, h)

	h[0] = 99
	assert.Zero(t, g.CellAtIndex(0).Height)
}

func TestDirection_Opposite(t *testing.T) {
	for _, dir := range AllDirections() {
		assert.Equal(t, dir, dir.Opposite().Opposite())
		dr, dc := dir.Delta()
		or, oc := dir.Opposite().Delta()
		assert.Equal(t, -dr, or)
		assert.Equal(t, -dc, oc)
	}
	assert.Equal(t, "Unknown", Direction(9).String())
}

func TestSearchPriority(t *testing.T) {
	c := NewCell(0, 0, 0)
	c.Distance = 14
	c.SearchHeuristic = 10
	assert.Equal(t, 24, c.SearchPriority())
	assert.True(t, (&Cell{Height: 30}).IsLand(30))
	assert.False(t, (&Cell{Height: 20}).IsLand(30))
}

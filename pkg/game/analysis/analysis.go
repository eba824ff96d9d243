// Package analysis summarizes a generated heightmap: land and water coverage,
// the height range, and the connected land and water regions.
package analysis

import (
	"math"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"landmass/pkg/engine/world"
)

// Region is a 4-connected group of cells, listed in discovery order.
type Region struct {
	Cells []*world.Cell
}

// Size returns the number of cells in the region
func (r Region) Size() int {
	return len(r.Cells)
}

// Bounds returns the inclusive bounding box of the region.
func (r Region) Bounds() (minRow, minCol, maxRow, maxCol int) {
	minRow, minCol = math.MaxInt, math.MaxInt
	maxRow, maxCol = math.MinInt, math.MinInt
	for _, c := range r.Cells {
		minRow = min(minRow, c.Row)
		minCol = min(minCol, c.Col)
		maxRow = max(maxRow, c.Row)
		maxCol = max(maxCol, c.Col)
	}
	return minRow, minCol, maxRow, maxCol
}

// Stats describes a heightmap relative to a water level.
type Stats struct {
	Cells      int
	Land       int
	Water      int
	MinHeight  int
	MaxHeight  int
	LandRatio  float64
	Islands    []Region // Land regions, largest first
	WaterAreas []Region // Water regions, largest first
}

// Summarize computes Stats for grid at waterLevel.
func Summarize(grid *world.Grid, waterLevel int) Stats {
	s := Stats{
		Cells:     grid.Len(),
		MinHeight: math.MaxInt,
		MaxHeight: math.MinInt,
	}
	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		if cell.IsLand(waterLevel) {
			s.Land++
		} else {
			s.Water++
		}
		s.MinHeight = min(s.MinHeight, cell.Height)
		s.MaxHeight = max(s.MaxHeight, cell.Height)
	})
	if s.Cells > 0 {
		s.LandRatio = float64(s.Land) / float64(s.Cells)
	}

	s.Islands = Regions(grid, func(c *world.Cell) bool { return c.IsLand(waterLevel) })
	s.WaterAreas = Regions(grid, func(c *world.Cell) bool { return !c.IsLand(waterLevel) })
	return s
}

// Regions collects the 4-connected regions of cells matching keep, largest
// first. Regions of equal size keep row-major order of their first cell.
func Regions(grid *world.Grid, keep func(*world.Cell) bool) []Region {
	var regions []Region
	visited := mapset.New[*world.Cell]()

	grid.ForEachCell(func(row, col int, start *world.Cell) {
		if visited.Has(start) || !keep(start) {
			return
		}
		visited.Put(start)
		queue := []*world.Cell{start}
		for qi := 0; qi < len(queue); qi++ {
			for _, n := range queue[qi].Neighbors() {
				if n != nil && !visited.Has(n) && keep(n) {
					visited.Put(n)
					queue = append(queue, n)
				}
			}
		}
		regions = append(regions, Region{Cells: queue})
	})

	sort.SliceStable(regions, func(i, j int) bool {
		return regions[i].Size() > regions[j].Size()
	})
	return regions
}

// Histogram counts cells per height value.
func Histogram(grid *world.Grid) map[int]int {
	h := make(map[int]int)
	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		h[cell.Height]++
	})
	return h
}

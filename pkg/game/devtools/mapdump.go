// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"landmass/pkg/engine/world"
	"landmass/pkg/game/analysis"
	"landmass/pkg/game/generator"
	"landmass/pkg/game/renderer"
)

// DefaultDumpFilename is the file DumpMapToFile writes when given no path.
const DefaultDumpFilename = "map.txt"

// maxListedRegions caps the region listings in a dump.
const maxListedRegions = 20

// WriteMapDump writes a debug dump of a generated map: metadata, legend,
// the full ASCII heightmap, coverage statistics, regions and a height histogram.
// Format is human-readable (sections, key: value, consistent structure).
func WriteMapDump(w io.Writer, grid *world.Grid, cfg generator.Config, report generator.Report) {
	stats := analysis.Summarize(grid, cfg.WaterLevel)

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (heightmap, coverage, regions) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "seed: %d\n", report.Seed)
	fmt.Fprintf(w, "grid_rows: %d\n", grid.Rows())
	fmt.Fprintf(w, "grid_cols: %d\n", grid.Cols())
	fmt.Fprintf(w, "coordinate_system: row,col (0-based, row=y, col=x)\n")
	fmt.Fprintf(w, "water_level: %d\n", cfg.WaterLevel)
	fmt.Fprintf(w, "height_step: %d\n", cfg.HeightStep)
	fmt.Fprintf(w, "land_percentage: %.3f\n", cfg.LandPercentage)
	fmt.Fprintf(w, "chunk_size: %d..%d\n", cfg.ChunkSizeMin, cfg.ChunkSizeMax-1)
	fmt.Fprintf(w, "map_border: x=%d y=%d\n", cfg.MapBorderX, cfg.MapBorderY)
	fmt.Fprintf(w, "passes: %d (raise=%d sink=%d)\n", report.Passes, report.Raises, report.Sinks)
	fmt.Fprintf(w, "land_budget: target=%d remaining=%d incomplete=%v\n", report.TargetBudget, report.RemainingBudget, report.Incomplete)
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, renderer.Legend())
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map (full layout) ---")
	renderer.WriteHeightmap(w, grid, cfg.WaterLevel, 0, false)
	fmt.Fprintln(w, "")

	// --- Coverage ---
	fmt.Fprintln(w, "--- Coverage ---")
	fmt.Fprintf(w, "cells: %d\n", stats.Cells)
	fmt.Fprintf(w, "land: %d\n", stats.Land)
	fmt.Fprintf(w, "water: %d\n", stats.Water)
	fmt.Fprintf(w, "land_ratio: %.3f\n", stats.LandRatio)
	fmt.Fprintf(w, "height_min: %d\n", stats.MinHeight)
	fmt.Fprintf(w, "height_max: %d\n", stats.MaxHeight)
	fmt.Fprintln(w, "")

	writeRegions(w, "Islands", stats.Islands)
	writeRegions(w, "Water bodies", stats.WaterAreas)

	// --- Histogram ---
	fmt.Fprintln(w, "--- Height histogram ---")
	hist := analysis.Histogram(grid)
	heights := make([]int, 0, len(hist))
	for h := range hist {
		heights = append(heights, h)
	}
	sort.Ints(heights)
	for _, h := range heights {
		fmt.Fprintf(w, "  height: %d cells: %d\n", h, hist[h])
	}
}

func writeRegions(w io.Writer, title string, regions []analysis.Region) {
	fmt.Fprintf(w, "%s: %d\n", title, len(regions))
	for i, r := range regions {
		if i == maxListedRegions {
			fmt.Fprintf(w, "  ... %d more\n", len(regions)-maxListedRegions)
			break
		}
		minRow, minCol, maxRow, maxCol := r.Bounds()
		fmt.Fprintf(w, "  size: %d rows: %d..%d cols: %d..%d\n", r.Size(), minRow, maxRow, minCol, maxCol)
	}
	fmt.Fprintln(w, "")
}

// DumpMapToFile writes WriteMapDump output to path (DefaultDumpFilename if
// empty) and returns the absolute path written.
func DumpMapToFile(path string, grid *world.Grid, cfg generator.Config, report generator.Report) (string, error) {
	if grid == nil {
		return "", fmt.Errorf("no grid")
	}
	if path == "" {
		path = DefaultDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	WriteMapDump(f, grid, cfg, report)
	return absPath, f.Close()
}

package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"landmass/pkg/engine/world"
)

// Band is an elevation class relative to the water level.
type Band int

const (
	DeepWater Band = iota
	ShallowWater
	Lowland
	Hills
	Mountains
)

// bandWidth is the height span of the bands next to the water line.
const bandWidth = 20

var bandGlyphs = [...]rune{'~', '-', '.', ':', '^'}

var bandStyles = [...]color.Style{
	{color.FgBlue},
	{color.FgCyan},
	{color.FgGreen},
	{color.FgYellow},
	{color.FgWhite, color.OpBold},
}

// Classify returns the band of height h for the given water level.
func Classify(h, waterLevel int) Band {
	switch {
	case h < waterLevel-bandWidth:
		return DeepWater
	case h < waterLevel:
		return ShallowWater
	case h < waterLevel+bandWidth:
		return Lowland
	case h < waterLevel+2*bandWidth:
		return Hills
	default:
		return Mountains
	}
}

// Glyph returns the plain preview character for height h.
func Glyph(h, waterLevel int) rune {
	return bandGlyphs[Classify(h, waterLevel)]
}

// Legend describes the preview characters.
func Legend() string {
	return "~ = deep water  - = shallow water  . = lowland  : = hills  ^ = mountains"
}

// sampleStep returns the stride that fits n cells into limit columns.
func sampleStep(n, limit int) int {
	if limit <= 0 || n <= limit {
		return 1
	}
	return (n + limit - 1) / limit
}

// WriteHeightmap draws grid as colored glyphs, one line per sampled row.
// Grids wider than maxCols are sampled with an even stride in both axes.
// Colors are omitted when colored is false.
func WriteHeightmap(w io.Writer, grid *world.Grid, waterLevel, maxCols int, colored bool) {
	step := sampleStep(grid.Cols(), maxCols)
	var line strings.Builder
	for row := 0; row < grid.Rows(); row += step {
		line.Reset()
		for col := 0; col < grid.Cols(); col += step {
			h := grid.CellAt(row, col).Height
			b := Classify(h, waterLevel)
			if colored {
				line.WriteString(bandStyles[b].Sprint(string(bandGlyphs[b])))
			} else {
				line.WriteRune(bandGlyphs[b])
			}
		}
		fmt.Fprintln(w, line.String())
	}
}

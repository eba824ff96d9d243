// Package export turns a generated grid into the flat per-cell record list
// consumed by map viewers, and writes it as JSON or as a JavaScript
// variable assignment.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"landmass/pkg/engine/world"
)

// ErrUnknownFormat indicates an unsupported output format name.
var ErrUnknownFormat = errors.New("export: unknown format")

// DefaultVariable is the variable name used by the JS format.
const DefaultVariable = "data"

// Record is one cell of the exported map. X is the column, Y the row.
type Record struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Height int `json:"height"`
}

// Format selects the output encoding.
type Format string

const (
	// FormatJSON writes a bare JSON array.
	FormatJSON Format = "json"
	// FormatJS writes `var data = [...]` so a page can load the map with a script tag.
	FormatJS Format = "js"
)

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatJSON, FormatJS:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Records lists every cell of grid in row-major order.
func Records(grid *world.Grid) []Record {
	out := make([]Record, 0, grid.Len())
	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		out = append(out, Record{X: col, Y: row, Height: cell.Height})
	})
	return out
}

// Write encodes records to w in the given format.
func Write(w io.Writer, records []Record, format Format) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}

	switch format {
	case FormatJSON:
	case FormatJS:
		if _, err := fmt.Fprintf(w, "var %s = ", DefaultVariable); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	_, err = w.Write(data)
	return err
}

// WriteFile writes the grid to path and returns the absolute path written.
func WriteFile(path string, grid *world.Grid, format Format) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", absPath, err)
	}
	defer f.Close()

	if err := Write(f, Records(grid), format); err != nil {
		return "", fmt.Errorf("write %s: %w", absPath, err)
	}
	return absPath, f.Close()
}

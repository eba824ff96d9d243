package devtools

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landmass/pkg/engine/world"
	"landmass/pkg/game/generator"
)

func dumpFixture() (*world.Grid, generator.Config, generator.Report) {
	cfg := generator.DefaultConfig()
	cfg.Height, cfg.Width = 3, 4
	g := world.NewGrid(3, 4)
	g.CellAt(0, 0).Height = 30
	g.CellAt(0, 1).Height = 40
	g.CellAt(2, 3).Height = 80
	report := generator.Report{Seed: 7, Passes: 2, Raises: 2, TargetBudget: 3}
	return g, cfg, report
}

func TestWriteMapDump(t *testing.T) {
	g, cfg, report := dumpFixture()

	var buf bytes.Buffer
	WriteMapDump(&buf, g, cfg, report)
	out := buf.String()

	assert.Contains(t, out, "seed: 7\n")
	assert.Contains(t, out, "grid_rows: 3\n")
	assert.Contains(t, out, "grid_cols: 4\n")
	assert.Contains(t, out, "..~~\n~~~~\n~~~^\n")
	assert.Contains(t, out, "land: 3\n")
	assert.Contains(t, out, "Islands: 2\n")
	assert.Contains(t, out, "  size: 2 rows: 0..0 cols: 0..1\n")
	assert.Contains(t, out, "Water bodies: 1\n")
	assert.Contains(t, out, "  height: 0 cells: 9\n")
}

func TestDumpMapToFile(t *testing.T) {
	g, cfg, report := dumpFixture()
	path := filepath.Join(t.TempDir(), "dump.txt")

	written, err := DumpMapToFile(path, g, cfg, report)
	require.NoError(t, err)
	data, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "=== MAP DUMP DEBUG"))

	_, err = DumpMapToFile(path, nil, cfg, report)
	assert.Error(t, err)
}

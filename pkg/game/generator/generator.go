// Package generator shapes heightmaps on a world.Grid. The landmass
// generator repeatedly raises and sinks bounded, roughly circular chunks of
// terrain until a target share of the map is land.
package generator

import (
	"fmt"
	"log/slog"
	"sort"

	"landmass/pkg/engine/world"
)

// GridGenerator is an interface for map generation algorithms
type GridGenerator interface {
	Generate(cfg Config) (*world.Grid, Report, error)
	Name() string
}

// LandmassGenerator builds a fresh grid and runs a TerrainGenerator over it.
type LandmassGenerator struct {
	// Logger receives pass diagnostics; nil means slog.Default().
	Logger *slog.Logger
}

// Name returns the name of this generator
func (g *LandmassGenerator) Name() string {
	return "landmass"
}

// Generate validates cfg, builds a Height x Width grid and creates land on it.
// A Report with Incomplete set is not an error.
func (g *LandmassGenerator) Generate(cfg Config) (*world.Grid, Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, Report{}, err
	}

	grid := world.NewGrid(cfg.Height, cfg.Width)
	tg, err := NewTerrainGenerator(grid, cfg, WithLogger(g.Logger))
	if err != nil {
		return nil, Report{}, err
	}
	return grid, tg.Run(), nil
}

// Available generators
var (
	Landmass = &LandmassGenerator{}
)

// DefaultGenerator is the default map generator
var DefaultGenerator GridGenerator = Landmass

var registry = map[string]GridGenerator{
	Landmass.Name(): Landmass,
}

// Lookup returns the registered generator with the given name.
func Lookup(name string) (GridGenerator, error) {
	gen, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownGenerator, name, Names())
	}
	return gen, nil
}

// Names lists the registered generator names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

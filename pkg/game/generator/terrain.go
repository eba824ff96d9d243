package generator

import (
	"log/slog"
	"math"

	"landmass/pkg/engine/frontier"
	"landmass/pkg/engine/random"
	"landmass/pkg/engine/world"
)

// distanceScale converts Euclidean cell distance into integer priority units.
const distanceScale = 10

// passKind distinguishes the two terrain passes.
type passKind int

const (
	raise passKind = iota
	sink
)

func (k passKind) String() string {
	if k == sink {
		return "sink"
	}
	return "raise"
}

// Option customizes a TerrainGenerator.
type Option func(*TerrainGenerator)

// WithLogger routes pass diagnostics and warnings to l.
func WithLogger(l *slog.Logger) Option {
	return func(t *TerrainGenerator) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithRNG replaces the RNG seeded from Config.RandomSeed.
func WithRNG(r *random.RNG) Option {
	return func(t *TerrainGenerator) {
		if r != nil {
			t.rng = r
		}
	}
}

// TerrainGenerator grows and erodes land on a grid through bounded
// flood-fill passes, each started from a random interior cell.
//
// A pass stamps every cell it discovers with the current phase, so each cell
// is expanded at most once per pass without clearing any state in between.
// Passes share one frontier queue and must run sequentially.
type TerrainGenerator struct {
	grid   *world.Grid
	cfg    Config
	rng    *random.RNG
	logger *slog.Logger

	searchFrontier      *frontier.BucketQueue
	searchFrontierPhase int

	xMin, xMax int
	yMin, yMax int

	raises int
	sinks  int
}

// NewTerrainGenerator validates cfg against grid and prepares a generator.
// cfg.Height and cfg.Width must match the grid shape.
func NewTerrainGenerator(grid *world.Grid, cfg Config, opts ...Option) (*TerrainGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if grid == nil || grid.Rows() != cfg.Height || grid.Cols() != cfg.Width {
		return nil, &ConfigError{Field: "Height/Width", Value: [2]int{cfg.Height, cfg.Width}, Err: ErrInvalidDimensions}
	}

	t := &TerrainGenerator{
		grid:   grid,
		cfg:    cfg,
		rng:    random.New(cfg.RandomSeed),
		logger: slog.Default(),
	}
	t.xMin, t.xMax, t.yMin, t.yMax = cfg.interior()
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Grid returns the grid being shaped.
func (t *TerrainGenerator) Grid() *world.Grid {
	return t.grid
}

// Phase returns the phase stamp of the most recent pass.
func (t *TerrainGenerator) Phase() int {
	return t.searchFrontierPhase
}

func (t *TerrainGenerator) ensureFrontier() {
	if t.searchFrontier == nil {
		t.searchFrontier = frontier.NewBucketQueue(t.grid)
	}
}

// randomCell picks a uniform cell from the seed interior.
func (t *TerrainGenerator) randomCell() *world.Cell {
	row := t.rng.Range(t.yMin, t.yMax)
	col := t.rng.Range(t.xMin, t.xMax)
	return t.grid.CellAt(row, col)
}

// RaiseTerrain lifts up to chunkSize connected cells by one height step and
// returns budget reduced by the number of cells that rose from water to land.
// The pass stops as soon as budget reaches zero.
func (t *TerrainGenerator) RaiseTerrain(chunkSize, budget int) int {
	return t.pass(raise, chunkSize, budget)
}

// SinkTerrain lowers up to chunkSize connected cells by one height step and
// returns budget increased by the number of cells that fell from land to water.
func (t *TerrainGenerator) SinkTerrain(chunkSize, budget int) int {
	return t.pass(sink, chunkSize, budget)
}

func (t *TerrainGenerator) pass(kind passKind, chunkSize, budget int) int {
	t.ensureFrontier()
	t.searchFrontierPhase++
	phase := t.searchFrontierPhase

	first := t.randomCell()
	first.SearchPhase = phase
	first.Distance = 0
	first.SearchHeuristic = 0
	t.searchFrontier.Enqueue(first)

	water := t.cfg.WaterLevel
	size := 0
	for size < chunkSize && t.searchFrontier.Count() > 0 {
		current := t.searchFrontier.Dequeue()
		original := current.Height

		if kind == raise {
			current.Height += t.cfg.HeightStep
			if original < water && current.Height >= water {
				budget--
				if budget == 0 {
					size++
					break
				}
			}
		} else {
			current.Height -= t.cfg.HeightStep
			if original >= water && current.Height < water {
				budget++
			}
		}
		size++

		for _, neighbor := range current.Neighbors() {
			if neighbor == nil || neighbor.SearchPhase >= phase {
				continue
			}
			neighbor.SearchPhase = phase
			neighbor.Distance = int(math.Round(t.grid.Distance(first, neighbor) * distanceScale))
			neighbor.SearchHeuristic = 0
			if t.rng.Chance(t.cfg.JitterProbability) {
				neighbor.SearchHeuristic = t.cfg.JitterBonus
			}
			t.searchFrontier.Enqueue(neighbor)
		}
	}
	t.searchFrontier.Clear()

	if kind == raise {
		t.raises++
	} else {
		t.sinks++
	}
	t.logger.Debug("terrain pass",
		"kind", kind.String(),
		"phase", phase,
		"row", first.Row,
		"col", first.Col,
		"chunk", chunkSize,
		"expanded", size,
		"budget", budget)
	return budget
}

// CreateLand runs raise and sink passes until the land budget, the rounded
// share of cells that should be land, is used up or MaxPasses is reached.
func (t *TerrainGenerator) CreateLand() Report {
	target := int(math.Round(float64(t.grid.Len()) * t.cfg.LandPercentage))
	raises, sinks := t.raises, t.sinks

	landBudget := target
	passes := 0
	for ; landBudget > 0 && passes < t.cfg.MaxPasses; passes++ {
		chunkSize := t.rng.Range(t.cfg.ChunkSizeMin, t.cfg.ChunkSizeMax)
		if t.rng.Chance(t.cfg.SinkProbability) {
			landBudget = t.SinkTerrain(chunkSize, landBudget)
		} else {
			landBudget = t.RaiseTerrain(chunkSize, landBudget)
		}
	}

	report := Report{
		Seed:            t.rng.Seed(),
		Passes:          passes,
		Raises:          t.raises - raises,
		Sinks:           t.sinks - sinks,
		TargetBudget:    target,
		RemainingBudget: landBudget,
		Incomplete:      landBudget > 0,
	}
	if report.Incomplete {
		t.logger.Warn("land budget not used up",
			"passes", passes,
			"target", target,
			"remaining", landBudget)
	}
	return report
}

// Run creates land on the grid and then resets every cell's search phase,
// leaving the grid clean for later passes or export.
func (t *TerrainGenerator) Run() Report {
	t.ensureFrontier()
	report := t.CreateLand()
	t.grid.ForEachCell(func(row, col int, cell *world.Cell) {
		cell.SearchPhase = 0
	})
	return report
}

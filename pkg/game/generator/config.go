package generator

import "errors"

// Config holds every tunable of a terrain generation run.
type Config struct {
	Height int // Grid rows
	Width  int // Grid columns

	LandPercentage float64 // Fraction of cells that should end at or above WaterLevel
	ChunkSizeMin   int     // Inclusive lower bound of cells touched per pass
	ChunkSizeMax   int     // Exclusive upper bound of cells touched per pass
	WaterLevel     int     // Height separating water (below) from land (at or above)

	SinkProbability   float64 // Chance a pass lowers terrain instead of raising it
	JitterProbability float64 // Chance a discovered frontier cell gets JitterBonus added to its priority
	JitterBonus       int     // Priority penalty applied by jitter

	MapBorderX int // Columns excluded from seed selection on the left and right
	MapBorderY int // Rows excluded from seed selection on the top and bottom

	HeightStep int   // Height change applied to each cell a pass expands
	MaxPasses  int   // Hard cap on raise/sink passes per CreateLand
	RandomSeed int64 // Seed for the generation RNG
}

// DefaultConfig returns the stock configuration: a 100x100 map, 70% land.
func DefaultConfig() Config {
	return Config{
		Height:            100,
		Width:             100,
		LandPercentage:    0.7,
		ChunkSizeMin:      30,
		ChunkSizeMax:      500,
		WaterLevel:        30,
		SinkProbability:   0.2,
		JitterProbability: 0.5,
		JitterBonus:       10,
		MapBorderX:        10,
		MapBorderY:        10,
		HeightStep:        10,
		MaxPasses:         10000,
		RandomSeed:        42,
	}
}

// Validate reports every invalid field, joined. A nil result means the
// configuration can be generated.
func (c Config) Validate() error {
	var errs []error
	reject := func(field string, value any, err error) {
		errs = append(errs, &ConfigError{Field: field, Value: value, Err: err})
	}

	if c.Height <= 0 {
		reject("Height", c.Height, ErrInvalidDimensions)
	}
	if c.Width <= 0 {
		reject("Width", c.Width, ErrInvalidDimensions)
	}
	if c.Width > 0 && (c.MapBorderX < 0 || 2*c.MapBorderX >= c.Width) {
		reject("MapBorderX", c.MapBorderX, ErrEmptyInterior)
	}
	if c.Height > 0 && (c.MapBorderY < 0 || 2*c.MapBorderY >= c.Height) {
		reject("MapBorderY", c.MapBorderY, ErrEmptyInterior)
	}
	if c.ChunkSizeMin < 1 || c.ChunkSizeMin >= c.ChunkSizeMax {
		reject("ChunkSizeMin", c.ChunkSizeMin, ErrInvalidChunkRange)
	}
	if c.LandPercentage < 0 || c.LandPercentage > 1 {
		reject("LandPercentage", c.LandPercentage, ErrInvalidLandPercentage)
	}
	if c.SinkProbability < 0 || c.SinkProbability > 1 {
		reject("SinkProbability", c.SinkProbability, ErrInvalidProbability)
	}
	if c.JitterProbability < 0 || c.JitterProbability > 1 {
		reject("JitterProbability", c.JitterProbability, ErrInvalidProbability)
	}
	if c.JitterBonus < 0 {
		reject("JitterBonus", c.JitterBonus, ErrInvalidStep)
	}
	if c.HeightStep <= 0 {
		reject("HeightStep", c.HeightStep, ErrInvalidStep)
	}
	if c.MaxPasses <= 0 {
		reject("MaxPasses", c.MaxPasses, ErrInvalidStep)
	}

	return errors.Join(errs...)
}

// interior returns the half-open seed bounds [xMin,xMax) x [yMin,yMax).
func (c Config) interior() (xMin, xMax, yMin, yMax int) {
	return c.MapBorderX, c.Width - c.MapBorderX, c.MapBorderY, c.Height - c.MapBorderY
}

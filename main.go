package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gookit/color"

	"landmass/pkg/engine/terminal"
	"landmass/pkg/engine/world"
	"landmass/pkg/game/analysis"
	"landmass/pkg/game/devtools"
	"landmass/pkg/game/export"
	"landmass/pkg/game/generator"
	"landmass/pkg/game/renderer"
)

// options holds the command line flags that are not generator settings.
type options struct {
	generator string
	out       string
	format    string
	dump      string
	preview   bool
	locales   string
	lang      string
	verbose   bool
}

// parseFlags binds every flag onto cfg and opts and parses args.
func parseFlags(args []string, cfg *generator.Config, opts *options) error {
	fs := flag.NewFlagSet("landmass", flag.ContinueOnError)

	fs.IntVar(&cfg.Height, "height", cfg.Height, "grid rows")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "grid columns")
	fs.Float64Var(&cfg.LandPercentage, "land", cfg.LandPercentage, "target land fraction (0..1)")
	fs.IntVar(&cfg.ChunkSizeMin, "chunk-min", cfg.ChunkSizeMin, "smallest chunk size (inclusive)")
	fs.IntVar(&cfg.ChunkSizeMax, "chunk-max", cfg.ChunkSizeMax, "largest chunk size (exclusive)")
	fs.IntVar(&cfg.WaterLevel, "water", cfg.WaterLevel, "height separating water from land")
	fs.Float64Var(&cfg.SinkProbability, "sink", cfg.SinkProbability, "chance a pass sinks terrain")
	fs.Float64Var(&cfg.JitterProbability, "jitter", cfg.JitterProbability, "chance a frontier cell is deprioritized")
	fs.IntVar(&cfg.MapBorderX, "border-x", cfg.MapBorderX, "columns excluded from seeding on each side")
	fs.IntVar(&cfg.MapBorderY, "border-y", cfg.MapBorderY, "rows excluded from seeding on each side")
	fs.IntVar(&cfg.HeightStep, "step", cfg.HeightStep, "height change per expanded cell")
	fs.IntVar(&cfg.MaxPasses, "max-passes", cfg.MaxPasses, "cap on raise/sink passes")
	fs.Int64Var(&cfg.RandomSeed, "seed", cfg.RandomSeed, "random seed")

	fs.StringVar(&opts.generator, "generator", generator.DefaultGenerator.Name(), "generator: "+strings.Join(generator.Names(), ", "))
	fs.StringVar(&opts.out, "out", "map.json", "output file, empty to skip")
	fs.StringVar(&opts.format, "format", string(export.FormatJSON), "output format: json or js")
	fs.StringVar(&opts.dump, "dump", "", "write a debug map dump to this file")
	fs.BoolVar(&opts.preview, "preview", false, "print a heightmap preview")
	fs.StringVar(&opts.locales, "locales", "locales", "translation catalog directory")
	fs.StringVar(&opts.lang, "lang", "en_GB", "message language")
	fs.BoolVar(&opts.verbose, "v", false, "log every terrain pass")

	return fs.Parse(args)
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func printSummary(grid *world.Grid, cfg generator.Config, report generator.Report) {
	stats := analysis.Summarize(grid, cfg.WaterLevel)

	renderer.Fprint(os.Stdout, "%s\n", renderer.ColorTitle.Sprint(renderer.Translate("Map summary")))
	renderer.Fprint(os.Stdout, "  %s NUM{%d}\n", renderer.Translate("Passes:"), report.Passes)
	renderer.Fprint(os.Stdout, "  %s NUM{%d} / NUM{%d}\n", renderer.Translate("Land cells:"), stats.Land, stats.Cells)
	renderer.Fprint(os.Stdout, "  %s NUM{%.1f%%}\n", renderer.Translate("Land coverage:"), stats.LandRatio*100)
	renderer.Fprint(os.Stdout, "  %s NUM{%d}\n", renderer.Translate("Islands:"), len(stats.Islands))
	renderer.Fprint(os.Stdout, "  %s NUM{%d}..NUM{%d}\n", renderer.Translate("Height range:"), stats.MinHeight, stats.MaxHeight)
}

func run(args []string) int {
	cfg := generator.DefaultConfig()
	opts := options{}
	if err := parseFlags(args, &cfg, &opts); err != nil {
		return 2
	}

	renderer.InitLocale(opts.locales, opts.lang)
	color.Enable = terminal.IsInteractive()
	logger := newLogger(opts.verbose)

	gen, err := generator.Lookup(opts.generator)
	if err != nil {
		renderer.Fprint(os.Stderr, "ERR{%s} %v\n", renderer.Translate("error:"), err)
		return 2
	}
	format, err := export.ParseFormat(opts.format)
	if err != nil {
		renderer.Fprint(os.Stderr, "ERR{%s} %v\n", renderer.Translate("error:"), err)
		return 2
	}
	if lg, ok := gen.(*generator.LandmassGenerator); ok {
		lg.Logger = logger
	}

	renderer.Fprint(os.Stdout, "%s\n", renderer.Translate("Generating %dx%d map with seed %d", cfg.Height, cfg.Width, cfg.RandomSeed))

	grid, report, err := gen.Generate(cfg)
	if err != nil {
		renderer.Fprint(os.Stderr, "ERR{%s}\n", renderer.Translate("invalid configuration"))
		for _, line := range strings.Split(err.Error(), "\n") {
			fmt.Fprintf(os.Stderr, "  %s\n", line)
		}
		return 2
	}
	if warn := report.Warning(); warn != nil {
		renderer.Fprint(os.Stderr, "WARN{%s} %v\n", renderer.Translate("warning:"), warn)
	}

	if opts.preview {
		renderer.WriteHeightmap(os.Stdout, grid, cfg.WaterLevel, terminal.GetWidth(), color.Enable)
		fmt.Println(renderer.ColorSubtle.Sprint(renderer.Legend()))
	}
	printSummary(grid, cfg, report)

	if opts.out != "" {
		path, err := export.WriteFile(opts.out, grid, format)
		if err != nil {
			renderer.Fprint(os.Stderr, "ERR{%s} %v\n", renderer.Translate("error:"), err)
			return 1
		}
		renderer.Fprint(os.Stdout, "OK{%s} %s\n", renderer.Translate("wrote"), path)
	}
	if opts.dump != "" {
		path, err := devtools.DumpMapToFile(opts.dump, grid, cfg, report)
		if err != nil {
			renderer.Fprint(os.Stderr, "ERR{%s} %v\n", renderer.Translate("error:"), err)
			return 1
		}
		renderer.Fprint(os.Stdout, "OK{%s} %s\n", renderer.Translate("wrote"), path)
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:]))
}

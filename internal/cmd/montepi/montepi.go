// Package montepi implements the montepi command: estimate π once and print it.
package montepi

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"golang.org/x/time/rate"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/montepi/internal/platform/config"
	"github.com/katalvlaran/montepi/montecarlo"
	"github.com/katalvlaran/montepi/plot"
)

// progressInterval throttles Info progress records during long runs.
const progressInterval = time.Second

// Inside/outside marker colors for the scatter plot.
var (
	insideColor  = plot.RGB{R: 220, G: 40, B: 40}
	outsideColor = plot.RGB{R: 40, G: 40, B: 220}
)

// Config holds command settings. Environment variables provide defaults;
// flags override them. Without either, one estimate at 1e-7 is printed.
type Config struct {
	Epsilon    float64 `env:"MONTEPI_EPSILON" envDefault:"1e-7"`
	Seed       int64   `env:"MONTEPI_SEED" envDefault:"0"`
	MaxBatches int     `env:"MONTEPI_MAX_BATCHES" envDefault:"0"`
	PlotPath   string  `env:"MONTEPI_PLOT"`
	PlotPoints int     `env:"MONTEPI_PLOT_POINTS" envDefault:"2000"`
	PlotSize   int     `env:"MONTEPI_PLOT_SIZE" envDefault:"500"`
	Verbose    bool    `env:"MONTEPI_VERBOSE" envDefault:"false"`
}

// ParseConfig loads env defaults and then parses args.
func ParseConfig(args []string, stderr io.Writer) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("montepi", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&cfg.Epsilon, "epsilon", cfg.Epsilon, "convergence tolerance (stop when consecutive estimates differ by <= epsilon/100)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducibility (0 = random)")
	fs.IntVar(&cfg.MaxBatches, "max-batches", cfg.MaxBatches, "give up after this many batches (0 = unlimited)")
	fs.StringVar(&cfg.PlotPath, "plot", cfg.PlotPath, "write a PNG scatter plot of the first probes to this path")
	fs.IntVar(&cfg.PlotPoints, "plot-points", cfg.PlotPoints, "number of probes to plot")
	fs.IntVar(&cfg.PlotSize, "plot-size", cfg.PlotSize, "plot width and height in pixels")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose output")

	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return cfg, nil
}

// Run parses args, estimates π and prints the estimate to stdout.
// Diagnostics go to stderr. MONTEPI_* environment variables override the
// built-in defaults (MONTEPI_EPSILON replaces 1e-7) and flags override both.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) (err error) {
	cfg, err := ParseConfig(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	opts := montecarlo.DefaultOptions()
	opts.Seed = cfg.Seed
	opts.MaxBatches = cfg.MaxBatches
	opts.Logger = logger

	progress := rate.Sometimes{Interval: progressInterval}
	opts.OnBatch = func(s montecarlo.BatchStats) {
		progress.Do(func() {
			logger.Info("progress", "batch", s.Batch, "probes", s.Probes, "estimate", s.Estimate, "delta", s.Delta)
		})
	}

	if cfg.PlotPath != "" {
		surface, onProbe, plotErr, openErr := openScatter(cfg)
		if openErr != nil {
			return openErr
		}
		defer func() {
			err = errors.Join(err, *plotErr, surface.Close())
		}()
		opts.OnProbe = onProbe
	}

	res, err := montecarlo.EstimateWithOptions(ctx, cfg.Epsilon, &opts)
	if err != nil {
		return fmt.Errorf("estimate: %w", err)
	}

	logger.Info("estimate done",
		"estimate", res.Estimate,
		"reliable", scalar.Round(res.Estimate, reliableDigits(res.Tally)),
		"stderr", res.Tally.StdErr(),
		"probes", res.Tally.Probes,
		"batches", res.Batches,
	)
	if _, err := fmt.Fprintln(stdout, res.Estimate); err != nil {
		return fmt.Errorf("write estimate: %w", err)
	}
	return nil
}

// openScatter opens a Surface over the sampling square and returns a probe
// hook plotting the first cfg.PlotPoints probes. The first plotting error is
// kept in *plotErr and stops further plotting.
func openScatter(cfg Config) (*plot.Surface, func(x, y float64, inside bool), *error, error) {
	surface := plot.NewSurface(plot.NewPNGOpener(cfg.PlotPath))
	if err := surface.Open(cfg.PlotSize, cfg.PlotSize, plot.Point{X: -1, Y: -1}, plot.Point{X: 1, Y: 1}); err != nil {
		return nil, nil, nil, fmt.Errorf("open plot: %w", err)
	}

	var (
		plotted int
		plotErr error
	)
	onProbe := func(x, y float64, inside bool) {
		if plotted >= cfg.PlotPoints || plotErr != nil {
			return
		}
		plotted++
		c := outsideColor
		if inside {
			c = insideColor
		}
		plotErr = surface.Plot(x, y, c)
	}
	return surface, onProbe, &plotErr, nil
}

// reliableDigits is the number of decimals supported by the standard error.
func reliableDigits(t montecarlo.Tally) int {
	se := t.StdErr()
	if se <= 0 || math.IsInf(se, 0) || math.IsNaN(se) {
		return 0
	}
	d := int(math.Floor(-math.Log10(se)))
	return max(0, min(d, 15))
}

package montepi

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/montepi/montecarlo"
)

// run executes Run and returns stdout and stderr.
func run(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := Run(ctx, args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, Config{
		Epsilon:    1e-7,
		PlotPoints: 2000,
		PlotSize:   500,
	}, cfg)
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("MONTEPI_EPSILON", "0.5")
	t.Setenv("MONTEPI_SEED", "11")
	t.Setenv("MONTEPI_VERBOSE", "true")

	cfg, err := ParseConfig([]string{"-seed", "12"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.Epsilon, "env default applies")
	assert.Equal(t, int64(12), cfg.Seed, "flag overrides env")
	assert.True(t, cfg.Verbose)
}

// Without flags, MONTEPI_* values replace the built-in defaults.
func TestParseConfigEnvOverridesDefaults(t *testing.T) {
	t.Setenv("MONTEPI_EPSILON", "0.01")
	t.Setenv("MONTEPI_PLOT_SIZE", "64")

	cfg, err := ParseConfig(nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 0.01, cfg.Epsilon)
	assert.Equal(t, 64, cfg.PlotSize)

	cfg, err = ParseConfig([]string{"-plot-size", "32"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.PlotSize, "flag overrides env")
}

func TestParseConfigRejectsArgs(t *testing.T) {
	_, err := ParseConfig([]string{"extra"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "unexpected arguments")

	_, err = ParseConfig([]string{"-nope"}, &bytes.Buffer{})
	assert.Error(t, err)

	t.Setenv("MONTEPI_SEED", "abc")
	_, err = ParseConfig(nil, &bytes.Buffer{})
	assert.ErrorContains(t, err, "parse env")
}

func TestRunHelp(t *testing.T) {
	_, stderr, err := run(t, context.Background(), "-h")
	assert.NoError(t, err)
	assert.Contains(t, stderr, "-epsilon")
}

// TestRunPrintsEstimate: one number on stdout, nothing on stderr by default.
func TestRunPrintsEstimate(t *testing.T) {
	stdout, stderr, err := run(t, context.Background(), "-epsilon", "0.01", "-seed", "7")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	v, err := strconv.ParseFloat(strings.TrimSpace(stdout), 64)
	require.NoError(t, err)
	assert.InDelta(t, 3.14159, v, 0.1)

	again, _, err := run(t, context.Background(), "-epsilon", "0.01", "-seed", "7")
	require.NoError(t, err)
	assert.Equal(t, stdout, again, "seeded runs are reproducible")
}

func TestRunEnvSeed(t *testing.T) {
	t.Setenv("MONTEPI_EPSILON", "10000")
	t.Setenv("MONTEPI_SEED", "3")

	first, _, err := run(t, context.Background())
	require.NoError(t, err)
	second, _, err := run(t, context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRunErrors(t *testing.T) {
	_, _, err := run(t, context.Background(), "-epsilon", "-1")
	assert.ErrorIs(t, err, montecarlo.ErrInvalidEpsilon)

	_, _, err = run(t, context.Background(), "-epsilon", "1e-12", "-max-batches", "1", "-seed", "1")
	assert.ErrorIs(t, err, montecarlo.ErrNotConverged)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	stdout, _, err := run(t, ctx, "-seed", "1")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, stdout)
}

func TestRunVerbose(t *testing.T) {
	_, stderr, err := run(t, context.Background(), "-v", "-epsilon", "10", "-seed", "5")
	require.NoError(t, err)
	assert.Contains(t, stderr, "montecarlo batch")
	assert.Contains(t, stderr, "estimate done")
	assert.Contains(t, stderr, "reliable=")
}

// TestRunPlot writes a scatter PNG of the first probes.
func TestRunPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probes.png")
	stdout, _, err := run(t, context.Background(),
		"-epsilon", "10000", "-seed", "9",
		"-plot", path, "-plot-points", "500", "-plot-size", "120")
	require.NoError(t, err)
	assert.NotEmpty(t, stdout)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Width)
	assert.Equal(t, 120, cfg.Height)
}

func TestRunPlotBadSize(t *testing.T) {
	_, _, err := run(t, context.Background(), "-epsilon", "10000", "-plot", filepath.Join(t.TempDir(), "x.png"), "-plot-size", "0")
	assert.ErrorContains(t, err, "open plot")
}

func TestReliableDigits(t *testing.T) {
	assert.Equal(t, 0, reliableDigits(montecarlo.Tally{}))
	assert.Equal(t, 0, reliableDigits(montecarlo.Tally{Probes: 10, Inside: 10}))
	// n=10⁶, p≈π/4: stderr ≈ 1.6e-3 ⇒ two reliable decimals.
	assert.Equal(t, 2, reliableDigits(montecarlo.Tally{Probes: 1_000_000, Inside: 785_398}))
}

// SPDX-License-Identifier: MIT
// Package montecarlo: sentinel errors, defaults, options and result types.

package montecarlo

import (
	"errors"
	"log/slog"
)

// Every message is prefixed with "montecarlo: ". Callers match with errors.Is;
// context is added by wrapping at the boundary with fmt.Errorf("...: %w", ErrX).
var (
	// ErrInvalidEpsilon is returned when epsilon is not a finite value > 0.
	ErrInvalidEpsilon = errors.New("montecarlo: epsilon must be finite and > 0")

	// ErrInvalidOptions indicates a negative BatchSize/MaxBatches or a
	// non-positive trial count.
	ErrInvalidOptions = errors.New("montecarlo: invalid options")

	// ErrNotConverged is returned together with the partial Result when
	// Options.MaxBatches is reached before the stopping rule is satisfied.
	ErrNotConverged = errors.New("montecarlo: batch limit reached before convergence")
)

const (
	// DefaultBatchSize is the number of probes thrown between convergence checks.
	DefaultBatchSize = 10000

	// DefaultEpsilon is the tolerance used when callers have no preference.
	DefaultEpsilon = 1e-4

	// convergenceScale divides epsilon to obtain the stopping threshold.
	convergenceScale = 100.0

	// Sentinels for the first convergence check; |100 - (-100)| exceeds any
	// threshold below 200, and the loop runs at least one batch regardless.
	initialPrior    = -100.0
	initialEstimate = 100.0
)

// BatchStats is passed to Options.OnBatch after every completed batch.
type BatchStats struct {
	Batch    int     // 1-based batch index
	Probes   int64   // cumulative probes thrown
	Inside   int64   // cumulative probes inside the circle
	Estimate float64 // estimate after this batch
	Prior    float64 // estimate before this batch (sentinel on batch 1)
	Delta    float64 // |Estimate - Prior|
}

// Options configures EstimateWithOptions and Trials.
//
// Fields:
//   - BatchSize  — probes per batch; 0 selects DefaultBatchSize.
//   - Seed       — seed for the internal Source when Source is nil;
//     0 draws a fresh crypto-random seed.
//   - Source     — caller-owned random source; takes precedence over Seed.
//   - MaxBatches — stop with ErrNotConverged after this many batches; 0 = no cap.
//   - Logger     — optional; one Debug record per batch.
//   - OnBatch    — optional hook invoked after each batch.
//   - OnProbe    — optional hook invoked for every probe (hot path, keep it cheap).
type Options struct {
	BatchSize  int
	Seed       int64
	Source     Source
	MaxBatches int
	Logger     *slog.Logger
	OnBatch    func(BatchStats)
	OnProbe    func(x, y float64, inside bool)
}

// DefaultOptions returns Options with BatchSize = DefaultBatchSize and no hooks.
func DefaultOptions() Options {
	return Options{BatchSize: DefaultBatchSize}
}

// Result is the outcome of one estimation run.
type Result struct {
	// Estimate is 4·Inside/Probes of the final tally (0 if no batch ran).
	Estimate float64

	// Tally holds the cumulative counters of the run.
	Tally Tally

	// Batches is the number of completed batches.
	Batches int

	// Delta is |estimate - prior estimate| at the last check.
	Delta float64
}

// Summary aggregates the estimates of several independent Trials.
type Summary struct {
	Estimates   []float64
	Mean        float64
	StdDev      float64 // sample standard deviation across trials (0 for one trial)
	StdErr      float64 // StdDev / sqrt(len(Estimates))
	TotalProbes int64
}

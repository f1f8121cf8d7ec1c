// SPDX-License-Identifier: MIT

package montecarlo

import (
	"context"
	"math"
)

// Estimate returns an estimate of π refined until two consecutive batch
// estimates differ by no more than epsilon/100. src supplies the randomness;
// a nil src gets a freshly seeded Source.
//
// epsilon is a convergence heuristic, not a bound on |result - π|.
//
// Errors:
//   - ErrInvalidEpsilon — epsilon ≤ 0, NaN or ±Inf.
//
// Example:
//
//	pi, err := Estimate(0.01, rand.New(rand.NewSource(1))) // ≈ 3.1
func Estimate(epsilon float64, src Source) (float64, error) {
	opts := DefaultOptions()
	opts.Source = src
	res, err := EstimateWithOptions(context.Background(), epsilon, &opts)
	if err != nil {
		return 0, err
	}
	return res.Estimate, nil
}

// EstimateWithOptions runs the convergence-controlled sampling loop.
//
// Algorithm:
//  1. prior = -100, estimate = 100.
//  2. Repeat (at least once) while |estimate - prior| > epsilon/100:
//     a. stop with ctx.Err() if ctx is done, or with ErrNotConverged once
//     MaxBatches batches have run;
//     b. throw BatchSize probes, accumulating the cumulative tally;
//     c. prior = estimate; estimate = 4·inside/probes over ALL batches so far.
//  3. Return the final estimate with its tally.
//
// On ctx cancellation or ErrNotConverged the partial Result is returned
// alongside the error. opts may be nil (DefaultOptions is used).
//
// Complexity: O(BatchSize·batches) time, O(1) memory.
func EstimateWithOptions(ctx context.Context, epsilon float64, opts *Options) (Result, error) {
	if epsilon <= 0 || math.IsNaN(epsilon) || math.IsInf(epsilon, 0) {
		return Result{}, ErrInvalidEpsilon
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.BatchSize < 0 || o.MaxBatches < 0 {
		return Result{}, ErrInvalidOptions
	}
	if o.BatchSize == 0 {
		o.BatchSize = DefaultBatchSize
	}
	src := o.Source
	if src == nil {
		src = NewSource(o.Seed)
	}

	var (
		tally   Tally
		batches int
	)
	prior, estimate := initialPrior, initialEstimate
	threshold := epsilon / convergenceScale
	result := func() Result {
		return Result{
			Estimate: tally.Estimate(),
			Tally:    tally,
			Batches:  batches,
			Delta:    math.Abs(estimate - prior),
		}
	}

	for batches == 0 || math.Abs(estimate-prior) > threshold {
		if err := ctx.Err(); err != nil {
			return result(), err
		}
		if o.MaxBatches > 0 && batches >= o.MaxBatches {
			return result(), ErrNotConverged
		}

		runBatch(src, o.BatchSize, &tally, o.OnProbe)
		batches++
		prior = estimate
		estimate = tally.Estimate()

		stats := BatchStats{
			Batch:    batches,
			Probes:   tally.Probes,
			Inside:   tally.Inside,
			Estimate: estimate,
			Prior:    prior,
			Delta:    math.Abs(estimate - prior),
		}
		if o.Logger != nil {
			o.Logger.Debug("montecarlo batch",
				"batch", stats.Batch,
				"probes", stats.Probes,
				"inside", stats.Inside,
				"estimate", stats.Estimate,
				"delta", stats.Delta,
			)
		}
		if o.OnBatch != nil {
			o.OnBatch(stats)
		}
	}

	return result(), nil
}

// runBatch throws n probes into t. The hook-free path is kept separate so the
// common case stays a tight loop.
func runBatch(src Source, n int, t *Tally, onProbe func(x, y float64, inside bool)) {
	if onProbe == nil {
		for i := 0; i < n; i++ {
			t.Add(Probe(src))
		}
		return
	}
	for i := 0; i < n; i++ {
		x, y := Draw(src)
		inside := InUnitCircle(x, y)
		t.Add(inside)
		onProbe(x, y, inside)
	}
}

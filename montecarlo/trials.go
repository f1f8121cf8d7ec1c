// SPDX-License-Identifier: MIT

package montecarlo

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Trials runs n independent estimates one after another and summarizes them.
// Trial i samples from DeriveSource(parent, i), where parent comes from
// opts.Source (consumed once), opts.Seed, or crypto/rand, in that order.
// Hooks and the logger in opts are shared by all trials.
//
// The spread of the estimates across trials is an empirical check of how
// far epsilon actually is from the true error.
//
// Errors:
//   - ErrInvalidOptions — n ≤ 0.
//   - any error of EstimateWithOptions, wrapped with the trial index; the
//     summary of the trials completed so far is returned with it.
func Trials(ctx context.Context, n int, epsilon float64, opts *Options) (Summary, error) {
	if n <= 0 {
		return Summary{}, fmt.Errorf("trials n=%d: %w", n, ErrInvalidOptions)
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	parent := parentSeed(&o)

	estimates := make([]float64, 0, n)
	var total int64
	for i := 0; i < n; i++ {
		trial := o
		trial.Source = DeriveSource(parent, uint64(i))
		res, err := EstimateWithOptions(ctx, epsilon, &trial)
		if err != nil {
			return summarize(estimates, total), fmt.Errorf("trial %d: %w", i, err)
		}
		estimates = append(estimates, res.Estimate)
		total += res.Tally.Probes
	}

	return summarize(estimates, total), nil
}

// summarize computes mean and spread with gonum/stat.
func summarize(estimates []float64, total int64) Summary {
	s := Summary{Estimates: estimates, TotalProbes: total}
	switch len(estimates) {
	case 0:
		return s
	case 1:
		s.Mean = estimates[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(estimates, nil)
	s.StdErr = stat.StdErr(s.StdDev, float64(len(estimates)))
	return s
}

// Package montecarlo estimates π by throwing random darts at the square
// [-1,1]×[-1,1] and counting how many land inside the inscribed unit circle.
//
// 🚀 What is it?
//
//	The circle covers π/4 of the square, so
//	  π ≈ 4 × (darts inside) / (darts thrown)
//	The estimator throws darts in fixed-size batches and recomputes the
//	ratio from the cumulative tally after each batch. It stops once two
//	consecutive estimates differ by no more than epsilon/100.
//
// ✨ Key features:
//   - InUnitCircle: exact, boundary-inclusive classifier (x²+y² ≤ 1)
//   - Draw / Probe: one uniform probe from an injected Source
//   - EstimateWithOptions: convergence-controlled batch loop with hooks,
//     optional batch cap, context cancellation and slog tracing
//   - Trials: sequential repeated estimates with a gonum/stat summary
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/montepi/montecarlo"
//
//	opts := montecarlo.DefaultOptions()
//	opts.Seed = 42
//	res, err := montecarlo.EstimateWithOptions(ctx, 1e-4, &opts)
//
// ⚠️ Epsilon is a stopping heuristic, NOT an error bound:
//
//	The loop compares consecutive cumulative estimates against epsilon/100.
//	The distance between the returned value and π is not bounded by epsilon.
//	Use Tally.StdErr for a statistical error estimate.
//
// Concurrency:
//
//	A single estimation run is synchronous and owns its tally. A Source is
//	NOT goroutine-safe. Give every concurrent run its own Source
//	(see NewSource and DeriveSource).
//
// Complexity:
//
//   - Time:   O(B·k), B = batch size, k = number of batches until convergence
//   - Memory: O(1)
package montecarlo

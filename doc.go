// Package montepi is a small Monte Carlo playground: estimating π by
// throwing random darts at a square, and plotting where they land.
//
// 🚀 What is montepi?
//
//	A tiny, dependency-light module with two independent parts:
//		• montecarlo/ — classifier, probe generator and the
//		  convergence-controlled estimator (plus repeated trials)
//		• plot/       — a scatter Surface mapping world coordinates onto a
//		  pixel canvas, with a PNG backend built on gonum/plot
//
// ✨ Why?
//
//   - Teaching aid: the textbook π/4 area ratio, batch by batch
//   - Reproducible: every run takes an injected or seeded random source
//   - Honest: epsilon is a stopping heuristic, and Tally.StdErr reports
//     the statistical error separately
//
// Quick ASCII picture of one run:
//
//	┌─────────┐
//	│ ·  ___ ·│   darts inside the circle / all darts ≈ π/4
//	│  /· · \ │
//	│ | ·  · |│
//	│  \_·__/ │
//	│·      · │
//	└─────────┘
//
// The montepi command (cmd/montepi) prints one estimate at epsilon 1e-7:
//
//	go run github.com/katalvlaran/montepi/cmd/montepi
package montepi

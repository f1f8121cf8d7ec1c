// Package montecarlo_test holds shared helpers for the estimator tests.
package montecarlo_test

import (
	"math/rand"

	"github.com/katalvlaran/montepi/montecarlo"
)

const (
	// seedDet is a fixed seed so every statistical test is reproducible.
	seedDet = int64(20220701)

	// sigmas bounds |estimate - π| in units of the tally's standard error.
	sigmas = 6.0
)

// seqSource replays vals cyclically. Useful for pinning probe coordinates.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

// countingSource wraps a Source and counts draws.
type countingSource struct {
	src   montecarlo.Source
	calls int64
}

func (c *countingSource) Float64() float64 {
	c.calls++
	return c.src.Float64()
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(seedDet))
}

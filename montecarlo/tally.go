// SPDX-License-Identifier: MIT

package montecarlo

import "math"

// Tally holds the cumulative counters of one estimation run.
// Inside <= Probes always holds: Add is the only mutator and bumps Probes
// on every call.
type Tally struct {
	Probes int64 // total probes thrown
	Inside int64 // probes classified inside the unit circle
}

// Add records one probe.
func (t *Tally) Add(inside bool) {
	t.Probes++
	if inside {
		t.Inside++
	}
}

// Estimate returns 4·Inside/Probes, or 0 for an empty tally.
func (t Tally) Estimate() float64 {
	if t.Probes == 0 {
		return 0
	}
	return 4.0 * float64(t.Inside) / float64(t.Probes)
}

// StdErr returns the binomial standard error of Estimate:
// 4·sqrt(p(1-p)/n) with p = Inside/Probes. Returns +Inf for an empty tally.
func (t Tally) StdErr() float64 {
	if t.Probes == 0 {
		return math.Inf(1)
	}
	n := float64(t.Probes)
	p := float64(t.Inside) / n
	return 4.0 * math.Sqrt(p*(1-p)/n)
}

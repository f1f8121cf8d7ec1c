// SPDX-License-Identifier: MIT
// Package montecarlo - random source utilities.
//
// The estimator never touches the process-wide math/rand state: every run
// gets its Source from the caller, or builds one here from Options.Seed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share one across goroutines.
//   - Use DeriveSource to create independent streams for repeated trials.

package montecarlo

import (
	crand "crypto/rand"
	"encoding/binary"
	"math"
	"math/rand"
	"time"
)

// NewSource returns a *rand.Rand seeded with seed.
// Policy: seed==0 ⇒ a fresh crypto-random seed (non-reproducible run);
// otherwise the seed is used verbatim and runs are reproducible.
//
// Complexity: O(1).
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = randomSeed()
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSource creates an independent deterministic stream from a parent seed
// and a stream identifier. Equal (parent, stream) pairs yield equal streams.
//
// Complexity: O(1).
func DeriveSource(parent int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// using the SplitMix64 finalizer, so neighbouring stream ids decorrelate.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// parentSeed picks the seed from which Trials derives its per-trial streams.
// A caller-supplied Source is consumed once so that repeated Trials calls on
// the same Source do not replay identical streams.
func parentSeed(opts *Options) int64 {
	switch {
	case opts.Source != nil:
		return int64(math.Float64bits(opts.Source.Float64()))
	case opts.Seed != 0:
		return opts.Seed
	default:
		return randomSeed()
	}
}

// randomSeed reads 8 bytes from crypto/rand; the clock is the fallback.
func randomSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	s := int64(binary.LittleEndian.Uint64(b[:]))
	if s == 0 {
		s = 1
	}
	return s
}

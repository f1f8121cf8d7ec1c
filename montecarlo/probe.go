// SPDX-License-Identifier: MIT

package montecarlo

// Source yields uniform pseudo-random numbers in [0, 1).
// *math/rand.Rand satisfies it. Implementations need not be goroutine-safe.
type Source interface {
	Float64() float64
}

// Square bounds of the sampling region; the unit circle is inscribed in it.
const (
	squareMin = -1.0
	squareMax = 1.0
)

// Draw returns one probe: x then y, each drawn independently and uniformly
// from [-1, 1) using src. Exactly two values are consumed from src.
func Draw(src Source) (x, y float64) {
	x = squareMin + (squareMax-squareMin)*src.Float64()
	y = squareMin + (squareMax-squareMin)*src.Float64()
	return x, y
}

// Probe throws one dart and reports whether it landed inside the unit circle.
func Probe(src Source) bool {
	return InUnitCircle(Draw(src))
}

// SPDX-License-Identifier: MIT

package montecarlo

// InUnitCircle reports whether (x, y) lies within the circle of radius 1
// centered at the origin. The boundary is inclusive and the comparison is
// exact: no epsilon is applied.
//
// Examples:
//
//	InUnitCircle(1.0, 1.0)   // false
//	InUnitCircle(-1.0, -1.0) // false
//	InUnitCircle(1.0, 0.0)   // true (on the boundary)
//	InUnitCircle(-0.5, -0.5) // true
//
// Complexity: O(1).
func InUnitCircle(x, y float64) bool {
	return x*x+y*y <= 1.0
}

package montecarlo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/montepi/montecarlo"
)

// TestInUnitCircle_Cases covers corners, the inclusive boundary and interior points.
func TestInUnitCircle_Cases(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"corner ++", 1.0, 1.0, false},
		{"corner --", -1.0, -1.0, false},
		{"boundary x axis", 1.0, 0.0, true},
		{"boundary y axis", 0.0, -1.0, true},
		{"interior", -0.5, -0.5, true},
		{"origin", 0, 0, true},
		{"just past boundary", math.Nextafter(1.0, 2.0), 0, false},
		{"just inside boundary", math.Nextafter(1.0, 0.0), 0, true},
		{"far away", 3, -4, false},
		{"NaN", math.NaN(), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, montecarlo.InUnitCircle(tt.x, tt.y))
		})
	}
}

// TestInUnitCircle_MatchesDistance checks the classifier against x²+y² ≤ 1
// on a grid that crosses the boundary many times.
func TestInUnitCircle_MatchesDistance(t *testing.T) {
	for i := -40; i <= 40; i++ {
		for j := -40; j <= 40; j++ {
			x, y := float64(i)/25, float64(j)/25
			assert.Equal(t, x*x+y*y <= 1.0, montecarlo.InUnitCircle(x, y), "(%g, %g)", x, y)
		}
	}
}

// SPDX-License-Identifier: MIT

package plot

import (
	"errors"
	"fmt"
	"image/color"
)

var (
	// ErrAlreadyOpen is returned by Open on a Surface that is already open.
	ErrAlreadyOpen = errors.New("plot: surface already open")
	// ErrBadSize indicates a non-positive canvas width or height.
	ErrBadSize = errors.New("plot: canvas size must be > 0")
	// ErrBadBounds indicates origin is not strictly below bound on both axes.
	ErrBadBounds = errors.New("plot: origin must be below bound on both axes")
	// ErrOutOfRange indicates a plotted point outside the declared world rectangle.
	ErrOutOfRange = errors.New("plot: coordinate outside plot area")
	// ErrNoCanvas indicates a Surface without an Opener.
	ErrNoCanvas = errors.New("plot: no canvas opener")
)

// Marker geometry, in pixels.
const (
	PointWidth = 6                    // width of a point
	Kerf       = max(1, PointWidth/2) // marker extends this far each way
)

// Default window: 500×500 pixels over the unit square.
const (
	DefaultWidth  = 500
	DefaultHeight = 500
)

// Point is a world coordinate.
type Point struct {
	X, Y float64
}

// Unit square corners.
var (
	UnitOrigin = Point{0, 0}
	UnitBound  = Point{1, 1}
)

// RGB is a 3-channel intensity triple, each channel in [0, 255].
// It implements color.Color as an opaque color.
type RGB struct {
	R, G, B uint8
}

// DefaultColor is the dark grey used when callers have no preference.
var DefaultColor = RGB{50, 50, 50}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

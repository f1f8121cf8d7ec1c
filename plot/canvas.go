// SPDX-License-Identifier: MIT

package plot

import "image/color"

// Canvas is a pixel rendering target owned by a Surface.
// Pixel (0,0) is the bottom-left corner.
type Canvas interface {
	// Mark fills the square [px-half, px+half]×[py-half, py+half] with c.
	Mark(px, py, half float64, c color.Color) error
	// Close releases the canvas; the Surface calls it exactly once.
	Close() error
}

// Opener creates a Canvas of the given pixel size.
type Opener func(width, height int) (Canvas, error)

// Package plot is a minimal scatter-plot Surface for visualizing sampled
// points, by default in the unit square (0,0)–(1,1).
//
// What:
//
//   - Surface maps a world-coordinate rectangle [origin, bound] onto a pixel
//     canvas and draws a small square marker per point.
//   - Canvas is the rendering backend; NewPNGOpener / NewPNGWriterOpener
//     provide one built on gonum.org/v1/plot (vgimg + draw).
//
// Lifecycle:
//
//   - A new Surface is closed; Open makes it open, Close makes it closed again.
//   - Plot on a closed Surface does nothing (no error, nothing drawn).
//   - Open on an open Surface returns ErrAlreadyOpen.
//   - Close is idempotent.
//
// Coordinates:
//
// World y grows upward. A point (x, y) lands on pixel
//
//	((x-ox)/(bx-ox)·width, (y-oy)/(by-oy)·height)
//
// measured from the bottom-left corner of the canvas.
//
// Errors:
//
//   - ErrAlreadyOpen: Open called twice without Close.
//   - ErrBadSize: width or height ≤ 0.
//   - ErrBadBounds: origin is not strictly below bound on both axes.
//   - ErrOutOfRange: plotted point outside [origin, bound].
//   - ErrNoCanvas: Surface built without an Opener.
package plot

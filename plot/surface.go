// SPDX-License-Identifier: MIT

package plot

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sync"
)

// closePrompt is printed by WaitToClose.
const closePrompt = "Press enter to close plot window"

// Surface owns at most one open Canvas and maps world coordinates onto it.
// All methods are safe for concurrent use.
type Surface struct {
	mu     sync.Mutex
	opener Opener
	canvas Canvas // nil while closed
	width  int
	height int
	origin Point
	bound  Point
}

// NewSurface returns a closed Surface that creates its canvas with opener.
func NewSurface(opener Opener) *Surface {
	return &Surface{opener: opener}
}

// Open creates a width×height canvas showing the world rectangle [origin, bound].
//
// Errors: ErrAlreadyOpen, ErrBadSize, ErrBadBounds, ErrNoCanvas, or the
// opener's error wrapped.
func (s *Surface) Open(width, height int, origin, bound Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.canvas != nil {
		return ErrAlreadyOpen
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%dx%d: %w", width, height, ErrBadSize)
	}
	if !(origin.X < bound.X) || !(origin.Y < bound.Y) {
		return fmt.Errorf("%v to %v: %w", origin, bound, ErrBadBounds)
	}
	if s.opener == nil {
		return ErrNoCanvas
	}
	c, err := s.opener(width, height)
	if err != nil {
		return fmt.Errorf("plot: open canvas: %w", err)
	}
	s.canvas = c
	s.width, s.height = width, height
	s.origin, s.bound = origin, bound
	return nil
}

// IsOpen reports whether the Surface currently owns a canvas.
func (s *Surface) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canvas != nil
}

// Plot draws a marker of color c at world coordinate (x, y).
// On a closed Surface it does nothing and returns nil.
// A point outside [origin, bound] (NaN included) returns ErrOutOfRange.
func (s *Surface) Plot(x, y float64, c RGB) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.canvas == nil {
		return nil
	}
	if !(s.origin.X <= x && x <= s.bound.X) {
		return fmt.Errorf("x=%g outside %v to %v: %w", x, s.origin, s.bound, ErrOutOfRange)
	}
	if !(s.origin.Y <= y && y <= s.bound.Y) {
		return fmt.Errorf("y=%g outside %v to %v: %w", y, s.origin, s.bound, ErrOutOfRange)
	}
	px := (x - s.origin.X) / (s.bound.X - s.origin.X) * float64(s.width)
	py := (y - s.origin.Y) / (s.bound.Y - s.origin.Y) * float64(s.height)
	if err := s.canvas.Mark(px, py, Kerf, c); err != nil {
		return fmt.Errorf("plot: mark (%g, %g): %w", x, y, err)
	}
	return nil
}

// Close releases the canvas and returns the Surface to the closed state.
// Closing a closed Surface is a no-op.
func (s *Surface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.canvas == nil {
		return nil
	}
	err := s.canvas.Close()
	s.canvas = nil
	if err != nil {
		return fmt.Errorf("plot: close canvas: %w", err)
	}
	return nil
}

// WaitToClose prompts on out, waits for a line (or EOF) on in, then closes.
// No prompt and no delay when the Surface is closed.
func (s *Surface) WaitToClose(in io.Reader, out io.Writer) error {
	if !s.IsOpen() {
		return nil
	}
	if _, err := fmt.Fprintln(out, closePrompt); err != nil {
		return errors.Join(err, s.Close())
	}
	if _, err := bufio.NewReader(in).ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
		return errors.Join(err, s.Close())
	}
	return s.Close()
}

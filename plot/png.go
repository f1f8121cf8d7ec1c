// SPDX-License-Identifier: MIT

package plot

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// pngDPI makes one vg point equal one pixel.
const pngDPI = 72

// pngCanvas rasterizes markers with gonum/plot and encodes a PNG on Close.
type pngCanvas struct {
	img   *vgimg.Canvas
	dc    draw.Canvas
	flush func(vgimg.PngCanvas) error
}

// NewPNGOpener returns an Opener whose canvas is written to path on Close.
func NewPNGOpener(path string) Opener {
	return func(width, height int) (Canvas, error) {
		return newPNGCanvas(width, height, func(pc vgimg.PngCanvas) (err error) {
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, f.Close())
			}()
			_, err = pc.WriteTo(f)
			return err
		}), nil
	}
}

// NewPNGWriterOpener returns an Opener whose canvas is encoded to w on Close.
func NewPNGWriterOpener(w io.Writer) Opener {
	return func(width, height int) (Canvas, error) {
		return newPNGCanvas(width, height, func(pc vgimg.PngCanvas) error {
			_, err := pc.WriteTo(w)
			return err
		}), nil
	}
}

func newPNGCanvas(width, height int, flush func(vgimg.PngCanvas) error) *pngCanvas {
	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(width), vg.Length(height)),
		vgimg.UseDPI(pngDPI),
		vgimg.UseBackgroundColor(color.White),
	)
	return &pngCanvas{img: img, dc: draw.New(img), flush: flush}
}

// Mark implements Canvas.
func (p *pngCanvas) Mark(px, py, half float64, c color.Color) error {
	if p.img == nil {
		return errors.New("plot: png canvas closed")
	}
	x0, y0 := vg.Length(px-half), vg.Length(py-half)
	x1, y1 := vg.Length(px+half), vg.Length(py+half)
	p.dc.FillPolygon(c, []vg.Point{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	})
	return nil
}

// Close implements Canvas; the image is encoded once.
func (p *pngCanvas) Close() error {
	if p.img == nil {
		return nil
	}
	pc := vgimg.PngCanvas{Canvas: p.img}
	p.img = nil
	if err := p.flush(pc); err != nil {
		return fmt.Errorf("plot: write png: %w", err)
	}
	return nil
}

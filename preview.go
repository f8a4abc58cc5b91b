package tftlayout

import (
	"bytes"
	"image"
	"image/color"

	"github.com/bodgit/tftlayout/resample"
	"github.com/bodgit/tftlayout/rgb565"
	"github.com/disintegration/imaging"
)

// Preview draws every element onto a black canvas in canvas order, so later
// elements cover earlier ones. When display is set each element first goes
// through the RGB565 conversion and back, showing what the screen will
// actually draw; with transparent also set, color keyed pixels are skipped.
func (c *Compiler) Preview(display, transparent bool) (*image.NRGBA, error) {
	out := imaging.New(c.canvas.Width, c.canvas.Height, color.NRGBA{0, 0, 0, 0xff})

	for _, e := range c.canvas.Elements() {
		m, err := resample.Load(e.Path, e.W, e.H)
		if err != nil {
			return nil, newError(ErrImage, "preview", e.Path, err)
		}

		if display {
			pixels, err := rgb565.Convert(m, transparent)
			if err != nil {
				return nil, newError(ErrImage, "preview", e.Path, err)
			}
			b := new(bytes.Buffer)
			if err := rgb565.Encode(b, pixels); err != nil {
				return nil, newError(ErrImage, "preview", e.Path, err)
			}
			if m, err = rgb565.Decode(b, e.W, e.H, transparent); err != nil {
				return nil, newError(ErrImage, "preview", e.Path, err)
			}
		}

		out = imaging.Overlay(out, m, image.Pt(e.X, e.Y), 1.0)
	}

	return out, nil
}

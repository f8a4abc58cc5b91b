package rgb565

import (
	"errors"
	"image"
	"image/color"
)

var errEmpty = errors.New("rgb565: image has no pixels")

// Convert returns the packed pixels of m in row-major order.
//
// Channels are read non-premultiplied. When transparent is set any pixel with
// an alpha below AlphaThreshold becomes TransparencyKey and every other pixel
// keeps its color with the alpha discarded. Otherwise the alpha channel is
// never consulted.
func Convert(m image.Image, transparent bool) ([]uint16, error) {
	b := m.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, errEmpty
	}

	out := make([]uint16, 0, b.Dx()*b.Dy())

	if nm, ok := m.(*image.NRGBA); ok {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := nm.PixOffset(b.Min.X, y)
			for x := b.Min.X; x < b.Max.X; x++ {
				out = append(out, convert(nm.Pix[i], nm.Pix[i+1], nm.Pix[i+2], nm.Pix[i+3], transparent))
				i += 4
			}
		}
		return out, nil
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			out = append(out, convert(c.R, c.G, c.B, c.A, transparent))
		}
	}

	return out, nil
}

func convert(r, g, b, a uint8, transparent bool) uint16 {
	if transparent && a < AlphaThreshold {
		return TransparencyKey
	}
	return Pack(r, g, b)
}

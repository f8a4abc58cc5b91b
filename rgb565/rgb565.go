/*
Package rgb565 implements the 16-bit RGB565 pixel format used by TFT display
controllers.

Each pixel is packed as a 16-bit value with 5 bits of red in the most
significant bits, 6 bits of green and 5 bits of blue in the least significant
bits. Channels are truncated, never rounded.

A RAW stream is a sequence of packed pixels written as big-endian 16-bit
values, row by row, with no header and no length prefix. The reader needs to
know the geometry in advance; a width by height image is always exactly
width * height * 2 bytes.

Transparency is expressed with a color key: the reserved value TransparencyKey
(magenta) is substituted for every sufficiently transparent source pixel and
the display driver skips drawing it.
*/
package rgb565

import "image/color"

const (
	// TransparencyKey is the color key substituted for transparent pixels
	TransparencyKey = 0xF81F

	// AlphaThreshold is the lowest 8-bit alpha treated as opaque
	AlphaThreshold = 128

	bytesPerPixel = 2
)

// Pack converts 8-bit channels to a packed RGB565 value.
func Pack(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// Unpack expands a packed value back to 8-bit channels, replicating the high
// bits into the low bits so that full intensity stays at 0xff.
func Unpack(c uint16) (r, g, b uint8) {
	r5 := uint8(c >> 11 & 0x1f)
	g6 := uint8(c >> 5 & 0x3f)
	b5 := uint8(c & 0x1f)
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

// Color is a packed RGB565 value. It implements the color.Color interface.
type Color uint16

// RGBA implements color.Color.
func (c Color) RGBA() (uint32, uint32, uint32, uint32) {
	r, g, b := Unpack(uint16(c))
	return uint32(r) * 0x101, uint32(g) * 0x101, uint32(b) * 0x101, 0xffff
}

// Model converts any color to the nearest Color by truncation. Alpha is
// ignored.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color(Pack(n.R, n.G, n.B))
}

/*
Package emit renders converted layouts as a C++ header for firmware built
against the TFT_eSPI library.

The header declares one const uint16_t array per element, in canvas order,
holding its RGB565 pixels as hexadecimal literals sixteen to a row, followed by
a drawLayout function that pushes every array to the display at its position.
When transparency is enabled each pushImage call carries the color key as an
extra argument so the driver skips those pixels.
*/
package emit

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bodgit/tftlayout/rgb565"
)

const valuesPerRow = 16

// Item is a single element ready to be emitted.
type Item struct {
	Name       string
	X, Y, W, H int
	Pixels     []uint16
}

var identReplacer = strings.NewReplacer(".", "_", "-", "_")

// Identifier returns the array name used for an element called name.
func Identifier(name string) string {
	return identReplacer.Replace(name) + "_data"
}

type encoder struct {
	w           *bufio.Writer
	transparent bool
}

func (e *encoder) header() {
	fmt.Fprint(e.w, "// This code was generated by tftlayout\n")
	fmt.Fprint(e.w, "// Mode: Internal Memory\n")
	if e.transparent {
		fmt.Fprintf(e.w, "// Transparency activated with Color Key: 0x%04X (Magenta)\n", rgb565.TransparencyKey)
	}
	fmt.Fprint(e.w, "\n#pragma once\n\n#include <TFT_eSPI.h>\n\n")
}

func (e *encoder) array(item Item) {
	fmt.Fprintf(e.w, "const uint16_t %s[%d] = {\n  ", Identifier(item.Name), len(item.Pixels))
	for i, p := range item.Pixels {
		fmt.Fprintf(e.w, "0x%04X, ", p)
		if (i+1)%valuesPerRow == 0 && i < len(item.Pixels)-1 {
			fmt.Fprint(e.w, "\n  ")
		}
	}
	fmt.Fprint(e.w, "\n};\n\n")
}

func (e *encoder) draw(items []Item) {
	fmt.Fprint(e.w, "void drawLayout(TFT_eSPI& tft) {\n")
	for _, item := range items {
		fmt.Fprintf(e.w, "  tft.pushImage(%d, %d, %d, %d, %s", item.X, item.Y, item.W, item.H, Identifier(item.Name))
		if e.transparent {
			fmt.Fprintf(e.w, ", 0x%04X", rgb565.TransparencyKey)
		}
		fmt.Fprint(e.w, ");\n")
	}
	fmt.Fprint(e.w, "}\n")
}

// Encode writes the header for items to w. The output depends only on its
// arguments so repeated runs are byte-identical.
func Encode(w io.Writer, items []Item, transparent bool) error {
	for _, item := range items {
		if len(item.Pixels) != item.W*item.H {
			return fmt.Errorf("emit: %s has %d pixels, expected %d", item.Name, len(item.Pixels), item.W*item.H)
		}
	}

	e := encoder{w: bufio.NewWriter(w), transparent: transparent}

	e.header()
	for _, item := range items {
		e.array(item)
	}
	e.draw(items)

	return e.w.Flush()
}

/*
Package tftlayout compiles screen layouts for microcontrollers driving TFT
displays.

Images are imported onto a virtual canvas, sized and positioned, and then
converted to RGB565. A layout is generated either as a C++ header holding the
pixel arrays and a drawLayout function (Embedded), or as one RAW file per
element plus a manifest for displays reading their graphics from an SD card
(External). Layouts can be saved to and loaded from a JSON document.

A Compiler is not safe for concurrent use.
*/
package tftlayout

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Compiler owns a canvas and every operation on it.
type Compiler struct {
	canvas  *Canvas
	counter int
	logger  *log.Logger
}

// New returns a Compiler with an empty canvas sized from cfg. A nil logger
// discards everything.
func New(cfg *Config, logger *log.Logger) *Compiler {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Compiler{
		canvas: NewCanvas(cfg.Canvas.Width, cfg.Canvas.Height),
		logger: logger,
	}
}

// Canvas returns the current canvas. It must not be modified.
func (c *Compiler) Canvas() *Canvas {
	return c.canvas
}

// ResizeCanvas changes the canvas size. Elements are left where they are.
func (c *Compiler) ResizeCanvas(w, h int) error {
	if err := validSize(w, h); err != nil {
		return newError(ErrValidation, "resize canvas", "", err)
	}
	c.canvas.Width, c.canvas.Height = w, h
	c.logger.Debug("Resized canvas", "width", w, "height", h)
	return nil
}

// MoveElement places the element with the given ID at x, y.
func (c *Compiler) MoveElement(id uuid.UUID, x, y int) (*Element, error) {
	e, ok := c.canvas.get(id)
	if !ok {
		return nil, newError(ErrNotFound, "move", "", errNoElement(id))
	}
	e.X, e.Y = x, y
	c.logger.Debug("Moved element", "name", e.Name, "x", x, "y", y)
	dup := *e
	return &dup, nil
}

// RemoveElement deletes the element with the given ID.
func (c *Compiler) RemoveElement(id uuid.UUID) error {
	e, ok := c.canvas.get(id)
	if !ok {
		return newError(ErrNotFound, "remove", "", errNoElement(id))
	}
	name := e.Name
	c.canvas.remove(id)
	c.logger.Debug("Removed element", "name", name)
	return nil
}

// Clear removes every element and restarts element numbering.
func (c *Compiler) Clear() {
	c.canvas.clear()
	c.counter = 0
	c.logger.Debug("Cleared canvas")
}

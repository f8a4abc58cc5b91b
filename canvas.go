package tftlayout

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const (
	// DefaultWidth is the canvas width used when nothing else is configured
	DefaultWidth = 240
	// DefaultHeight is the canvas height used when nothing else is
	// configured
	DefaultHeight = 135
)

// Element is one image placed on the canvas.
type Element struct {
	ID   uuid.UUID
	Name string
	Path string
	X    int
	Y    int
	W    int
	H    int
}

func validSize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("size %dx%d must be positive", w, h)
	}
	return nil
}

// Canvas is the virtual screen elements are placed on. Elements are kept in
// insertion order; see Background.
type Canvas struct {
	Width  int
	Height int

	elements map[uuid.UUID]*Element
	order    []uuid.UUID
}

// NewCanvas returns an empty w by h canvas.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		Width:    w,
		Height:   h,
		elements: make(map[uuid.UUID]*Element),
	}
}

// Len returns the number of elements.
func (c *Canvas) Len() int {
	return len(c.order)
}

// Elements returns a copy of every element in canvas order.
func (c *Canvas) Elements() []Element {
	out := make([]Element, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.elements[id])
	}
	return out
}

// Element returns the element with the given ID.
func (c *Canvas) Element(id uuid.UUID) (Element, bool) {
	e, ok := c.elements[id]
	if !ok {
		return Element{}, false
	}
	return *e, true
}

// Lookup returns the element called name.
func (c *Canvas) Lookup(name string) (Element, bool) {
	for _, id := range c.order {
		if e := c.elements[id]; e.Name == name {
			return *e, true
		}
	}
	return Element{}, false
}

// Background returns the first element on the canvas. An external export
// writes it as the manifest background and every later element as an icon,
// so reordering elements changes the meaning of the export.
func (c *Canvas) Background() (Element, bool) {
	if len(c.order) == 0 {
		return Element{}, false
	}
	return *c.elements[c.order[0]], true
}

var errDuplicateName = errors.New("duplicate element name")

func (c *Canvas) add(e Element) (*Element, error) {
	if err := validSize(e.W, e.H); err != nil {
		return nil, err
	}
	if _, ok := c.Lookup(e.Name); ok {
		return nil, fmt.Errorf("%w: %s", errDuplicateName, e.Name)
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	c.elements[e.ID] = &e
	c.order = append(c.order, e.ID)
	return &e, nil
}

func (c *Canvas) get(id uuid.UUID) (*Element, bool) {
	e, ok := c.elements[id]
	return e, ok
}

func (c *Canvas) remove(id uuid.UUID) bool {
	if _, ok := c.elements[id]; !ok {
		return false
	}
	delete(c.elements, id)
	for i, o := range c.order {
		if o == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

func (c *Canvas) clear() {
	c.elements = make(map[uuid.UUID]*Element)
	c.order = nil
}

func errNoElement(id uuid.UUID) error {
	return fmt.Errorf("no element %s", id)
}

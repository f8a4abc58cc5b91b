package tftlayout

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bodgit/tftlayout/resample"
)

const (
	// Sizes assumed for a document that does not record one
	documentWidth  = 320
	documentHeight = 240

	documentIndent = "    "
)

// Dimension is a canvas size in a layout document. Older documents store it
// as a string so both forms are accepted.
type Dimension int

// UnmarshalJSON accepts a JSON number or a string holding an integer.
func (d *Dimension) UnmarshalJSON(b []byte) error {
	var s string
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
	} else {
		s = string(b)
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid dimension %s", b)
	}
	*d = Dimension(n)
	return nil
}

// CanvasSize records the canvas size in a layout document.
type CanvasSize struct {
	Width  Dimension `json:"width"`
	Height Dimension `json:"height"`
}

// DocumentElement records one element in a layout document.
type DocumentElement struct {
	Name string `json:"name"`
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	W    int    `json:"w"`
	H    int    `json:"h"`
}

// Document is the portable form of a canvas.
type Document struct {
	CanvasSize *CanvasSize       `json:"canvas_size"`
	Elements   []DocumentElement `json:"elements"`
}

// Warning describes an element that could not be restored by LoadLayout.
type Warning struct {
	Index int
	Name  string
	Path  string
	Err   error
}

func (w Warning) String() string {
	return fmt.Sprintf("element %d (%s) from %s: %v", w.Index, w.Name, w.Path, w.Err)
}

// SaveLayout returns the document for the current canvas.
func (c *Compiler) SaveLayout() *Document {
	doc := &Document{
		CanvasSize: &CanvasSize{
			Width:  Dimension(c.canvas.Width),
			Height: Dimension(c.canvas.Height),
		},
		Elements: []DocumentElement{},
	}
	for _, e := range c.canvas.Elements() {
		doc.Elements = append(doc.Elements, DocumentElement{
			Name: e.Name,
			Path: e.Path,
			X:    e.X,
			Y:    e.Y,
			W:    e.W,
			H:    e.H,
		})
	}
	return doc
}

// LoadLayout replaces the canvas with the one described by doc.
//
// Each element is decoded and resampled from its path. An element that
// cannot be restored is skipped and reported as a Warning; the others load
// normally. An invalid canvas size rejects the whole document and leaves the
// current canvas untouched.
func (c *Compiler) LoadLayout(doc *Document) ([]Warning, error) {
	if doc == nil {
		return nil, newError(ErrFormat, "load", "", errors.New("no document"))
	}

	w, h := documentWidth, documentHeight
	if doc.CanvasSize != nil {
		w, h = int(doc.CanvasSize.Width), int(doc.CanvasSize.Height)
	}
	if err := validSize(w, h); err != nil {
		return nil, newError(ErrValidation, "load", "", fmt.Errorf("canvas: %w", err))
	}

	canvas := NewCanvas(w, h)
	counter := 0

	var warnings []Warning
	for i, de := range doc.Elements {
		if err := restore(canvas, de); err != nil {
			warning := Warning{Index: i, Name: de.Name, Path: de.Path, Err: err}
			c.logger.Warn("Skipped element", "index", i, "name", de.Name, "path", de.Path, "err", err)
			warnings = append(warnings, warning)
			continue
		}

		if n, ok := elementNumber(de.Name); ok {
			if n > counter {
				counter = n
			}
		} else {
			counter++
		}
	}

	c.canvas = canvas
	c.counter = counter

	c.logger.Debug("Loaded layout", "width", w, "height", h, "elements", canvas.Len(), "skipped", len(warnings))

	return warnings, nil
}

func restore(canvas *Canvas, de DocumentElement) error {
	if de.Name == "" {
		return errors.New("element has no name")
	}
	if err := validSize(de.W, de.H); err != nil {
		return err
	}
	if _, err := resample.Load(de.Path, de.W, de.H); err != nil {
		return err
	}
	_, err := canvas.add(Element{
		Name: de.Name,
		Path: de.Path,
		X:    de.X,
		Y:    de.Y,
		W:    de.W,
		H:    de.H,
	})
	return err
}

// Encode writes the document to w as indented JSON.
func (d *Document) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", documentIndent)
	return enc.Encode(d)
}

// MarshalIndent returns the document as indented JSON.
func (d *Document) MarshalIndent() ([]byte, error) {
	b := new(bytes.Buffer)
	if err := d.Encode(b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// ParseDocument decodes a layout document.
func ParseDocument(b []byte) (*Document, error) {
	doc := new(Document)
	if err := json.Unmarshal(b, doc); err != nil {
		return nil, newError(ErrFormat, "parse", "", err)
	}
	return doc, nil
}

// ReadDocument reads the layout document at path.
func ReadDocument(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, newError(ErrIO, "read", path, err)
	}
	doc, err := ParseDocument(b)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// WriteDocument writes doc to path.
func WriteDocument(path string, doc *Document) error {
	b, err := doc.MarshalIndent()
	if err != nil {
		return newError(ErrFormat, "write", path, err)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return newError(ErrIO, "write", path, err)
	}
	return nil
}

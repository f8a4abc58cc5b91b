package tftlayout

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bodgit/tftlayout/resample"
	"github.com/google/uuid"
)

const (
	importX = 10
	importY = 10
)

// elementName builds the name for the n-th imported file. Spaces are replaced
// so the name stays usable as a C identifier and a file name.
func elementName(n int, path string) string {
	return fmt.Sprintf("img_%d_%s", n, strings.ReplaceAll(filepath.Base(path), " ", "_"))
}

// elementNumber returns the number embedded in a name built by elementName.
func elementNumber(name string) (int, bool) {
	parts := strings.Split(name, "_")
	if len(parts) < 2 {
		return 0, false
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ImportElement adds the image at path to the canvas at its native size. The
// canvas is unchanged if the file cannot be decoded.
func (c *Compiler) ImportElement(path string) (*Element, error) {
	w, h, err := resample.Size(path)
	if err != nil {
		return nil, newError(ErrImage, "import", path, err)
	}

	n := c.counter + 1
	name := elementName(n, path)
	for {
		if _, ok := c.canvas.Lookup(name); !ok {
			break
		}
		n++
		name = elementName(n, path)
	}

	e, err := c.canvas.add(Element{
		Name: name,
		Path: path,
		X:    importX,
		Y:    importY,
		W:    w,
		H:    h,
	})
	if err != nil {
		return nil, newError(ErrValidation, "import", path, err)
	}
	c.counter = n

	c.logger.Debug("Imported element", "name", e.Name, "path", path, "w", w, "h", h)

	dup := *e
	return &dup, nil
}

func isImage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range resample.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ImportDir imports every image file below dir in lexical order. Hidden files
// and directories are skipped. Import stops at the first file that fails; the
// elements imported before it stay on the canvas.
func (c *Compiler) ImportDir(dir string) ([]Element, error) {
	var imported []Element
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return newError(ErrIO, "import", path, err)
		}

		// Ignore any hidden files or directories
		if path != dir && d.Name()[0] == '.' {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || !isImage(path) {
			return nil
		}

		e, err := c.ImportElement(path)
		if err != nil {
			return err
		}
		imported = append(imported, *e)

		return nil
	})
	return imported, err
}

// ResizeElement scales the element with the given ID to w by h and centers
// it on the canvas. The source is decoded again to make sure it still
// resamples; nothing changes if it does not.
func (c *Compiler) ResizeElement(id uuid.UUID, w, h int) (*Element, error) {
	e, ok := c.canvas.get(id)
	if !ok {
		return nil, newError(ErrNotFound, "resize", "", errNoElement(id))
	}
	if err := validSize(w, h); err != nil {
		return nil, newError(ErrValidation, "resize", e.Path, err)
	}

	if _, err := resample.Load(e.Path, w, h); err != nil {
		return nil, newError(ErrImage, "resize", e.Path, err)
	}

	e.W, e.H = w, h
	e.X = int(float64(c.canvas.Width)/2 - float64(w)/2)
	e.Y = int(float64(c.canvas.Height)/2 - float64(h)/2)

	c.logger.Debug("Resized element", "name", e.Name, "w", w, "h", h, "x", e.X, "y", e.Y)

	dup := *e
	return &dup, nil
}

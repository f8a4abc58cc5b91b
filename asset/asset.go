/*
Package asset writes converted layouts as RAW files plus a manifest for
displays that load their graphics from external storage.

Every element becomes one RAW file named after the last underscore separated
part of its name, cut at the first dot, limited to eight characters (not bytes) and
uppercased so it survives 8.3 filesystems. Files are written strictly in
canvas order. The manifest is only written once every RAW file has been
written; a failure part way through leaves the RAW files written so far and no
manifest.
*/
package asset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/tftlayout/manifest"
	"github.com/bodgit/tftlayout/rgb565"
)

const (
	maxBaseLength = 8
	extension     = ".RAW"
)

var (
	// ErrCollision is returned when two elements would be written to the
	// same file.
	ErrCollision = errors.New("asset: file name collision")

	errNothing = errors.New("asset: nothing to write")
)

// Item is a single element ready to be written.
type Item struct {
	Name       string
	X, Y, W, H int
	Pixels     []uint16
}

// Filename returns the RAW file name for an element called name.
func Filename(name string) string {
	base := name
	if i := strings.LastIndex(base, "_"); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.Index(base, "."); i >= 0 {
		base = base[:i]
	}
	if r := []rune(base); len(r) > maxBaseLength {
		base = string(r[:maxBaseLength])
	}
	return strings.ToUpper(base) + extension
}

// Filenames returns the RAW file name for every element name, rejecting any
// two that resolve to the same file.
func Filenames(names []string) ([]string, error) {
	files := make([]string, len(names))
	seen := make(map[string]string, len(names))
	for i, name := range names {
		files[i] = Filename(name)
		if other, ok := seen[files[i]]; ok {
			return nil, fmt.Errorf("%w: %s and %s both map to %s", ErrCollision, other, name, files[i])
		}
		seen[files[i]] = name
	}
	return files, nil
}

func writeFile(file string, pixels []uint16) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := rgb565.Encode(f, pixels); err != nil {
		return err
	}

	return f.Close()
}

// WriteError reports which file could not be written.
type WriteError struct {
	File string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("asset: writing %s: %v", e.File, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Writer writes the RAW files of a layout one element at a time, in the
// order the element names were given to NewWriter.
type Writer struct {
	dir         string
	transparent bool
	names       []string
	files       []string
	manifest    *manifest.Manifest
}

// NewWriter returns a Writer for the elements called names. No file is
// touched if two names collide.
func NewWriter(dir string, names []string, transparent bool) (*Writer, error) {
	if len(names) == 0 {
		return nil, errNothing
	}

	files, err := Filenames(names)
	if err != nil {
		return nil, err
	}

	return &Writer{
		dir:         dir,
		transparent: transparent,
		names:       names,
		files:       files,
		manifest:    manifest.New(),
	}, nil
}

// Write writes the RAW file for the next element.
func (w *Writer) Write(item Item) error {
	n := len(w.manifest.Entries())
	if n >= len(w.names) || item.Name != w.names[n] {
		return fmt.Errorf("asset: unexpected element %s", item.Name)
	}
	if len(item.Pixels) != item.W*item.H {
		return fmt.Errorf("asset: %s has %d pixels, expected %d", item.Name, len(item.Pixels), item.W*item.H)
	}

	file := filepath.Join(w.dir, w.files[n])
	if err := writeFile(file, item.Pixels); err != nil {
		return &WriteError{File: file, Err: err}
	}

	w.manifest.Add(manifest.Entry{
		File:        w.files[n],
		X:           item.X,
		Y:           item.Y,
		W:           item.W,
		H:           item.H,
		Transparent: w.transparent,
	})

	return nil
}

// Close writes the manifest and returns it. It fails without writing
// anything if an element has not been written yet.
func (w *Writer) Close() (*manifest.Manifest, error) {
	if n := len(w.manifest.Entries()); n != len(w.names) {
		return nil, fmt.Errorf("asset: %d of %d elements written", n, len(w.names))
	}

	file := filepath.Join(w.dir, manifest.Filename)
	f, err := os.Create(file)
	if err != nil {
		return nil, &WriteError{File: file, Err: err}
	}
	defer f.Close()

	if err := manifest.Encode(f, w.manifest); err != nil {
		return nil, &WriteError{File: file, Err: err}
	}

	if err := f.Close(); err != nil {
		return nil, &WriteError{File: file, Err: err}
	}

	return w.manifest, nil
}

// Write writes one RAW file per item into dir, followed by the manifest, and
// returns the manifest. The first item is the background.
func Write(dir string, items []Item, transparent bool) (*manifest.Manifest, error) {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}

	w, err := NewWriter(dir, names, transparent)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := w.Write(item); err != nil {
			return nil, err
		}
	}

	return w.Close()
}

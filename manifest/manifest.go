/*
Package manifest implements the placement document written next to exported
RAW assets.

The first element of a layout is recorded as the background and every other
element, in order, as an icon. Each entry names its RAW file and the rectangle
it is drawn to. Firmware reading the directory derives the length of each RAW
file from the width and height recorded here.
*/
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	// Filename is the name the manifest is written under in an export
	// directory
	Filename = "LAYOUT.JSON"

	indent = "    "
)

var (
	errNoBackground = errors.New("manifest: missing background")
	errBadEntry     = errors.New("manifest: invalid entry")
)

// Entry places a single RAW file on the screen.
type Entry struct {
	File        string `json:"file"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	W           int    `json:"w"`
	H           int    `json:"h"`
	Transparent bool   `json:"transparent,omitempty"`
}

// Manifest is the placement document. It implements the json.Marshaler and
// json.Unmarshaler interfaces.
type Manifest struct {
	Background *Entry  `json:"background"`
	Icons      []Entry `json:"icons"`
}

// New returns an empty manifest
func New() *Manifest {
	return &Manifest{
		Icons: []Entry{},
	}
}

// Add records e. The first entry added becomes the background.
func (m *Manifest) Add(e Entry) {
	if m.Background == nil {
		m.Background = &e
		return
	}
	m.Icons = append(m.Icons, e)
}

// Entries returns every entry in canvas order, background first.
func (m *Manifest) Entries() []Entry {
	if m.Background == nil {
		return nil
	}
	return append([]Entry{*m.Background}, m.Icons...)
}

type alias Manifest

// MarshalJSON encodes the manifest. Icons is always an array.
func (m *Manifest) MarshalJSON() ([]byte, error) {
	if m.Background == nil {
		return nil, errNoBackground
	}
	a := alias(*m)
	if a.Icons == nil {
		a.Icons = []Entry{}
	}
	return json.Marshal(&a)
}

// UnmarshalJSON decodes and validates the manifest.
func (m *Manifest) UnmarshalJSON(b []byte) error {
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if a.Background == nil {
		return errNoBackground
	}
	for _, e := range append([]Entry{*a.Background}, a.Icons...) {
		if e.File == "" || e.W <= 0 || e.H <= 0 {
			return fmt.Errorf("%w: %q", errBadEntry, e.File)
		}
	}
	*m = Manifest(a)
	if m.Icons == nil {
		m.Icons = []Entry{}
	}
	return nil
}

// Encode writes m to w as indented JSON.
func Encode(w io.Writer, m *Manifest) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", indent)
	return enc.Encode(m)
}

// Decode reads a manifest from r.
func Decode(r io.Reader) (*Manifest, error) {
	m := new(Manifest)
	if err := json.NewDecoder(r).Decode(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Read reads the manifest from the export directory dir.
func Read(dir string) (*Manifest, error) {
	f, err := os.Open(filepath.Join(dir, Filename))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

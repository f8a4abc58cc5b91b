package tftlayout

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/bodgit/tftlayout/asset"
	"github.com/bodgit/tftlayout/emit"
	"github.com/bodgit/tftlayout/manifest"
	"github.com/bodgit/tftlayout/resample"
	"github.com/bodgit/tftlayout/rgb565"
)

// Mode selects the output of Generate.
type Mode int

const (
	// Embedded produces a C++ header with the pixels compiled in
	Embedded Mode = iota
	// External produces RAW files plus a manifest in a directory
	External
)

var modeNames = map[Mode]string{
	Embedded: "embedded",
	External: "external",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode returns the Mode called s.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// Artifact is the result of a successful Generate.
type Artifact struct {
	Mode Mode

	// Source is the generated header for Embedded
	Source string

	// Dir and Manifest describe the files written for External
	Dir      string
	Manifest *manifest.Manifest
}

// convert decodes, resamples and converts the pixels of e.
func (c *Compiler) convert(op string, e Element, transparent bool) ([]uint16, error) {
	m, err := resample.Load(e.Path, e.W, e.H)
	if err != nil {
		return nil, newError(ErrImage, op, e.Path, err)
	}
	pixels, err := rgb565.Convert(m, transparent)
	if err != nil {
		return nil, newError(ErrImage, op, e.Path, err)
	}
	return pixels, nil
}

// Generate converts every element, in canvas order, and renders the layout
// in the given mode. Every source image is decoded again on each call.
//
// It stops at the first element that fails. In Embedded mode nothing is
// produced. In External mode the RAW files written before the failure are
// left in outDir and no manifest is written.
func (c *Compiler) Generate(mode Mode, transparent bool, outDir string) (*Artifact, error) {
	if c.canvas.Len() == 0 {
		return nil, newError(ErrValidation, "generate", "", errors.New("canvas has no elements"))
	}

	c.logger.Debug("Generating layout", "mode", mode, "transparency", transparent, "elements", c.canvas.Len())

	switch mode {
	case Embedded:
		return c.generateEmbedded(transparent)
	case External:
		return c.generateExternal(transparent, outDir)
	}
	return nil, newError(ErrValidation, "generate", "", fmt.Errorf("unknown mode %d", int(mode)))
}

func (c *Compiler) generateEmbedded(transparent bool) (*Artifact, error) {
	elements := c.canvas.Elements()
	items := make([]emit.Item, 0, len(elements))
	for _, e := range elements {
		pixels, err := c.convert("generate", e, transparent)
		if err != nil {
			return nil, err
		}
		items = append(items, emit.Item{Name: e.Name, X: e.X, Y: e.Y, W: e.W, H: e.H, Pixels: pixels})
	}

	b := new(bytes.Buffer)
	if err := emit.Encode(b, items, transparent); err != nil {
		return nil, newError(ErrImage, "generate", "", err)
	}

	return &Artifact{
		Mode:   Embedded,
		Source: b.String(),
	}, nil
}

func (c *Compiler) generateExternal(transparent bool, dir string) (*Artifact, error) {
	if dir == "" {
		return nil, newError(ErrValidation, "generate", "", errors.New("no output directory"))
	}

	elements := c.canvas.Elements()
	names := make([]string, len(elements))
	for i, e := range elements {
		names[i] = e.Name
	}

	w, err := asset.NewWriter(dir, names, transparent)
	if err != nil {
		return nil, newError(ErrValidation, "generate", dir, err)
	}

	for _, e := range elements {
		pixels, err := c.convert("generate", e, transparent)
		if err != nil {
			return nil, err
		}
		if err := w.Write(asset.Item{Name: e.Name, X: e.X, Y: e.Y, W: e.W, H: e.H, Pixels: pixels}); err != nil {
			return nil, writeError(dir, err)
		}
		c.logger.Debug("Wrote asset", "name", e.Name, "file", asset.Filename(e.Name))
	}

	m, err := w.Close()
	if err != nil {
		return nil, writeError(dir, err)
	}

	c.logger.Debug("Wrote manifest", "file", manifest.Filename, "icons", len(m.Icons))

	return &Artifact{
		Mode:     External,
		Dir:      dir,
		Manifest: m,
	}, nil
}

func writeError(dir string, err error) error {
	var werr *asset.WriteError
	if errors.As(err, &werr) {
		return newError(ErrIO, "generate", werr.File, werr.Err)
	}
	return newError(ErrIO, "generate", dir, err)
}

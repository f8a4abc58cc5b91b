package asset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/tftlayout/manifest"
	"github.com/bodgit/tftlayout/rgb565"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(n int, v uint16) []uint16 {
	p := make([]uint16, n)
	for i := range p {
		p[i] = v
	}
	return p
}

func TestFilename(t *testing.T) {
	tables := []struct {
		name, want string
	}{
		{"img_1_a.png", "A.RAW"},
		{"img_2_b.png", "B.RAW"},
		{"img_3_background.jpg", "BACKGROU.RAW"},
		{"img_4_icon.tar.gz", "ICON.RAW"},
		{"logo.png", "LOGO.RAW"},
		{"img_5_", ".RAW"},
		{"img_6_abcdefgç.png", "ABCDEFGÇ.RAW"},
		{"img_7_ímagemabc.png", "ÍMAGEMAB.RAW"},
		{"img_8_ícone.png", "ÍCONE.RAW"},
	}

	for _, table := range tables {
		assert.Equal(t, table.want, Filename(table.name), table.name)
	}
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()

	// Scenario A
	items := []Item{
		{Name: "img_1_a.png", X: 10, Y: 10, W: 50, H: 50, Pixels: fill(2500, 0x1234)},
		{Name: "img_2_b.png", X: 100, Y: 20, W: 30, H: 30, Pixels: fill(900, 0xabcd)},
	}

	m, err := Write(dir, items, false)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"A.RAW", "B.RAW", manifest.Filename}, names)

	info, err := os.Stat(filepath.Join(dir, "A.RAW"))
	require.NoError(t, err)
	assert.Equal(t, int64(5000), info.Size())

	info, err = os.Stat(filepath.Join(dir, "B.RAW"))
	require.NoError(t, err)
	assert.Equal(t, int64(1800), info.Size())

	b, err := os.ReadFile(filepath.Join(dir, "B.RAW"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xab, 0xcd}, b[:2])

	onDisk, err := manifest.Read(dir)
	require.NoError(t, err)
	assert.Equal(t, m, onDisk)
	assert.Equal(t, manifest.Entry{File: "A.RAW", X: 10, Y: 10, W: 50, H: 50}, *onDisk.Background)
	require.Len(t, onDisk.Icons, 1)
	assert.Equal(t, manifest.Entry{File: "B.RAW", X: 100, Y: 20, W: 30, H: 30}, onDisk.Icons[0])
}

func TestWriteTransparent(t *testing.T) {
	dir := t.TempDir()

	items := []Item{
		{Name: "img_1_bg.png", W: 1, H: 1, Pixels: []uint16{rgb565.TransparencyKey}},
		{Name: "img_2_x.png", W: 1, H: 1, Pixels: []uint16{0}},
		{Name: "img_3_y.png", W: 1, H: 1, Pixels: []uint16{0}},
	}

	m, err := Write(dir, items, true)
	require.NoError(t, err)

	assert.True(t, m.Background.Transparent)
	require.Len(t, m.Icons, 2)
	assert.Equal(t, "X.RAW", m.Icons[0].File)
	assert.Equal(t, "Y.RAW", m.Icons[1].File)
	for _, e := range m.Icons {
		assert.True(t, e.Transparent)
	}
}

func TestWriteCollision(t *testing.T) {
	dir := t.TempDir()

	items := []Item{
		{Name: "img_1_icon.png", W: 1, H: 1, Pixels: []uint16{0}},
		{Name: "img_2_icon.bmp", W: 1, H: 1, Pixels: []uint16{0}},
	}

	_, err := Write(dir, items, false)
	assert.True(t, errors.Is(err, ErrCollision))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteFailure(t *testing.T) {
	dir := t.TempDir()

	// A directory where the second RAW file should go makes its creation
	// fail after the first file has been written
	require.NoError(t, os.Mkdir(filepath.Join(dir, "B.RAW"), 0755))

	items := []Item{
		{Name: "img_1_a.png", W: 1, H: 1, Pixels: []uint16{0}},
		{Name: "img_2_b.png", W: 1, H: 1, Pixels: []uint16{0}},
		{Name: "img_3_c.png", W: 1, H: 1, Pixels: []uint16{0}},
	}

	_, err := Write(dir, items, false)
	var werr *WriteError
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, filepath.Join(dir, "B.RAW"), werr.File)

	assert.FileExists(t, filepath.Join(dir, "A.RAW"))
	assert.NoFileExists(t, filepath.Join(dir, "C.RAW"))
	assert.NoFileExists(t, filepath.Join(dir, manifest.Filename))
}

func TestWriteEmpty(t *testing.T) {
	_, err := Write(t.TempDir(), nil, false)
	assert.Error(t, err)
}

func TestWriterOrder(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWriter(dir, []string{"img_1_a.png", "img_2_b.png"}, false)
	require.NoError(t, err)

	assert.Error(t, w.Write(Item{Name: "img_2_b.png", W: 1, H: 1, Pixels: []uint16{0}}))
	require.NoError(t, w.Write(Item{Name: "img_1_a.png", W: 1, H: 1, Pixels: []uint16{0}}))

	_, err = w.Close()
	assert.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, manifest.Filename))

	require.NoError(t, w.Write(Item{Name: "img_2_b.png", W: 1, H: 1, Pixels: []uint16{0}}))
	m, err := w.Close()
	require.NoError(t, err)
	assert.Equal(t, "A.RAW", m.Background.File)
	assert.FileExists(t, filepath.Join(dir, manifest.Filename))
}

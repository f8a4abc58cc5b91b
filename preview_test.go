package tftlayout

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreview(t *testing.T) {
	c, _ := scenario(t)

	m, err := c.Preview(true, true)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 240, 135), m.Bounds())

	assert.Equal(t, color.NRGBA{0, 0, 0, 0xff}, m.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{0xff, 0, 0, 0xff}, m.NRGBAAt(10, 10))
	assert.Equal(t, color.NRGBA{0xff, 0, 0, 0xff}, m.NRGBAAt(59, 59))
	assert.Equal(t, color.NRGBA{0, 0, 0, 0xff}, m.NRGBAAt(60, 60))

	// b.png is mostly transparent so it is keyed out entirely
	assert.Equal(t, color.NRGBA{0, 0, 0, 0xff}, m.NRGBAAt(110, 30))

	m, err = c.Preview(true, false)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0, 0, 0xff, 0xff}, m.NRGBAAt(110, 30))
}

func TestPreviewMissingSource(t *testing.T) {
	c, dir := scenario(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "a.png")))

	_, err := c.Preview(false, false)
	assert.True(t, errors.Is(err, ErrImage))
}

/*
Package resample decodes source images and scales them to an exact pixel size
with a Lanczos filter.

PNG, JPEG, GIF and BMP are decoded through imaging; WebP is registered from
golang.org/x/image. Pixels are taken as stored; EXIF orientation is ignored so
an element keeps the size its file reports. Nothing is cached, every call goes
back to the file.
*/
package resample

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

var errBadSize = errors.New("resample: dimensions must be positive")

// Extensions lists the file extensions of the supported source formats.
var Extensions = []string{".bmp", ".gif", ".jpeg", ".jpg", ".png", ".webp"}

// Open decodes the image at path.
func Open(path string) (image.Image, error) {
	m, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("resample: %w", err)
	}
	return m, nil
}

// Resize scales m to exactly w by h pixels. The result is always
// non-premultiplied with its origin at (0, 0).
func Resize(m image.Image, w, h int) (*image.NRGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, errBadSize
	}
	b := m.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, errors.New("resample: source image is empty")
	}
	return imaging.Resize(m, w, h, imaging.Lanczos), nil
}

// Load opens the image at path and scales it to w by h.
func Load(path string, w, h int) (*image.NRGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, errBadSize
	}
	m, err := Open(path)
	if err != nil {
		return nil, err
	}
	return Resize(m, w, h)
}

// Size returns the native dimensions of the image at path.
func Size(path string) (int, int, error) {
	m, err := Open(path)
	if err != nil {
		return 0, 0, err
	}
	b := m.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return 0, 0, errors.New("resample: source image is empty")
	}
	return b.Dx(), b.Dy(), nil
}

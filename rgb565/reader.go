package rgb565

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"io"
)

var (
	errNotEnough = errors.New("rgb565: not enough image data")
	errTooMuch   = errors.New("rgb565: too much image data")
	errBadSize   = errors.New("rgb565: invalid dimensions")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

type decoder struct {
	r io.Reader

	width, height int
	transparent   bool

	codes []uint16
	image *image.NRGBA
}

func (d *decoder) readCodes() error {
	tmp := make([]byte, d.width*d.height*bytesPerPixel)
	if err := readFull(d.r, tmp); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return errNotEnough
	}

	d.codes = make([]uint16, d.width*d.height)
	for i := range d.codes {
		d.codes[i] = binary.BigEndian.Uint16(tmp[i*bytesPerPixel:])
	}

	var one [1]byte
	if n, err := d.r.Read(one[:]); n != 0 || (err != io.EOF && err != io.ErrUnexpectedEOF) {
		if err != nil {
			return err
		}
		return errTooMuch
	}

	return nil
}

func (d *decoder) decode(r io.Reader, codesOnly bool) error {
	if d.width <= 0 || d.height <= 0 {
		return errBadSize
	}
	d.r = r

	if err := d.readCodes(); err != nil {
		return err
	}

	if codesOnly {
		return nil
	}

	d.image = image.NewNRGBA(image.Rect(0, 0, d.width, d.height))
	for i, c := range d.codes {
		x, y := i%d.width, i/d.width
		if d.transparent && c == TransparencyKey {
			d.image.SetNRGBA(x, y, color.NRGBA{})
			continue
		}
		r, g, b := Unpack(c)
		d.image.SetNRGBA(x, y, color.NRGBA{r, g, b, 0xff})
	}

	return nil
}

// Decode reads a width by height RAW stream from r and returns it as an
// image. If transparent is set, pixels holding TransparencyKey decode as
// fully transparent.
func Decode(r io.Reader, width, height int, transparent bool) (*image.NRGBA, error) {
	d := decoder{width: width, height: height, transparent: transparent}
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeCodes reads a width by height RAW stream from r and returns the packed
// values without expanding them.
func DecodeCodes(r io.Reader, width, height int) ([]uint16, error) {
	d := decoder{width: width, height: height}
	if err := d.decode(r, true); err != nil {
		return nil, err
	}
	return d.codes, nil
}

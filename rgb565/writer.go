package rgb565

import (
	"bufio"
	"encoding/binary"
	"io"
)

type encoder struct {
	w *bufio.Writer
}

func (e *encoder) encode(codes []uint16) error {
	var tmp [bytesPerPixel]byte
	for _, c := range codes {
		binary.BigEndian.PutUint16(tmp[:], c)
		if _, err := e.w.Write(tmp[:]); err != nil {
			return err
		}
	}
	return e.w.Flush()
}

// Encode writes codes to w as a RAW stream.
func Encode(w io.Writer, codes []uint16) error {
	e := encoder{w: bufio.NewWriter(w)}

	return e.encode(codes)
}

// EncodedSize returns the length in bytes of a RAW stream for a width by
// height image.
func EncodedSize(width, height int) int64 {
	return int64(width) * int64(height) * bytesPerPixel
}

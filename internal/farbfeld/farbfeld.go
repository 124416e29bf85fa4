// Package farbfeld reads and writes the suckless farbfeld image format:
// an 8-byte magic, big-endian uint32 width and height, then width*height
// pixels of 16-bit big-endian RGBA. The format is lossless, which the
// asset pipeline relies on when regenerating textures.
package farbfeld

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// HeaderLen is the fixed byte length of a farbfeld header.
const HeaderLen = 8 + 4 + 4

// maxDim bounds decoded dimensions so a corrupt header cannot trigger a
// multi-gigabyte allocation.
const maxDim = 1 << 14

var (
	// ErrBadMagic indicates the stream does not start with "farbfeld".
	ErrBadMagic = errors.New("farbfeld: bad magic number")
	// ErrTruncated indicates the stream ended before the declared pixel data.
	ErrTruncated = errors.New("farbfeld: truncated data")
	// ErrDimensions indicates a zero or implausibly large width/height.
	ErrDimensions = errors.New("farbfeld: invalid dimensions")
)

var magic = [8]byte{'f', 'a', 'r', 'b', 'f', 'e', 'l', 'd'}

// Image is a decoded farbfeld image. Pix holds 4 channel values per pixel
// (RGBA order), row-major, at full 16-bit depth.
type Image struct {
	Width  int
	Height int
	Pix    []uint16
}

// Decode parses a complete farbfeld image from r.
func Decode(r io.Reader) (*Image, error) {
	var head [HeaderLen]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: short header", ErrTruncated)
		}
		return nil, fmt.Errorf("farbfeld: read header: %w", err)
	}
	if [8]byte(head[:8]) != magic {
		return nil, ErrBadMagic
	}

	width := binary.BigEndian.Uint32(head[8:12])
	height := binary.BigEndian.Uint32(head[12:16])
	if width == 0 || height == 0 || width > maxDim || height > maxDim {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
	}

	raw := make([]byte, int(width)*int(height)*8)
	if _, err := io.ReadFull(r, raw); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: expected %d pixel bytes", ErrTruncated, len(raw))
		}
		return nil, fmt.Errorf("farbfeld: read pixels: %w", err)
	}

	pix := make([]uint16, len(raw)/2)
	for i := range pix {
		pix[i] = binary.BigEndian.Uint16(raw[2*i:])
	}
	return &Image{Width: int(width), Height: int(height), Pix: pix}, nil
}

// Encode writes img to w in farbfeld format. Encoding a decoded image
// reproduces the original bytes exactly.
func Encode(w io.Writer, img *Image) error {
	if img.Width <= 0 || img.Height <= 0 || img.Width > maxDim || img.Height > maxDim {
		return fmt.Errorf("%w: %dx%d", ErrDimensions, img.Width, img.Height)
	}
	if want := img.Width * img.Height * 4; len(img.Pix) != want {
		return fmt.Errorf("farbfeld: pixel buffer holds %d values, want %d", len(img.Pix), want)
	}

	var head [HeaderLen]byte
	copy(head[:8], magic[:])
	binary.BigEndian.PutUint32(head[8:12], uint32(img.Width))
	binary.BigEndian.PutUint32(head[12:16], uint32(img.Height))
	if _, err := w.Write(head[:]); err != nil {
		return fmt.Errorf("farbfeld: write header: %w", err)
	}

	raw := make([]byte, len(img.Pix)*2)
	for i, v := range img.Pix {
		binary.BigEndian.PutUint16(raw[2*i:], v)
	}
	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("farbfeld: write pixels: %w", err)
	}
	return nil
}

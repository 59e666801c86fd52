// Package raster reads PNG files at the byte level: a cheap header probe
// for dimension checks and a full decoder that reconstructs scanlines for
// alpha analysis. Only the baseline encoding is supported: 8-bit channels,
// no palette, no interlacing.
package raster

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/halvdan/iconpack/internal/formaterr"
)

// pngSignature is the fixed 8-byte prefix of every PNG file.
var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// ColorKind is the PNG channel composition per pixel. Palette-indexed
// images are not representable and are rejected at decode time.
type ColorKind uint8

const (
	Grayscale      ColorKind = 0
	Truecolor      ColorKind = 2
	GrayscaleAlpha ColorKind = 4
	TruecolorAlpha ColorKind = 6
)

// Channels returns the number of bytes per pixel for the kind, or 0 for
// unsupported kinds.
func (k ColorKind) Channels() int {
	switch k {
	case Grayscale:
		return 1
	case GrayscaleAlpha:
		return 2
	case Truecolor:
		return 3
	case TruecolorAlpha:
		return 4
	}
	return 0
}

// HasAlpha reports whether the kind carries an alpha channel.
func (k ColorKind) HasAlpha() bool {
	return k == GrayscaleAlpha || k == TruecolorAlpha
}

func (k ColorKind) String() string {
	switch k {
	case Grayscale:
		return "grayscale"
	case Truecolor:
		return "truecolor"
	case GrayscaleAlpha:
		return "grayscale+alpha"
	case TruecolorAlpha:
		return "truecolor+alpha"
	}
	return fmt.Sprintf("unknown(%d)", uint8(k))
}

// Image is a fully decoded PNG: reconstructed scanlines with one byte per
// channel. Every row has length Width × Channels.
type Image struct {
	Width  int
	Height int
	Kind   ColorKind
	rows   [][]byte
}

// AlphaAt returns the alpha value at (x, y). Kinds without an alpha
// channel are fully opaque everywhere.
func (im *Image) AlphaAt(x, y int) uint8 {
	switch im.Kind {
	case GrayscaleAlpha:
		return im.rows[y][x*2+1]
	case TruecolorAlpha:
		return im.rows[y][x*4+3]
	}
	return 255
}

// RGBA8At returns the pixel at (x, y) expanded to 8-bit RGBA.
func (im *Image) RGBA8At(x, y int) (r, g, b, a uint8) {
	row := im.rows[y]
	switch im.Kind {
	case Grayscale:
		v := row[x]
		return v, v, v, 255
	case GrayscaleAlpha:
		v := row[x*2]
		return v, v, v, row[x*2+1]
	case Truecolor:
		i := x * 3
		return row[i], row[i+1], row[i+2], 255
	case TruecolorAlpha:
		i := x * 4
		return row[i], row[i+1], row[i+2], row[i+3]
	}
	return 0, 0, 0, 0
}

// Header carries the dimensions read from a PNG's IHDR chunk.
type Header struct {
	Width  int
	Height int
}

// ReadHeader verifies the PNG signature and reads width and height from
// the leading IHDR chunk without decompressing anything. name appears in
// error messages only and may be empty for in-memory data.
func ReadHeader(data []byte, name string) (Header, error) {
	if len(data) < 8 || !bytes.Equal(data[:8], pngSignature) {
		return Header{}, formaterr.New(name, formaterr.BadSignature, "not a PNG file")
	}
	if len(data) < 24 {
		return Header{}, formaterr.New(name, formaterr.TruncatedChunkStream,
			"truncated before IHDR (%d bytes)", len(data))
	}
	if string(data[12:16]) != "IHDR" {
		return Header{}, formaterr.New(name, formaterr.InvalidHeader,
			"first chunk is %q, want IHDR", data[12:16])
	}
	w := binary.BigEndian.Uint32(data[16:20])
	h := binary.BigEndian.Uint32(data[20:24])
	return Header{Width: int(w), Height: int(h)}, nil
}

// ReadHeaderFile reads path and probes its dimensions via ReadHeader.
func ReadHeaderFile(path string) (Header, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Header{}, fmt.Errorf("raster: %w", err)
	}
	return ReadHeader(data, path)
}

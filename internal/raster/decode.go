package raster

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/halvdan/iconpack/internal/formaterr"
)

// maxPNGSize is the maximum PNG file size we'll load (64 MB).
const maxPNGSize = 64 * 1024 * 1024

// DecodeFile reads path and fully decodes it via Decode.
func DecodeFile(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("raster: %w", err)
	}
	if len(data) > maxPNGSize {
		return nil, fmt.Errorf("raster: %s: file too large (%d bytes, max %d)", path, len(data), maxPNGSize)
	}
	return Decode(data, path)
}

// Decode reconstructs every scanline of a baseline PNG. name appears in
// error messages only.
//
// Chunk CRCs are skipped, not verified; a corrupted stream surfaces as an
// inflate or size error instead.
func Decode(data []byte, name string) (*Image, error) {
	if len(data) < 8 || !bytes.Equal(data[:8], pngSignature) {
		return nil, formaterr.New(name, formaterr.BadSignature, "not a PNG file")
	}

	var (
		width, height int
		bitDepth      uint8
		kind          ColorKind
		haveIHDR      bool
		idat          []byte
	)

	cursor := 8
scan:
	for cursor+8 <= len(data) {
		length := int(binary.BigEndian.Uint32(data[cursor : cursor+4]))
		chunkType := string(data[cursor+4 : cursor+8])
		payloadStart := cursor + 8
		if payloadStart+length+4 > len(data) {
			return nil, formaterr.New(name, formaterr.TruncatedChunkStream,
				"chunk %s extends past end of file", chunkType)
		}
		payload := data[payloadStart : payloadStart+length]
		cursor = payloadStart + length + 4 // skip CRC

		switch chunkType {
		case "IHDR":
			if length < 13 {
				return nil, formaterr.New(name, formaterr.InvalidHeader,
					"IHDR payload is %d bytes, want 13", length)
			}
			width = int(binary.BigEndian.Uint32(payload[0:4]))
			height = int(binary.BigEndian.Uint32(payload[4:8]))
			bitDepth = payload[8]
			kind = ColorKind(payload[9])
			if payload[10] != 0 || payload[11] != 0 || payload[12] != 0 {
				return nil, formaterr.New(name, formaterr.UnsupportedEncoding,
					"compression=%d filter=%d interlace=%d, want all zero",
					payload[10], payload[11], payload[12])
			}
			haveIHDR = true
		case "IDAT":
			idat = append(idat, payload...)
		case "IEND":
			break scan
		}
	}

	if !haveIHDR {
		return nil, formaterr.New(name, formaterr.InvalidHeader, "missing IHDR chunk")
	}
	if bitDepth != 8 {
		return nil, formaterr.New(name, formaterr.UnsupportedBitDepth,
			"bit depth %d, want 8", bitDepth)
	}
	bpp := kind.Channels()
	if bpp == 0 {
		return nil, formaterr.New(name, formaterr.UnsupportedColorKind,
			"color type %d", uint8(kind))
	}

	zr, err := zlib.NewReader(bytes.NewReader(idat))
	if err != nil {
		return nil, fmt.Errorf("raster: %s: inflate: %w", name, err)
	}
	raw, err := io.ReadAll(zr)
	zr.Close()
	if err != nil {
		return nil, fmt.Errorf("raster: %s: inflate: %w", name, err)
	}

	stride := width * bpp
	expected := (stride + 1) * height
	if len(raw) != expected {
		return nil, formaterr.New(name, formaterr.SizeMismatch,
			"decompressed %d bytes, want %d", len(raw), expected)
	}

	rows := make([][]byte, height)
	prev := make([]byte, stride)
	pos := 0
	for y := 0; y < height; y++ {
		filter := raw[pos]
		pos++
		src := raw[pos : pos+stride]
		pos += stride
		cur := make([]byte, stride)

		switch filter {
		case 0: // None
			copy(cur, src)
		case 1: // Sub
			for i := 0; i < stride; i++ {
				var left byte
				if i >= bpp {
					left = cur[i-bpp]
				}
				cur[i] = src[i] + left
			}
		case 2: // Up
			for i := 0; i < stride; i++ {
				cur[i] = src[i] + prev[i]
			}
		case 3: // Average
			for i := 0; i < stride; i++ {
				var left byte
				if i >= bpp {
					left = cur[i-bpp]
				}
				cur[i] = src[i] + byte((int(left)+int(prev[i]))/2)
			}
		case 4: // Paeth
			for i := 0; i < stride; i++ {
				var left, upLeft byte
				if i >= bpp {
					left = cur[i-bpp]
					upLeft = prev[i-bpp]
				}
				cur[i] = src[i] + paeth(left, prev[i], upLeft)
			}
		default:
			return nil, formaterr.New(name, formaterr.UnsupportedFilterType,
				"filter type %d on row %d", filter, y)
		}

		rows[y] = cur
		prev = cur
	}

	return &Image{Width: width, Height: height, Kind: kind, rows: rows}, nil
}

// paeth picks the predictor among left (a), above (b), and upper-left (c).
// Ties resolve in the order a, b, c.
func paeth(a, b, c byte) byte {
	p := int(a) + int(b) - int(c)
	pa := abs(p - int(a))
	pb := abs(p - int(b))
	pc := abs(p - int(c))
	if pa <= pb && pa <= pc {
		return a
	}
	if pb <= pc {
		return b
	}
	return c
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Package ico packs PNG blobs into an ICO container and reads container
// directories back. Entries must be square and at most 256 pixels on a
// side; the format stores 256 as 0 in its single-byte size fields.
package ico

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/halvdan/iconpack/internal/formaterr"
	"github.com/halvdan/iconpack/internal/raster"
)

const (
	headerSize   = 6
	entrySize    = 16
	maxEntrySide = 256
)

// SourceImage is one PNG payload to embed. Name appears in error messages
// and may be empty for in-memory data.
type SourceImage struct {
	Name string
	Data []byte
}

// Build packs the given PNGs into a single ICO byte stream, preserving
// order. Every image must be a square PNG no larger than 256x256.
func Build(images []SourceImage) ([]byte, error) {
	out := make([]byte, headerSize, headerSize+entrySize*len(images))
	binary.LittleEndian.PutUint16(out[0:], 0) // reserved
	binary.LittleEndian.PutUint16(out[2:], 1) // type: icon
	binary.LittleEndian.PutUint16(out[4:], uint16(len(images)))

	offset := headerSize + entrySize*len(images)
	var payload []byte
	for _, img := range images {
		hdr, err := raster.ReadHeader(img.Data, img.Name)
		if err != nil {
			return nil, err
		}
		if hdr.Width != hdr.Height {
			return nil, formaterr.New(img.Name, formaterr.NonSquareEntry,
				"not square (%dx%d)", hdr.Width, hdr.Height)
		}
		if hdr.Width > maxEntrySide || hdr.Height > maxEntrySide {
			return nil, formaterr.New(img.Name, formaterr.OversizedEntry,
				"%dx%d exceeds ICO max size (256x256)", hdr.Width, hdr.Height)
		}

		entry := make([]byte, entrySize)
		entry[0] = sizeByte(hdr.Width)
		entry[1] = sizeByte(hdr.Height)
		entry[2] = 0                                  // color count (0 = truecolor)
		entry[3] = 0                                  // reserved
		binary.LittleEndian.PutUint16(entry[4:], 1)   // planes
		binary.LittleEndian.PutUint16(entry[6:], 32)  // bit depth hint
		binary.LittleEndian.PutUint32(entry[8:], uint32(len(img.Data)))
		binary.LittleEndian.PutUint32(entry[12:], uint32(offset))
		out = append(out, entry...)

		payload = append(payload, img.Data...)
		offset += len(img.Data)
	}

	return append(out, payload...), nil
}

// BuildFiles reads each PNG path and packs them via Build.
func BuildFiles(pngPaths []string) ([]byte, error) {
	images := make([]SourceImage, len(pngPaths))
	for i, p := range pngPaths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("ico: %w", err)
		}
		images[i] = SourceImage{Name: p, Data: data}
	}
	return Build(images)
}

// ReadSizes parses an ICO directory and returns the nominal size of each
// entry in directory order. Payloads are not extracted. name appears in
// error messages only.
func ReadSizes(data []byte, name string) ([]int, error) {
	if len(data) < headerSize {
		return nil, formaterr.New(name, formaterr.DirectoryTruncated,
			"file too short (%d bytes)", len(data))
	}
	reserved := binary.LittleEndian.Uint16(data[0:2])
	kind := binary.LittleEndian.Uint16(data[2:4])
	count := int(binary.LittleEndian.Uint16(data[4:6]))
	if reserved != 0 || kind != 1 {
		return nil, formaterr.New(name, formaterr.InvalidHeader,
			"reserved=%d type=%d, want 0 and 1", reserved, kind)
	}
	if len(data) < headerSize+count*entrySize {
		return nil, formaterr.New(name, formaterr.DirectoryTruncated,
			"directory needs %d bytes, have %d", headerSize+count*entrySize, len(data))
	}

	sizes := make([]int, 0, count)
	for i := 0; i < count; i++ {
		off := headerSize + i*entrySize
		w := resolveSize(data[off])
		h := resolveSize(data[off+1])
		if w != h {
			return nil, formaterr.New(name, formaterr.NonSquareEntry,
				"entry %d is %dx%d", i, w, h)
		}
		sizes = append(sizes, w)
	}
	return sizes, nil
}

// ReadSizesFile reads path and parses its directory via ReadSizes.
func ReadSizesFile(path string) ([]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ico: %w", err)
	}
	return ReadSizes(data, path)
}

// sizeByte encodes a dimension into the single-byte directory field,
// where 0 stands for 256.
func sizeByte(n int) byte {
	if n == maxEntrySide {
		return 0
	}
	return byte(n)
}

// resolveSize maps the single-byte directory field back to pixels (0 means 256).
func resolveSize(b byte) int {
	if b == 0 {
		return maxEntrySide
	}
	return int(b)
}

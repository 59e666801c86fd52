// Package fixture renders synthetic icon images used to exercise the
// validation pipeline without real artwork. Each kind targets a specific
// coverage outcome: full spans the whole canvas, sparse stays well below
// any sane threshold, transparent has no visible pixels at all, and
// glyph looks like a plausible app icon that passes validation.
package fixture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// Kind selects which synthetic image Render produces.
type Kind string

const (
	KindFull        Kind = "full"
	KindSparse      Kind = "sparse"
	KindTransparent Kind = "transparent"
	KindGlyph       Kind = "glyph"
)

// Kinds lists all fixture kinds for usage messages.
func Kinds() []Kind {
	return []Kind{KindFull, KindSparse, KindTransparent, KindGlyph}
}

var plateColor = color.RGBA{226, 119, 58, 255}

// Render draws a size x size fixture image of the given kind.
func Render(kind Kind, size int) (image.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("fixture: size must be positive, got %d", size)
	}

	dc := gg.NewContext(size, size)
	dc.SetColor(color.RGBA{0, 0, 0, 0})
	dc.Clear()

	s := float64(size)
	switch kind {
	case KindFull:
		drawPlate(dc, s, 0)
	case KindSparse:
		dc.SetColor(plateColor)
		dc.DrawCircle(s/2, s/2, s/10)
		dc.Fill()
	case KindTransparent:
		// Nothing visible.
	case KindGlyph:
		drawPlate(dc, s, s*0.04)
		drawGlyph(dc, s)
	default:
		return nil, fmt.Errorf("fixture: unknown kind %q", kind)
	}

	return dc.Image(), nil
}

// EncodePNG renders a fixture and encodes it as PNG bytes.
func EncodePNG(kind Kind, size int) ([]byte, error) {
	img, err := Render(kind, size)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("fixture: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// drawPlate fills a rounded rectangle inset by margin on every side.
func drawPlate(dc *gg.Context, s, margin float64) {
	side := s - 2*margin
	dc.SetColor(plateColor)
	dc.DrawRoundedRectangle(margin, margin, side, side, side/8)
	dc.Fill()
}

// drawGlyph draws a white letter centered on the plate.
func drawGlyph(dc *gg.Context, s float64) {
	face, err := loadFontFace(s * 0.6)
	if err != nil {
		return
	}
	dc.SetFontFace(face)

	w, h := dc.MeasureString("A")
	dc.SetColor(color.RGBA{255, 255, 255, 255})
	dc.DrawString("A", s/2-w/2, s/2+h/2)
}

// loadFontFace loads the embedded Go Bold font at the given size.
func loadFontFace(size float64) (font.Face, error) {
	fnt, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return face, nil
}

// Package coverage measures how much of a decoded image's canvas its
// visible pixels span. A pixel is visible when its alpha is nonzero;
// coverage is the bounding box of visible pixels relative to the canvas.
package coverage

import (
	"github.com/halvdan/iconpack/internal/formaterr"
	"github.com/halvdan/iconpack/internal/raster"
)

// Report describes the visible bounding box of an image. Ratios are the
// box extent divided by the canvas dimension, in (0, 1].
type Report struct {
	MinX, MinY  int
	MaxX, MaxY  int
	WidthRatio  float64
	HeightRatio float64
}

// Measure scans every pixel of img and reports the bounding box of all
// pixels with alpha > 0. It fails with a fully-transparent-image cause
// when no pixel is visible. name appears in error messages only.
func Measure(img *raster.Image, name string) (Report, error) {
	minX, minY := img.Width, img.Height
	maxX, maxY := -1, -1
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			if img.AlphaAt(x, y) == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < minX {
		return Report{}, formaterr.New(name, formaterr.FullyTransparent,
			"image has no visible pixels")
	}
	return Report{
		MinX:        minX,
		MinY:        minY,
		MaxX:        maxX,
		MaxY:        maxY,
		WidthRatio:  float64(maxX-minX+1) / float64(img.Width),
		HeightRatio: float64(maxY-minY+1) / float64(img.Height),
	}, nil
}

package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/halvdan/iconpack/internal/raster"
)

// decodeImage encodes src as PNG and runs it through the raster decoder,
// the same path probeCmd takes.
func decodeImage(t *testing.T, src image.Image) *raster.Image {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	img, err := raster.Decode(buf.Bytes(), "probe.png")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return img
}

// regionFixture is an 8x8 white canvas with a red block spanning
// x 2..4, y 3..5 inclusive.
func regionFixture(t *testing.T) *raster.Image {
	t.Helper()
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	for y := 3; y <= 5; y++ {
		for x := 2; x <= 4; x++ {
			src.SetNRGBA(x, y, color.NRGBA{255, 0, 0, 255})
		}
	}
	return decodeImage(t, src)
}

// --- parsePair / parseQuad ---

func TestParsePair(t *testing.T) {
	x, y, err := parsePair("10,20")
	if err != nil {
		t.Fatalf("parsePair: %v", err)
	}
	if x != 10 || y != 20 {
		t.Errorf("parsePair = (%d, %d), want (10, 20)", x, y)
	}

	x, y, err = parsePair(" 7 , 9 ")
	if err != nil {
		t.Fatalf("parsePair with spaces: %v", err)
	}
	if x != 7 || y != 9 {
		t.Errorf("parsePair = (%d, %d), want (7, 9)", x, y)
	}
}

func TestParsePairInvalid(t *testing.T) {
	for _, s := range []string{"", "10", "10,20,30", "a,b"} {
		if _, _, err := parsePair(s); err == nil {
			t.Errorf("parsePair(%q) succeeded, want error", s)
		}
	}
}

func TestParseQuad(t *testing.T) {
	x1, y1, x2, y2, err := parseQuad("0, 0, 100, 50")
	if err != nil {
		t.Fatalf("parseQuad: %v", err)
	}
	if x1 != 0 || y1 != 0 || x2 != 100 || y2 != 50 {
		t.Errorf("parseQuad = (%d, %d, %d, %d), want (0, 0, 100, 50)", x1, y1, x2, y2)
	}
}

func TestParseQuadInvalid(t *testing.T) {
	for _, s := range []string{"", "1,2,3", "1,2,3,4,5", "1,2,x,4"} {
		if _, _, _, _, err := parseQuad(s); err == nil {
			t.Errorf("parseQuad(%q) succeeded, want error", s)
		}
	}
}

// --- probePoint ---

func TestProbePoint(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			src.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	src.SetNRGBA(1, 0, color.NRGBA{10, 20, 30, 255})
	img := decodeImage(t, src)

	res := probePoint(img, 1, 0)
	info, ok := res.(pointInfo)
	if !ok {
		t.Fatalf("probePoint returned %T, want pointInfo", res)
	}

	if info.Pixel != (xyJSON{1, 0}) {
		t.Errorf("Pixel = %+v, want {1 0}", info.Pixel)
	}
	if info.Point != (xyJSON{0, 0}) {
		t.Errorf("Point = %+v, want {0 0}", info.Point)
	}
	if info.Color != (colorJSON{10, 20, 30}) {
		t.Errorf("Color = %+v, want {10 20 30}", info.Color)
	}
	if info.Hex != "#0a141e" {
		t.Errorf("Hex = %q, want %q", info.Hex, "#0a141e")
	}
	if info.ImageSize != (sizeJSON{4, 2}) {
		t.Errorf("ImageSize = %+v, want {4 2}", info.ImageSize)
	}
	if info.PointSize != (sizeJSON{2, 1}) {
		t.Errorf("PointSize = %+v, want {2 1}", info.PointSize)
	}
}

func TestProbePointOutOfBounds(t *testing.T) {
	img := regionFixture(t)

	for _, tc := range []struct{ x, y int }{{8, 0}, {0, 8}, {-1, 0}, {0, -1}} {
		res := probePoint(img, tc.x, tc.y)
		if _, ok := res.(probeError); !ok {
			t.Errorf("probePoint(%d, %d) returned %T, want probeError", tc.x, tc.y, res)
		}
	}

	perr := probePoint(img, 8, 3).(probeError)
	want := "Point (8, 3) out of bounds for 8x8 image"
	if perr.Error != want {
		t.Errorf("error = %q, want %q", perr.Error, want)
	}
}

// --- probeRegion ---

func TestProbeRegion(t *testing.T) {
	img := regionFixture(t)

	res := probeRegion(img, 0, 0, 8, 8)
	info, ok := res.(regionInfo)
	if !ok {
		t.Fatalf("probeRegion returned %T, want regionInfo", res)
	}

	if info.BackgroundColor != "#ffffff" {
		t.Errorf("BackgroundColor = %q, want #ffffff", info.BackgroundColor)
	}
	// Bounds span x 2..4, y 3..5; width and height are max minus min.
	if info.BoundsPixel != (rectJSON{2, 3, 2, 2}) {
		t.Errorf("BoundsPixel = %+v, want {2 3 2 2}", info.BoundsPixel)
	}
	if info.BoundsPoint != (rectJSON{1, 1, 1, 1}) {
		t.Errorf("BoundsPoint = %+v, want {1 1 1 1}", info.BoundsPoint)
	}
	if info.CenterPixel != (xyJSON{3, 4}) {
		t.Errorf("CenterPixel = %+v, want {3 4}", info.CenterPixel)
	}
	if info.CenterPoint != (xyJSON{1, 2}) {
		t.Errorf("CenterPoint = %+v, want {1 2}", info.CenterPoint)
	}
}

func TestProbeRegionBackgroundFromTopLeft(t *testing.T) {
	img := regionFixture(t)

	// Region covering exactly the red block: its top-left pixel becomes
	// the background, so nothing stands out.
	res := probeRegion(img, 2, 3, 5, 6)
	perr, ok := res.(probeError)
	if !ok {
		t.Fatalf("probeRegion returned %T, want probeError", res)
	}
	if perr.Error != "No element found in region" {
		t.Errorf("error = %q, want %q", perr.Error, "No element found in region")
	}
}

func TestProbeRegionNoElement(t *testing.T) {
	img := regionFixture(t)

	res := probeRegion(img, 5, 0, 8, 2)
	perr, ok := res.(probeError)
	if !ok {
		t.Fatalf("probeRegion returned %T, want probeError", res)
	}
	if perr.Error != "No element found in region" {
		t.Errorf("error = %q, want %q", perr.Error, "No element found in region")
	}
}

func TestProbeRegionOutOfBounds(t *testing.T) {
	img := regionFixture(t)

	res := probeRegion(img, 0, 0, 9, 8)
	perr, ok := res.(probeError)
	if !ok {
		t.Fatalf("probeRegion returned %T, want probeError", res)
	}
	want := "Region (0, 0, 9, 8) out of bounds for 8x8 image"
	if perr.Error != want {
		t.Errorf("error = %q, want %q", perr.Error, want)
	}

	// Inverted coordinates are rejected the same way.
	if _, ok := probeRegion(img, 4, 4, 2, 6).(probeError); !ok {
		t.Error("inverted region not rejected")
	}
}

package fixture

import (
	"testing"

	"github.com/halvdan/iconpack/internal/coverage"
	"github.com/halvdan/iconpack/internal/formaterr"
	"github.com/halvdan/iconpack/internal/raster"
)

func renderAndMeasure(t *testing.T, kind Kind, size int) (coverage.Report, error) {
	t.Helper()
	data, err := EncodePNG(kind, size)
	if err != nil {
		t.Fatalf("EncodePNG(%q): %v", kind, err)
	}
	img, err := raster.Decode(data, string(kind)+".png")
	if err != nil {
		t.Fatalf("decode %q fixture: %v", kind, err)
	}
	if img.Width != size || img.Height != size {
		t.Fatalf("fixture is %dx%d, want %dx%d", img.Width, img.Height, size, size)
	}
	return coverage.Measure(img, string(kind)+".png")
}

func TestFullCoversWholeCanvas(t *testing.T) {
	rep, err := renderAndMeasure(t, KindFull, 64)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if rep.WidthRatio != 1.0 || rep.HeightRatio != 1.0 {
		t.Errorf("ratios = %v, %v, want exactly 1.0, 1.0", rep.WidthRatio, rep.HeightRatio)
	}
}

func TestSparseStaysSmall(t *testing.T) {
	rep, err := renderAndMeasure(t, KindSparse, 64)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if rep.WidthRatio >= 0.5 || rep.HeightRatio >= 0.5 {
		t.Errorf("ratios = %v, %v, want both well below 0.5", rep.WidthRatio, rep.HeightRatio)
	}
}

func TestTransparentHasNoVisiblePixels(t *testing.T) {
	_, err := renderAndMeasure(t, KindTransparent, 32)
	if err == nil {
		t.Fatal("expected fully-transparent error")
	}
	cause, ok := formaterr.CauseOf(err)
	if !ok || cause != formaterr.FullyTransparent {
		t.Fatalf("cause = %q (ok=%v), want %q", cause, ok, formaterr.FullyTransparent)
	}
}

func TestGlyphPassesDefaultThreshold(t *testing.T) {
	rep, err := renderAndMeasure(t, KindGlyph, 256)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if rep.WidthRatio < 0.88 || rep.HeightRatio < 0.88 {
		t.Errorf("ratios = %v, %v, want both at or above 0.88", rep.WidthRatio, rep.HeightRatio)
	}
}

func TestGlyphDecodesWithAlpha(t *testing.T) {
	data, err := EncodePNG(KindGlyph, 64)
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := raster.Decode(data, "glyph.png")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !img.Kind.HasAlpha() {
		t.Errorf("glyph fixture decoded as %v, want an alpha-carrying kind", img.Kind)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	if _, err := Render(Kind("cubist"), 64); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestRenderBadSize(t *testing.T) {
	if _, err := Render(KindFull, 0); err == nil {
		t.Fatal("expected error for zero size")
	}
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != 4 {
		t.Fatalf("Kinds() returned %d kinds, want 4", len(kinds))
	}
	for _, k := range kinds {
		if _, err := EncodePNG(k, 16); err != nil {
			t.Errorf("EncodePNG(%q) failed: %v", k, err)
		}
	}
}

package bundle

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/halvdan/iconpack/internal/ico"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="64" height="64">` +
	`<rect width="64" height="64" fill="#e2773a"/></svg>`

func TestNameHelpers(t *testing.T) {
	if got := PNGName("app-icon", 256); got != "app-icon-256.png" {
		t.Errorf("PNGName = %q", got)
	}
	if got := IcoName("app-icon"); got != "app-icon.ico" {
		t.Errorf("IcoName = %q", got)
	}
	if got := IcnsName("app-icon"); got != "app-icon.icns" {
		t.Errorf("IcnsName = %q", got)
	}
}

func TestSizeSets(t *testing.T) {
	// Every ICO size must be renderable, so the ICO set must be a
	// subset of the PNG set, and both must be ascending.
	pngSet := map[int]bool{}
	for i, s := range PNGSizes {
		pngSet[s] = true
		if i > 0 && PNGSizes[i-1] >= s {
			t.Fatalf("PNGSizes not ascending at %d", i)
		}
	}
	for i, s := range IcoSizes {
		if !pngSet[s] {
			t.Errorf("ICO size %d is not in the PNG set", s)
		}
		if s > 256 {
			t.Errorf("ICO size %d exceeds container max", s)
		}
		if i > 0 && IcoSizes[i-1] >= s {
			t.Fatalf("IcoSizes not ascending at %d", i)
		}
	}
}

func TestGenerateMissingTool(t *testing.T) {
	if _, err := exec.LookPath("rsvg-convert"); err == nil {
		t.Skip("rsvg-convert is installed, skipping missing-tool test")
	}

	_, err := Generate(GenerateOptions{SVGPath: "icon.svg", OutDir: t.TempDir()})
	if err == nil {
		t.Fatal("expected error when rsvg-convert is not installed")
	}
	if !strings.Contains(err.Error(), "rsvg-convert is required") {
		t.Errorf("error should mention rsvg-convert, got: %v", err)
	}
}

func TestGenerateMissingSVG(t *testing.T) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		t.Skip("rsvg-convert not installed, skipping missing-svg test")
	}

	_, err := Generate(GenerateOptions{
		SVGPath: filepath.Join(t.TempDir(), "nope.svg"),
		OutDir:  t.TempDir(),
	})
	if err == nil {
		t.Fatal("expected error for missing SVG")
	}
	if !strings.Contains(err.Error(), "source SVG not found") {
		t.Errorf("error should mention the missing SVG, got: %v", err)
	}
}

func TestGenerateEndToEnd(t *testing.T) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		t.Skip("rsvg-convert not installed, skipping end-to-end test")
	}

	dir := t.TempDir()
	svgPath := filepath.Join(dir, "icon.svg")
	if err := os.WriteFile(svgPath, []byte(testSVG), 0o644); err != nil {
		t.Fatal(err)
	}

	outDir := filepath.Join(dir, "out")
	res, err := Generate(GenerateOptions{SVGPath: svgPath, OutDir: outDir})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for _, size := range PNGSizes {
		p := filepath.Join(outDir, PNGName(DefaultBaseName, size))
		if _, err := os.Stat(p); err != nil {
			t.Errorf("missing rendered PNG: %v", err)
		}
	}

	sizes, err := ico.ReadSizesFile(res.IcoPath)
	if err != nil {
		t.Fatalf("read generated ico: %v", err)
	}
	if len(sizes) != len(IcoSizes) {
		t.Fatalf("generated ICO has %d entries, want %d", len(sizes), len(IcoSizes))
	}
	for i, s := range IcoSizes {
		if sizes[i] != s {
			t.Fatalf("ICO sizes = %v, want %v", sizes, IcoSizes)
		}
	}

	if _, err := exec.LookPath("iconutil"); err != nil {
		if res.IcnsPath != "" {
			t.Errorf("IcnsPath = %q, want empty without iconutil", res.IcnsPath)
		}
	} else if res.IcnsPath == "" {
		t.Error("expected IcnsPath with iconutil available")
	}
}

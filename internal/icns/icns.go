// Package icns composes a macOS .icns archive by staging an iconset
// directory and invoking iconutil.
package icns

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/halvdan/iconpack/internal/paths"
)

// iconsetEntries maps iconset member names to the pixel size each must
// contain. The @2x members hold double-resolution renders.
var iconsetEntries = map[string]int{
	"icon_16x16.png":      16,
	"icon_16x16@2x.png":   32,
	"icon_32x32.png":      32,
	"icon_32x32@2x.png":   64,
	"icon_128x128.png":    128,
	"icon_128x128@2x.png": 256,
	"icon_256x256.png":    256,
	"icon_256x256@2x.png": 512,
	"icon_512x512.png":    512,
	"icon_512x512@2x.png": 1024,
}

// Available reports whether iconutil is on PATH. In practice this is
// true only on macOS.
func Available() bool {
	_, err := exec.LookPath("iconutil")
	return err == nil
}

// Compose builds outPath from the files in pngBySize, which maps a pixel
// size to the path of a rendered PNG of that size. Every size the
// iconset needs must be present in the map.
func Compose(pngBySize map[int]string, outPath string) error {
	for name, size := range iconsetEntries {
		if _, ok := pngBySize[size]; !ok {
			return fmt.Errorf("icns: no %dpx PNG available for %s", size, name)
		}
	}
	if _, err := exec.LookPath("iconutil"); err != nil {
		return fmt.Errorf("iconutil not found on PATH (required for .icns output): %w", err)
	}

	staging, err := os.MkdirTemp("", "iconpack-iconset-")
	if err != nil {
		return fmt.Errorf("icns: %w", err)
	}
	defer os.RemoveAll(staging)

	// iconutil derives the output name from the directory, which must
	// carry the .iconset suffix.
	iconset := filepath.Join(staging, "icon.iconset")
	if err := os.Mkdir(iconset, paths.DirPerm); err != nil {
		return fmt.Errorf("icns: %w", err)
	}
	for name, size := range iconsetEntries {
		data, err := os.ReadFile(pngBySize[size])
		if err != nil {
			return fmt.Errorf("icns: %w", err)
		}
		if err := os.WriteFile(filepath.Join(iconset, name), data, paths.FilePerm); err != nil {
			return fmt.Errorf("icns: %w", err)
		}
	}

	cmd := exec.Command("iconutil", "-c", "icns", iconset, "-o", outPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("iconutil compose: %w\n%s", err, out)
	}
	return nil
}

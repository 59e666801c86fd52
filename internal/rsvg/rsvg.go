// Package rsvg shells out to rsvg-convert to rasterize SVG sources.
package rsvg

import (
	"fmt"
	"os/exec"
	"strconv"
)

const binary = "rsvg-convert"

// Available reports whether rsvg-convert is on PATH.
func Available() bool {
	_, err := exec.LookPath(binary)
	return err == nil
}

// RenderPNG rasterizes svgPath to a size x size PNG at outPath using
// rsvg-convert. Returns an error if the tool is not found on PATH.
func RenderPNG(svgPath string, size int, outPath string) error {
	if _, err := exec.LookPath(binary); err != nil {
		return fmt.Errorf("rsvg-convert not found on PATH (required for icon generation): %w", err)
	}
	dim := strconv.Itoa(size)
	cmd := exec.Command(binary, "-w", dim, "-h", dim, svgPath, "-o", outPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("rsvg-convert %s at %d: %w\n%s", svgPath, size, err, out)
	}
	return nil
}

// Package bundle orchestrates the icon asset pipeline: rendering the
// canonical PNG set from an SVG source, packing the Windows ICO and
// macOS ICNS containers, and validating a directory of generated assets.
package bundle

import "fmt"

// Canonical size sets. The ICO set is the PNG set minus the sizes too
// large for the container format.
var (
	PNGSizes = []int{16, 24, 32, 40, 48, 64, 128, 256, 512, 1024}
	IcoSizes = []int{16, 24, 32, 40, 48, 64, 128, 256}
)

const (
	// DefaultBaseName prefixes every generated asset file name.
	DefaultBaseName = "app-icon"

	// DefaultCoverageThreshold is the minimum acceptable visible
	// coverage per axis for the largest PNG.
	DefaultCoverageThreshold = 0.88

	// coverageSize selects which PNG gets decoded for the coverage check.
	coverageSize = 1024
)

// PNGName returns the file name of the rendered PNG at a given size.
func PNGName(base string, size int) string {
	return fmt.Sprintf("%s-%d.png", base, size)
}

// IcoName returns the Windows container file name.
func IcoName(base string) string { return base + ".ico" }

// IcnsName returns the macOS container file name.
func IcnsName(base string) string { return base + ".icns" }

package bundle

import (
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/halvdan/iconpack/internal/coverage"
	"github.com/halvdan/iconpack/internal/formaterr"
	"github.com/halvdan/iconpack/internal/ico"
	"github.com/halvdan/iconpack/internal/raster"
)

// ValidateOptions configures Validate. Zero values select the defaults.
type ValidateOptions struct {
	Dir       string
	BaseName  string
	Threshold float64
}

// ValidateResult carries the measurements of a successful validation.
type ValidateResult struct {
	IcoSizes []int
	Coverage coverage.Report
}

// Validate checks a directory of generated assets: every canonical file
// must exist, the ICO must contain exactly the canonical size set, and
// the largest PNG must decode with visible coverage at or above the
// threshold on both axes. The first failure is returned; later stages
// are not attempted.
func Validate(opts ValidateOptions) (*ValidateResult, error) {
	base := opts.BaseName
	if base == "" {
		base = DefaultBaseName
	}
	threshold := opts.Threshold
	if threshold == 0 {
		threshold = DefaultCoverageThreshold
	}

	icoPath := filepath.Join(opts.Dir, IcoName(base))
	required := []string{icoPath, filepath.Join(opts.Dir, IcnsName(base))}
	for _, size := range PNGSizes {
		required = append(required, filepath.Join(opts.Dir, PNGName(base, size)))
	}
	var missing []string
	for _, p := range required {
		if _, err := os.Stat(p); err != nil {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return nil, formaterr.New("", formaterr.MissingAsset,
			"missing icon assets:\n%s", strings.Join(missing, "\n"))
	}

	icoSizes, err := ico.ReadSizesFile(icoPath)
	if err != nil {
		return nil, err
	}
	sort.Ints(icoSizes)
	if !slices.Equal(icoSizes, IcoSizes) {
		return nil, formaterr.New(icoPath, formaterr.SizeSetMismatch,
			"ICO size set mismatch: expected %v, actual %v", IcoSizes, icoSizes)
	}

	bigPath := filepath.Join(opts.Dir, PNGName(base, coverageSize))
	img, err := raster.DecodeFile(bigPath)
	if err != nil {
		return nil, err
	}
	if img.Width != coverageSize || img.Height != coverageSize {
		return nil, formaterr.New(bigPath, formaterr.InvalidHeader,
			"expected 1024x1024 PNG, got %dx%d", img.Width, img.Height)
	}
	rep, err := coverage.Measure(img, bigPath)
	if err != nil {
		return nil, err
	}
	if rep.WidthRatio < threshold || rep.HeightRatio < threshold {
		return nil, formaterr.New(bigPath, formaterr.CoverageBelowThreshold,
			"coverage below threshold (%.2f): width=%.3f, height=%.3f",
			threshold, rep.WidthRatio, rep.HeightRatio)
	}

	return &ValidateResult{IcoSizes: icoSizes, Coverage: rep}, nil
}

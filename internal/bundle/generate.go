package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/halvdan/iconpack/internal/icns"
	"github.com/halvdan/iconpack/internal/ico"
	"github.com/halvdan/iconpack/internal/paths"
	"github.com/halvdan/iconpack/internal/rsvg"
)

// GenerateOptions configures Generate. An empty BaseName selects the
// default; SVGPath and OutDir must be set.
type GenerateOptions struct {
	SVGPath  string
	OutDir   string
	BaseName string
}

// GenerateResult reports what Generate produced. IcnsPath is empty when
// iconutil was unavailable and the ICNS was skipped.
type GenerateResult struct {
	Dir      string
	PNGSizes []int
	IcoPath  string
	IcnsPath string
}

// Generate renders the canonical PNG set from the SVG source, packs the
// Windows ICO, and composes the macOS ICNS when iconutil is available.
// Renders run in parallel, one rsvg-convert process per size.
func Generate(opts GenerateOptions) (*GenerateResult, error) {
	base := opts.BaseName
	if base == "" {
		base = DefaultBaseName
	}

	if !rsvg.Available() {
		return nil, fmt.Errorf("rsvg-convert is required but was not found on PATH")
	}
	if _, err := os.Stat(opts.SVGPath); err != nil {
		return nil, fmt.Errorf("source SVG not found: %s", opts.SVGPath)
	}
	if err := os.MkdirAll(opts.OutDir, paths.DirPerm); err != nil {
		return nil, err
	}

	pngBySize := make(map[int]string, len(PNGSizes))
	for _, size := range PNGSizes {
		pngBySize[size] = filepath.Join(opts.OutDir, PNGName(base, size))
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var renderErrs []error
	for _, size := range PNGSizes {
		wg.Add(1)
		go func(s int) {
			defer wg.Done()
			if err := rsvg.RenderPNG(opts.SVGPath, s, pngBySize[s]); err != nil {
				mu.Lock()
				renderErrs = append(renderErrs, err)
				mu.Unlock()
			}
		}(size)
	}
	wg.Wait()
	if len(renderErrs) > 0 {
		return nil, renderErrs[0]
	}

	icoSources := make([]string, len(IcoSizes))
	for i, size := range IcoSizes {
		icoSources[i] = pngBySize[size]
	}
	icoData, err := ico.BuildFiles(icoSources)
	if err != nil {
		return nil, err
	}
	icoPath := filepath.Join(opts.OutDir, IcoName(base))
	if err := paths.AtomicWrite(icoPath, icoData); err != nil {
		return nil, err
	}

	res := &GenerateResult{
		Dir:      opts.OutDir,
		PNGSizes: PNGSizes,
		IcoPath:  icoPath,
	}

	if icns.Available() {
		icnsPath := filepath.Join(opts.OutDir, IcnsName(base))
		if err := icns.Compose(pngBySize, icnsPath); err != nil {
			return nil, err
		}
		res.IcnsPath = icnsPath
	}

	return res, nil
}

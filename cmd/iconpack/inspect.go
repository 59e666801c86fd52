package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/halvdan/iconpack/internal/coverage"
	"github.com/halvdan/iconpack/internal/ico"
	"github.com/halvdan/iconpack/internal/raster"
)

func inspectCmd(args []string) {
	if len(args) != 1 {
		fatal("expected exactly one file to inspect")
	}
	path := args[0]

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ico":
		inspectIco(path)
	case ".png":
		inspectPng(path)
	default:
		fatal("cannot inspect %q (expected a .png or .ico file)", path)
	}
}

func inspectIco(path string) {
	sizes, err := ico.ReadSizesFile(path)
	if err != nil {
		fatal("%v", err)
	}

	fmt.Printf("%s: ICO, %d %s\n", cyan(path), len(sizes), plural(len(sizes), "entry", "entries"))
	for i, s := range sizes {
		fmt.Printf("  entry %d: %dx%d\n", i, s, s)
	}
}

func inspectPng(path string) {
	img, err := raster.DecodeFile(path)
	if err != nil {
		fatal("%v", err)
	}

	fmt.Printf("%s: PNG, %dx%d, 8-bit %s\n", cyan(path), img.Width, img.Height, img.Kind)

	rep, err := coverage.Measure(img, path)
	if err != nil {
		fmt.Println("  fully transparent (no visible pixels)")
		return
	}
	fmt.Printf("  visible box: (%d,%d)-(%d,%d)\n", rep.MinX, rep.MinY, rep.MaxX, rep.MaxY)
	fmt.Printf("  coverage: width=%.3f, height=%.3f\n", rep.WidthRatio, rep.HeightRatio)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

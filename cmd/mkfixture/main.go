// mkfixture renders a synthetic icon PNG for exercising the validation
// pipeline without a vector toolchain.
// Usage: go run ./cmd/mkfixture --kind glyph --size 1024 --out icon.png
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/halvdan/iconpack/internal/fixture"
	"github.com/halvdan/iconpack/internal/paths"
)

func main() {
	kind := fixture.KindGlyph
	size := 256
	out := ""

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "help", "-h", "--help":
			printUsage()
			return
		case "--kind":
			if i+1 >= len(args) {
				fatal("--kind requires a value (%s)", kindList())
			}
			kind = fixture.Kind(args[i+1])
			i++
		case "--size":
			if i+1 >= len(args) {
				fatal("--size requires a pixel value")
			}
			n, err := strconv.Atoi(args[i+1])
			if err != nil || n <= 0 {
				fatal("size must be a positive integer, got %q", args[i+1])
			}
			size = n
			i++
		case "--out":
			if i+1 >= len(args) {
				fatal("--out requires a file path")
			}
			out = args[i+1]
			i++
		default:
			fatal("unknown option %q", args[i])
		}
	}

	if out == "" {
		out = fmt.Sprintf("%s-%d.png", kind, size)
	}

	data, err := fixture.EncodePNG(kind, size)
	if err != nil {
		fatal("%v", err)
	}
	if err := paths.AtomicWrite(out, data); err != nil {
		fatal("%v", err)
	}
	fmt.Printf("Wrote %s (%s, %dx%d)\n", out, kind, size, size)
}

func kindList() string {
	kinds := fixture.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func printUsage() {
	fmt.Print(`mkfixture renders a synthetic icon PNG for pipeline testing.

Usage:
  mkfixture [--kind KIND] [--size N] [--out FILE]

Options:
  --kind KIND   Fixture style: ` + kindList() + ` (default glyph)
  --size N      Square canvas size in pixels (default 256)
  --out FILE    Output path (default KIND-SIZE.png)
`)
}

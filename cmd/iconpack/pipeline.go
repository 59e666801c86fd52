package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/halvdan/iconpack/internal/bundle"
	"github.com/halvdan/iconpack/internal/runlog"
)

const (
	defaultSVGPath  = "assets/app-icon.svg"
	defaultIconsDir = "assets/app-icons"
)

func generateCmd(args []string) {
	opts := bundle.GenerateOptions{
		SVGPath: defaultSVGPath,
		OutDir:  defaultIconsDir,
	}
	logRun := false

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--svg":
			if i+1 >= len(args) {
				fatal("--svg requires a file path")
			}
			opts.SVGPath = args[i+1]
			i++
		case "--out":
			if i+1 >= len(args) {
				fatal("--out requires a directory path")
			}
			opts.OutDir = args[i+1]
			i++
		case "--name":
			if i+1 >= len(args) {
				fatal("--name requires a base name")
			}
			opts.BaseName = args[i+1]
			i++
		case "--log":
			logRun = true
		default:
			fatal("unknown generate option %q", args[i])
		}
	}

	start := time.Now()
	res, err := bundle.Generate(opts)
	if logRun {
		run := runlog.Run{
			Command:  "generate",
			Dir:      opts.OutDir,
			OK:       err == nil,
			Duration: time.Since(start),
		}
		if err != nil {
			run.Detail = err.Error()
		}
		recordRun(run)
	}
	if err != nil {
		fatal("%v", err)
	}

	fmt.Printf("Generated PNG sizes: %s\n", joinSizes(res.PNGSizes, ", "))
	fmt.Printf("Generated Windows ICO: %s\n", res.IcoPath)
	if res.IcnsPath != "" {
		fmt.Printf("Generated macOS ICNS: %s\n", res.IcnsPath)
	} else {
		fmt.Println("Skipped ICNS generation (iconutil not found).")
	}
}

func validateCmd(args []string) {
	opts := bundle.ValidateOptions{Dir: defaultIconsDir}
	logRun := false

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--icons-dir":
			if i+1 >= len(args) {
				fatal("--icons-dir requires a directory path")
			}
			opts.Dir = args[i+1]
			i++
		case "--name":
			if i+1 >= len(args) {
				fatal("--name requires a base name")
			}
			opts.BaseName = args[i+1]
			i++
		case "--coverage-threshold":
			if i+1 >= len(args) {
				fatal("--coverage-threshold requires a value")
			}
			v, err := strconv.ParseFloat(args[i+1], 64)
			if err != nil || v <= 0 || v > 1 {
				fatal("coverage threshold must be a number in (0, 1]")
			}
			opts.Threshold = v
			i++
		case "--log":
			logRun = true
		default:
			fatal("unknown validate option %q", args[i])
		}
	}

	start := time.Now()
	res, err := bundle.Validate(opts)
	if logRun {
		run := runlog.Run{
			Command:  "validate",
			Dir:      opts.Dir,
			OK:       err == nil,
			Duration: time.Since(start),
		}
		if err != nil {
			run.Detail = err.Error()
		} else {
			w, h := res.Coverage.WidthRatio, res.Coverage.HeightRatio
			run.CoverageW, run.CoverageH = &w, &h
			run.IcoSizes = joinSizes(res.IcoSizes, ",")
		}
		recordRun(run)
	}
	if err != nil {
		fatal("%v", err)
	}

	fmt.Printf("Validated icon assets in %s\n", opts.Dir)
	fmt.Printf("ICO sizes: %v\n", res.IcoSizes)
	fmt.Printf("1024 PNG alpha coverage: width=%.3f, height=%.3f\n",
		res.Coverage.WidthRatio, res.Coverage.HeightRatio)
}

// recordRun stores a run in the history database. Failures are reported
// to stderr but never fatal; history is best-effort.
func recordRun(r runlog.Run) {
	store, err := runlog.Open(runlog.DefaultPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "runlog: %v\n", err)
		return
	}
	defer store.Close()
	if err := store.Record(r); err != nil {
		fmt.Fprintf(os.Stderr, "runlog: %v\n", err)
	}
}

func joinSizes(sizes []int, sep string) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, sep)
}

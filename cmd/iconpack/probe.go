package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/halvdan/iconpack/internal/raster"
)

// JSON shapes for probe output. Every coordinate comes in a pixel and a
// point variant; points are pixels halved for 2x displays.

type xyJSON struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type sizeJSON struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type rectJSON struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type colorJSON struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

type pointInfo struct {
	Pixel     xyJSON    `json:"pixel"`
	Point     xyJSON    `json:"point"`
	Color     colorJSON `json:"color"`
	Hex       string    `json:"hex"`
	ImageSize sizeJSON  `json:"image_size"`
	PointSize sizeJSON  `json:"point_size"`
}

type regionInfo struct {
	BoundsPixel     rectJSON `json:"bounds_pixel"`
	BoundsPoint     rectJSON `json:"bounds_point"`
	CenterPixel     xyJSON   `json:"center_pixel"`
	CenterPoint     xyJSON   `json:"center_point"`
	BackgroundColor string   `json:"background_color"`
}

type imageInfo struct {
	ImageSize sizeJSON `json:"image_size"`
	PointSize sizeJSON `json:"point_size"`
}

type probeError struct {
	Error string `json:"error"`
}

func probeCmd(args []string) {
	if len(args) < 1 {
		fatal("expected a PNG file to probe")
	}
	path := args[0]

	var pointArg, regionArg string
	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "--point":
			if i+1 >= len(args) {
				fatal("--point requires X,Y coordinates")
			}
			pointArg = args[i+1]
			i++
		case "--region":
			if i+1 >= len(args) {
				fatal("--region requires X1,Y1,X2,Y2 coordinates")
			}
			regionArg = args[i+1]
			i++
		default:
			fatal("unknown probe option %q", args[i])
		}
	}

	img, err := raster.DecodeFile(path)
	if err != nil {
		fatal("%v", err)
	}

	switch {
	case pointArg != "":
		x, y, err := parsePair(pointArg)
		if err != nil {
			fatal("%v", err)
		}
		printJSON(probePoint(img, x, y))
	case regionArg != "":
		x1, y1, x2, y2, err := parseQuad(regionArg)
		if err != nil {
			fatal("%v", err)
		}
		printJSON(probeRegion(img, x1, y1, x2, y2))
	default:
		printJSON(imageInfo{
			ImageSize: sizeJSON{img.Width, img.Height},
			PointSize: sizeJSON{img.Width / 2, img.Height / 2},
		})
	}
}

func probePoint(img *raster.Image, x, y int) any {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return probeError{fmt.Sprintf("Point (%d, %d) out of bounds for %dx%d image",
			x, y, img.Width, img.Height)}
	}

	r, g, b, _ := img.RGBA8At(x, y)
	return pointInfo{
		Pixel:     xyJSON{x, y},
		Point:     xyJSON{x / 2, y / 2},
		Color:     colorJSON{r, g, b},
		Hex:       fmt.Sprintf("#%02x%02x%02x", r, g, b),
		ImageSize: sizeJSON{img.Width, img.Height},
		PointSize: sizeJSON{img.Width / 2, img.Height / 2},
	}
}

func probeRegion(img *raster.Image, x1, y1, x2, y2 int) any {
	if x1 < 0 || y1 < 0 || x2 > img.Width || y2 > img.Height || x1 >= x2 || y1 >= y2 {
		return probeError{fmt.Sprintf("Region (%d, %d, %d, %d) out of bounds for %dx%d image",
			x1, y1, x2, y2, img.Width, img.Height)}
	}

	// The region's top-left pixel defines the background; the element is
	// everything that differs from it in RGB.
	bgR, bgG, bgB, _ := img.RGBA8At(x1, y1)

	minX, minY := x2, y2
	maxX, maxY := x1, y1
	found := false
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			r, g, b, _ := img.RGBA8At(x, y)
			if r == bgR && g == bgG && b == bgB {
				continue
			}
			found = true
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if !found {
		return probeError{"No element found in region"}
	}

	centerX := (minX + maxX) / 2
	centerY := (minY + maxY) / 2
	return regionInfo{
		BoundsPixel:     rectJSON{minX, minY, maxX - minX, maxY - minY},
		BoundsPoint:     rectJSON{minX / 2, minY / 2, (maxX - minX) / 2, (maxY - minY) / 2},
		CenterPixel:     xyJSON{centerX, centerY},
		CenterPoint:     xyJSON{centerX / 2, centerY / 2},
		BackgroundColor: fmt.Sprintf("#%02x%02x%02x", bgR, bgG, bgB),
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}

func parsePair(s string) (x, y int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected X,Y coordinates, got %q", s)
	}
	x, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return 0, 0, fmt.Errorf("expected X,Y coordinates, got %q", s)
	}
	return x, y, nil
}

func parseQuad(s string) (x1, y1, x2, y2 int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return 0, 0, 0, 0, fmt.Errorf("expected X1,Y1,X2,Y2 coordinates, got %q", s)
	}
	var vals [4]int
	for i, p := range parts {
		v, convErr := strconv.Atoi(strings.TrimSpace(p))
		if convErr != nil {
			return 0, 0, 0, 0, fmt.Errorf("expected X1,Y1,X2,Y2 coordinates, got %q", s)
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], vals[3], nil
}

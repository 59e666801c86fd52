package main

import (
	"fmt"
	"os"
	"runtime"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	args := os.Args[1:]
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "help", "-h", "--help":
		printUsage()
	case "version", "-V", "--version":
		printVersion()
	case "generate":
		generateCmd(args[1:])
	case "validate":
		validateCmd(args[1:])
	case "inspect":
		inspectCmd(args[1:])
	case "probe":
		probeCmd(args[1:])
	case "history":
		historyCmd(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", args[0])
		fmt.Fprintf(os.Stderr, "Run 'iconpack help' for usage.\n")
		os.Exit(1)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func printVersion() {
	fmt.Printf("iconpack %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage() {
	fmt.Printf("iconpack %s - Generate and validate application icon assets\n", version)
	fmt.Println(`
Usage:
  iconpack generate [options]
  iconpack validate [options]
  iconpack inspect <file.png|file.ico>
  iconpack probe <file.png> [--point X,Y | --region X1,Y1,X2,Y2]
  iconpack history [N | clean <days> | clear]

Commands:
  generate               Render the PNG set from an SVG, pack ICO and ICNS
  validate               Check a directory of generated icon assets
  inspect                Describe a PNG or ICO file
  probe                  Pixel measurements of a PNG as JSON
  history                Show recorded pipeline runs
  version, -V            Show version and build date
  help, -h, --help       Show this help message

Generate options:
  --svg <path>           Source SVG (default: assets/app-icon.svg)
  --out <dir>            Output directory (default: assets/app-icons)
  --name <base>          Asset base name (default: app-icon)
  --log                  Record this run in the history database

Validate options:
  --icons-dir <dir>      Directory to check (default: assets/app-icons)
  --name <base>          Asset base name (default: app-icon)
  --coverage-threshold <0-1>
                         Minimum visible coverage per axis (default: 0.88)
  --log                  Record this run in the history database

Requirements:
  rsvg-convert           Required for generate
  iconutil               Optional; ICNS output is skipped without it

Examples:
  iconpack generate --svg assets/app-icon.svg
  iconpack validate --coverage-threshold 0.9
  iconpack inspect assets/app-icons/app-icon.ico
  iconpack probe shot.png --point 120,40`)
}

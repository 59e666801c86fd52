// relnotes extracts the release notes for a tagged version from the
// project changelog, for use as the body of a GitHub release.
// Usage: go run ./cmd/relnotes --tag v1.2.3 [--changelog CHANGELOG.md]
package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"golang.org/x/mod/semver"
)

func main() {
	tag := ""
	changelog := "CHANGELOG.md"

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "help", "-h", "--help":
			printUsage()
			return
		case "--tag":
			if i+1 >= len(args) {
				fatal(1, "--tag requires a value (e.g. v1.2.3)")
			}
			tag = args[i+1]
			i++
		case "--changelog":
			if i+1 >= len(args) {
				fatal(1, "--changelog requires a file path")
			}
			changelog = args[i+1]
			i++
		default:
			fatal(1, "unknown option %q", args[i])
		}
	}

	if tag == "" {
		fatal(1, "--tag is required (e.g. v1.2.3)")
	}

	version := strings.TrimPrefix(strings.TrimSpace(tag), "v")
	if !semver.IsValid("v" + version) {
		fatal(1, "invalid version %q (want semver like 1.2.3)", tag)
	}

	data, err := os.ReadFile(changelog)
	if err != nil {
		fatal(1, "%v", err)
	}

	body, ok := extractSection(string(data), version)
	if !ok {
		fatal(2, "missing changelog entry for %s in %s", version, changelog)
	}
	os.Stdout.WriteString(body)
}

// extractSection returns the changelog body between the version's
// "## [X.Y.Z] - YYYY-MM-DD" heading and the next release heading,
// stripped of surrounding blank lines and ending in a single newline.
func extractSection(text, version string) (string, bool) {
	header := regexp.MustCompile(`^## \[` + regexp.QuoteMeta(version) + `\]\s*-\s*\d{4}-\d{2}-\d{2}\s*$`)

	lines := strings.Split(text, "\n")
	start := -1
	for i, line := range lines {
		if header.MatchString(line) {
			start = i
			break
		}
	}
	if start < 0 {
		return "", false
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], "## ") {
			end = i
			break
		}
	}

	body := strings.Join(lines[start+1:end], "\n")
	body = strings.TrimLeft(body, "\n")
	body = strings.TrimRight(body, " \t\r\n")
	return body + "\n", true
}

func fatal(code int, format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(code)
}

func printUsage() {
	fmt.Print(`relnotes prints the changelog section for a release tag.

Usage:
  relnotes --tag TAG [--changelog FILE]

Options:
  --tag TAG          Release tag or version (v1.2.3 or 1.2.3)
  --changelog FILE   Changelog to read (default CHANGELOG.md)

Exit status:
  0  section found and printed
  1  bad arguments or unreadable changelog
  2  changelog has no section for the tag
`)
}

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/halvdan/iconpack/internal/runlog"
)

func historyCmd(args []string) {
	if len(args) > 0 {
		switch args[0] {
		case "clear":
			historyClear()
			return
		case "clean":
			historyClean(args[1:])
			return
		}
	}

	count := 10
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			fatal("count must be a positive integer")
		}
		count = n
	}

	store := openHistory()
	defer store.Close()

	runs, err := store.Recent(count)
	if err != nil {
		fatal("%v", err)
	}
	if len(runs) == 0 {
		fmt.Println("No recorded runs. Enable logging with --log on generate or validate.")
		return
	}
	for _, r := range runs {
		fmt.Println(formatRun(r))
	}
}

func historyClear() {
	store := openHistory()
	defer store.Close()
	if err := store.Clear(); err != nil {
		fatal("%v", err)
	}
	fmt.Println("Run history cleared.")
}

func historyClean(args []string) {
	if len(args) == 0 {
		historyClear()
		return
	}

	days, err := strconv.Atoi(args[0])
	if err != nil || days <= 0 {
		fatal("days must be a positive integer")
	}

	store := openHistory()
	defer store.Close()
	removed, err := store.Clean(days)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Printf("Removed %d runs, kept the last %d days.\n", removed, days)
}

func openHistory() *runlog.SQLiteStore {
	store, err := runlog.Open(runlog.DefaultPath())
	if err != nil {
		fatal("%v", err)
	}
	return store
}

// formatRun renders one history line, with the failure detail indented
// below it.
func formatRun(r runlog.Run) string {
	status := green("ok  ")
	if !r.OK {
		status = yellow("FAIL")
	}
	line := fmt.Sprintf("%s  %-8s  %s  %s",
		dim(r.Time.Format("2006-01-02 15:04:05")), r.Command, status, r.Dir)
	if r.Duration > 0 {
		line += "  " + dim(formatDuration(r.Duration))
	}
	if r.CoverageW != nil && r.CoverageH != nil {
		line += fmt.Sprintf("  coverage %.3f/%.3f", *r.CoverageW, *r.CoverageH)
	}
	if !r.OK && r.Detail != "" {
		detail := r.Detail
		if idx := strings.Index(detail, "\n"); idx >= 0 {
			detail = detail[:idx] + " ..."
		}
		line += "\n    " + detail
	}
	return line
}

// formatDuration returns a compact duration string (e.g. "250ms", "3s").
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	d = d.Round(time.Second)
	return d.String()
}

// --- ANSI color helpers (disabled when NO_COLOR is set or stdout is not a terminal) ---

var noColor = os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stdout.Fd()))

func ansi(code, s string) string {
	if noColor {
		return s
	}
	return code + s + "\033[0m"
}

func dim(s string) string    { return ansi("\033[2m", s) }
func cyan(s string) string   { return ansi("\033[36m", s) }
func green(s string) string  { return ansi("\033[32m", s) }
func yellow(s string) string { return ansi("\033[33m", s) }

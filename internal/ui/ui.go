// Package ui renders CLI output for orbit commands. The TUI has its own
// lipgloss styling; this printer serves the plain command surfaces.
package ui

import (
	"errors"
	"fmt"
	"os"

	"github.com/papapumpkin/orbit/internal/tracker"
)

// ANSI color codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	yellow = "\033[33m"
	green  = "\033[32m"
	red    = "\033[31m"
	cyan   = "\033[36m"
)

type Printer struct {
	color bool
}

// New returns a printer; with color false every escape code is dropped.
func New(color bool) *Printer {
	return &Printer{color: color}
}

// c wraps s in the given codes when color is enabled.
func (p *Printer) c(codes, s string) string {
	if !p.color {
		return s
	}
	return codes + s + reset
}

func (p *Printer) Banner() {
	fmt.Fprintln(os.Stderr, p.c(bold+cyan, "  ╔══════════════════════════════╗"))
	fmt.Fprintln(os.Stderr, p.c(bold+cyan, "  ║")+p.c(bold, "   ORBIT  ")+p.c(dim, "habit & goal tracker")+p.c(bold+cyan, "║"))
	fmt.Fprintln(os.Stderr, p.c(bold+cyan, "  ╚══════════════════════════════╝"))
	fmt.Fprintln(os.Stderr)
}

// TrackerRow prints one tracker's status line: title, type tag, and the
// formatted progress.
func (p *Printer) TrackerRow(title string, typ tracker.Type, category, progressLine string, completed bool) {
	tag := p.c(dim, fmt.Sprintf("[%s]", typ))
	if category != "" {
		tag += " " + p.c(dim, category)
	}
	line := progressLine
	if completed {
		line = p.c(green, progressLine)
	}
	fmt.Fprintf(os.Stdout, "%-24s %s  %s\n", p.c(bold, title), tag, line)
}

// EntryLogged confirms a recorded entry with the refreshed progress.
func (p *Printer) EntryLogged(title, value, progressLine string) {
	fmt.Fprintf(os.Stderr, p.c(green, "✓")+" logged %s for %s — %s\n", p.c(bold, value), p.c(bold, title), progressLine)
}

func (p *Printer) GoalAdded(trackerTitle, goalTitle string) {
	fmt.Fprintf(os.Stderr, p.c(green, "✓")+" goal %s added to %s\n", p.c(bold, goalTitle), p.c(bold, trackerTitle))
}

func (p *Printer) Info(msg string) {
	fmt.Fprintln(os.Stderr, p.c(dim, msg))
}

func (p *Printer) Warn(msg string) {
	fmt.Fprintln(os.Stderr, p.c(yellow+bold, "⚠ ")+msg)
}

// Error prints a failure. Validation failures get a short message plus
// the offending field name rather than a raw error chain.
func (p *Printer) Error(err error) {
	var missing *tracker.MissingFieldError
	var notAllowed *tracker.KindNotAllowedError
	var mismatch *tracker.TypeMismatchError
	switch {
	case errors.As(err, &missing):
		fmt.Fprintf(os.Stderr, p.c(red+bold, "error: ")+"goal is missing field %s\n", p.c(bold, missing.Field))
	case errors.As(err, &notAllowed):
		fmt.Fprintf(os.Stderr, p.c(red+bold, "error: ")+"kind %s is not available for %s trackers\n",
			p.c(bold, string(notAllowed.Kind)), p.c(bold, string(notAllowed.Type)))
	case errors.As(err, &mismatch):
		fmt.Fprintf(os.Stderr, p.c(red+bold, "error: ")+"value %s is not a valid %s\n",
			p.c(bold, mismatch.Raw), p.c(bold, string(mismatch.Type)))
	default:
		fmt.Fprintf(os.Stderr, p.c(red+bold, "error: ")+"%s\n", err)
	}
}

package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
)

// ANSI color codes.
var (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorYellow = "\033[93m"
	colorDim    = "\033[2m"
	colorsOn    = true
)

// initColors disables colours when noColor is true or stdout is not a
// terminal. Bars rendered afterwards carry no escape sequences but keep
// identical glyphs and spacing.
func initColors(noColor bool) {
	if noColor || !stdoutIsTerminal() {
		colorReset = ""
		colorBold = ""
		colorYellow = ""
		colorDim = ""
		colorsOn = false
	}
}

// stdoutIsTerminal reports whether stdout is connected to a terminal.
func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// visibleLen returns the display width of s, ignoring ANSI escape
// sequences. ESC opens a sequence and the terminating 'm' closes it; both
// are consumed without being counted. Everything else counts by its
// terminal column width.
func visibleLen(s string) int {
	n := 0
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\033':
			inEsc = true
		case inEsc:
			if r == 'm' {
				inEsc = false
			}
		default:
			n += runewidth.RuneWidth(r)
		}
	}
	return n
}

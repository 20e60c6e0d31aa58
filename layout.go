package main

import (
	"os"

	"golang.org/x/term"
)

const minBarLength = 10

// layout holds the geometry derived from the terminal width.
type layout struct {
	BoxWidth     int // roughly 80% of the terminal, clamped to [40,120]
	ContentWidth int // box minus the 4-character frame
	BarLength    int // content minus the two brackets, floored at 10
}

// planLayout sizes the per-drive box from the terminal width.
func planLayout(termWidth int) layout {
	box := termWidth * 4 / 5
	if box > 120 {
		box = 120
	}
	if box < 40 {
		box = 40
	}
	content := box - 4
	bar := content - 2
	if bar < minBarLength {
		bar = minBarLength
	}
	return layout{BoxWidth: box, ContentWidth: content, BarLength: bar}
}

// terminalWidth queries stdout for its column count, falling back to 80
// when stdout is not a terminal.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

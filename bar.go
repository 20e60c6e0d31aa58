package main

import "strings"

const (
	fillGlyph  = "█"
	emptyGlyph = "░"
)

var (
	labelColor   = rgb{0, 0, 255}       // accent for the embedded percent label
	emptyBgColor = rgb{64, 64, 64}      // neutral gray cell background
	emptyFgColor = rgb{160, 160, 160}   // neutral gray cell glyph
)

// renderBar composes the usage bar: gradient-colored fill cells, the
// percent label centered within the filled region, gray for the rest.
// Every colored cell carries its own reset so no color bleeds into its
// neighbor. filled is truncated toward zero, so 0% yields no fill cells
// and 100% fills the bar exactly. With colors false the same glyph
// sequence is emitted without any escape sequences.
//
// A barLength below 2 violates the layout contract and is clamped to the
// planner's floor rather than crashing.
func renderBar(usagePercent float64, barLength int, colors bool) string {
	if barLength < 2 {
		barLength = minBarLength
	}
	filled := int(usagePercent / 100 * float64(barLength))
	if filled < 0 {
		filled = 0
	}
	if filled > barLength {
		filled = barLength
	}

	label := formatPercent(usagePercent)
	textLen := len(label)
	textStart := 0
	if filled > textLen {
		textStart = (filled - textLen) / 2
	}

	var b strings.Builder
	for i := 0; i < barLength; i++ {
		switch {
		case i >= textStart && i < textStart+textLen && i < filled:
			if colors {
				b.WriteString(barColor(i, barLength).bg())
				b.WriteString(labelColor.fg())
			}
			b.WriteByte(label[i-textStart])
			if colors {
				b.WriteString("\033[0m")
			}
		case i < filled:
			if colors {
				b.WriteString(barColor(i, barLength).fg())
			}
			b.WriteString(fillGlyph)
			if colors {
				b.WriteString("\033[0m")
			}
		default:
			if colors {
				b.WriteString(emptyBgColor.bg())
				b.WriteString(emptyFgColor.fg())
			}
			b.WriteString(emptyGlyph)
			if colors {
				b.WriteString("\033[0m")
			}
		}
	}
	return b.String()
}

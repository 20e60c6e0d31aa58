package main

import "fmt"

// rgb is one truecolor triplet.
type rgb struct {
	r, g, b int
}

// barColor maps a bar cell index to a point on the green-yellow-red ramp:
// index 0 is pure green, the midpoint yellow, the last cell pure red.
// max is clamped to 2 so a degenerate bar length cannot divide by zero.
func barColor(i, max int) rgb {
	if max < 2 {
		max = 2
	}
	if i < 0 {
		i = 0
	}
	if i > max-1 {
		i = max - 1
	}
	ratio := float64(i) / float64(max-1)
	if ratio < 0.5 {
		return rgb{int(ratio * 2 * 255), 255, 0}
	}
	return rgb{255, int((1 - (ratio-0.5)*2) * 255), 0}
}

func (c rgb) fg() string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", c.r, c.g, c.b)
}

func (c rgb) bg() string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm", c.r, c.g, c.b)
}

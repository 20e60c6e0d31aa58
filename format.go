package main

import "fmt"

// formatBytes formats a byte count with the largest unit that keeps the
// scaled value below 1024, clamped at TB. The B tier prints without
// decimals, every other tier with two.
func formatBytes(bytes uint64) string {
	units := []string{"B", "KB", "MB", "GB", "TB"}
	size := float64(bytes)
	unit := 0
	for size >= 1024 && unit < len(units)-1 {
		size /= 1024
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%.0f %s", size, units[unit])
	}
	return fmt.Sprintf("%.2f %s", size, units[unit])
}

// formatPercent renders a percentage with one decimal place.
func formatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// usagePercent returns used space as a percentage of total.
// Zero-size filesystems report zero rather than NaN.
func usagePercent(total, available uint64) float64 {
	if total == 0 {
		return 0
	}
	used := total - available
	return float64(used) / float64(total) * 100
}

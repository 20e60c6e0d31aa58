package main

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout runs fn and returns everything it wrote to stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	old := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()
	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func sampleRecord() DriveRecord {
	lay := planLayout(100)
	pct := 75.0
	return DriveRecord{
		MountPoint:     "/",
		Filesystem:     "ext4",
		Device:         "/dev/sda1",
		UUID:           "ABCD-1234",
		Options:        "rw,relatime",
		TotalBytes:     1000,
		UsedBytes:      750,
		AvailableBytes: 250,
		UsagePercent:   pct,
		TotalInodes:    100,
		UsedInodes:     50,
		Type:           DriveLocal,
		MountedAt:      "2026-08-31 10:00:00",
		RenderedBar:    renderBar(pct, lay.BarLength, false),
	}
}

func TestPrintReport(t *testing.T) {
	lay := planLayout(100)
	out := captureStdout(t, func() {
		printReport([]DriveRecord{sampleRecord()}, lay)
	})

	assert.Contains(t, out, "Drive 1")
	assert.Contains(t, out, "Mount point:   /")
	assert.Contains(t, out, "Total size:    1000 B")
	assert.Contains(t, out, "Used:          750 B (75.0%)")
	assert.Contains(t, out, "UUID:          ABCD-1234")
	assert.Contains(t, out, "Label:         -")
	assert.Contains(t, out, "Health:        No data")
	assert.Contains(t, out, "A total of 1 drives found.")

	// The bar line is padded to the content width.
	var barLine string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "  [") {
			barLine = line
			break
		}
	}
	require.NotEmpty(t, barLine)
	assert.Equal(t, 2+lay.ContentWidth, visibleLen(barLine))
}

func TestPrintReportNoDrives(t *testing.T) {
	out := captureStdout(t, func() {
		printReport(nil, planLayout(100))
	})
	assert.Contains(t, out, "No drives found.")
	assert.NotContains(t, out, "A total of")
}

func TestPrintJSON(t *testing.T) {
	rec := sampleRecord()

	out := captureStdout(t, func() {
		require.NoError(t, printJSON([]DriveRecord{rec}))
	})

	var decoded struct {
		Drives []map[string]any `json:"drives"`
		Count  int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 1, decoded.Count)
	require.Len(t, decoded.Drives, 1)

	d := decoded.Drives[0]
	assert.Equal(t, "/", d["mount_point"])
	assert.Equal(t, "local", d["drive_type"])
	assert.Equal(t, float64(750), d["used_bytes"])
	// The ANSI bar never leaks into the structured output.
	_, hasBar := d["rendered_bar"]
	assert.False(t, hasBar)
	assert.NotContains(t, out, "\033[")
}

func TestPrintJSONEmpty(t *testing.T) {
	out := captureStdout(t, func() {
		require.NoError(t, printJSON(nil))
	})
	assert.Contains(t, out, `"drives": []`)
	assert.Contains(t, out, `"count": 0`)
}

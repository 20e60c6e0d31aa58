package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// printReport writes the human-readable report: one block per drive with a
// numbered header, aligned fields, and the usage bar padded to the content
// width. Zero drives is not an error and gets its own message.
func printReport(records []DriveRecord, lay layout) {
	fmt.Println()
	for i, rec := range records {
		printDrive(i+1, rec, lay)
	}
	if len(records) == 0 {
		fmt.Println("No drives found.")
		return
	}
	fmt.Printf("%sA total of %d drives found.%s\n", colorDim, len(records), colorReset)
}

func printDrive(n int, rec DriveRecord, lay layout) {
	fmt.Printf("  %s%sDrive %d%s\n", colorBold, colorYellow, n, colorReset)
	fmt.Printf("  Mount point:   %s\n", rec.MountPoint)
	fmt.Printf("  Filesystem:    %s\n", rec.Filesystem)
	fmt.Printf("  Device:        %s\n", rec.Device)
	fmt.Printf("  Type:          %s\n", driveTypeLabel(rec))
	fmt.Printf("  UUID:          %s\n", orPlaceholder(rec.UUID))
	fmt.Printf("  Label:         %s\n", orPlaceholder(rec.Label))
	fmt.Printf("  Options:       %s\n", orPlaceholder(rec.Options))
	fmt.Printf("  Total size:    %s\n", formatBytes(rec.TotalBytes))
	fmt.Printf("  Used:          %s (%s)\n", formatBytes(rec.UsedBytes), formatPercent(rec.UsagePercent))
	fmt.Printf("  Available:     %s\n", formatBytes(rec.AvailableBytes))
	if rec.TotalInodes > 0 {
		fmt.Printf("  Inodes:        %d of %d used (%s)\n",
			rec.UsedInodes, rec.TotalInodes, formatPercent(rec.InodeUsagePercent))
	}
	if rec.Type == DriveLocal {
		health := rec.Health
		if health == "" {
			health = "No data"
		}
		fmt.Printf("  Health:        %s\n", health)
	}
	fmt.Printf("  Mounted:       %s\n", rec.MountedAt)

	// The bar contains escape sequences, so padding must go through the
	// ANSI-aware measurer.
	bar := "[" + rec.RenderedBar + "]"
	padding := lay.ContentWidth - visibleLen(bar)
	if padding < 0 {
		padding = 0
	}
	fmt.Printf("  %s%*s\n\n", bar, padding, "")
}

func driveTypeLabel(rec DriveRecord) string {
	if rec.Type == DriveCloud {
		return fmt.Sprintf("cloud (%s)", rec.CloudService)
	}
	return rec.Type.String()
}

func orPlaceholder(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// printJSON writes the structured report to stdout. Bars are omitted; all
// other record fields carry over.
func printJSON(records []DriveRecord) error {
	if records == nil {
		records = []DriveRecord{}
	}
	out := struct {
		Drives []DriveRecord `json:"drives"`
		Count  int           `json:"count"`
	}{Drives: records, Count: len(records)}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

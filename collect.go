package main

import (
	"fmt"
	"sort"
)

// collector runs the single enumeration pass and owns the record slice.
// All collaborators are injected so tests can substitute fakes.
type collector struct {
	mounts  mountSource
	stats   statSource
	ids     idResolver
	health  HealthChecker
	gvfsDir string
	layout  layout
	colors  bool
}

// Collect walks the mount table and then the GVFS directory, classifies
// each candidate, and returns fully populated records in discovery order.
// Candidates whose statistics are unavailable are skipped, not fatal.
func (c *collector) Collect() ([]DriveRecord, error) {
	entries, err := c.mounts.Mounts()
	if err != nil {
		return nil, err
	}

	var records []DriveRecord
	for _, e := range entries {
		dtype, ok := classify(e.Device, e.MountPoint, e.Fstype)
		if !ok {
			continue
		}
		rec, err := c.buildRecord(e, dtype, "")
		if err != nil {
			log.Debug().Str("mount", e.MountPoint).Err(err).Msg("skipping candidate")
			continue
		}
		records = append(records, rec)
	}

	for _, cm := range discoverCloudMounts(c.gvfsDir) {
		entry := mountEntry{Device: cm.Path, MountPoint: cm.Path, Fstype: "gvfs"}
		rec, err := c.buildRecord(entry, DriveCloud, cm.Service)
		if err != nil {
			log.Debug().Str("mount", cm.Path).Err(err).Msg("skipping cloud mount")
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

// buildRecord populates one record in a single step, including its
// rendered bar. Unresolvable UUID/label/health leave empty fields; the
// presentation layer substitutes placeholders.
func (c *collector) buildRecord(e mountEntry, dtype DriveType, service string) (DriveRecord, error) {
	usage, err := c.stats.Usage(e.MountPoint)
	if err != nil {
		return DriveRecord{}, fmt.Errorf("statistics for %s: %w", e.MountPoint, err)
	}

	pct := usagePercent(usage.Total, usage.Free)
	rec := DriveRecord{
		MountPoint: e.MountPoint,
		Filesystem: e.Fstype,
		Device:     e.Device,
		Options:    e.Options,

		TotalBytes:     usage.Total,
		UsedBytes:      usage.Total - usage.Free,
		AvailableBytes: usage.Free,
		UsagePercent:   pct,

		TotalInodes:       usage.InodesTotal,
		UsedInodes:        usage.InodesTotal - usage.InodesFree,
		InodeUsagePercent: usagePercent(usage.InodesTotal, usage.InodesFree),

		Type:         dtype,
		CloudService: service,
		MountedAt:    mountTime(e.MountPoint),
	}

	if dtype == DriveLocal {
		rec.UUID = c.ids.UUID(e.Device)
		rec.Label = c.ids.Label(e.Device)
		if isPhysicalDevice(e.Device) {
			rec.Health = c.health.Status(e.Device)
		}
	}

	rec.RenderedBar = renderBar(pct, c.layout.BarLength, c.colors)
	return rec, nil
}

// sortRecords orders records by the requested criterion. The sort is
// stable: drives that compare equal keep their discovery order.
func sortRecords(records []DriveRecord, order sortOrder) {
	switch order {
	case sortSize:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].TotalBytes > records[j].TotalBytes
		})
	case sortUsage:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].UsagePercent > records[j].UsagePercent
		})
	case sortMount:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].MountPoint < records[j].MountPoint
		})
	case sortName:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Device < records[j].Device
		})
	}
}

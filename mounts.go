package main

import (
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/shirou/gopsutil/v3/disk"
)

// mountEntry is one row of the system mount table.
type mountEntry struct {
	Device     string
	MountPoint string
	Fstype     string
	Options    string
}

// mountSource lists mount candidates in table order.
type mountSource interface {
	Mounts() ([]mountEntry, error)
}

// statSource reports filesystem statistics for a mount point.
type statSource interface {
	Usage(mountPoint string) (*disk.UsageStat, error)
}

// gopsutilSource reads the real mount table and statfs data.
type gopsutilSource struct{}

func (gopsutilSource) Mounts() ([]mountEntry, error) {
	parts, err := disk.Partitions(true)
	if err != nil {
		return nil, fmt.Errorf("reading mount table: %w", err)
	}
	entries := make([]mountEntry, 0, len(parts))
	for _, p := range parts {
		entries = append(entries, mountEntry{
			Device:     p.Device,
			MountPoint: p.Mountpoint,
			Fstype:     p.Fstype,
			Options:    strings.Join(p.Opts, ","),
		})
	}
	return entries, nil
}

func (gopsutilSource) Usage(mountPoint string) (*disk.UsageStat, error) {
	return disk.Usage(mountPoint)
}

// mountTime returns the ctime of the mount point as a timestamp string,
// "unknown" when the mount point cannot be stat'ed.
func mountTime(mountPoint string) string {
	info, err := os.Stat(mountPoint)
	if err != nil {
		return "unknown"
	}
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime().Format("2006-01-02 15:04:05")
	}
	return time.Unix(stat.Ctim.Sec, stat.Ctim.Nsec).Format("2006-01-02 15:04:05")
}

package main

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DriveType classifies where a volume's storage lives.
type DriveType int

const (
	DriveLocal DriveType = iota
	DriveNetwork
	DriveCloud
	DriveOther
)

func (t DriveType) String() string {
	switch t {
	case DriveLocal:
		return "local"
	case DriveNetwork:
		return "network"
	case DriveCloud:
		return "cloud"
	default:
		return "other"
	}
}

func (t DriveType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// DriveRecord is one accepted mount, fully populated in a single step and
// never mutated afterward.
type DriveRecord struct {
	MountPoint string `json:"mount_point"`
	Filesystem string `json:"filesystem_type"`
	Device     string `json:"device_path"`
	UUID       string `json:"uuid,omitempty"`
	Label      string `json:"label,omitempty"`
	Options    string `json:"mount_options,omitempty"`

	TotalBytes     uint64  `json:"total_bytes"`
	UsedBytes      uint64  `json:"used_bytes"`
	AvailableBytes uint64  `json:"available_bytes"`
	UsagePercent   float64 `json:"usage_percent"`

	TotalInodes       uint64  `json:"total_inodes"`
	UsedInodes        uint64  `json:"used_inodes"`
	InodeUsagePercent float64 `json:"inode_usage_percent"`

	Type         DriveType `json:"drive_type"`
	CloudService string    `json:"cloud_service,omitempty"` // set only for DriveCloud
	Health       string    `json:"health,omitempty"`        // empty when unavailable
	MountedAt    string    `json:"mounted_at"`

	RenderedBar string `json:"-"`
}

// sortOrder selects how the final report is ordered.
type sortOrder int

const (
	sortNone sortOrder = iota // discovery order
	sortSize
	sortUsage
	sortMount
	sortName
)

func parseSortOrder(s string) (sortOrder, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return sortNone, nil
	case "size":
		return sortSize, nil
	case "usage":
		return sortUsage, nil
	case "mount":
		return sortMount, nil
	case "name":
		return sortName, nil
	}
	return sortNone, fmt.Errorf("invalid sort order %q (valid: none, size, usage, mount, name)", s)
}

package main

import "strings"

// Pseudo and virtual filesystems that never represent user drives.
var skipFilesystems = map[string]struct{}{
	"proc":            {},
	"sysfs":           {},
	"devpts":          {},
	"tmpfs":           {},
	"devtmpfs":        {},
	"securityfs":      {},
	"cgroup":          {},
	"cgroup2":         {},
	"pstore":          {},
	"efivarfs":        {},
	"autofs":          {},
	"debugfs":         {},
	"tracefs":         {},
	"configfs":        {},
	"fusectl":         {},
	"fuse.gvfsd-fuse": {},
	"binfmt_misc":     {},
}

// Network filesystem types matched exactly. Anything else with a fuse.
// prefix is treated as network-backed too.
var networkFilesystems = map[string]struct{}{
	"nfs":         {},
	"nfs4":        {},
	"cifs":        {},
	"smb":         {},
	"smb3":        {},
	"fuse.sshfs":  {},
	"fuse.rclone": {},
	"fuse.cephfs": {},
}

var physicalPrefixes = []string{"/dev/sd", "/dev/nvme", "/dev/hd"}

// isPhysicalDevice reports whether device names a local block device.
func isPhysicalDevice(device string) bool {
	for _, p := range physicalPrefixes {
		if strings.HasPrefix(device, p) {
			return true
		}
	}
	return false
}

// isNetworkDevice matches UNC/SMB prefixes and NFS host:path notation.
func isNetworkDevice(device string) bool {
	return strings.HasPrefix(device, "//") ||
		strings.HasPrefix(device, `\\`) ||
		strings.Contains(device, ":")
}

func isNetworkFilesystem(fstype string) bool {
	if _, ok := networkFilesystems[fstype]; ok {
		return true
	}
	return strings.HasPrefix(fstype, "fuse.")
}

// isTransientMount rejects AppImage and other temporary mounts.
func isTransientMount(device, mountPoint string) bool {
	if strings.Contains(device, ".mount_") || strings.Contains(mountPoint, ".mount_") {
		return true
	}
	return strings.HasPrefix(mountPoint, "/tmp/.mount")
}

// classify decides whether a mount candidate is a user-relevant drive and,
// if so, which category it belongs to. The skip-set and transient checks
// run first and reject outright.
func classify(device, mountPoint, fstype string) (DriveType, bool) {
	if _, skip := skipFilesystems[fstype]; skip {
		return DriveOther, false
	}
	if isTransientMount(device, mountPoint) {
		return DriveOther, false
	}
	switch {
	case isPhysicalDevice(device):
		return DriveLocal, true
	case isNetworkDevice(device), isNetworkFilesystem(fstype):
		return DriveNetwork, true
	}
	return DriveOther, false
}

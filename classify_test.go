package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		device     string
		mountPoint string
		fstype     string
		wantType   DriveType
		wantOK     bool
	}{
		{"sata partition", "/dev/sda1", "/", "ext4", DriveLocal, true},
		{"nvme partition", "/dev/nvme0n1p2", "/home", "ext4", DriveLocal, true},
		{"ide partition", "/dev/hda1", "/data", "ext3", DriveLocal, true},
		{"nfs export", "10.0.0.1:/export", "/mnt/nfs", "nfs4", DriveNetwork, true},
		{"smb share", "//server/share", "/mnt/smb", "cifs", DriveNetwork, true},
		{"unc share", `\\server\share`, "/mnt/win", "cifs", DriveNetwork, true},
		{"sshfs mount", "user@host:", "/mnt/ssh", "fuse.sshfs", DriveNetwork, true},
		{"generic fuse type", "remote", "/mnt/x", "fuse.weirdfs", DriveNetwork, true},
		{"procfs rejected", "proc", "/proc", "proc", DriveOther, false},
		{"tmpfs rejected", "tmpfs", "/tmp", "tmpfs", DriveOther, false},
		{"cgroup2 rejected", "cgroup2", "/sys/fs/cgroup", "cgroup2", DriveOther, false},
		{"gvfsd fuse in skip set despite fuse prefix", "gvfsd-fuse", "/run/user/1000/gvfs", "fuse.gvfsd-fuse", DriveOther, false},
		{"appimage mount rejected", "/dev/sda1", "/tmp/.mount_AppImage123", "ext4", DriveOther, false},
		{"appimage device marker rejected", "/tmp/.mount_fooXYZ", "/mnt/app", "squashfs", DriveOther, false},
		{"loop device is not a drive", "/dev/loop0", "/snap/core", "squashfs", DriveOther, false},
		{"mapper device is not a drive", "/dev/mapper/root", "/", "ext4", DriveOther, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dtype, ok := classify(tt.device, tt.mountPoint, tt.fstype)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantType, dtype)
		})
	}
}

func TestDiscoverCloudMounts(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "google-drive-user@example.com"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dropbox-home"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sftp-server"), 0o755))
	// Plain files never count, even with a matching name.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "onedrive-note"), nil, 0o644))

	mounts := discoverCloudMounts(dir)
	require.Len(t, mounts, 2)

	services := map[string]string{}
	for _, m := range mounts {
		services[m.Service] = m.Path
	}
	assert.Equal(t, filepath.Join(dir, "dropbox-home"), services["dropbox"])
	assert.Equal(t, filepath.Join(dir, "google-drive-user@example.com"), services["google-drive"])
}

func TestDiscoverCloudMountsMissingDir(t *testing.T) {
	assert.Empty(t, discoverCloudMounts("/nonexistent/gvfs"))
}

package main

import (
	"os"
	"path/filepath"
)

// idResolver resolves device UUIDs and labels from the by-uuid and
// by-label symlink directories. Empty results mean unresolvable, never an
// error.
type idResolver struct {
	uuidDir  string
	labelDir string
}

func newIDResolver() idResolver {
	return idResolver{
		uuidDir:  "/dev/disk/by-uuid",
		labelDir: "/dev/disk/by-label",
	}
}

func (r idResolver) UUID(device string) string {
	return matchSymlink(r.uuidDir, device)
}

func (r idResolver) Label(device string) string {
	return matchSymlink(r.labelDir, device)
}

// matchSymlink returns the name of the entry in dir whose symlink resolves
// to device.
func matchSymlink(dir, device string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	for _, e := range entries {
		target, err := os.Readlink(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(dir, target)
		}
		if filepath.Clean(target) == device {
			return e.Name()
		}
	}
	return ""
}

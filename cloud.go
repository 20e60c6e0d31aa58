package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Cloud provider name fragments recognized inside the GVFS directory.
var cloudProviders = []string{"google-drive", "dropbox", "onedrive", "mega"}

// cloudMount is a cloud-storage backend exposed through GVFS.
type cloudMount struct {
	Path    string
	Service string
}

// gvfsDir returns the per-user GVFS directory.
func gvfsDir() string {
	return fmt.Sprintf("/run/user/%d/gvfs", os.Getuid())
}

// discoverCloudMounts scans dir for subdirectories backed by a known cloud
// provider. Each match is reported as its own drive, independent of the
// mount table; no deduplication is attempted against mount-table entries
// pointing at the same backing path.
func discoverCloudMounts(dir string) []cloudMount {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var mounts []cloudMount
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name := strings.ToLower(e.Name())
		for _, provider := range cloudProviders {
			if strings.Contains(name, provider) {
				mounts = append(mounts, cloudMount{
					Path:    filepath.Join(dir, e.Name()),
					Service: provider,
				})
				break
			}
		}
	}
	return mounts
}

// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package idx

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DiscoveredFileSet holds the IDX files found by [Scan], sorted by path.
type DiscoveredFileSet struct {
	Images []string
	Labels []string
}

// Scan lists the regular files directly inside dir whose name ends with
// [Config.ScanSuffix] and classifies them by their magic number. Names are
// only used to select candidates; a candidate that cannot be read or holds
// another magic number is skipped.
//
// Scan fails with a [*NoFilesFoundError] if no image files or no label files
// are found. A nil cfg selects the defaults.
func Scan(ctx context.Context, dir string, cfg *Config) (*DiscoveredFileSet, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &IOError{Op: "read directory", Path: dir, Err: err}
	}

	set := &DiscoveredFileSet{}
	for _, entry := range entries {

		// check if context is canceled
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !strings.HasSuffix(entry.Name(), cfg.ScanSuffix()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		// follow symlinks, only regular files are candidates
		stat, err := os.Stat(path)
		if err != nil || !stat.Mode().IsRegular() {
			cfg.Logger().Debug("skip candidate", "path", path, "reason", "not a regular file")
			continue
		}

		kind, err := SniffFile(path)
		if err != nil {
			cfg.Logger().Debug("skip candidate", "path", path, "error", err)
			continue
		}

		switch kind {
		case KindImages:
			set.Images = append(set.Images, path)
		case KindLabels:
			set.Labels = append(set.Labels, path)
		default:
			cfg.Logger().Debug("skip candidate", "path", path, "reason", "unknown magic number")
		}
	}

	if len(set.Images) == 0 {
		return nil, &NoFilesFoundError{Dir: dir, Kind: KindImages}
	}
	if len(set.Labels) == 0 {
		return nil, &NoFilesFoundError{Dir: dir, Kind: KindLabels}
	}

	sort.Strings(set.Images)
	sort.Strings(set.Labels)

	cfg.Logger().Debug("scanned directory", "dir", dir, "images", len(set.Images), "labels", len(set.Labels))
	return set, nil
}

// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package idx

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// DatasetPair is an image dataset together with its label dataset.
type DatasetPair struct {
	Images     *Dataset
	Labels     *Dataset
	ImagesPath string
	LabelsPath string

	// Warning is a [*CountMismatchError] if images and labels have a
	// different number of items, nil otherwise.
	Warning error
}

// PickLabel returns the label path whose file stem shares the longest
// common prefix with the file stem of imagePath. If several candidates share
// the longest prefix, the greatest path in lexicographic order wins.
func PickLabel(imagePath string, labelPaths []string) (string, error) {
	if len(labelPaths) == 0 {
		return "", &NoFilesFoundError{Kind: KindLabels}
	}

	candidates := append([]string(nil), labelPaths...)
	sort.Strings(candidates)

	stem := fileStem(imagePath)
	best, bestLen := "", -1
	for _, candidate := range candidates {
		// >= lets the later of equally good candidates win
		if n := commonPrefixLength(stem, fileStem(candidate)); n >= bestLen {
			best, bestLen = candidate, n
		}
	}
	return best, nil
}

// LoadPair decodes the image file and the label file concurrently. A
// different number of items is not an error; it is reported in
// [DatasetPair.Warning].
func LoadPair(ctx context.Context, imagePath, labelPath string, fixOrientation bool, cfg *Config) (*DatasetPair, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	pair := &DatasetPair{ImagesPath: imagePath, LabelsPath: labelPath}
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		ds, err := Decode(egCtx, imagePath, fixOrientation, cfg)
		if err != nil {
			return errors.Wrap(err, "cannot load images")
		}
		if ds.Kind() != KindImages {
			return errors.Errorf("%s holds %s, not images", imagePath, ds.Kind())
		}
		pair.Images = ds
		return nil
	})
	eg.Go(func() error {
		ds, err := Decode(egCtx, labelPath, false, cfg)
		if err != nil {
			return errors.Wrap(err, "cannot load labels")
		}
		if ds.Kind() != KindLabels {
			return errors.Errorf("%s holds %s, not labels", labelPath, ds.Kind())
		}
		pair.Labels = ds
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if err := CheckItemCounts(pair.Images, pair.Labels); err != nil {
		cfg.Logger().Warn("item count mismatch", "images", imagePath, "labels", labelPath, "error", err)
		pair.Warning = err
	}
	return pair, nil
}

// CheckItemCounts returns a [*CountMismatchError] if images and labels
// declare a different number of items.
func CheckItemCounts(images, labels *Dataset) error {
	if images.Len() != labels.Len() {
		return &CountMismatchError{Images: uint32(images.Len()), Labels: uint32(labels.Len())}
	}
	return nil
}

// fileStem returns the base name of path without its final extension.
func fileStem(path string) string {
	name := filepath.Base(path)
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[:i]
	}
	return name
}

// commonPrefixLength returns the number of leading characters a and b share.
// Invalid UTF-8 bytes only match the identical byte.
func commonPrefixLength(a, b string) int {
	n := 0
	for len(a) > 0 && len(b) > 0 {
		ra, wa := utf8.DecodeRuneInString(a)
		rb, wb := utf8.DecodeRuneInString(b)
		if ra != rb || wa != wb || a[:wa] != b[:wb] {
			break
		}
		a, b = a[wa:], b[wb:]
		n++
	}
	return n
}

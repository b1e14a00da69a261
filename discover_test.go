// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package idx_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	idx "github.com/hashicorp/go-idx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	dir := t.TempDir()
	images, _ := packImages(1, 2, 2)
	labels, _ := packLabels(1)

	// classified by content, not by name
	wantImages := []string{
		writeTestFile(t, dir, "b-images-idx3-ubyte", images),
		writeTestFile(t, dir, "a-images-idx3-ubyte", images),
		writeTestFile(t, dir, "labelled-as-labels-ubyte", images),
	}
	wantLabels := []string{
		writeTestFile(t, dir, "t10k-labels-idx1-ubyte", labels),
		writeTestFile(t, dir, "train-labels-idx1-ubyte", labels),
	}

	// ignored candidates
	writeTestFile(t, dir, "short-ubyte", []byte{0x00, 0x08})
	writeTestFile(t, dir, "text-ubyte", []byte("some text"))
	writeTestFile(t, dir, "empty-ubyte", nil)
	writeTestFile(t, dir, "train-images-idx3-ubyte.gz", compressGzip(t, images))
	writeTestFile(t, dir, "images.bin", images)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir-ubyte"), 0750))
	writeTestFile(t, filepath.Join(dir, "dir-ubyte"), "nested-ubyte", images)

	set, err := idx.Scan(context.Background(), dir, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{wantImages[1], wantImages[0], wantImages[2]}, set.Images)
	assert.Equal(t, wantLabels, set.Labels)
}

func TestScanSymlink(t *testing.T) {
	dir := t.TempDir()
	other := t.TempDir()
	images, _ := packImages(1, 1, 1)
	labels, _ := packLabels(1)

	target := writeTestFile(t, other, "target", images)
	link := filepath.Join(dir, "linked-images-ubyte")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	writeTestFile(t, dir, "labels-ubyte", labels)

	set, err := idx.Scan(context.Background(), dir, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{link}, set.Images)
}

func TestScanNoFilesFound(t *testing.T) {
	images, _ := packImages(1, 2, 2)
	labels, _ := packLabels(1)

	tests := []struct {
		name     string
		files    map[string][]byte
		wantKind idx.Kind
	}{
		{
			name:     "empty directory",
			files:    map[string][]byte{},
			wantKind: idx.KindImages,
		},
		{
			name:     "only labels",
			files:    map[string][]byte{"labels-ubyte": labels},
			wantKind: idx.KindImages,
		},
		{
			name:     "only images",
			files:    map[string][]byte{"images-ubyte": images},
			wantKind: idx.KindLabels,
		},
		{
			name:     "no candidate suffix",
			files:    map[string][]byte{"images.idx": images, "labels.idx": labels},
			wantKind: idx.KindImages,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, data := range test.files {
				writeTestFile(t, dir, name, data)
			}

			set, err := idx.Scan(context.Background(), dir, nil)
			assert.Nil(t, set)

			var notFound *idx.NoFilesFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, test.wantKind, notFound.Kind)
			assert.Equal(t, dir, notFound.Dir)
			assert.Contains(t, err.Error(), "no "+test.wantKind.String()+" found")
		})
	}
}

func TestScanSuffix(t *testing.T) {
	dir := t.TempDir()
	images, _ := packImages(1, 2, 2)
	labels, _ := packLabels(1)
	wantImages := writeTestFile(t, dir, "images.idx", images)
	wantLabels := writeTestFile(t, dir, "labels.idx", labels)
	writeTestFile(t, dir, "other-ubyte", images)

	set, err := idx.Scan(context.Background(), dir, idx.NewConfig(idx.WithScanSuffix(".idx")))
	require.NoError(t, err)
	assert.Equal(t, []string{wantImages}, set.Images)
	assert.Equal(t, []string{wantLabels}, set.Labels)
}

func TestScanMissingDirectory(t *testing.T) {
	_, err := idx.Scan(context.Background(), filepath.Join(t.TempDir(), "missing"), nil)

	var ioErr *idx.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "read directory", ioErr.Op)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

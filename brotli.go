// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package idx

import (
	"io"

	"github.com/andybalholm/brotli"
)

// fileExtensionBrotli is the file extension for brotli files.
const fileExtensionBrotli = "br"

// isBrotli always returns false, a brotli stream has no magic bytes.
func isBrotli(header []byte) bool {
	return false
}

// decompressBrotliStream returns an io.ReadCloser that decompresses src with brotli algorithm.
func decompressBrotliStream(src io.Reader) (io.ReadCloser, error) {
	return &noopReaderCloser{brotli.NewReader(src)}, nil
}

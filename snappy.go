// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package idx

import (
	"io"

	"github.com/klauspost/compress/snappy"
)

// fileExtensionSnappy is the file extension for snappy framed files.
const fileExtensionSnappy = "sz"

// magicBytesSnappy is the stream identifier chunk of the snappy framing format.
var magicBytesSnappy = [][]byte{
	append([]byte{0xff, 0x06, 0x00, 0x00}, []byte("sNaPpY")...),
}

// isSnappy checks if the header matches the snappy magic bytes.
func isSnappy(header []byte) bool {
	return matchesMagicBytes(header, 0, magicBytesSnappy)
}

// decompressSnappyStream returns an io.ReadCloser that decompresses src with snappy algorithm.
func decompressSnappyStream(src io.Reader) (io.ReadCloser, error) {
	return &noopReaderCloser{snappy.NewReader(src)}, nil
}

// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package idx

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// decompressionFunc returns a reader that decompresses src.
type decompressionFunc func(io.Reader) (io.ReadCloser, error)

// headerCheck is a function that checks if the given header matches the expected magic bytes.
type headerCheck func([]byte) bool

type availableDecompressor struct {
	Decompress  decompressionFunc
	HeaderCheck headerCheck
	MagicBytes  [][]byte
}

// availableDecompressors maps a file extension, without the leading dot, to
// the decompressor that is interposed for files with that extension
var availableDecompressors = map[string]availableDecompressor{
	fileExtensionBrotli: {
		Decompress:  decompressBrotliStream,
		HeaderCheck: isBrotli,
	},
	fileExtensionBzip2: {
		Decompress:  decompressBz2Stream,
		HeaderCheck: isBzip2,
		MagicBytes:  magicBytesBzip2,
	},
	fileExtensionGZip: {
		Decompress:  decompressGZipStream,
		HeaderCheck: isGZip,
		MagicBytes:  magicBytesGZip,
	},
	fileExtensionLZ4: {
		Decompress:  decompressLZ4Stream,
		HeaderCheck: isLZ4,
		MagicBytes:  magicBytesLZ4,
	},
	fileExtensionSnappy: {
		Decompress:  decompressSnappyStream,
		HeaderCheck: isSnappy,
		MagicBytes:  magicBytesSnappy,
	},
	fileExtensionXz: {
		Decompress:  decompressXzStream,
		HeaderCheck: isXz,
		MagicBytes:  magicBytesXz,
	},
	fileExtensionZlib: {
		Decompress:  decompressZlibStream,
		HeaderCheck: isZlib,
		MagicBytes:  magicBytesZlib,
	},
	fileExtensionZstd: {
		Decompress:  decompressZstdStream,
		HeaderCheck: isZstd,
		MagicBytes:  magicBytesZstd,
	},
}

// maxHeaderLength is the maximum length of all magic bytes, at least the
// length of the IDX magic number
var maxHeaderLength = magicLength

// init calculates the maximum header length
func init() {
	for _, d := range availableDecompressors {
		for _, mb := range d.MagicBytes {
			if len(mb) > maxHeaderLength {
				maxHeaderLength = len(mb)
			}
		}
	}
}

// Compression returns the compression that [Decode] applies to path, based
// on the final file extension, or an empty string for uncompressed files.
func Compression(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if _, ok := availableDecompressors[ext]; ok {
		return ext
	}
	return ""
}

// SupportedCompressions returns the sorted file extensions that trigger decompression.
func SupportedCompressions() []string {
	exts := make([]string, 0, len(availableDecompressors))
	for ext := range availableDecompressors {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// detectCompression returns the extension of the compression whose magic
// bytes match header, or an empty string.
func detectCompression(header []byte) string {
	for _, ext := range SupportedCompressions() {
		if availableDecompressors[ext].HeaderCheck(header) {
			return ext
		}
	}
	return ""
}

// matchesMagicBytes checks if the bytes in data are equal to any of the magic bytes at the given offset
func matchesMagicBytes(data []byte, offset int, magicBytes [][]byte) bool {
	// check all possible magic bytes until match is found
	for _, mb := range magicBytes {
		// check if header is long enough
		if offset+len(mb) > len(data) {
			continue
		}

		// check for byte match
		if bytes.Equal(mb, data[offset:offset+len(mb)]) {
			return true
		}
	}
	return false
}

// source is the stream of decompressed bytes of a file. Close releases the
// decompressor and the file.
type source struct {
	io.Reader
	stream io.Closer
	file   *os.File
}

func (s *source) Close() error {
	err := s.stream.Close()
	if ferr := s.file.Close(); err == nil {
		err = ferr
	}
	return err
}

// openSource opens path and interposes a decompressor if the file extension
// asks for one. It returns the stream and the detected compression.
func openSource(path string) (*source, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", &IOError{Op: "open", Path: path, Err: err}
	}

	compression := Compression(path)
	if compression == "" {
		r := &noopReaderCloser{bufio.NewReader(f)}
		return &source{Reader: r, stream: r, file: f}, "", nil
	}

	// start decompression
	stream, err := availableDecompressors[compression].Decompress(bufio.NewReader(f))
	if err != nil {
		f.Close()
		return nil, compression, &IOError{Op: "decompress " + compression, Path: path, Err: err}
	}
	return &source{Reader: stream, stream: stream, file: f}, compression, nil
}

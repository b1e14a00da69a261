// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package idx

import (
	"encoding/binary"
	"io"
	"os"
)

const (
	// MagicImages is the magic number of an IDX file with unsigned byte images (3 dimensions).
	MagicImages uint32 = 0x00000803 // 2051

	// MagicLabels is the magic number of an IDX file with unsigned byte labels (1 dimension).
	MagicLabels uint32 = 0x00000801 // 2049

	// magicLength is the number of bytes of the magic number
	magicLength = 4
)

// Kind is the content type of an IDX file, derived from its magic number.
type Kind int

const (
	KindUnknown Kind = iota
	KindImages
	KindLabels
)

func (k Kind) String() string {
	switch k {
	case KindImages:
		return "images"
	case KindLabels:
		return "labels"
	}
	return "unknown"
}

// KindOf maps a magic number to its [Kind].
func KindOf(magic uint32) Kind {
	switch magic {
	case MagicImages:
		return KindImages
	case MagicLabels:
		return KindLabels
	}
	return KindUnknown
}

// ReadMagic reads the magic number from r. It consumes exactly four bytes
// and fails if fewer are available.
func ReadMagic(r io.Reader) (uint32, error) {
	return readUint32(r)
}

// SniffFile opens path and classifies it by the magic number found in the
// raw leading bytes. The file is not decompressed.
func SniffFile(path string) (Kind, error) {
	f, err := os.Open(path)
	if err != nil {
		return KindUnknown, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	magic, err := ReadMagic(f)
	if err != nil {
		return KindUnknown, &IOError{Op: "read magic", Path: path, Err: err}
	}
	return KindOf(magic), nil
}

// readUint32 reads a big-endian uint32 from r.
func readUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package idx

import (
	"errors"
	"fmt"
)

var (
	// ErrMaxPayloadSizeExceeded is returned when the decompressed payload is
	// larger than [Config.MaxPayloadSize].
	ErrMaxPayloadSizeExceeded = errors.New("maximum payload size exceeded")

	// ErrIndexOutOfRange is returned by [Dataset.Item] for an index outside of the dataset.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrEmptyDataset is returned when a matrix view is requested for a dataset without complete items.
	ErrEmptyDataset = errors.New("dataset has no complete items")
)

// IOError records a failed I/O operation on a file: the file cannot be
// opened, or it ends before a header field is complete.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// InvalidMagicNumberError is returned when the first four bytes of a file
// are neither the image nor the label magic number.
type InvalidMagicNumberError struct {
	Magic uint32
	Path  string

	// Compression is set if the raw header looks like compressed data,
	// e.g. a gzip file without the .gz suffix.
	Compression string
}

func (e *InvalidMagicNumberError) Error() string {
	msg := fmt.Sprintf("invalid magic number %d for file %s", e.Magic, e.Path)
	if e.Compression != "" {
		msg = fmt.Sprintf("%s (data looks %s compressed, but the file name has no .%s suffix)", msg, e.Compression, e.Compression)
	}
	return msg
}

// NoFilesFoundError is returned when a directory contains no image files or
// no label files.
type NoFilesFoundError struct {
	Dir  string
	Kind Kind
}

func (e *NoFilesFoundError) Error() string {
	if e.Dir == "" {
		return fmt.Sprintf("no %s found", e.Kind)
	}
	return fmt.Sprintf("no %s found in %s", e.Kind, e.Dir)
}

// CountMismatchError reports image and label datasets with a different
// number of items. It is a warning: both datasets are still usable.
type CountMismatchError struct {
	Images uint32
	Labels uint32
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("item count mismatch: %d images, %d labels", e.Images, e.Labels)
}

// PayloadLengthError is returned in strict mode when the payload length
// differs from the length declared by the header.
type PayloadLengthError struct {
	Path string
	Want uint64
	Got  uint64
}

func (e *PayloadLengthError) Error() string {
	return fmt.Sprintf("payload length of %s is %d bytes, header declares %d", e.Path, e.Got, e.Want)
}

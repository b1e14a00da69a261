// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package idx

import (
	"fmt"
	"math"
	"math/bits"
)

// Dataset is the decoded content of one IDX file.
//
// Dimensions is [items, rows, cols] for image files and [items] for label
// files. Payload holds the items back to back, each image in row-major order.
// The payload length is not validated against the dimensions unless the
// decoder runs with [WithStrictPayloadLength], so consumers should index it
// through [Dataset.Item].
type Dataset struct {
	Dimensions []uint32
	Payload    []byte
}

// Kind returns the kind of data, derived from the number of dimensions.
func (d *Dataset) Kind() Kind {
	switch len(d.Dimensions) {
	case 3:
		return KindImages
	case 1:
		return KindLabels
	}
	return KindUnknown
}

// Len returns the number of items declared by the header.
func (d *Dataset) Len() int {
	if len(d.Dimensions) == 0 {
		return 0
	}
	return int(d.Dimensions[0])
}

// ItemSize returns the number of bytes per item: rows*cols for images, 1 for
// labels. A size that does not fit into an int is reported as [math.MaxInt].
func (d *Dataset) ItemSize() int {
	if len(d.Dimensions) == 0 {
		return 0
	}
	size, ok := product(d.Dimensions[1:])
	if !ok || size > math.MaxInt {
		return math.MaxInt
	}
	return int(size)
}

// Item returns the payload bytes of item i. The returned slice shares
// memory with the payload.
func (d *Dataset) Item(i int) ([]byte, error) {
	if i < 0 || i >= d.Len() {
		return nil, fmt.Errorf("item %d of %d: %w", i, d.Len(), ErrIndexOutOfRange)
	}
	size, ok := product(d.Dimensions[1:])
	if !ok {
		return nil, fmt.Errorf("item %d: item size overflows: %w", i, ErrIndexOutOfRange)
	}
	hi, end := bits.Mul64(uint64(i)+1, size)
	if hi != 0 || end > uint64(len(d.Payload)) {
		return nil, fmt.Errorf("item %d of %d bytes exceeds payload of %d bytes: %w", i, size, len(d.Payload), ErrIndexOutOfRange)
	}
	return d.Payload[end-size : end], nil
}

// expectedPayloadLength returns the payload length the dimensions declare,
// saturated at math.MaxUint64.
func (d *Dataset) expectedPayloadLength() uint64 {
	n, ok := product(d.Dimensions)
	if !ok {
		return math.MaxUint64
	}
	return n
}

// product multiplies dims and returns false if the result overflows uint64.
func product(dims []uint32) (uint64, bool) {
	n := uint64(1)
	for _, dim := range dims {
		hi, lo := bits.Mul64(n, uint64(dim))
		if hi != 0 {
			return 0, false
		}
		n = lo
	}
	return n, true
}

// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package idx

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// completeItems returns the number of items the payload holds in full. An
// item size saturated at math.MaxInt yields 0 for any real payload.
func (d *Dataset) completeItems() int {
	size := d.ItemSize()
	if size == 0 {
		return 0
	}
	return min(d.Len(), len(d.Payload)/size)
}

// Matrix returns the dataset as a dense matrix with one row per complete
// item and one column per item byte. Every byte is multiplied by scale, so
// a scale of 1.0/255 maps pixel intensities to [0,1].
func (d *Dataset) Matrix(scale float64) (*mat.Dense, error) {
	rows, cols := d.completeItems(), d.ItemSize()
	if rows == 0 {
		return nil, ErrEmptyDataset
	}
	data := make([]float64, rows*cols)
	for i, b := range d.Payload[:rows*cols] {
		data[i] = float64(b) * scale
	}
	return mat.NewDense(rows, cols, data), nil
}

// OneHot encodes a label dataset as a dense matrix with one row per label
// and one column per class.
func (d *Dataset) OneHot(classes int) (*mat.Dense, error) {
	if d.Kind() != KindLabels {
		return nil, fmt.Errorf("one-hot encoding needs labels, got %s", d.Kind())
	}
	if classes < 1 {
		return nil, fmt.Errorf("invalid number of classes %d", classes)
	}
	rows := d.completeItems()
	if rows == 0 {
		return nil, ErrEmptyDataset
	}
	m := mat.NewDense(rows, classes, nil)
	for i, label := range d.Payload[:rows] {
		if int(label) >= classes {
			return nil, fmt.Errorf("label %d of item %d exceeds %d classes", label, i, classes)
		}
		m.Set(i, int(label), 1)
	}
	return m, nil
}

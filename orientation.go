// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package idx

import "math"

// FixOrientation rewrites the images in payload in place. EMNIST stores its
// images transposed and flipped compared to MNIST; this restores them.
//
// Every item is a row-major rows x cols grid. It is first remapped with
// T[c*rows+r] = item[r*cols+c], then the rows are reversed with
// F[r*cols+c] = T[(rows-1-r)*cols+c], and F replaces the item. For grids with
// rows != cols this is not a plain rotation.
//
// Items that are not completely contained in payload are left unchanged, as
// is the whole payload if rows*cols does not fit into an int.
func FixOrientation(payload []byte, items, rows, cols int) {
	if rows <= 0 || cols <= 0 || items <= 0 || rows > math.MaxInt/cols {
		return
	}
	size := rows * cols
	if complete := len(payload) / size; items > complete {
		items = complete
	}

	transposed := make([]byte, size)
	fixed := make([]byte, size)
	for i := 0; i < items; i++ {
		item := payload[i*size : (i+1)*size]
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				transposed[c*rows+r] = item[r*cols+c]
			}
		}

		// reverse rows
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				fixed[r*cols+c] = transposed[(rows-1-r)*cols+c]
			}
		}
		copy(item, fixed)
	}
}

// Package idx decodes IDX dataset files, the binary format used by MNIST and
// its derivatives, into an in-memory [Dataset].
//
// Files are opened with [Decode]. If the file name ends with a known compression
// suffix (gz, zst, xz, lz4, br, bz2, sz, zz) the stream is decompressed
// transparently before the header is parsed. Image files (magic 2051) decode to
// three dimensions, item count, rows and columns; label files (magic 2049) decode
// to a single dimension, the item count. Image payloads can optionally be passed
// through [FixOrientation], which restores the orientation of EMNIST images.
//
// [Scan] discovers IDX files in a directory and classifies them by their magic
// number. [PickLabel] selects the label file that matches an image file best and
// [LoadPair] decodes both.
//
// Configuration is done using the [Config], which is a configuration struct that can be used to
// set the logger, the telemetry hook, the maximum payload size and the scan suffix.
package idx

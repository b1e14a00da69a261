// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package idx

import (
	"bytes"
	"context"
	"errors"
	"io"
)

// maxPreallocation caps the payload buffer that is allocated up front based
// on the dimensions from the header.
const maxPreallocation = 64 << 20

// headerFields names the header fields that follow the magic number
var headerFields = map[Kind][]string{
	KindImages: {"item count", "row count", "column count"},
	KindLabels: {"item count"},
}

// Decode opens the IDX file at path and decodes it into a [Dataset]. Files
// with a compression suffix, e.g. ".gz", are decompressed on the fly.
//
// If fixOrientation is true and the file holds images, [FixOrientation] is
// applied to the payload before the dataset is returned. Label files are not
// affected by fixOrientation.
//
// The returned error is an [*IOError] if the file cannot be opened or ends
// within the header, and an [*InvalidMagicNumberError] if the file is not an
// unsigned byte IDX image or label file. A nil cfg selects the defaults.
func Decode(ctx context.Context, path string, fixOrientation bool, cfg *Config) (*Dataset, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	// prepare telemetry capturing
	td := &TelemetryData{Path: path}
	defer cfg.TelemetryHook()(ctx, td)
	defer captureDecodeDuration(td, now())

	// check if context is canceled
	if err := ctx.Err(); err != nil {
		return nil, handleError(cfg, td, "context error", err)
	}

	src, compression, err := openSource(path)
	td.Compression = compression
	if err != nil {
		return nil, handleError(cfg, td, "cannot open file", err)
	}
	defer src.Close()
	cfg.Logger().Debug("opened file", "path", path, "compression", compression)

	ds, err := decode(ctx, src, path, fixOrientation, cfg, td)
	if err != nil {
		return nil, handleError(cfg, td, "cannot decode file", err)
	}

	cfg.Logger().Info("decoded file", "path", path, "kind", ds.Kind(), "dimensions", ds.Dimensions)
	return ds, nil
}

// DecodeReader decodes an uncompressed IDX stream from r. The name is used in
// errors and telemetry only.
func DecodeReader(ctx context.Context, r io.Reader, name string, fixOrientation bool, cfg *Config) (*Dataset, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	// prepare telemetry capturing
	td := &TelemetryData{Path: name}
	defer cfg.TelemetryHook()(ctx, td)
	defer captureDecodeDuration(td, now())

	// check if context is canceled
	if err := ctx.Err(); err != nil {
		return nil, handleError(cfg, td, "context error", err)
	}

	ds, err := decode(ctx, r, name, fixOrientation, cfg, td)
	if err != nil {
		return nil, handleError(cfg, td, "cannot decode stream", err)
	}

	cfg.Logger().Info("decoded file", "path", name, "kind", ds.Kind(), "dimensions", ds.Dimensions)
	return ds, nil
}

// decode reads the header and the payload from r.
func decode(ctx context.Context, r io.Reader, name string, fixOrientation bool, cfg *Config, td *TelemetryData) (*Dataset, error) {

	// peek the header, to be able to explain an invalid magic number
	hr, err := newHeaderReader(r, maxHeaderLength)
	if err != nil {
		return nil, &IOError{Op: "read header", Path: name, Err: err}
	}

	magic, err := ReadMagic(hr)
	if err != nil {
		return nil, &IOError{Op: "read magic", Path: name, Err: err}
	}

	kind := KindOf(magic)
	if kind == KindUnknown {
		return nil, &InvalidMagicNumberError{
			Magic:       magic,
			Path:        name,
			Compression: detectCompression(hr.PeekHeader()),
		}
	}
	td.Kind = kind.String()

	// read dimensions
	fields := headerFields[kind]
	dims := make([]uint32, len(fields))
	for i := range dims {
		if dims[i], err = readUint32(hr); err != nil {
			return nil, &IOError{Op: "read " + fields[i], Path: name, Err: err}
		}
	}
	td.Dimensions = dims
	ds := &Dataset{Dimensions: dims}

	// check if context is canceled
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	want := ds.expectedPayloadLength()
	payload, n, err := readPayload(hr, want, cfg)
	td.PayloadSize = n
	if errors.Is(err, ErrMaxPayloadSizeExceeded) {
		return nil, err
	}
	if err != nil {
		return nil, &IOError{Op: "read payload", Path: name, Err: err}
	}

	if cfg.StrictPayloadLength() && uint64(len(payload)) != want {
		return nil, &PayloadLengthError{Path: name, Want: want, Got: uint64(len(payload))}
	}
	ds.Payload = payload

	if kind == KindImages && fixOrientation {
		FixOrientation(ds.Payload, int(dims[0]), int(dims[1]), int(dims[2]))
		td.OrientationFixed = true
	}

	return ds, nil
}

// readPayload reads the rest of r, limited by the configured maximum payload size.
func readPayload(r io.Reader, want uint64, cfg *Config) ([]byte, int64, error) {
	var hint int
	if want <= maxPreallocation && cfg.CheckPayloadSize(int64(want)) == nil {
		hint = int(want) + bytes.MinRead
	}

	limited := newLimitErrorReader(r, cfg.MaxPayloadSize())
	buf := bytes.NewBuffer(make([]byte, 0, hint))
	_, err := buf.ReadFrom(limited)
	return buf.Bytes(), limited.ReadBytes(), err
}

// handleError records err in the telemetry data and logs it.
func handleError(cfg *Config, td *TelemetryData, msg string, err error) error {
	td.LastDecodeError = err
	cfg.Logger().Error(msg, "path", td.Path, "error", err)
	return err
}

// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package idx

import (
	"context"
	"encoding/json"
	"slices"
	"time"
)

// TelemetryData holds all telemetry data of a decode.
type TelemetryData struct {
	// Path is the decoded file
	Path string `json:"path"`

	// Kind is the kind of data, "images" or "labels"
	Kind string `json:"kind"`

	// Compression is the file extension of the detected compression
	Compression string `json:"compression"`

	// Dimensions are the dimensions declared by the header
	Dimensions []uint32 `json:"dimensions"`

	// PayloadSize is the size of the decompressed payload
	PayloadSize int64 `json:"payload_size"`

	// OrientationFixed is true if the orientation fix has been applied
	OrientationFixed bool `json:"orientation_fixed"`

	// DecodeDuration is the time it took to decode the file
	DecodeDuration time.Duration `json:"decode_duration"`

	// LastDecodeError is the error that ended the decode
	LastDecodeError error `json:"last_decode_error"`
}

// String returns a string representation of [TelemetryData].
func (m TelemetryData) String() string {
	b, _ := json.Marshal(m)
	return string(b)
}

// MarshalJSON implements the [encoding/json.Marshaler] interface.
func (m TelemetryData) MarshalJSON() ([]byte, error) {
	var lastError string
	if m.LastDecodeError != nil {
		lastError = m.LastDecodeError.Error()
	}

	type Alias TelemetryData
	return json.Marshal(&struct {
		LastDecodeError string `json:"last_decode_error"`
		*Alias
	}{
		LastDecodeError: lastError,
		Alias:           (*Alias)(&m),
	})
}

// TelemetryHook is a function type that performs operations on [TelemetryData]
// after a decode has finished which can be used to submit the [TelemetryData]
// to a telemetry service, for example.
type TelemetryHook func(context.Context, *TelemetryData)

// Equals returns true if the given [TelemetryData] is equal to the receiver.
// The duration and the error are not compared.
func (td *TelemetryData) Equals(other *TelemetryData) bool {
	if td == nil && other == nil {
		return true
	}
	if td == nil || other == nil {
		return false
	}
	return td.Path == other.Path &&
		td.Kind == other.Kind &&
		td.Compression == other.Compression &&
		slices.Equal(td.Dimensions, other.Dimensions) &&
		td.PayloadSize == other.PayloadSize &&
		td.OrientationFixed == other.OrientationFixed
}

// now is a function point that returns time.Now to the caller.
var now = time.Now

// captureDecodeDuration captures the duration of the decode
func captureDecodeDuration(td *TelemetryData, start time.Time) {
	td.DecodeDuration = now().Sub(start)
}

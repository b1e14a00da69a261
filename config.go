// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package idx

import (
	"context"
	"io"
	"log/slog"
)

// ConfigOption is a function pointer to implement the option pattern
type ConfigOption func(*Config)

// Config provides a configuration struct and options to adjust the configuration.
//
// The configuration struct holds all configuration options for decoding and
// directory scanning. The configuration options can be adjusted using the
// option pattern style. A Config is not modified by the decoder and can be
// shared between concurrent calls.
type Config struct {
	// logger stream for decoding and scanning
	logger logger

	// maxPayloadSize is the maximum size of a payload after decompression.
	// Set value to -1 to disable the check.
	maxPayloadSize int64

	// scanSuffix is the file name suffix a file needs to be considered during a scan
	scanSuffix string

	// strictPayloadLength decides if the payload length is validated against the
	// dimensions declared in the header
	strictPayloadLength bool

	// telemetryHook is a function to consume telemetry data after a finished decode
	// Important: do not adjust this value after decoding started
	telemetryHook TelemetryHook
}

// CheckPayloadSize checks if size exceeds the configured maximum. If the maximum is exceeded,
// a [ErrMaxPayloadSizeExceeded] error is returned.
func (c *Config) CheckPayloadSize(size int64) error {

	// check if disabled
	if c.MaxPayloadSize() == -1 {
		return nil
	}

	// check value
	if size > c.MaxPayloadSize() {
		return ErrMaxPayloadSizeExceeded
	}
	return nil
}

// Logger returns the logger.
func (c *Config) Logger() logger {
	return c.logger
}

// MaxPayloadSize returns the maximum size of a decompressed payload.
func (c *Config) MaxPayloadSize() int64 {
	return c.maxPayloadSize
}

// ScanSuffix returns the suffix a file name needs to be a scan candidate.
func (c *Config) ScanSuffix() string {
	return c.scanSuffix
}

// StrictPayloadLength returns true if the decoder fails on payloads whose
// length does not match the dimensions from the header.
func (c *Config) StrictPayloadLength() bool {
	return c.strictPayloadLength
}

// TelemetryHook returns the telemetry hook.
func (c *Config) TelemetryHook() TelemetryHook {
	if c.telemetryHook == nil {
		return func(ctx context.Context, d *TelemetryData) {
			// noop
		}
	}
	return c.telemetryHook
}

const (
	defaultMaxPayloadSize      = 1 << (10 * 3) // 1 Gb
	defaultScanSuffix          = "ubyte"       // suffix of the MNIST file names
	defaultStrictPayloadLength = false         // trust the stream length
)

var (
	// slog to discard
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	// no operation telemetry hook
	defaultTelemetryHook = func(ctx context.Context, d *TelemetryData) {
		// noop
	}
)

// NewConfig is a generator option that takes opts as adjustments of the
// default configuration in an option pattern style.
func NewConfig(opts ...ConfigOption) *Config {

	// setup default values
	config := &Config{
		logger:              defaultLogger,
		maxPayloadSize:      defaultMaxPayloadSize,
		scanSuffix:          defaultScanSuffix,
		strictPayloadLength: defaultStrictPayloadLength,
		telemetryHook:       defaultTelemetryHook,
	}

	// Loop through each option
	for _, opt := range opts {
		opt(config)
	}

	return config
}

// WithLogger options pattern function to set a custom logger.
func WithLogger(logger logger) ConfigOption {
	return func(c *Config) {
		c.logger = logger
	}
}

// WithMaxPayloadSize options pattern function to set the maximum size of a
// decompressed payload. (-1 to disable check)
func WithMaxPayloadSize(maxPayloadSize int64) ConfigOption {
	return func(c *Config) {
		c.maxPayloadSize = maxPayloadSize
	}
}

// WithScanSuffix options pattern function to set the file name suffix that
// [Scan] uses to select candidates. An empty suffix keeps the default.
func WithScanSuffix(suffix string) ConfigOption {
	return func(c *Config) {
		if len(suffix) > 0 {
			c.scanSuffix = suffix
		}
	}
}

// WithStrictPayloadLength options pattern function to validate the payload
// length against the dimensions declared in the header. A truncated or
// oversized payload fails with a [PayloadLengthError].
func WithStrictPayloadLength(strict bool) ConfigOption {
	return func(c *Config) {
		c.strictPayloadLength = strict
	}
}

// WithTelemetryHook options pattern function to set a [TelemetryHook], which is called after decoding.
func WithTelemetryHook(hook TelemetryHook) ConfigOption {
	return func(c *Config) {
		c.telemetryHook = hook
	}
}

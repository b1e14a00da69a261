// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package idx

import (
	"bytes"
	"io"
	"testing"

	"github.com/andybalholm/brotli"
)

func TestIsBrotli(t *testing.T) {
	tests := []struct {
		name   string
		header []byte
		want   bool
	}{
		{
			name:   "Brotli has no magic bytes",
			header: []byte{0xce, 0xb2, 0xcf, 0x81},
			want:   false,
		},
		{
			name:   "Empty header",
			header: []byte{},
			want:   false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := isBrotli(test.header); got != test.want {
				t.Errorf("isBrotli() = %v, want %v", got, test.want)
			}
		})
	}
}

func TestDecompressBrotliStream(t *testing.T) {
	testData := []byte{0x00, 0x00, 0x08, 0x01, 0x00, 0x00, 0x00, 0x02, 0x07, 0x03}

	var buf bytes.Buffer
	w := brotli.NewWriter(&buf)
	if _, err := w.Write(testData); err != nil {
		t.Fatalf("error writing data to brotli writer: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("error closing brotli writer: %v", err)
	}

	r, err := decompressBrotliStream(&buf)
	if err != nil {
		t.Fatalf("decompressBrotliStream() unexpected error: %v", err)
	}
	defer r.Close()

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() unexpected error: %v", err)
	}
	if !bytes.Equal(got, testData) {
		t.Errorf("decompressBrotliStream() = %v, want %v", got, testData)
	}
}

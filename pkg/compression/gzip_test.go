// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package compression

import (
	"bytes"
	"compress/gzip"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const evseDataDocument = `<EVSEData:eRoamingEvseData xmlns:EVSEData="http://www.hubject.com/b2b/services/evsedata/v2.3">` +
	`<EVSEData:EvseData><EVSEData:OperatorEvseData><EVSEData:OperatorID>DE*GEF</EVSEData:OperatorID>` +
	`</EVSEData:OperatorEvseData></EVSEData:EvseData></EVSEData:eRoamingEvseData>`

func TestCompressor_CompressDecompress(t *testing.T) {
	compressor := NewCompressor()
	document := []byte(evseDataDocument + evseDataDocument + evseDataDocument)

	compressed, err := compressor.Compress(document)
	require.NoError(t, err)
	assert.True(t, IsGzip(compressed))
	assert.Less(t, len(compressed), len(document))

	decompressed, err := compressor.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, document, decompressed)
}

func TestCompressor_EmptyDocument(t *testing.T) {
	compressor := NewCompressor()

	compressed, err := compressor.Compress([]byte{})
	require.NoError(t, err)
	assert.NotEmpty(t, compressed)

	decompressed, err := compressor.Decompress(compressed)
	require.NoError(t, err)
	assert.Empty(t, decompressed)
}

func TestCompressor_Level(t *testing.T) {
	document := bytes.Repeat([]byte(evseDataDocument), 200)

	fast, err := NewCompressorWithLevel(gzip.BestSpeed).Compress(document)
	require.NoError(t, err)
	best, err := NewCompressorWithLevel(gzip.BestCompression).Compress(document)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(best), len(fast))

	_, err = NewCompressorWithLevel(42).Compress(document)
	assert.Error(t, err)
}

func TestCompressor_Limit(t *testing.T) {
	document := bytes.Repeat([]byte("x"), 1024)
	compressed, err := NewCompressor().Compress(document)
	require.NoError(t, err)

	_, err = NewCompressorWithLimit(1023).Decompress(compressed)
	assert.True(t, errors.Is(err, ErrTooLarge))

	out, err := NewCompressorWithLimit(1024).Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, document, out)
}

func TestCompressor_Inflate(t *testing.T) {
	compressor := NewCompressor()
	plain := []byte(evseDataDocument)

	out, err := compressor.Inflate(plain)
	require.NoError(t, err)
	assert.Equal(t, plain, out)

	compressed, err := compressor.Compress(plain)
	require.NoError(t, err)
	out, err = compressor.Inflate(compressed)
	require.NoError(t, err)
	assert.Equal(t, plain, out)
}

func TestIsGzip(t *testing.T) {
	assert.True(t, IsGzip([]byte{0x1f, 0x8b, 0x08}))
	assert.False(t, IsGzip([]byte{0x1f}))
	assert.False(t, IsGzip([]byte(`{"OperatorEvseData":[]}`)))
	assert.False(t, IsGzip(nil))
}

func TestShouldCompress(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		expected    bool
	}{
		{"application xml", "application/xml", true},
		{"application json", "application/json", true},
		{"soap", "application/soap+xml", true},
		{"text xml", "text/xml", true},
		{"with charset", "application/json; charset=utf-8", true},
		{"upper case", "Application/XML", true},
		{"gzip already compressed", "application/gzip", false},
		{"zip already compressed", "application/zip", false},
		{"png", "image/png", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShouldCompress(tt.contentType))
		})
	}
}

func TestCompressor_InvalidData(t *testing.T) {
	compressor := NewCompressor()

	_, err := compressor.Decompress([]byte("<EVSEData/>"))
	assert.Error(t, err)

	compressed, err := compressor.Compress([]byte(evseDataDocument))
	require.NoError(t, err)
	truncated := compressed[:len(compressed)/2]
	_, err = compressor.Decompress(truncated)
	assert.Error(t, err)
}

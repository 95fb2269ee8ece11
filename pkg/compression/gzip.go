// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package compression

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"mime"
	"strings"
)

const (
	// ContentTypeGzip is the media type of gzip framed documents.
	ContentTypeGzip = "application/gzip"

	// DefaultMaxSize bounds the inflated size of a single document.
	DefaultMaxSize int64 = 256 << 20
)

// ErrTooLarge is returned when an inflated document exceeds the limit.
var ErrTooLarge = errors.New("decompressed document exceeds size limit")

var gzipMagic = []byte{0x1f, 0x8b}

// Compressor compresses and inflates wire documents.
type Compressor struct {
	level   int
	maxSize int64
}

// NewCompressor creates a compressor with the default level and size limit.
func NewCompressor() *Compressor {
	return &Compressor{level: gzip.DefaultCompression, maxSize: DefaultMaxSize}
}

// NewCompressorWithLevel creates a compressor with the given gzip level.
func NewCompressorWithLevel(level int) *Compressor {
	return &Compressor{level: level, maxSize: DefaultMaxSize}
}

// NewCompressorWithLimit creates a compressor refusing to inflate more
// than maxSize bytes.
func NewCompressorWithLimit(maxSize int64) *Compressor {
	return &Compressor{level: gzip.DefaultCompression, maxSize: maxSize}
}

// IsGzip reports whether data starts with the gzip magic number.
func IsGzip(data []byte) bool {
	return bytes.HasPrefix(data, gzipMagic)
}

// Compress gzips a document.
func (c *Compressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, err := gzip.NewWriterLevel(&buf, c.level)
	if err != nil {
		return nil, fmt.Errorf("creating gzip writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, fmt.Errorf("compressing document: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("closing gzip writer: %w", err)
	}
	return buf.Bytes(), nil
}

// Decompress inflates gzip data.
func (c *Compressor) Decompress(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("reading gzip header: %w", err)
	}
	defer r.Close()

	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(r, c.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("inflating document: %w", err)
	}
	if n > c.maxSize {
		return nil, fmt.Errorf("%w (%d bytes)", ErrTooLarge, c.maxSize)
	}
	return buf.Bytes(), nil
}

// Inflate decompresses data when it is gzip framed and returns it
// unchanged otherwise.
func (c *Compressor) Inflate(data []byte) ([]byte, error) {
	if !IsGzip(data) {
		return data, nil
	}
	return c.Decompress(data)
}

// ShouldCompress reports whether a document of contentType benefits from
// compression. Parameters such as charset are ignored.
func ShouldCompress(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(contentType))
	}
	switch {
	case strings.HasPrefix(mediaType, "text/"):
		return true
	case strings.HasSuffix(mediaType, "+xml"), strings.HasSuffix(mediaType, "+json"):
		return true
	}
	switch mediaType {
	case "application/xml", "application/json", "application/soap+xml":
		return true
	}
	return false
}

// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package compression provides GZIP framing for OICP wire documents.

OICP endpoints commonly serve full EVSE data loads as gzip encoded XML or
JSON. The package compresses and inflates such documents and detects
whether a byte stream is gzip framed at all.

# Compression

	compressor := compression.NewCompressor()
	compressed, err := compressor.Compress(document)

# Inflation

Inflate accepts both framed and plain input, so callers can feed it
whatever arrived on the wire:

	plain, err := compressor.Inflate(data)

Decompression is bounded by the compressor's size limit, see
NewCompressorWithLimit.

# Content Type Detection

	if compression.ShouldCompress("application/json") {
	    // compress before upload
	}

# References

  - GZIP RFC 1952: https://datatracker.ietf.org/doc/html/rfc1952
*/
package compression

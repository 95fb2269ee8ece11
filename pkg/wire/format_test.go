// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package wire

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{12.34567, "12.346"},
		{0.5005, "0.501"},
		{8.0125, "8.013"},
		{12.3, "12.3"},
		{12, "12"},
		{0, "0"},
		{-0.0001, "0"},
		{-1.5, "-1.5"},
		{1234567.25, "1234567.25"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDecimal(tt.in), "FormatDecimal(%v)", tt.in)
	}
}

func TestRound3(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{12.34567, 12.346},
		{-12.34567, -12.346},
		{6.9999, 7},
		{0.5005, 0.501},
		{8.0125, 8.013},
		{1.0005, 1.001},
		{-0.5005, -0.501},
		{2.5, 2.5},
		{0.0004, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Round3(tt.in), "Round3(%v)", tt.in)
	}
}

func TestParseDecimal(t *testing.T) {
	v, err := ParseDecimal(" 42.125 ")
	require.NoError(t, err)
	assert.Equal(t, 42.125, v)

	_, err = ParseDecimal("42,125")
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = ParseDecimal("NaN")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestTimestamps(t *testing.T) {
	ts := time.Date(2025, 3, 1, 10, 15, 30, 123456789, time.FixedZone("CET", 3600))
	assert.Equal(t, "2025-03-01T09:15:30.123Z", FormatTimestamp(ts))

	parsed, err := ParseTimestamp("2025-03-01T09:15:30.123Z")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(time.Date(2025, 3, 1, 9, 15, 30, 123000000, time.UTC)))

	parsed, err = ParseTimestamp("2025-03-01T10:15:30+01:00")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, parsed.Location())
	assert.Equal(t, 9, parsed.Hour())

	_, err = ParseTimestamp("yesterday")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestBooleans(t *testing.T) {
	assert.Equal(t, "true", FormatBool(true))
	assert.Equal(t, "false", FormatBool(false))

	for _, s := range []string{"true", "TRUE", "1"} {
		b, err := ParseBool(s)
		require.NoError(t, err)
		assert.True(t, b)
	}
	_, err := ParseBool("yes")
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abcdef", 3))
	assert.Equal(t, "ab", Truncate("ab", 3))
	assert.Equal(t, "äöü", Truncate("äöüß", 3))
}

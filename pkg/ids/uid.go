// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package ids

import (
	"regexp"
	"strings"
)

var uidPattern = regexp.MustCompile(`^([0-9A-Fa-f]{8}|[0-9A-Fa-f]{14}|[0-9A-Fa-f]{20})$`)

// UID is the serial number of an RFID card. The wire casing is kept as
// received; equality and ordering ignore case.
type UID struct {
	value string
}

// ParseUID parses a 4, 7 or 10 byte UID written as hex digits.
func ParseUID(s string) (UID, error) {
	v := strings.TrimSpace(s)
	if !uidPattern.MatchString(v) {
		return UID{}, invalid("UID", s)
	}
	return UID{value: v}, nil
}

// TryParseUID is ParseUID reporting success as a bool.
func TryParseUID(s string) (UID, bool) {
	id, err := ParseUID(s)
	return id, err == nil
}

// MustParseUID is ParseUID panicking on error.
func MustParseUID(s string) UID {
	id, err := ParseUID(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id UID) String() string { return id.value }

// IsZero reports whether id holds no value.
func (id UID) IsZero() bool { return id.value == "" }

// Equal compares case-insensitively.
func (id UID) Equal(other UID) bool { return strings.EqualFold(id.value, other.value) }

// Compare orders case-insensitively.
func (id UID) Compare(other UID) int {
	return strings.Compare(strings.ToUpper(id.value), strings.ToUpper(other.value))
}

func (id UID) MarshalText() ([]byte, error) { return []byte(id.value), nil }

func (id *UID) UnmarshalText(b []byte) error {
	v, err := ParseUID(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

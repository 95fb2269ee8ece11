// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package ids

import (
	"regexp"
	"strings"
)

var (
	evseISOPattern = regexp.MustCompile(`^([A-Z]{2})(\*?)([A-Z0-9]{3})\*?E?[A-Z0-9][A-Z0-9*]{0,30}$`)
	evseDINPattern = regexp.MustCompile(`^\+?([0-9]{1,3})\*([0-9]{3})\*[0-9*]{1,32}$`)
)

// EVSEID identifies a single EVSE.
type EVSEID struct {
	value string
}

// ParseEVSEID parses an ISO or DIN EVSE identifier.
func ParseEVSEID(s string) (EVSEID, error) {
	v, err := parseUpper("EVSE id", s, evseISOPattern, evseDINPattern)
	if err != nil {
		return EVSEID{}, err
	}
	return EVSEID{value: v}, nil
}

// TryParseEVSEID is ParseEVSEID reporting success as a bool.
func TryParseEVSEID(s string) (EVSEID, bool) {
	id, err := ParseEVSEID(s)
	return id, err == nil
}

// MustParseEVSEID is ParseEVSEID panicking on error. Intended for constants
// and tests.
func MustParseEVSEID(s string) EVSEID {
	id, err := ParseEVSEID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// OperatorID returns the operator part of the EVSE identifier.
func (id EVSEID) OperatorID() (OperatorID, bool) {
	if m := evseISOPattern.FindStringSubmatch(id.value); m != nil {
		return TryParseOperatorID(m[1] + m[2] + m[3])
	}
	if m := evseDINPattern.FindStringSubmatch(id.value); m != nil {
		prefix := ""
		if strings.HasPrefix(id.value, "+") {
			prefix = "+"
		}
		return TryParseOperatorID(prefix + m[1] + "*" + m[2])
	}
	return OperatorID{}, false
}

func (id EVSEID) String() string { return id.value }

// IsZero reports whether id holds no value.
func (id EVSEID) IsZero() bool { return id.value == "" }

// Equal reports whether both identifiers are the same.
func (id EVSEID) Equal(other EVSEID) bool { return id.value == other.value }

// Compare orders identifiers lexicographically.
func (id EVSEID) Compare(other EVSEID) int { return strings.Compare(id.value, other.value) }

func (id EVSEID) MarshalText() ([]byte, error) { return []byte(id.value), nil }

func (id *EVSEID) UnmarshalText(b []byte) error {
	v, err := ParseEVSEID(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

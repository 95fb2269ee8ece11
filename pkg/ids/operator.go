// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package ids

import (
	"regexp"
	"strings"
)

var (
	operatorISOPattern = regexp.MustCompile(`^[A-Z]{2}\*?[A-Z0-9]{3}$`)
	operatorDINPattern = regexp.MustCompile(`^\+?[0-9]{1,3}\*[0-9]{3}$`)
)

// OperatorID identifies a charge point operator.
type OperatorID struct {
	value string
}

// ParseOperatorID parses an ISO or DIN operator identifier.
func ParseOperatorID(s string) (OperatorID, error) {
	v, err := parseUpper("operator id", s, operatorISOPattern, operatorDINPattern)
	if err != nil {
		return OperatorID{}, err
	}
	return OperatorID{value: v}, nil
}

// TryParseOperatorID is ParseOperatorID reporting success as a bool.
func TryParseOperatorID(s string) (OperatorID, bool) {
	id, err := ParseOperatorID(s)
	return id, err == nil
}

// MustParseOperatorID is ParseOperatorID panicking on error.
func MustParseOperatorID(s string) OperatorID {
	id, err := ParseOperatorID(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (id OperatorID) String() string { return id.value }

// IsZero reports whether id holds no value.
func (id OperatorID) IsZero() bool { return id.value == "" }

// Equal reports whether both identifiers are the same.
func (id OperatorID) Equal(other OperatorID) bool { return id.value == other.value }

// Compare orders identifiers lexicographically.
func (id OperatorID) Compare(other OperatorID) int { return strings.Compare(id.value, other.value) }

func (id OperatorID) MarshalText() ([]byte, error) { return []byte(id.value), nil }

func (id *OperatorID) UnmarshalText(b []byte) error {
	v, err := ParseOperatorID(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

// HubOperatorID identifies the operator a hub acts on behalf of. It shares
// the operator grammar.
type HubOperatorID struct {
	value string
}

// ParseHubOperatorID parses a hub operator identifier.
func ParseHubOperatorID(s string) (HubOperatorID, error) {
	v, err := parseUpper("hub operator id", s, operatorISOPattern, operatorDINPattern)
	if err != nil {
		return HubOperatorID{}, err
	}
	return HubOperatorID{value: v}, nil
}

// TryParseHubOperatorID is ParseHubOperatorID reporting success as a bool.
func TryParseHubOperatorID(s string) (HubOperatorID, bool) {
	id, err := ParseHubOperatorID(s)
	return id, err == nil
}

func (id HubOperatorID) String() string { return id.value }

// IsZero reports whether id holds no value.
func (id HubOperatorID) IsZero() bool { return id.value == "" }

// Equal reports whether both identifiers are the same.
func (id HubOperatorID) Equal(other HubOperatorID) bool { return id.value == other.value }

// Compare orders identifiers lexicographically.
func (id HubOperatorID) Compare(other HubOperatorID) int {
	return strings.Compare(id.value, other.value)
}

func (id HubOperatorID) MarshalText() ([]byte, error) { return []byte(id.value), nil }

func (id *HubOperatorID) UnmarshalText(b []byte) error {
	v, err := ParseHubOperatorID(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

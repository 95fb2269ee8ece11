// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package ids

import (
	"regexp"
	"strings"
)

var (
	evcoISOPattern = regexp.MustCompile(`^([A-Z]{2})(-?)([A-Z0-9]{3})-?C[A-Z0-9]{8}-?[A-Z0-9]$`)
	evcoDINPattern = regexp.MustCompile(`^([A-Z]{2})([*-]?)([A-Z0-9]{3})[*-]?[A-Z0-9]{6}[*-]?[0-9X]$`)
)

// EVCOID identifies an e-mobility contract.
type EVCOID struct {
	value string
}

// ParseEVCOID parses an ISO or DIN contract identifier.
func ParseEVCOID(s string) (EVCOID, error) {
	v, err := parseUpper("EVCO id", s, evcoISOPattern, evcoDINPattern)
	if err != nil {
		return EVCOID{}, err
	}
	return EVCOID{value: v}, nil
}

// TryParseEVCOID is ParseEVCOID reporting success as a bool.
func TryParseEVCOID(s string) (EVCOID, bool) {
	id, err := ParseEVCOID(s)
	return id, err == nil
}

// MustParseEVCOID is ParseEVCOID panicking on error.
func MustParseEVCOID(s string) EVCOID {
	id, err := ParseEVCOID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// ProviderID returns the provider that issued the contract.
func (id EVCOID) ProviderID() (ProviderID, bool) {
	for _, p := range []*regexp.Regexp{evcoISOPattern, evcoDINPattern} {
		if m := p.FindStringSubmatch(id.value); m != nil {
			return TryParseProviderID(m[1] + m[2] + m[3])
		}
	}
	return ProviderID{}, false
}

func (id EVCOID) String() string { return id.value }

// IsZero reports whether id holds no value.
func (id EVCOID) IsZero() bool { return id.value == "" }

// Equal reports whether both identifiers are the same.
func (id EVCOID) Equal(other EVCOID) bool { return id.value == other.value }

// Compare orders identifiers lexicographically.
func (id EVCOID) Compare(other EVCOID) int { return strings.Compare(id.value, other.value) }

func (id EVCOID) MarshalText() ([]byte, error) { return []byte(id.value), nil }

func (id *EVCOID) UnmarshalText(b []byte) error {
	v, err := ParseEVCOID(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package ids

import (
	"regexp"
	"strings"
)

var providerPattern = regexp.MustCompile(`^[A-Z]{2}[-*]?[A-Z0-9]{3}$`)

// ProviderID identifies an e-mobility provider.
type ProviderID struct {
	value string
}

// ParseProviderID parses a provider identifier.
func ParseProviderID(s string) (ProviderID, error) {
	v, err := parseUpper("provider id", s, providerPattern)
	if err != nil {
		return ProviderID{}, err
	}
	return ProviderID{value: v}, nil
}

// TryParseProviderID is ParseProviderID reporting success as a bool.
func TryParseProviderID(s string) (ProviderID, bool) {
	id, err := ParseProviderID(s)
	return id, err == nil
}

func (id ProviderID) String() string { return id.value }

// IsZero reports whether id holds no value.
func (id ProviderID) IsZero() bool { return id.value == "" }

// Equal reports whether both identifiers are the same.
func (id ProviderID) Equal(other ProviderID) bool { return id.value == other.value }

// Compare orders identifiers lexicographically.
func (id ProviderID) Compare(other ProviderID) int { return strings.Compare(id.value, other.value) }

func (id ProviderID) MarshalText() ([]byte, error) { return []byte(id.value), nil }

func (id *ProviderID) UnmarshalText(b []byte) error {
	v, err := ParseProviderID(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

// HubProviderID identifies the provider a hub acts on behalf of.
type HubProviderID struct {
	value string
}

// ParseHubProviderID parses a hub provider identifier.
func ParseHubProviderID(s string) (HubProviderID, error) {
	v, err := parseUpper("hub provider id", s, providerPattern)
	if err != nil {
		return HubProviderID{}, err
	}
	return HubProviderID{value: v}, nil
}

// TryParseHubProviderID is ParseHubProviderID reporting success as a bool.
func TryParseHubProviderID(s string) (HubProviderID, bool) {
	id, err := ParseHubProviderID(s)
	return id, err == nil
}

func (id HubProviderID) String() string { return id.value }

// IsZero reports whether id holds no value.
func (id HubProviderID) IsZero() bool { return id.value == "" }

// Equal reports whether both identifiers are the same.
func (id HubProviderID) Equal(other HubProviderID) bool { return id.value == other.value }

// Compare orders identifiers lexicographically.
func (id HubProviderID) Compare(other HubProviderID) int {
	return strings.Compare(id.value, other.value)
}

func (id HubProviderID) MarshalText() ([]byte, error) { return []byte(id.value), nil }

func (id *HubProviderID) UnmarshalText(b []byte) error {
	v, err := ParseHubProviderID(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

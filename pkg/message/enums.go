// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package message

import (
	"fmt"
	"strings"

	"github.com/sirosfoundation/go-oicp/pkg/wire"
)

// ErrUnknownValue reports enumeration text outside the mapping table.
var ErrUnknownValue = fmt.Errorf("%w: unknown enumeration text", wire.ErrInvalidValue)

// enumText maps enumeration values to their wire text and back.
type enumText[T comparable] struct {
	kind   string
	values []T
	names  []string
}

func (t enumText[T]) name(v T) string {
	for i, candidate := range t.values {
		if candidate == v {
			return t.names[i]
		}
	}
	return ""
}

func (t enumText[T]) parse(s string) (T, error) {
	s = strings.TrimSpace(s)
	for i, n := range t.names {
		if n == s {
			return t.values[i], nil
		}
	}
	for i, n := range t.names {
		if strings.EqualFold(n, s) {
			return t.values[i], nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %s %q", ErrUnknownValue, t.kind, s)
}

// PowerType is the current type of a charging facility.
type PowerType int

const (
	// PowerTypeUnspecified stands for absent or unrecognized power types.
	PowerTypeUnspecified PowerType = iota
	PowerTypeAC1Phase
	PowerTypeAC3Phase
	PowerTypeDC
)

var powerTypes = enumText[PowerType]{
	kind:   "power type",
	values: []PowerType{PowerTypeAC1Phase, PowerTypeAC3Phase, PowerTypeDC},
	names:  []string{"AC_1_PHASE", "AC_3_PHASE", "DC"},
}

// ParsePowerType maps wire text to a PowerType.
func ParsePowerType(s string) (PowerType, error) { return powerTypes.parse(s) }

// AsPowerType maps wire text to a PowerType; unknown text yields
// PowerTypeUnspecified instead of an error.
func AsPowerType(s string) PowerType {
	p, err := ParsePowerType(s)
	if err != nil {
		return PowerTypeUnspecified
	}
	return p
}

func (p PowerType) String() string {
	if n := powerTypes.name(p); n != "" {
		return n
	}
	return "Unspecified"
}

// DeltaType marks a data record as part of an incremental update.
type DeltaType int

const (
	// DeltaTypeNone marks a record of a full load.
	DeltaTypeNone DeltaType = iota
	DeltaTypeUpdate
	DeltaTypeInsert
	DeltaTypeDelete
)

var deltaTypes = enumText[DeltaType]{
	kind:   "delta type",
	values: []DeltaType{DeltaTypeUpdate, DeltaTypeInsert, DeltaTypeDelete},
	names:  []string{"update", "insert", "delete"},
}

// ParseDeltaType maps wire text to a DeltaType.
func ParseDeltaType(s string) (DeltaType, error) { return deltaTypes.parse(s) }

func (d DeltaType) String() string { return deltaTypes.name(d) }

// EVSEStatusType is the dynamic state of an EVSE.
type EVSEStatusType int

const (
	EVSEStatusUnspecified EVSEStatusType = iota
	EVSEStatusAvailable
	EVSEStatusReserved
	EVSEStatusOccupied
	EVSEStatusOutOfService
	EVSEStatusEvseNotFound
	EVSEStatusUnknown
)

var evseStatusTypes = enumText[EVSEStatusType]{
	kind: "EVSE status",
	values: []EVSEStatusType{
		EVSEStatusAvailable, EVSEStatusReserved, EVSEStatusOccupied,
		EVSEStatusOutOfService, EVSEStatusEvseNotFound, EVSEStatusUnknown,
	},
	names: []string{"Available", "Reserved", "Occupied", "OutOfService", "EvseNotFound", "Unknown"},
}

// ParseEVSEStatusType maps wire text to an EVSEStatusType.
func ParseEVSEStatusType(s string) (EVSEStatusType, error) { return evseStatusTypes.parse(s) }

func (s EVSEStatusType) String() string { return evseStatusTypes.name(s) }

// IsValid reports whether s is a wire status.
func (s EVSEStatusType) IsValid() bool { return evseStatusTypes.name(s) != "" }

// AccessibilityType describes who may use an EVSE.
type AccessibilityType int

const (
	AccessibilityUnspecified AccessibilityType = iota
	AccessibilityFreePubliclyAccessible
	AccessibilityRestrictedAccess
	AccessibilityPayingPubliclyAccessible
	AccessibilityTestStation
)

var accessibilityTypes = enumText[AccessibilityType]{
	kind: "accessibility",
	values: []AccessibilityType{
		AccessibilityFreePubliclyAccessible, AccessibilityRestrictedAccess,
		AccessibilityPayingPubliclyAccessible, AccessibilityTestStation,
	},
	names: []string{"Free publicly accessible", "Restricted access", "Paying publicly accessible", "Test Station"},
}

// ParseAccessibilityType maps wire text to an AccessibilityType.
func ParseAccessibilityType(s string) (AccessibilityType, error) {
	return accessibilityTypes.parse(s)
}

func (a AccessibilityType) String() string { return accessibilityTypes.name(a) }

// RFIDType is the card technology of an RFID identification.
type RFIDType int

const (
	RFIDTypeUnspecified RFIDType = iota
	RFIDTypeMifareClassic
	RFIDTypeMifareDESFire
	RFIDTypeCalypso
	RFIDTypeNFC
	RFIDTypeMifareFamily
)

var rfidTypes = enumText[RFIDType]{
	kind:   "RFID type",
	values: []RFIDType{RFIDTypeMifareClassic, RFIDTypeMifareDESFire, RFIDTypeCalypso, RFIDTypeNFC, RFIDTypeMifareFamily},
	names:  []string{"MifareCls", "MifareDes", "Calypso", "NFC", "MifareFamily"},
}

// ParseRFIDType maps wire text to an RFIDType.
func ParseRFIDType(s string) (RFIDType, error) { return rfidTypes.parse(s) }

func (r RFIDType) String() string { return rfidTypes.name(r) }

// HashFunction names the algorithm a hashed PIN was produced with.
type HashFunction int

const (
	HashFunctionNone HashFunction = iota
	HashFunctionMD5
	HashFunctionSHA1
)

var hashFunctions = enumText[HashFunction]{
	kind:   "hash function",
	values: []HashFunction{HashFunctionNone, HashFunctionMD5, HashFunctionSHA1},
	names:  []string{"None", "MD5", "SHA-1"},
}

// ParseHashFunction maps wire text to a HashFunction. Unknown text is an
// error.
func ParseHashFunction(s string) (HashFunction, error) { return hashFunctions.parse(s) }

func (h HashFunction) String() string { return hashFunctions.name(h) }

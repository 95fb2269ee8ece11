// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package ids

import "strings"

// CPOPartnerSessionID is the operator side correlation id of a session.
type CPOPartnerSessionID struct {
	value string
}

// ParseCPOPartnerSessionID accepts 1 to 250 characters.
func ParseCPOPartnerSessionID(s string) (CPOPartnerSessionID, error) {
	v, err := parseText("CPO partner session id", s, 250)
	if err != nil {
		return CPOPartnerSessionID{}, err
	}
	return CPOPartnerSessionID{value: v}, nil
}

// TryParseCPOPartnerSessionID reports success as a bool.
func TryParseCPOPartnerSessionID(s string) (CPOPartnerSessionID, bool) {
	id, err := ParseCPOPartnerSessionID(s)
	return id, err == nil
}

func (id CPOPartnerSessionID) String() string { return id.value }
func (id CPOPartnerSessionID) IsZero() bool { return id.value == "" }

func (id CPOPartnerSessionID) Equal(other CPOPartnerSessionID) bool {
	return id.value == other.value
}

func (id CPOPartnerSessionID) Compare(other CPOPartnerSessionID) int {
	return strings.Compare(id.value, other.value)
}

func (id CPOPartnerSessionID) MarshalText() ([]byte, error) { return []byte(id.value), nil }

func (id *CPOPartnerSessionID) UnmarshalText(b []byte) error {
	v, err := ParseCPOPartnerSessionID(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

// EMPPartnerSessionID is the provider side correlation id of a session.
type EMPPartnerSessionID struct {
	value string
}

// ParseEMPPartnerSessionID accepts 1 to 250 characters.
func ParseEMPPartnerSessionID(s string) (EMPPartnerSessionID, error) {
	v, err := parseText("EMP partner session id", s, 250)
	if err != nil {
		return EMPPartnerSessionID{}, err
	}
	return EMPPartnerSessionID{value: v}, nil
}

// TryParseEMPPartnerSessionID reports success as a bool.
func TryParseEMPPartnerSessionID(s string) (EMPPartnerSessionID, bool) {
	id, err := ParseEMPPartnerSessionID(s)
	return id, err == nil
}

func (id EMPPartnerSessionID) String() string { return id.value }
func (id EMPPartnerSessionID) IsZero() bool { return id.value == "" }

func (id EMPPartnerSessionID) Equal(other EMPPartnerSessionID) bool {
	return id.value == other.value
}

func (id EMPPartnerSessionID) Compare(other EMPPartnerSessionID) int {
	return strings.Compare(id.value, other.value)
}

func (id EMPPartnerSessionID) MarshalText() ([]byte, error) { return []byte(id.value), nil }

func (id *EMPPartnerSessionID) UnmarshalText(b []byte) error {
	v, err := ParseEMPPartnerSessionID(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

// PartnerProductID names a tariff product agreed between partners.
type PartnerProductID struct {
	value string
}

// ParsePartnerProductID accepts 1 to 100 characters.
func ParsePartnerProductID(s string) (PartnerProductID, error) {
	v, err := parseText("partner product id", s, 100)
	if err != nil {
		return PartnerProductID{}, err
	}
	return PartnerProductID{value: v}, nil
}

// TryParsePartnerProductID reports success as a bool.
func TryParsePartnerProductID(s string) (PartnerProductID, bool) {
	id, err := ParsePartnerProductID(s)
	return id, err == nil
}

func (id PartnerProductID) String() string { return id.value }
func (id PartnerProductID) IsZero() bool { return id.value == "" }

func (id PartnerProductID) Equal(other PartnerProductID) bool {
	return id.value == other.value
}

func (id PartnerProductID) Compare(other PartnerProductID) int {
	return strings.Compare(id.value, other.value)
}

func (id PartnerProductID) MarshalText() ([]byte, error) { return []byte(id.value), nil }

func (id *PartnerProductID) UnmarshalText(b []byte) error {
	v, err := ParsePartnerProductID(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

// ClearingHouseID identifies a clearing house.
type ClearingHouseID struct {
	value string
}

// ParseClearingHouseID accepts 1 to 20 characters.
func ParseClearingHouseID(s string) (ClearingHouseID, error) {
	v, err := parseText("clearing house id", s, 20)
	if err != nil {
		return ClearingHouseID{}, err
	}
	return ClearingHouseID{value: v}, nil
}

// TryParseClearingHouseID reports success as a bool.
func TryParseClearingHouseID(s string) (ClearingHouseID, bool) {
	id, err := ParseClearingHouseID(s)
	return id, err == nil
}

func (id ClearingHouseID) String() string { return id.value }
func (id ClearingHouseID) IsZero() bool { return id.value == "" }

func (id ClearingHouseID) Equal(other ClearingHouseID) bool {
	return id.value == other.value
}

func (id ClearingHouseID) Compare(other ClearingHouseID) int {
	return strings.Compare(id.value, other.value)
}

func (id ClearingHouseID) MarshalText() ([]byte, error) { return []byte(id.value), nil }

func (id *ClearingHouseID) UnmarshalText(b []byte) error {
	v, err := ParseClearingHouseID(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

// ChargingStationID groups the EVSEs of one physical station.
type ChargingStationID struct {
	value string
}

// ParseChargingStationID accepts 1 to 50 characters.
func ParseChargingStationID(s string) (ChargingStationID, error) {
	v, err := parseText("charging station id", s, 50)
	if err != nil {
		return ChargingStationID{}, err
	}
	return ChargingStationID{value: v}, nil
}

// TryParseChargingStationID reports success as a bool.
func TryParseChargingStationID(s string) (ChargingStationID, bool) {
	id, err := ParseChargingStationID(s)
	return id, err == nil
}

func (id ChargingStationID) String() string { return id.value }
func (id ChargingStationID) IsZero() bool { return id.value == "" }

func (id ChargingStationID) Equal(other ChargingStationID) bool {
	return id.value == other.value
}

func (id ChargingStationID) Compare(other ChargingStationID) int {
	return strings.Compare(id.value, other.value)
}

func (id ChargingStationID) MarshalText() ([]byte, error) { return []byte(id.value), nil }

func (id *ChargingStationID) UnmarshalText(b []byte) error {
	v, err := ParseChargingStationID(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

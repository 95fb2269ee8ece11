// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package message

import (
	"strings"
)

// flagText maps the members of a flag set to wire text, in schema order.
type flagText[T ~uint32] struct {
	enumText[T]
}

func (t flagText[T]) split(set T) []T {
	var out []T
	for _, v := range t.values {
		if set&v != 0 {
			out = append(out, v)
		}
	}
	return out
}

func (t flagText[T]) strings(set T) []string {
	var out []string
	for i, v := range t.values {
		if set&v != 0 {
			out = append(out, t.names[i])
		}
	}
	return out
}

func (t flagText[T]) parseAll(texts []string) (T, error) {
	var set T
	for _, s := range texts {
		v, err := t.parse(s)
		if err != nil {
			return 0, err
		}
		set |= v
	}
	return set, nil
}

// PlugTypes is a set of connector types.
type PlugTypes uint32

const (
	PlugSmallPaddleInductive PlugTypes = 1 << iota
	PlugLargePaddleInductive
	PlugAVCONConnector
	PlugTeslaConnector
	PlugNEMA5_20
	PlugTypeEFrenchStandard
	PlugTypeFSchuko
	PlugTypeGBritishStandard
	PlugTypeJSwissStandard
	PlugType1ConnectorCableAttached
	PlugType2Outlet
	PlugType2ConnectorCableAttached
	PlugType3Outlet
	PlugIEC60309SinglePhase
	PlugIEC60309ThreePhase
	PlugCCSCombo2PlugCableAttached
	PlugCCSCombo1PlugCableAttached
	PlugCHAdeMO
)

var plugTypes = flagText[PlugTypes]{enumText[PlugTypes]{
	kind: "plug type",
	values: []PlugTypes{
		PlugSmallPaddleInductive, PlugLargePaddleInductive, PlugAVCONConnector, PlugTeslaConnector,
		PlugNEMA5_20, PlugTypeEFrenchStandard, PlugTypeFSchuko, PlugTypeGBritishStandard,
		PlugTypeJSwissStandard, PlugType1ConnectorCableAttached, PlugType2Outlet,
		PlugType2ConnectorCableAttached, PlugType3Outlet, PlugIEC60309SinglePhase,
		PlugIEC60309ThreePhase, PlugCCSCombo2PlugCableAttached, PlugCCSCombo1PlugCableAttached,
		PlugCHAdeMO,
	},
	names: []string{
		"Small Paddle Inductive", "Large Paddle Inductive", "AVCON Connector", "Tesla Connector",
		"NEMA 5-20", "Type E French Standard", "Type F Schuko", "Type G British Standard",
		"Type J Swiss Standard", "Type 1 Connector (Cable Attached)", "Type 2 Outlet",
		"Type 2 Connector (Cable Attached)", "Type 3 Outlet", "IEC 60309 Single Phase",
		"IEC 60309 Three Phase", "CCS Combo 2 Plug (Cable Attached)", "CCS Combo 1 Plug (Cable Attached)",
		"CHAdeMO",
	},
}}

// ParsePlugType maps one wire text to its member.
func ParsePlugType(s string) (PlugTypes, error) { return plugTypes.parse(s) }

// ParsePlugTypes maps a list of wire texts to a set.
func ParsePlugTypes(texts []string) (PlugTypes, error) { return plugTypes.parseAll(texts) }

func (p PlugTypes) Has(member PlugTypes) bool { return p&member == member }
func (p PlugTypes) With(members ...PlugTypes) PlugTypes {
	for _, m := range members {
		p |= m
	}
	return p
}
func (p PlugTypes) IsEmpty() bool { return p == 0 }
func (p PlugTypes) Values() []PlugTypes { return plugTypes.split(p) }
func (p PlugTypes) Strings() []string { return plugTypes.strings(p) }
func (p PlugTypes) String() string { return strings.Join(p.Strings(), ", ") }

// ChargingModes is a set of IEC 61851 charging modes.
type ChargingModes uint32

const (
	ChargingModeMode1 ChargingModes = 1 << iota
	ChargingModeMode2
	ChargingModeMode3
	ChargingModeMode4
	ChargingModeCHAdeMO
)

var chargingModes = flagText[ChargingModes]{enumText[ChargingModes]{
	kind:   "charging mode",
	values: []ChargingModes{ChargingModeMode1, ChargingModeMode2, ChargingModeMode3, ChargingModeMode4, ChargingModeCHAdeMO},
	names:  []string{"Mode_1", "Mode_2", "Mode_3", "Mode_4", "CHAdeMO"},
}}

// ParseChargingMode maps one wire text to its member.
func ParseChargingMode(s string) (ChargingModes, error) { return chargingModes.parse(s) }

// ParseChargingModes maps a list of wire texts to a set.
func ParseChargingModes(texts []string) (ChargingModes, error) { return chargingModes.parseAll(texts) }

func (c ChargingModes) Has(member ChargingModes) bool { return c&member == member }
func (c ChargingModes) With(members ...ChargingModes) ChargingModes {
	for _, m := range members {
		c |= m
	}
	return c
}
func (c ChargingModes) IsEmpty() bool { return c == 0 }
func (c ChargingModes) Values() []ChargingModes { return chargingModes.split(c) }
func (c ChargingModes) Strings() []string { return chargingModes.strings(c) }
func (c ChargingModes) String() string { return strings.Join(c.Strings(), ", ") }

// AuthenticationModes is a set of ways a driver can authenticate. The empty
// set is the unknown sentinel and is rejected by EVSE data records.
type AuthenticationModes uint32

const (
	AuthNFCRFIDClassic AuthenticationModes = 1 << iota
	AuthNFCRFIDDESFire
	AuthPnC
	AuthREMOTE
	AuthDirectPayment
	AuthNoAuthenticationRequired
)

// AuthenticationModesUnknown is the empty set.
const AuthenticationModesUnknown AuthenticationModes = 0

var authenticationModes = flagText[AuthenticationModes]{enumText[AuthenticationModes]{
	kind: "authentication mode",
	values: []AuthenticationModes{
		AuthNFCRFIDClassic, AuthNFCRFIDDESFire, AuthPnC, AuthREMOTE, AuthDirectPayment, AuthNoAuthenticationRequired,
	},
	names: []string{"NFC RFID Classic", "NFC RFID DESFire", "PnC", "REMOTE", "Direct Payment", "No Authentication Required"},
}}

// ParseAuthenticationMode maps one wire text to its member.
func ParseAuthenticationMode(s string) (AuthenticationModes, error) {
	return authenticationModes.parse(s)
}

// ParseAuthenticationModes maps a list of wire texts to a set.
func ParseAuthenticationModes(texts []string) (AuthenticationModes, error) {
	return authenticationModes.parseAll(texts)
}

func (a AuthenticationModes) Has(member AuthenticationModes) bool { return a&member == member }
func (a AuthenticationModes) With(members ...AuthenticationModes) AuthenticationModes {
	for _, m := range members {
		a |= m
	}
	return a
}
func (a AuthenticationModes) IsEmpty() bool { return a == AuthenticationModesUnknown }
func (a AuthenticationModes) Values() []AuthenticationModes { return authenticationModes.split(a) }
func (a AuthenticationModes) Strings() []string { return authenticationModes.strings(a) }
func (a AuthenticationModes) String() string { return strings.Join(a.Strings(), ", ") }

// PaymentOptions is a set of accepted payment methods.
type PaymentOptions uint32

const (
	PaymentNoPayment PaymentOptions = 1 << iota
	PaymentDirect
	PaymentContract
)

var paymentOptions = flagText[PaymentOptions]{enumText[PaymentOptions]{
	kind:   "payment option",
	values: []PaymentOptions{PaymentNoPayment, PaymentDirect, PaymentContract},
	names:  []string{"No Payment", "Direct", "Contract"},
}}

// ParsePaymentOption maps one wire text to its member.
func ParsePaymentOption(s string) (PaymentOptions, error) { return paymentOptions.parse(s) }

// ParsePaymentOptions maps a list of wire texts to a set.
func ParsePaymentOptions(texts []string) (PaymentOptions, error) {
	return paymentOptions.parseAll(texts)
}

func (p PaymentOptions) Has(member PaymentOptions) bool { return p&member == member }
func (p PaymentOptions) With(members ...PaymentOptions) PaymentOptions {
	for _, m := range members {
		p |= m
	}
	return p
}
func (p PaymentOptions) IsEmpty() bool { return p == 0 }
func (p PaymentOptions) Values() []PaymentOptions { return paymentOptions.split(p) }
func (p PaymentOptions) Strings() []string { return paymentOptions.strings(p) }
func (p PaymentOptions) String() string { return strings.Join(p.Strings(), ", ") }

// ValueAddedServices is a set of extra services offered at an EVSE.
type ValueAddedServices uint32

const (
	ServiceReservation ValueAddedServices = 1 << iota
	ServiceDynamicPricing
	ServiceParkingSensors
	ServiceMaximumPowerCharging
	ServicePredictiveChargePointUsage
	ServiceChargingPlans
	ServiceRoofProvided
	ServiceNone
)

var valueAddedServices = flagText[ValueAddedServices]{enumText[ValueAddedServices]{
	kind: "value added service",
	values: []ValueAddedServices{
		ServiceReservation, ServiceDynamicPricing, ServiceParkingSensors, ServiceMaximumPowerCharging,
		ServicePredictiveChargePointUsage, ServiceChargingPlans, ServiceRoofProvided, ServiceNone,
	},
	names: []string{
		"Reservation", "DynamicPricing", "ParkingSensors", "MaximumPowerCharging",
		"PredictiveChargePointUsage", "ChargingPlans", "RoofProvided", "None",
	},
}}

// ParseValueAddedService maps one wire text to its member.
func ParseValueAddedService(s string) (ValueAddedServices, error) {
	return valueAddedServices.parse(s)
}

// ParseValueAddedServices maps a list of wire texts to a set.
func ParseValueAddedServices(texts []string) (ValueAddedServices, error) {
	return valueAddedServices.parseAll(texts)
}

func (v ValueAddedServices) Has(member ValueAddedServices) bool { return v&member == member }
func (v ValueAddedServices) With(members ...ValueAddedServices) ValueAddedServices {
	for _, m := range members {
		v |= m
	}
	return v
}
func (v ValueAddedServices) IsEmpty() bool { return v == 0 }
func (v ValueAddedServices) Values() []ValueAddedServices { return valueAddedServices.split(v) }
func (v ValueAddedServices) Strings() []string { return valueAddedServices.strings(v) }
func (v ValueAddedServices) String() string { return strings.Join(v.Strings(), ", ") }

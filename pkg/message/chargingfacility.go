// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package message

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/sirosfoundation/go-oicp/pkg/wire"
)

// ChargingFacility describes the electrical capabilities of an EVSE. Every
// field is optional.
type ChargingFacility struct {
	powerType PowerType
	voltage   *int
	amperage  *int
	power     *float64
}

// ChargingFacilityOption sets a ChargingFacility field.
type ChargingFacilityOption func(*ChargingFacility)

// WithPowerType sets the current type.
func WithPowerType(p PowerType) ChargingFacilityOption {
	return func(c *ChargingFacility) { c.powerType = p }
}

// WithVoltage sets the voltage in V.
func WithVoltage(v int) ChargingFacilityOption {
	return func(c *ChargingFacility) { c.voltage = &v }
}

// WithAmperage sets the current in A.
func WithAmperage(a int) ChargingFacilityOption {
	return func(c *ChargingFacility) { c.amperage = &a }
}

// WithPower sets the power in kW, rounded to three decimals.
func WithPower(kw float64) ChargingFacilityOption {
	return func(c *ChargingFacility) {
		r := wire.Round3(kw)
		c.power = &r
	}
}

// NewChargingFacility creates a ChargingFacility.
func NewChargingFacility(opts ...ChargingFacilityOption) ChargingFacility {
	var c ChargingFacility
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// PowerType returns the current type; PowerTypeUnspecified when absent.
func (c ChargingFacility) PowerType() PowerType { return c.powerType }

func (c ChargingFacility) Voltage() (int, bool) {
	if c.voltage == nil {
		return 0, false
	}
	return *c.voltage, true
}

func (c ChargingFacility) Amperage() (int, bool) {
	if c.amperage == nil {
		return 0, false
	}
	return *c.amperage, true
}

func (c ChargingFacility) Power() (float64, bool) {
	if c.power == nil {
		return 0, false
	}
	return *c.power, true
}

func equalOptional[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Equal compares field by field. Two absent fields are equal.
func (c ChargingFacility) Equal(other ChargingFacility) bool {
	return c.powerType == other.powerType &&
		equalOptional(c.voltage, other.voltage) &&
		equalOptional(c.amperage, other.amperage) &&
		equalOptional(c.power, other.power)
}

func (c ChargingFacility) String() string {
	var parts []string
	if c.powerType != PowerTypeUnspecified {
		parts = append(parts, c.powerType.String())
	}
	if v, ok := c.Voltage(); ok {
		parts = append(parts, fmt.Sprintf("%d V", v))
	}
	if a, ok := c.Amperage(); ok {
		parts = append(parts, fmt.Sprintf("%d A", a))
	}
	if p, ok := c.Power(); ok {
		parts = append(parts, wire.FormatDecimal(p)+" kW")
	}
	return strings.Join(parts, ", ")
}

// ToXML renders an EVSEData:ChargingFacility element.
func (c ChargingFacility) ToXML(custom wire.CustomXMLSerializer[ChargingFacility]) *etree.Element {
	e := wire.NewElement(wire.NsEVSEData, "ChargingFacility")
	if c.powerType != PowerTypeUnspecified {
		wire.AddText(e, wire.NsEVSEData, "PowerType", c.powerType.String())
	}
	if v, ok := c.Voltage(); ok {
		wire.AddText(e, wire.NsEVSEData, "Voltage", strconv.Itoa(v))
	}
	if a, ok := c.Amperage(); ok {
		wire.AddText(e, wire.NsEVSEData, "Amperage", strconv.Itoa(a))
	}
	if p, ok := c.Power(); ok {
		wire.AddText(e, wire.NsEVSEData, "Power", wire.FormatDecimal(p))
	}
	return custom.Apply(c, e)
}

func parseChargingFacilityXML(e *etree.Element) (ChargingFacility, error) {
	const typ = "ChargingFacility"
	var opts []ChargingFacilityOption
	if text, ok := wire.ChildText(e, wire.NsEVSEData, "PowerType"); ok {
		opts = append(opts, WithPowerType(AsPowerType(text)))
	}
	if text, ok := wire.ChildText(e, wire.NsEVSEData, "Voltage"); ok {
		v, err := wire.ParseInt(text)
		if err != nil {
			return ChargingFacility{}, parseError(typ, "Voltage", err)
		}
		opts = append(opts, WithVoltage(v))
	}
	if text, ok := wire.ChildText(e, wire.NsEVSEData, "Amperage"); ok {
		a, err := wire.ParseInt(text)
		if err != nil {
			return ChargingFacility{}, parseError(typ, "Amperage", err)
		}
		opts = append(opts, WithAmperage(a))
	}
	if text, ok := wire.ChildText(e, wire.NsEVSEData, "Power"); ok {
		p, err := wire.ParseDecimal(text)
		if err != nil {
			return ChargingFacility{}, parseError(typ, "Power", err)
		}
		opts = append(opts, WithPower(p))
	}
	return NewChargingFacility(opts...), nil
}

// ParseChargingFacilityXML reads an EVSEData:ChargingFacility element.
// Unknown power types become PowerTypeUnspecified; unparsable numbers fail.
func ParseChargingFacilityXML(e *etree.Element, onError wire.ErrorHandler, custom wire.CustomXMLParser[ChargingFacility]) (ChargingFacility, error) {
	c, err := parseChargingFacilityXML(e)
	return finish(c, err, e, onError, func(v ChargingFacility) ChargingFacility { return custom.Apply(e, v) })
}

// TryParseChargingFacilityXML is ParseChargingFacilityXML reporting success as a bool.
func TryParseChargingFacilityXML(e *etree.Element, onError wire.ErrorHandler, custom wire.CustomXMLParser[ChargingFacility]) (ChargingFacility, bool) {
	c, err := ParseChargingFacilityXML(e, onError, custom)
	return c, err == nil
}

// ToJSON renders the JSON form.
func (c ChargingFacility) ToJSON(custom wire.CustomJSONSerializer[ChargingFacility]) wire.JSONObject {
	obj := wire.JSONObject{}
	if c.powerType != PowerTypeUnspecified {
		obj["powerType"] = c.powerType.String()
	}
	if v, ok := c.Voltage(); ok {
		obj["voltage"] = v
	}
	if a, ok := c.Amperage(); ok {
		obj["amperage"] = a
	}
	if p, ok := c.Power(); ok {
		obj["power"] = wire.Decimal(p)
	}
	return custom.Apply(c, obj)
}

func parseChargingFacilityJSON(obj wire.JSONObject) (ChargingFacility, error) {
	const typ = "ChargingFacility"
	var opts []ChargingFacilityOption
	text, ok, err := obj.Text("powerType")
	if err != nil {
		return ChargingFacility{}, parseError(typ, "powerType", err)
	}
	if ok {
		opts = append(opts, WithPowerType(AsPowerType(text)))
	}
	v, ok, err := obj.Integer("voltage")
	if err != nil {
		return ChargingFacility{}, parseError(typ, "voltage", err)
	}
	if ok {
		opts = append(opts, WithVoltage(v))
	}
	a, ok, err := obj.Integer("amperage")
	if err != nil {
		return ChargingFacility{}, parseError(typ, "amperage", err)
	}
	if ok {
		opts = append(opts, WithAmperage(a))
	}
	p, ok, err := obj.Number("power")
	if err != nil {
		return ChargingFacility{}, parseError(typ, "power", err)
	}
	if ok {
		opts = append(opts, WithPower(p))
	}
	return NewChargingFacility(opts...), nil
}

// ParseChargingFacilityJSON reads the JSON form.
func ParseChargingFacilityJSON(obj wire.JSONObject, onError wire.ErrorHandler, custom wire.CustomJSONParser[ChargingFacility]) (ChargingFacility, error) {
	c, err := parseChargingFacilityJSON(obj)
	return finish(c, err, obj, onError, func(v ChargingFacility) ChargingFacility { return custom.Apply(obj, v) })
}

// TryParseChargingFacilityJSON is ParseChargingFacilityJSON reporting success as a bool.
func TryParseChargingFacilityJSON(obj wire.JSONObject, onError wire.ErrorHandler, custom wire.CustomJSONParser[ChargingFacility]) (ChargingFacility, bool) {
	c, err := ParseChargingFacilityJSON(obj, onError, custom)
	return c, err == nil
}

// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package message

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/sirosfoundation/go-oicp/pkg/geo"
	"github.com/sirosfoundation/go-oicp/pkg/ids"
	"github.com/sirosfoundation/go-oicp/pkg/wire"
)

// EVSEDataRecord is the static description of one EVSE.
type EVSEDataRecord struct {
	id                       ids.EVSEID
	deltaType                DeltaType
	lastUpdate               time.Time
	chargingStationID        ids.ChargingStationID
	chargingStationName      string
	enChargingStationName    string
	address                  geo.Address
	geoCoordinates           geo.GeoCoordinates
	plugs                    PlugTypes
	chargingFacilities       []ChargingFacility
	chargingModes            ChargingModes
	authenticationModes      AuthenticationModes
	maxCapacity              *int
	paymentOptions           PaymentOptions
	valueAddedServices       ValueAddedServices
	accessibility            AccessibilityType
	hotlinePhoneNumber       string
	additionalInfo           string
	enAdditionalInfo         string
	geoChargingPointEntrance *geo.GeoCoordinates
	isOpen24Hours            bool
	openingTime              string
	hubOperatorID            ids.HubOperatorID
	clearingHouseID          ids.ClearingHouseID
	isHubjectCompatible      bool
	dynamicInfoAvailable     bool
}

// EVSEDataRecordBuilder is the mutable form of EVSEDataRecord. Create it
// with NewEVSEDataRecordBuilder to get the protocol defaults.
type EVSEDataRecordBuilder struct {
	ID                       ids.EVSEID
	DeltaType                DeltaType
	LastUpdate               time.Time
	ChargingStationID        ids.ChargingStationID
	ChargingStationName      string
	EnChargingStationName    string
	Address                  *geo.Address
	GeoCoordinates           *geo.GeoCoordinates
	Plugs                    PlugTypes
	ChargingFacilities       []ChargingFacility
	ChargingModes            ChargingModes
	AuthenticationModes      AuthenticationModes
	MaxCapacity              *int
	PaymentOptions           PaymentOptions
	ValueAddedServices       ValueAddedServices
	Accessibility            AccessibilityType
	HotlinePhoneNumber       string
	AdditionalInfo           string
	EnAdditionalInfo         string
	GeoChargingPointEntrance *geo.GeoCoordinates
	IsOpen24Hours            bool
	OpeningTime              string
	HubOperatorID            ids.HubOperatorID
	ClearingHouseID          ids.ClearingHouseID
	IsHubjectCompatible      bool
	DynamicInfoAvailable     bool
}

// NewEVSEDataRecordBuilder returns a builder holding the defaults: free
// public access, open around the clock, hub compatible, dynamic info
// available.
func NewEVSEDataRecordBuilder(id ids.EVSEID) *EVSEDataRecordBuilder {
	return &EVSEDataRecordBuilder{
		ID:                   id,
		Accessibility:        AccessibilityFreePubliclyAccessible,
		IsOpen24Hours:        true,
		IsHubjectCompatible:  true,
		DynamicInfoAvailable: true,
	}
}

// EVSEDataRecordOption sets optional fields on the builder behind
// NewEVSEDataRecord.
type EVSEDataRecordOption func(*EVSEDataRecordBuilder)

// NewEVSEDataRecord creates an EVSEDataRecord from its mandatory fields.
func NewEVSEDataRecord(
	id ids.EVSEID,
	address geo.Address,
	coordinates geo.GeoCoordinates,
	plugs PlugTypes,
	authenticationModes AuthenticationModes,
	hotlinePhoneNumber string,
	opts ...EVSEDataRecordOption,
) (EVSEDataRecord, error) {
	b := NewEVSEDataRecordBuilder(id)
	b.Address = &address
	b.GeoCoordinates = &coordinates
	b.Plugs = plugs
	b.AuthenticationModes = authenticationModes
	b.HotlinePhoneNumber = hotlinePhoneNumber
	for _, opt := range opts {
		opt(b)
	}
	return b.Build()
}

// Build validates the builder and returns the record.
func (b *EVSEDataRecordBuilder) Build() (EVSEDataRecord, error) {
	const typ = "EVSEDataRecord"
	if b.ID.IsZero() {
		return EVSEDataRecord{}, fieldError(typ, "EvseID", ErrMissingField)
	}
	if b.Address == nil || b.Address.IsZero() {
		return EVSEDataRecord{}, fieldError(typ, "Address", ErrMissingField)
	}
	if err := b.Address.Validate(); err != nil {
		return EVSEDataRecord{}, fieldError(typ, "Address", err)
	}
	if b.GeoCoordinates == nil {
		return EVSEDataRecord{}, fieldError(typ, "GeoCoordinates", ErrMissingField)
	}
	if err := b.GeoCoordinates.Validate(); err != nil {
		return EVSEDataRecord{}, fieldError(typ, "GeoCoordinates", err)
	}
	if b.Plugs.IsEmpty() {
		return EVSEDataRecord{}, fieldError(typ, "Plugs", ErrEmptyCollection)
	}
	if b.AuthenticationModes.IsEmpty() {
		return EVSEDataRecord{}, fieldError(typ, "AuthenticationModes", ErrMissingField)
	}
	hotline := strings.TrimSpace(b.HotlinePhoneNumber)
	if hotline == "" {
		return EVSEDataRecord{}, fieldError(typ, "HotlinePhoneNumber", ErrMissingField)
	}
	if b.GeoChargingPointEntrance != nil {
		if err := b.GeoChargingPointEntrance.Validate(); err != nil {
			return EVSEDataRecord{}, fieldError(typ, "GeoChargingPointEntrance", err)
		}
	}
	if b.MaxCapacity != nil && *b.MaxCapacity < 0 {
		return EVSEDataRecord{}, fieldError(typ, "MaxCapacity", ErrInvalidField)
	}
	accessibility := b.Accessibility
	if accessibility == AccessibilityUnspecified {
		accessibility = AccessibilityFreePubliclyAccessible
	}
	r := EVSEDataRecord{
		id:                       b.ID,
		deltaType:                b.DeltaType,
		chargingStationID:        b.ChargingStationID,
		chargingStationName:      strings.TrimSpace(b.ChargingStationName),
		enChargingStationName:    strings.TrimSpace(b.EnChargingStationName),
		address:                  *b.Address,
		geoCoordinates:           *b.GeoCoordinates,
		plugs:                    b.Plugs,
		chargingFacilities:       slices.Clone(b.ChargingFacilities),
		chargingModes:            b.ChargingModes,
		authenticationModes:      b.AuthenticationModes,
		maxCapacity:              copyPtr(b.MaxCapacity),
		paymentOptions:           b.PaymentOptions,
		valueAddedServices:       b.ValueAddedServices,
		accessibility:            accessibility,
		hotlinePhoneNumber:       hotline,
		additionalInfo:           strings.TrimSpace(b.AdditionalInfo),
		enAdditionalInfo:         strings.TrimSpace(b.EnAdditionalInfo),
		geoChargingPointEntrance: copyPtr(b.GeoChargingPointEntrance),
		isOpen24Hours:            b.IsOpen24Hours,
		openingTime:              strings.TrimSpace(b.OpeningTime),
		hubOperatorID:            b.HubOperatorID,
		clearingHouseID:          b.ClearingHouseID,
		isHubjectCompatible:      b.IsHubjectCompatible,
		dynamicInfoAvailable:     b.DynamicInfoAvailable,
	}
	if !b.LastUpdate.IsZero() {
		r.lastUpdate = wire.NormalizeTimestamp(b.LastUpdate)
	}
	return r, nil
}

// ToBuilder copies every field into a new builder.
func (r EVSEDataRecord) ToBuilder() *EVSEDataRecordBuilder {
	address := r.address
	coordinates := r.geoCoordinates
	return &EVSEDataRecordBuilder{
		ID:                       r.id,
		DeltaType:                r.deltaType,
		LastUpdate:               r.lastUpdate,
		ChargingStationID:        r.chargingStationID,
		ChargingStationName:      r.chargingStationName,
		EnChargingStationName:    r.enChargingStationName,
		Address:                  &address,
		GeoCoordinates:           &coordinates,
		Plugs:                    r.plugs,
		ChargingFacilities:       slices.Clone(r.chargingFacilities),
		ChargingModes:            r.chargingModes,
		AuthenticationModes:      r.authenticationModes,
		MaxCapacity:              copyPtr(r.maxCapacity),
		PaymentOptions:           r.paymentOptions,
		ValueAddedServices:       r.valueAddedServices,
		Accessibility:            r.accessibility,
		HotlinePhoneNumber:       r.hotlinePhoneNumber,
		AdditionalInfo:           r.additionalInfo,
		EnAdditionalInfo:         r.enAdditionalInfo,
		GeoChargingPointEntrance: copyPtr(r.geoChargingPointEntrance),
		IsOpen24Hours:            r.isOpen24Hours,
		OpeningTime:              r.openingTime,
		HubOperatorID:            r.hubOperatorID,
		ClearingHouseID:          r.clearingHouseID,
		IsHubjectCompatible:      r.isHubjectCompatible,
		DynamicInfoAvailable:     r.dynamicInfoAvailable,
	}
}

func (r EVSEDataRecord) ID() ids.EVSEID { return r.id }
func (r EVSEDataRecord) DeltaType() DeltaType { return r.deltaType }
func (r EVSEDataRecord) LastUpdate() time.Time { return r.lastUpdate }
func (r EVSEDataRecord) ChargingStationID() ids.ChargingStationID { return r.chargingStationID }
func (r EVSEDataRecord) ChargingStationName() string { return r.chargingStationName }
func (r EVSEDataRecord) EnChargingStationName() string { return r.enChargingStationName }
func (r EVSEDataRecord) Address() geo.Address { return r.address }
func (r EVSEDataRecord) GeoCoordinates() geo.GeoCoordinates { return r.geoCoordinates }
func (r EVSEDataRecord) Plugs() PlugTypes { return r.plugs }
func (r EVSEDataRecord) ChargingModes() ChargingModes { return r.chargingModes }
func (r EVSEDataRecord) AuthenticationModes() AuthenticationModes { return r.authenticationModes }
func (r EVSEDataRecord) PaymentOptions() PaymentOptions { return r.paymentOptions }
func (r EVSEDataRecord) ValueAddedServices() ValueAddedServices { return r.valueAddedServices }
func (r EVSEDataRecord) Accessibility() AccessibilityType { return r.accessibility }
func (r EVSEDataRecord) HotlinePhoneNumber() string { return r.hotlinePhoneNumber }
func (r EVSEDataRecord) AdditionalInfo() string { return r.additionalInfo }
func (r EVSEDataRecord) EnAdditionalInfo() string { return r.enAdditionalInfo }
func (r EVSEDataRecord) IsOpen24Hours() bool { return r.isOpen24Hours }
func (r EVSEDataRecord) OpeningTime() string { return r.openingTime }
func (r EVSEDataRecord) HubOperatorID() ids.HubOperatorID { return r.hubOperatorID }
func (r EVSEDataRecord) ClearingHouseID() ids.ClearingHouseID { return r.clearingHouseID }
func (r EVSEDataRecord) IsHubjectCompatible() bool { return r.isHubjectCompatible }
func (r EVSEDataRecord) DynamicInfoAvailable() bool { return r.dynamicInfoAvailable }
func (r EVSEDataRecord) MaxCapacity() (int, bool) { return optionalInt(r.maxCapacity) }

// ChargingFacilities returns a copy of the facility list.
func (r EVSEDataRecord) ChargingFacilities() []ChargingFacility {
	return slices.Clone(r.chargingFacilities)
}

// GeoChargingPointEntrance returns the entrance coordinates, if any.
func (r EVSEDataRecord) GeoChargingPointEntrance() (geo.GeoCoordinates, bool) {
	if r.geoChargingPointEntrance == nil {
		return geo.GeoCoordinates{}, false
	}
	return *r.geoChargingPointEntrance, true
}

// Equal compares EVSE ids only.
func (r EVSEDataRecord) Equal(other EVSEDataRecord) bool { return r.id.Equal(other.id) }

// Compare orders by EVSE id.
func (r EVSEDataRecord) Compare(other EVSEDataRecord) int { return r.id.Compare(other.id) }

func (r EVSEDataRecord) String() string {
	return fmt.Sprintf("%s (%s; %s; %s)", r.id, r.address, r.plugs, r.authenticationModes)
}

// ToXML renders an EVSEData:EvseDataRecord element. The deltaType and
// lastUpdate attributes are written only when includeMetadata is set.
func (r EVSEDataRecord) ToXML(includeMetadata bool, custom wire.CustomXMLSerializer[EVSEDataRecord]) *etree.Element {
	const ns = wire.NsEVSEData
	e := wire.NewElement(ns, "EvseDataRecord")
	if includeMetadata {
		if r.deltaType != DeltaTypeNone {
			e.CreateAttr("deltaType", r.deltaType.String())
		}
		if !r.lastUpdate.IsZero() {
			e.CreateAttr("lastUpdate", wire.FormatTimestamp(r.lastUpdate))
		}
	}
	wire.AddText(e, ns, "EvseId", r.id.String())
	wire.AddOptionalText(e, ns, "ChargingStationId", r.chargingStationID.String())
	wire.AddOptionalText(e, ns, "ChargingStationName", r.chargingStationName)
	wire.AddOptionalText(e, ns, "EnChargingStationName", r.enChargingStationName)
	e.AddChild(r.address.ToXML(ns))
	e.AddChild(r.geoCoordinates.ToXML(ns, "GeoCoordinates"))
	addList(e, ns, "Plugs", "Plug", r.plugs.Strings())
	if len(r.chargingFacilities) > 0 {
		c := wire.AddElement(e, ns, "ChargingFacilities")
		for _, f := range r.chargingFacilities {
			c.AddChild(f.ToXML(nil))
		}
	}
	addList(e, ns, "ChargingModes", "ChargingMode", r.chargingModes.Strings())
	addList(e, ns, "AuthenticationModes", "AuthenticationMode", r.authenticationModes.Strings())
	if v, ok := r.MaxCapacity(); ok {
		wire.AddText(e, ns, "MaxCapacity", strconv.Itoa(v))
	}
	addList(e, ns, "PaymentOptions", "PaymentOption", r.paymentOptions.Strings())
	addList(e, ns, "ValueAddedServices", "ValueAddedService", r.valueAddedServices.Strings())
	wire.AddText(e, ns, "Accessibility", r.accessibility.String())
	wire.AddText(e, ns, "HotlinePhoneNum", r.hotlinePhoneNumber)
	wire.AddOptionalText(e, ns, "AdditionalInfo", r.additionalInfo)
	wire.AddOptionalText(e, ns, "EnAdditionalInfo", r.enAdditionalInfo)
	if g, ok := r.GeoChargingPointEntrance(); ok {
		e.AddChild(g.ToXML(ns, "GeoChargingPointEntrance"))
	}
	wire.AddText(e, ns, "IsOpen24Hours", wire.FormatBool(r.isOpen24Hours))
	wire.AddOptionalText(e, ns, "OpeningTime", r.openingTime)
	wire.AddOptionalText(e, ns, "HubOperatorID", r.hubOperatorID.String())
	wire.AddOptionalText(e, ns, "ClearinghouseID", r.clearingHouseID.String())
	wire.AddText(e, ns, "IsHubjectCompatible", wire.FormatBool(r.isHubjectCompatible))
	wire.AddText(e, ns, "DynamicInfoAvailable", wire.FormatBool(r.dynamicInfoAvailable))
	return custom.Apply(r, e)
}

func parseEVSEDataRecordXML(e *etree.Element) (EVSEDataRecord, error) {
	const typ = "EVSEDataRecord"
	const ns = wire.NsEVSEData
	if !wire.Is(e, ns, "EvseDataRecord") {
		return EVSEDataRecord{}, parseError(typ, "", wire.ErrUnexpectedElement)
	}
	text, err := wire.RequiredText(e, ns, "EvseId")
	if err != nil {
		return EVSEDataRecord{}, parseError(typ, "EvseId", err)
	}
	id, err := ids.ParseEVSEID(text)
	if err != nil {
		return EVSEDataRecord{}, parseError(typ, "EvseId", err)
	}
	b := NewEVSEDataRecordBuilder(id)

	if attr := e.SelectAttrValue("deltaType", ""); attr != "" {
		if b.DeltaType, err = ParseDeltaType(attr); err != nil {
			return EVSEDataRecord{}, parseError(typ, "deltaType", err)
		}
	}
	if attr := e.SelectAttrValue("lastUpdate", ""); attr != "" {
		if b.LastUpdate, err = wire.ParseTimestamp(attr); err != nil {
			return EVSEDataRecord{}, parseError(typ, "lastUpdate", err)
		}
	}
	if text, ok := wire.ChildText(e, ns, "ChargingStationId"); ok && text != "" {
		if b.ChargingStationID, err = ids.ParseChargingStationID(text); err != nil {
			return EVSEDataRecord{}, parseError(typ, "ChargingStationId", err)
		}
	}
	b.ChargingStationName, _ = wire.ChildText(e, ns, "ChargingStationName")
	b.EnChargingStationName, _ = wire.ChildText(e, ns, "EnChargingStationName")

	address, err := geo.ParseAddressXML(wire.Child(e, ns, "Address"))
	if err != nil {
		return EVSEDataRecord{}, parseError(typ, "Address", err)
	}
	b.Address = &address
	coordinates, err := geo.ParseGeoCoordinatesXML(wire.Child(e, ns, "GeoCoordinates"))
	if err != nil {
		return EVSEDataRecord{}, parseError(typ, "GeoCoordinates", err)
	}
	b.GeoCoordinates = &coordinates

	texts, _ := listTexts(e, ns, "Plugs", "Plug")
	if b.Plugs, err = ParsePlugTypes(texts); err != nil {
		return EVSEDataRecord{}, parseError(typ, "Plugs", err)
	}
	if c := wire.Child(e, ns, "ChargingFacilities"); c != nil {
		for _, f := range wire.Children(c, ns, "ChargingFacility") {
			facility, err := parseChargingFacilityXML(f)
			if err != nil {
				return EVSEDataRecord{}, parseError(typ, "ChargingFacilities", err)
			}
			b.ChargingFacilities = append(b.ChargingFacilities, facility)
		}
	}
	texts, _ = listTexts(e, ns, "ChargingModes", "ChargingMode")
	if b.ChargingModes, err = ParseChargingModes(texts); err != nil {
		return EVSEDataRecord{}, parseError(typ, "ChargingModes", err)
	}
	texts, _ = listTexts(e, ns, "AuthenticationModes", "AuthenticationMode")
	if b.AuthenticationModes, err = ParseAuthenticationModes(texts); err != nil {
		return EVSEDataRecord{}, parseError(typ, "AuthenticationModes", err)
	}
	if text, ok := wire.ChildText(e, ns, "MaxCapacity"); ok {
		v, err := wire.ParseInt(text)
		if err != nil {
			return EVSEDataRecord{}, parseError(typ, "MaxCapacity", err)
		}
		b.MaxCapacity = &v
	}
	texts, _ = listTexts(e, ns, "PaymentOptions", "PaymentOption")
	if b.PaymentOptions, err = ParsePaymentOptions(texts); err != nil {
		return EVSEDataRecord{}, parseError(typ, "PaymentOptions", err)
	}
	texts, _ = listTexts(e, ns, "ValueAddedServices", "ValueAddedService")
	if b.ValueAddedServices, err = ParseValueAddedServices(texts); err != nil {
		return EVSEDataRecord{}, parseError(typ, "ValueAddedServices", err)
	}
	if text, ok := wire.ChildText(e, ns, "Accessibility"); ok {
		if b.Accessibility, err = ParseAccessibilityType(text); err != nil {
			return EVSEDataRecord{}, parseError(typ, "Accessibility", err)
		}
	}
	b.HotlinePhoneNumber, _ = wire.ChildText(e, ns, "HotlinePhoneNum")
	b.AdditionalInfo, _ = wire.ChildText(e, ns, "AdditionalInfo")
	b.EnAdditionalInfo, _ = wire.ChildText(e, ns, "EnAdditionalInfo")
	if c := wire.Child(e, ns, "GeoChargingPointEntrance"); c != nil {
		entrance, err := geo.ParseGeoCoordinatesXML(c)
		if err != nil {
			return EVSEDataRecord{}, parseError(typ, "GeoChargingPointEntrance", err)
		}
		b.GeoChargingPointEntrance = &entrance
	}
	if text, ok := wire.ChildText(e, ns, "IsOpen24Hours"); ok {
		if b.IsOpen24Hours, err = wire.ParseBool(text); err != nil {
			return EVSEDataRecord{}, parseError(typ, "IsOpen24Hours", err)
		}
	}
	b.OpeningTime, _ = wire.ChildText(e, ns, "OpeningTime")
	if text, ok := wire.ChildText(e, ns, "HubOperatorID"); ok && text != "" {
		if b.HubOperatorID, err = ids.ParseHubOperatorID(text); err != nil {
			return EVSEDataRecord{}, parseError(typ, "HubOperatorID", err)
		}
	}
	if text, ok := wire.ChildText(e, ns, "ClearinghouseID"); ok && text != "" {
		if b.ClearingHouseID, err = ids.ParseClearingHouseID(text); err != nil {
			return EVSEDataRecord{}, parseError(typ, "ClearinghouseID", err)
		}
	}
	if text, ok := wire.ChildText(e, ns, "IsHubjectCompatible"); ok {
		if b.IsHubjectCompatible, err = wire.ParseBool(text); err != nil {
			return EVSEDataRecord{}, parseError(typ, "IsHubjectCompatible", err)
		}
	}
	if text, ok := wire.ChildText(e, ns, "DynamicInfoAvailable"); ok {
		if b.DynamicInfoAvailable, err = wire.ParseBool(text); err != nil {
			return EVSEDataRecord{}, parseError(typ, "DynamicInfoAvailable", err)
		}
	}
	r, err := b.Build()
	if err != nil {
		return EVSEDataRecord{}, parseError(typ, "", err)
	}
	return r, nil
}

// ParseEVSEDataRecordXML reads an EVSEData:EvseDataRecord element.
func ParseEVSEDataRecordXML(e *etree.Element, onError wire.ErrorHandler, custom wire.CustomXMLParser[EVSEDataRecord]) (EVSEDataRecord, error) {
	r, err := parseEVSEDataRecordXML(e)
	return finish(r, err, e, onError, func(v EVSEDataRecord) EVSEDataRecord { return custom.Apply(e, v) })
}

// TryParseEVSEDataRecordXML is ParseEVSEDataRecordXML reporting success as a bool.
func TryParseEVSEDataRecordXML(e *etree.Element, onError wire.ErrorHandler, custom wire.CustomXMLParser[EVSEDataRecord]) (EVSEDataRecord, bool) {
	r, err := ParseEVSEDataRecordXML(e, onError, custom)
	return r, err == nil
}

// ToJSON renders the JSON form. deltaType and lastUpdate are written only
// when includeMetadata is set.
func (r EVSEDataRecord) ToJSON(includeMetadata bool, custom wire.CustomJSONSerializer[EVSEDataRecord]) wire.JSONObject {
	obj := wire.JSONObject{
		"evseId":               r.id.String(),
		"address":              r.address.ToJSON(),
		"geoCoordinates":       r.geoCoordinates.ToJSON(),
		"plugs":                r.plugs.Strings(),
		"authenticationModes":  r.authenticationModes.Strings(),
		"accessibility":        r.accessibility.String(),
		"hotlinePhoneNumber":   r.hotlinePhoneNumber,
		"isOpen24Hours":        r.isOpen24Hours,
		"isHubjectCompatible":  r.isHubjectCompatible,
		"dynamicInfoAvailable": r.dynamicInfoAvailable,
	}
	if includeMetadata {
		if r.deltaType != DeltaTypeNone {
			obj["deltaType"] = r.deltaType.String()
		}
		if !r.lastUpdate.IsZero() {
			obj["lastUpdate"] = wire.FormatTimestamp(r.lastUpdate)
		}
	}
	obj.SetOptional("chargingStationId", r.chargingStationID.String())
	obj.SetOptional("chargingStationName", r.chargingStationName)
	obj.SetOptional("enChargingStationName", r.enChargingStationName)
	if len(r.chargingFacilities) > 0 {
		facilities := make([]any, 0, len(r.chargingFacilities))
		for _, f := range r.chargingFacilities {
			facilities = append(facilities, f.ToJSON(nil))
		}
		obj["chargingFacilities"] = facilities
	}
	if !r.chargingModes.IsEmpty() {
		obj["chargingModes"] = r.chargingModes.Strings()
	}
	if v, ok := r.MaxCapacity(); ok {
		obj["maxCapacity"] = v
	}
	if !r.paymentOptions.IsEmpty() {
		obj["paymentOptions"] = r.paymentOptions.Strings()
	}
	if !r.valueAddedServices.IsEmpty() {
		obj["valueAddedServices"] = r.valueAddedServices.Strings()
	}
	obj.SetOptional("additionalInfo", r.additionalInfo)
	obj.SetOptional("enAdditionalInfo", r.enAdditionalInfo)
	if g, ok := r.GeoChargingPointEntrance(); ok {
		obj["geoChargingPointEntrance"] = g.ToJSON()
	}
	obj.SetOptional("openingTime", r.openingTime)
	obj.SetOptional("hubOperatorId", r.hubOperatorID.String())
	obj.SetOptional("clearinghouseId", r.clearingHouseID.String())
	return custom.Apply(r, obj)
}

func parseEVSEDataRecordJSON(obj wire.JSONObject) (EVSEDataRecord, error) {
	const typ = "EVSEDataRecord"
	if obj == nil {
		return EVSEDataRecord{}, parseError(typ, "", wire.ErrEmptyDocument)
	}
	text, err := obj.RequiredText("evseId")
	if err != nil {
		return EVSEDataRecord{}, parseError(typ, "evseId", err)
	}
	id, err := ids.ParseEVSEID(text)
	if err != nil {
		return EVSEDataRecord{}, parseError(typ, "evseId", err)
	}
	b := NewEVSEDataRecordBuilder(id)

	optionalText := func(key string) (string, bool, error) {
		s, ok, err := obj.Text(key)
		if err != nil {
			return "", false, parseError(typ, key, err)
		}
		return s, ok && s != "", nil
	}
	var ok bool
	if text, ok, err = optionalText("deltaType"); err != nil {
		return EVSEDataRecord{}, err
	} else if ok {
		if b.DeltaType, err = ParseDeltaType(text); err != nil {
			return EVSEDataRecord{}, parseError(typ, "deltaType", err)
		}
	}
	if text, ok, err = optionalText("lastUpdate"); err != nil {
		return EVSEDataRecord{}, err
	} else if ok {
		if b.LastUpdate, err = wire.ParseTimestamp(text); err != nil {
			return EVSEDataRecord{}, parseError(typ, "lastUpdate", err)
		}
	}
	if text, ok, err = optionalText("chargingStationId"); err != nil {
		return EVSEDataRecord{}, err
	} else if ok {
		if b.ChargingStationID, err = ids.ParseChargingStationID(text); err != nil {
			return EVSEDataRecord{}, parseError(typ, "chargingStationId", err)
		}
	}
	if b.ChargingStationName, _, err = optionalText("chargingStationName"); err != nil {
		return EVSEDataRecord{}, err
	}
	if b.EnChargingStationName, _, err = optionalText("enChargingStationName"); err != nil {
		return EVSEDataRecord{}, err
	}

	a, _, err := obj.Object("address")
	if err != nil {
		return EVSEDataRecord{}, parseError(typ, "address", err)
	}
	address, err := geo.ParseAddressJSON(a)
	if err != nil {
		return EVSEDataRecord{}, parseError(typ, "address", err)
	}
	b.Address = &address
	g, _, err := obj.Object("geoCoordinates")
	if err != nil {
		return EVSEDataRecord{}, parseError(typ, "geoCoordinates", err)
	}
	coordinates, err := geo.ParseGeoCoordinatesJSON(g)
	if err != nil {
		return EVSEDataRecord{}, parseError(typ, "geoCoordinates", err)
	}
	b.GeoCoordinates = &coordinates

	list := func(key string) ([]string, error) {
		s, _, err := obj.Strings(key)
		if err != nil {
			return nil, parseError(typ, key, err)
		}
		return s, nil
	}
	texts, err := list("plugs")
	if err != nil {
		return EVSEDataRecord{}, err
	}
	if b.Plugs, err = ParsePlugTypes(texts); err != nil {
		return EVSEDataRecord{}, parseError(typ, "plugs", err)
	}
	facilities, _, err := jsonObjects(obj, "chargingFacilities")
	if err != nil {
		return EVSEDataRecord{}, parseError(typ, "chargingFacilities", err)
	}
	for _, f := range facilities {
		facility, err := parseChargingFacilityJSON(f)
		if err != nil {
			return EVSEDataRecord{}, parseError(typ, "chargingFacilities", err)
		}
		b.ChargingFacilities = append(b.ChargingFacilities, facility)
	}
	if texts, err = list("chargingModes"); err != nil {
		return EVSEDataRecord{}, err
	}
	if b.ChargingModes, err = ParseChargingModes(texts); err != nil {
		return EVSEDataRecord{}, parseError(typ, "chargingModes", err)
	}
	if texts, err = list("authenticationModes"); err != nil {
		return EVSEDataRecord{}, err
	}
	if b.AuthenticationModes, err = ParseAuthenticationModes(texts); err != nil {
		return EVSEDataRecord{}, parseError(typ, "authenticationModes", err)
	}
	capacity, ok, err := obj.Integer("maxCapacity")
	if err != nil {
		return EVSEDataRecord{}, parseError(typ, "maxCapacity", err)
	}
	if ok {
		b.MaxCapacity = &capacity
	}
	if texts, err = list("paymentOptions"); err != nil {
		return EVSEDataRecord{}, err
	}
	if b.PaymentOptions, err = ParsePaymentOptions(texts); err != nil {
		return EVSEDataRecord{}, parseError(typ, "paymentOptions", err)
	}
	if texts, err = list("valueAddedServices"); err != nil {
		return EVSEDataRecord{}, err
	}
	if b.ValueAddedServices, err = ParseValueAddedServices(texts); err != nil {
		return EVSEDataRecord{}, parseError(typ, "valueAddedServices", err)
	}
	if text, ok, err = optionalText("accessibility"); err != nil {
		return EVSEDataRecord{}, err
	} else if ok {
		if b.Accessibility, err = ParseAccessibilityType(text); err != nil {
			return EVSEDataRecord{}, parseError(typ, "accessibility", err)
		}
	}
	if b.HotlinePhoneNumber, _, err = optionalText("hotlinePhoneNumber"); err != nil {
		return EVSEDataRecord{}, err
	}
	if b.AdditionalInfo, _, err = optionalText("additionalInfo"); err != nil {
		return EVSEDataRecord{}, err
	}
	if b.EnAdditionalInfo, _, err = optionalText("enAdditionalInfo"); err != nil {
		return EVSEDataRecord{}, err
	}
	entrance, ok, err := obj.Object("geoChargingPointEntrance")
	if err != nil {
		return EVSEDataRecord{}, parseError(typ, "geoChargingPointEntrance", err)
	}
	if ok {
		g, err := geo.ParseGeoCoordinatesJSON(entrance)
		if err != nil {
			return EVSEDataRecord{}, parseError(typ, "geoChargingPointEntrance", err)
		}
		b.GeoChargingPointEntrance = &g
	}
	flags := []struct {
		key string
		dst *bool
	}{
		{"isOpen24Hours", &b.IsOpen24Hours},
		{"isHubjectCompatible", &b.IsHubjectCompatible},
		{"dynamicInfoAvailable", &b.DynamicInfoAvailable},
	}
	for _, f := range flags {
		v, ok, err := obj.Boolean(f.key)
		if err != nil {
			return EVSEDataRecord{}, parseError(typ, f.key, err)
		}
		if ok {
			*f.dst = v
		}
	}
	if b.OpeningTime, _, err = optionalText("openingTime"); err != nil {
		return EVSEDataRecord{}, err
	}
	if text, ok, err = optionalText("hubOperatorId"); err != nil {
		return EVSEDataRecord{}, err
	} else if ok {
		if b.HubOperatorID, err = ids.ParseHubOperatorID(text); err != nil {
			return EVSEDataRecord{}, parseError(typ, "hubOperatorId", err)
		}
	}
	if text, ok, err = optionalText("clearinghouseId"); err != nil {
		return EVSEDataRecord{}, err
	} else if ok {
		if b.ClearingHouseID, err = ids.ParseClearingHouseID(text); err != nil {
			return EVSEDataRecord{}, parseError(typ, "clearinghouseId", err)
		}
	}
	r, err := b.Build()
	if err != nil {
		return EVSEDataRecord{}, parseError(typ, "", err)
	}
	return r, nil
}

// ParseEVSEDataRecordJSON reads the JSON form.
func ParseEVSEDataRecordJSON(obj wire.JSONObject, onError wire.ErrorHandler, custom wire.CustomJSONParser[EVSEDataRecord]) (EVSEDataRecord, error) {
	r, err := parseEVSEDataRecordJSON(obj)
	return finish(r, err, obj, onError, func(v EVSEDataRecord) EVSEDataRecord { return custom.Apply(obj, v) })
}

// TryParseEVSEDataRecordJSON is ParseEVSEDataRecordJSON reporting success as a bool.
func TryParseEVSEDataRecordJSON(obj wire.JSONObject, onError wire.ErrorHandler, custom wire.CustomJSONParser[EVSEDataRecord]) (EVSEDataRecord, bool) {
	r, err := ParseEVSEDataRecordJSON(obj, onError, custom)
	return r, err == nil
}

// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package message

import (
	"errors"
	"testing"

	"github.com/beevik/etree"
	"github.com/sirosfoundation/go-oicp/pkg/geo"
	"github.com/sirosfoundation/go-oicp/pkg/ids"
	"github.com/sirosfoundation/go-oicp/pkg/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullEVSEDataRecord(t *testing.T) EVSEDataRecord {
	t.Helper()
	entrance, err := geo.NewGeoCoordinates(52.5221, 13.4135)
	require.NoError(t, err)
	capacity := 2
	b := NewEVSEDataRecordBuilder(testEVSEID)
	b.DeltaType = DeltaTypeInsert
	b.LastUpdate = testTime(9, 30)
	b.ChargingStationID, err = ids.ParseChargingStationID("DE*GEF*S123")
	require.NoError(t, err)
	b.ChargingStationName = "Alexa"
	address := testAddress()
	b.Address = &address
	coordinates := testCoordinates(t)
	b.GeoCoordinates = &coordinates
	b.Plugs = PlugType2Outlet.With(PlugCCSCombo2PlugCableAttached)
	b.ChargingFacilities = []ChargingFacility{
		NewChargingFacility(WithPowerType(PowerTypeAC3Phase), WithVoltage(400), WithAmperage(32), WithPower(22)),
		NewChargingFacility(WithPowerType(PowerTypeDC), WithPower(150.1234)),
	}
	b.ChargingModes = ChargingModeMode3.With(ChargingModeMode4)
	b.AuthenticationModes = AuthNFCRFIDClassic.With(AuthPnC)
	b.MaxCapacity = &capacity
	b.PaymentOptions = PaymentContract
	b.ValueAddedServices = ServiceReservation.With(ServiceDynamicPricing)
	b.Accessibility = AccessibilityRestrictedAccess
	b.HotlinePhoneNumber = "+49 30 1234567"
	b.AdditionalInfo = "Level 2"
	b.GeoChargingPointEntrance = &entrance
	b.IsOpen24Hours = false
	b.OpeningTime = "Mo-Fr 08:00-20:00"
	b.HubOperatorID, err = ids.ParseHubOperatorID("DE*GEF")
	require.NoError(t, err)
	b.DynamicInfoAvailable = false
	r, err := b.Build()
	require.NoError(t, err)
	return r
}

func TestEVSEDataRecord_Defaults(t *testing.T) {
	r := testEVSEDataRecord(t, testEVSEID)
	assert.Equal(t, AccessibilityFreePubliclyAccessible, r.Accessibility())
	assert.True(t, r.IsOpen24Hours())
	assert.True(t, r.IsHubjectCompatible())
	assert.True(t, r.DynamicInfoAvailable())
	assert.Equal(t, DeltaTypeNone, r.DeltaType())
	_, ok := r.MaxCapacity()
	assert.False(t, ok)
	assert.Empty(t, r.ChargingFacilities())
}

func TestEVSEDataRecord_Invariants(t *testing.T) {
	newBuilder := func() *EVSEDataRecordBuilder {
		return testEVSEDataRecord(t, testEVSEID).ToBuilder()
	}

	b := newBuilder()
	b.Address = nil
	_, err := b.Build()
	require.Error(t, err)
	assert.Equal(t, "EVSEDataRecord: Address: mandatory field missing", err.Error())

	b = newBuilder()
	b.Address = &geo.Address{Country: "DEU"}
	_, err = b.Build()
	assert.ErrorIs(t, err, geo.ErrInvalidAddress)

	b = newBuilder()
	b.GeoCoordinates = nil
	_, err = b.Build()
	assert.ErrorIs(t, err, ErrMissingField)

	b = newBuilder()
	b.Plugs = 0
	_, err = b.Build()
	assert.ErrorIs(t, err, ErrEmptyCollection)

	b = newBuilder()
	b.AuthenticationModes = AuthenticationModesUnknown
	_, err = b.Build()
	assert.ErrorIs(t, err, ErrMissingField)

	b = newBuilder()
	b.HotlinePhoneNumber = "   "
	_, err = b.Build()
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "HotlinePhoneNumber", fe.Field)

	b = newBuilder()
	negative := -1
	b.MaxCapacity = &negative
	_, err = b.Build()
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestEVSEDataRecord_EqualityByID(t *testing.T) {
	a := testEVSEDataRecord(t, testEVSEID)
	b := fullEVSEDataRecord(t)
	assert.True(t, a.Equal(b))
	assert.Zero(t, a.Compare(b))

	c := testEVSEDataRecord(t, ids.MustParseEVSEID("DE*GEF*E123456789*2"))
	assert.False(t, a.Equal(c))
	assert.Negative(t, a.Compare(c))
}

func TestEVSEDataRecord_ToBuilderCopies(t *testing.T) {
	r := fullEVSEDataRecord(t)
	b := r.ToBuilder()
	*b.MaxCapacity = 99
	b.ChargingFacilities[0] = NewChargingFacility()

	v, _ := r.MaxCapacity()
	assert.Equal(t, 2, v)
	assert.Equal(t, PowerTypeAC3Phase, r.ChargingFacilities()[0].PowerType())

	rebuilt, err := r.ToBuilder().Build()
	require.NoError(t, err)
	assert.Equal(t, r, rebuilt)
}

func TestEVSEDataRecord_MetadataOnlyWhenRequested(t *testing.T) {
	r := fullEVSEDataRecord(t)

	plain := r.ToXML(false, nil)
	assert.Nil(t, plain.SelectAttr("deltaType"))
	assert.Nil(t, plain.SelectAttr("lastUpdate"))

	withMeta := r.ToXML(true, nil)
	assert.Equal(t, "insert", withMeta.SelectAttrValue("deltaType", ""))
	assert.Equal(t, "2024-03-14T09:30:00.250Z", withMeta.SelectAttrValue("lastUpdate", ""))

	obj := r.ToJSON(false, nil)
	assert.NotContains(t, obj, "deltaType")
	assert.NotContains(t, obj, "lastUpdate")
	obj = r.ToJSON(true, nil)
	assert.Equal(t, "insert", obj["deltaType"])
}

func TestEVSEDataRecord_XMLElementOrder(t *testing.T) {
	e := testEVSEDataRecord(t, testEVSEID).ToXML(false, nil)
	var tags []string
	for _, c := range e.ChildElements() {
		tags = append(tags, c.Tag)
	}
	assert.Equal(t, []string{
		"EvseId", "Address", "GeoCoordinates", "Plugs", "AuthenticationModes",
		"Accessibility", "HotlinePhoneNum", "IsOpen24Hours",
		"IsHubjectCompatible", "DynamicInfoAvailable",
	}, tags)
	assert.Equal(t, "EVSEData", e.Space)
}

func TestEVSEDataRecord_XMLRoundTrip(t *testing.T) {
	r := fullEVSEDataRecord(t)
	parsed, err := ParseEVSEDataRecordXML(reparseXML(t, r.ToXML(true, nil)), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, r, parsed)

	power, ok := parsed.ChargingFacilities()[1].Power()
	assert.True(t, ok)
	assert.Equal(t, 150.123, power)
}

func TestEVSEDataRecord_JSONRoundTrip(t *testing.T) {
	r := fullEVSEDataRecord(t)
	parsed, err := ParseEVSEDataRecordJSON(reparseJSON(t, r.ToJSON(true, nil)), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, r, parsed)
}

func TestEVSEDataRecord_ParseFailures(t *testing.T) {
	var errs []error
	e := testEVSEDataRecord(t, testEVSEID).ToXML(false, nil)
	plugs := wire.Child(e, wire.NsEVSEData, "Plugs")
	for _, c := range plugs.ChildElements() {
		c.SetText("Type 9 Hyperdrive")
	}
	_, ok := TryParseEVSEDataRecordXML(e, collectErrors(&errs), nil)
	assert.False(t, ok)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrUnknownValue)
	var pe *wire.ParseError
	require.True(t, errors.As(errs[0], &pe))
	assert.Equal(t, "EVSEDataRecord", pe.Type)
	assert.Equal(t, "Plugs", pe.Field)

	obj := testEVSEDataRecord(t, testEVSEID).ToJSON(false, nil)
	delete(obj, "hotlinePhoneNumber")
	_, ok = TryParseEVSEDataRecordJSON(obj, collectErrors(&errs), nil)
	assert.False(t, ok)
	require.Len(t, errs, 2)
	assert.ErrorIs(t, errs[1], ErrMissingField)
}

func TestEVSEDataRecord_CustomHooks(t *testing.T) {
	r := testEVSEDataRecord(t, testEVSEID)
	e := r.ToXML(false, func(_ EVSEDataRecord, e *etree.Element) *etree.Element {
		wire.AddText(e, wire.NsEVSEData, "Vendor", "acme")
		return e
	})

	calls := 0
	parsed, err := ParseEVSEDataRecordXML(e, nil, func(node *etree.Element, v EVSEDataRecord) EVSEDataRecord {
		calls++
		vendor, _ := wire.ChildText(node, wire.NsEVSEData, "Vendor")
		b := v.ToBuilder()
		b.AdditionalInfo = vendor
		out, err := b.Build()
		require.NoError(t, err)
		return out
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "acme", parsed.AdditionalInfo())
}

// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package message

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/sirosfoundation/go-oicp/pkg/ids"
	"github.com/sirosfoundation/go-oicp/pkg/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChargeDetailRecord(t *testing.T, opts ...ChargeDetailRecordOption) ChargeDetailRecord {
	t.Helper()
	r, err := NewChargeDetailRecord(testSessionID, testEVSEID, FromUID(testUID),
		testTime(10, 0), testTime(11, 30), opts...)
	require.NoError(t, err)
	return r
}

func TestChargeDetailRecord_RoundsDecimals(t *testing.T) {
	r := testChargeDetailRecord(t,
		WithMeterValues(100.0004, 112.34567, 105.5555, 108.1),
		WithConsumedEnergy(12.34567))

	energy, ok := r.ConsumedEnergy()
	require.True(t, ok)
	assert.Equal(t, "12.346", wire.FormatDecimal(energy))
	assert.InDelta(t, 12.346, energy, 1e-9)

	end, _ := r.MeterValueEnd()
	assert.InDelta(t, 112.346, end, 1e-9)
	start, _ := r.MeterValueStart()
	assert.InDelta(t, 100.0, start, 1e-9)

	between := r.MeterValuesInBetween()
	require.Len(t, between, 2)
	assert.InDelta(t, 105.556, between[0], 1e-9)
	assert.InDelta(t, 108.1, between[1], 1e-9)
}

func TestChargeDetailRecord_RoundsHalvesUp(t *testing.T) {
	r := testChargeDetailRecord(t,
		WithMeterValues(8.0125, 9.0005, 8.5005),
		WithConsumedEnergy(0.5005))

	energy, _ := r.ConsumedEnergy()
	assert.Equal(t, 0.501, energy)
	start, _ := r.MeterValueStart()
	assert.Equal(t, 8.013, start)
	end, _ := r.MeterValueEnd()
	assert.Equal(t, 9.001, end)
	assert.Equal(t, []float64{8.501}, r.MeterValuesInBetween())

	obj := r.ToJSON(nil)
	obj["consumedEnergy"] = json.Number("1.0005")
	parsed, err := ParseChargeDetailRecordJSON(reparseJSON(t, obj), nil, nil)
	require.NoError(t, err)
	energy, _ = parsed.ConsumedEnergy()
	assert.Equal(t, 1.001, energy)
}

func TestChargeDetailRecord_NullMeterValueFails(t *testing.T) {
	obj := testChargeDetailRecord(t).ToJSON(nil)
	obj["meterValuesInBetween"] = []any{json.Number("1.5"), nil}

	var errs []error
	_, ok := TryParseChargeDetailRecordJSON(obj, collectErrors(&errs), nil)
	assert.False(t, ok)
	require.Len(t, errs, 1)
	var pe *wire.ParseError
	require.ErrorAs(t, errs[0], &pe)
	assert.Equal(t, "meterValuesInBetween", pe.Field)
	assert.ErrorIs(t, errs[0], wire.ErrInvalidValue)
}

func TestChargeDetailRecord_SignatureTruncated(t *testing.T) {
	r := testChargeDetailRecord(t, WithMeteringSignature(strings.Repeat("s", 250)))
	assert.Len(t, r.MeteringSignature(), MaxMeteringSignatureLength)
}

func TestChargeDetailRecord_MandatoryFields(t *testing.T) {
	tests := []struct {
		name  string
		field string
		edit  func(b *ChargeDetailRecordBuilder)
	}{
		{"session id", "SessionID", func(b *ChargeDetailRecordBuilder) { b.SessionID = ids.SessionID{} }},
		{"evse id", "EvseID", func(b *ChargeDetailRecordBuilder) { b.EVSEID = ids.EVSEID{} }},
		{"identification", "Identification", func(b *ChargeDetailRecordBuilder) { b.Identification = nil }},
		{"empty identification", "Identification", func(b *ChargeDetailRecordBuilder) { b.Identification = &Identification{} }},
		{"session start", "SessionStart", func(b *ChargeDetailRecordBuilder) { b.SessionStart = time.Time{} }},
		{"session end", "SessionEnd", func(b *ChargeDetailRecordBuilder) { b.SessionEnd = time.Time{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testChargeDetailRecord(t).ToBuilder()
			tt.edit(b)
			_, err := b.Build()
			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.field, fe.Field)
			assert.ErrorIs(t, err, ErrMissingField)
		})
	}
}

func TestChargeDetailRecord_IdentityIsSessionID(t *testing.T) {
	a := testChargeDetailRecord(t, WithConsumedEnergy(1))
	b, err := NewChargeDetailRecord(testSessionID, ids.MustParseEVSEID("DE*GEF*E999*9"),
		FromRemoteIdentification(testEVCOID), testTime(1, 0), testTime(2, 0), WithConsumedEnergy(99))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Zero(t, a.Compare(b))

	c, err := NewChargeDetailRecord(ids.NewSessionID(), testEVSEID, FromUID(testUID), testTime(10, 0), testTime(11, 30))
	require.NoError(t, err)
	assert.False(t, a.Equal(c))
	assert.NotEqual(t, a.Hash(), c.Hash())
}

func TestChargeDetailRecord_XMLShape(t *testing.T) {
	r := testChargeDetailRecord(t, WithConsumedEnergy(7.5))
	e := r.ToXML(nil)
	assert.Equal(t, "Authorization:eRoamingChargeDetailRecord", e.FullTag())

	var tags []string
	for _, c := range e.ChildElements() {
		tags = append(tags, c.Tag)
	}
	assert.Equal(t, []string{"SessionID", "EvseID", "Identification", "SessionStart", "SessionEnd", "ConsumedEnergy"}, tags)

	energy, ok := wire.ChildText(e, wire.NsAuthorization, "ConsumedEnergy")
	require.True(t, ok)
	assert.Equal(t, "7.5", energy)
	start, _ := wire.ChildText(e, wire.NsAuthorization, "SessionStart")
	assert.Equal(t, "2024-03-14T10:00:00.250Z", start)
}

func TestChargeDetailRecord_RoundTrips(t *testing.T) {
	cpo, err := ids.ParseCPOPartnerSessionID("cpo-1")
	require.NoError(t, err)
	hub, err := ids.ParseHubOperatorID("DE*GEF")
	require.NoError(t, err)
	r := testChargeDetailRecord(t,
		WithChargingPeriod(testTime(10, 5), testTime(11, 25)),
		WithMeterValues(1000, 1012.5, 1004.25),
		WithConsumedEnergy(12.5),
		WithMeteringSignature("sig"),
		func(b *ChargeDetailRecordBuilder) {
			b.CPOPartnerSessionID = cpo
			b.HubOperatorID = hub
		})

	fromXML, err := ParseChargeDetailRecordXML(reparseXML(t, r.ToXML(nil)), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, r, fromXML)

	fromJSON, err := ParseChargeDetailRecordJSON(reparseJSON(t, r.ToJSON(nil)), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, r, fromJSON)
}

func TestChargeDetailRecord_ParseFailures(t *testing.T) {
	var errs []error
	e := testChargeDetailRecord(t).ToXML(nil)
	e.RemoveChild(wire.Child(e, wire.NsAuthorization, "Identification"))
	_, ok := TryParseChargeDetailRecordXML(e, collectErrors(&errs), nil)
	assert.False(t, ok)

	obj := testChargeDetailRecord(t).ToJSON(nil)
	obj["sessionEnd"] = "yesterday"
	_, ok = TryParseChargeDetailRecordJSON(obj, collectErrors(&errs), nil)
	assert.False(t, ok)

	require.Len(t, errs, 2)
	var pe *wire.ParseError
	require.ErrorAs(t, errs[0], &pe)
	assert.Equal(t, "ChargeDetailRecord", pe.Type)
	assert.Equal(t, "Identification", pe.Field)
	assert.ErrorIs(t, errs[1], wire.ErrInvalidValue)
}

func TestChargeDetailRecord_TimestampsKeepWirePrecision(t *testing.T) {
	start := time.Date(2024, 3, 14, 10, 0, 0, 987654321, time.UTC)
	end := start.Add(90*time.Minute + 111*time.Microsecond)
	r, err := NewChargeDetailRecord(testSessionID, testEVSEID, FromUID(testUID), start, end,
		WithChargingPeriod(start.Add(time.Nanosecond), end))
	require.NoError(t, err)
	assert.Equal(t, 987000000, r.SessionStart().Nanosecond())
	assert.Equal(t, start.Truncate(time.Millisecond), r.ChargingStart())

	fromXML, err := ParseChargeDetailRecordXML(reparseXML(t, r.ToXML(nil)), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, r, fromXML)

	fromJSON, err := ParseChargeDetailRecordJSON(reparseJSON(t, r.ToJSON(nil)), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, r, fromJSON)
}

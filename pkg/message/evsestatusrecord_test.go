// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package message

import (
	"testing"

	"github.com/sirosfoundation/go-oicp/pkg/ids"
	"github.com/sirosfoundation/go-oicp/pkg/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEVSEStatusRecord_ParseBareFragment(t *testing.T) {
	root, err := wire.ReadXML([]byte(
		`<EvseStatusRecord><EvseId>DE*GEF*123456789*1</EvseId><EvseStatus>Available</EvseStatus></EvseStatusRecord>`))
	require.NoError(t, err)

	r, err := ParseEVSEStatusRecordXML(root, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "DE*GEF*123456789*1", r.ID().String())
	assert.Equal(t, EVSEStatusAvailable, r.Status())
	assert.Equal(t, "DE*GEF*123456789*1 -> Available", r.String())
}

func TestEVSEStatusRecord_Build(t *testing.T) {
	_, err := NewEVSEStatusRecord(ids.EVSEID{}, EVSEStatusAvailable)
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = NewEVSEStatusRecord(testEVSEID, EVSEStatusUnspecified)
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "EvseStatus", fe.Field)

	r := testEVSEStatusRecord(t, testEVSEID.String(), EVSEStatusOccupied)
	b := r.ToBuilder()
	b.Status = EVSEStatusOutOfService
	changed, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, EVSEStatusOccupied, r.Status())
	assert.Equal(t, EVSEStatusOutOfService, changed.Status())
}

func TestEVSEStatusRecord_EqualityIncludesStatus(t *testing.T) {
	a := testEVSEStatusRecord(t, "DE*GEF*E1*1", EVSEStatusAvailable)
	b := testEVSEStatusRecord(t, "de*gef*e1*1", EVSEStatusAvailable)
	c := testEVSEStatusRecord(t, "DE*GEF*E1*1", EVSEStatusOccupied)
	d := testEVSEStatusRecord(t, "DE*GEF*E1*2", EVSEStatusAvailable)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Negative(t, a.Compare(c))
	assert.Negative(t, c.Compare(d))
}

func TestEVSEStatusRecord_RoundTrips(t *testing.T) {
	r := testEVSEStatusRecord(t, testEVSEID.String(), EVSEStatusReserved)

	e := r.ToXML(nil)
	assert.Equal(t, "EVSEStatus:EvseStatusRecord", e.FullTag())
	fromXML, err := ParseEVSEStatusRecordXML(reparseXML(t, e), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, r, fromXML)

	obj := r.ToJSON(nil)
	assert.Equal(t, wire.JSONObject{"evseId": testEVSEID.String(), "evseStatus": "Reserved"}, obj)
	fromJSON, err := ParseEVSEStatusRecordJSON(reparseJSON(t, obj), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, r, fromJSON)
}

func TestEVSEStatusRecord_ParseFailures(t *testing.T) {
	var errs []error
	_, ok := TryParseEVSEStatusRecordJSON(wire.JSONObject{"evseId": testEVSEID.String(), "evseStatus": "Melting"},
		collectErrors(&errs), nil)
	assert.False(t, ok)
	_, ok = TryParseEVSEStatusRecordJSON(wire.JSONObject{"evseStatus": "Available"}, collectErrors(&errs), nil)
	assert.False(t, ok)
	_, ok = TryParseEVSEStatusRecordXML(nil, collectErrors(&errs), nil)
	assert.False(t, ok)

	require.Len(t, errs, 3)
	assert.ErrorIs(t, errs[0], ErrUnknownValue)
	assert.ErrorIs(t, errs[1], wire.ErrMissingElement)
	assert.ErrorIs(t, errs[2], wire.ErrMissingElement)
}

// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package message

import (
	"strings"
	"testing"

	"github.com/sirosfoundation/go-oicp/pkg/ids"
	"github.com/sirosfoundation/go-oicp/pkg/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOperatorEVSEStatus(t *testing.T, name string, statuses ...EVSEStatusType) OperatorEVSEStatus {
	t.Helper()
	var records []EVSEStatusRecord
	for i, s := range statuses {
		records = append(records, testEVSEStatusRecord(t, "DE*GEF*E100*"+string(rune('1'+i)), s))
	}
	g, err := NewOperatorEVSEStatus(testOperatorID, name, records)
	require.NoError(t, err)
	return g
}

func TestOperatorEVSEData_Build(t *testing.T) {
	_, err := NewOperatorEVSEData(testOperatorID, "GEF", nil)
	assert.ErrorIs(t, err, ErrEmptyCollection)

	records := []EVSEDataRecord{testEVSEDataRecord(t, testEVSEID)}
	_, err = NewOperatorEVSEData(ids.OperatorID{}, "GEF", records)
	assert.ErrorIs(t, err, ErrMissingField)

	g, err := NewOperatorEVSEData(testOperatorID, "  "+strings.Repeat("ö", 150)+"  ", records)
	require.NoError(t, err)
	assert.Equal(t, MaxOperatorNameLength, len([]rune(g.OperatorName())))
	assert.Equal(t, 1, g.Len())

	records[0] = testEVSEDataRecord(t, ids.MustParseEVSEID("DE*GEF*E9*9"))
	assert.Equal(t, testEVSEID, g.Records()[0].ID())
}

func TestOperatorEVSEStatus_Build(t *testing.T) {
	_, err := NewOperatorEVSEStatus(testOperatorID, "GEF", []EVSEStatusRecord{})
	assert.ErrorIs(t, err, ErrEmptyCollection)

	g := testOperatorEVSEStatus(t, "GEF", EVSEStatusAvailable, EVSEStatusOccupied)
	assert.Equal(t, "DE*GEF (GEF): 2 records", g.String())
	assert.Equal(t, testOperatorID, g.OperatorID())
}

func TestOperatorGroups_ShallowEquality(t *testing.T) {
	a := testOperatorEVSEStatus(t, "GEF", EVSEStatusAvailable, EVSEStatusOccupied)
	b := testOperatorEVSEStatus(t, "GEF", EVSEStatusReserved, EVSEStatusUnknown)
	c := testOperatorEVSEStatus(t, "GEF", EVSEStatusAvailable)
	d := testOperatorEVSEStatus(t, "Other", EVSEStatusAvailable, EVSEStatusOccupied)

	assert.True(t, a.Equal(b), "records are not compared")
	assert.False(t, a.Equal(c))
	assert.Positive(t, a.Compare(c))
	assert.False(t, a.Equal(d))
	assert.Negative(t, a.Compare(d))
}

func TestOperatorEVSEStatus_DropsBadRecords(t *testing.T) {
	g := testOperatorEVSEStatus(t, "GEF", EVSEStatusAvailable, EVSEStatusOccupied)
	e := g.ToXML(nil)
	bad := e.ChildElements()[2]
	require.Equal(t, "EvseStatusRecord", bad.Tag)
	wire.Child(bad, wire.NsEVSEStatus, "EvseStatus").SetText("Melting")

	var errs []error
	parsed, err := ParseOperatorEVSEStatusXML(reparseXML(t, e), collectErrors(&errs), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, parsed.Len())
	assert.Equal(t, EVSEStatusOccupied, parsed.Records()[0].Status())
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrUnknownValue)
}

func TestOperatorEVSEStatus_EmptyAfterDropFails(t *testing.T) {
	g := testOperatorEVSEStatus(t, "GEF", EVSEStatusAvailable)
	obj := g.ToJSON(nil)
	records := obj["evseStatusRecord"].([]any)
	records[0].(wire.JSONObject)["evseStatus"] = "Melting"

	var errs []error
	_, ok := TryParseOperatorEVSEStatusJSON(reparseJSON(t, obj), collectErrors(&errs), nil)
	assert.False(t, ok)
	require.Len(t, errs, 2)
	assert.ErrorIs(t, errs[0], ErrUnknownValue)
	assert.ErrorIs(t, errs[1], ErrEmptyCollection)
}

func TestOperatorEVSEData_BadOperatorIDFails(t *testing.T) {
	g, err := NewOperatorEVSEData(testOperatorID, "GEF", []EVSEDataRecord{testEVSEDataRecord(t, testEVSEID)})
	require.NoError(t, err)
	e := g.ToXML(false, nil)
	wire.Child(e, wire.NsEVSEData, "OperatorID").SetText("not an operator")

	var errs []error
	_, ok := TryParseOperatorEVSEDataXML(e, collectErrors(&errs), nil)
	assert.False(t, ok)
	require.Len(t, errs, 1)
	var pe *wire.ParseError
	require.ErrorAs(t, errs[0], &pe)
	assert.Equal(t, "OperatorID", pe.Field)
}

func TestOperatorEVSEData_RoundTrips(t *testing.T) {
	records := []EVSEDataRecord{
		testEVSEDataRecord(t, testEVSEID),
		fullEVSEDataRecord(t),
	}
	g, err := NewOperatorEVSEData(testOperatorID, "GEF Charging", records)
	require.NoError(t, err)

	fromXML, err := ParseOperatorEVSEDataXML(reparseXML(t, g.ToXML(true, nil)), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, g, fromXML)

	fromJSON, err := ParseOperatorEVSEDataJSON(reparseJSON(t, g.ToJSON(true, nil)), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, g, fromJSON)
}

func TestOperatorEVSEStatus_RoundTrips(t *testing.T) {
	g := testOperatorEVSEStatus(t, "", EVSEStatusAvailable, EVSEStatusOutOfService)

	fromXML, err := ParseOperatorEVSEStatusXML(reparseXML(t, g.ToXML(nil)), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, g, fromXML)

	obj := g.ToJSON(nil)
	assert.NotContains(t, obj, "operatorName")
	fromJSON, err := ParseOperatorEVSEStatusJSON(reparseJSON(t, obj), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, g, fromJSON)
}

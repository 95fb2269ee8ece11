// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package message

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/sirosfoundation/go-oicp/pkg/geo"
	"github.com/sirosfoundation/go-oicp/pkg/ids"
	"github.com/sirosfoundation/go-oicp/pkg/wire"
	"github.com/stretchr/testify/require"
)

var (
	testEVSEID     = ids.MustParseEVSEID("DE*GEF*E123456789*1")
	testOperatorID = ids.MustParseOperatorID("DE*GEF")
	testEVCOID     = ids.MustParseEVCOID("DE-GDF-C12345678-X")
	testUID        = ids.MustParseUID("AABBCCDD")
	testSessionID  = ids.MustParseSessionID("b2688855-7f00-0002-6d8e-48d883f6abb6")
)

func testAddress() geo.Address {
	return geo.Address{
		Country:     "DEU",
		City:        "Berlin",
		Street:      "Alexanderplatz",
		PostalCode:  "10178",
		HouseNumber: "1",
	}
}

func testCoordinates(t *testing.T) geo.GeoCoordinates {
	t.Helper()
	g, err := geo.NewGeoCoordinates(52.5219, 13.4132)
	require.NoError(t, err)
	return g
}

func testEVSEDataRecord(t *testing.T, id ids.EVSEID, opts ...EVSEDataRecordOption) EVSEDataRecord {
	t.Helper()
	r, err := NewEVSEDataRecord(id, testAddress(), testCoordinates(t),
		PlugType2Outlet, AuthNFCRFIDClassic.With(AuthREMOTE), "+49 30 1234567", opts...)
	require.NoError(t, err)
	return r
}

func testEVSEStatusRecord(t *testing.T, id string, status EVSEStatusType) EVSEStatusRecord {
	t.Helper()
	r, err := NewEVSEStatusRecord(ids.MustParseEVSEID(id), status)
	require.NoError(t, err)
	return r
}

func testTime(hour, minute int) time.Time {
	return time.Date(2024, 3, 14, hour, minute, 0, 250*int(time.Millisecond), time.UTC)
}

// collectErrors returns an ErrorHandler appending to errs.
func collectErrors(errs *[]error) wire.ErrorHandler {
	return func(_ time.Time, _ any, err error) {
		*errs = append(*errs, err)
	}
}

// reparseXML writes e as a document and reads it back, so that namespace
// declarations are exercised.
func reparseXML(t *testing.T, e *etree.Element) *etree.Element {
	t.Helper()
	data, err := wire.WriteXML(e, true)
	require.NoError(t, err)
	root, err := wire.ReadXML(data)
	require.NoError(t, err)
	return root
}

// reparseJSON marshals obj and decodes it again.
func reparseJSON(t *testing.T, obj wire.JSONObject) wire.JSONObject {
	t.Helper()
	data, err := obj.Marshal(false)
	require.NoError(t, err)
	out, err := wire.ParseJSONObject(data)
	require.NoError(t, err)
	return out
}

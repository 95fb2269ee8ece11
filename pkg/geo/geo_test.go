// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-oicp/pkg/wire"
)

func testAddress() Address {
	return Address{
		Country:     "DEU",
		City:        "Jena",
		Street:      "Biberweg",
		PostalCode:  "07749",
		HouseNumber: "18",
		TimeZone:    "UTC+01:00",
	}
}

func TestAddress_Validate(t *testing.T) {
	assert.NoError(t, testAddress().Validate())

	a := testAddress()
	a.Country = "DE"
	assert.ErrorIs(t, a.Validate(), ErrInvalidAddress)

	a = testAddress()
	a.Street = " "
	assert.ErrorIs(t, a.Validate(), ErrInvalidAddress)

	assert.True(t, Address{}.IsZero())
}

func TestAddress_XMLRoundTrip(t *testing.T) {
	a := testAddress()
	e := a.ToXML(wire.NsEVSEData)
	assert.Equal(t, "EVSEData:Address", e.FullTag())

	var tags []string
	for _, c := range e.ChildElements() {
		tags = append(tags, c.Tag)
	}
	assert.Equal(t, []string{"Country", "City", "Street", "PostalCode", "HouseNum", "TimeZone"}, tags)

	back, err := ParseAddressXML(e)
	require.NoError(t, err)
	assert.Equal(t, a, back)
}

func TestAddress_JSONRoundTrip(t *testing.T) {
	a := testAddress()
	back, err := ParseAddressJSON(a.ToJSON())
	require.NoError(t, err)
	assert.Equal(t, a, back)

	_, err = ParseAddressJSON(wire.JSONObject{"country": "DEU"})
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestGeoCoordinates_Validate(t *testing.T) {
	_, err := NewGeoCoordinates(91, 0)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
	_, err = NewGeoCoordinates(0, -181)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
}

func TestGeoCoordinates_XMLFormats(t *testing.T) {
	g, err := NewGeoCoordinates(50.930431, 11.588372)
	require.NoError(t, err)

	e := g.ToXML(wire.NsEVSEData, "GeoCoordinates")
	lat, ok := wire.ChildText(wire.Child(e, wire.NsCommonTypes, "DecimalDegree"), wire.NsCommonTypes, "Latitude")
	require.True(t, ok)
	assert.Equal(t, "50.930431", lat)

	back, err := ParseGeoCoordinatesXML(e)
	require.NoError(t, err)
	assert.True(t, g.Equal(back))

	g.Format = FormatGoogle
	e = g.ToXML(wire.NsEVSEData, "GeoCoordinates")
	text, ok := wire.ChildText(wire.Child(e, wire.NsCommonTypes, "Google"), wire.NsCommonTypes, "Coordinates")
	require.True(t, ok)
	assert.Equal(t, "50.930431 11.588372", text)

	back, err = ParseGeoCoordinatesXML(e)
	require.NoError(t, err)
	assert.Equal(t, g, back)
}

func TestGeoCoordinates_JSONRoundTrip(t *testing.T) {
	g, err := NewGeoCoordinates(-33.5, 151.25)
	require.NoError(t, err)

	back, err := ParseGeoCoordinatesJSON(g.ToJSON())
	require.NoError(t, err)
	assert.Equal(t, g, back)

	_, err = ParseGeoCoordinatesJSON(wire.JSONObject{})
	assert.ErrorIs(t, err, wire.ErrMissingElement)
}

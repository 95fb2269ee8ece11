// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package geo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/sirosfoundation/go-oicp/pkg/wire"
)

// ErrInvalidCoordinates reports a latitude or longitude out of range.
var ErrInvalidCoordinates = errors.New("invalid coordinates")

// Format selects the wire rendering of coordinates.
type Format int

const (
	// FormatDecimalDegree renders Latitude and Longitude elements.
	FormatDecimalDegree Format = iota
	// FormatGoogle renders a single "lat lon" Coordinates element.
	FormatGoogle
)

// GeoCoordinates is a WGS84 position.
type GeoCoordinates struct {
	Latitude  float64
	Longitude float64
	Format    Format
}

// NewGeoCoordinates validates and returns a decimal degree position.
func NewGeoCoordinates(latitude, longitude float64) (GeoCoordinates, error) {
	g := GeoCoordinates{Latitude: latitude, Longitude: longitude}
	return g, g.Validate()
}

// Validate checks the coordinate ranges.
func (g GeoCoordinates) Validate() error {
	if math.IsNaN(g.Latitude) || g.Latitude < -90 || g.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v", ErrInvalidCoordinates, g.Latitude)
	}
	if math.IsNaN(g.Longitude) || g.Longitude < -180 || g.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v", ErrInvalidCoordinates, g.Longitude)
	}
	return nil
}

// Equal compares positions, ignoring the wire format.
func (g GeoCoordinates) Equal(other GeoCoordinates) bool {
	return g.Latitude == other.Latitude && g.Longitude == other.Longitude
}

func (g GeoCoordinates) String() string {
	return formatDegree(g.Latitude) + " " + formatDegree(g.Longitude)
}

// Coordinates use six fraction digits, not the three used for metering.
func formatDegree(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e6)/1e6, 'f', 6, 64)
}

// ToXML renders <parentNS:local> holding the coordinates in g's format.
func (g GeoCoordinates) ToXML(parentNS, local string) *etree.Element {
	e := wire.NewElement(parentNS, local)
	switch g.Format {
	case FormatGoogle:
		google := wire.AddElement(e, wire.NsCommonTypes, "Google")
		wire.AddText(google, wire.NsCommonTypes, "Coordinates", g.String())
	default:
		dd := wire.AddElement(e, wire.NsCommonTypes, "DecimalDegree")
		wire.AddText(dd, wire.NsCommonTypes, "Latitude", formatDegree(g.Latitude))
		wire.AddText(dd, wire.NsCommonTypes, "Longitude", formatDegree(g.Longitude))
	}
	return e
}

// ParseGeoCoordinatesXML reads a coordinates element in either format.
func ParseGeoCoordinatesXML(e *etree.Element) (GeoCoordinates, error) {
	if e == nil {
		return GeoCoordinates{}, wire.ErrMissingElement
	}
	if dd := wire.Child(e, wire.NsCommonTypes, "DecimalDegree"); dd != nil {
		lat, err := requiredDegree(dd, "Latitude")
		if err != nil {
			return GeoCoordinates{}, err
		}
		lon, err := requiredDegree(dd, "Longitude")
		if err != nil {
			return GeoCoordinates{}, err
		}
		return NewGeoCoordinates(lat, lon)
	}
	if google := wire.Child(e, wire.NsCommonTypes, "Google"); google != nil {
		text, err := wire.RequiredText(google, wire.NsCommonTypes, "Coordinates")
		if err != nil {
			return GeoCoordinates{}, err
		}
		return parseGoogle(text)
	}
	return GeoCoordinates{}, fmt.Errorf("%w: no DecimalDegree or Google coordinates", wire.ErrMissingElement)
}

func requiredDegree(e *etree.Element, local string) (float64, error) {
	text, err := wire.RequiredText(e, wire.NsCommonTypes, local)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", local, err)
	}
	return wire.ParseDecimal(text)
}

func parseGoogle(text string) (GeoCoordinates, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return GeoCoordinates{}, fmt.Errorf("%w: google coordinates %q", ErrInvalidCoordinates, text)
	}
	lat, err := wire.ParseDecimal(fields[0])
	if err != nil {
		return GeoCoordinates{}, err
	}
	lon, err := wire.ParseDecimal(fields[1])
	if err != nil {
		return GeoCoordinates{}, err
	}
	g, err := NewGeoCoordinates(lat, lon)
	g.Format = FormatGoogle
	return g, err
}

// ToJSON renders the coordinates as a JSON object.
func (g GeoCoordinates) ToJSON() wire.JSONObject {
	if g.Format == FormatGoogle {
		return wire.JSONObject{"google": wire.JSONObject{"coordinates": g.String()}}
	}
	return wire.JSONObject{"decimalDegree": wire.JSONObject{
		"latitude":  formatDegree(g.Latitude),
		"longitude": formatDegree(g.Longitude),
	}}
}

// ParseGeoCoordinatesJSON reads a coordinates object in either format.
func ParseGeoCoordinatesJSON(obj wire.JSONObject) (GeoCoordinates, error) {
	if obj == nil {
		return GeoCoordinates{}, wire.ErrMissingElement
	}
	if dd, ok, err := obj.Object("decimalDegree"); err != nil {
		return GeoCoordinates{}, err
	} else if ok {
		lat, present, err := dd.Number("latitude")
		if err != nil {
			return GeoCoordinates{}, err
		}
		if !present {
			return GeoCoordinates{}, fmt.Errorf("latitude: %w", wire.ErrMissingElement)
		}
		lon, present, err := dd.Number("longitude")
		if err != nil {
			return GeoCoordinates{}, err
		}
		if !present {
			return GeoCoordinates{}, fmt.Errorf("longitude: %w", wire.ErrMissingElement)
		}
		return NewGeoCoordinates(lat, lon)
	}
	if google, ok, err := obj.Object("google"); err != nil {
		return GeoCoordinates{}, err
	} else if ok {
		text, err := google.RequiredText("coordinates")
		if err != nil {
			return GeoCoordinates{}, err
		}
		return parseGoogle(text)
	}
	return GeoCoordinates{}, fmt.Errorf("%w: no decimalDegree or google coordinates", wire.ErrMissingElement)
}

// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package geo

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/beevik/etree"

	"github.com/sirosfoundation/go-oicp/pkg/wire"
)

var countryPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// ErrInvalidAddress reports an address missing a mandatory part.
var ErrInvalidAddress = errors.New("invalid address")

// Address is a postal address. Country is an ISO 3166-1 alpha-3 code.
type Address struct {
	Country     string
	City        string
	Street      string
	PostalCode  string
	HouseNumber string
	Floor       string
	Region      string
	TimeZone    string
}

// Validate checks the mandatory parts.
func (a Address) Validate() error {
	if !countryPattern.MatchString(a.Country) {
		return fmt.Errorf("%w: country %q", ErrInvalidAddress, a.Country)
	}
	if strings.TrimSpace(a.City) == "" {
		return fmt.Errorf("%w: city missing", ErrInvalidAddress)
	}
	if strings.TrimSpace(a.Street) == "" {
		return fmt.Errorf("%w: street missing", ErrInvalidAddress)
	}
	return nil
}

// IsZero reports whether no part of the address is set.
func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) String() string {
	parts := []string{strings.TrimSpace(a.Street + " " + a.HouseNumber)}
	parts = append(parts, strings.TrimSpace(a.PostalCode+" "+a.City), a.Country)
	return strings.Join(parts, ", ")
}

// ToXML renders the address as <parentNS:Address>.
func (a Address) ToXML(parentNS string) *etree.Element {
	e := wire.NewElement(parentNS, "Address")
	wire.AddText(e, wire.NsCommonTypes, "Country", a.Country)
	wire.AddText(e, wire.NsCommonTypes, "City", a.City)
	wire.AddText(e, wire.NsCommonTypes, "Street", a.Street)
	wire.AddOptionalText(e, wire.NsCommonTypes, "PostalCode", a.PostalCode)
	wire.AddOptionalText(e, wire.NsCommonTypes, "HouseNum", a.HouseNumber)
	wire.AddOptionalText(e, wire.NsCommonTypes, "Floor", a.Floor)
	wire.AddOptionalText(e, wire.NsCommonTypes, "Region", a.Region)
	wire.AddOptionalText(e, wire.NsCommonTypes, "TimeZone", a.TimeZone)
	return e
}

// ParseAddressXML reads an address element.
func ParseAddressXML(e *etree.Element) (Address, error) {
	if e == nil {
		return Address{}, wire.ErrMissingElement
	}
	text := func(local string) string {
		s, _ := wire.ChildText(e, wire.NsCommonTypes, local)
		return s
	}
	a := Address{
		Country:     strings.ToUpper(text("Country")),
		City:        text("City"),
		Street:      text("Street"),
		PostalCode:  text("PostalCode"),
		HouseNumber: text("HouseNum"),
		Floor:       text("Floor"),
		Region:      text("Region"),
		TimeZone:    text("TimeZone"),
	}
	if err := a.Validate(); err != nil {
		return Address{}, err
	}
	return a, nil
}

// ToJSON renders the address as a JSON object.
func (a Address) ToJSON() wire.JSONObject {
	obj := wire.JSONObject{
		"country": a.Country,
		"city":    a.City,
		"street":  a.Street,
	}
	obj.SetOptional("postalCode", a.PostalCode)
	obj.SetOptional("houseNumber", a.HouseNumber)
	obj.SetOptional("floor", a.Floor)
	obj.SetOptional("region", a.Region)
	obj.SetOptional("timeZone", a.TimeZone)
	return obj
}

// ParseAddressJSON reads an address object.
func ParseAddressJSON(obj wire.JSONObject) (Address, error) {
	if obj == nil {
		return Address{}, wire.ErrMissingElement
	}
	var a Address
	fields := []struct {
		key string
		dst *string
	}{
		{"country", &a.Country},
		{"city", &a.City},
		{"street", &a.Street},
		{"postalCode", &a.PostalCode},
		{"houseNumber", &a.HouseNumber},
		{"floor", &a.Floor},
		{"region", &a.Region},
		{"timeZone", &a.TimeZone},
	}
	for _, f := range fields {
		s, _, err := obj.Text(f.key)
		if err != nil {
			return Address{}, err
		}
		*f.dst = s
	}
	a.Country = strings.ToUpper(a.Country)
	if err := a.Validate(); err != nil {
		return Address{}, err
	}
	return a, nil
}

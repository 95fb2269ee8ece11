// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package message

import (
	"fmt"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/sirosfoundation/go-oicp/pkg/ids"
	"github.com/sirosfoundation/go-oicp/pkg/wire"
)

// MaxPrintedNumberLength bounds RFIDIdentification.PrintedNumber.
const MaxPrintedNumberLength = 150

// RFIDIdentification describes an RFID card in full.
type RFIDIdentification struct {
	uid           ids.UID
	rfidType      RFIDType
	evcoID        ids.EVCOID
	printedNumber string
	expiryDate    time.Time
}

// RFIDOption sets an optional RFIDIdentification field.
type RFIDOption func(*RFIDIdentification)

// WithRFIDEvcoID attaches the contract the card belongs to.
func WithRFIDEvcoID(id ids.EVCOID) RFIDOption {
	return func(r *RFIDIdentification) { r.evcoID = id }
}

// WithPrintedNumber sets the number printed on the card. Longer values are
// cut to MaxPrintedNumberLength characters.
func WithPrintedNumber(s string) RFIDOption {
	return func(r *RFIDIdentification) {
		r.printedNumber = wire.Truncate(strings.TrimSpace(s), MaxPrintedNumberLength)
	}
}

// WithExpiryDate sets the card expiry.
func WithExpiryDate(t time.Time) RFIDOption {
	return func(r *RFIDIdentification) { r.expiryDate = wire.NormalizeTimestamp(t) }
}

// NewRFIDIdentification creates an RFIDIdentification.
func NewRFIDIdentification(uid ids.UID, rfidType RFIDType, opts ...RFIDOption) (RFIDIdentification, error) {
	const typ = "RFIDIdentification"
	if uid.IsZero() {
		return RFIDIdentification{}, fieldError(typ, "UID", ErrMissingField)
	}
	if rfidTypes.name(rfidType) == "" {
		return RFIDIdentification{}, fieldError(typ, "RFIDType", ErrMissingField)
	}
	r := RFIDIdentification{uid: uid, rfidType: rfidType}
	for _, opt := range opts {
		opt(&r)
	}
	return r, nil
}

func (r RFIDIdentification) UID() ids.UID { return r.uid }
func (r RFIDIdentification) RFIDType() RFIDType { return r.rfidType }
func (r RFIDIdentification) EvcoID() ids.EVCOID { return r.evcoID }
func (r RFIDIdentification) PrintedNumber() string { return r.printedNumber }
func (r RFIDIdentification) ExpiryDate() time.Time { return r.expiryDate }

// Equal compares all fields. UID and printed number ignore case.
func (r RFIDIdentification) Equal(other RFIDIdentification) bool {
	return r.Compare(other) == 0
}

// Compare orders by UID, RFID type, EVCO id, printed number and expiry.
func (r RFIDIdentification) Compare(other RFIDIdentification) int {
	if c := r.uid.Compare(other.uid); c != 0 {
		return c
	}
	if r.rfidType != other.rfidType {
		if r.rfidType < other.rfidType {
			return -1
		}
		return 1
	}
	if c := r.evcoID.Compare(other.evcoID); c != 0 {
		return c
	}
	if c := strings.Compare(strings.ToUpper(r.printedNumber), strings.ToUpper(other.printedNumber)); c != 0 {
		return c
	}
	return r.expiryDate.Compare(other.expiryDate)
}

func (r RFIDIdentification) String() string {
	s := fmt.Sprintf("%s (%s)", r.uid, r.rfidType)
	if !r.evcoID.IsZero() {
		s += ", " + r.evcoID.String()
	}
	return s
}

// ToXML renders a CommonTypes:RFIDIdentification element.
func (r RFIDIdentification) ToXML(custom wire.CustomXMLSerializer[RFIDIdentification]) *etree.Element {
	e := wire.NewElement(wire.NsCommonTypes, "RFIDIdentification")
	wire.AddText(e, wire.NsCommonTypes, "UID", r.uid.String())
	if !r.evcoID.IsZero() {
		wire.AddText(e, wire.NsCommonTypes, "EvcoID", r.evcoID.String())
	}
	wire.AddText(e, wire.NsCommonTypes, "RFIDType", r.rfidType.String())
	wire.AddOptionalText(e, wire.NsCommonTypes, "PrintedNumber", r.printedNumber)
	if !r.expiryDate.IsZero() {
		wire.AddText(e, wire.NsCommonTypes, "ExpiryDate", wire.FormatTimestamp(r.expiryDate))
	}
	return custom.Apply(r, e)
}

func parseRFIDIdentificationXML(e *etree.Element) (RFIDIdentification, error) {
	const typ = "RFIDIdentification"
	if !wire.Is(e, wire.NsCommonTypes, "RFIDIdentification") {
		return RFIDIdentification{}, parseError(typ, "", wire.ErrUnexpectedElement)
	}
	text, err := wire.RequiredText(e, wire.NsCommonTypes, "UID")
	if err != nil {
		return RFIDIdentification{}, parseError(typ, "UID", err)
	}
	uid, err := ids.ParseUID(text)
	if err != nil {
		return RFIDIdentification{}, parseError(typ, "UID", err)
	}
	text, err = wire.RequiredText(e, wire.NsCommonTypes, "RFIDType")
	if err != nil {
		return RFIDIdentification{}, parseError(typ, "RFIDType", err)
	}
	rfidType, err := ParseRFIDType(text)
	if err != nil {
		return RFIDIdentification{}, parseError(typ, "RFIDType", err)
	}
	var opts []RFIDOption
	if text, ok := wire.ChildText(e, wire.NsCommonTypes, "EvcoID"); ok {
		evco, err := ids.ParseEVCOID(text)
		if err != nil {
			return RFIDIdentification{}, parseError(typ, "EvcoID", err)
		}
		opts = append(opts, WithRFIDEvcoID(evco))
	}
	if text, ok := wire.ChildText(e, wire.NsCommonTypes, "PrintedNumber"); ok {
		opts = append(opts, WithPrintedNumber(text))
	}
	if text, ok := wire.ChildText(e, wire.NsCommonTypes, "ExpiryDate"); ok {
		t, err := wire.ParseTimestamp(text)
		if err != nil {
			return RFIDIdentification{}, parseError(typ, "ExpiryDate", err)
		}
		opts = append(opts, WithExpiryDate(t))
	}
	r, err := NewRFIDIdentification(uid, rfidType, opts...)
	if err != nil {
		return RFIDIdentification{}, parseError(typ, "", err)
	}
	return r, nil
}

// ParseRFIDIdentificationXML reads a CommonTypes:RFIDIdentification element.
func ParseRFIDIdentificationXML(e *etree.Element, onError wire.ErrorHandler, custom wire.CustomXMLParser[RFIDIdentification]) (RFIDIdentification, error) {
	r, err := parseRFIDIdentificationXML(e)
	return finish(r, err, e, onError, func(v RFIDIdentification) RFIDIdentification { return custom.Apply(e, v) })
}

// TryParseRFIDIdentificationXML is ParseRFIDIdentificationXML reporting success as a bool.
func TryParseRFIDIdentificationXML(e *etree.Element, onError wire.ErrorHandler, custom wire.CustomXMLParser[RFIDIdentification]) (RFIDIdentification, bool) {
	r, err := ParseRFIDIdentificationXML(e, onError, custom)
	return r, err == nil
}

// ToJSON renders the JSON form.
func (r RFIDIdentification) ToJSON(custom wire.CustomJSONSerializer[RFIDIdentification]) wire.JSONObject {
	obj := wire.JSONObject{
		"uid":      r.uid.String(),
		"rfidType": r.rfidType.String(),
	}
	if !r.evcoID.IsZero() {
		obj["evcoId"] = r.evcoID.String()
	}
	obj.SetOptional("printedNumber", r.printedNumber)
	if !r.expiryDate.IsZero() {
		obj["expiryDate"] = wire.FormatTimestamp(r.expiryDate)
	}
	return custom.Apply(r, obj)
}

func parseRFIDIdentificationJSON(obj wire.JSONObject) (RFIDIdentification, error) {
	const typ = "RFIDIdentification"
	text, err := obj.RequiredText("uid")
	if err != nil {
		return RFIDIdentification{}, parseError(typ, "uid", err)
	}
	uid, err := ids.ParseUID(text)
	if err != nil {
		return RFIDIdentification{}, parseError(typ, "uid", err)
	}
	text, err = obj.RequiredText("rfidType")
	if err != nil {
		return RFIDIdentification{}, parseError(typ, "rfidType", err)
	}
	rfidType, err := ParseRFIDType(text)
	if err != nil {
		return RFIDIdentification{}, parseError(typ, "rfidType", err)
	}
	var opts []RFIDOption
	text, ok, err := obj.Text("evcoId")
	if err != nil {
		return RFIDIdentification{}, parseError(typ, "evcoId", err)
	}
	if ok {
		evco, err := ids.ParseEVCOID(text)
		if err != nil {
			return RFIDIdentification{}, parseError(typ, "evcoId", err)
		}
		opts = append(opts, WithRFIDEvcoID(evco))
	}
	text, ok, err = obj.Text("printedNumber")
	if err != nil {
		return RFIDIdentification{}, parseError(typ, "printedNumber", err)
	}
	if ok {
		opts = append(opts, WithPrintedNumber(text))
	}
	text, ok, err = obj.Text("expiryDate")
	if err != nil {
		return RFIDIdentification{}, parseError(typ, "expiryDate", err)
	}
	if ok {
		t, err := wire.ParseTimestamp(text)
		if err != nil {
			return RFIDIdentification{}, parseError(typ, "expiryDate", err)
		}
		opts = append(opts, WithExpiryDate(t))
	}
	r, err := NewRFIDIdentification(uid, rfidType, opts...)
	if err != nil {
		return RFIDIdentification{}, parseError(typ, "", err)
	}
	return r, nil
}

// ParseRFIDIdentificationJSON reads the JSON form.
func ParseRFIDIdentificationJSON(obj wire.JSONObject, onError wire.ErrorHandler, custom wire.CustomJSONParser[RFIDIdentification]) (RFIDIdentification, error) {
	r, err := parseRFIDIdentificationJSON(obj)
	return finish(r, err, obj, onError, func(v RFIDIdentification) RFIDIdentification { return custom.Apply(obj, v) })
}

// TryParseRFIDIdentificationJSON is ParseRFIDIdentificationJSON reporting success as a bool.
func TryParseRFIDIdentificationJSON(obj wire.JSONObject, onError wire.ErrorHandler, custom wire.CustomJSONParser[RFIDIdentification]) (RFIDIdentification, bool) {
	r, err := ParseRFIDIdentificationJSON(obj, onError, custom)
	return r, err == nil
}

// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package message

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/sirosfoundation/go-oicp/pkg/ids"
	"github.com/sirosfoundation/go-oicp/pkg/wire"
)

// HashedPIN is a PIN digest with the algorithm that produced it.
type HashedPIN struct {
	Value    string
	Function HashFunction
	Salt     string
}

// QRCodeIdentification identifies a driver by contract id and PIN. Exactly
// one of PIN and HashedPIN is set.
type QRCodeIdentification struct {
	evcoID    ids.EVCOID
	pin       string
	hashedPIN *HashedPIN
}

// NewQRCodeIdentificationWithPIN creates a QR code identification carrying
// a plain PIN.
func NewQRCodeIdentificationWithPIN(evcoID ids.EVCOID, pin string) (QRCodeIdentification, error) {
	const typ = "QRCodeIdentification"
	if evcoID.IsZero() {
		return QRCodeIdentification{}, fieldError(typ, "EvcoID", ErrMissingField)
	}
	pin = strings.TrimSpace(pin)
	if pin == "" {
		return QRCodeIdentification{}, fieldError(typ, "PIN", ErrMissingField)
	}
	return QRCodeIdentification{evcoID: evcoID, pin: pin}, nil
}

// NewQRCodeIdentificationWithHashedPIN creates a QR code identification
// carrying a hashed PIN.
func NewQRCodeIdentificationWithHashedPIN(evcoID ids.EVCOID, hashed HashedPIN) (QRCodeIdentification, error) {
	const typ = "QRCodeIdentification"
	if evcoID.IsZero() {
		return QRCodeIdentification{}, fieldError(typ, "EvcoID", ErrMissingField)
	}
	hashed.Value = strings.TrimSpace(hashed.Value)
	if hashed.Value == "" {
		return QRCodeIdentification{}, fieldError(typ, "HashedPIN", ErrMissingField)
	}
	return QRCodeIdentification{evcoID: evcoID, hashedPIN: &hashed}, nil
}

func (q QRCodeIdentification) EvcoID() ids.EVCOID { return q.evcoID }

// PIN returns the plain PIN and whether one is set.
func (q QRCodeIdentification) PIN() (string, bool) { return q.pin, q.pin != "" }

// HashedPIN returns the hashed PIN and whether one is set.
func (q QRCodeIdentification) HashedPIN() (HashedPIN, bool) {
	if q.hashedPIN == nil {
		return HashedPIN{}, false
	}
	return *q.hashedPIN, true
}

// Equal compares contract id and PIN data.
func (q QRCodeIdentification) Equal(other QRCodeIdentification) bool {
	return q.Compare(other) == 0
}

// Compare orders by EVCO id, then PIN, then hashed PIN value, function and salt.
func (q QRCodeIdentification) Compare(other QRCodeIdentification) int {
	if c := q.evcoID.Compare(other.evcoID); c != 0 {
		return c
	}
	if c := strings.Compare(q.pin, other.pin); c != 0 {
		return c
	}
	a, aok := q.HashedPIN()
	b, bok := other.HashedPIN()
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	}
	if c := strings.Compare(a.Value, b.Value); c != 0 {
		return c
	}
	if a.Function != b.Function {
		if a.Function < b.Function {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Salt, b.Salt)
}

func (q QRCodeIdentification) String() string {
	if q.hashedPIN != nil {
		return q.evcoID.String() + " (hashed PIN, " + q.hashedPIN.Function.String() + ")"
	}
	return q.evcoID.String() + " (PIN)"
}

// ToXML renders a CommonTypes:QRCodeIdentification element.
func (q QRCodeIdentification) ToXML(custom wire.CustomXMLSerializer[QRCodeIdentification]) *etree.Element {
	e := wire.NewElement(wire.NsCommonTypes, "QRCodeIdentification")
	wire.AddText(e, wire.NsCommonTypes, "EvcoID", q.evcoID.String())
	if q.pin != "" {
		wire.AddText(e, wire.NsCommonTypes, "PIN", q.pin)
	} else if q.hashedPIN != nil {
		h := wire.AddElement(e, wire.NsCommonTypes, "HashedPIN")
		wire.AddText(h, wire.NsCommonTypes, "Value", q.hashedPIN.Value)
		wire.AddText(h, wire.NsCommonTypes, "Function", q.hashedPIN.Function.String())
		wire.AddOptionalText(h, wire.NsCommonTypes, "Salt", q.hashedPIN.Salt)
	}
	return custom.Apply(q, e)
}

func parseQRCodeIdentificationXML(e *etree.Element) (QRCodeIdentification, error) {
	const typ = "QRCodeIdentification"
	if !wire.Is(e, wire.NsCommonTypes, "QRCodeIdentification") {
		return QRCodeIdentification{}, parseError(typ, "", wire.ErrUnexpectedElement)
	}
	text, err := wire.RequiredText(e, wire.NsCommonTypes, "EvcoID")
	if err != nil {
		return QRCodeIdentification{}, parseError(typ, "EvcoID", err)
	}
	evco, err := ids.ParseEVCOID(text)
	if err != nil {
		return QRCodeIdentification{}, parseError(typ, "EvcoID", err)
	}
	if pin, ok := wire.ChildText(e, wire.NsCommonTypes, "PIN"); ok {
		q, err := NewQRCodeIdentificationWithPIN(evco, pin)
		if err != nil {
			return QRCodeIdentification{}, parseError(typ, "PIN", err)
		}
		return q, nil
	}
	h := wire.Child(e, wire.NsCommonTypes, "HashedPIN")
	if h == nil {
		return QRCodeIdentification{}, parseError(typ, "PIN", wire.ErrMissingElement)
	}
	var hashed HashedPIN
	if hashed.Value, err = wire.RequiredText(h, wire.NsCommonTypes, "Value"); err != nil {
		return QRCodeIdentification{}, parseError(typ, "HashedPIN.Value", err)
	}
	text, err = wire.RequiredText(h, wire.NsCommonTypes, "Function")
	if err != nil {
		return QRCodeIdentification{}, parseError(typ, "HashedPIN.Function", err)
	}
	if hashed.Function, err = ParseHashFunction(text); err != nil {
		return QRCodeIdentification{}, parseError(typ, "HashedPIN.Function", err)
	}
	hashed.Salt, _ = wire.ChildText(h, wire.NsCommonTypes, "Salt")
	q, err := NewQRCodeIdentificationWithHashedPIN(evco, hashed)
	if err != nil {
		return QRCodeIdentification{}, parseError(typ, "HashedPIN", err)
	}
	return q, nil
}

// ParseQRCodeIdentificationXML reads a CommonTypes:QRCodeIdentification
// element. A PIN element takes precedence over HashedPIN; an unknown hash
// function is a failure.
func ParseQRCodeIdentificationXML(e *etree.Element, onError wire.ErrorHandler, custom wire.CustomXMLParser[QRCodeIdentification]) (QRCodeIdentification, error) {
	q, err := parseQRCodeIdentificationXML(e)
	return finish(q, err, e, onError, func(v QRCodeIdentification) QRCodeIdentification { return custom.Apply(e, v) })
}

// TryParseQRCodeIdentificationXML is ParseQRCodeIdentificationXML reporting success as a bool.
func TryParseQRCodeIdentificationXML(e *etree.Element, onError wire.ErrorHandler, custom wire.CustomXMLParser[QRCodeIdentification]) (QRCodeIdentification, bool) {
	q, err := ParseQRCodeIdentificationXML(e, onError, custom)
	return q, err == nil
}

// ToJSON renders the JSON form.
func (q QRCodeIdentification) ToJSON(custom wire.CustomJSONSerializer[QRCodeIdentification]) wire.JSONObject {
	obj := wire.JSONObject{"evcoId": q.evcoID.String()}
	if q.pin != "" {
		obj["pin"] = q.pin
	} else if q.hashedPIN != nil {
		h := wire.JSONObject{
			"value":    q.hashedPIN.Value,
			"function": q.hashedPIN.Function.String(),
		}
		h.SetOptional("salt", q.hashedPIN.Salt)
		obj["hashedPin"] = h
	}
	return custom.Apply(q, obj)
}

func parseQRCodeIdentificationJSON(obj wire.JSONObject) (QRCodeIdentification, error) {
	const typ = "QRCodeIdentification"
	text, err := obj.RequiredText("evcoId")
	if err != nil {
		return QRCodeIdentification{}, parseError(typ, "evcoId", err)
	}
	evco, err := ids.ParseEVCOID(text)
	if err != nil {
		return QRCodeIdentification{}, parseError(typ, "evcoId", err)
	}
	pin, ok, err := obj.Text("pin")
	if err != nil {
		return QRCodeIdentification{}, parseError(typ, "pin", err)
	}
	if ok {
		q, err := NewQRCodeIdentificationWithPIN(evco, pin)
		if err != nil {
			return QRCodeIdentification{}, parseError(typ, "pin", err)
		}
		return q, nil
	}
	h, ok, err := obj.Object("hashedPin")
	if err != nil {
		return QRCodeIdentification{}, parseError(typ, "hashedPin", err)
	}
	if !ok {
		return QRCodeIdentification{}, parseError(typ, "pin", wire.ErrMissingElement)
	}
	var hashed HashedPIN
	if hashed.Value, err = h.RequiredText("value"); err != nil {
		return QRCodeIdentification{}, parseError(typ, "hashedPin.value", err)
	}
	text, err = h.RequiredText("function")
	if err != nil {
		return QRCodeIdentification{}, parseError(typ, "hashedPin.function", err)
	}
	if hashed.Function, err = ParseHashFunction(text); err != nil {
		return QRCodeIdentification{}, parseError(typ, "hashedPin.function", err)
	}
	if hashed.Salt, _, err = h.Text("salt"); err != nil {
		return QRCodeIdentification{}, parseError(typ, "hashedPin.salt", err)
	}
	q, err := NewQRCodeIdentificationWithHashedPIN(evco, hashed)
	if err != nil {
		return QRCodeIdentification{}, parseError(typ, "hashedPin", err)
	}
	return q, nil
}

// ParseQRCodeIdentificationJSON reads the JSON form.
func ParseQRCodeIdentificationJSON(obj wire.JSONObject, onError wire.ErrorHandler, custom wire.CustomJSONParser[QRCodeIdentification]) (QRCodeIdentification, error) {
	q, err := parseQRCodeIdentificationJSON(obj)
	return finish(q, err, obj, onError, func(v QRCodeIdentification) QRCodeIdentification { return custom.Apply(obj, v) })
}

// TryParseQRCodeIdentificationJSON is ParseQRCodeIdentificationJSON reporting success as a bool.
func TryParseQRCodeIdentificationJSON(obj wire.JSONObject, onError wire.ErrorHandler, custom wire.CustomJSONParser[QRCodeIdentification]) (QRCodeIdentification, bool) {
	q, err := ParseQRCodeIdentificationJSON(obj, onError, custom)
	return q, err == nil
}

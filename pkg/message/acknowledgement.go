// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package message

import (
	"github.com/beevik/etree"
	"github.com/sirosfoundation/go-oicp/pkg/ids"
	"github.com/sirosfoundation/go-oicp/pkg/wire"
)

// Acknowledgement is the generic reply to push and notification requests.
type Acknowledgement struct {
	result              bool
	statusCode          StatusCode
	sessionID           ids.SessionID
	cpoPartnerSessionID ids.CPOPartnerSessionID
	empPartnerSessionID ids.EMPPartnerSessionID
}

// AcknowledgementOption sets an optional Acknowledgement field.
type AcknowledgementOption func(*Acknowledgement)

// WithSessionID correlates the acknowledgement with a charging session.
func WithSessionID(id ids.SessionID) AcknowledgementOption {
	return func(a *Acknowledgement) { a.sessionID = id }
}

// WithCPOPartnerSessionID sets the CPO side correlation id.
func WithCPOPartnerSessionID(id ids.CPOPartnerSessionID) AcknowledgementOption {
	return func(a *Acknowledgement) { a.cpoPartnerSessionID = id }
}

// WithEMPPartnerSessionID sets the EMP side correlation id.
func WithEMPPartnerSessionID(id ids.EMPPartnerSessionID) AcknowledgementOption {
	return func(a *Acknowledgement) { a.empPartnerSessionID = id }
}

// NewAcknowledgement creates an Acknowledgement.
func NewAcknowledgement(result bool, status StatusCode, opts ...AcknowledgementOption) Acknowledgement {
	a := Acknowledgement{result: result, statusCode: status}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// Success returns a positive acknowledgement with status code 000.
func Success(opts ...AcknowledgementOption) Acknowledgement {
	return NewAcknowledgement(true, NewStatusCode(StatusSuccess, WithDescription(StatusSuccess.Describe())), opts...)
}

// Failure returns a negative acknowledgement carrying code and its
// registry description.
func Failure(code StatusCodes, additionalInfo string, opts ...AcknowledgementOption) Acknowledgement {
	status := NewStatusCode(code, WithDescription(code.Describe()), WithAdditionalInfo(additionalInfo))
	return NewAcknowledgement(false, status, opts...)
}

func (a Acknowledgement) Result() bool { return a.result }
func (a Acknowledgement) StatusCode() StatusCode { return a.statusCode }
func (a Acknowledgement) SessionID() ids.SessionID { return a.sessionID }
func (a Acknowledgement) CPOPartnerSessionID() ids.CPOPartnerSessionID { return a.cpoPartnerSessionID }
func (a Acknowledgement) EMPPartnerSessionID() ids.EMPPartnerSessionID { return a.empPartnerSessionID }

// Equal compares every field.
func (a Acknowledgement) Equal(other Acknowledgement) bool {
	return a.result == other.result &&
		a.statusCode.Equal(other.statusCode) &&
		a.sessionID.Equal(other.sessionID) &&
		a.cpoPartnerSessionID.Equal(other.cpoPartnerSessionID) &&
		a.empPartnerSessionID.Equal(other.empPartnerSessionID)
}

func (a Acknowledgement) String() string {
	s := "Acknowledgement: " + wire.FormatBool(a.result) + ", " + a.statusCode.String()
	if !a.sessionID.IsZero() {
		s += ", SessionID: " + a.sessionID.String()
	}
	return s
}

// ToXML renders a CommonTypes:eRoamingAcknowledgement element.
func (a Acknowledgement) ToXML(custom wire.CustomXMLSerializer[Acknowledgement]) *etree.Element {
	const ns = wire.NsCommonTypes
	e := wire.NewElement(ns, "eRoamingAcknowledgement")
	wire.AddText(e, ns, "Result", wire.FormatBool(a.result))
	e.AddChild(a.statusCode.ToXML(nil))
	if !a.sessionID.IsZero() {
		wire.AddText(e, ns, "SessionID", a.sessionID.String())
	}
	wire.AddOptionalText(e, ns, "CPOPartnerSessionID", a.cpoPartnerSessionID.String())
	wire.AddOptionalText(e, ns, "EMPPartnerSessionID", a.empPartnerSessionID.String())
	return custom.Apply(a, e)
}

func parseAcknowledgementXML(e *etree.Element) (Acknowledgement, error) {
	const typ = "Acknowledgement"
	const ns = wire.NsCommonTypes
	if !wire.Is(e, ns, "eRoamingAcknowledgement") {
		return Acknowledgement{}, parseError(typ, "", wire.ErrUnexpectedElement)
	}
	text, err := wire.RequiredText(e, ns, "Result")
	if err != nil {
		return Acknowledgement{}, parseError(typ, "Result", err)
	}
	result, err := wire.ParseBool(text)
	if err != nil {
		return Acknowledgement{}, parseError(typ, "Result", err)
	}
	status, err := parseStatusCodeXML(wire.Child(e, ns, "StatusCode"))
	if err != nil {
		return Acknowledgement{}, parseError(typ, "StatusCode", err)
	}
	a := NewAcknowledgement(result, status)
	if text, ok := wire.ChildText(e, ns, "SessionID"); ok && text != "" {
		if a.sessionID, err = ids.ParseSessionID(text); err != nil {
			return Acknowledgement{}, parseError(typ, "SessionID", err)
		}
	}
	if text, ok := wire.ChildText(e, ns, "CPOPartnerSessionID"); ok && text != "" {
		if a.cpoPartnerSessionID, err = ids.ParseCPOPartnerSessionID(text); err != nil {
			return Acknowledgement{}, parseError(typ, "CPOPartnerSessionID", err)
		}
	}
	if text, ok := wire.ChildText(e, ns, "EMPPartnerSessionID"); ok && text != "" {
		if a.empPartnerSessionID, err = ids.ParseEMPPartnerSessionID(text); err != nil {
			return Acknowledgement{}, parseError(typ, "EMPPartnerSessionID", err)
		}
	}
	return a, nil
}

// ParseAcknowledgementXML reads a CommonTypes:eRoamingAcknowledgement element.
func ParseAcknowledgementXML(e *etree.Element, onError wire.ErrorHandler, custom wire.CustomXMLParser[Acknowledgement]) (Acknowledgement, error) {
	a, err := parseAcknowledgementXML(e)
	return finish(a, err, e, onError, func(v Acknowledgement) Acknowledgement { return custom.Apply(e, v) })
}

// TryParseAcknowledgementXML is ParseAcknowledgementXML reporting success as a bool.
func TryParseAcknowledgementXML(e *etree.Element, onError wire.ErrorHandler, custom wire.CustomXMLParser[Acknowledgement]) (Acknowledgement, bool) {
	a, err := ParseAcknowledgementXML(e, onError, custom)
	return a, err == nil
}

// ToJSON renders the JSON form.
func (a Acknowledgement) ToJSON(custom wire.CustomJSONSerializer[Acknowledgement]) wire.JSONObject {
	obj := wire.JSONObject{
		"result":     a.result,
		"statusCode": a.statusCode.ToJSON(nil),
	}
	if !a.sessionID.IsZero() {
		obj["sessionId"] = a.sessionID.String()
	}
	obj.SetOptional("cpoPartnerSessionId", a.cpoPartnerSessionID.String())
	obj.SetOptional("empPartnerSessionId", a.empPartnerSessionID.String())
	return custom.Apply(a, obj)
}

func parseAcknowledgementJSON(obj wire.JSONObject) (Acknowledgement, error) {
	const typ = "Acknowledgement"
	if obj == nil {
		return Acknowledgement{}, parseError(typ, "", wire.ErrEmptyDocument)
	}
	result, ok, err := obj.Boolean("result")
	if err != nil {
		return Acknowledgement{}, parseError(typ, "result", err)
	}
	if !ok {
		return Acknowledgement{}, parseError(typ, "result", wire.ErrMissingElement)
	}
	s, ok, err := obj.Object("statusCode")
	if err != nil {
		return Acknowledgement{}, parseError(typ, "statusCode", err)
	}
	if !ok {
		return Acknowledgement{}, parseError(typ, "statusCode", wire.ErrMissingElement)
	}
	status, err := parseStatusCodeJSON(s)
	if err != nil {
		return Acknowledgement{}, parseError(typ, "statusCode", err)
	}
	a := NewAcknowledgement(result, status)
	text, ok, err := obj.Text("sessionId")
	if err != nil {
		return Acknowledgement{}, parseError(typ, "sessionId", err)
	}
	if ok && text != "" {
		if a.sessionID, err = ids.ParseSessionID(text); err != nil {
			return Acknowledgement{}, parseError(typ, "sessionId", err)
		}
	}
	if text, ok, err = obj.Text("cpoPartnerSessionId"); err != nil {
		return Acknowledgement{}, parseError(typ, "cpoPartnerSessionId", err)
	}
	if ok && text != "" {
		if a.cpoPartnerSessionID, err = ids.ParseCPOPartnerSessionID(text); err != nil {
			return Acknowledgement{}, parseError(typ, "cpoPartnerSessionId", err)
		}
	}
	if text, ok, err = obj.Text("empPartnerSessionId"); err != nil {
		return Acknowledgement{}, parseError(typ, "empPartnerSessionId", err)
	}
	if ok && text != "" {
		if a.empPartnerSessionID, err = ids.ParseEMPPartnerSessionID(text); err != nil {
			return Acknowledgement{}, parseError(typ, "empPartnerSessionId", err)
		}
	}
	return a, nil
}

// ParseAcknowledgementJSON reads the JSON form.
func ParseAcknowledgementJSON(obj wire.JSONObject, onError wire.ErrorHandler, custom wire.CustomJSONParser[Acknowledgement]) (Acknowledgement, error) {
	a, err := parseAcknowledgementJSON(obj)
	return finish(a, err, obj, onError, func(v Acknowledgement) Acknowledgement { return custom.Apply(obj, v) })
}

// TryParseAcknowledgementJSON is ParseAcknowledgementJSON reporting success as a bool.
func TryParseAcknowledgementJSON(obj wire.JSONObject, onError wire.ErrorHandler, custom wire.CustomJSONParser[Acknowledgement]) (Acknowledgement, bool) {
	a, err := ParseAcknowledgementJSON(obj, onError, custom)
	return a, err == nil
}

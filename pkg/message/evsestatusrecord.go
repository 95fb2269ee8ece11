// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package message

import (
	"github.com/beevik/etree"
	"github.com/sirosfoundation/go-oicp/pkg/ids"
	"github.com/sirosfoundation/go-oicp/pkg/wire"
)

// EVSEStatusRecord is the dynamic state of one EVSE.
type EVSEStatusRecord struct {
	id     ids.EVSEID
	status EVSEStatusType
}

// EVSEStatusRecordBuilder is the mutable form of EVSEStatusRecord.
type EVSEStatusRecordBuilder struct {
	ID     ids.EVSEID
	Status EVSEStatusType
}

// NewEVSEStatusRecord creates an EVSEStatusRecord.
func NewEVSEStatusRecord(id ids.EVSEID, status EVSEStatusType) (EVSEStatusRecord, error) {
	b := EVSEStatusRecordBuilder{ID: id, Status: status}
	return b.Build()
}

// Build validates the builder and returns the record.
func (b *EVSEStatusRecordBuilder) Build() (EVSEStatusRecord, error) {
	const typ = "EVSEStatusRecord"
	if b.ID.IsZero() {
		return EVSEStatusRecord{}, fieldError(typ, "EvseID", ErrMissingField)
	}
	if !b.Status.IsValid() {
		return EVSEStatusRecord{}, fieldError(typ, "EvseStatus", ErrMissingField)
	}
	return EVSEStatusRecord{id: b.ID, status: b.Status}, nil
}

// ToBuilder copies the record into a builder.
func (r EVSEStatusRecord) ToBuilder() *EVSEStatusRecordBuilder {
	return &EVSEStatusRecordBuilder{ID: r.id, Status: r.status}
}

func (r EVSEStatusRecord) ID() ids.EVSEID { return r.id }
func (r EVSEStatusRecord) Status() EVSEStatusType { return r.status }

// Equal compares EVSE id and status.
func (r EVSEStatusRecord) Equal(other EVSEStatusRecord) bool {
	return r.id.Equal(other.id) && r.status == other.status
}

// Compare orders by EVSE id, then status.
func (r EVSEStatusRecord) Compare(other EVSEStatusRecord) int {
	if c := r.id.Compare(other.id); c != 0 {
		return c
	}
	switch {
	case r.status < other.status:
		return -1
	case r.status > other.status:
		return 1
	}
	return 0
}

func (r EVSEStatusRecord) String() string {
	return r.id.String() + " -> " + r.status.String()
}

// ToXML renders an EVSEStatus:EvseStatusRecord element.
func (r EVSEStatusRecord) ToXML(custom wire.CustomXMLSerializer[EVSEStatusRecord]) *etree.Element {
	e := wire.NewElement(wire.NsEVSEStatus, "EvseStatusRecord")
	wire.AddText(e, wire.NsEVSEStatus, "EvseId", r.id.String())
	wire.AddText(e, wire.NsEVSEStatus, "EvseStatus", r.status.String())
	return custom.Apply(r, e)
}

func parseEVSEStatusRecordXML(e *etree.Element) (EVSEStatusRecord, error) {
	const typ = "EVSEStatusRecord"
	if e == nil {
		return EVSEStatusRecord{}, parseError(typ, "", wire.ErrMissingElement)
	}
	text, err := wire.RequiredText(e, wire.NsEVSEStatus, "EvseId")
	if err != nil {
		return EVSEStatusRecord{}, parseError(typ, "EvseId", err)
	}
	var b EVSEStatusRecordBuilder
	if b.ID, err = ids.ParseEVSEID(text); err != nil {
		return EVSEStatusRecord{}, parseError(typ, "EvseId", err)
	}
	if text, err = wire.RequiredText(e, wire.NsEVSEStatus, "EvseStatus"); err != nil {
		return EVSEStatusRecord{}, parseError(typ, "EvseStatus", err)
	}
	if b.Status, err = ParseEVSEStatusType(text); err != nil {
		return EVSEStatusRecord{}, parseError(typ, "EvseStatus", err)
	}
	r, err := b.Build()
	if err != nil {
		return EVSEStatusRecord{}, parseError(typ, "", err)
	}
	return r, nil
}

// ParseEVSEStatusRecordXML reads an EVSEStatus:EvseStatusRecord element. A
// bare fragment holding EvseId and EvseStatus is accepted as well.
func ParseEVSEStatusRecordXML(e *etree.Element, onError wire.ErrorHandler, custom wire.CustomXMLParser[EVSEStatusRecord]) (EVSEStatusRecord, error) {
	r, err := parseEVSEStatusRecordXML(e)
	return finish(r, err, e, onError, func(v EVSEStatusRecord) EVSEStatusRecord { return custom.Apply(e, v) })
}

// TryParseEVSEStatusRecordXML is ParseEVSEStatusRecordXML reporting success as a bool.
func TryParseEVSEStatusRecordXML(e *etree.Element, onError wire.ErrorHandler, custom wire.CustomXMLParser[EVSEStatusRecord]) (EVSEStatusRecord, bool) {
	r, err := ParseEVSEStatusRecordXML(e, onError, custom)
	return r, err == nil
}

// ToJSON renders {"evseId":...,"evseStatus":...}.
func (r EVSEStatusRecord) ToJSON(custom wire.CustomJSONSerializer[EVSEStatusRecord]) wire.JSONObject {
	obj := wire.JSONObject{
		"evseId":     r.id.String(),
		"evseStatus": r.status.String(),
	}
	return custom.Apply(r, obj)
}

func parseEVSEStatusRecordJSON(obj wire.JSONObject) (EVSEStatusRecord, error) {
	const typ = "EVSEStatusRecord"
	text, err := obj.RequiredText("evseId")
	if err != nil {
		return EVSEStatusRecord{}, parseError(typ, "evseId", err)
	}
	var b EVSEStatusRecordBuilder
	if b.ID, err = ids.ParseEVSEID(text); err != nil {
		return EVSEStatusRecord{}, parseError(typ, "evseId", err)
	}
	if text, err = obj.RequiredText("evseStatus"); err != nil {
		return EVSEStatusRecord{}, parseError(typ, "evseStatus", err)
	}
	if b.Status, err = ParseEVSEStatusType(text); err != nil {
		return EVSEStatusRecord{}, parseError(typ, "evseStatus", err)
	}
	r, err := b.Build()
	if err != nil {
		return EVSEStatusRecord{}, parseError(typ, "", err)
	}
	return r, nil
}

// ParseEVSEStatusRecordJSON reads the JSON form.
func ParseEVSEStatusRecordJSON(obj wire.JSONObject, onError wire.ErrorHandler, custom wire.CustomJSONParser[EVSEStatusRecord]) (EVSEStatusRecord, error) {
	r, err := parseEVSEStatusRecordJSON(obj)
	return finish(r, err, obj, onError, func(v EVSEStatusRecord) EVSEStatusRecord { return custom.Apply(obj, v) })
}

// TryParseEVSEStatusRecordJSON is ParseEVSEStatusRecordJSON reporting success as a bool.
func TryParseEVSEStatusRecordJSON(obj wire.JSONObject, onError wire.ErrorHandler, custom wire.CustomJSONParser[EVSEStatusRecord]) (EVSEStatusRecord, bool) {
	r, err := ParseEVSEStatusRecordJSON(obj, onError, custom)
	return r, err == nil
}

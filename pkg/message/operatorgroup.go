// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package message

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/sirosfoundation/go-oicp/pkg/ids"
	"github.com/sirosfoundation/go-oicp/pkg/wire"
)

// MaxOperatorNameLength bounds the OperatorName of operator groups.
const MaxOperatorNameLength = 100

func normalizeOperatorName(name string) string {
	return wire.Truncate(strings.TrimSpace(name), MaxOperatorNameLength)
}

// compareGroups orders operator groups by id, name and record count.
func compareGroups(aID, bID ids.OperatorID, aName, bName string, aCount, bCount int) int {
	if c := aID.Compare(bID); c != 0 {
		return c
	}
	if c := strings.Compare(aName, bName); c != 0 {
		return c
	}
	switch {
	case aCount < bCount:
		return -1
	case aCount > bCount:
		return 1
	}
	return 0
}

// operatorHeaderXML reads OperatorID and OperatorName of an operator group.
func operatorHeaderXML(e *etree.Element, ns string) (ids.OperatorID, string, error) {
	text, err := wire.RequiredText(e, ns, "OperatorID")
	if err != nil {
		return ids.OperatorID{}, "", err
	}
	id, err := ids.ParseOperatorID(text)
	if err != nil {
		return ids.OperatorID{}, "", err
	}
	name, _ := wire.ChildText(e, ns, "OperatorName")
	return id, name, nil
}

func operatorHeaderJSON(obj wire.JSONObject) (ids.OperatorID, string, error) {
	text, err := obj.RequiredText("operatorId")
	if err != nil {
		return ids.OperatorID{}, "", err
	}
	id, err := ids.ParseOperatorID(text)
	if err != nil {
		return ids.OperatorID{}, "", err
	}
	name, _, err := obj.Text("operatorName")
	return id, name, err
}

// OperatorEVSEData groups the EVSE data records of one operator.
type OperatorEVSEData struct {
	operatorID   ids.OperatorID
	operatorName string
	records      []EVSEDataRecord
}

// OperatorEVSEDataBuilder is the mutable form of OperatorEVSEData.
type OperatorEVSEDataBuilder struct {
	OperatorID   ids.OperatorID
	OperatorName string
	Records      []EVSEDataRecord
}

// NewOperatorEVSEData creates an OperatorEVSEData. records must not be
// empty; operatorName is cut to MaxOperatorNameLength characters.
func NewOperatorEVSEData(operatorID ids.OperatorID, operatorName string, records []EVSEDataRecord) (OperatorEVSEData, error) {
	b := OperatorEVSEDataBuilder{OperatorID: operatorID, OperatorName: operatorName, Records: records}
	return b.Build()
}

// Build validates the builder and returns the group.
func (b *OperatorEVSEDataBuilder) Build() (OperatorEVSEData, error) {
	const typ = "OperatorEVSEData"
	if len(b.Records) == 0 {
		return OperatorEVSEData{}, fieldError(typ, "EVSEDataRecords", ErrEmptyCollection)
	}
	if b.OperatorID.IsZero() {
		return OperatorEVSEData{}, fieldError(typ, "OperatorID", ErrMissingField)
	}
	return OperatorEVSEData{
		operatorID:   b.OperatorID,
		operatorName: normalizeOperatorName(b.OperatorName),
		records:      append([]EVSEDataRecord(nil), b.Records...),
	}, nil
}

// ToBuilder copies the group into a builder.
func (g OperatorEVSEData) ToBuilder() *OperatorEVSEDataBuilder {
	return &OperatorEVSEDataBuilder{
		OperatorID:   g.operatorID,
		OperatorName: g.operatorName,
		Records:      append([]EVSEDataRecord(nil), g.records...),
	}
}

func (g OperatorEVSEData) OperatorID() ids.OperatorID { return g.operatorID }
func (g OperatorEVSEData) OperatorName() string { return g.operatorName }
func (g OperatorEVSEData) Len() int { return len(g.records) }

// Records returns a copy of the records.
func (g OperatorEVSEData) Records() []EVSEDataRecord {
	return append([]EVSEDataRecord(nil), g.records...)
}

// Equal compares operator id, operator name and the number of records.
// The records themselves are not compared.
func (g OperatorEVSEData) Equal(other OperatorEVSEData) bool {
	return g.Compare(other) == 0
}

// Compare orders by operator id, operator name and record count.
func (g OperatorEVSEData) Compare(other OperatorEVSEData) int {
	return compareGroups(g.operatorID, other.operatorID, g.operatorName, other.operatorName, len(g.records), len(other.records))
}

func (g OperatorEVSEData) String() string {
	return g.operatorID.String() + " (" + g.operatorName + "): " + pluralRecords(len(g.records))
}

// ToXML renders an EVSEData:OperatorEvseData element.
func (g OperatorEVSEData) ToXML(includeMetadata bool, custom wire.CustomXMLSerializer[OperatorEVSEData]) *etree.Element {
	const ns = wire.NsEVSEData
	e := wire.NewElement(ns, "OperatorEvseData")
	wire.AddText(e, ns, "OperatorID", g.operatorID.String())
	wire.AddOptionalText(e, ns, "OperatorName", g.operatorName)
	for _, r := range g.records {
		e.AddChild(r.ToXML(includeMetadata, nil))
	}
	return custom.Apply(g, e)
}

func parseOperatorEVSEDataXML(e *etree.Element, onError wire.ErrorHandler) (OperatorEVSEData, error) {
	const typ = "OperatorEVSEData"
	const ns = wire.NsEVSEData
	if !wire.Is(e, ns, "OperatorEvseData") {
		return OperatorEVSEData{}, parseError(typ, "", wire.ErrUnexpectedElement)
	}
	var b OperatorEVSEDataBuilder
	for _, c := range wire.Children(e, ns, "EvseDataRecord") {
		if r, err := ParseEVSEDataRecordXML(c, onError, nil); err == nil {
			b.Records = append(b.Records, r)
		}
	}
	var err error
	if b.OperatorID, b.OperatorName, err = operatorHeaderXML(e, ns); err != nil {
		return OperatorEVSEData{}, parseError(typ, "OperatorID", err)
	}
	g, err := b.Build()
	if err != nil {
		return OperatorEVSEData{}, parseError(typ, "", err)
	}
	return g, nil
}

// ParseOperatorEVSEDataXML reads an EVSEData:OperatorEvseData element.
// Records that fail to parse are reported to onError and dropped; a bad
// OperatorID fails the whole group.
func ParseOperatorEVSEDataXML(e *etree.Element, onError wire.ErrorHandler, custom wire.CustomXMLParser[OperatorEVSEData]) (OperatorEVSEData, error) {
	g, err := parseOperatorEVSEDataXML(e, onError)
	return finish(g, err, e, onError, func(v OperatorEVSEData) OperatorEVSEData { return custom.Apply(e, v) })
}

// TryParseOperatorEVSEDataXML is ParseOperatorEVSEDataXML reporting success as a bool.
func TryParseOperatorEVSEDataXML(e *etree.Element, onError wire.ErrorHandler, custom wire.CustomXMLParser[OperatorEVSEData]) (OperatorEVSEData, bool) {
	g, err := ParseOperatorEVSEDataXML(e, onError, custom)
	return g, err == nil
}

// ToJSON renders the JSON form.
func (g OperatorEVSEData) ToJSON(includeMetadata bool, custom wire.CustomJSONSerializer[OperatorEVSEData]) wire.JSONObject {
	records := make([]any, 0, len(g.records))
	for _, r := range g.records {
		records = append(records, r.ToJSON(includeMetadata, nil))
	}
	obj := wire.JSONObject{
		"operatorId":     g.operatorID.String(),
		"evseDataRecord": records,
	}
	obj.SetOptional("operatorName", g.operatorName)
	return custom.Apply(g, obj)
}

func parseOperatorEVSEDataJSON(obj wire.JSONObject, onError wire.ErrorHandler) (OperatorEVSEData, error) {
	const typ = "OperatorEVSEData"
	if obj == nil {
		return OperatorEVSEData{}, parseError(typ, "", wire.ErrEmptyDocument)
	}
	var b OperatorEVSEDataBuilder
	items, _, err := jsonObjects(obj, "evseDataRecord")
	if err != nil {
		return OperatorEVSEData{}, parseError(typ, "evseDataRecord", err)
	}
	for _, item := range items {
		if r, err := ParseEVSEDataRecordJSON(item, onError, nil); err == nil {
			b.Records = append(b.Records, r)
		}
	}
	if b.OperatorID, b.OperatorName, err = operatorHeaderJSON(obj); err != nil {
		return OperatorEVSEData{}, parseError(typ, "operatorId", err)
	}
	g, err := b.Build()
	if err != nil {
		return OperatorEVSEData{}, parseError(typ, "", err)
	}
	return g, nil
}

// ParseOperatorEVSEDataJSON reads the JSON form with the same partial
// success policy as ParseOperatorEVSEDataXML.
func ParseOperatorEVSEDataJSON(obj wire.JSONObject, onError wire.ErrorHandler, custom wire.CustomJSONParser[OperatorEVSEData]) (OperatorEVSEData, error) {
	g, err := parseOperatorEVSEDataJSON(obj, onError)
	return finish(g, err, obj, onError, func(v OperatorEVSEData) OperatorEVSEData { return custom.Apply(obj, v) })
}

// TryParseOperatorEVSEDataJSON is ParseOperatorEVSEDataJSON reporting success as a bool.
func TryParseOperatorEVSEDataJSON(obj wire.JSONObject, onError wire.ErrorHandler, custom wire.CustomJSONParser[OperatorEVSEData]) (OperatorEVSEData, bool) {
	g, err := ParseOperatorEVSEDataJSON(obj, onError, custom)
	return g, err == nil
}

// OperatorEVSEStatus groups the EVSE status records of one operator.
type OperatorEVSEStatus struct {
	operatorID   ids.OperatorID
	operatorName string
	records      []EVSEStatusRecord
}

// OperatorEVSEStatusBuilder is the mutable form of OperatorEVSEStatus.
type OperatorEVSEStatusBuilder struct {
	OperatorID   ids.OperatorID
	OperatorName string
	Records      []EVSEStatusRecord
}

// NewOperatorEVSEStatus creates an OperatorEVSEStatus. records must not be
// empty; operatorName is cut to MaxOperatorNameLength characters.
func NewOperatorEVSEStatus(operatorID ids.OperatorID, operatorName string, records []EVSEStatusRecord) (OperatorEVSEStatus, error) {
	b := OperatorEVSEStatusBuilder{OperatorID: operatorID, OperatorName: operatorName, Records: records}
	return b.Build()
}

// Build validates the builder and returns the group.
func (b *OperatorEVSEStatusBuilder) Build() (OperatorEVSEStatus, error) {
	const typ = "OperatorEVSEStatus"
	if len(b.Records) == 0 {
		return OperatorEVSEStatus{}, fieldError(typ, "EVSEStatusRecords", ErrEmptyCollection)
	}
	if b.OperatorID.IsZero() {
		return OperatorEVSEStatus{}, fieldError(typ, "OperatorID", ErrMissingField)
	}
	return OperatorEVSEStatus{
		operatorID:   b.OperatorID,
		operatorName: normalizeOperatorName(b.OperatorName),
		records:      append([]EVSEStatusRecord(nil), b.Records...),
	}, nil
}

// ToBuilder copies the group into a builder.
func (g OperatorEVSEStatus) ToBuilder() *OperatorEVSEStatusBuilder {
	return &OperatorEVSEStatusBuilder{
		OperatorID:   g.operatorID,
		OperatorName: g.operatorName,
		Records:      append([]EVSEStatusRecord(nil), g.records...),
	}
}

func (g OperatorEVSEStatus) OperatorID() ids.OperatorID { return g.operatorID }
func (g OperatorEVSEStatus) OperatorName() string { return g.operatorName }
func (g OperatorEVSEStatus) Len() int { return len(g.records) }

// Records returns a copy of the records.
func (g OperatorEVSEStatus) Records() []EVSEStatusRecord {
	return append([]EVSEStatusRecord(nil), g.records...)
}

// Equal compares operator id, operator name and the number of records.
// The records themselves are not compared.
func (g OperatorEVSEStatus) Equal(other OperatorEVSEStatus) bool {
	return g.Compare(other) == 0
}

// Compare orders by operator id, operator name and record count.
func (g OperatorEVSEStatus) Compare(other OperatorEVSEStatus) int {
	return compareGroups(g.operatorID, other.operatorID, g.operatorName, other.operatorName, len(g.records), len(other.records))
}

func (g OperatorEVSEStatus) String() string {
	return g.operatorID.String() + " (" + g.operatorName + "): " + pluralRecords(len(g.records))
}

// ToXML renders an EVSEStatus:OperatorEvseStatus element.
func (g OperatorEVSEStatus) ToXML(custom wire.CustomXMLSerializer[OperatorEVSEStatus]) *etree.Element {
	const ns = wire.NsEVSEStatus
	e := wire.NewElement(ns, "OperatorEvseStatus")
	wire.AddText(e, ns, "OperatorID", g.operatorID.String())
	wire.AddOptionalText(e, ns, "OperatorName", g.operatorName)
	for _, r := range g.records {
		e.AddChild(r.ToXML(nil))
	}
	return custom.Apply(g, e)
}

func parseOperatorEVSEStatusXML(e *etree.Element, onError wire.ErrorHandler) (OperatorEVSEStatus, error) {
	const typ = "OperatorEVSEStatus"
	const ns = wire.NsEVSEStatus
	if !wire.Is(e, ns, "OperatorEvseStatus") {
		return OperatorEVSEStatus{}, parseError(typ, "", wire.ErrUnexpectedElement)
	}
	var b OperatorEVSEStatusBuilder
	for _, c := range wire.Children(e, ns, "EvseStatusRecord") {
		if r, err := ParseEVSEStatusRecordXML(c, onError, nil); err == nil {
			b.Records = append(b.Records, r)
		}
	}
	var err error
	if b.OperatorID, b.OperatorName, err = operatorHeaderXML(e, ns); err != nil {
		return OperatorEVSEStatus{}, parseError(typ, "OperatorID", err)
	}
	g, err := b.Build()
	if err != nil {
		return OperatorEVSEStatus{}, parseError(typ, "", err)
	}
	return g, nil
}

// ParseOperatorEVSEStatusXML reads an EVSEStatus:OperatorEvseStatus
// element. Records that fail to parse are reported to onError and
// dropped; a bad OperatorID fails the whole group.
func ParseOperatorEVSEStatusXML(e *etree.Element, onError wire.ErrorHandler, custom wire.CustomXMLParser[OperatorEVSEStatus]) (OperatorEVSEStatus, error) {
	g, err := parseOperatorEVSEStatusXML(e, onError)
	return finish(g, err, e, onError, func(v OperatorEVSEStatus) OperatorEVSEStatus { return custom.Apply(e, v) })
}

// TryParseOperatorEVSEStatusXML is ParseOperatorEVSEStatusXML reporting success as a bool.
func TryParseOperatorEVSEStatusXML(e *etree.Element, onError wire.ErrorHandler, custom wire.CustomXMLParser[OperatorEVSEStatus]) (OperatorEVSEStatus, bool) {
	g, err := ParseOperatorEVSEStatusXML(e, onError, custom)
	return g, err == nil
}

// ToJSON renders the JSON form.
func (g OperatorEVSEStatus) ToJSON(custom wire.CustomJSONSerializer[OperatorEVSEStatus]) wire.JSONObject {
	records := make([]any, 0, len(g.records))
	for _, r := range g.records {
		records = append(records, r.ToJSON(nil))
	}
	obj := wire.JSONObject{
		"operatorId":       g.operatorID.String(),
		"evseStatusRecord": records,
	}
	obj.SetOptional("operatorName", g.operatorName)
	return custom.Apply(g, obj)
}

func parseOperatorEVSEStatusJSON(obj wire.JSONObject, onError wire.ErrorHandler) (OperatorEVSEStatus, error) {
	const typ = "OperatorEVSEStatus"
	if obj == nil {
		return OperatorEVSEStatus{}, parseError(typ, "", wire.ErrEmptyDocument)
	}
	var b OperatorEVSEStatusBuilder
	items, _, err := jsonObjects(obj, "evseStatusRecord")
	if err != nil {
		return OperatorEVSEStatus{}, parseError(typ, "evseStatusRecord", err)
	}
	for _, item := range items {
		if r, err := ParseEVSEStatusRecordJSON(item, onError, nil); err == nil {
			b.Records = append(b.Records, r)
		}
	}
	if b.OperatorID, b.OperatorName, err = operatorHeaderJSON(obj); err != nil {
		return OperatorEVSEStatus{}, parseError(typ, "operatorId", err)
	}
	g, err := b.Build()
	if err != nil {
		return OperatorEVSEStatus{}, parseError(typ, "", err)
	}
	return g, nil
}

// ParseOperatorEVSEStatusJSON reads the JSON form with the same partial
// success policy as ParseOperatorEVSEStatusXML.
func ParseOperatorEVSEStatusJSON(obj wire.JSONObject, onError wire.ErrorHandler, custom wire.CustomJSONParser[OperatorEVSEStatus]) (OperatorEVSEStatus, error) {
	g, err := parseOperatorEVSEStatusJSON(obj, onError)
	return finish(g, err, obj, onError, func(v OperatorEVSEStatus) OperatorEVSEStatus { return custom.Apply(obj, v) })
}

// TryParseOperatorEVSEStatusJSON is ParseOperatorEVSEStatusJSON reporting success as a bool.
func TryParseOperatorEVSEStatusJSON(obj wire.JSONObject, onError wire.ErrorHandler, custom wire.CustomJSONParser[OperatorEVSEStatus]) (OperatorEVSEStatus, bool) {
	g, err := ParseOperatorEVSEStatusJSON(obj, onError, custom)
	return g, err == nil
}

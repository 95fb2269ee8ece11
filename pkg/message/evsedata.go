// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package message

import (
	"strconv"

	"github.com/beevik/etree"
	"github.com/sirosfoundation/go-oicp/pkg/wire"
)

func pluralRecords(n int) string {
	if n == 1 {
		return "1 record"
	}
	return strconv.Itoa(n) + " records"
}

// EVSEData is the top level EVSE data document. Unlike the operator
// groups it may be empty.
type EVSEData struct {
	operators []OperatorEVSEData
}

// NewEVSEData creates an EVSEData document.
func NewEVSEData(operators ...OperatorEVSEData) EVSEData {
	return EVSEData{operators: append([]OperatorEVSEData(nil), operators...)}
}

// OperatorEVSEData returns a copy of the operator groups.
func (d EVSEData) OperatorEVSEData() []OperatorEVSEData {
	return append([]OperatorEVSEData(nil), d.operators...)
}

// Len returns the number of operator groups.
func (d EVSEData) Len() int { return len(d.operators) }

// Records returns every EVSE data record of every operator.
func (d EVSEData) Records() []EVSEDataRecord {
	var out []EVSEDataRecord
	for _, o := range d.operators {
		out = append(out, o.records...)
	}
	return out
}

// Equal compares the number of operator groups only.
func (d EVSEData) Equal(other EVSEData) bool {
	return len(d.operators) == len(other.operators)
}

func (d EVSEData) String() string {
	return "EVSEData: " + strconv.Itoa(len(d.operators)) + " operators, " + pluralRecords(len(d.Records()))
}

// ToXML renders an EVSEData:EvseData element.
func (d EVSEData) ToXML(includeMetadata bool, custom wire.CustomXMLSerializer[EVSEData]) *etree.Element {
	e := wire.NewElement(wire.NsEVSEData, "EvseData")
	for _, o := range d.operators {
		e.AddChild(o.ToXML(includeMetadata, nil))
	}
	return custom.Apply(d, e)
}

func parseEVSEDataXML(e *etree.Element, onError wire.ErrorHandler) (EVSEData, error) {
	if !wire.Is(e, wire.NsEVSEData, "EvseData") {
		return EVSEData{}, parseError("EVSEData", "", wire.ErrUnexpectedElement)
	}
	var d EVSEData
	for _, c := range wire.Children(e, wire.NsEVSEData, "OperatorEvseData") {
		if g, err := ParseOperatorEVSEDataXML(c, onError, nil); err == nil {
			d.operators = append(d.operators, g)
		}
	}
	return d, nil
}

// ParseEVSEDataXML reads an EVSEData:EvseData element. Operator groups
// that fail to parse are reported to onError and dropped.
func ParseEVSEDataXML(e *etree.Element, onError wire.ErrorHandler, custom wire.CustomXMLParser[EVSEData]) (EVSEData, error) {
	d, err := parseEVSEDataXML(e, onError)
	return finish(d, err, e, onError, func(v EVSEData) EVSEData { return custom.Apply(e, v) })
}

// TryParseEVSEDataXML is ParseEVSEDataXML reporting success as a bool.
func TryParseEVSEDataXML(e *etree.Element, onError wire.ErrorHandler, custom wire.CustomXMLParser[EVSEData]) (EVSEData, bool) {
	d, err := ParseEVSEDataXML(e, onError, custom)
	return d, err == nil
}

// ToJSON renders {"operatorEvseData":[...]}.
func (d EVSEData) ToJSON(includeMetadata bool, custom wire.CustomJSONSerializer[EVSEData]) wire.JSONObject {
	operators := make([]any, 0, len(d.operators))
	for _, o := range d.operators {
		operators = append(operators, o.ToJSON(includeMetadata, nil))
	}
	return custom.Apply(d, wire.JSONObject{"operatorEvseData": operators})
}

func parseEVSEDataJSON(obj wire.JSONObject, onError wire.ErrorHandler) (EVSEData, error) {
	if obj == nil {
		return EVSEData{}, parseError("EVSEData", "", wire.ErrEmptyDocument)
	}
	items, _, err := jsonObjects(obj, "operatorEvseData")
	if err != nil {
		return EVSEData{}, parseError("EVSEData", "operatorEvseData", err)
	}
	var d EVSEData
	for _, item := range items {
		if g, err := ParseOperatorEVSEDataJSON(item, onError, nil); err == nil {
			d.operators = append(d.operators, g)
		}
	}
	return d, nil
}

// ParseEVSEDataJSON reads the JSON form.
func ParseEVSEDataJSON(obj wire.JSONObject, onError wire.ErrorHandler, custom wire.CustomJSONParser[EVSEData]) (EVSEData, error) {
	d, err := parseEVSEDataJSON(obj, onError)
	return finish(d, err, obj, onError, func(v EVSEData) EVSEData { return custom.Apply(obj, v) })
}

// TryParseEVSEDataJSON is ParseEVSEDataJSON reporting success as a bool.
func TryParseEVSEDataJSON(obj wire.JSONObject, onError wire.ErrorHandler, custom wire.CustomJSONParser[EVSEData]) (EVSEData, bool) {
	d, err := ParseEVSEDataJSON(obj, onError, custom)
	return d, err == nil
}

// EVSEStatus is the top level EVSE status document. It may be empty.
type EVSEStatus struct {
	operators []OperatorEVSEStatus
}

// NewEVSEStatus creates an EVSEStatus document.
func NewEVSEStatus(operators ...OperatorEVSEStatus) EVSEStatus {
	return EVSEStatus{operators: append([]OperatorEVSEStatus(nil), operators...)}
}

// OperatorEVSEStatus returns a copy of the operator groups.
func (s EVSEStatus) OperatorEVSEStatus() []OperatorEVSEStatus {
	return append([]OperatorEVSEStatus(nil), s.operators...)
}

// Len returns the number of operator groups.
func (s EVSEStatus) Len() int { return len(s.operators) }

// Records returns every EVSE status record of every operator.
func (s EVSEStatus) Records() []EVSEStatusRecord {
	var out []EVSEStatusRecord
	for _, o := range s.operators {
		out = append(out, o.records...)
	}
	return out
}

// Equal compares the number of operator groups only.
func (s EVSEStatus) Equal(other EVSEStatus) bool {
	return len(s.operators) == len(other.operators)
}

func (s EVSEStatus) String() string {
	return "EVSEStatus: " + strconv.Itoa(len(s.operators)) + " operators, " + pluralRecords(len(s.Records()))
}

// ToXML renders an EVSEStatus:EvseStatuses element.
func (s EVSEStatus) ToXML(custom wire.CustomXMLSerializer[EVSEStatus]) *etree.Element {
	e := wire.NewElement(wire.NsEVSEStatus, "EvseStatuses")
	for _, o := range s.operators {
		e.AddChild(o.ToXML(nil))
	}
	return custom.Apply(s, e)
}

func parseEVSEStatusXML(e *etree.Element, onError wire.ErrorHandler) (EVSEStatus, error) {
	if !wire.Is(e, wire.NsEVSEStatus, "EvseStatuses") {
		return EVSEStatus{}, parseError("EVSEStatus", "", wire.ErrUnexpectedElement)
	}
	var s EVSEStatus
	for _, c := range wire.Children(e, wire.NsEVSEStatus, "OperatorEvseStatus") {
		if g, err := ParseOperatorEVSEStatusXML(c, onError, nil); err == nil {
			s.operators = append(s.operators, g)
		}
	}
	return s, nil
}

// ParseEVSEStatusXML reads an EVSEStatus:EvseStatuses element. Operator
// groups that fail to parse are reported to onError and dropped.
func ParseEVSEStatusXML(e *etree.Element, onError wire.ErrorHandler, custom wire.CustomXMLParser[EVSEStatus]) (EVSEStatus, error) {
	s, err := parseEVSEStatusXML(e, onError)
	return finish(s, err, e, onError, func(v EVSEStatus) EVSEStatus { return custom.Apply(e, v) })
}

// TryParseEVSEStatusXML is ParseEVSEStatusXML reporting success as a bool.
func TryParseEVSEStatusXML(e *etree.Element, onError wire.ErrorHandler, custom wire.CustomXMLParser[EVSEStatus]) (EVSEStatus, bool) {
	s, err := ParseEVSEStatusXML(e, onError, custom)
	return s, err == nil
}

// ToJSON renders {"operatorEvseStatus":[...]}.
func (s EVSEStatus) ToJSON(custom wire.CustomJSONSerializer[EVSEStatus]) wire.JSONObject {
	operators := make([]any, 0, len(s.operators))
	for _, o := range s.operators {
		operators = append(operators, o.ToJSON(nil))
	}
	return custom.Apply(s, wire.JSONObject{"operatorEvseStatus": operators})
}

func parseEVSEStatusJSON(obj wire.JSONObject, onError wire.ErrorHandler) (EVSEStatus, error) {
	if obj == nil {
		return EVSEStatus{}, parseError("EVSEStatus", "", wire.ErrEmptyDocument)
	}
	items, _, err := jsonObjects(obj, "operatorEvseStatus")
	if err != nil {
		return EVSEStatus{}, parseError("EVSEStatus", "operatorEvseStatus", err)
	}
	var s EVSEStatus
	for _, item := range items {
		if g, err := ParseOperatorEVSEStatusJSON(item, onError, nil); err == nil {
			s.operators = append(s.operators, g)
		}
	}
	return s, nil
}

// ParseEVSEStatusJSON reads the JSON form.
func ParseEVSEStatusJSON(obj wire.JSONObject, onError wire.ErrorHandler, custom wire.CustomJSONParser[EVSEStatus]) (EVSEStatus, error) {
	s, err := parseEVSEStatusJSON(obj, onError)
	return finish(s, err, obj, onError, func(v EVSEStatus) EVSEStatus { return custom.Apply(obj, v) })
}

// TryParseEVSEStatusJSON is ParseEVSEStatusJSON reporting success as a bool.
func TryParseEVSEStatusJSON(obj wire.JSONObject, onError wire.ErrorHandler, custom wire.CustomJSONParser[EVSEStatus]) (EVSEStatus, bool) {
	s, err := ParseEVSEStatusJSON(obj, onError, custom)
	return s, err == nil
}

// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package message

import (
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/sirosfoundation/go-oicp/pkg/ids"
	"github.com/sirosfoundation/go-oicp/pkg/wire"
)

// MaxMeteringSignatureLength bounds ChargeDetailRecord.MeteringSignature.
const MaxMeteringSignatureLength = 200

// ChargeDetailRecord is the billing summary of a charging session. Meter
// values and consumed energy are kept rounded to three decimals.
type ChargeDetailRecord struct {
	sessionID            ids.SessionID
	cpoPartnerSessionID  ids.CPOPartnerSessionID
	empPartnerSessionID  ids.EMPPartnerSessionID
	partnerProductID     ids.PartnerProductID
	evseID               ids.EVSEID
	identification       Identification
	chargingStart        time.Time
	chargingEnd          time.Time
	sessionStart         time.Time
	sessionEnd           time.Time
	meterValueStart      *float64
	meterValueEnd        *float64
	meterValuesInBetween []float64
	consumedEnergy       *float64
	meteringSignature    string
	hubOperatorID        ids.HubOperatorID
	hubProviderID        ids.HubProviderID
}

// ChargeDetailRecordBuilder is the mutable form of ChargeDetailRecord.
type ChargeDetailRecordBuilder struct {
	SessionID            ids.SessionID
	CPOPartnerSessionID  ids.CPOPartnerSessionID
	EMPPartnerSessionID  ids.EMPPartnerSessionID
	PartnerProductID     ids.PartnerProductID
	EVSEID               ids.EVSEID
	Identification       *Identification
	ChargingStart        time.Time
	ChargingEnd          time.Time
	SessionStart         time.Time
	SessionEnd           time.Time
	MeterValueStart      *float64
	MeterValueEnd        *float64
	MeterValuesInBetween []float64
	ConsumedEnergy       *float64
	MeteringSignature    string
	HubOperatorID        ids.HubOperatorID
	HubProviderID        ids.HubProviderID
}

// ChargeDetailRecordOption sets optional fields on the builder behind
// NewChargeDetailRecord.
type ChargeDetailRecordOption func(*ChargeDetailRecordBuilder)

// WithChargingPeriod sets the start and end of the energy transfer.
func WithChargingPeriod(start, end time.Time) ChargeDetailRecordOption {
	return func(b *ChargeDetailRecordBuilder) {
		b.ChargingStart = start
		b.ChargingEnd = end
	}
}

// WithMeterValues sets the meter readings in kWh.
func WithMeterValues(start, end float64, inBetween ...float64) ChargeDetailRecordOption {
	return func(b *ChargeDetailRecordBuilder) {
		b.MeterValueStart = &start
		b.MeterValueEnd = &end
		b.MeterValuesInBetween = inBetween
	}
}

// WithConsumedEnergy sets the charged energy in kWh.
func WithConsumedEnergy(kwh float64) ChargeDetailRecordOption {
	return func(b *ChargeDetailRecordBuilder) { b.ConsumedEnergy = &kwh }
}

// WithMeteringSignature sets the signed meter data.
func WithMeteringSignature(s string) ChargeDetailRecordOption {
	return func(b *ChargeDetailRecordBuilder) { b.MeteringSignature = s }
}

// NewChargeDetailRecord creates a ChargeDetailRecord from its mandatory
// fields.
func NewChargeDetailRecord(
	sessionID ids.SessionID,
	evseID ids.EVSEID,
	identification *Identification,
	sessionStart, sessionEnd time.Time,
	opts ...ChargeDetailRecordOption,
) (ChargeDetailRecord, error) {
	b := &ChargeDetailRecordBuilder{
		SessionID:      sessionID,
		EVSEID:         evseID,
		Identification: identification,
		SessionStart:   sessionStart,
		SessionEnd:     sessionEnd,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b.Build()
}

func roundedPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := wire.Round3(*v)
	return &r
}

// Build validates the builder and returns the record.
func (b *ChargeDetailRecordBuilder) Build() (ChargeDetailRecord, error) {
	const typ = "ChargeDetailRecord"
	if b.SessionID.IsZero() {
		return ChargeDetailRecord{}, fieldError(typ, "SessionID", ErrMissingField)
	}
	if b.EVSEID.IsZero() {
		return ChargeDetailRecord{}, fieldError(typ, "EvseID", ErrMissingField)
	}
	if b.Identification == nil || b.Identification.IsZero() {
		return ChargeDetailRecord{}, fieldError(typ, "Identification", ErrMissingField)
	}
	if b.SessionStart.IsZero() {
		return ChargeDetailRecord{}, fieldError(typ, "SessionStart", ErrMissingField)
	}
	if b.SessionEnd.IsZero() {
		return ChargeDetailRecord{}, fieldError(typ, "SessionEnd", ErrMissingField)
	}
	r := ChargeDetailRecord{
		sessionID:           b.SessionID,
		cpoPartnerSessionID: b.CPOPartnerSessionID,
		empPartnerSessionID: b.EMPPartnerSessionID,
		partnerProductID:    b.PartnerProductID,
		evseID:              b.EVSEID,
		identification:      *b.Identification,
		chargingStart:       wire.NormalizeTimestamp(b.ChargingStart),
		chargingEnd:         wire.NormalizeTimestamp(b.ChargingEnd),
		sessionStart:        wire.NormalizeTimestamp(b.SessionStart),
		sessionEnd:          wire.NormalizeTimestamp(b.SessionEnd),
		meterValueStart:     roundedPtr(b.MeterValueStart),
		meterValueEnd:       roundedPtr(b.MeterValueEnd),
		consumedEnergy:      roundedPtr(b.ConsumedEnergy),
		meteringSignature:   wire.Truncate(strings.TrimSpace(b.MeteringSignature), MaxMeteringSignatureLength),
		hubOperatorID:       b.HubOperatorID,
		hubProviderID:       b.HubProviderID,
	}
	if len(b.MeterValuesInBetween) > 0 {
		r.meterValuesInBetween = make([]float64, len(b.MeterValuesInBetween))
		for i, v := range b.MeterValuesInBetween {
			r.meterValuesInBetween[i] = wire.Round3(v)
		}
	}
	return r, nil
}

// ToBuilder copies every field into a new builder.
func (r ChargeDetailRecord) ToBuilder() *ChargeDetailRecordBuilder {
	identification := r.identification
	b := &ChargeDetailRecordBuilder{
		SessionID:           r.sessionID,
		CPOPartnerSessionID: r.cpoPartnerSessionID,
		EMPPartnerSessionID: r.empPartnerSessionID,
		PartnerProductID:    r.partnerProductID,
		EVSEID:              r.evseID,
		Identification:      &identification,
		ChargingStart:       r.chargingStart,
		ChargingEnd:         r.chargingEnd,
		SessionStart:        r.sessionStart,
		SessionEnd:          r.sessionEnd,
		MeterValueStart:     copyPtr(r.meterValueStart),
		MeterValueEnd:       copyPtr(r.meterValueEnd),
		ConsumedEnergy:      copyPtr(r.consumedEnergy),
		MeteringSignature:   r.meteringSignature,
		HubOperatorID:       r.hubOperatorID,
		HubProviderID:       r.hubProviderID,
	}
	if len(r.meterValuesInBetween) > 0 {
		b.MeterValuesInBetween = append([]float64(nil), r.meterValuesInBetween...)
	}
	return b
}

func (r ChargeDetailRecord) SessionID() ids.SessionID { return r.sessionID }
func (r ChargeDetailRecord) CPOPartnerSessionID() ids.CPOPartnerSessionID { return r.cpoPartnerSessionID }
func (r ChargeDetailRecord) EMPPartnerSessionID() ids.EMPPartnerSessionID { return r.empPartnerSessionID }
func (r ChargeDetailRecord) PartnerProductID() ids.PartnerProductID { return r.partnerProductID }
func (r ChargeDetailRecord) EVSEID() ids.EVSEID { return r.evseID }
func (r ChargeDetailRecord) Identification() Identification { return r.identification }
func (r ChargeDetailRecord) ChargingStart() time.Time { return r.chargingStart }
func (r ChargeDetailRecord) ChargingEnd() time.Time { return r.chargingEnd }
func (r ChargeDetailRecord) SessionStart() time.Time { return r.sessionStart }
func (r ChargeDetailRecord) SessionEnd() time.Time { return r.sessionEnd }
func (r ChargeDetailRecord) MeterValueStart() (float64, bool) { return optionalFloat(r.meterValueStart) }
func (r ChargeDetailRecord) MeterValueEnd() (float64, bool) { return optionalFloat(r.meterValueEnd) }
func (r ChargeDetailRecord) ConsumedEnergy() (float64, bool) { return optionalFloat(r.consumedEnergy) }
func (r ChargeDetailRecord) MeteringSignature() string { return r.meteringSignature }
func (r ChargeDetailRecord) HubOperatorID() ids.HubOperatorID { return r.hubOperatorID }
func (r ChargeDetailRecord) HubProviderID() ids.HubProviderID { return r.hubProviderID }

// MeterValuesInBetween returns a copy of the intermediate meter values.
func (r ChargeDetailRecord) MeterValuesInBetween() []float64 {
	return append([]float64(nil), r.meterValuesInBetween...)
}

// Equal compares session ids only.
func (r ChargeDetailRecord) Equal(other ChargeDetailRecord) bool {
	return r.sessionID.Equal(other.sessionID)
}

// Compare orders by session id.
func (r ChargeDetailRecord) Compare(other ChargeDetailRecord) int {
	return r.sessionID.Compare(other.sessionID)
}

// Hash derives a hash from the session id.
func (r ChargeDetailRecord) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(r.sessionID.String()))
	return h.Sum64()
}

func (r ChargeDetailRecord) String() string {
	s := fmt.Sprintf("%s at %s (%s, %s - %s)", r.sessionID, r.evseID, r.identification,
		wire.FormatTimestamp(r.sessionStart), wire.FormatTimestamp(r.sessionEnd))
	if e, ok := r.ConsumedEnergy(); ok {
		s += ", " + wire.FormatDecimal(e) + " kWh"
	}
	return s
}

func addTimestamp(e *etree.Element, ns, local string, t time.Time) {
	if !t.IsZero() {
		wire.AddText(e, ns, local, wire.FormatTimestamp(t))
	}
}

func addDecimal(e *etree.Element, ns, local string, v *float64) {
	if v != nil {
		wire.AddText(e, ns, local, wire.FormatDecimal(*v))
	}
}

// ToXML renders an Authorization:eRoamingChargeDetailRecord element.
func (r ChargeDetailRecord) ToXML(custom wire.CustomXMLSerializer[ChargeDetailRecord]) *etree.Element {
	const ns = wire.NsAuthorization
	e := wire.NewElement(ns, "eRoamingChargeDetailRecord")
	wire.AddText(e, ns, "SessionID", r.sessionID.String())
	wire.AddOptionalText(e, ns, "CPOPartnerSessionID", r.cpoPartnerSessionID.String())
	wire.AddOptionalText(e, ns, "EMPPartnerSessionID", r.empPartnerSessionID.String())
	wire.AddOptionalText(e, ns, "PartnerProductID", r.partnerProductID.String())
	wire.AddText(e, ns, "EvseID", r.evseID.String())
	e.AddChild(r.identification.ToXML(ns, nil))
	addTimestamp(e, ns, "ChargingStart", r.chargingStart)
	addTimestamp(e, ns, "ChargingEnd", r.chargingEnd)
	addTimestamp(e, ns, "SessionStart", r.sessionStart)
	addTimestamp(e, ns, "SessionEnd", r.sessionEnd)
	addDecimal(e, ns, "MeterValueStart", r.meterValueStart)
	addDecimal(e, ns, "MeterValueEnd", r.meterValueEnd)
	if len(r.meterValuesInBetween) > 0 {
		values := make([]string, len(r.meterValuesInBetween))
		for i, v := range r.meterValuesInBetween {
			values[i] = wire.FormatDecimal(v)
		}
		addList(e, ns, "MeterValuesInBetween", "MeterValue", values)
	}
	addDecimal(e, ns, "ConsumedEnergy", r.consumedEnergy)
	wire.AddOptionalText(e, ns, "MeteringSignature", r.meteringSignature)
	wire.AddOptionalText(e, ns, "HubOperatorID", r.hubOperatorID.String())
	wire.AddOptionalText(e, ns, "HubProviderID", r.hubProviderID.String())
	return custom.Apply(r, e)
}

func optionalDecimalXML(e *etree.Element, ns, local string) (*float64, error) {
	text, ok := wire.ChildText(e, ns, local)
	if !ok {
		return nil, nil
	}
	v, err := wire.ParseDecimal(text)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func optionalTimestampXML(e *etree.Element, ns, local string) (time.Time, error) {
	text, ok := wire.ChildText(e, ns, local)
	if !ok {
		return time.Time{}, nil
	}
	return wire.ParseTimestamp(text)
}

func parseChargeDetailRecordXML(e *etree.Element) (ChargeDetailRecord, error) {
	const typ = "ChargeDetailRecord"
	const ns = wire.NsAuthorization
	if !wire.Is(e, ns, "eRoamingChargeDetailRecord") {
		return ChargeDetailRecord{}, parseError(typ, "", wire.ErrUnexpectedElement)
	}
	var b ChargeDetailRecordBuilder
	text, err := wire.RequiredText(e, ns, "SessionID")
	if err != nil {
		return ChargeDetailRecord{}, parseError(typ, "SessionID", err)
	}
	if b.SessionID, err = ids.ParseSessionID(text); err != nil {
		return ChargeDetailRecord{}, parseError(typ, "SessionID", err)
	}
	if text, ok := wire.ChildText(e, ns, "CPOPartnerSessionID"); ok && text != "" {
		if b.CPOPartnerSessionID, err = ids.ParseCPOPartnerSessionID(text); err != nil {
			return ChargeDetailRecord{}, parseError(typ, "CPOPartnerSessionID", err)
		}
	}
	if text, ok := wire.ChildText(e, ns, "EMPPartnerSessionID"); ok && text != "" {
		if b.EMPPartnerSessionID, err = ids.ParseEMPPartnerSessionID(text); err != nil {
			return ChargeDetailRecord{}, parseError(typ, "EMPPartnerSessionID", err)
		}
	}
	if text, ok := wire.ChildText(e, ns, "PartnerProductID"); ok && text != "" {
		if b.PartnerProductID, err = ids.ParsePartnerProductID(text); err != nil {
			return ChargeDetailRecord{}, parseError(typ, "PartnerProductID", err)
		}
	}
	if text, err = wire.RequiredText(e, ns, "EvseID"); err != nil {
		return ChargeDetailRecord{}, parseError(typ, "EvseID", err)
	}
	if b.EVSEID, err = ids.ParseEVSEID(text); err != nil {
		return ChargeDetailRecord{}, parseError(typ, "EvseID", err)
	}
	identification, err := parseIdentificationXML(e)
	if err != nil {
		return ChargeDetailRecord{}, parseError(typ, "Identification", err)
	}
	b.Identification = &identification

	times := []struct {
		local string
		dst   *time.Time
	}{
		{"ChargingStart", &b.ChargingStart},
		{"ChargingEnd", &b.ChargingEnd},
		{"SessionStart", &b.SessionStart},
		{"SessionEnd", &b.SessionEnd},
	}
	for _, t := range times {
		if *t.dst, err = optionalTimestampXML(e, ns, t.local); err != nil {
			return ChargeDetailRecord{}, parseError(typ, t.local, err)
		}
	}
	decimals := []struct {
		local string
		dst   **float64
	}{
		{"MeterValueStart", &b.MeterValueStart},
		{"MeterValueEnd", &b.MeterValueEnd},
		{"ConsumedEnergy", &b.ConsumedEnergy},
	}
	for _, d := range decimals {
		if *d.dst, err = optionalDecimalXML(e, ns, d.local); err != nil {
			return ChargeDetailRecord{}, parseError(typ, d.local, err)
		}
	}
	if texts, ok := listTexts(e, ns, "MeterValuesInBetween", "MeterValue"); ok {
		for _, text := range texts {
			v, err := wire.ParseDecimal(text)
			if err != nil {
				return ChargeDetailRecord{}, parseError(typ, "MeterValuesInBetween", err)
			}
			b.MeterValuesInBetween = append(b.MeterValuesInBetween, v)
		}
	}
	b.MeteringSignature, _ = wire.ChildText(e, ns, "MeteringSignature")
	if text, ok := wire.ChildText(e, ns, "HubOperatorID"); ok && text != "" {
		if b.HubOperatorID, err = ids.ParseHubOperatorID(text); err != nil {
			return ChargeDetailRecord{}, parseError(typ, "HubOperatorID", err)
		}
	}
	if text, ok := wire.ChildText(e, ns, "HubProviderID"); ok && text != "" {
		if b.HubProviderID, err = ids.ParseHubProviderID(text); err != nil {
			return ChargeDetailRecord{}, parseError(typ, "HubProviderID", err)
		}
	}
	r, err := b.Build()
	if err != nil {
		return ChargeDetailRecord{}, parseError(typ, "", err)
	}
	return r, nil
}

// ParseChargeDetailRecordXML reads an Authorization:eRoamingChargeDetailRecord element.
func ParseChargeDetailRecordXML(e *etree.Element, onError wire.ErrorHandler, custom wire.CustomXMLParser[ChargeDetailRecord]) (ChargeDetailRecord, error) {
	r, err := parseChargeDetailRecordXML(e)
	return finish(r, err, e, onError, func(v ChargeDetailRecord) ChargeDetailRecord { return custom.Apply(e, v) })
}

// TryParseChargeDetailRecordXML is ParseChargeDetailRecordXML reporting success as a bool.
func TryParseChargeDetailRecordXML(e *etree.Element, onError wire.ErrorHandler, custom wire.CustomXMLParser[ChargeDetailRecord]) (ChargeDetailRecord, bool) {
	r, err := ParseChargeDetailRecordXML(e, onError, custom)
	return r, err == nil
}

// ToJSON renders the JSON form.
func (r ChargeDetailRecord) ToJSON(custom wire.CustomJSONSerializer[ChargeDetailRecord]) wire.JSONObject {
	obj := wire.JSONObject{
		"sessionId":      r.sessionID.String(),
		"evseId":         r.evseID.String(),
		"identification": r.identification.ToJSON(nil),
		"sessionStart":   wire.FormatTimestamp(r.sessionStart),
		"sessionEnd":     wire.FormatTimestamp(r.sessionEnd),
	}
	obj.SetOptional("cpoPartnerSessionId", r.cpoPartnerSessionID.String())
	obj.SetOptional("empPartnerSessionId", r.empPartnerSessionID.String())
	obj.SetOptional("partnerProductId", r.partnerProductID.String())
	if !r.chargingStart.IsZero() {
		obj["chargingStart"] = wire.FormatTimestamp(r.chargingStart)
	}
	if !r.chargingEnd.IsZero() {
		obj["chargingEnd"] = wire.FormatTimestamp(r.chargingEnd)
	}
	if v, ok := r.MeterValueStart(); ok {
		obj["meterValueStart"] = wire.Decimal(v)
	}
	if v, ok := r.MeterValueEnd(); ok {
		obj["meterValueEnd"] = wire.Decimal(v)
	}
	if len(r.meterValuesInBetween) > 0 {
		values := make([]any, len(r.meterValuesInBetween))
		for i, v := range r.meterValuesInBetween {
			values[i] = wire.Decimal(v)
		}
		obj["meterValuesInBetween"] = values
	}
	if v, ok := r.ConsumedEnergy(); ok {
		obj["consumedEnergy"] = wire.Decimal(v)
	}
	obj.SetOptional("meteringSignature", r.meteringSignature)
	obj.SetOptional("hubOperatorId", r.hubOperatorID.String())
	obj.SetOptional("hubProviderId", r.hubProviderID.String())
	return custom.Apply(r, obj)
}

func parseChargeDetailRecordJSON(obj wire.JSONObject) (ChargeDetailRecord, error) {
	const typ = "ChargeDetailRecord"
	if obj == nil {
		return ChargeDetailRecord{}, parseError(typ, "", wire.ErrEmptyDocument)
	}
	var b ChargeDetailRecordBuilder
	text, err := obj.RequiredText("sessionId")
	if err != nil {
		return ChargeDetailRecord{}, parseError(typ, "sessionId", err)
	}
	if b.SessionID, err = ids.ParseSessionID(text); err != nil {
		return ChargeDetailRecord{}, parseError(typ, "sessionId", err)
	}
	optional := func(key string, parse func(string) error) error {
		s, ok, err := obj.Text(key)
		if err == nil && ok && s != "" {
			err = parse(s)
		}
		if err != nil {
			return parseError(typ, key, err)
		}
		return nil
	}
	steps := []struct {
		key   string
		parse func(string) error
	}{
		{"cpoPartnerSessionId", func(s string) (err error) {
			b.CPOPartnerSessionID, err = ids.ParseCPOPartnerSessionID(s)
			return err
		}},
		{"empPartnerSessionId", func(s string) (err error) {
			b.EMPPartnerSessionID, err = ids.ParseEMPPartnerSessionID(s)
			return err
		}},
		{"partnerProductId", func(s string) (err error) {
			b.PartnerProductID, err = ids.ParsePartnerProductID(s)
			return err
		}},
		{"chargingStart", func(s string) (err error) {
			b.ChargingStart, err = wire.ParseTimestamp(s)
			return err
		}},
		{"chargingEnd", func(s string) (err error) {
			b.ChargingEnd, err = wire.ParseTimestamp(s)
			return err
		}},
		{"sessionStart", func(s string) (err error) {
			b.SessionStart, err = wire.ParseTimestamp(s)
			return err
		}},
		{"sessionEnd", func(s string) (err error) {
			b.SessionEnd, err = wire.ParseTimestamp(s)
			return err
		}},
		{"meteringSignature", func(s string) error {
			b.MeteringSignature = s
			return nil
		}},
		{"hubOperatorId", func(s string) (err error) {
			b.HubOperatorID, err = ids.ParseHubOperatorID(s)
			return err
		}},
		{"hubProviderId", func(s string) (err error) {
			b.HubProviderID, err = ids.ParseHubProviderID(s)
			return err
		}},
	}
	for _, step := range steps {
		if err := optional(step.key, step.parse); err != nil {
			return ChargeDetailRecord{}, err
		}
	}
	if text, err = obj.RequiredText("evseId"); err != nil {
		return ChargeDetailRecord{}, parseError(typ, "evseId", err)
	}
	if b.EVSEID, err = ids.ParseEVSEID(text); err != nil {
		return ChargeDetailRecord{}, parseError(typ, "evseId", err)
	}
	i, ok, err := obj.Object("identification")
	if err != nil {
		return ChargeDetailRecord{}, parseError(typ, "identification", err)
	}
	if !ok {
		return ChargeDetailRecord{}, parseError(typ, "identification", wire.ErrMissingElement)
	}
	identification, err := parseIdentificationJSON(i)
	if err != nil {
		return ChargeDetailRecord{}, parseError(typ, "identification", err)
	}
	b.Identification = &identification

	decimals := []struct {
		key string
		dst **float64
	}{
		{"meterValueStart", &b.MeterValueStart},
		{"meterValueEnd", &b.MeterValueEnd},
		{"consumedEnergy", &b.ConsumedEnergy},
	}
	for _, d := range decimals {
		v, ok, err := obj.Number(d.key)
		if err != nil {
			return ChargeDetailRecord{}, parseError(typ, d.key, err)
		}
		if ok {
			*d.dst = &v
		}
	}
	values, _, err := obj.Array("meterValuesInBetween")
	if err != nil {
		return ChargeDetailRecord{}, parseError(typ, "meterValuesInBetween", err)
	}
	for idx := range values {
		item := wire.JSONObject{"value": values[idx]}
		v, ok, err := item.Number("value")
		if err != nil {
			return ChargeDetailRecord{}, parseError(typ, "meterValuesInBetween", err)
		}
		if !ok {
			return ChargeDetailRecord{}, parseError(typ, "meterValuesInBetween", wire.ErrInvalidValue)
		}
		b.MeterValuesInBetween = append(b.MeterValuesInBetween, v)
	}
	r, err := b.Build()
	if err != nil {
		return ChargeDetailRecord{}, parseError(typ, "", err)
	}
	return r, nil
}

// ParseChargeDetailRecordJSON reads the JSON form.
func ParseChargeDetailRecordJSON(obj wire.JSONObject, onError wire.ErrorHandler, custom wire.CustomJSONParser[ChargeDetailRecord]) (ChargeDetailRecord, error) {
	r, err := parseChargeDetailRecordJSON(obj)
	return finish(r, err, obj, onError, func(v ChargeDetailRecord) ChargeDetailRecord { return custom.Apply(obj, v) })
}

// TryParseChargeDetailRecordJSON is ParseChargeDetailRecordJSON reporting success as a bool.
func TryParseChargeDetailRecordJSON(obj wire.JSONObject, onError wire.ErrorHandler, custom wire.CustomJSONParser[ChargeDetailRecord]) (ChargeDetailRecord, bool) {
	r, err := ParseChargeDetailRecordJSON(obj, onError, custom)
	return r, err == nil
}

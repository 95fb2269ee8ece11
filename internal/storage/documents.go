// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package storage

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/sirosfoundation/go-oicp/pkg/ids"
	"github.com/sirosfoundation/go-oicp/pkg/message"
	"github.com/sirosfoundation/go-oicp/pkg/wire"
)

// EVSEDataDocument is the stored form of an EVSE data record
type EVSEDataDocument struct {
	ID           string    `bson:"_id"`
	OperatorID   string    `bson:"operator_id"`
	OperatorName string    `bson:"operator_name,omitempty"`
	Record       bson.D    `bson:"record"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

// EVSEStatusDocument is the stored form of an EVSE status record
type EVSEStatusDocument struct {
	ID         string    `bson:"_id"`
	OperatorID string    `bson:"operator_id"`
	Status     string    `bson:"status"`
	Record     bson.D    `bson:"record"`
	UpdatedAt  time.Time `bson:"updated_at"`
}

// ChargeDetailRecordDocument is the stored form of a charge detail record
type ChargeDetailRecordDocument struct {
	ID           string    `bson:"_id"`
	EVSEID       string    `bson:"evse_id"`
	SessionStart time.Time `bson:"session_start"`
	Record       bson.D    `bson:"record"`
	ReceivedAt   time.Time `bson:"received_at"`
}

// EncodeJSON converts a JSON wire object to a BSON document. Integers
// become int32 or int64 and decimals become doubles.
func EncodeJSON(obj wire.JSONObject) (bson.D, error) {
	data, err := obj.Marshal(false)
	if err != nil {
		return nil, fmt.Errorf("encoding JSON: %w", err)
	}
	var doc bson.D
	if err := bson.UnmarshalExtJSON(data, false, &doc); err != nil {
		return nil, fmt.Errorf("converting to BSON: %w", err)
	}
	return doc, nil
}

// DecodeJSON converts a BSON document written by EncodeJSON back to a JSON
// wire object.
func DecodeJSON(doc bson.D) (wire.JSONObject, error) {
	data, err := bson.MarshalExtJSON(doc, false, false)
	if err != nil {
		return nil, fmt.Errorf("converting from BSON: %w", err)
	}
	return wire.ParseJSONObject(data)
}

// NewEVSEDataDocument converts r, including its metadata, for storage.
func NewEVSEDataDocument(operator ids.OperatorID, operatorName string, r message.EVSEDataRecord, now time.Time) (*EVSEDataDocument, error) {
	doc, err := EncodeJSON(r.ToJSON(true, nil))
	if err != nil {
		return nil, fmt.Errorf("EVSE %s: %w", r.ID(), err)
	}
	return &EVSEDataDocument{
		ID:           r.ID().String(),
		OperatorID:   operator.String(),
		OperatorName: operatorName,
		Record:       doc,
		UpdatedAt:    now.UTC(),
	}, nil
}

// EVSEDataRecord decodes the stored record.
func (d *EVSEDataDocument) EVSEDataRecord() (message.EVSEDataRecord, error) {
	obj, err := DecodeJSON(d.Record)
	if err != nil {
		return message.EVSEDataRecord{}, fmt.Errorf("EVSE %s: %w", d.ID, err)
	}
	return message.ParseEVSEDataRecordJSON(obj, nil, nil)
}

// NewEVSEStatusDocument converts r for storage.
func NewEVSEStatusDocument(operator ids.OperatorID, r message.EVSEStatusRecord, now time.Time) (*EVSEStatusDocument, error) {
	doc, err := EncodeJSON(r.ToJSON(nil))
	if err != nil {
		return nil, fmt.Errorf("EVSE %s: %w", r.ID(), err)
	}
	return &EVSEStatusDocument{
		ID:         r.ID().String(),
		OperatorID: operator.String(),
		Status:     r.Status().String(),
		Record:     doc,
		UpdatedAt:  now.UTC(),
	}, nil
}

// EVSEStatusRecord decodes the stored record.
func (d *EVSEStatusDocument) EVSEStatusRecord() (message.EVSEStatusRecord, error) {
	obj, err := DecodeJSON(d.Record)
	if err != nil {
		return message.EVSEStatusRecord{}, fmt.Errorf("EVSE %s: %w", d.ID, err)
	}
	return message.ParseEVSEStatusRecordJSON(obj, nil, nil)
}

// NewChargeDetailRecordDocument converts r for storage.
func NewChargeDetailRecordDocument(r message.ChargeDetailRecord, now time.Time) (*ChargeDetailRecordDocument, error) {
	doc, err := EncodeJSON(r.ToJSON(nil))
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", r.SessionID(), err)
	}
	return &ChargeDetailRecordDocument{
		ID:           r.SessionID().String(),
		EVSEID:       r.EVSEID().String(),
		SessionStart: r.SessionStart(),
		Record:       doc,
		ReceivedAt:   now.UTC(),
	}, nil
}

// ChargeDetailRecord decodes the stored record.
func (d *ChargeDetailRecordDocument) ChargeDetailRecord() (message.ChargeDetailRecord, error) {
	obj, err := DecodeJSON(d.Record)
	if err != nil {
		return message.ChargeDetailRecord{}, fmt.Errorf("session %s: %w", d.ID, err)
	}
	return message.ParseChargeDetailRecordJSON(obj, nil, nil)
}

// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

// Package storage provides persistence interfaces for decoded OICP records.
//
// # Interface Design
//
// The storage layer is organized into focused interfaces:
//
//   - [EVSEDataStore]: EVSE data records keyed by EVSE id
//   - [EVSEStatusStore]: last known EVSE status keyed by EVSE id
//   - [ChargeDetailRecordStore]: charge detail records keyed by session id
//
// The [RecordStore] interface combines all sub-stores.
//
// Records are persisted in their JSON wire form converted to BSON, see
// [EncodeJSON], so a stored document reads like the OICP payload it came
// from.
//
// # Implementations
//
// The mongodb sub-package provides a MongoDB implementation and the memory
// sub-package an in-process one for tests and dry runs.
//
// # Concurrency
//
// All store implementations must be safe for concurrent use from multiple
// goroutines.
package storage

import (
	"context"
	"errors"

	"github.com/sirosfoundation/go-oicp/pkg/ids"
	"github.com/sirosfoundation/go-oicp/pkg/message"
)

var (
	// ErrNotFound is returned when no record exists for a key.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a charge detail record for the same
	// session is already stored.
	ErrDuplicate = errors.New("duplicate record")
)

// RecordStore is the main storage interface combining all sub-stores
type RecordStore interface {
	EVSEDataStore
	EVSEStatusStore
	ChargeDetailRecordStore

	// Close releases storage resources
	Close(ctx context.Context) error

	// Ping checks database connectivity
	Ping(ctx context.Context) error
}

// EVSEDataStore manages EVSE data records
type EVSEDataStore interface {
	// PutEVSEData upserts every record of d. Records with delta type
	// delete are removed instead. It returns the number of records
	// written or removed.
	PutEVSEData(ctx context.Context, d message.EVSEData) (int, error)

	// GetEVSEData retrieves the record of an EVSE
	GetEVSEData(ctx context.Context, id ids.EVSEID) (message.EVSEDataRecord, error)

	// ListEVSEData returns the records of one operator ordered by EVSE id
	ListEVSEData(ctx context.Context, operator ids.OperatorID) ([]message.EVSEDataRecord, error)
}

// EVSEStatusStore manages EVSE status records
type EVSEStatusStore interface {
	// PutEVSEStatus stores the status of every record in s and returns
	// the number of records written.
	PutEVSEStatus(ctx context.Context, s message.EVSEStatus) (int, error)

	// GetEVSEStatus retrieves the last stored status of an EVSE
	GetEVSEStatus(ctx context.Context, id ids.EVSEID) (message.EVSEStatusRecord, error)
}

// ChargeDetailRecordStore manages charge detail records
type ChargeDetailRecordStore interface {
	// PutChargeDetailRecord stores cdr. It returns ErrDuplicate when the
	// session is already stored.
	PutChargeDetailRecord(ctx context.Context, cdr message.ChargeDetailRecord) error

	// GetChargeDetailRecord retrieves the record of a session
	GetChargeDetailRecord(ctx context.Context, id ids.SessionID) (message.ChargeDetailRecord, error)
}

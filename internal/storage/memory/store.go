// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

// Package memory implements storage interfaces in process memory.
//
// Records go through the same document conversion as the MongoDB store, so
// the store doubles as a check of the stored representation.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/sirosfoundation/go-oicp/internal/storage"
	"github.com/sirosfoundation/go-oicp/pkg/ids"
	"github.com/sirosfoundation/go-oicp/pkg/message"
)

var _ storage.RecordStore = (*Store)(nil)

// Store implements storage.RecordStore in memory
type Store struct {
	mu       sync.RWMutex
	evses    map[string]*storage.EVSEDataDocument
	statuses map[string]*storage.EVSEStatusDocument
	cdrs     map[string]*storage.ChargeDetailRecordDocument
	now      func() time.Time
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		evses:    make(map[string]*storage.EVSEDataDocument),
		statuses: make(map[string]*storage.EVSEStatusDocument),
		cdrs:     make(map[string]*storage.ChargeDetailRecordDocument),
		now:      time.Now,
	}
}

// Close is a no-op
func (s *Store) Close(ctx context.Context) error { return nil }

// Ping always succeeds
func (s *Store) Ping(ctx context.Context) error { return nil }

func (s *Store) PutEVSEData(ctx context.Context, d message.EVSEData) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, g := range d.OperatorEVSEData() {
		for _, r := range g.Records() {
			key := r.ID().String()
			if r.DeltaType() == message.DeltaTypeDelete {
				if _, ok := s.evses[key]; ok {
					delete(s.evses, key)
					n++
				}
				continue
			}
			doc, err := storage.NewEVSEDataDocument(g.OperatorID(), g.OperatorName(), r, s.now())
			if err != nil {
				return n, err
			}
			s.evses[key] = doc
			n++
		}
	}
	return n, nil
}

func (s *Store) GetEVSEData(ctx context.Context, id ids.EVSEID) (message.EVSEDataRecord, error) {
	s.mu.RLock()
	doc, ok := s.evses[id.String()]
	s.mu.RUnlock()

	if !ok {
		return message.EVSEDataRecord{}, fmt.Errorf("EVSE %s: %w", id, storage.ErrNotFound)
	}
	return doc.EVSEDataRecord()
}

func (s *Store) ListEVSEData(ctx context.Context, operator ids.OperatorID) ([]message.EVSEDataRecord, error) {
	s.mu.RLock()
	var docs []*storage.EVSEDataDocument
	for _, doc := range s.evses {
		if doc.OperatorID == operator.String() {
			docs = append(docs, doc)
		}
	}
	s.mu.RUnlock()

	records := make([]message.EVSEDataRecord, 0, len(docs))
	for _, doc := range docs {
		r, err := doc.EVSEDataRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	slices.SortFunc(records, message.EVSEDataRecord.Compare)
	return records, nil
}

func (s *Store) PutEVSEStatus(ctx context.Context, st message.EVSEStatus) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, g := range st.OperatorEVSEStatus() {
		for _, r := range g.Records() {
			doc, err := storage.NewEVSEStatusDocument(g.OperatorID(), r, s.now())
			if err != nil {
				return n, err
			}
			s.statuses[doc.ID] = doc
			n++
		}
	}
	return n, nil
}

func (s *Store) GetEVSEStatus(ctx context.Context, id ids.EVSEID) (message.EVSEStatusRecord, error) {
	s.mu.RLock()
	doc, ok := s.statuses[id.String()]
	s.mu.RUnlock()

	if !ok {
		return message.EVSEStatusRecord{}, fmt.Errorf("EVSE %s: %w", id, storage.ErrNotFound)
	}
	return doc.EVSEStatusRecord()
}

func (s *Store) PutChargeDetailRecord(ctx context.Context, cdr message.ChargeDetailRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := cdr.SessionID().String()
	if _, ok := s.cdrs[key]; ok {
		return fmt.Errorf("session %s: %w", key, storage.ErrDuplicate)
	}
	doc, err := storage.NewChargeDetailRecordDocument(cdr, s.now())
	if err != nil {
		return err
	}
	s.cdrs[key] = doc
	return nil
}

func (s *Store) GetChargeDetailRecord(ctx context.Context, id ids.SessionID) (message.ChargeDetailRecord, error) {
	s.mu.RLock()
	doc, ok := s.cdrs[id.String()]
	s.mu.RUnlock()

	if !ok {
		return message.ChargeDetailRecord{}, fmt.Errorf("session %s: %w", id, storage.ErrNotFound)
	}
	return doc.ChargeDetailRecord()
}

// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package registry

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/sirosfoundation/go-oicp/pkg/ids"
	"github.com/sirosfoundation/go-oicp/pkg/message"
)

// ErrDuplicateCDR reports a charge detail record whose session id was
// already recorded within the duplicate window.
var ErrDuplicateCDR = errors.New("duplicate charge detail record")

// Stats counts the effect of applying an EVSE data document.
type Stats struct {
	Inserted int
	Updated  int
	Deleted  int
	// Replaced counts operators whose records were fully reloaded.
	Replaced int
}

type evseEntry struct {
	operator ids.OperatorID
	record   message.EVSEDataRecord
}

// Registry holds EVSE data, EVSE status and recently seen CDR sessions.
// It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	evses     map[string]evseEntry
	operators map[string]string
	statuses  map[string]message.EVSEStatusRecord

	sessions        map[string]time.Time
	duplicateWindow time.Duration
	now             func() time.Time
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// New creates a registry remembering CDR session ids for duplicateWindow.
func New(duplicateWindow time.Duration, opts ...Option) *Registry {
	r := &Registry{
		evses:           make(map[string]evseEntry),
		operators:       make(map[string]string),
		statuses:        make(map[string]message.EVSEStatusRecord),
		sessions:        make(map[string]time.Time),
		duplicateWindow: duplicateWindow,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func hasDelta(g message.OperatorEVSEData) bool {
	for _, rec := range g.Records() {
		if rec.DeltaType() != message.DeltaTypeNone {
			return true
		}
	}
	return false
}

// ApplyEVSEData merges d into the registry.
func (r *Registry) ApplyEVSEData(d message.EVSEData) Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	var stats Stats
	for _, g := range d.OperatorEVSEData() {
		op := g.OperatorID()
		r.operators[op.String()] = g.OperatorName()
		if !hasDelta(g) {
			for key, e := range r.evses {
				if e.operator.Equal(op) {
					delete(r.evses, key)
				}
			}
			stats.Replaced++
		}
		for _, rec := range g.Records() {
			key := rec.ID().String()
			_, exists := r.evses[key]
			if rec.DeltaType() == message.DeltaTypeDelete {
				if exists {
					delete(r.evses, key)
					stats.Deleted++
				}
				continue
			}
			r.evses[key] = evseEntry{operator: op, record: rec}
			if exists {
				stats.Updated++
			} else {
				stats.Inserted++
			}
		}
	}
	return stats
}

// EVSE returns the data record of id.
func (r *Registry) EVSE(id ids.EVSEID) (message.EVSEDataRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.evses[id.String()]
	return e.record, ok
}

// Len returns the number of known EVSEs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.evses)
}

// Snapshot renders the registry content as an EVSEData document, one
// operator group per operator with records ordered by EVSE id.
func (r *Registry) Snapshot() (message.EVSEData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byOperator := make(map[string][]message.EVSEDataRecord)
	operatorIDs := make(map[string]ids.OperatorID)
	for _, e := range r.evses {
		key := e.operator.String()
		byOperator[key] = append(byOperator[key], e.record)
		operatorIDs[key] = e.operator
	}
	keys := make([]string, 0, len(byOperator))
	for key := range byOperator {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	groups := make([]message.OperatorEVSEData, 0, len(keys))
	for _, key := range keys {
		records := byOperator[key]
		slices.SortFunc(records, message.EVSEDataRecord.Compare)
		g, err := message.NewOperatorEVSEData(operatorIDs[key], r.operators[key], records)
		if err != nil {
			return message.EVSEData{}, fmt.Errorf("operator %s: %w", key, err)
		}
		groups = append(groups, g)
	}
	return message.NewEVSEData(groups...), nil
}

// ApplyEVSEStatus stores the status of every record in s and returns how
// many records changed.
func (r *Registry) ApplyEVSEStatus(s message.EVSEStatus) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	changed := 0
	for _, rec := range s.Records() {
		key := rec.ID().String()
		if old, ok := r.statuses[key]; ok && old.Equal(rec) {
			continue
		}
		r.statuses[key] = rec
		changed++
	}
	return changed
}

// Status returns the last known status of id.
func (r *Registry) Status(id ids.EVSEID) (message.EVSEStatusType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.statuses[id.String()]
	return rec.Status(), ok
}

// StatusCounts returns the number of EVSEs per status.
func (r *Registry) StatusCounts() map[message.EVSEStatusType]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[message.EVSEStatusType]int)
	for _, rec := range r.statuses {
		counts[rec.Status()]++
	}
	return counts
}

// IsDuplicate reports whether a CDR for id was recorded within the
// duplicate window.
func (r *Registry) IsDuplicate(id ids.SessionID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	receivedAt, exists := r.sessions[id.String()]
	if !exists {
		return false
	}
	return r.now().Sub(receivedAt) < r.duplicateWindow
}

// RecordChargeDetailRecord remembers the session of cdr. It returns
// ErrDuplicateCDR when the session was seen within the duplicate window.
func (r *Registry) RecordChargeDetailRecord(cdr message.ChargeDetailRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := cdr.SessionID().String()
	now := r.now()
	if receivedAt, exists := r.sessions[key]; exists && now.Sub(receivedAt) < r.duplicateWindow {
		return fmt.Errorf("%w: session %s", ErrDuplicateCDR, key)
	}
	r.sessions[key] = now
	return nil
}

// Prune forgets sessions older than the duplicate window and returns how
// many were removed.
func (r *Registry) Prune() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for key, receivedAt := range r.sessions {
		if now.Sub(receivedAt) >= r.duplicateWindow {
			delete(r.sessions, key)
			removed++
		}
	}
	return removed
}

// Run calls Prune every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Prune()
		}
	}
}

// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package convert

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sirosfoundation/go-oicp/internal/storage"
	"github.com/sirosfoundation/go-oicp/pkg/registry"
)

// Importer feeds decoded documents into a registry and a record store.
// Either may be nil.
type Importer struct {
	Registry *registry.Registry
	Store    storage.RecordStore
	Logger   *slog.Logger
}

// Result summarizes one import.
type Result struct {
	Stats     registry.Stats
	Changed   int
	Stored    int
	Duplicate bool
}

// Import applies doc. A duplicate charge detail record is logged and
// skipped, not treated as an error. Acknowledgements are ignored.
func (im *Importer) Import(ctx context.Context, doc *Document) (Result, error) {
	logger := im.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var res Result
	var err error
	switch doc.Kind {
	case KindEVSEData:
		if im.Registry != nil {
			res.Stats = im.Registry.ApplyEVSEData(doc.EVSEData)
			logger.Info("applied EVSE data",
				"inserted", res.Stats.Inserted,
				"updated", res.Stats.Updated,
				"deleted", res.Stats.Deleted,
				"replaced_operators", res.Stats.Replaced,
				"known_evses", im.Registry.Len())
		}
		if im.Store != nil {
			if res.Stored, err = im.Store.PutEVSEData(ctx, doc.EVSEData); err != nil {
				return res, err
			}
		}

	case KindEVSEStatus:
		if im.Registry != nil {
			res.Changed = im.Registry.ApplyEVSEStatus(doc.EVSEStatus)
			logger.Info("applied EVSE status", "changed", res.Changed)
		}
		if im.Store != nil {
			if res.Stored, err = im.Store.PutEVSEStatus(ctx, doc.EVSEStatus); err != nil {
				return res, err
			}
		}

	case KindChargeDetailRecord:
		cdr := doc.ChargeDetailRecord
		if im.Registry != nil {
			if err := im.Registry.RecordChargeDetailRecord(cdr); err != nil {
				if !errors.Is(err, registry.ErrDuplicateCDR) {
					return res, err
				}
				logger.Warn("duplicate charge detail record", "session_id", cdr.SessionID().String())
				res.Duplicate = true
				return res, nil
			}
		}
		if im.Store != nil {
			err := im.Store.PutChargeDetailRecord(ctx, cdr)
			if errors.Is(err, storage.ErrDuplicate) {
				logger.Warn("charge detail record already stored", "session_id", cdr.SessionID().String())
				res.Duplicate = true
				return res, nil
			}
			if err != nil {
				return res, err
			}
			res.Stored = 1
		}

	default:
		logger.Debug("nothing to import", "kind", doc.Kind.String())
	}
	return res, nil
}

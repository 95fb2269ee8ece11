// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package registry keeps the current EVSE picture of a roaming partner.

A Registry applies EVSE data documents, tracks the latest EVSE status and
detects charge detail records that arrive twice.

# EVSE data

Operator groups whose records carry no delta type are full loads: every
record previously known for that operator is replaced. Otherwise each
record is applied according to its delta type:

	reg := registry.New(24 * time.Hour)
	stats := reg.ApplyEVSEData(data)
	log.Info("evse data applied", "inserted", stats.Inserted, "deleted", stats.Deleted)

# Charge detail records

	if err := reg.RecordChargeDetailRecord(cdr); errors.Is(err, registry.ErrDuplicateCDR) {
	    // already billed
	}

Session ids are remembered for the duplicate window. Run prunes expired
entries periodically until its context ends.
*/
package registry

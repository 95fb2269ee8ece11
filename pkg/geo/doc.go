// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

// Package geo provides the postal address and geo coordinate values carried
// by EVSE data records, together with their OICP XML and JSON mappings.
//
// Both types are plain values. The element that wraps them belongs to the
// namespace of the owning message, so the XML functions take the parent
// namespace; the children are always CommonTypes.
package geo

// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

// Package message implements the OICP message model and its XML and JSON
// wire mappings.
//
// Records are immutable once built. Each aggregate has a mutable Builder
// whose Build method runs the same checks as the direct constructor, and a
// ToBuilder method for copy-on-write edits.
//
// Two error regimes apply. Constructors and Build fail fast with a
// FieldError naming the violated field. Parse functions return a
// *wire.ParseError instead of panicking and also report it to an optional
// wire.ErrorHandler; TryParse variants collapse the error to a boolean.
//
// Group wrappers (OperatorEVSEData, OperatorEVSEStatus, EVSEData,
// EVSEStatus) compare by operator identity and record count only. Two
// groups holding different records of equal number are Equal.
package message

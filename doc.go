// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package gooicp implements the message model of the Open InterCharge
Protocol (OICP) together with its XML and JSON wire mappings.

# Overview

go-oicp covers the data exchanged between charge point operators (CPOs),
e-mobility providers (EMPs) and a roaming hub: static EVSE data, dynamic
EVSE status, charge detail records and the customer identifications that
authorize a charging session. Every record is immutable once built and
round-trips losslessly between its XML element and its JSON object.

Transport is left to the caller. The library turns etree elements and
decoded JSON objects into validated records and back.

# Package Structure

	github.com/sirosfoundation/go-oicp/pkg/ids         - Validated identifiers (EVSE, operator, EVCO, session, UID)
	github.com/sirosfoundation/go-oicp/pkg/geo         - Address and coordinates collaborators
	github.com/sirosfoundation/go-oicp/pkg/wire        - Namespaces, XML/JSON helpers, formatting, hooks, parse errors
	github.com/sirosfoundation/go-oicp/pkg/message     - Records, enumerations, identifications, SOAP envelope
	github.com/sirosfoundation/go-oicp/pkg/registry    - Delta aware EVSE registry and CDR duplicate detection
	github.com/sirosfoundation/go-oicp/pkg/compression - GZIP framing for wire documents

The cmd/oicpconv tool converts documents between XML and JSON and can
replay them into a registry or a MongoDB record store.

# Quick Start

Build a record and render it:

	record, err := message.NewEVSEDataRecord(
	    ids.MustParseEVSEID("DE*GEF*E123456789*1"),
	    geo.Address{Country: "DEU", City: "Berlin", Street: "Alexanderplatz"},
	    coordinates,
	    message.PlugType2Outlet,
	    message.AuthNFCRFIDClassic.With(message.AuthREMOTE),
	    "+49 30 1234567",
	)
	element := record.ToXML(false, nil)
	object := record.ToJSON(false, nil)

Parse a received document, collecting record level problems:

	root, err := message.UnwrapSOAP(body)
	data, err := message.ParseEVSEDataXML(root, wire.LogErrors(logger), nil)

# Error Handling

Constructors and builders return a *message.FieldError naming the field
that broke an invariant. Parse functions return a *wire.ParseError and
report it to the optional wire.ErrorHandler; they never panic. Inside
group documents a broken record is reported and dropped while its
siblings survive.

# Customization

Every ToXML, ToJSON and Parse function accepts an optional hook that sees
the default result and may replace it. Hooks carry vendor extensions that
the protocol itself does not define.

# References

  - OICP 2.3: https://github.com/hubject/oicp
  - SOAP 1.1: https://www.w3.org/TR/2000/NOTE-SOAP-20000508/

# License

BSD-2-Clause License
*/
package gooicp

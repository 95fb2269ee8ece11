// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

// Package convert detects, decodes and re-encodes OICP wire documents for
// the oicpconv tool.
package convert

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/beevik/etree"

	"github.com/sirosfoundation/go-oicp/pkg/compression"
	"github.com/sirosfoundation/go-oicp/pkg/message"
	"github.com/sirosfoundation/go-oicp/pkg/wire"
)

// Wire formats.
const (
	FormatXML  = "xml"
	FormatJSON = "json"
)

// ErrUnknownDocument is returned for input that is not a supported OICP
// document.
var ErrUnknownDocument = errors.New("unknown document kind")

// Kind identifies the top level type of a document.
type Kind int

const (
	KindUnknown Kind = iota
	KindEVSEData
	KindEVSEStatus
	KindChargeDetailRecord
	KindAcknowledgement
)

func (k Kind) String() string {
	switch k {
	case KindEVSEData:
		return "EVSEData"
	case KindEVSEStatus:
		return "EVSEStatus"
	case KindChargeDetailRecord:
		return "ChargeDetailRecord"
	case KindAcknowledgement:
		return "Acknowledgement"
	}
	return "Unknown"
}

// Document holds one decoded document. Only the field matching Kind is set.
type Document struct {
	Kind               Kind
	EVSEData           message.EVSEData
	EVSEStatus         message.EVSEStatus
	ChargeDetailRecord message.ChargeDetailRecord
	Acknowledgement    message.Acknowledgement
}

func (d *Document) String() string {
	switch d.Kind {
	case KindEVSEData:
		return d.EVSEData.String()
	case KindEVSEStatus:
		return d.EVSEStatus.String()
	case KindChargeDetailRecord:
		return d.ChargeDetailRecord.String()
	case KindAcknowledgement:
		return d.Acknowledgement.String()
	}
	return "Unknown document"
}

// Options control encoding.
type Options struct {
	IncludeMetadata bool
	Pretty          bool
	// SOAP wraps XML output in an envelope.
	SOAP bool
	Gzip bool
}

// DetectFormat sniffs the first significant byte of data.
func DetectFormat(data []byte) (string, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) == 0 {
		return "", wire.ErrEmptyDocument
	}
	switch trimmed[0] {
	case '<':
		return FormatXML, nil
	case '{':
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: cannot detect wire format", ErrUnknownDocument)
}

// Decode parses data, which may be gzip framed. An empty format means
// detect. Record level failures inside group documents are reported to
// onError and do not fail the document.
func Decode(data []byte, format string, onError wire.ErrorHandler) (*Document, error) {
	data, err := compression.NewCompressor().Inflate(data)
	if err != nil {
		return nil, err
	}
	if format == "" || format == "auto" {
		if format, err = DetectFormat(data); err != nil {
			return nil, err
		}
	}
	switch format {
	case FormatXML:
		return decodeXML(data, onError)
	case FormatJSON:
		return decodeJSON(data, onError)
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

// unwrapRoot descends from an eRoaming request element to the payload it
// carries.
func unwrapRoot(e *etree.Element) *etree.Element {
	switch e.Tag {
	case "eRoamingEvseData", "eRoamingPushEvseData":
		if c := wire.Child(e, wire.NsEVSEData, "EvseData"); c != nil {
			return c
		}
	case "eRoamingEvseStatus", "eRoamingPushEvseStatus":
		if c := wire.Child(e, wire.NsEVSEStatus, "EvseStatuses"); c != nil {
			return c
		}
	}
	return e
}

func decodeXML(data []byte, onError wire.ErrorHandler) (*Document, error) {
	root, err := message.UnwrapSOAP(data)
	if err != nil {
		return nil, err
	}
	root = unwrapRoot(root)

	doc := &Document{}
	switch root.Tag {
	case "EvseData":
		doc.Kind = KindEVSEData
		doc.EVSEData, err = message.ParseEVSEDataXML(root, onError, nil)
	case "EvseStatuses":
		doc.Kind = KindEVSEStatus
		doc.EVSEStatus, err = message.ParseEVSEStatusXML(root, onError, nil)
	case "eRoamingChargeDetailRecord":
		doc.Kind = KindChargeDetailRecord
		doc.ChargeDetailRecord, err = message.ParseChargeDetailRecordXML(root, onError, nil)
	case "eRoamingAcknowledgement":
		doc.Kind = KindAcknowledgement
		doc.Acknowledgement, err = message.ParseAcknowledgementXML(root, onError, nil)
	default:
		return nil, fmt.Errorf("%w: element %s", ErrUnknownDocument, root.FullTag())
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func decodeJSON(data []byte, onError wire.ErrorHandler) (*Document, error) {
	obj, err := wire.ParseJSONObject(data)
	if err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}

	doc := &Document{}
	switch {
	case obj.Has("operatorEvseData"):
		doc.Kind = KindEVSEData
		doc.EVSEData, err = message.ParseEVSEDataJSON(obj, onError, nil)
	case obj.Has("operatorEvseStatus"):
		doc.Kind = KindEVSEStatus
		doc.EVSEStatus, err = message.ParseEVSEStatusJSON(obj, onError, nil)
	case obj.Has("sessionId") && obj.Has("evseId"):
		doc.Kind = KindChargeDetailRecord
		doc.ChargeDetailRecord, err = message.ParseChargeDetailRecordJSON(obj, onError, nil)
	case obj.Has("result") && obj.Has("statusCode"):
		doc.Kind = KindAcknowledgement
		doc.Acknowledgement, err = message.ParseAcknowledgementJSON(obj, onError, nil)
	default:
		return nil, fmt.Errorf("%w: JSON object", ErrUnknownDocument)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Encode renders doc in format.
func Encode(doc *Document, format string, opts Options) ([]byte, error) {
	var out []byte
	var err error
	switch format {
	case FormatXML:
		out, err = encodeXML(doc, opts)
	case FormatJSON:
		if opts.SOAP {
			return nil, errors.New("SOAP envelopes require XML output")
		}
		out, err = encodeJSON(doc, opts)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, err
	}
	if opts.Gzip {
		return compression.NewCompressor().Compress(out)
	}
	return out, nil
}

func encodeXML(doc *Document, opts Options) ([]byte, error) {
	var root *etree.Element
	switch doc.Kind {
	case KindEVSEData:
		root = doc.EVSEData.ToXML(opts.IncludeMetadata, nil)
	case KindEVSEStatus:
		root = doc.EVSEStatus.ToXML(nil)
	case KindChargeDetailRecord:
		root = doc.ChargeDetailRecord.ToXML(nil)
	case KindAcknowledgement:
		root = doc.Acknowledgement.ToXML(nil)
	default:
		return nil, ErrUnknownDocument
	}
	if !opts.SOAP {
		return wire.WriteXML(root, opts.Pretty)
	}
	env := message.WrapSOAP(root)
	if opts.Pretty {
		env.Indent(2)
	}
	return env.WriteToBytes()
}

func encodeJSON(doc *Document, opts Options) ([]byte, error) {
	var obj wire.JSONObject
	switch doc.Kind {
	case KindEVSEData:
		obj = doc.EVSEData.ToJSON(opts.IncludeMetadata, nil)
	case KindEVSEStatus:
		obj = doc.EVSEStatus.ToJSON(nil)
	case KindChargeDetailRecord:
		obj = doc.ChargeDetailRecord.ToJSON(nil)
	case KindAcknowledgement:
		obj = doc.Acknowledgement.ToJSON(nil)
	default:
		return nil, ErrUnknownDocument
	}
	return obj.Marshal(opts.Pretty)
}

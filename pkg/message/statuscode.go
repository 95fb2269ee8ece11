// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package message

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/sirosfoundation/go-oicp/pkg/wire"
)

// StatusCodes is the numeric OICP result code.
type StatusCodes int

const (
	StatusSuccess                            StatusCodes = 0
	StatusHubjectSystemError                 StatusCodes = 1
	StatusHubjectDatabaseError               StatusCodes = 2
	StatusDataTransactionError               StatusCodes = 9
	StatusUnauthorizedAccess                 StatusCodes = 17
	StatusInconsistentEvseID                 StatusCodes = 18
	StatusInconsistentEvcoID                 StatusCodes = 19
	StatusSystemError                        StatusCodes = 21
	StatusDataError                          StatusCodes = 22
	StatusQRCodeAuthenticationFailed         StatusCodes = 101
	StatusRFIDAuthenticationFailedInvalidUID StatusCodes = 102
	StatusRFIDCardNotReadable                StatusCodes = 103
	StatusPLCAuthenticationFailedEvcoID      StatusCodes = 105
	StatusNoPositiveAuthenticationResponse   StatusCodes = 106
	StatusQRCodeAppAuthenticationTimeout     StatusCodes = 110
	StatusPLCInvalidUnderlyingEvcoID         StatusCodes = 120
	StatusPLCInvalidCertificate              StatusCodes = 121
	StatusPLCAuthenticationTimeout           StatusCodes = 122
	StatusEvcoIDLocked                       StatusCodes = 200
	StatusNoValidContract                    StatusCodes = 210
	StatusPartnerNotFound                    StatusCodes = 300
	StatusPartnerDidNotRespond               StatusCodes = 310
	StatusServiceNotAvailable                StatusCodes = 320
	StatusSessionIsInvalid                   StatusCodes = 400
	StatusCommunicationToEVSEFailed          StatusCodes = 501
	StatusNoRemoteStartPossible              StatusCodes = 502
	StatusEVSEAlreadyReserved                StatusCodes = 601
	StatusEVSEAlreadyInUse                   StatusCodes = 602
	StatusUnknownEVSEID                      StatusCodes = 603
	StatusEVSEOutOfService                   StatusCodes = 604
	StatusNoEVConnectedToEVSE                StatusCodes = 700
)

var statusDescriptions = map[StatusCodes]string{
	StatusSuccess:                            "Success",
	StatusHubjectSystemError:                 "Hubject system error",
	StatusHubjectDatabaseError:               "Hubject database error",
	StatusDataTransactionError:               "Data transaction error",
	StatusUnauthorizedAccess:                 "Unauthorized Access",
	StatusInconsistentEvseID:                 "Inconsistent EvseID",
	StatusInconsistentEvcoID:                 "Inconsistent EvcoID",
	StatusSystemError:                        "System error",
	StatusDataError:                          "Data error",
	StatusQRCodeAuthenticationFailed:         "QR Code Authentication failed - Invalid Credentials",
	StatusRFIDAuthenticationFailedInvalidUID: "RFID Authentication failed - invalid UID",
	StatusRFIDCardNotReadable:                "RFID Authentication failed - card not readable",
	StatusPLCAuthenticationFailedEvcoID:      "PLC Authentication failed - invalid EvcoID",
	StatusNoPositiveAuthenticationResponse:   "No positive authentication response",
	StatusQRCodeAppAuthenticationTimeout:     "QR Code App Authentication failed - time out error",
	StatusPLCInvalidUnderlyingEvcoID:         "PLC (ISO/IEC 15118) Authentication failed - invalid underlying EvcoID",
	StatusPLCInvalidCertificate:              "PLC (ISO/IEC 15118) Authentication failed - invalid certificate",
	StatusPLCAuthenticationTimeout:           "PLC (ISO/IEC 15118) Authentication failed - time out error",
	StatusEvcoIDLocked:                       "EvcoID locked",
	StatusNoValidContract:                    "No valid contract",
	StatusPartnerNotFound:                    "Partner not found",
	StatusPartnerDidNotRespond:               "Partner did not respond",
	StatusServiceNotAvailable:                "Service not available",
	StatusSessionIsInvalid:                   "Session is invalid",
	StatusCommunicationToEVSEFailed:          "Communication to EVSE failed",
	StatusNoRemoteStartPossible:              "Charging process cannot be started remotely",
	StatusEVSEAlreadyReserved:                "EVSE already reserved",
	StatusEVSEAlreadyInUse:                   "EVSE already in use / wrong token",
	StatusUnknownEVSEID:                      "Unknown EVSE ID",
	StatusEVSEOutOfService:                   "EVSE out of service",
	StatusNoEVConnectedToEVSE:                "No EV connected to EVSE",
}

// Describe returns the registry description of c, or "" for codes outside
// the registry.
func (c StatusCodes) Describe() string {
	return statusDescriptions[c]
}

// IsKnown reports whether c is part of the registry.
func (c StatusCodes) IsKnown() bool {
	_, ok := statusDescriptions[c]
	return ok
}

// String renders the three digit wire form.
func (c StatusCodes) String() string {
	return fmt.Sprintf("%03d", int(c))
}

// ParseStatusCodes reads a numeric code. Codes outside the registry are
// accepted so that newer protocol revisions can be read.
func ParseStatusCodes(s string) (StatusCodes, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || n > 999 {
		return 0, fmt.Errorf("%w: status code %q", wire.ErrInvalidValue, s)
	}
	return StatusCodes(n), nil
}

// StatusCode is the result of an OICP operation.
type StatusCode struct {
	code           StatusCodes
	description    string
	additionalInfo string
}

// StatusCodeOption sets an optional StatusCode field.
type StatusCodeOption func(*StatusCode)

// WithDescription sets the human readable description.
func WithDescription(d string) StatusCodeOption {
	return func(s *StatusCode) { s.description = strings.TrimSpace(d) }
}

// WithAdditionalInfo sets the additional information text.
func WithAdditionalInfo(info string) StatusCodeOption {
	return func(s *StatusCode) { s.additionalInfo = strings.TrimSpace(info) }
}

// NewStatusCode creates a StatusCode.
func NewStatusCode(code StatusCodes, opts ...StatusCodeOption) StatusCode {
	s := StatusCode{code: code}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s StatusCode) Code() StatusCodes { return s.code }
func (s StatusCode) Description() string { return s.description }
func (s StatusCode) AdditionalInfo() string { return s.additionalInfo }

// HasResult reports whether the code signals success.
func (s StatusCode) HasResult() bool { return s.code == StatusSuccess }

// Equal compares code, description and additional info.
func (s StatusCode) Equal(other StatusCode) bool {
	return s == other
}

// Compare orders by code, then description, then additional info.
func (s StatusCode) Compare(other StatusCode) int {
	switch {
	case s.code < other.code:
		return -1
	case s.code > other.code:
		return 1
	}
	if c := strings.Compare(s.description, other.description); c != 0 {
		return c
	}
	return strings.Compare(s.additionalInfo, other.additionalInfo)
}

func (s StatusCode) String() string {
	var b strings.Builder
	b.WriteString("StatusCode: ")
	b.WriteString(s.code.String())
	if s.description != "" {
		b.WriteString(", Description: ")
		b.WriteString(s.description)
	}
	if s.additionalInfo != "" {
		b.WriteString(", Additional Info: ")
		b.WriteString(s.additionalInfo)
	}
	return b.String()
}

// ToXML renders a CommonTypes:StatusCode element.
func (s StatusCode) ToXML(custom wire.CustomXMLSerializer[StatusCode]) *etree.Element {
	e := wire.NewElement(wire.NsCommonTypes, "StatusCode")
	wire.AddText(e, wire.NsCommonTypes, "Code", s.code.String())
	wire.AddOptionalText(e, wire.NsCommonTypes, "Description", s.description)
	wire.AddOptionalText(e, wire.NsCommonTypes, "AdditionalInfo", s.additionalInfo)
	return custom.Apply(s, e)
}

func parseStatusCodeXML(e *etree.Element) (StatusCode, error) {
	const typ = "StatusCode"
	if !wire.Is(e, wire.NsCommonTypes, "StatusCode") {
		return StatusCode{}, parseError(typ, "", wire.ErrUnexpectedElement)
	}
	text, err := wire.RequiredText(e, wire.NsCommonTypes, "Code")
	if err != nil {
		return StatusCode{}, parseError(typ, "Code", err)
	}
	code, err := ParseStatusCodes(text)
	if err != nil {
		return StatusCode{}, parseError(typ, "Code", err)
	}
	description, _ := wire.ChildText(e, wire.NsCommonTypes, "Description")
	info, _ := wire.ChildText(e, wire.NsCommonTypes, "AdditionalInfo")
	return NewStatusCode(code, WithDescription(description), WithAdditionalInfo(info)), nil
}

// ParseStatusCodeXML reads a CommonTypes:StatusCode element. Absent
// Description and AdditionalInfo become empty strings.
func ParseStatusCodeXML(e *etree.Element, onError wire.ErrorHandler, custom wire.CustomXMLParser[StatusCode]) (StatusCode, error) {
	s, err := parseStatusCodeXML(e)
	return finish(s, err, e, onError, func(v StatusCode) StatusCode { return custom.Apply(e, v) })
}

// TryParseStatusCodeXML is ParseStatusCodeXML reporting success as a bool.
func TryParseStatusCodeXML(e *etree.Element, onError wire.ErrorHandler, custom wire.CustomXMLParser[StatusCode]) (StatusCode, bool) {
	s, err := ParseStatusCodeXML(e, onError, custom)
	return s, err == nil
}

// ToJSON renders {"code":"000","description":...,"additionalInfo":...}.
func (s StatusCode) ToJSON(custom wire.CustomJSONSerializer[StatusCode]) wire.JSONObject {
	obj := wire.JSONObject{"code": s.code.String()}
	obj.SetOptional("description", s.description)
	obj.SetOptional("additionalInfo", s.additionalInfo)
	return custom.Apply(s, obj)
}

func parseStatusCodeJSON(obj wire.JSONObject) (StatusCode, error) {
	const typ = "StatusCode"
	if obj == nil {
		return StatusCode{}, parseError(typ, "", wire.ErrEmptyDocument)
	}
	var code StatusCodes
	switch v := obj["code"].(type) {
	case nil:
		return StatusCode{}, parseError(typ, "code", wire.ErrMissingElement)
	case string:
		c, err := ParseStatusCodes(v)
		if err != nil {
			return StatusCode{}, parseError(typ, "code", err)
		}
		code = c
	default:
		n, _, err := obj.Integer("code")
		if err != nil {
			return StatusCode{}, parseError(typ, "code", err)
		}
		c, err := ParseStatusCodes(strconv.Itoa(n))
		if err != nil {
			return StatusCode{}, parseError(typ, "code", err)
		}
		code = c
	}
	description, _, err := obj.Text("description")
	if err != nil {
		return StatusCode{}, parseError(typ, "description", err)
	}
	info, _, err := obj.Text("additionalInfo")
	if err != nil {
		return StatusCode{}, parseError(typ, "additionalInfo", err)
	}
	return NewStatusCode(code, WithDescription(description), WithAdditionalInfo(info)), nil
}

// ParseStatusCodeJSON reads a JSON status code. Numeric and string codes
// are both accepted.
func ParseStatusCodeJSON(obj wire.JSONObject, onError wire.ErrorHandler, custom wire.CustomJSONParser[StatusCode]) (StatusCode, error) {
	s, err := parseStatusCodeJSON(obj)
	return finish(s, err, obj, onError, func(v StatusCode) StatusCode { return custom.Apply(obj, v) })
}

// TryParseStatusCodeJSON is ParseStatusCodeJSON reporting success as a bool.
func TryParseStatusCodeJSON(obj wire.JSONObject, onError wire.ErrorHandler, custom wire.CustomJSONParser[StatusCode]) (StatusCode, bool) {
	s, err := ParseStatusCodeJSON(obj, onError, custom)
	return s, err == nil
}

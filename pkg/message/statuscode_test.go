// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package message

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/sirosfoundation/go-oicp/pkg/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode_HasResult(t *testing.T) {
	assert.True(t, NewStatusCode(StatusSuccess).HasResult())
	assert.False(t, NewStatusCode(StatusDataError).HasResult())
	assert.False(t, NewStatusCode(StatusNoEVConnectedToEVSE).HasResult())
}

func TestStatusCode_String(t *testing.T) {
	assert.Equal(t, "StatusCode: 000", NewStatusCode(StatusSuccess).String())
	assert.Equal(t, "StatusCode: 017, Description: Unauthorized Access, Additional Info: bad token",
		NewStatusCode(StatusUnauthorizedAccess,
			WithDescription("Unauthorized Access"),
			WithAdditionalInfo("bad token")).String())
	assert.Equal(t, "StatusCode: 300, Additional Info: x",
		NewStatusCode(StatusPartnerNotFound, WithAdditionalInfo("x")).String())
}

func TestStatusCode_SuccessXML(t *testing.T) {
	e := NewStatusCode(StatusSuccess).ToXML(nil)
	children := e.ChildElements()
	require.Len(t, children, 1)
	assert.Equal(t, "CommonTypes:Code", children[0].FullTag())
	assert.Equal(t, "000", children[0].Text())
}

func TestStatusCode_XMLRoundTrip(t *testing.T) {
	s := NewStatusCode(StatusEVSEOutOfService,
		WithDescription(StatusEVSEOutOfService.Describe()),
		WithAdditionalInfo("maintenance"))

	parsed, err := ParseStatusCodeXML(reparseXML(t, s.ToXML(nil)), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, s, parsed)
	assert.True(t, s.Equal(parsed))
}

func TestStatusCode_ParseDefaults(t *testing.T) {
	root, err := wire.ReadXML([]byte(`<StatusCode><Code>9</Code></StatusCode>`))
	require.NoError(t, err)

	s, ok := TryParseStatusCodeXML(root, nil, nil)
	require.True(t, ok)
	assert.Equal(t, StatusDataTransactionError, s.Code())
	assert.Equal(t, "", s.Description())
	assert.Equal(t, "", s.AdditionalInfo())
}

func TestStatusCode_ParseFailures(t *testing.T) {
	var errs []error
	onError := collectErrors(&errs)

	root, err := wire.ReadXML([]byte(`<StatusCode><Description>no code</Description></StatusCode>`))
	require.NoError(t, err)
	_, ok := TryParseStatusCodeXML(root, onError, nil)
	assert.False(t, ok)

	root, err = wire.ReadXML([]byte(`<StatusCode><Code>abc</Code></StatusCode>`))
	require.NoError(t, err)
	_, err = ParseStatusCodeXML(root, onError, nil)
	var pe *wire.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "StatusCode", pe.Type)
	assert.Equal(t, "Code", pe.Field)

	assert.Len(t, errs, 2)
}

func TestStatusCode_JSON(t *testing.T) {
	s := NewStatusCode(StatusSuccess)
	obj := s.ToJSON(nil)
	assert.Equal(t, wire.JSONObject{"code": "000"}, obj)

	parsed, err := ParseStatusCodeJSON(reparseJSON(t, obj), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, s, parsed)

	numeric, err := wire.ParseJSONObject([]byte(`{"code": 17, "description": "Unauthorized Access"}`))
	require.NoError(t, err)
	parsed, err = ParseStatusCodeJSON(numeric, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, StatusUnauthorizedAccess, parsed.Code())
	assert.Equal(t, "Unauthorized Access", parsed.Description())

	_, ok := TryParseStatusCodeJSON(wire.JSONObject{"description": "x"}, nil, nil)
	assert.False(t, ok)
}

func TestStatusCode_Hooks(t *testing.T) {
	calls := 0
	parser := wire.CustomXMLParser[StatusCode](func(node *etree.Element, s StatusCode) StatusCode {
		calls++
		info, _ := wire.ChildText(node, wire.NsCommonTypes, "Extension")
		return NewStatusCode(s.Code(), WithAdditionalInfo(info))
	})

	e := NewStatusCode(StatusSystemError).ToXML(func(_ StatusCode, e *etree.Element) *etree.Element {
		wire.AddText(e, wire.NsCommonTypes, "Extension", "custom")
		return e
	})
	s, err := ParseStatusCodeXML(e, nil, parser)
	require.NoError(t, err)
	assert.Equal(t, "custom", s.AdditionalInfo())
	assert.Equal(t, 1, calls)

	bad := wire.NewElement(wire.NsCommonTypes, "StatusCode")
	_, err = ParseStatusCodeXML(bad, nil, parser)
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package message

import (
	"testing"

	"github.com/sirosfoundation/go-oicp/pkg/ids"
	"github.com/sirosfoundation/go-oicp/pkg/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcknowledgement_Success(t *testing.T) {
	a := Success(WithSessionID(testSessionID))
	assert.True(t, a.Result())
	assert.True(t, a.StatusCode().HasResult())
	assert.Equal(t, StatusSuccess.Describe(), a.StatusCode().Description())
	assert.Equal(t, testSessionID, a.SessionID())
}

func TestAcknowledgement_Failure(t *testing.T) {
	a := Failure(StatusUnknownEVSEID, "  no such EVSE ")
	assert.False(t, a.Result())
	assert.Equal(t, StatusUnknownEVSEID, a.StatusCode().Code())
	assert.Equal(t, "Unknown EVSE ID", a.StatusCode().Description())
	assert.Equal(t, "no such EVSE", a.StatusCode().AdditionalInfo())
	assert.False(t, a.Equal(Success()))
}

func TestAcknowledgement_RoundTrips(t *testing.T) {
	cpo, err := ids.ParseCPOPartnerSessionID("cpo-42")
	require.NoError(t, err)
	emp, err := ids.ParseEMPPartnerSessionID("emp-42")
	require.NoError(t, err)
	a := Failure(StatusSessionIsInvalid, "expired",
		WithSessionID(testSessionID), WithCPOPartnerSessionID(cpo), WithEMPPartnerSessionID(emp))

	e := a.ToXML(nil)
	assert.Equal(t, "CommonTypes:eRoamingAcknowledgement", e.FullTag())
	fromXML, err := ParseAcknowledgementXML(reparseXML(t, e), nil, nil)
	require.NoError(t, err)
	assert.True(t, a.Equal(fromXML))
	assert.Equal(t, a, fromXML)

	obj := a.ToJSON(nil)
	assert.Equal(t, false, obj["result"])
	fromJSON, err := ParseAcknowledgementJSON(reparseJSON(t, obj), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, a, fromJSON)
}

func TestAcknowledgement_ParseFailures(t *testing.T) {
	var errs []error
	e := Success().ToXML(nil)
	wire.Child(e, wire.NsCommonTypes, "Result").SetText("maybe")
	_, ok := TryParseAcknowledgementXML(e, collectErrors(&errs), nil)
	assert.False(t, ok)

	_, ok = TryParseAcknowledgementJSON(wire.JSONObject{"result": true}, collectErrors(&errs), nil)
	assert.False(t, ok)

	require.Len(t, errs, 2)
	assert.ErrorIs(t, errs[0], wire.ErrInvalidValue)
	var pe *wire.ParseError
	require.ErrorAs(t, errs[1], &pe)
	assert.Equal(t, "statusCode", pe.Field)
	assert.ErrorIs(t, errs[1], wire.ErrMissingElement)
}

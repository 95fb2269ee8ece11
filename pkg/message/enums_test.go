// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package message

import (
	"errors"
	"testing"

	"github.com/sirosfoundation/go-oicp/pkg/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPowerType_LenientMapping(t *testing.T) {
	tests := []struct {
		text string
		want PowerType
	}{
		{"AC_1_PHASE", PowerTypeAC1Phase},
		{"AC_3_PHASE", PowerTypeAC3Phase},
		{"dc", PowerTypeDC},
		{"AC_2_PHASE", PowerTypeUnspecified},
		{"", PowerTypeUnspecified},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, AsPowerType(tt.text))
		})
	}

	_, err := ParsePowerType("AC_2_PHASE")
	assert.ErrorIs(t, err, ErrUnknownValue)
	assert.Equal(t, "Unspecified", PowerTypeUnspecified.String())
}

func TestEnums_StrictMapping(t *testing.T) {
	_, err := ParseEVSEStatusType("Free")
	assert.ErrorIs(t, err, ErrUnknownValue)
	assert.True(t, errors.Is(err, wire.ErrInvalidValue))

	_, err = ParseHashFunction("SHA-256")
	assert.ErrorIs(t, err, ErrUnknownValue)

	_, err = ParseDeltaType("upsert")
	assert.Error(t, err)

	_, err = ParseRFIDType("Mifare")
	assert.Error(t, err)
}

func TestEnums_WireText(t *testing.T) {
	s, err := ParseEVSEStatusType("OutOfService")
	require.NoError(t, err)
	assert.Equal(t, EVSEStatusOutOfService, s)
	assert.Equal(t, "OutOfService", s.String())
	assert.False(t, EVSEStatusUnspecified.IsValid())

	h, err := ParseHashFunction("SHA-1")
	require.NoError(t, err)
	assert.Equal(t, HashFunctionSHA1, h)

	a, err := ParseAccessibilityType("Paying publicly accessible")
	require.NoError(t, err)
	assert.Equal(t, AccessibilityPayingPubliclyAccessible, a)

	d, err := ParseDeltaType("Insert")
	require.NoError(t, err)
	assert.Equal(t, DeltaTypeInsert, d)
	assert.Equal(t, "insert", d.String())
}

func TestFlags_SetOperations(t *testing.T) {
	plugs := PlugCHAdeMO.With(PlugType2Outlet, PlugTypeFSchuko)
	assert.True(t, plugs.Has(PlugType2Outlet))
	assert.False(t, plugs.Has(PlugType3Outlet))
	assert.Equal(t, []PlugTypes{PlugTypeFSchuko, PlugType2Outlet, PlugCHAdeMO}, plugs.Values())
	assert.Equal(t, []string{"Type F Schuko", "Type 2 Outlet", "CHAdeMO"}, plugs.Strings())
	assert.Equal(t, "Type F Schuko, Type 2 Outlet, CHAdeMO", plugs.String())

	assert.True(t, AuthenticationModesUnknown.IsEmpty())
	assert.Empty(t, AuthenticationModesUnknown.Values())
}

func TestFlags_ParseList(t *testing.T) {
	modes, err := ParseAuthenticationModes([]string{"NFC RFID Classic", "REMOTE"})
	require.NoError(t, err)
	assert.Equal(t, AuthNFCRFIDClassic|AuthREMOTE, modes)

	services, err := ParseValueAddedServices([]string{"Reservation", "None"})
	require.NoError(t, err)
	assert.True(t, services.Has(ServiceNone))

	_, err = ParsePlugTypes([]string{"Type 2 Outlet", "Type 9"})
	assert.ErrorIs(t, err, ErrUnknownValue)

	empty, err := ParsePaymentOptions(nil)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}

// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-oicp/internal/storage"
	"github.com/sirosfoundation/go-oicp/pkg/geo"
	"github.com/sirosfoundation/go-oicp/pkg/ids"
	"github.com/sirosfoundation/go-oicp/pkg/message"
)

var operator = ids.MustParseOperatorID("DE*GEF")

func record(t *testing.T, id string, delta message.DeltaType) message.EVSEDataRecord {
	t.Helper()
	coordinates, err := geo.NewGeoCoordinates(52.5219, 13.4132)
	require.NoError(t, err)
	r, err := message.NewEVSEDataRecord(ids.MustParseEVSEID(id),
		geo.Address{Country: "DEU", City: "Berlin", Street: "Alexanderplatz"},
		coordinates, message.PlugType2Outlet, message.AuthREMOTE, "+49 30 1234567",
		func(b *message.EVSEDataRecordBuilder) { b.DeltaType = delta })
	require.NoError(t, err)
	return r
}

func evseData(t *testing.T, records ...message.EVSEDataRecord) message.EVSEData {
	t.Helper()
	g, err := message.NewOperatorEVSEData(operator, "GEF", records)
	require.NoError(t, err)
	return message.NewEVSEData(g)
}

func TestStore_EVSEData(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.Ping(ctx))

	n, err := s.PutEVSEData(ctx, evseData(t,
		record(t, "DE*GEF*E2*1", message.DeltaTypeNone),
		record(t, "DE*GEF*E1*1", message.DeltaTypeNone)))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := s.GetEVSEData(ctx, ids.MustParseEVSEID("DE*GEF*E1*1"))
	require.NoError(t, err)
	assert.Equal(t, record(t, "DE*GEF*E1*1", message.DeltaTypeNone), got)

	list, err := s.ListEVSEData(ctx, operator)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "DE*GEF*E1*1", list[0].ID().String())

	n, err = s.PutEVSEData(ctx, evseData(t,
		record(t, "DE*GEF*E2*1", message.DeltaTypeDelete),
		record(t, "DE*GEF*E9*1", message.DeltaTypeDelete)))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = s.GetEVSEData(ctx, ids.MustParseEVSEID("DE*GEF*E2*1"))
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	other, err := s.ListEVSEData(ctx, ids.MustParseOperatorID("DE*XYZ"))
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestStore_EVSEStatus(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	r, err := message.NewEVSEStatusRecord(ids.MustParseEVSEID("DE*GEF*E1*1"), message.EVSEStatusReserved)
	require.NoError(t, err)
	g, err := message.NewOperatorEVSEStatus(operator, "GEF", []message.EVSEStatusRecord{r})
	require.NoError(t, err)

	n, err := s.PutEVSEStatus(ctx, message.NewEVSEStatus(g))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := s.GetEVSEStatus(ctx, r.ID())
	require.NoError(t, err)
	assert.Equal(t, message.EVSEStatusReserved, got.Status())

	_, err = s.GetEVSEStatus(ctx, ids.MustParseEVSEID("DE*GEF*E9*1"))
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestStore_ChargeDetailRecord(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	start := time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC)
	cdr, err := message.NewChargeDetailRecord(ids.NewSessionID(), ids.MustParseEVSEID("DE*GEF*E1*1"),
		message.FromUID(ids.MustParseUID("AABBCCDD")), start, start.Add(time.Hour),
		message.WithConsumedEnergy(7.25))
	require.NoError(t, err)

	require.NoError(t, s.PutChargeDetailRecord(ctx, cdr))
	err = s.PutChargeDetailRecord(ctx, cdr)
	assert.True(t, errors.Is(err, storage.ErrDuplicate))

	got, err := s.GetChargeDetailRecord(ctx, cdr.SessionID())
	require.NoError(t, err)
	assert.Equal(t, cdr, got)

	_, err = s.GetChargeDetailRecord(ctx, ids.NewSessionID())
	assert.True(t, errors.Is(err, storage.ErrNotFound))
	assert.NoError(t, s.Close(ctx))
}

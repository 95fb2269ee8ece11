// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package convert

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-oicp/internal/storage/memory"
	"github.com/sirosfoundation/go-oicp/pkg/compression"
	"github.com/sirosfoundation/go-oicp/pkg/geo"
	"github.com/sirosfoundation/go-oicp/pkg/ids"
	"github.com/sirosfoundation/go-oicp/pkg/message"
	"github.com/sirosfoundation/go-oicp/pkg/registry"
	"github.com/sirosfoundation/go-oicp/pkg/wire"
)

func testRecord(t *testing.T, id string) message.EVSEDataRecord {
	t.Helper()
	coordinates, err := geo.NewGeoCoordinates(52.5219, 13.4132)
	require.NoError(t, err)
	r, err := message.NewEVSEDataRecord(ids.MustParseEVSEID(id),
		geo.Address{Country: "DEU", City: "Berlin", Street: "Alexanderplatz"},
		coordinates, message.PlugType2Outlet, message.AuthREMOTE, "+49 30 1234567")
	require.NoError(t, err)
	return r
}

func testEVSEDataDocument(t *testing.T) *Document {
	t.Helper()
	g, err := message.NewOperatorEVSEData(ids.MustParseOperatorID("DE*GEF"), "GEF",
		[]message.EVSEDataRecord{testRecord(t, "DE*GEF*E1*1"), testRecord(t, "DE*GEF*E2*1")})
	require.NoError(t, err)
	return &Document{Kind: KindEVSEData, EVSEData: message.NewEVSEData(g)}
}

func testCDRDocument(t *testing.T) *Document {
	t.Helper()
	start := time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC)
	cdr, err := message.NewChargeDetailRecord(ids.MustParseSessionID("b2688855-7f00-0002-6d8e-48d883f6abb6"),
		ids.MustParseEVSEID("DE*GEF*E1*1"), message.FromUID(ids.MustParseUID("AABBCCDD")),
		start, start.Add(time.Hour), message.WithConsumedEnergy(11.5))
	require.NoError(t, err)
	return &Document{Kind: KindChargeDetailRecord, ChargeDetailRecord: cdr}
}

func recordIDs(d message.EVSEData) []string {
	var out []string
	for _, r := range d.Records() {
		out = append(out, r.ID().String())
	}
	return out
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		err   error
	}{
		{"xml", `<?xml version="1.0"?><a/>`, FormatXML, nil},
		{"xml with whitespace", "\n\t <a/>", FormatXML, nil},
		{"json", `{"result":true}`, FormatJSON, nil},
		{"json with bom", "\ufeff{}", FormatJSON, nil},
		{"empty", "  \n", "", wire.ErrEmptyDocument},
		{"neither", "result=true", "", ErrUnknownDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat([]byte(tt.input))
			if tt.err != nil {
				assert.True(t, errors.Is(err, tt.err), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvert_XMLToJSONAndBack(t *testing.T) {
	src := testEVSEDataDocument(t)

	xmlData, err := Encode(src, FormatXML, Options{Pretty: true})
	require.NoError(t, err)
	assert.Contains(t, string(xmlData), "EVSEData:EvseData")

	fromXML, err := Decode(xmlData, "", nil)
	require.NoError(t, err)
	assert.Equal(t, KindEVSEData, fromXML.Kind)

	jsonData, err := Encode(fromXML, FormatJSON, Options{})
	require.NoError(t, err)
	assert.Contains(t, string(jsonData), `"operatorEvseData"`)

	fromJSON, err := Decode(jsonData, "auto", nil)
	require.NoError(t, err)
	assert.Equal(t, KindEVSEData, fromJSON.Kind)
	assert.Equal(t, recordIDs(src.EVSEData), recordIDs(fromJSON.EVSEData))
	assert.Equal(t, src.EVSEData.Records(), fromJSON.EVSEData.Records())
	assert.Equal(t, "EVSEData: 1 operators, 2 records", fromJSON.String())
}

func TestConvert_SOAPAndGzip(t *testing.T) {
	src := testCDRDocument(t)

	data, err := Encode(src, FormatXML, Options{SOAP: true, Gzip: true})
	require.NoError(t, err)
	require.True(t, compression.IsGzip(data))

	plain, err := compression.NewCompressor().Decompress(data)
	require.NoError(t, err)
	assert.Contains(t, string(plain), "SOAP:Envelope")

	doc, err := Decode(data, FormatXML, nil)
	require.NoError(t, err)
	assert.Equal(t, KindChargeDetailRecord, doc.Kind)
	assert.Equal(t, src.ChargeDetailRecord, doc.ChargeDetailRecord)

	_, err = Encode(src, FormatJSON, Options{SOAP: true})
	assert.Error(t, err)
}

func TestDecode_RequestWrapper(t *testing.T) {
	src := testEVSEDataDocument(t)
	wrapper := wire.NewElement(wire.NsEVSEData, "eRoamingEvseData")
	wrapper.AddChild(src.EVSEData.ToXML(false, nil))
	data, err := wire.WriteXML(wrapper, false)
	require.NoError(t, err)

	doc, err := Decode(data, "", nil)
	require.NoError(t, err)
	assert.Equal(t, KindEVSEData, doc.Kind)
	assert.Len(t, doc.EVSEData.Records(), 2)
}

func TestDecode_Kinds(t *testing.T) {
	ack := &Document{
		Kind:            KindAcknowledgement,
		Acknowledgement: message.NewAcknowledgement(true, message.NewStatusCode(message.StatusSuccess)),
	}
	r, err := message.NewEVSEStatusRecord(ids.MustParseEVSEID("DE*GEF*E1*1"), message.EVSEStatusAvailable)
	require.NoError(t, err)
	g, err := message.NewOperatorEVSEStatus(ids.MustParseOperatorID("DE*GEF"), "", []message.EVSEStatusRecord{r})
	require.NoError(t, err)
	status := &Document{Kind: KindEVSEStatus, EVSEStatus: message.NewEVSEStatus(g)}

	for _, src := range []*Document{ack, status, testCDRDocument(t), testEVSEDataDocument(t)} {
		for _, format := range []string{FormatXML, FormatJSON} {
			t.Run(src.Kind.String()+"/"+format, func(t *testing.T) {
				data, err := Encode(src, format, Options{})
				require.NoError(t, err)
				doc, err := Decode(data, format, nil)
				require.NoError(t, err)
				assert.Equal(t, src.Kind, doc.Kind)
				assert.Equal(t, src.String(), doc.String())
			})
		}
	}
}

func TestDecode_Failures(t *testing.T) {
	_, err := Decode([]byte(`<Unknown/>`), "", nil)
	assert.True(t, errors.Is(err, ErrUnknownDocument))

	_, err = Decode([]byte(`{"foo":1}`), "", nil)
	assert.True(t, errors.Is(err, ErrUnknownDocument))

	_, err = Decode(nil, "", nil)
	assert.True(t, errors.Is(err, wire.ErrEmptyDocument))

	_, err = Decode([]byte(`{}`), "csv", nil)
	assert.Error(t, err)

	var reported []error
	onError := func(_ time.Time, _ any, err error) { reported = append(reported, err) }
	_, err = Decode([]byte(`{"sessionId":"not-a-uuid","evseId":"DE*GEF*E1*1"}`), "", onError)
	require.Error(t, err)
	var perr *wire.ParseError
	assert.True(t, errors.As(err, &perr))
	assert.Len(t, reported, 1)
}

func TestDecode_DropsBadRecords(t *testing.T) {
	data, err := Encode(testEVSEDataDocument(t), FormatJSON, Options{})
	require.NoError(t, err)
	broken := strings.Replace(string(data), `"DE*GEF*E2*1"`, `"not an evse"`, 1)

	var reported []error
	doc, err := Decode([]byte(broken), "", func(_ time.Time, _ any, err error) { reported = append(reported, err) })
	require.NoError(t, err)
	assert.Equal(t, []string{"DE*GEF*E1*1"}, recordIDs(doc.EVSEData))
	assert.Len(t, reported, 1)
}

func TestImporter(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	im := &Importer{Registry: registry.New(time.Hour), Store: store}

	res, err := im.Import(ctx, testEVSEDataDocument(t))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Stats.Inserted)
	assert.Equal(t, 2, res.Stored)

	stored, err := store.GetEVSEData(ctx, ids.MustParseEVSEID("DE*GEF*E2*1"))
	require.NoError(t, err)
	assert.Equal(t, "DE*GEF*E2*1", stored.ID().String())

	cdr := testCDRDocument(t)
	res, err = im.Import(ctx, cdr)
	require.NoError(t, err)
	assert.False(t, res.Duplicate)
	assert.Equal(t, 1, res.Stored)

	res, err = im.Import(ctx, cdr)
	require.NoError(t, err)
	assert.True(t, res.Duplicate)

	res, err = (&Importer{Store: store}).Import(ctx, cdr)
	require.NoError(t, err)
	assert.True(t, res.Duplicate)

	res, err = im.Import(ctx, &Document{Kind: KindAcknowledgement})
	require.NoError(t, err)
	assert.Equal(t, Result{}, res)
}

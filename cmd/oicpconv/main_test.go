// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-oicp/internal/convert"
	"github.com/sirosfoundation/go-oicp/pkg/compression"
	"github.com/sirosfoundation/go-oicp/pkg/geo"
	"github.com/sirosfoundation/go-oicp/pkg/ids"
	"github.com/sirosfoundation/go-oicp/pkg/message"
)

func writeEVSEData(t *testing.T, dir string) string {
	t.Helper()
	coordinates, err := geo.NewGeoCoordinates(52.5219, 13.4132)
	require.NoError(t, err)
	r, err := message.NewEVSEDataRecord(ids.MustParseEVSEID("DE*GEF*E1*1"),
		geo.Address{Country: "DEU", City: "Berlin", Street: "Alexanderplatz"},
		coordinates, message.PlugType2Outlet, message.AuthREMOTE, "+49 30 1234567")
	require.NoError(t, err)
	g, err := message.NewOperatorEVSEData(ids.MustParseOperatorID("DE*GEF"), "GEF", []message.EVSEDataRecord{r})
	require.NoError(t, err)

	data, err := convert.Encode(&convert.Document{Kind: convert.KindEVSEData, EVSEData: message.NewEVSEData(g)},
		convert.FormatXML, convert.Options{})
	require.NoError(t, err)
	path := filepath.Join(dir, "evsedata.xml")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func writeCDR(t *testing.T, dir string) string {
	t.Helper()
	start := time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC)
	cdr, err := message.NewChargeDetailRecord(ids.NewSessionID(), ids.MustParseEVSEID("DE*GEF*E1*1"),
		message.FromUID(ids.MustParseUID("AABBCCDD")), start, start.Add(time.Hour))
	require.NoError(t, err)
	data, err := convert.Encode(&convert.Document{Kind: convert.KindChargeDetailRecord, ChargeDetailRecord: cdr},
		convert.FormatJSON, convert.Options{})
	require.NoError(t, err)
	path := filepath.Join(dir, "cdr.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestRun_XMLToJSON(t *testing.T) {
	in := writeEVSEData(t, t.TempDir())
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"-in", in, "-to", "json"}, nil, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), `"operatorEvseData"`)
	assert.Contains(t, stdout.String(), `"DE*GEF*E1*1"`)
	assert.Contains(t, stderr.String(), "decoded")
}

func TestRun_StdinToGzipFile(t *testing.T) {
	dir := t.TempDir()
	data, err := os.ReadFile(writeCDR(t, dir))
	require.NoError(t, err)
	outPath := filepath.Join(dir, "cdr.xml.gz")

	var stdout, stderr bytes.Buffer
	err = run(context.Background(), []string{"-to", "xml", "-soap", "-gzip", "-out", outPath},
		bytes.NewReader(data), &stdout, &stderr)
	require.NoError(t, err)
	assert.Empty(t, stdout.String())

	written, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.True(t, compression.IsGzip(written))
	plain, err := compression.NewCompressor().Decompress(written)
	require.NoError(t, err)
	assert.Contains(t, string(plain), "eRoamingChargeDetailRecord")
}

type failingClose struct {
	bytes.Buffer
}

func (*failingClose) Close() error { return errors.New("disk full") }

func TestRun_OutputCloseErrorReported(t *testing.T) {
	in := writeEVSEData(t, t.TempDir())
	sink := &failingClose{}
	orig := createOutput
	createOutput = func(string) (io.WriteCloser, error) { return sink, nil }
	t.Cleanup(func() { createOutput = orig })

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-in", in, "-to", "json", "-out", "out.json"}, nil, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closing output")
	assert.Contains(t, err.Error(), "disk full")
	assert.Contains(t, sink.String(), `"operatorEvseData"`)
	assert.Empty(t, stdout.String())
}

func TestRun_RegistryDetectsDuplicateCDR(t *testing.T) {
	dir := t.TempDir()
	cdr := writeCDR(t, dir)
	var stdout, stderr bytes.Buffer

	err := run(context.Background(),
		[]string{"-validate", "-registry", "-store", "memory", writeEVSEData(t, dir), cdr, cdr},
		nil, &stdout, &stderr)
	require.NoError(t, err)
	assert.Empty(t, stdout.String())
	logs := stderr.String()
	assert.Contains(t, logs, "applied EVSE data")
	assert.Contains(t, logs, "duplicate charge detail record")
	assert.Contains(t, logs, "registry state")
	assert.Contains(t, logs, "evses=1")
}

func TestRun_Config(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "oicp.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("codec:\n  outputFormat: xml\nlog:\n  format: json\n"), 0o600))
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"-config", cfgPath, writeCDR(t, dir)}, nil, &stdout, &stderr)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout.String(), "<?xml"))
	assert.Contains(t, stderr.String(), `"msg":"decoded"`)
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	in := writeEVSEData(t, dir)
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"unexpected":true}`), 0o600))

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"format", []string{"-to", "csv", in}, "-to must be xml or json"},
		{"soap json", []string{"-to", "json", "-soap", in}, "-soap requires XML output"},
		{"store", []string{"-store", "redis", in}, "unknown store"},
		{"mongodb without uri", []string{"-store", "mongodb", in}, "storage.mongodb.uri"},
		{"missing input", []string{filepath.Join(dir, "missing.xml")}, "reading input"},
		{"unknown document", []string{bad}, "unknown document kind"},
		{"single out", []string{"-out", filepath.Join(dir, "o"), in, in}, "-out takes a single input"},
		{"missing config", []string{"-config", filepath.Join(dir, "none.yaml"), in}, "reading config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(context.Background(), tt.args, nil, &stdout, &stderr)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-h"}, nil, &stdout, &stderr)
	assert.True(t, errors.Is(err, flag.ErrHelp))
	assert.Contains(t, stderr.String(), "-registry")
}

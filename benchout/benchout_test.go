// Copyright 2026 The benchcsv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchout

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hsmperf/benchcsv/benchnorm"
)

var some = benchnorm.Some

func testTable() *benchnorm.Table {
	return &benchnorm.Table{Rows: []benchnorm.Row{
		{
			Type: "GOST", Params: "curve-A", Group: "Hash", Func: "Streebog256",
			BlockSize: some(64), Iterations: 1000, Threads: some(1), Session: some(2),
			CPUTime: 100, RealTime: 101, ItemsPerSecond: some(7), BytesPerSecond: some(640000000),
		},
		{
			Type: "FIPS", Params: "P-256, <x>", Group: "Sign", Func: "Sign",
			Iterations: 50, Threads: some(4), CPUTime: 14, RealTime: 12,
		},
	}}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testTable()))
	want := `type,params,group,func,block_size,iterations,threads,session,cpu_time,real_time,items_per_second,bytes_per_second
GOST,curve-A,Hash,Streebog256,64,1000,1,2,100,101,7,640000000
FIPS,"P-256, <x>",Sign,Sign,,50,4,,14,12,,
`
	assert.Equal(t, want, buf.String())

	buf.Reset()
	require.NoError(t, WriteCSV(&buf, new(benchnorm.Table)))
	assert.Equal(t, strings.Join(benchnorm.Columns, ",")+"\n", buf.String())
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, testTable()))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, benchnorm.Columns, strings.Fields(lines[0]))
	assert.Equal(t,
		[]string{"GOST", "curve-A", "Hash", "Streebog256", "64", "1000", "1", "2", "100", "101", "7", "640000000"},
		strings.Fields(lines[1]))
	assert.True(t, strings.HasPrefix(lines[2], "FIPS"))

	buf.Reset()
	require.NoError(t, WriteText(&buf, new(benchnorm.Table)))
	assert.Equal(t, benchnorm.Columns, strings.Fields(buf.String()))
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, testTable()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	sheet := f.GetSheetName(0)

	for cell, want := range map[string]string{
		"A1": "type",
		"L1": "bytes_per_second",
		"A2": "GOST",
		"E2": "64",
		"L2": "640000000",
		"B3": "P-256, <x>",
		"E3": "",
		"F3": "50",
		"L3": "",
	} {
		got, err := f.GetCellValue(sheet, cell)
		require.NoError(t, err)
		assert.Equal(t, want, got, cell)
	}
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, testTable()))
	out := buf.String()
	assert.Contains(t, out, "<th>type<th>params")
	assert.Contains(t, out, "<td>GOST<td>curve-A<td>Hash<td>Streebog256<td>64")
	assert.Contains(t, out, "P-256, &lt;x&gt;")
	assert.NotContains(t, out, "<x>")
	assert.Equal(t, 2, strings.Count(out, "<tr><td>"))
}

func TestFormat(t *testing.T) {
	for _, test := range []struct {
		path string
		want Format
	}{
		{"-", Text},
		{"output.xlsx", XLSX},
		{"out.CSV", CSV},
		{"report.html", HTML},
		{"report.htm", HTML},
		{"listing.txt", Text},
		{"noext", XLSX},
	} {
		assert.Equal(t, test.want, FormatFor(test.path), test.path)
	}

	for _, f := range []Format{Text, CSV, XLSX, HTML} {
		got, err := ParseFormat(f.String())
		assert.NoError(t, err)
		assert.Equal(t, f, got)
	}
	got, err := ParseFormat("CSV")
	assert.NoError(t, err)
	assert.Equal(t, CSV, got)
	_, err = ParseFormat("json")
	assert.Error(t, err)
	assert.Equal(t, "Format(9)", Format(9).String())
}

func TestWrite(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, Write(&a, CSV, testTable()))
	require.NoError(t, WriteCSV(&b, testTable()))
	assert.Equal(t, b.String(), a.String())

	assert.Error(t, Write(&a, Format(9), testTable()))
}

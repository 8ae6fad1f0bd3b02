// Copyright 2026 The benchcsv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gostFile = `Elliptic curve: GOST R 34.10-2001 CryptoPro A (256 bits)
name,iterations,real_time,cpu_time,time_unit,bytes_per_second,items_per_second,label,error_occurred,error_message
"Hash/Streebog256/Block size:64/threads:1",1000,100.4,99.6,ns,640000000,,,,
"Sign/threads:4",200,5012.5,20000.1,us,,199.5,"lbl",,
`

func TestParse(t *testing.T) {
	res := Parse([]byte(gostFile), "gost/a.csv", "GOST", nil)
	require.NoError(t, res.Err)
	assert.Empty(t, res.Warnings)

	params := "Elliptic curve: GOST R 34.10-2001 CryptoPro A (256 bits)"
	assert.Equal(t, Header{Line: 1, Offset: len(params) + 1, Params: params}, res.Header)

	empty := map[string]string{"label": "", "error_occurred": "", "error_message": ""}
	want := []*Row{
		{
			Name:           "Hash/Streebog256/Block size:64/threads:1",
			Iterations:     "1000",
			RealTime:       "100.4",
			CPUTime:        "99.6",
			TimeUnit:       "ns",
			BytesPerSecond: "640000000",
			Extra:          empty,
			File:           "gost/a.csv",
			Type:           "GOST",
			Params:         params,
			Line:           3,
		},
		{
			Name:           "Sign/threads:4",
			Iterations:     "200",
			RealTime:       "5012.5",
			CPUTime:        "20000.1",
			TimeUnit:       "us",
			ItemsPerSecond: "199.5",
			Extra:          map[string]string{"label": "lbl", "error_occurred": "", "error_message": ""},
			File:           "gost/a.csv",
			Type:           "GOST",
			Params:         params,
			Line:           4,
		},
	}
	assert.Equal(t, want, res.Rows)
	assert.Equal(t, "lbl", res.Rows[1].Get("label"))
	assert.Equal(t, "199.5", res.Rows[1].Get(ColItemsPerSecond))
	file, line := res.Rows[1].Pos()
	assert.Equal(t, "gost/a.csv", file)
	assert.Equal(t, 4, line)
}

func TestParseNoPreamble(t *testing.T) {
	res := Parse([]byte("name,iterations,real_time,cpu_time\nA/threads:2,5,1.5,1.5\n"), "x.csv", "", nil)
	require.NoError(t, res.Err)
	require.Len(t, res.Rows, 1)
	row := res.Rows[0]
	assert.Equal(t, "", row.Params)
	assert.Equal(t, "", row.Type)
	assert.Equal(t, "A/threads:2", row.Name)
	assert.Equal(t, 2, row.Line)
	assert.Nil(t, row.Extra)
}

func TestParseSkipsBadLines(t *testing.T) {
	text := "name,iterations,real_time,cpu_time\n" +
		"A\"x/threads:1,1,2,3\n" +
		"B/threads:1,1,2,3\n"
	res := Parse([]byte(text), "bad.csv", "", nil)
	require.NoError(t, res.Err)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, 2, res.Warnings[0].Line)
	assert.Equal(t, "bad.csv", res.Warnings[0].FileName)

	require.Len(t, res.Rows, 1)
	assert.Equal(t, "B/threads:1", res.Rows[0].Name)
	assert.Equal(t, 3, res.Rows[0].Line)
}

func TestParseShortRecord(t *testing.T) {
	// With a fixed layout, the name column need not come first.
	res := Parse([]byte("iterations,name\n5\n6,B/threads:1\n"), "short.csv", "", FixedHeader(0))
	require.NoError(t, res.Err)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, 2, res.Warnings[0].Line)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "B/threads:1", res.Rows[0].Name)
	assert.Equal(t, "6", res.Rows[0].Iterations)
}

func TestParseErrors(t *testing.T) {
	res := Parse([]byte("Run on (8 X 3000 MHz)\nfoo,bar\n"), "none.csv", "FIPS", nil)
	assert.ErrorIs(t, res.Err, ErrHeaderNotFound)
	var fe *FileError
	require.ErrorAs(t, res.Err, &fe)
	assert.Equal(t, "none.csv", fe.Path)
	assert.Empty(t, res.Rows)

	res = Parse([]byte("foo,bar\n1,2\n"), "noname.csv", "", FixedHeader(0))
	assert.ErrorIs(t, res.Err, ErrNoNameColumn)
	assert.Empty(t, res.Rows)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.csv")
	require.NoError(t, os.WriteFile(path, []byte(gostFile), 0666))

	res := ReadFile(path, "GOST", nil)
	require.NoError(t, res.Err)
	assert.Len(t, res.Rows, 2)
	assert.Equal(t, path, res.Rows[0].File)

	res = ReadFile(filepath.Join(dir, "missing.csv"), "GOST", nil)
	assert.ErrorIs(t, res.Err, os.ErrNotExist)
}

// Copyright 2026 The benchcsv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchname

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsmperf/benchcsv/benchcsv"
)

func some(s string) Facet { return Facet{s, true} }

func TestParse(t *testing.T) {
	for _, test := range []struct {
		name string
		want Facets
	}{
		{"Hash/SHA256/threads:1", Facets{Group: "Hash", Func: "SHA256", Threads: some("1")}},
		{"Hash/Block size:64/threads:4", Facets{Group: "Hash", Func: "Hash", BlockSize: some("64"), Threads: some("4")}},
		{"Sign/Verify/session:3/threads:2", Facets{Group: "Sign", Func: "Verify", Session: some("3"), Threads: some("2")}},
		{"Sign/session:3/threads:2", Facets{Group: "Sign", Func: "Sign", Session: some("3"), Threads: some("2")}},
		{
			"Cipher/Kuznyechik/Block size:1024/session:2/threads:8",
			Facets{Group: "Cipher", Func: "Kuznyechik", BlockSize: some("1024"), Session: some("2"), Threads: some("8")},
		},
		{"Hash/SHA/Block size:64.5/threads:1", Facets{Group: "Hash", Func: "SHA", BlockSize: some("64.5"), Threads: some("1")}},
		// The last segment is the thread count even without a marker.
		{"BM_memcpy/8", Facets{Group: "BM_memcpy", Func: "8", Threads: some("8")}},
		{"Hash/threads:16", Facets{Group: "Hash", Func: "Hash", Threads: some("16")}},
		{"Hash", Facets{Group: "Hash", Func: "Hash", Threads: some("Hash")}},
		// Function keywords match as substrings.
		{"Hash/threadsafe/threads:1", Facets{Group: "Hash", Func: "Hash", Threads: some("1")}},
		// Markers are case-sensitive.
		{"Hash/F/Threads:2", Facets{Group: "Hash", Func: "F", Threads: some("Threads:2")}},
		{"Hash/F/threads:", Facets{Group: "Hash", Func: "F", Threads: some("")}},
	} {
		got, err := Parse(test.name)
		if assert.NoError(t, err, test.name) {
			assert.Equal(t, test.want, got, test.name)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	for _, test := range []struct {
		name string
		want Facets
	}{
		{"", Facets{}},
		{"A//threads:1", Facets{Group: "A", Func: "A"}},
		{"A/F/", Facets{Group: "A", Func: "F"}},
		{"A/F/session:1threads:2", Facets{Group: "A", Func: "F"}},
		{"A/session:1threads:2", Facets{Group: "A", Func: "A"}},
		{"A/F/Block size:64Block size:32/threads:1", Facets{Group: "A", Func: "F"}},
	} {
		got, err := Parse(test.name)
		assert.ErrorIs(t, err, ErrMalformed, "%q", test.name)
		var me *MalformedError
		if assert.ErrorAs(t, err, &me) {
			assert.Equal(t, test.name, me.Name)
		}
		assert.Equal(t, test.want, got, "%q", test.name)
	}
}

func TestDecompose(t *testing.T) {
	rows := []*benchcsv.Row{
		{Name: "Hash/SHA256/threads:1"},
		{Name: ""},
		{Name: "Hash/Block size:8/threads:2"},
	}
	got := Decompose(rows)
	require.Len(t, got, 3)
	for i := range rows {
		assert.Same(t, rows[i], got[i].Raw)
	}
	assert.NoError(t, got[0].Err)
	assert.Equal(t, "SHA256", got[0].Facets.Func)
	assert.ErrorIs(t, got[1].Err, ErrMalformed)
	assert.False(t, got[1].Facets.Threads.Present)
	assert.Equal(t, some("8"), got[2].Facets.BlockSize)

	assert.Empty(t, Decompose(nil))
}

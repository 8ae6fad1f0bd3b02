// Copyright 2026 The benchcsv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchname splits benchmark names into their facets.
//
// A benchmark name is a "/"-separated path. The first segment names
// the benchmark group and the second, optionally, the function under
// test. Later segments carry "key:value" facets:
//
//	Hash/Streebog256/Block size:64/threads:4
//	Sign/session:3/threads:1
//
// Three facet keys are recognized: "Block size:", "session:" and
// "threads:". The last segment always gives the thread count, either
// as a "threads:" facet or as a bare number.
package benchname

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hsmperf/benchcsv/benchcsv"
)

// Facet markers, matched case-sensitively.
const (
	MarkerBlockSize = "Block size:"
	MarkerSession   = "session:"
	MarkerThreads   = "threads:"
)

var markers = []string{MarkerBlockSize, MarkerSession, MarkerThreads}

// funcKeywords disqualify the second segment from naming a function.
var funcKeywords = []string{"session", "Block size", "threads"}

// ErrMalformed is reported for a name that cannot be split into facets.
var ErrMalformed = errors.New("malformed benchmark name")

// A MalformedError reports a benchmark name that cannot be split into
// facets.
type MalformedError struct {
	Name string
	Msg  string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrMalformed, e.Name, e.Msg)
}

func (e *MalformedError) Unwrap() error {
	return ErrMalformed
}

// A Facet is the raw text of a facet found in a benchmark name.
type Facet struct {
	Text    string
	Present bool
}

// Facets are the parts of a benchmark name.
type Facets struct {
	Group string
	Func  string

	// BlockSize, Threads and Session hold the unparsed facet
	// values. Converting them to numbers is left to the caller.
	BlockSize Facet
	Threads   Facet
	Session   Facet
}

// Parse splits name into its facets.
//
// If name is malformed, Parse returns a *MalformedError along with
// whatever group and function names it could recover; none of the
// numeric facets are set in that case. A name is malformed if it is
// empty, has an empty segment, or has a segment with more than one
// facet marker.
func Parse(name string) (Facets, error) {
	if name == "" {
		return Facets{}, &MalformedError{name, "empty name"}
	}
	segs := strings.Split(name, "/")
	f := Facets{Group: segs[0], Func: segs[0]}
	if len(segs) > 1 && segs[1] != "" && !containsAny(segs[1], funcKeywords) {
		f.Func = segs[1]
	}

	for _, seg := range segs {
		if seg == "" {
			return f, &MalformedError{name, "empty segment"}
		}
		if n := countMarkers(seg); n > 1 {
			return f, &MalformedError{name, fmt.Sprintf("segment %q has %d facet markers", seg, n)}
		}
	}

	last := segs[len(segs)-1]
	f.Threads = Facet{last, true}
	if i := strings.LastIndex(last, MarkerThreads); i >= 0 {
		f.Threads.Text = last[i+len(MarkerThreads):]
	}
	f.BlockSize = facetAfter(name, MarkerBlockSize)
	f.Session = facetAfter(name, MarkerSession)
	return f, nil
}

// facetAfter returns the text following the last occurrence of marker
// in name, up to the next "/".
func facetAfter(name, marker string) Facet {
	i := strings.LastIndex(name, marker)
	if i < 0 {
		return Facet{}
	}
	val := name[i+len(marker):]
	if j := strings.IndexByte(val, '/'); j >= 0 {
		val = val[:j]
	}
	return Facet{val, true}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func countMarkers(seg string) int {
	n := 0
	for _, m := range markers {
		n += strings.Count(seg, m)
	}
	return n
}

// A Row is a raw benchmark row together with the facets of its name.
type Row struct {
	Raw    *benchcsv.Row
	Facets Facets

	// Err is a *MalformedError if Raw.Name could not be split.
	// The row is still usable; its numeric facets are missing.
	Err error
}

// Decompose splits the name of every row. The result has one Row per
// input row, in the same order.
func Decompose(rows []*benchcsv.Row) []Row {
	out := make([]Row, len(rows))
	for i, raw := range rows {
		f, err := Parse(raw.Name)
		out[i] = Row{Raw: raw, Facets: f, Err: err}
	}
	return out
}

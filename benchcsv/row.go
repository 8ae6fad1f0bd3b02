// Copyright 2026 The benchcsv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchcsv reads benchmark results written by a microbenchmark
// harness in CSV form.
//
// A results file starts with a free-form preamble (machine description,
// a one-line algorithm label, or nothing at all), followed by a header
// row whose first column is "name", followed by one row per benchmark:
//
//	Elliptic curve: GOST R 34.10-2001 CryptoPro A (256 bits)
//	name,iterations,real_time,cpu_time,time_unit,bytes_per_second,items_per_second,label,error_occurred,error_message
//	"Sign/threads:1",1000,512.4,511.9,us,,1951.3,,,
//
// Reading a file is done in three steps: a Locator finds the header
// row, the rows below it are read as untyped cells, and then the
// header row is promoted to column names to materialize each Row.
// Files applies this to a list of files and merges the results into a
// single Batch, keeping a record of every file that could not be read.
//
// This package is designed to be used with the higher-level packages
// benchname and benchnorm.
package benchcsv

import "strings"

// Column names written by the harness.
const (
	ColName           = "name"
	ColIterations     = "iterations"
	ColRealTime       = "real_time"
	ColCPUTime        = "cpu_time"
	ColTimeUnit       = "time_unit"
	ColBytesPerSecond = "bytes_per_second"
	ColItemsPerSecond = "items_per_second"
)

// A Row is a single benchmark observation as read from a results file.
//
// Measurement fields hold the raw cell text with surrounding space
// removed. An empty string means the cell was empty or the file has no
// such column.
type Row struct {
	// Name is the full benchmark name, such as
	// "Hash/SHA256/Block size:64/threads:4".
	Name string

	Iterations     string
	RealTime       string
	CPUTime        string
	TimeUnit       string
	BytesPerSecond string
	ItemsPerSecond string

	// Extra holds any other columns of the file, such as "label"
	// or "error_message", keyed by column name.
	Extra map[string]string

	// File is the path the row was read from.
	File string
	// Type is the category label of the file set the row belongs
	// to. It may be empty.
	Type string
	// Params is the metadata label found above the header row of
	// File. It is the same for every row of a file.
	Params string
	// Line is the 1-based line number of the row in File.
	Line int
}

// Pos returns the file name and line number the row was read from.
func (r *Row) Pos() (fileName string, line int) {
	return r.File, r.Line
}

// Get returns the raw value of column col, or "" if r has no such
// column.
func (r *Row) Get(col string) string {
	switch col {
	case ColName:
		return r.Name
	case ColIterations:
		return r.Iterations
	case ColRealTime:
		return r.RealTime
	case ColCPUTime:
		return r.CPUTime
	case ColTimeUnit:
		return r.TimeUnit
	case ColBytesPerSecond:
		return r.BytesPerSecond
	case ColItemsPerSecond:
		return r.ItemsPerSecond
	}
	return r.Extra[col]
}

// set stores the cell val under column col.
func (r *Row) set(col, val string) {
	val = strings.TrimSpace(val)
	switch col {
	case ColName:
		r.Name = val
	case ColIterations:
		r.Iterations = val
	case ColRealTime:
		r.RealTime = val
	case ColCPUTime:
		r.CPUTime = val
	case ColTimeUnit:
		r.TimeUnit = val
	case ColBytesPerSecond:
		r.BytesPerSecond = val
	case ColItemsPerSecond:
		r.ItemsPerSecond = val
	default:
		if r.Extra == nil {
			r.Extra = make(map[string]string)
		}
		r.Extra[col] = val
	}
}

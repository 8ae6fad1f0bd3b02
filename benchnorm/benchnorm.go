// Copyright 2026 The benchcsv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchnorm coerces decomposed benchmark rows into a fixed,
// strongly typed schema.
//
// Every numeric column of the canonical table is an unsigned integer.
// Timing and throughput values are rounded half-to-even before
// conversion; counts must already be integers. Optional columns hold
// an explicit missing value rather than zero.
package benchnorm

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"

	"github.com/hsmperf/benchcsv/benchcsv"
	"github.com/hsmperf/benchcsv/benchname"
)

// Columns is the column order of the canonical table.
var Columns = []string{
	"type",
	"params",
	"group",
	"func",
	"block_size",
	"iterations",
	"threads",
	"session",
	"cpu_time",
	"real_time",
	"items_per_second",
	"bytes_per_second",
}

// A Row is one normalized benchmark observation.
type Row struct {
	Type   string
	Params string
	Group  string
	Func   string

	BlockSize  Opt
	Iterations uint64
	Threads    Opt
	Session    Opt
	CPUTime    uint64
	RealTime   uint64

	ItemsPerSecond Opt
	BytesPerSecond Opt
}

// Strings returns the cells of r in Columns order. Missing values are
// empty strings.
func (r *Row) Strings() []string {
	return []string{
		r.Type,
		r.Params,
		r.Group,
		r.Func,
		r.BlockSize.String(),
		strconv.FormatUint(r.Iterations, 10),
		r.Threads.String(),
		r.Session.String(),
		strconv.FormatUint(r.CPUTime, 10),
		strconv.FormatUint(r.RealTime, 10),
		r.ItemsPerSecond.String(),
		r.BytesPerSecond.String(),
	}
}

// Values returns the cells of r in Columns order. Strings are strings,
// numbers are uint64, and missing values are nil.
func (r *Row) Values() []interface{} {
	return []interface{}{
		r.Type,
		r.Params,
		r.Group,
		r.Func,
		r.BlockSize.Any(),
		r.Iterations,
		r.Threads.Any(),
		r.Session.Any(),
		r.CPUTime,
		r.RealTime,
		r.ItemsPerSecond.Any(),
		r.BytesPerSecond.Any(),
	}
}

// A Table is the canonical table produced by a run.
type Table struct {
	Rows []Row
}

// Len returns the number of rows in t.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Grouping returns t as a single-group table.Table with one column per
// entry of Columns. Optional columns have element type Opt.
func (t *Table) Grouping() *table.Table {
	n := t.Len()
	var (
		typ, params, group, fn = make([]string, n), make([]string, n), make([]string, n), make([]string, n)
		iters, cpu, wall       = make([]uint64, n), make([]uint64, n), make([]uint64, n)
		block, threads, sess   = make([]Opt, n), make([]Opt, n), make([]Opt, n)
		items, bytes           = make([]Opt, n), make([]Opt, n)
	)
	for i := 0; i < n; i++ {
		r := &t.Rows[i]
		typ[i], params[i], group[i], fn[i] = r.Type, r.Params, r.Group, r.Func
		block[i], iters[i], threads[i], sess[i] = r.BlockSize, r.Iterations, r.Threads, r.Session
		cpu[i], wall[i] = r.CPUTime, r.RealTime
		items[i], bytes[i] = r.ItemsPerSecond, r.BytesPerSecond
	}
	var b table.Builder
	b.Add("type", typ).Add("params", params).Add("group", group).Add("func", fn)
	b.Add("block_size", block).Add("iterations", iters).Add("threads", threads).Add("session", sess)
	b.Add("cpu_time", cpu).Add("real_time", wall)
	b.Add("items_per_second", items).Add("bytes_per_second", bytes)
	return b.Done()
}

// ErrCoerce is wrapped by every error that excludes a row from the
// canonical table.
var ErrCoerce = errors.New("cannot coerce value")

// Reasons a value fails to coerce.
var (
	ErrMissing  = errors.New("required value is missing")
	ErrNegative = errors.New("value is negative")
	ErrRange    = errors.New("value out of range")
)

// A RowError reports a row excluded from the canonical table because
// one of its values could not be coerced.
type RowError struct {
	File  string
	Line  int
	Name  string
	Field string // Column name, from Columns
	Value string // Raw text of the value
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s:%d: %s: %s %q: %v", e.File, e.Line, e.Name, e.Field, e.Value, e.Err)
}

func (e *RowError) Unwrap() []error {
	return []error{ErrCoerce, e.Err}
}

// Normalize coerces rows into the canonical schema. Rows that fail
// coercion are left out of the table and returned as errors, in input
// order. Columns not in Columns are dropped.
func Normalize(rows []benchname.Row) (*Table, []*RowError) {
	t := &Table{Rows: make([]Row, 0, len(rows))}
	var errs []*RowError
	for i := range rows {
		row, err := normalizeRow(&rows[i])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	return t, errs
}

func normalizeRow(in *benchname.Row) (Row, *RowError) {
	raw, f := in.Raw, &in.Facets
	c := coercer{raw: raw}
	out := Row{
		Type:   raw.Type,
		Params: raw.Params,
		Group:  f.Group,
		Func:   f.Func,

		BlockSize:  c.round("block_size", f.BlockSize.Text, f.BlockSize.Present, false),
		Iterations: c.count(benchcsv.ColIterations, raw.Get(benchcsv.ColIterations), true, true).V,
		Threads:    c.count("threads", f.Threads.Text, f.Threads.Present, in.Err == nil),
		Session:    c.count("session", f.Session.Text, f.Session.Present, false),
		CPUTime:    c.round(benchcsv.ColCPUTime, raw.Get(benchcsv.ColCPUTime), true, true).V,
		RealTime:   c.round(benchcsv.ColRealTime, raw.Get(benchcsv.ColRealTime), true, true).V,

		ItemsPerSecond: c.round(benchcsv.ColItemsPerSecond, raw.Get(benchcsv.ColItemsPerSecond), true, false),
		BytesPerSecond: c.round(benchcsv.ColBytesPerSecond, raw.Get(benchcsv.ColBytesPerSecond), true, false),
	}
	if c.err != nil {
		return Row{}, c.err
	}
	return out, nil
}

// A coercer converts the cells of one row, keeping the first error.
type coercer struct {
	raw *benchcsv.Row
	err *RowError
}

func (c *coercer) fail(field, val string, err error) Opt {
	if c.err == nil {
		c.err = &RowError{c.raw.File, c.raw.Line, c.raw.Name, field, val, err}
	}
	return Opt{}
}

// isMissing reports whether s is one of the spellings of a missing
// cell written by the benchmark harness or a spreadsheet export.
func isMissing(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nan", "na", "n/a", "null":
		return true
	}
	return false
}

// count parses an unsigned integer.
func (c *coercer) count(field, s string, present, required bool) Opt {
	if !present || isMissing(s) {
		if required {
			return c.fail(field, s, ErrMissing)
		}
		return Opt{}
	}
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "-") {
		n, err := strconv.ParseInt(s, 10, 64)
		switch {
		case err == nil && n == 0:
			return Some(0)
		case err == nil || errors.Is(err, strconv.ErrRange):
			return c.fail(field, s, ErrNegative)
		default:
			return c.fail(field, s, err.(*strconv.NumError).Err)
		}
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return c.fail(field, s, ErrRange)
		}
		return c.fail(field, s, err.(*strconv.NumError).Err)
	}
	return Some(v)
}

// round parses a real number and rounds it half-to-even.
func (c *coercer) round(field, s string, present, required bool) Opt {
	if !present || isMissing(s) {
		if required {
			return c.fail(field, s, ErrMissing)
		}
		return Opt{}
	}
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	switch {
	case errors.Is(err, strconv.ErrRange):
		return c.fail(field, s, ErrRange)
	case err != nil:
		return c.fail(field, s, err.(*strconv.NumError).Err)
	case math.IsNaN(v) || math.IsInf(v, 0):
		return c.fail(field, s, ErrRange)
	}
	// Values in (-0.5, 0] round to zero and are kept.
	switch v = math.RoundToEven(v); {
	case v < 0:
		return c.fail(field, s, ErrNegative)
	case v >= 1<<64:
		return c.fail(field, s, ErrRange)
	}
	return Some(uint64(v))
}

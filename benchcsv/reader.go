// Copyright 2026 The benchcsv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNoNameColumn is reported for a file whose header row has no
// "name" column.
var ErrNoNameColumn = errors.New("header row has no name column")

// A FileError reports a results file that could not be read at all.
// None of its rows are used.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// A SyntaxError reports a malformed line of a results file. The line
// is skipped; the rest of the file is still read.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// A FileResult is the outcome of reading one results file.
type FileResult struct {
	Path string
	Type string

	// Header is where the header row was found.
	Header Header

	// Rows are the rows read from the file, in file order.
	Rows []*Row

	// Warnings lists lines that were skipped.
	Warnings []*SyntaxError

	// Err is non-nil if the file could not be read. In this case
	// Rows is empty. Err is always a *FileError.
	Err error
}

// ReadFile reads the results file at path. Every row is tagged with
// the category label typ. If locate is nil, FindHeader is used.
//
// ReadFile never fails outright: problems are recorded in the
// returned FileResult.
func ReadFile(path, typ string, locate Locator) *FileResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return &FileResult{Path: path, Type: typ, Err: &FileError{path, err}}
	}
	return Parse(data, path, typ, locate)
}

// Parse is like ReadFile, but reads the file contents from data.
// path is used to tag rows and in error messages.
func Parse(data []byte, path, typ string, locate Locator) *FileResult {
	if locate == nil {
		locate = FindHeader
	}
	res := &FileResult{Path: path, Type: typ}
	h, err := locate(data)
	if err != nil {
		res.Err = &FileError{path, err}
		return res
	}
	res.Header = h
	cells, lines := res.readCells(data[h.Offset:], h.Line)
	res.materialize(cells, lines)
	return res
}

// readCells is the first pass over the file. It reads untyped records
// from the header row to the end of text and returns them along with
// the 1-based line number of each record. firstLine is the 0-based
// index of the header row within the whole file.
func (res *FileResult) readCells(text []byte, firstLine int) (cells [][]string, lines []int) {
	r := csv.NewReader(bytes.NewReader(text))
	r.FieldsPerRecord = -1
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				res.warn(firstLine+perr.Line, perr.Err.Error())
				continue
			}
			res.warn(firstLine, err.Error())
			break
		}
		line, _ := r.FieldPos(0)
		cells = append(cells, rec)
		lines = append(lines, firstLine+line)
	}
	return cells, lines
}

// materialize is the second pass over the file. It promotes the first
// record to column names and builds a Row from each following record.
func (res *FileResult) materialize(cells [][]string, lines []int) {
	if len(cells) == 0 {
		res.Err = &FileError{res.Path, ErrNoNameColumn}
		return
	}
	cols := make([]string, len(cells[0]))
	nameCol := -1
	for i, c := range cells[0] {
		cols[i] = strings.TrimSpace(c)
		if cols[i] == ColName && nameCol < 0 {
			nameCol = i
		}
	}
	if nameCol < 0 {
		res.Err = &FileError{res.Path, ErrNoNameColumn}
		return
	}

	for i, rec := range cells[1:] {
		line := lines[i+1]
		if nameCol >= len(rec) {
			res.warn(line, fmt.Sprintf("record has %d fields, no %s column", len(rec), ColName))
			continue
		}
		row := &Row{
			File:   res.Path,
			Type:   res.Type,
			Params: res.Header.Params,
			Line:   line,
		}
		for j, col := range cols {
			if j >= len(rec) || col == "" || (col == ColName && j != nameCol) {
				continue
			}
			row.set(col, rec[j])
		}
		res.Rows = append(res.Rows, row)
	}
}

func (res *FileResult) warn(line int, msg string) {
	res.Warnings = append(res.Warnings, &SyntaxError{res.Path, line, msg})
}

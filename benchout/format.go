// Copyright 2026 The benchcsv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchout renders the canonical benchmark table.
//
// Every format writes a header row of benchnorm.Columns followed by one
// row per observation. Missing values are rendered as empty cells.
package benchout

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hsmperf/benchcsv/benchnorm"
)

// A Format is an output format.
type Format int

const (
	Text Format = iota
	CSV
	XLSX
	HTML
)

var formatNames = map[Format]string{
	Text: "text",
	CSV:  "csv",
	XLSX: "xlsx",
	HTML: "html",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat returns the format with the given name.
func ParseFormat(name string) (Format, error) {
	for f, n := range formatNames {
		if strings.EqualFold(n, name) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown output format %q (want text, csv, xlsx, or html)", name)
}

// FormatFor guesses the format of an output file from its name. The
// name "-" means standard output, which gets Text. Unrecognized
// extensions get XLSX.
func FormatFor(path string) Format {
	if path == "-" {
		return Text
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return CSV
	case ".html", ".htm":
		return HTML
	case ".txt":
		return Text
	}
	return XLSX
}

// Write renders t to w in format f.
func Write(w io.Writer, f Format, t *benchnorm.Table) error {
	switch f {
	case Text:
		return WriteText(w, t)
	case CSV:
		return WriteCSV(w, t)
	case XLSX:
		return WriteXLSX(w, t)
	case HTML:
		return WriteHTML(w, t)
	}
	return fmt.Errorf("unknown output format %v", f)
}

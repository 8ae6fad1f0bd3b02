// Copyright 2026 The benchcsv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"
)

// ErrHeaderNotFound is reported for a file that has no header row.
var ErrHeaderNotFound = errors.New("header row not found")

// A Header records where the column header of a results file is.
type Header struct {
	// Line is the 0-based index of the header row.
	Line int
	// Offset is the byte offset of the header row in the file.
	Offset int
	// Params is the first field of the last non-blank line above
	// the header row, or "" if there is none. The harness writes a
	// one-line description of the benchmarked algorithm there.
	Params string
}

// A Locator finds the Header in the full text of a results file. It
// returns ErrHeaderNotFound if there is none.
type Locator func(text []byte) (Header, error)

var _ Locator = FindHeader

// headerToken is the first token of the header row.
const headerToken = "name"

type scanState int

const (
	seekingHeader scanState = iota
	headerFound
)

// FindHeader is a Locator for files whose preamble has any number of
// lines. The header is the first line whose first token is "name".
func FindHeader(text []byte) (Header, error) {
	var (
		s      = newLineScanner(text)
		state  = seekingHeader
		h      Header
		params []byte
	)
	for state == seekingHeader {
		line, idx, off, ok := s.next()
		if !ok {
			break
		}
		switch {
		case firstToken(line) == headerToken:
			h.Line, h.Offset = idx, off
			state = headerFound
		case len(bytes.TrimSpace(line)) > 0:
			params = line
		}
	}
	if state != headerFound {
		return Header{}, ErrHeaderNotFound
	}
	h.Params = firstField(params)
	return h, nil
}

// FixedHeader returns a Locator for files whose header is always on
// the 0-based line n. It does not look at the header row itself.
func FixedHeader(n int) Locator {
	return func(text []byte) (Header, error) {
		s := newLineScanner(text)
		var params []byte
		for {
			line, idx, off, ok := s.next()
			if !ok || n < 0 {
				return Header{}, ErrHeaderNotFound
			}
			if idx == n {
				return Header{Line: n, Offset: off, Params: firstField(params)}, nil
			}
			if len(bytes.TrimSpace(line)) > 0 {
				params = line
			}
		}
	}
}

var utf8BOM = []byte("\xef\xbb\xbf")

// A lineScanner splits text into lines, tracking their index and byte
// offset. It accepts both "\n" and "\r\n" line endings.
type lineScanner struct {
	text []byte
	off  int
	idx  int
}

func newLineScanner(text []byte) *lineScanner {
	s := &lineScanner{text: text}
	if bytes.HasPrefix(text, utf8BOM) {
		s.off = len(utf8BOM)
	}
	return s
}

func (s *lineScanner) next() (line []byte, idx, off int, ok bool) {
	if s.off >= len(s.text) {
		return nil, 0, 0, false
	}
	off, idx = s.off, s.idx
	rest := s.text[off:]
	if i := bytes.IndexByte(rest, '\n'); i >= 0 {
		line = rest[:i]
		s.off += i + 1
	} else {
		line = rest
		s.off = len(s.text)
	}
	s.idx++
	return bytes.TrimSuffix(line, []byte("\r")), idx, off, true
}

// firstToken returns the first token of a CSV line: a quoted field
// without its quotes, or the bare text up to the first comma or space.
func firstToken(line []byte) string {
	line = bytes.TrimLeft(line, " \t")
	if len(line) > 0 && line[0] == '"' {
		end := bytes.IndexByte(line[1:], '"')
		if end < 0 {
			return ""
		}
		return string(line[1 : 1+end])
	}
	end := bytes.IndexAny(line, ", \t")
	if end < 0 {
		end = len(line)
	}
	return string(line[:end])
}

// firstField returns the first CSV field of line.
func firstField(line []byte) string {
	if len(bytes.TrimSpace(line)) == 0 {
		return ""
	}
	r := csv.NewReader(bytes.NewReader(line))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	rec, err := r.Read()
	if err != nil || len(rec) == 0 {
		return strings.TrimSpace(string(line))
	}
	return strings.TrimSpace(rec[0])
}

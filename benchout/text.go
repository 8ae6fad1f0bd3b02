// Copyright 2026 The benchcsv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchout

import (
	"encoding/csv"
	"io"

	"github.com/aclements/go-gg/table"

	"github.com/hsmperf/benchcsv/benchnorm"
)

// WriteText writes t as aligned columns for a terminal.
func WriteText(w io.Writer, t *benchnorm.Table) error {
	return table.Fprint(w, t.Grouping())
}

// WriteCSV writes t as comma-separated values.
func WriteCSV(w io.Writer, t *benchnorm.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(benchnorm.Columns); err != nil {
		return err
	}
	for i := range t.Rows {
		if err := cw.Write(t.Rows[i].Strings()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

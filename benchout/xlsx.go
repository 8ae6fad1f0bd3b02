// Copyright 2026 The benchcsv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchout

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/hsmperf/benchcsv/benchnorm"
)

// WriteXLSX writes t as a single-sheet workbook. Numbers are stored as
// numeric cells and missing values are left blank.
func WriteXLSX(w io.Writer, t *benchnorm.Table) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	setRow := func(row int, vals []interface{}) error {
		for col, v := range vals {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		return nil
	}

	header := make([]interface{}, len(benchnorm.Columns))
	for i, col := range benchnorm.Columns {
		header[i] = col
	}
	if err := setRow(1, header); err != nil {
		return err
	}
	for i := range t.Rows {
		if err := setRow(i+2, t.Rows[i].Values()); err != nil {
			return err
		}
	}
	_, err := f.WriteTo(w)
	return err
}

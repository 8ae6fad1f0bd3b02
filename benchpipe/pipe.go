// Copyright 2026 The benchcsv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchpipe runs the normalization pipeline over a set of
// category directories.
//
// A run discovers the results files of each category, reads and merges
// them, concatenates the categories in order, splits every benchmark
// name into its facets, and coerces the result into the canonical
// table. Failures never stop a run. Each one is logged and collected
// in the run's Report.
package benchpipe

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/hsmperf/benchcsv/benchcsv"
	"github.com/hsmperf/benchcsv/benchname"
	"github.com/hsmperf/benchcsv/benchnorm"
)

// A Category is a labeled directory of results files.
type Category struct {
	// Label tags every row read from Dir. It may be empty.
	Label string `yaml:"label"`
	Dir   string `yaml:"dir"`
}

// Config configures a run.
type Config struct {
	// Categories are read in order.
	Categories []Category

	// Locate finds the header row of each file. If nil,
	// benchcsv.FindHeader is used.
	Locate benchcsv.Locator

	// Workers is the number of files of a category to read
	// concurrently.
	Workers int

	// Log receives one entry per failure. If nil, nothing is
	// logged.
	Log logrus.FieldLogger
}

// A Report lists everything that went wrong during a run.
type Report struct {
	// Files is the number of files whose rows were used.
	Files int

	// Rows is the number of raw rows read from those files.
	Rows int

	// FileErrors lists excluded files and unreadable category
	// directories.
	FileErrors []*benchcsv.FileError

	// Warnings lists skipped lines.
	Warnings []*benchcsv.SyntaxError

	// Malformed lists rows whose names could not be split. These
	// rows are in the table with their numeric facets missing.
	Malformed []benchname.Row

	// Excluded lists rows left out of the table.
	Excluded []*benchnorm.RowError
}

// Clean reports whether the run had no failures of any kind.
func (r *Report) Clean() bool {
	return len(r.FileErrors) == 0 && len(r.Warnings) == 0 && len(r.Malformed) == 0 && len(r.Excluded) == 0
}

// Summary returns a one-line account of r.
func (r *Report) Summary() string {
	return fmt.Sprintf("%d files, %d rows read; %d files excluded, %d lines skipped, %d rows excluded, %d malformed names",
		r.Files, r.Rows, len(r.FileErrors), len(r.Warnings), len(r.Excluded), len(r.Malformed))
}

// Run runs the pipeline described by cfg. It always returns a table,
// which is empty if no valid rows were found.
func Run(cfg *Config) (*benchnorm.Table, *Report) {
	log := cfg.Log
	if log == nil {
		l := logrus.New()
		l.Out = io.Discard
		log = l
	}

	batches := make([]*benchcsv.Batch, 0, len(cfg.Categories))
	var dirErrs []*benchcsv.FileError
	for _, cat := range cfg.Categories {
		clog := log.WithField("category", cat.Label)
		paths, err := benchcsv.Glob(cat.Dir)
		if err != nil {
			clog.WithError(err).WithField("dir", cat.Dir).Warn("cannot list category directory")
			dirErrs = append(dirErrs, &benchcsv.FileError{Path: cat.Dir, Err: err})
			continue
		}
		files := &benchcsv.Files{Paths: paths, Type: cat.Label, Locate: cfg.Locate, Workers: cfg.Workers}
		b := files.ReadAll()
		clog.WithFields(logrus.Fields{
			"dir":   cat.Dir,
			"files": b.Files,
			"rows":  len(b.Rows),
		}).Debug("read category")
		batches = append(batches, b)
	}
	all := benchcsv.Concat(batches...)

	rep := &Report{
		Files:      all.Files,
		Rows:       len(all.Rows),
		FileErrors: append(dirErrs, all.Failures...),
		Warnings:   all.Warnings,
	}
	for _, fe := range all.Failures {
		log.WithError(fe.Err).WithField("file", fe.Path).Warn("file excluded")
	}
	for _, w := range all.Warnings {
		log.WithFields(logrus.Fields{"file": w.FileName, "line": w.Line}).Warn(w.Msg)
	}

	rows := benchname.Decompose(all.Rows)
	for _, row := range rows {
		if row.Err == nil {
			continue
		}
		rep.Malformed = append(rep.Malformed, row)
		file, line := row.Raw.Pos()
		log.WithError(row.Err).WithFields(logrus.Fields{
			"file": file,
			"line": line,
			"name": row.Raw.Name,
		}).Warn("malformed benchmark name")
	}

	tab, excluded := benchnorm.Normalize(rows)
	rep.Excluded = excluded
	for _, re := range excluded {
		log.WithError(re.Err).WithFields(logrus.Fields{
			"file":  re.File,
			"line":  re.Line,
			"name":  re.Name,
			"field": re.Field,
			"value": re.Value,
		}).Warn("row excluded")
	}
	return tab, rep
}

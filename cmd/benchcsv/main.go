// Copyright 2026 The benchcsv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchcsv merges benchmark-result CSV files into a single table.
//
// Usage:
//
//	benchcsv [flags]
//
// Benchcsv reads every *.csv file directly inside each category
// directory. The files are CSV output of a microbenchmark harness,
// such as Google Benchmark run with --benchmark_format=csv. Any lines
// before the header row are ignored, except that the last of them is
// kept as the "params" of the file's rows.
//
// Each benchmark name is split into its facets:
//
//	Hash/Streebog256/Block size:64/threads:4
//
// gives group "Hash", func "Streebog256", block_size 64 and threads 4.
// Timing and throughput values are rounded to the nearest integer, with
// ties going to the even neighbor.
//
// The resulting table has the columns
//
//	type params group func block_size iterations threads session
//	cpu_time real_time items_per_second bytes_per_second
//
// where type is the label of the row's category. The table is printed
// to standard output and written to the -o file, whose format is given
// by -format or guessed from its extension (xlsx, csv, html, or txt).
// With -o -, the table is only written to standard output, in -format
// (text by default). If there are no valid rows, nothing is written.
//
// Categories come from the -gost and -fips flags, which label their
// rows "GOST" and "FIPS", and from the categories list of the -config
// YAML file:
//
//	categories:
//	  - label: GOST
//	    dir: ./gost
//	  - label: Kuznyechik
//	    dir: ./kuz
//	output: results.xlsx
//	workers: 4
//
// Relative directories in the config file are relative to the file.
// Config categories come first, followed by -gost and then -fips.
//
// Settings may also come from the environment, or from a .env file in
// the current directory: BENCHCSV_GOST, BENCHCSV_FIPS, BENCHCSV_CONFIG,
// BENCHCSV_OUTPUT, BENCHCSV_FORMAT, BENCHCSV_DB, BENCHCSV_DB_DRIVER,
// and BENCHCSV_LOG_LEVEL. Flags override the environment, which
// overrides the config file.
//
// With -db, the table is also stored as a new run in a sqlite3 or
// mysql database.
//
// Problems with individual files and rows are logged to standard
// error and do not stop the run. Files without a header row are
// skipped. Rows whose values cannot be converted are dropped. Rows
// whose names cannot be split are kept with their numeric facets
// missing.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/hsmperf/benchcsv/benchcsv"
	"github.com/hsmperf/benchcsv/benchnorm"
	"github.com/hsmperf/benchcsv/benchout"
	"github.com/hsmperf/benchcsv/benchpipe"
	"github.com/hsmperf/benchcsv/benchstore"
	_ "github.com/hsmperf/benchcsv/benchstore/sqlite3"
)

func main() {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "benchcsv: %s\n", err)
		os.Exit(1)
	}
}

// getenv is replaced during testing.
var getenv = os.Getenv

func run(stdout, stderr io.Writer, args []string) error {
	flags := flag.NewFlagSet("benchcsv", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: benchcsv [flags]\n")
		flags.PrintDefaults()
	}
	var (
		flagGost       = flags.String("gost", "", "read GOST results from `dir`")
		flagFips       = flags.String("fips", "", "read FIPS results from `dir`")
		flagConfig     = flags.String("config", "", "read categories and settings from YAML `file`")
		flagOutput     = flags.String("o", defaultOutput, "write the table to `file` (- for standard output)")
		flagFormat     = flags.String("format", "", "output `format`: text, csv, xlsx, or html (default from -o)")
		flagHeaderLine = flags.Int("header-line", -1, "header row is at 0-based line `n` (-1 to search for it)")
		flagWorkers    = flags.Int("j", 1, "read up to `n` files at once")
		flagDB         = flags.String("db", "", "also store the table in the database at `dsn`")
		flagDBDriver   = flags.String("db-driver", "sqlite3", "database `driver`: sqlite3 or mysql")
		flagVerbose    = flags.Bool("v", false, "log progress as well as problems")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() > 0 {
		flags.Usage()
		return flag.ErrHelp
	}

	// Resolve settings: config file, then environment, then flags.
	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })
	pick := func(name, env string, val *string) {
		if !set[name] {
			if v := getenv(env); v != "" {
				*val = v
			}
		}
	}
	pick("config", "BENCHCSV_CONFIG", flagConfig)

	var cfg *config
	if *flagConfig != "" {
		var err error
		if cfg, err = loadConfig(*flagConfig); err != nil {
			return err
		}
		if !set["o"] && cfg.Output != "" {
			*flagOutput = cfg.Output
		}
		if !set["format"] && cfg.Format != "" {
			*flagFormat = cfg.Format
		}
		if !set["header-line"] && cfg.HeaderLine != nil {
			*flagHeaderLine = *cfg.HeaderLine
		}
		if !set["j"] && cfg.Workers != 0 {
			*flagWorkers = cfg.Workers
		}
		if !set["db"] && cfg.DB != "" {
			*flagDB = cfg.DB
		}
		if !set["db-driver"] && cfg.DBDriver != "" {
			*flagDBDriver = cfg.DBDriver
		}
	}
	pick("gost", "BENCHCSV_GOST", flagGost)
	pick("fips", "BENCHCSV_FIPS", flagFips)
	pick("o", "BENCHCSV_OUTPUT", flagOutput)
	pick("format", "BENCHCSV_FORMAT", flagFormat)
	pick("db", "BENCHCSV_DB", flagDB)
	pick("db-driver", "BENCHCSV_DB_DRIVER", flagDBDriver)

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.InfoLevel)
	if lvl := getenv("BENCHCSV_LOG_LEVEL"); lvl != "" {
		l, err := logrus.ParseLevel(lvl)
		if err != nil {
			return fmt.Errorf("BENCHCSV_LOG_LEVEL: %w", err)
		}
		log.SetLevel(l)
	}
	if *flagVerbose {
		log.SetLevel(logrus.DebugLevel)
	}

	format := benchout.FormatFor(*flagOutput)
	if *flagFormat != "" {
		var err error
		if format, err = benchout.ParseFormat(*flagFormat); err != nil {
			return err
		}
	}

	pipe := &benchpipe.Config{Workers: *flagWorkers, Log: log}
	if cfg != nil {
		pipe.Categories = append(pipe.Categories, cfg.Categories...)
	}
	if *flagGost != "" {
		pipe.Categories = append(pipe.Categories, benchpipe.Category{Label: "GOST", Dir: *flagGost})
	}
	if *flagFips != "" {
		pipe.Categories = append(pipe.Categories, benchpipe.Category{Label: "FIPS", Dir: *flagFips})
	}
	if *flagHeaderLine >= 0 {
		pipe.Locate = benchcsv.FixedHeader(*flagHeaderLine)
	}
	if len(pipe.Categories) == 0 {
		log.Warn("no categories given; use -gost, -fips, or -config")
	}

	tab, rep := benchpipe.Run(pipe)
	log.Info(rep.Summary())
	if tab.Len() == 0 {
		log.Info("no valid rows; nothing written")
		return nil
	}

	if *flagOutput == "-" {
		if err := benchout.Write(stdout, format, tab); err != nil {
			return err
		}
	} else {
		if err := benchout.WriteText(stdout, tab); err != nil {
			return err
		}
		if err := writeFile(*flagOutput, format, tab); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"file": *flagOutput, "format": format}).Debug("wrote table")
	}

	if *flagDB != "" {
		db, err := benchstore.OpenSQL(*flagDBDriver, *flagDB)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()
		r, err := db.InsertTable(context.Background(), tab)
		if err != nil {
			return fmt.Errorf("store table: %w", err)
		}
		log.WithFields(logrus.Fields{"run": r.ID, "rows": r.Rows}).Debug("stored table")
	}
	return nil
}

const defaultOutput = "output.xlsx"

func writeFile(path string, format benchout.Format, tab *benchnorm.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := benchout.Write(f, format, tab); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

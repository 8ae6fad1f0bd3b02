// Copyright 2026 The benchcsv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsmperf/benchcsv/benchpipe"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "benchcsv.yaml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0666))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
categories:
  - label: GOST
    dir: gost
  - dir: /abs/kuz
output: results.csv
workers: 4
header_line: 1
db: results.db
db_driver: sqlite3
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	base := filepath.Dir(path)
	assert.Equal(t, []benchpipe.Category{
		{Label: "GOST", Dir: filepath.Join(base, "gost")},
		{Label: "", Dir: "/abs/kuz"},
	}, cfg.Categories)
	assert.Equal(t, "results.csv", cfg.Output)
	assert.Equal(t, 4, cfg.Workers)
	require.NotNil(t, cfg.HeaderLine)
	assert.Equal(t, 1, *cfg.HeaderLine)
	assert.Equal(t, "results.db", cfg.DB)
	assert.Equal(t, "sqlite3", cfg.DBDriver)
}

func TestLoadConfigEmpty(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Empty(t, cfg.Categories)
	assert.Nil(t, cfg.HeaderLine)
}

func TestLoadConfigErrors(t *testing.T) {
	for _, text := range []string{
		"categories:\n  - label: GOST\n",
		"category:\n  - dir: x\n",
		"workers: many\n",
	} {
		_, err := loadConfig(writeConfig(t, text))
		assert.Error(t, err, "%q", text)
	}
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

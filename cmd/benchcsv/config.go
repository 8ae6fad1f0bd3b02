// Copyright 2026 The benchcsv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hsmperf/benchcsv/benchpipe"
)

// config is the contents of a -config file.
type config struct {
	Categories []benchpipe.Category `yaml:"categories"`
	Output     string               `yaml:"output"`
	Format     string               `yaml:"format"`
	Workers    int                  `yaml:"workers"`
	HeaderLine *int                 `yaml:"header_line"`
	DB         string               `yaml:"db"`
	DBDriver   string               `yaml:"db_driver"`
}

// loadConfig reads the config file at path. Relative category
// directories are resolved against the directory containing path.
func loadConfig(path string) (*config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg := new(config)
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	base := filepath.Dir(path)
	for i, cat := range cfg.Categories {
		if cat.Dir == "" {
			return nil, fmt.Errorf("%s: category %d (%q) has no dir", path, i+1, cat.Label)
		}
		if !filepath.IsAbs(cat.Dir) {
			cfg.Categories[i].Dir = filepath.Join(base, cat.Dir)
		}
	}
	return cfg, nil
}

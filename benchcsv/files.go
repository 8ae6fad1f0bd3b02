// Copyright 2026 The benchcsv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"os"
	"path/filepath"
	"sync"
)

// Files reads a sequence of results files that share a category.
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// Type is the category label attached to every row. It may be
	// empty.
	Type string

	// Locate finds the header row of each file. If nil, FindHeader
	// is used.
	Locate Locator

	// Workers is the number of files to read concurrently. Values
	// below 2 read the files one at a time. Either way, the rows in
	// the resulting Batch are in Paths order.
	Workers int
}

// A Batch is the merged content of a set of results files.
type Batch struct {
	// Rows holds the rows of every file that could be read, in
	// file order.
	Rows []*Row

	// Files is the number of files whose rows are in Rows.
	Files int

	// Failures lists the files that were excluded.
	Failures []*FileError

	// Warnings lists skipped lines of the files in Rows.
	Warnings []*SyntaxError
}

// ReadAll reads every file in f.Paths and merges them. An empty path
// list results in an empty Batch.
func (f *Files) ReadAll() *Batch {
	results := make([]*FileResult, len(f.Paths))
	workers := f.Workers
	if workers > len(f.Paths) {
		workers = len(f.Paths)
	}
	if workers < 2 {
		for i, path := range f.Paths {
			results[i] = ReadFile(path, f.Type, f.Locate)
		}
	} else {
		next := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range next {
					results[i] = ReadFile(f.Paths[i], f.Type, f.Locate)
				}
			}()
		}
		for i := range f.Paths {
			next <- i
		}
		close(next)
		wg.Wait()
	}

	b := new(Batch)
	for _, res := range results {
		b.Add(res)
	}
	return b
}

// Add appends the outcome of reading one file to b.
func (b *Batch) Add(res *FileResult) {
	b.Warnings = append(b.Warnings, res.Warnings...)
	if res.Err != nil {
		fe, ok := res.Err.(*FileError)
		if !ok {
			fe = &FileError{res.Path, res.Err}
		}
		b.Failures = append(b.Failures, fe)
		return
	}
	b.Rows = append(b.Rows, res.Rows...)
	b.Files++
}

// Concat returns the concatenation of bs, in order.
func Concat(bs ...*Batch) *Batch {
	out := new(Batch)
	for _, b := range bs {
		out.Rows = append(out.Rows, b.Rows...)
		out.Files += b.Files
		out.Failures = append(out.Failures, b.Failures...)
		out.Warnings = append(out.Warnings, b.Warnings...)
	}
	return out
}

// Glob returns the results files directly in dir, sorted by name.
// Results files are those whose name ends in ".csv". Subdirectories
// are not searched. If dir is "", Glob returns no files.
func Glob(dir string) ([]string, error) {
	if dir == "" {
		return nil, nil
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, ent := range ents {
		if ent.IsDir() || filepath.Ext(ent.Name()) != ".csv" {
			continue
		}
		paths = append(paths, filepath.Join(dir, ent.Name()))
	}
	return paths, nil
}

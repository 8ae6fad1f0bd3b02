// Copyright 2026 The benchcsv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff describes differences between expected and actual test
// output.
package diff

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Diff returns a human-readable description of the differences
// between want and got, or "" if they are equal. If the "diff" command
// is available, the result is a unified diff from want to got.
func Diff(want, got []byte) string {
	if string(want) == string(got) {
		return ""
	}
	cmd := "diff"
	if runtime.GOOS == "plan9" {
		cmd = "/bin/ape/diff"
	}
	if _, err := exec.LookPath(cmd); err != nil {
		return fmt.Sprintf("want:\n%s\ngot:\n%s", want, got)
	}

	dir, err := os.MkdirTemp("", "benchcsv-diff")
	if err != nil {
		return err.Error()
	}
	defer os.RemoveAll(dir)
	for name, data := range map[string][]byte{"want": want, "got": got} {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0666); err != nil {
			return err.Error()
		}
	}

	c := exec.Command(cmd, "-Nu", "want", "got")
	c.Dir = dir
	data, err := c.CombinedOutput()
	if len(data) > 0 {
		// diff exits with a non-zero status when the files differ.
		return string(data)
	}
	if err != nil {
		return fmt.Sprintf("%s: %v\nwant:\n%s\ngot:\n%s", cmd, err, want, got)
	}
	return fmt.Sprintf("want:\n%s\ngot:\n%s", want, got)
}

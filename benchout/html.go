// Copyright 2026 The benchcsv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchout

import (
	"io"

	"github.com/google/safehtml/template"

	"github.com/hsmperf/benchcsv/benchnorm"
)

var htmlTemplate = template.Must(template.New("").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Benchmark results</title>
<style>
table.benchcsv { border-collapse: collapse; font-family: sans-serif; }
table.benchcsv th, table.benchcsv td { padding: 2px 8px; border: 1px solid #ccc; }
table.benchcsv td:nth-child(n+5) { text-align: right; }
</style>
</head>
<body>
<table class='benchcsv'>
<thead>
<tr>{{range .Columns}}<th>{{.}}{{end}}
</thead>
<tbody>
{{- range .Rows}}
<tr>{{range .}}<td>{{.}}{{end}}
{{- end}}
</tbody>
</table>
</body>
</html>
`))

// WriteHTML writes t as a standalone HTML page.
func WriteHTML(w io.Writer, t *benchnorm.Table) error {
	rows := make([][]string, len(t.Rows))
	for i := range t.Rows {
		rows[i] = t.Rows[i].Strings()
	}
	return htmlTemplate.Execute(w, struct {
		Columns []string
		Rows    [][]string
	}{benchnorm.Columns, rows})
}

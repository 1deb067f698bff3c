// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"io"

	"github.com/google/safehtml/template"
)

var htmlTemplate = template.Must(template.New("dataset").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
table { border-collapse: collapse; margin-bottom: 1em; }
th, td { border: 1px solid #ccc; padding: 0.2em 0.6em; text-align: right; }
caption { font-weight: bold; text-align: left; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{- range $s := .Series}}
<table>
<caption>{{$s.Label}} data</caption>
<tr><th>pieces</th>{{if $s.Recode}}<th>recode pieces</th>{{end}}<th>median ({{$.Unit}})</th></tr>
{{- range $s.Rows}}
<tr><td>{{.Pieces}}</td>{{if $s.Recode}}<td>{{.Recode}}</td>{{end}}<td>{{.Median}}</td></tr>
{{- end}}
</table>
{{- else}}
<p>No results.</p>
{{- end}}
</body>
</html>
`))

type htmlRow struct {
	Pieces int
	Recode int
	Median string
}

type htmlSeries struct {
	Label  string
	Recode bool
	Rows   []htmlRow
}

// WriteHTML writes d to w as an HTML page with one table per series.
// Medians are printed in d.Unit.
func (d *Dataset) WriteHTML(w io.Writer, title string) error {
	data := struct {
		Title  string
		Unit   string
		Series []htmlSeries
	}{Title: title, Unit: d.Unit.String()}

	for _, s := range d.Series {
		hs := htmlSeries{Label: s.Label}
		for _, smp := range s.Samples {
			hs.Recode = hs.Recode || smp.RecodePieces > 0
			hs.Rows = append(hs.Rows, htmlRow{smp.Pieces, smp.RecodePieces, strof(smp.Median)})
		}
		data.Series = append(data.Series, hs)
	}
	return htmlTemplate.Execute(w, data)
}

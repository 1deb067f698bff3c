// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"fmt"
	"io"

	"github.com/aclements/go-gg/table"

	"github.com/itzmeanjan/benchplot/benchunit"
)

// Table returns d as a table with one row per sample. The recode
// column is present only if some sample recodes. Medians are scaled
// to a common unit chosen by benchunit.CommonScale, which the
// returned Scaler describes.
func (d *Dataset) Table() (*table.Table, benchunit.Scaler) {
	var (
		sizes   []string
		pieces  []int
		recodes []int
		medians []float64
		recode  bool
	)
	for _, s := range d.Series {
		for _, smp := range s.Samples {
			sizes = append(sizes, s.Label)
			pieces = append(pieces, smp.Pieces)
			recodes = append(recodes, smp.RecodePieces)
			medians = append(medians, benchunit.Tidy(smp.Median, d.Unit))
			recode = recode || smp.RecodePieces > 0
		}
	}

	scaler := benchunit.CommonScale(medians)
	scaled := make([]float64, len(medians))
	for i, m := range medians {
		scaled[i] = m / scaler.Unit.Factor
	}

	b := table.NewBuilder(nil).
		Add("size", sizes).
		Add("pieces", pieces)
	if recode {
		b.Add("recode", recodes)
	}
	b.Add(fmt.Sprintf("median (%s)", scaler.Unit), scaled)
	return b.Done(), scaler
}

// WriteText writes d to w as an aligned text table.
func (d *Dataset) WriteText(w io.Writer) error {
	tab, scaler := d.Table()
	if tab.Len() == 0 {
		_, err := fmt.Fprintln(w, "no results")
		return err
	}
	formats := []string{"%s", "%d"}
	if len(tab.Columns()) == 4 {
		formats = append(formats, "%d")
	}
	formats = append(formats, fmt.Sprintf("%%.%df", scaler.Prec))
	return table.Fprint(w, tab, formats...)
}

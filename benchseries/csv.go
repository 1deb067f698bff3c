// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"github.com/itzmeanjan/benchplot/benchunit"
)

type CsvOptions int

const (
	CSV_PLAIN CsvOptions = 0 // One row per sample
	CSV_WIDE  CsvOptions = 1 // One row per piece count, one column per series
)

// ToCsv writes d to out as CSV. Medians are printed exactly, in d.Unit.
//
// In CSV_PLAIN form the header is
//
//	size,pieces,recode_pieces,median_<unit>
//
// where <unit> is d.Unit with "/" replaced by "p", such as "GiBps".
// recode_pieces is empty for samples that do not recode.
//
// In CSV_WIDE form the first column is the piece count and each
// further column is the median of one series, empty where that
// series has no sample. A piece count repeated within a series
// keeps its first median.
func (d *Dataset) ToCsv(out io.Writer, options CsvOptions) error {
	var tab [][]string
	switch options {
	case CSV_WIDE:
		tab = d.wideRows()
	default:
		tab = d.plainRows()
	}
	csvw := csv.NewWriter(out)
	csvw.WriteAll(tab)
	csvw.Flush()
	return csvw.Error()
}

func (d *Dataset) plainRows() [][]string {
	tab := [][]string{{"size", "pieces", "recode_pieces", "median_" + unitColumn(d.Unit)}}
	for _, s := range d.Series {
		for _, smp := range s.Samples {
			recode := ""
			if smp.RecodePieces > 0 {
				recode = strconv.Itoa(smp.RecodePieces)
			}
			tab = append(tab, []string{s.Label, strconv.Itoa(smp.Pieces), recode, strof(smp.Median)})
		}
	}
	return tab
}

func (d *Dataset) wideRows() [][]string {
	hdr := []string{"pieces"}
	piecesSet := make(map[int]bool)
	for _, s := range d.Series {
		hdr = append(hdr, s.Label+" ("+d.Unit.String()+")")
		for _, smp := range s.Samples {
			piecesSet[smp.Pieces] = true
		}
	}
	pieces := make([]int, 0, len(piecesSet))
	for p := range piecesSet {
		pieces = append(pieces, p)
	}
	sort.Ints(pieces)

	tab := [][]string{hdr}
	for _, p := range pieces {
		row := []string{strconv.Itoa(p)}
		for _, s := range d.Series {
			entry := ""
			for _, smp := range s.Samples {
				if smp.Pieces == p {
					entry = strof(smp.Median)
					break
				}
			}
			row = append(row, entry)
		}
		tab = append(tab, row)
	}
	return tab
}

func unitColumn(u benchunit.Unit) string {
	return u.Prefix + "Bps"
}

func strof(x float64) string {
	return benchunit.NoOpScaler.Format(x)
}

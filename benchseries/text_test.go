// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/itzmeanjan/benchplot/benchfmt"
	"github.com/itzmeanjan/benchplot/benchunit"
)

func fields(text string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		rows = append(rows, strings.Fields(line))
	}
	return rows
}

func TestWriteText(t *testing.T) {
	d, err := FromText(csvReport, benchfmt.NewPatterns(benchfmt.Any), nil)
	if err != nil {
		t.Fatal(err)
	}
	var out strings.Builder
	if err := d.WriteText(&out); err != nil {
		t.Fatal(err)
	}

	// The smallest median, 61.36 MiB/s, sets the scale.
	want := [][]string{
		{"size", "pieces", "recode", "median", "(MiB/s)"},
		{"1.00", "MB", "4", "2", "5782.53"},
		{"1.00", "MB", "8", "0", "4608.00"},
		{"64.00", "MB", "256", "0", "61.36"},
	}
	if diff := cmp.Diff(want, fields(out.String())); diff != "" {
		t.Errorf("table differs (-want +got):\n%s\n%s", diff, out.String())
	}
}

func TestWriteTextNoRecode(t *testing.T) {
	d, err := FromText(readFixture(t, "encoder.txt"), benchfmt.NewPatterns(benchfmt.Encode), nil)
	if err != nil {
		t.Fatal(err)
	}
	var out strings.Builder
	if err := d.WriteText(&out); err != nil {
		t.Fatal(err)
	}
	rows := fields(out.String())
	if len(rows) != 49 {
		t.Fatalf("want header and 48 rows, got %d lines", len(rows))
	}
	if want := []string{"size", "pieces", "median", "(GiB/s)"}; !cmp.Equal(rows[0], want) {
		t.Errorf("want header %q, got %q", want, rows[0])
	}
}

func TestWriteTextEmpty(t *testing.T) {
	var out strings.Builder
	if err := NewBuilder(nil).Done().WriteText(&out); err != nil {
		t.Fatal(err)
	}
	if out.String() != "no results\n" {
		t.Errorf("got %q", out.String())
	}
}

func TestTable(t *testing.T) {
	b := NewBuilder(&BuilderOptions{Unit: benchunit.MiBPerSec})
	b.Add(&benchfmt.Result{
		Config:     benchfmt.Config{Size: "1.00 MB", Pieces: 4},
		Throughput: benchfmt.Throughput{gib(1), gib(1), gib(5.647), gib(1)},
	})
	tab, scaler := b.Done().Table()
	if scaler.Unit != benchunit.GiBPerSec || scaler.Prec != 3 {
		t.Errorf("want GiB/s with 3 digits, got %+v", scaler)
	}
	if got := tab.Columns(); !cmp.Equal(got, []string{"size", "pieces", "median (GiB/s)"}) {
		t.Errorf("got columns %q", got)
	}
	medians := tab.MustColumn("median (GiB/s)").([]float64)
	if len(medians) != 1 || medians[0] != 5.647 {
		t.Errorf("got medians %v", medians)
	}
}

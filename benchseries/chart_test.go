// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot/vg"

	"github.com/itzmeanjan/benchplot/benchfmt"
	"github.com/itzmeanjan/benchplot/benchunit"
)

// smallChart keeps test images cheap to render.
func smallChart(w benchfmt.Workload) *ChartOptions {
	opts := DefaultChartOptions(w, benchunit.GiBPerSec)
	opts.Width, opts.Height = 4*vg.Inch, 3*vg.Inch
	opts.DPI = 50
	return opts
}

func TestDefaultChartOptions(t *testing.T) {
	opts := DefaultChartOptions(benchfmt.Recode, benchunit.GiBPerSec)
	want := ChartOptions{
		Title:       "RLNC Recoder Median Throughput vs. Number of Split Pieces",
		XLabel:      "Number of Split Pieces (log scale)",
		YLabel:      "Median Throughput (GiB/s)",
		LegendTitle: "Total Data Size",
		Width:       12 * vg.Inch,
		Height:      7 * vg.Inch,
		DPI:         300,
	}
	if *opts != want {
		t.Errorf("want %+v, got %+v", want, *opts)
	}
}

func TestPlotRanges(t *testing.T) {
	d, err := FromText(readFixture(t, "decoder.txt"), benchfmt.NewPatterns(benchfmt.Decode), nil)
	if err != nil {
		t.Fatal(err)
	}
	pl, err := d.Plot(smallChart(benchfmt.Decode))
	if err != nil {
		t.Fatal(err)
	}
	if pl.X.Min != 4 || pl.X.Max != 512 {
		t.Errorf("want x range [4, 512], got [%v, %v]", pl.X.Min, pl.X.Max)
	}
	max := 0.0
	for _, m := range d.Medians() {
		if m > max {
			max = m
		}
	}
	if pl.Y.Min != 0 || pl.Y.Max != max*1.05 {
		t.Errorf("want y range [0, %v], got [%v, %v]", max*1.05, pl.Y.Min, pl.Y.Max)
	}
	if pl.Title.Text != benchfmt.Decode.Title() {
		t.Errorf("got title %q", pl.Title.Text)
	}
}

func TestPlotEmpty(t *testing.T) {
	d := NewBuilder(nil).Done()
	pl, err := d.Plot(smallChart(benchfmt.Any))
	if err != nil {
		t.Fatal(err)
	}
	if pl.X.Min != 4 || pl.X.Max != 512 || pl.Y.Min != 0 || pl.Y.Max != 1 {
		t.Errorf("got ranges x [%v, %v] y [%v, %v]", pl.X.Min, pl.X.Max, pl.Y.Min, pl.Y.Max)
	}

	// An empty dataset still draws.
	var buf bytes.Buffer
	if err := d.WriteChart(&buf, "png", smallChart(benchfmt.Any)); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Errorf("output is not a PNG")
	}
}

func TestChartFile(t *testing.T) {
	d, err := FromText(readFixture(t, "encoder.txt"), benchfmt.NewPatterns(benchfmt.Encode), nil)
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()

	test := func(name string, magic string) {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := d.Chart(path, smallChart(benchfmt.Encode)); err != nil {
			t.Fatal(err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Contains(data[:min(len(data), 512)], []byte(magic)) {
			t.Errorf("%s does not start like a %s file", name, magic)
		}
	}
	test("chart.png", "PNG")
	test("chart.svg", "<svg")
	test("chart.PDF", "%PDF")
	test("chart", "PNG")

	if err := d.Chart(filepath.Join(dir, "chart.bmp"), smallChart(benchfmt.Encode)); err == nil {
		t.Errorf("want error for unsupported format")
	}
	if _, err := os.Stat(filepath.Join(dir, "chart.bmp")); !os.IsNotExist(err) {
		t.Errorf("unsupported format left a file behind")
	}
}

func TestChartFileRemovedOnError(t *testing.T) {
	d := &Dataset{
		Unit: benchunit.GiBPerSec,
		Series: []*Series{{
			Label:   "1.00 MB",
			Size:    1 << 20,
			Samples: []Sample{{Pieces: 4, Median: math.NaN()}},
		}},
	}
	dir := t.TempDir()
	for _, name := range []string{"bad.png", "bad.svg"} {
		path := filepath.Join(dir, name)
		if err := d.Chart(path, smallChart(benchfmt.Encode)); err == nil {
			t.Errorf("%s: want error for a NaN median", name)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("%s: failed chart left a file behind", name)
		}
	}
}

func TestLines(t *testing.T) {
	l := Lines{ticks: pieceTicks()}
	got := l.Ticks(5, 100)
	var want = []float64{8, 16, 32, 64}
	if len(got) != len(want) {
		t.Fatalf("want %d ticks, got %v", len(want), got)
	}
	for i, tk := range got {
		if tk.Value != want[i] {
			t.Errorf("tick %d: want %v, got %v", i, want[i], tk.Value)
		}
	}
	if got[0].Label != "8" {
		t.Errorf("want label 8, got %q", got[0].Label)
	}
}

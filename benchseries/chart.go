// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/itzmeanjan/benchplot/benchfmt"
	"github.com/itzmeanjan/benchplot/benchunit"
)

// ChartOptions control the text and size of a chart.
type ChartOptions struct {
	Title       string
	XLabel      string
	YLabel      string
	LegendTitle string // Drawn above the legend entries if non-empty

	Width, Height vg.Length
	DPI           int // Raster formats only
}

// DefaultChartOptions returns the options for a chart of workload w
// with throughputs in unit.
func DefaultChartOptions(w benchfmt.Workload, unit benchunit.Unit) *ChartOptions {
	return &ChartOptions{
		Title:       w.Title(),
		XLabel:      w.XLabel(),
		YLabel:      fmt.Sprintf("Median Throughput (%s)", unit),
		LegendTitle: "Total Data Size",
		Width:       12 * vg.Inch,
		Height:      7 * vg.Inch,
		DPI:         defaultDPI,
	}
}

// PieceCounts are the x-axis ticks of every chart.
var PieceCounts = []float64{4, 8, 16, 32, 64, 128, 256, 512}

const (
	pointRad   = 3
	defaultDPI = 300
)

// glyphs are the point shapes of successive series.
var glyphs = []draw.GlyphDrawer{
	draw.CircleGlyph{},
	draw.BoxGlyph{},
	TriUp{},
	TriDown{},
	CrossGlyph{},
	draw.PyramidGlyph{},
	draw.RingGlyph{},
	draw.SquareGlyph{},
	draw.PlusGlyph{},
}

// Plot returns a line chart of d with one line per series. The x axis
// is the piece count on a base-2 log scale and the y axis is the
// median throughput starting from zero.
func (d *Dataset) Plot(opts *ChartOptions) (*plot.Plot, error) {
	pl := plot.New()

	pl.Title.Text = opts.Title
	pl.Title.TextStyle.Font.Size = vg.Points(16)
	pl.X.Label.Text = opts.XLabel
	pl.Y.Label.Text = opts.YLabel

	pl.X.Scale = plot.LogScale{}
	pl.X.Tick.Marker = Lines{ticks: pieceTicks()}

	grid := plotter.NewGrid()
	grid.Vertical.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	grid.Vertical.Width = vg.Points(0.5)
	grid.Horizontal.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	grid.Horizontal.Width = vg.Points(0.5)
	pl.Add(grid)

	pl.Legend.Top = true
	if opts.LegendTitle != "" {
		pl.Legend.Add(opts.LegendTitle)
	}

	for i, s := range d.Series {
		if len(s.Samples) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(s.Samples))
		for j, smp := range s.Samples {
			xys[j].X = float64(smp.Pieces)
			xys[j].Y = smp.Median
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("series %s: %w", s.Label, err)
		}
		clr := plotutil.Color(i)
		line.LineStyle.Color = clr
		line.LineStyle.Width = vg.Points(1.5)
		points.GlyphStyle.Color = clr
		points.GlyphStyle.Radius = vg.Points(pointRad)
		points.GlyphStyle.Shape = glyphs[i%len(glyphs)]

		pl.Add(line, points)
		pl.Legend.Add(s.Label+" data", line, points)
	}

	// A log scale cannot include zero, so always cover the ticks
	// even when there is no data.
	pl.X.Min = math.Min(pl.X.Min, PieceCounts[0])
	pl.X.Max = math.Max(pl.X.Max, PieceCounts[len(PieceCounts)-1])

	pl.Y.Min = 0
	pl.Y.Max = 1
	if ms := d.Medians(); len(ms) > 0 {
		if _, max := stats.Bounds(ms); max > 0 {
			pl.Y.Max = max * 1.05
		}
	}
	return pl, nil
}

// canvas returns a canvas for one of rasterFormats.
func canvas(format string, opts *ChartOptions) vg.CanvasWriterTo {
	dpi := opts.DPI
	if dpi <= 0 {
		dpi = defaultDPI
	}
	// Keep the image under 8190 pixels wide.
	initialWidth := float64(dpi) * float64(opts.Width/vg.Inch)
	if initialWidth > 8190 {
		dpi = int(math.Trunc(float64(dpi) * 8190 / initialWidth))
	}
	c := vgimg.NewWith(vgimg.UseWH(opts.Width, opts.Height), vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(color.White))
	switch format {
	case "png":
		return vgimg.PngCanvas{Canvas: c}
	case "jpg", "jpeg":
		return vgimg.JpegCanvas{Canvas: c}
	case "tif", "tiff":
		return vgimg.TiffCanvas{Canvas: c}
	}
	return nil
}

var (
	rasterFormats = map[string]bool{"png": true, "jpg": true, "jpeg": true, "tif": true, "tiff": true}
	vectorFormats = map[string]bool{"eps": true, "pdf": true, "svg": true, "tex": true}
)

// WriteChart draws d's chart to w in the given format, such as "png"
// or "svg".
func (d *Dataset) WriteChart(w io.Writer, format string, opts *ChartOptions) error {
	format = strings.ToLower(format)
	pl, err := d.Plot(opts)
	if err != nil {
		return err
	}

	var can io.WriterTo
	switch {
	case rasterFormats[format]:
		c := canvas(format, opts)
		pl.Draw(draw.New(c))
		can = c
	case vectorFormats[format]:
		if can, err = pl.WriterTo(opts.Width, opts.Height, format); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported chart format %q", format)
	}
	_, err = can.WriteTo(w)
	return err
}

// Chart draws d's chart to the file at path. The file extension
// selects the format; a path without one gets PNG. If drawing fails,
// the file is removed.
func (d *Dataset) Chart(path string, opts *ChartOptions) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		format = "png"
	}
	format = strings.ToLower(format)
	if !rasterFormats[format] && !vectorFormats[format] {
		return fmt.Errorf("%s: unsupported chart format %q", path, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := d.WriteChart(f, format, opts); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

func pieceTicks() []plot.Tick {
	ticks := make([]plot.Tick, len(PieceCounts))
	for i, n := range PieceCounts {
		ticks[i] = plot.Tick{Value: n, Label: fmt.Sprint(n)}
	}
	return ticks
}

// Lines is a tick marker with a fixed set of ticks.
type Lines struct {
	ticks []plot.Tick
}

// Ticks returns the ticks of u that fall within [min, max].
func (u Lines) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for _, t := range u.ticks {
		if t.Value >= min && t.Value <= max {
			ticks = append(ticks, t)
		}
	}
	return ticks
}

const cosπover4 = vg.Length(.707106781202420)

// CrossGlyph is a glyph that draws a heavy X.
type CrossGlyph struct{}

// DrawGlyph implements the Glyph interface.
func (CrossGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetLineStyle(draw.LineStyle{Color: sty.Color, Width: vg.Points(1)})
	r := sty.Radius * cosπover4
	p := make(vg.Path, 0, 2)
	p.Move(vg.Point{X: pt.X - r, Y: pt.Y - r})
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y + r})
	c.Stroke(p)
	p = p[:0]
	p.Move(vg.Point{X: pt.X - r, Y: pt.Y + r})
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y - r})
	c.Stroke(p)
}

// TriDown is a glyph that draws an outlined triangle pointing down.
type TriDown struct{}

// DrawGlyph implements the Glyph interface.
func (TriDown) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetLineStyle(draw.LineStyle{Color: sty.Color, Width: vg.Points(1)})
	r := sty.Radius * cosπover4
	p := make(vg.Path, 0, 4)
	p.Move(vg.Point{X: pt.X - r, Y: pt.Y + r})
	p.Line(vg.Point{X: pt.X, Y: pt.Y - r})
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y + r})
	p.Close()
	c.Stroke(p)
}

// TriUp is a glyph that draws an outlined triangle pointing up.
type TriUp struct{}

// DrawGlyph implements the Glyph interface.
func (TriUp) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetLineStyle(draw.LineStyle{Color: sty.Color, Width: vg.Points(1)})
	r := sty.Radius * cosπover4
	p := make(vg.Path, 0, 4)
	p.Move(vg.Point{X: pt.X - r, Y: pt.Y - r})
	p.Line(vg.Point{X: pt.X, Y: pt.Y + r})
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y - r})
	p.Close()
	c.Stroke(p)
}

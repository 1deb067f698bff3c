// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchseries groups benchmark results into one series of
// median throughputs per total data size, and charts and exports
// those series.
package benchseries

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/itzmeanjan/benchplot/benchfmt"
	"github.com/itzmeanjan/benchplot/benchunit"
)

// A Sample is the median throughput of one configuration.
type Sample struct {
	Pieces       int
	RecodePieces int     // 0 if the configuration does not recode
	Median       float64 // In the Dataset's Unit
}

// A Series is the samples sharing a total data size, sorted by
// piece count.
type Series struct {
	Label   string  // Data size as the report prints it, such as "1.00 MB"
	Size    float64 // Data size in bytes, or +Inf if Label is not a size
	Samples []Sample
}

// A Dataset is a set of series, ordered by data size.
type Dataset struct {
	Unit   benchunit.Unit
	Series []*Series
}

// Len returns the number of series in d.
func (d *Dataset) Len() int {
	return len(d.Series)
}

// NumSamples returns the number of samples across all series.
func (d *Dataset) NumSamples() int {
	n := 0
	for _, s := range d.Series {
		n += len(s.Samples)
	}
	return n
}

// Empty reports whether d has no samples.
func (d *Dataset) Empty() bool {
	return d.NumSamples() == 0
}

// Lookup returns the series with the given label.
func (d *Dataset) Lookup(label string) (*Series, bool) {
	for _, s := range d.Series {
		if s.Label == label {
			return s, true
		}
	}
	return nil, false
}

// Medians returns every median in d, in series order.
func (d *Dataset) Medians() []float64 {
	var ms []float64
	for _, s := range d.Series {
		for _, smp := range s.Samples {
			ms = append(ms, smp.Median)
		}
	}
	return ms
}

// A Builder collects benchmark results into a Dataset.
type Builder struct {
	unit   benchunit.Unit
	series map[string]*Series
	seen   map[sampleKey]bool
	warn   func(format string, args ...interface{})
}

type sampleKey struct {
	label  string
	pieces int
}

type BuilderOptions struct {
	Unit benchunit.Unit // unit of Sample.Median; the zero Unit means GiB/s
	Warn func(format string, args ...interface{})
}

func DefaultBuilderOptions() *BuilderOptions {
	return &BuilderOptions{
		Unit: benchunit.GiBPerSec,
		Warn: func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format, args...)
		},
	}
}

// NewBuilder returns a Builder. If bo is nil, it uses
// DefaultBuilderOptions.
func NewBuilder(bo *BuilderOptions) *Builder {
	if bo == nil {
		bo = DefaultBuilderOptions()
	}
	unit := bo.Unit
	if unit == (benchunit.Unit{}) {
		unit = benchunit.GiBPerSec
	}
	warn := bo.Warn
	if warn == nil {
		warn = func(string, ...interface{}) {}
	}
	return &Builder{
		unit:   unit,
		series: make(map[string]*Series),
		seen:   make(map[sampleKey]bool),
		warn:   warn,
	}
}

// AddReader adds every result read by r.
func (b *Builder) AddReader(r *benchfmt.Reader) error {
	for r.Scan() {
		b.Add(r.Result())
	}
	return r.Err()
}

// Add adds the median throughput of result to the series for its
// data size. A piece count seen before in that series is kept and
// reported through the Warn option.
func (b *Builder) Add(result *benchfmt.Result) {
	cfg := result.Config
	s, ok := b.series[cfg.Size]
	if !ok {
		size, err := cfg.SizeBytes()
		if err != nil {
			b.warn("%s: %v\n", pos(result), err)
			size = math.Inf(1)
		}
		s = &Series{Label: cfg.Size, Size: size}
		b.series[cfg.Size] = s
	}

	key := sampleKey{cfg.Size, cfg.Pieces}
	if b.seen[key] {
		b.warn("%s: duplicate result for %s\n", pos(result), cfg)
	}
	b.seen[key] = true

	s.Samples = append(s.Samples, Sample{
		Pieces:       cfg.Pieces,
		RecodePieces: cfg.RecodePieces,
		Median:       result.Throughput.Median().In(b.unit),
	})
}

func pos(result *benchfmt.Result) string {
	fileName, line := result.Pos()
	if fileName == "" {
		return "<result>"
	}
	return fmt.Sprintf("%s:%d", fileName, line)
}

// Done returns a Dataset of everything added so far. Samples within
// each series are sorted by piece count, keeping the order they were
// added in for equal counts. Series are sorted by data size, then by
// label. The Builder may be used again after Done.
func (b *Builder) Done() *Dataset {
	d := &Dataset{Unit: b.unit}
	for _, s := range b.series {
		s2 := &Series{
			Label:   s.Label,
			Size:    s.Size,
			Samples: append([]Sample(nil), s.Samples...),
		}
		sort.SliceStable(s2.Samples, func(i, j int) bool {
			return s2.Samples[i].Pieces < s2.Samples[j].Pieces
		})
		d.Series = append(d.Series, s2)
	}
	sort.Slice(d.Series, func(i, j int) bool {
		a, b := d.Series[i], d.Series[j]
		if a.Size != b.Size {
			return a.Size < b.Size
		}
		return a.Label < b.Label
	})
	return d
}

// Read builds a Dataset from every result read by r.
func Read(r *benchfmt.Reader, bo *BuilderOptions) (*Dataset, error) {
	b := NewBuilder(bo)
	if err := b.AddReader(r); err != nil {
		return nil, err
	}
	return b.Done(), nil
}

// FromText builds a Dataset from the report text, recognizing lines
// with m. It returns benchfmt.ErrNoInput if text is empty.
func FromText(text string, m benchfmt.Matcher, bo *BuilderOptions) (*Dataset, error) {
	if text == "" {
		return nil, benchfmt.ErrNoInput
	}
	return Read(benchfmt.NewReader(strings.NewReader(text), "<report>", m), bo)
}

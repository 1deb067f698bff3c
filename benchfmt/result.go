// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchfmt reads the box-drawn console tables that divan-style
// benchmark harnesses print for RLNC encode, decode, and recode
// workloads.
//
// Such a report interleaves decoration, metadata, and data. Each
// measured configuration appears as a header line, such as
//
//	├─ 1.00 MB data split into 4 pieces     166.8 µs │ 533.5 µs │ 172.9 µs │ 179 µs
//
// immediately followed by a row of four throughputs:
//
//	│                                       5.852 GiB/s │ 1.83 GiB/s │ 5.647 GiB/s │ 5.454 GiB/s
//
// The Reader pairs these lines up and yields one Result per pair.
// Everything else in the report is skipped.
//
// This package is designed to be used with the higher-level packages
// benchunit and benchseries.
package benchfmt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/itzmeanjan/benchplot/benchunit"
)

// A Result is a single measured configuration and its throughputs.
type Result struct {
	Config     Config
	Throughput Throughput

	// fileName and line record where the configuration header was
	// read from.
	fileName string
	line     int
}

// A Config identifies one measured configuration.
type Config struct {
	// Size is the total data size exactly as the report prints it,
	// such as "1.00 MB". It is a display and grouping key only.
	Size string

	// Pieces is the number of pieces the data is split into.
	Pieces int

	// RecodePieces is the number of pieces recoded, or 0 if the
	// configuration does not recode.
	RecodePieces int
}

// String returns the configuration as a report header prints it.
func (c Config) String() string {
	s := fmt.Sprintf("%s data split into %d pieces", c.Size, c.Pieces)
	if c.RecodePieces > 0 {
		s += fmt.Sprintf(", recoding with %d pieces", c.RecodePieces)
	}
	return s
}

// SizeBytes returns the total data size in bytes.
func (c Config) SizeBytes() (float64, error) {
	return ParseSize(c.Size)
}

var sizeFactors = []struct {
	suffix string
	factor float64
}{
	{"KB", 1 << 10},
	{"MB", 1 << 20},
	{"GB", 1 << 30},
}

// ParseSize parses a data size such as "1.00 MB" into bytes. Reports
// print these sizes with decimal-looking suffixes, but the harness
// computes them in powers of 1024.
func ParseSize(size string) (float64, error) {
	s := strings.TrimSpace(size)
	for _, f := range sizeFactors {
		if num, ok := strings.CutSuffix(s, f.suffix); ok {
			v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
			if err != nil || v < 0 {
				break
			}
			return v * f.factor, nil
		}
	}
	return 0, fmt.Errorf("bad data size %q", size)
}

// A Value is a single throughput measurement.
type Value struct {
	Value float64
	Unit  benchunit.Unit
}

// In returns v expressed in unit u.
func (v Value) In(u benchunit.Unit) float64 {
	return benchunit.Convert(v.Value, v.Unit, u)
}

func (v Value) String() string {
	return strconv.FormatFloat(v.Value, 'f', -1, 64) + " " + v.Unit.String()
}

// Indexes of the columns of a Throughput.
const (
	Fastest = iota
	Slowest
	Median
	Mean
)

// ColumnNames gives the name of each column of a Throughput.
var ColumnNames = [...]string{"fastest", "slowest", "median", "mean"}

// A Throughput is a row of four throughput columns, in the order
// fastest, slowest, median, mean. Columns may use different units.
type Throughput [4]Value

// Median returns the median column.
func (t Throughput) Median() Value {
	return t[Median]
}

// Pos returns the file name and line number of the configuration
// header of a Result that was read by a Reader. For Results that
// were not read from a file, it returns "", 0.
func (r *Result) Pos() (fileName string, line int) {
	return r.fileName, r.line
}

// Clone makes a copy of Result that shares no state with r.
func (r *Result) Clone() *Result {
	r2 := *r
	return &r2
}

// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/itzmeanjan/benchplot/benchunit"
)

// A Matcher recognizes the two kinds of line a Reader cares about.
//
// Lines that do not match are the normal case in a decorated report.
// Neither method reports why a line did not match.
type Matcher interface {
	// MatchConfig recognizes a configuration header.
	MatchConfig(line []byte) (Config, bool)

	// MatchThroughput recognizes the row of four throughputs that
	// follows a configuration header.
	MatchThroughput(line []byte) (Throughput, bool)
}

// A Workload selects which configuration headers a Patterns accepts.
type Workload int

const (
	// Any accepts every configuration header.
	Any Workload = iota
	// Encode accepts headers without a recoding clause.
	Encode
	// Decode accepts headers without a recoding clause.
	Decode
	// Recode accepts only headers with a recoding clause.
	Recode
)

var workloadNames = [...]string{"any", "encode", "decode", "recode"}

// workloadRoles names the component each workload benchmarks.
var workloadRoles = [...]string{"", "encoder", "decoder", "recoder"}

func (w Workload) String() string {
	if w < 0 || int(w) >= len(workloadNames) {
		return fmt.Sprintf("Workload(%d)", int(w))
	}
	return workloadNames[w]
}

// ParseWorkload parses a workload name as returned by Workload.String.
func ParseWorkload(name string) (Workload, error) {
	for i, n := range workloadNames {
		if n == name {
			return Workload(i), nil
		}
	}
	return 0, fmt.Errorf("unknown workload %q (want any, encode, decode, or recode)", name)
}

// Title returns the chart title for w.
func (w Workload) Title() string {
	switch w {
	case Encode:
		return "RLNC Encoder Median Throughput vs. Number of Pieces"
	case Decode:
		return "RLNC Decoder Median Throughput vs. Number of Pieces"
	case Recode:
		return "RLNC Recoder Median Throughput vs. Number of Split Pieces"
	}
	return "RLNC Median Throughput vs. Number of Pieces"
}

// XLabel returns the x-axis label for w.
func (w Workload) XLabel() string {
	if w == Recode {
		return "Number of Split Pieces (log scale)"
	}
	return "Number of Pieces (log scale)"
}

// DefaultOutput returns the chart file name used when none is given.
func (w Workload) DefaultOutput() string {
	if w < Encode || w > Recode {
		return "rlnc_median_throughput.png"
	}
	return "rlnc_" + workloadRoles[w] + "_median_throughput.png"
}

var (
	configRE = regexp.MustCompile(`(\d+(?:\.\d+)?\s*(?:KB|MB|GB))\s+data\s+split(?:ted)?\s+into\s+(\d+)\s+pieces(?:,\s*recoding\s+with\s+(\d+)\s+pieces)?`)

	rateRE       = `(\d+(?:\.\d+)?)\s+([A-Za-z]*B/s)`
	columnSepRE  = `\s*[│|]\s*`
	throughputRE = regexp.MustCompile(rateRE + columnSepRE + rateRE + columnSepRE + rateRE + columnSepRE + rateRE)
)

// Patterns is the regular expression Matcher for RLNC benchmark
// reports.
type Patterns struct {
	workload Workload
}

// NewPatterns returns a Matcher for reports of workload w.
func NewPatterns(w Workload) *Patterns {
	return &Patterns{w}
}

// Workload returns the workload p was created for.
func (p *Patterns) Workload() Workload {
	return p.workload
}

// MatchConfig recognizes a header such as
//
//	1.00 MB data split into 4 pieces, recoding with 2 pieces
//
// anywhere in line. Piece counts must be positive.
func (p *Patterns) MatchConfig(line []byte) (Config, bool) {
	m := configRE.FindSubmatch(line)
	if m == nil {
		return Config{}, false
	}
	recoding := m[3] != nil
	switch p.workload {
	case Encode, Decode:
		if recoding {
			return Config{}, false
		}
	case Recode:
		if !recoding {
			return Config{}, false
		}
	}

	cfg := Config{Size: string(m[1])}
	var ok bool
	if cfg.Pieces, ok = positive(m[2]); !ok {
		return Config{}, false
	}
	if recoding {
		if cfg.RecodePieces, ok = positive(m[3]); !ok {
			return Config{}, false
		}
	}
	return cfg, true
}

// MatchThroughput recognizes four rates separated by column
// delimiters, such as
//
//	62.65 MiB/s │ 53 MiB/s │ 61.36 MiB/s │ 61.04 MiB/s
//
// Every rate must have a known byte-rate unit. If the leftmost four
// rates include an unknown unit, matching resumes after the first of
// them.
func (p *Patterns) MatchThroughput(line []byte) (Throughput, bool) {
	for {
		m := throughputRE.FindSubmatchIndex(line)
		if m == nil {
			return Throughput{}, false
		}
		if t, ok := throughput(line, m); ok {
			return t, true
		}
		line = line[m[3]:]
	}
}

// throughput converts the submatch indexes m of throughputRE in line.
func throughput(line []byte, m []int) (Throughput, bool) {
	var t Throughput
	for i := range t {
		num, unit := m[2+4*i:4+4*i], m[4+4*i:6+4*i]
		v, err := strconv.ParseFloat(string(line[num[0]:num[1]]), 64)
		if err != nil {
			return Throughput{}, false
		}
		u, err := benchunit.ParseUnit(string(line[unit[0]:unit[1]]))
		if err != nil {
			return Throughput{}, false
		}
		t[i] = Value{v, u}
	}
	return t, true
}

func positive(b []byte) (int, bool) {
	n, err := strconv.Atoi(string(b))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

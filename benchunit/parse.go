// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit parses and converts the byte-rate units that
// benchmark reports use for throughput, and formats numbers in those
// units.
//
// All supported units are binary: each is a power of 1024 bytes per
// second, named with an International Electrotechnical Commission
// (IEC) prefix such as "Ki" or "Gi".
package benchunit

import (
	"fmt"
	"strings"
	"sync"
	"unicode"
)

// A Unit is a binary-prefixed byte rate, such as "MiB/s".
//
// Units are comparable with ==.
type Unit struct {
	Prefix string  // IEC prefix: "", "Ki", "Mi", "Gi", or "Ti"
	Factor float64 // Bytes per second in one of this Unit
}

var (
	BytesPerSec = Unit{"", 1}
	KiBPerSec   = Unit{"Ki", 1 << 10}
	MiBPerSec   = Unit{"Mi", 1 << 20}
	GiBPerSec   = Unit{"Gi", 1 << 30}
	TiBPerSec   = Unit{"Ti", 1 << 40}
)

// Units lists the supported units from smallest to largest.
var Units = []Unit{BytesPerSec, KiBPerSec, MiBPerSec, GiBPerSec, TiBPerSec}

// String returns the unit as reports print it, such as "GiB/s".
func (u Unit) String() string {
	return u.Prefix + "B/s"
}

// A UnitError records a unit string that could not be parsed.
type UnitError struct {
	Unit string
	Msg  string
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("unit %q: %s", e.Unit, e.Msg)
}

var unitCache sync.Map // unit string -> Unit

// ParseUnit parses a byte rate such as "GiB/s" or "MiB/sec".
// The numerator must be a single byte quantity with an optional IEC
// prefix and the denominator must be seconds.
func ParseUnit(unit string) (Unit, error) {
	if u, ok := unitCache.Load(unit); ok {
		return u.(Unit), nil
	}
	u, err := parseUnit(unit)
	if err != nil {
		return Unit{}, err
	}
	unitCache.Store(unit, u)
	return u, nil
}

// MustParseUnit is like ParseUnit but panics if unit cannot be parsed.
func MustParseUnit(unit string) Unit {
	u, err := ParseUnit(unit)
	if err != nil {
		panic(err)
	}
	return u
}

func parseUnit(unit string) (Unit, error) {
	var num, den string
	p := newParser(unit)
	for p.next() {
		dst := &num
		if p.denom {
			dst = &den
		}
		if *dst != "" {
			return Unit{}, &UnitError{unit, "compound units are not byte rates"}
		}
		*dst = p.tok
	}
	if num == "" {
		return Unit{}, &UnitError{unit, "missing numerator"}
	}
	if den != "s" && den != "sec" {
		return Unit{}, &UnitError{unit, "not a per-second rate"}
	}
	prefix, ok := strings.CutSuffix(num, "B")
	if !ok {
		return Unit{}, &UnitError{unit, "numerator is not bytes"}
	}
	for _, u := range Units {
		if u.Prefix == prefix {
			return u, nil
		}
	}
	return Unit{}, &UnitError{unit, fmt.Sprintf("unknown prefix %q", prefix)}
}

// parser splits a unit into tokens. "/" moves the following tokens
// into the denominator and "*" moves them back into the numerator.
type parser struct {
	rest  string // unparsed unit
	tok   string // current token
	denom bool   // tok is in the denominator
}

func newParser(unit string) *parser {
	return &parser{rest: unit}
}

func isSep(r rune) bool {
	return r == '*' || r == '/' || r == '-' || unicode.IsSpace(r)
}

func (p *parser) next() bool {
	// Skip separators, tracking which side of the fraction we're on.
	start := strings.IndexFunc(p.rest, func(r rune) bool {
		switch r {
		case '*':
			p.denom = false
		case '/':
			p.denom = true
		}
		return !isSep(r)
	})
	if start < 0 {
		p.rest = ""
		return false
	}
	p.rest = p.rest[start:]

	end := strings.IndexFunc(p.rest, isSep)
	if end < 0 {
		end = len(p.rest)
	}
	p.tok, p.rest = p.rest[:end], p.rest[end:]
	return true
}

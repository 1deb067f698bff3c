// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// A Reader reads RLNC benchmark reports.
//
// Its API is modeled on bufio.Scanner. A Reader retains ownership of
// the Result it returns; a caller should copy anything it needs to
// retain.
//
// To construct a new Reader, either call NewReader, or call Reset on
// a Reader that has a Matcher.
//
// A Reader is a two-state machine. While scanning, it tests each line
// against Matcher.MatchConfig. After a match, it tests exactly the
// next line against Matcher.MatchThroughput and then goes back to
// scanning. The line after a header is consumed either way, so a
// header directly followed by another header produces nothing.
type Reader struct {
	s   *bufio.Scanner
	m   Matcher
	err error // current I/O error

	fileName string
	line     int

	// pending is the configuration header awaiting its throughput
	// row, if awaiting is set. pendingLine is its line number.
	pending     Config
	pendingLine int
	awaiting    bool

	dropped int
	result  Result

	// skipping is set while discarding the rest of an overlong line.
	skipping bool
}

// maxLineLen is the longest line a Reader matches. A longer line is
// read as an empty line, so it never matches.
const maxLineLen = bufio.MaxScanTokenSize

// NewReader constructs a reader to parse a benchmark report from r
// using m to recognize lines. fileName is used in error messages and
// Result positions; it is purely diagnostic.
func NewReader(r io.Reader, fileName string, m Matcher) *Reader {
	reader := &Reader{m: m}
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input.
// It keeps the Matcher.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	if r.m == nil {
		panic("benchfmt: Reader has no Matcher")
	}
	r.s = bufio.NewScanner(ior)
	r.s.Buffer(nil, 2*maxLineLen)
	r.s.Split(r.splitLines)
	r.skipping = false
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.err = nil
	r.fileName = fileName
	r.line = 0
	r.pending = Config{}
	r.pendingLine = 0
	r.awaiting = false
	r.dropped = 0
	r.result = Result{}
}

// Scan advances the reader to the next result and reports whether a
// result was read.
// The caller should use the Result method to get the result.
// If Scan reaches EOF or an I/O error occurs, it returns false,
// in which case the caller should use the Err method to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}

	for r.s.Scan() {
		r.line++
		// Reports captured on Windows end lines in CRLF.
		line := bytes.TrimSuffix(r.s.Bytes(), []byte("\r"))

		if !r.awaiting {
			if cfg, ok := r.m.MatchConfig(line); ok {
				r.pending, r.pendingLine, r.awaiting = cfg, r.line, true
			}
			continue
		}

		r.awaiting = false
		t, ok := r.m.MatchThroughput(line)
		if !ok {
			r.dropped++
			continue
		}
		r.result = Result{
			Config:     r.pending,
			Throughput: t,
			fileName:   r.fileName,
			line:       r.pendingLine,
		}
		return true
	}

	// A header on the last line has no throughput row.
	if r.awaiting {
		r.awaiting = false
		r.dropped++
	}

	// We hit EOF. Check for IO errors.
	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line+1, err)
	}
	return false
}

// splitLines is bufio.ScanLines, except that a line reaching
// maxLineLen bytes becomes an empty token and the rest of it is
// skipped.
func (r *Reader) splitLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if r.skipping {
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			r.skipping = false
			return i + 1, nil, nil
		}
		if atEOF {
			r.skipping = false
		}
		return len(data), nil, nil
	}
	advance, token, err = bufio.ScanLines(data, atEOF)
	if advance == 0 && err == nil && len(data) >= maxLineLen {
		r.skipping = true
		return len(data), []byte{}, nil
	}
	return advance, token, err
}

// Result returns the Result read by the last call to Scan.
//
// The returned Result is overwritten by the next call to Scan.
// Use Result.Clone to keep it.
func (r *Reader) Result() *Result {
	return &r.result
}

// Err returns the first non-EOF I/O error that was encountered by the
// Reader.
func (r *Reader) Err() error {
	return r.err
}

// Dropped returns the number of configuration headers read so far
// that were not followed by a throughput row.
func (r *Reader) Dropped() int {
	return r.dropped
}

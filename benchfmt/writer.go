// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"bytes"
	"io"
)

// A Writer writes Results as a minimal benchmark report: each Result
// becomes a configuration header followed by its throughput row,
// without any timing columns or decoration. A Reader reads the
// output back into the same Results.
type Writer struct {
	w   io.Writer
	buf bytes.Buffer
}

// NewWriter returns a writer that writes benchmark results to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes res to w. Throughputs keep their original units.
func (w *Writer) Write(res *Result) error {
	w.buf.WriteString(res.Config.String())
	w.buf.WriteByte('\n')
	for i, val := range res.Throughput {
		if i > 0 {
			w.buf.WriteString(" │ ")
		}
		w.buf.WriteString(val.String())
	}
	w.buf.WriteByte('\n')

	// Flush the buffer out to the io.Writer. Write to the buffer
	// can't fail, so we only have to check if this fails.
	_, err := w.w.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}

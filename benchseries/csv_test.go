// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/itzmeanjan/benchplot/benchfmt"
)

const csvReport = `64.00 MB data split into 256 pieces
62.65 MiB/s | 53 MiB/s | 61.36 MiB/s | 61.04 MiB/s
1.00 MB data split into 8 pieces
1 GiB/s | 2 GiB/s | 4.5 GiB/s | 3 GiB/s
1.00 MB data split into 4 pieces, recoding with 2 pieces
1 GiB/s | 2 GiB/s | 5.647 GiB/s | 3 GiB/s
`

func TestToCsv(t *testing.T) {
	d, err := FromText(csvReport, benchfmt.NewPatterns(benchfmt.Any), nil)
	if err != nil {
		t.Fatal(err)
	}

	test := func(options CsvOptions, want string) {
		t.Helper()
		var out strings.Builder
		if err := d.ToCsv(&out, options); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, out.String()); diff != "" {
			t.Errorf("CSV differs (-want +got):\n%s", diff)
		}
	}

	test(CSV_PLAIN, `size,pieces,recode_pieces,median_GiBps
1.00 MB,4,2,5.647
1.00 MB,8,,4.5
64.00 MB,256,,0.059921875
`)
	test(CSV_WIDE, `pieces,1.00 MB (GiB/s),64.00 MB (GiB/s)
4,5.647,
8,4.5,
256,,0.059921875
`)
}

func TestToCsvEmpty(t *testing.T) {
	var out strings.Builder
	if err := NewBuilder(nil).Done().ToCsv(&out, CSV_PLAIN); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "size,pieces,recode_pieces,median_GiBps\n"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

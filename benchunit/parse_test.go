// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"errors"
	"testing"
)

func TestParseUnit(t *testing.T) {
	test := func(unit string, want Unit) {
		t.Helper()
		got, err := ParseUnit(unit)
		if err != nil {
			t.Errorf("for %s, unexpected error %v", unit, err)
			return
		}
		if got != want {
			t.Errorf("for %s, want %s, got %s", unit, want, got)
		}
	}
	test("B/s", BytesPerSec)
	test("B/sec", BytesPerSec)
	test("KiB/s", KiBPerSec)
	test("MiB/s", MiBPerSec)
	test("GiB/s", GiBPerSec)
	test("TiB/s", TiBPerSec)
	test("GiB / s", GiBPerSec)
	// Cached the second time around.
	test("GiB/s", GiBPerSec)
}

func TestParseUnitError(t *testing.T) {
	test := func(unit string) {
		t.Helper()
		_, err := ParseUnit(unit)
		var ue *UnitError
		if !errors.As(err, &ue) {
			t.Errorf("for %s, want *UnitError, got %v", unit, err)
			return
		}
		if ue.Unit != unit {
			t.Errorf("for %s, error names unit %s", unit, ue.Unit)
		}
	}
	test("")
	test("GiB")
	test("GB/s")
	test("MB/s")
	test("Gib/s")
	test("ns/op")
	test("GiB/op")
	test("GiB*GiB/s")
	test("GiB/s/s")
	test("/s")
}

func TestMustParseUnit(t *testing.T) {
	if got := MustParseUnit("MiB/s"); got != MiBPerSec {
		t.Errorf("got %s, want MiB/s", got)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("want panic for bad unit")
		}
	}()
	MustParseUnit("furlongs/fortnight")
}

func TestUnitString(t *testing.T) {
	for _, u := range Units {
		if got, err := ParseUnit(u.String()); err != nil || got != u {
			t.Errorf("%s does not round-trip: got %s, %v", u, got, err)
		}
	}
}

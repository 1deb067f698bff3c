// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

// Tidy converts value, measured in unit, to bytes per second.
func Tidy(value float64, unit Unit) float64 {
	return value * unit.Factor
}

// Convert re-expresses value, measured in from, in unit to.
//
// Every factor is a power of two, so conversion is exact unless it
// overflows or underflows. For example, 61.36 MiB/s converts to
// exactly 61.36/1024 GiB/s.
func Convert(value float64, from, to Unit) float64 {
	if from == to {
		return value
	}
	return Tidy(value, from) / to.Factor
}

// Normalize parses unit and converts value from it to canonical.
func Normalize(value float64, unit string, canonical Unit) (float64, error) {
	u, err := ParseUnit(unit)
	if err != nil {
		return 0, err
	}
	return Convert(value, u, canonical), nil
}

// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"fmt"
	"math"
	"strconv"
)

// A Scaler represents a scaling factor for a byte rate and the
// precision to print it with.
type Scaler struct {
	Prec int  // Digits after the decimal point
	Unit Unit // Unit values are expressed in once scaled
}

// Format formats val, given in bytes per second, in s.Unit without
// the unit suffix. For example, if s.Unit is GiBPerSec and s.Prec is
// 3, Format(5.647*(1<<30)) returns "5.647".
func (s Scaler) Format(val float64) string {
	return strconv.FormatFloat(val/s.Unit.Factor, 'f', s.Prec, 64)
}

// FormatRate is like Format but appends a space and the unit,
// as in "5.647 GiB/s".
func (s Scaler) FormatRate(val float64) string {
	return s.Format(val) + " " + s.Unit.String()
}

// NoOpScaler prints values with the smallest number of digits
// necessary to represent them exactly and no scaling. It is meant
// for output consumed by other programs, such as CSV.
var NoOpScaler = Scaler{-1, BytesPerSec}

type factor struct {
	unit Unit
	// Smallest values that print as 100.0, 10.00 and 1.000 of unit.
	// Scaling by a power of two is exact, so these round exactly
	// like the printed forms do.
	t100, t10, t1 float64
}

// factors runs from the largest unit to the smallest.
var factors = mkFactors()

// subUnit[i] is the smallest value below 1 B/s printed with i+4
// digits after the decimal point.
var subUnit = mkSubUnit()

func mkFactors() []factor {
	fs := make([]factor, 0, len(Units))
	for i := len(Units) - 1; i >= 0; i-- {
		u := Units[i]
		fs = append(fs, factor{u, 99.995 * u.Factor, 9.9995 * u.Factor, .99995 * u.Factor})
	}
	return fs
}

func mkSubUnit() []float64 {
	var ts []float64
	// Stop at 10 digits after the decimal point.
	for exp := -2; exp >= -8; exp-- {
		t, _ := strconv.ParseFloat(fmt.Sprintf("9.9995e%d", exp), 64)
		ts = append(ts, t)
	}
	return ts
}

// Scale formats val, given in bytes per second, with at least three
// significant digits in the largest unit that keeps it at or above 1.
// For example, Scale(823.9*(1<<20)) returns "823.9 MiB/s".
func Scale(val float64) string {
	return CommonScale([]float64{val}).FormatRate(val)
}

// CommonScale returns a Scaler that shows every value in vals, given
// in bytes per second, with at least three significant digits.
func CommonScale(vals []float64) Scaler {
	// The non-zero value closest to zero decides the scale.
	var min float64
	for _, v := range vals {
		v = math.Abs(v)
		if v != 0 && (min == 0 || v < min) {
			min = v
		}
	}
	if min == 0 {
		return Scaler{3, BytesPerSec}
	}

	for _, f := range factors {
		switch {
		case min >= f.t100:
			return Scaler{1, f.unit}
		case min >= f.t10:
			return Scaler{2, f.unit}
		case min >= f.t1:
			return Scaler{3, f.unit}
		}
	}

	// Less than one byte per second. Add digits instead.
	for i, t := range subUnit {
		if min >= t || i == len(subUnit)-1 {
			return Scaler{i + 4, BytesPerSec}
		}
	}
	panic("not reachable")
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package label

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// A Formatter turns tick values into label text. interval is the
// spacing between adjacent values, or 0 if it is not uniform.
type Formatter interface {
	Format(values []float64, interval float64) []string
}

// Auto picks fixed-point notation with just enough fraction digits to
// distinguish values interval apart, switching to exponent notation
// for very large or very small magnitudes.
type Auto struct{}

func (Auto) Format(values []float64, interval float64) []string {
	p := choosePrecision(values, interval)
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.FormatFloat(p.clean(v), p.fmt, p.prec, 64)
	}
	return out
}

// Compact formats each value in the shortest form that survives
// rounding to 12 significant digits. It suits log axes, whose ticks
// have no common interval.
type Compact struct{}

func (Compact) Format(values []float64, interval float64) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.FormatFloat(round12(v), 'g', -1, 64)
	}
	return out
}

// Printf formats each value with a fmt verb, such as "%.1f°".
type Printf string

func (p Printf) Format(values []float64, interval float64) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprintf(string(p), v)
	}
	return out
}

// Grouped formats values with the digit grouping and decimal
// separator of a language, for example "12,500.5" in English or
// "12.500,5" in German. Digits fixes the fraction digits; a negative
// Digits derives them from the interval like Auto.
type Grouped struct {
	Tag    language.Tag
	Digits int
}

func (g Grouped) Format(values []float64, interval float64) []string {
	digits := g.Digits
	p := choosePrecision(values, interval)
	if digits < 0 {
		digits = p.fraction
	}
	pr := message.NewPrinter(g.Tag)
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = pr.Sprint(number.Decimal(p.clean(v),
			number.MinFractionDigits(digits), number.MaxFractionDigits(digits)))
	}
	return out
}

type precision struct {
	fmt      byte
	prec     int
	fraction int
	zero     float64
}

// clean snaps values that are round-off away from zero to zero, so
// they do not print as "-0" or "1e-17".
func (p precision) clean(v float64) float64 {
	if math.Abs(v) <= p.zero {
		return 0
	}
	return v
}

func choosePrecision(values []float64, interval float64) precision {
	maxAbs := 0.0
	for _, v := range values {
		if !math.IsInf(v, 0) && !math.IsNaN(v) {
			maxAbs = math.Max(maxAbs, math.Abs(v))
		}
	}
	if !(interval > 0) || math.IsInf(interval, 0) {
		return precision{fmt: 'g', prec: -1}
	}

	// Write interval as m*10^mag with 1 <= m < 10; extra is the
	// number of fraction digits m needs.
	mag := int(math.Floor(math.Log10(interval)))
	m := interval / math.Pow10(mag)
	if m >= 10-1e-9 {
		m, mag = m/10, mag+1
	} else if m < 1 {
		m, mag = m*10, mag-1
	}
	extra := 0
	for ; extra < 15; extra++ {
		x := m * math.Pow10(extra)
		if math.Abs(x-math.Round(x)) <= 1e-6*x {
			break
		}
	}
	frac := extra - mag
	if frac < 0 {
		frac = 0
	}
	p := precision{fmt: 'f', prec: frac, fraction: frac, zero: interval * 1e-9}

	if maxAbs >= 1e7 || maxAbs > 0 && maxAbs < 1e-4 {
		sig := int(math.Floor(math.Log10(maxAbs))) - mag + extra
		if sig < 0 {
			sig = 0
		}
		p.fmt, p.prec = 'e', sig
	}
	return p
}

func round12(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', 12, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"math"

	mscale "github.com/aclements/go-moremath/scale"

	"github.com/aclements/go-axis/scale"
)

// maxTicks bounds the number of values TicksByInterval produces, so a
// tiny interval cannot exhaust memory.
const maxTicks = 1000

// Linear places ticks at multiples of 1, 2 or 5 times a power of ten.
type Linear struct{}

// mantissas are the step multipliers within one decade of levels.
var mantissas = [3]int64{1, 2, 5}

// minorsOf is the default number of minor ticks per step, by
// mantissa: 1 splits into fifths, 2 into halves of 1, 5 into ones.
var minorsOf = [3]int{4, 3, 4}

// level describes tick level l: a step of mantissas[l mod 3] times
// 10^(l div 3). Higher levels have wider steps.
type level int

func (l level) parts() (m int64, exp int) {
	i := int(l) % 3
	exp = int(l) / 3
	if i < 0 {
		i += 3
		exp--
	}
	return mantissas[i], exp
}

func (l level) step() float64 {
	m, exp := l.parts()
	return float64(m) * math.Pow10(exp)
}

// at returns tick k of level l, computed so that decimal steps are
// exact where possible.
func (l level) at(k float64) float64 {
	if k == 0 {
		// Avoid -0 from rounding the start index up.
		return 0
	}
	m, exp := l.parts()
	if exp < 0 {
		return k * float64(m) / math.Pow10(-exp)
	}
	return k * float64(m) * math.Pow10(exp)
}

// guessLevel returns a level whose step gives roughly n ticks over
// span.
func guessLevel(span float64, n int) int {
	return 3 * int(math.Floor(math.Log10(span/float64(n))))
}

// bounds returns the first and last tick indexes of level l in
// [lo, hi]. With outer, they are the indexes of the tightest ticks
// enclosing [lo, hi] instead.
func (l level) bounds(lo, hi float64, outer bool) (k0, k1 float64) {
	step := l.step()
	eps := 1e-9
	if outer {
		return math.Floor(lo/step + eps), math.Ceil(hi/step - eps)
	}
	return math.Ceil(lo/step - eps), math.Floor(hi/step + eps)
}

func (l level) count(lo, hi float64, outer bool) int {
	k0, k1 := l.bounds(lo, hi, outer)
	c := k1 - k0 + 1
	if !(c <= math.MaxInt32) {
		return math.MaxInt32
	}
	return int(c)
}

func (l level) ticks(lo, hi float64, outer bool) []float64 {
	k0, k1 := l.bounds(lo, hi, outer)
	var ts []float64
	for k := k0; k <= k1 && len(ts) < maxTicks; k++ {
		ts = append(ts, l.at(k))
	}
	return ts
}

// levelTicker adapts the levels over [lo, hi] to mscale.Ticker.
type levelTicker struct {
	lo, hi float64
	outer  bool
}

func (t levelTicker) CountTicks(l int) int {
	return level(l).count(t.lo, t.hi, t.outer)
}

func (t levelTicker) TicksAtLevel(l int) interface{} {
	return level(l).ticks(t.lo, t.hi, t.outer)
}

// findLevel returns the finest level with at most n ticks over s.
func findLevel(s scale.Range, n int, outer bool) (level, bool) {
	o := mscale.TickOptions{Max: n}
	l, ok := o.FindLevel(levelTicker{s.Start, s.End, outer}, guessLevel(s.Len(), n))
	return level(l), ok
}

func (Linear) Ticks(r scale.Range, n, minors int) Result {
	s := r.Sorted()
	if s.Len() == 0 || s.IsInf() || s.IsNaN() {
		return Result{Major: []float64{s.Start}}
	}
	if n < 2 {
		n = 2
	}
	l, ok := findLevel(s, n, false)
	if !ok {
		return Result{Major: []float64{s.Start, s.End}, Interval: s.Len()}
	}
	major := l.ticks(s.Start, s.End, false)
	if minors < 0 {
		m, _ := l.parts()
		minors = minorsOf[indexOf(m)]
	}
	return Result{Major: major, Minor: subdivide(s, major, l.step(), minors), Interval: l.step()}
}

func indexOf(m int64) int {
	for i, x := range mantissas {
		if x == m {
			return i
		}
	}
	return 0
}

func (Linear) TicksByInterval(r scale.Range, step, offset float64, minors int) Result {
	s := r.Sorted()
	if !(step > 0) || s.IsInf() || s.IsNaN() {
		return Result{}
	}
	eps := step * 1e-9
	k := math.Ceil((s.Start - offset - eps) / step)
	var major []float64
	for v := offset + k*step; v <= s.End+eps && len(major) < maxTicks; k++ {
		major = append(major, v)
		v = offset + (k+1)*step
	}
	if minors < 0 {
		minors = 0
	}
	return Result{Major: major, Minor: subdivide(s, major, step, minors), Interval: step}
}

func (Linear) Expand(r scale.Range, n int) scale.Range {
	s := r.Sorted()
	if s.Len() == 0 || s.IsInf() || s.IsNaN() {
		return r
	}
	if n < 2 {
		n = 2
	}
	l, ok := findLevel(s, n, true)
	if !ok {
		return r
	}
	k0, k1 := l.bounds(s.Start, s.End, true)
	return scale.Range{Start: l.at(k0), End: l.at(k1)}.Orient(r)
}

// interval returns the common spacing of major, or 0.
func interval(major []float64) float64 {
	if len(major) < 2 {
		return 0
	}
	return major[1] - major[0]
}

// subdivide returns the minor ticks splitting each step-wide major
// interval into minors+1 parts, including partial intervals at the
// ends of r.
func subdivide(r scale.Range, major []float64, step float64, minors int) []float64 {
	if minors <= 0 || len(major) == 0 || !(step > 0) {
		return nil
	}
	d := step / float64(minors+1)
	eps := d * 1e-9
	var minor []float64
	first := major[0] - step
	for i := 0; len(minor) < maxTicks*minors; i++ {
		base := first + float64(i)*step
		if base > r.End+eps {
			break
		}
		for j := 1; j <= minors; j++ {
			v := base + float64(j)*d
			if v >= r.Start-eps && v <= r.End+eps {
				minor = append(minor, v)
			}
		}
	}
	return minor
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"math"

	mscale "github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/vec"

	"github.com/aclements/go-axis/scale"
)

// Log places ticks at powers of ten, falling back to Linear when the
// range is not strictly positive or spans less than a decade. A
// non-negative minors count splits each decade step evenly in log
// space.
type Log struct{}

func (Log) scale(r scale.Range) (mscale.Log, bool) {
	s := r.Sorted()
	if !(s.Start > 0) || s.Len() == 0 || s.IsInf() {
		return mscale.Log{}, false
	}
	ls, err := mscale.NewLog(s.Start, s.End, 10)
	if err != nil {
		return mscale.Log{}, false
	}
	return ls, true
}

func (l Log) Ticks(r scale.Range, n, minors int) Result {
	ls, ok := l.scale(r)
	if !ok {
		return Linear{}.Ticks(r, n, minors)
	}
	if n < 2 {
		n = 2
	}
	major, minor := ls.Ticks(mscale.TickOptions{Max: n})
	if len(major) < 2 {
		return Linear{}.Ticks(r, n, minors)
	}
	if minors >= 0 {
		minor = logSubdivide(r.Sorted(), major, minors)
	}
	return Result{Major: major, Minor: minor}
}

// logSubdivide splits each interval between adjacent majors into
// minors+1 parts of equal width in log space. The partial intervals
// before the first and after the last major use the width of their
// neighbor.
func logSubdivide(r scale.Range, major []float64, minors int) []float64 {
	if minors <= 0 {
		return nil
	}
	lr := scale.Range{Start: math.Log10(r.Start), End: math.Log10(r.End)}
	lm := vec.Map(math.Log10, major)
	var minor []float64
	add := func(lo, width float64) {
		d := width / float64(minors+1)
		for j := 1; j <= minors; j++ {
			if v := lo + float64(j)*d; lr.Contains(v) {
				minor = append(minor, math.Pow(10, v))
			}
		}
	}
	last := len(lm) - 1
	add(lm[0]-(lm[1]-lm[0]), lm[1]-lm[0])
	for i := 0; i < last; i++ {
		add(lm[i], lm[i+1]-lm[i])
	}
	add(lm[last], lm[last]-lm[last-1])
	return minor
}

// TicksByInterval treats interval and offset as decades: the ticks
// are 10^(offset+k*interval).
func (l Log) TicksByInterval(r scale.Range, step, offset float64, minors int) Result {
	if _, ok := l.scale(r); !ok {
		return Linear{}.TicksByInterval(r, step, offset, minors)
	}
	lr := scale.Range{Start: math.Log10(r.Start), End: math.Log10(r.End)}
	res := Linear{}.TicksByInterval(lr, step, offset, minors)
	pow := func(xs []float64) {
		for i, x := range xs {
			xs[i] = math.Pow(10, x)
		}
	}
	pow(res.Major)
	pow(res.Minor)
	res.Interval = 0
	return res
}

func (l Log) Expand(r scale.Range, n int) scale.Range {
	ls, ok := l.scale(r)
	if !ok {
		return Linear{}.Expand(r, n)
	}
	if n < 2 {
		n = 2
	}
	ls.Nice(mscale.TickOptions{Max: n})
	return scale.Range{Start: ls.Min, End: ls.Max}.Orient(r)
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"math"
)

// A Range is an interval from Start to End. Ranges are not
// necessarily ordered: a Range with End < Start is inverted and
// denotes a flipped axis direction.
type Range struct {
	Start, End float64
}

// Empty is the result of intersecting disjoint ranges.
var Empty = Range{math.NaN(), math.NaN()}

// All covers the whole real line.
var All = Range{math.Inf(-1), math.Inf(1)}

func (r Range) String() string {
	return fmt.Sprintf("[%g,%g]", r.Start, r.End)
}

// Min returns the smaller end of r.
func (r Range) Min() float64 {
	return math.Min(r.Start, r.End)
}

// Max returns the larger end of r.
func (r Range) Max() float64 {
	return math.Max(r.Start, r.End)
}

// Span returns End - Start, which is negative for inverted ranges.
func (r Range) Span() float64 {
	return r.End - r.Start
}

// Len returns the absolute length of r.
func (r Range) Len() float64 {
	return math.Abs(r.End - r.Start)
}

// Center returns the midpoint of r. It avoids overflow for ranges
// with very large ends.
func (r Range) Center() float64 {
	return r.Start/2 + r.End/2
}

// Inverted reports whether End < Start.
func (r Range) Inverted() bool {
	return r.End < r.Start
}

// Sorted returns r with Start <= End.
func (r Range) Sorted() Range {
	if r.Inverted() {
		return Range{r.End, r.Start}
	}
	return r
}

// Orient returns r ordered the same direction as like.
func (r Range) Orient(like Range) Range {
	if r.Inverted() != like.Inverted() {
		return Range{r.End, r.Start}
	}
	return r
}

// IsNaN reports whether either end of r is NaN.
func (r Range) IsNaN() bool {
	return math.IsNaN(r.Start) || math.IsNaN(r.End)
}

// IsInf reports whether either end of r is infinite.
func (r Range) IsInf() bool {
	return math.IsInf(r.Start, 0) || math.IsInf(r.End, 0)
}

// Contains reports whether x lies within r, inclusive of both ends.
func (r Range) Contains(x float64) bool {
	return r.Min() <= x && x <= r.Max()
}

// ContainsRange reports whether o lies entirely within r.
func (r Range) ContainsRange(o Range) bool {
	return r.Contains(o.Start) && r.Contains(o.End)
}

// Intersect returns the intersection of r and o, oriented like r. If
// they are disjoint, it returns Empty, false. A single shared point is
// a valid zero-width intersection.
func (r Range) Intersect(o Range) (Range, bool) {
	lo := math.Max(r.Min(), o.Min())
	hi := math.Min(r.Max(), o.Max())
	if lo > hi || math.IsNaN(lo) || math.IsNaN(hi) {
		return Empty, false
	}
	return Range{lo, hi}.Orient(r), true
}

// Union returns the smallest range containing both r and o, oriented
// like r. A NaN range is treated as empty.
func (r Range) Union(o Range) Range {
	if r.IsNaN() {
		return o
	}
	if o.IsNaN() {
		return r
	}
	return Range{math.Min(r.Min(), o.Min()), math.Max(r.Max(), o.Max())}.Orient(r)
}

// Expand grows each end of r outward by frac/2 of its length, so the
// total growth is frac of the length. The direction of r is kept.
func (r Range) Expand(frac float64) Range {
	d := r.Span() * frac / 2
	return Range{r.Start - d, r.End + d}
}

// Recenter returns a range of the given signed span centered on c,
// oriented like r.
func (r Range) Recenter(c, span float64) Range {
	h := math.Abs(span) / 2
	return Range{c - h, c + h}.Orient(r)
}

// Clamp shifts r, keeping its length, so that it lies inside bound.
// If r is longer than bound, it returns bound oriented like r.
func (r Range) Clamp(bound Range) Range {
	s := r.Sorted()
	b := bound.Sorted()
	if s.Len() >= b.Len() {
		return b.Orient(r)
	}
	if s.Start < b.Start {
		s = Range{b.Start, b.Start + s.Len()}
	} else if s.End > b.End {
		s = Range{b.End - s.Len(), b.End}
	}
	return s.Orient(r)
}

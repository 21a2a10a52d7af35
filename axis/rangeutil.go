// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"math"

	"github.com/aclements/go-axis/scale"
)

// zeroSpan is the world span given to a zero-width range at 0, wide
// enough for labels with four significant digits.
const zeroSpan = 0.004

// virtualTransforms returns the transforms range arithmetic for a
// group is done in. If all ts share one offset and one shift, the
// offset is removed from each; otherwise ts is returned as is.
func virtualTransforms(ts []scale.Normal) []scale.Normal {
	out := make([]scale.Normal, len(ts))
	copy(out, ts)
	if len(ts) == 0 {
		return out
	}
	for _, t := range ts[1:] {
		if t.Offset() != ts[0].Offset() || t.Shift() != ts[0].Shift() {
			return out
		}
	}
	for i, t := range ts {
		out[i] = t.WithoutOffset()
	}
	return out
}

// boundary returns the intersection of the valid domains of ts in
// normalized space, in increasing order.
func boundary(ts []scale.Normal) (scale.Range, bool) {
	b := scale.All
	for _, t := range ts {
		var ok bool
		if b, ok = b.Intersect(t.Boundary()); !ok {
			return scale.Empty, false
		}
	}
	return b, true
}

// openEnds reports which ends of the world range r are infinite,
// meaning the caller asks for the nearest data there.
func openEnds(r scale.Range) [2]bool {
	return [2]bool{math.IsInf(r.Start, 0), math.IsInf(r.End, 0)}
}

// validateNormalRange intersects r with bound, keeping r's direction.
// The ends marked in open are first replaced by the matching end of
// the range returned by nearest. Other infinite ends come from finite
// world values outside the domain and are simply clipped. adjusted
// reports whether the intersection clipped r. ok is false if nothing
// is left.
func validateNormalRange(r, bound scale.Range, open [2]bool, nearest func() (scale.Range, bool)) (valid scale.Range, adjusted, ok bool) {
	if r.IsNaN() {
		return scale.Empty, false, false
	}
	if (open[0] || open[1]) && nearest != nil {
		d, ok := nearest()
		if !ok {
			return scale.Empty, false, false
		}
		if open[0] {
			r.Start = nearestEnd(r.Start, d)
		}
		if open[1] {
			r.End = nearestEnd(r.End, d)
		}
	}
	valid, ok = r.Intersect(bound)
	return valid, ok && valid != r, ok
}

func nearestEnd(x float64, d scale.Range) float64 {
	switch {
	case math.IsInf(x, -1):
		return d.Min()
	case math.IsInf(x, 1):
		return d.Max()
	}
	return x
}

// ensurePrecision widens r around its center, if necessary, so that
// the world values of every transform in ts keep scale.Precision
// relative resolution, then shifts it back inside bound. It reports
// whether r was changed. A zero-width range at world 0 on all-linear
// axes, where relative precision asks for nothing, gets a fixed span
// instead.
func ensurePrecision(r, bound scale.Range, ts []scale.Normal) (scale.Range, bool) {
	need := 0.0
	minScale := math.Inf(1)
	linear := true
	for _, t := range ts {
		need = math.Max(need, t.MinSpan(r, scale.Precision))
		minScale = math.Min(minScale, math.Abs(t.Scale()))
		linear = linear && t.Kind().Type == scale.TypeLinear
	}
	if linear && r.Len() == 0 && need == 0 && minScale > 0 && !math.IsInf(minScale, 0) {
		// A zero-width range at world 0 on linear axes.
		need = zeroSpan / minScale
	}
	if r.Len() >= need {
		return r, false
	}
	return r.Recenter(r.Center(), need).Clamp(bound), true
}

// ensureCircleSpan caps the span of r at one period of the circular
// transforms in ts, keeping its center. It reports whether r was
// changed.
func ensureCircleSpan(r scale.Range, ts []scale.Normal) (scale.Range, bool) {
	period := math.Inf(1)
	for _, t := range ts {
		period = math.Min(period, t.Period())
	}
	if r.Len() <= period {
		return r, false
	}
	return r.Recenter(r.Center(), period), true
}

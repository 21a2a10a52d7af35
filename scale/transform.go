// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// A TickTransform is a monotonic remapping from world values to the
// values shown in tick labels, such as a unit conversion. Ticks are
// chosen to be "nice" in the transformed space.
type TickTransform interface {
	Forward(w float64) float64
	Inverse(d float64) float64
}

// Affine is the TickTransform d = w*Scale + Offset. Scale must be
// non-zero.
type Affine struct {
	Scale, Offset float64
}

func (a Affine) Forward(w float64) float64 { return w*a.Scale + a.Offset }
func (a Affine) Inverse(d float64) float64 { return (d - a.Offset) / a.Scale }

// ForwardRange applies t to both ends of r. A nil t is the identity.
func ForwardRange(t TickTransform, r Range) Range {
	if t == nil {
		return r
	}
	return Range{t.Forward(r.Start), t.Forward(r.End)}
}

// InverseRange applies the inverse of t to both ends of r. A nil t is
// the identity.
func InverseRange(t TickTransform, r Range) Range {
	if t == nil {
		return r
	}
	return Range{t.Inverse(r.Start), t.Inverse(r.End)}
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNaN       = errors.New("scale: NaN range")
	ErrZeroWidth = errors.New("scale: zero-width range")
	ErrDomain    = errors.New("scale: range outside the kind's domain")
)

// Precision is the relative resolution a normalized range must keep
// in world values: 2^-36 leaves 16 of float64's 52 mantissa bits for
// round-off from chained transforms.
const Precision = 1.0 / (1 << 36)

// A Normal is an immutable bijection between world values of one axis
// kind and normalized physical coordinates, where [0, 1] is the
// visible extent of the axis.
//
// In the kind's intermediate space (identity for linear and circular
// kinds, log10 for log kinds), world value w and normalized value n
// are related by
//
//	in(w) = offset + n*scale
//
// A negative scale is an inverted axis.
type Normal struct {
	kind          Kind
	offset, scale float64
}

// NewNormal returns the Normal of kind k whose [0, 1] shows world.
func NewNormal(k Kind, world Range) (Normal, error) {
	if world.IsNaN() {
		return Normal{}, ErrNaN
	}
	m := k.mapping()
	u1, u2 := m.in(world.Start), m.in(world.End)
	if math.IsInf(u1, 0) || math.IsInf(u2, 0) {
		return Normal{}, fmt.Errorf("%w: %v for %v", ErrDomain, world, k)
	}
	if u1 == u2 {
		return Normal{}, ErrZeroWidth
	}
	return Normal{kind: k, offset: u1, scale: u2 - u1}, nil
}

// MustNormal is like NewNormal but panics on error.
func MustNormal(k Kind, world Range) Normal {
	n, err := NewNormal(k, world)
	if err != nil {
		panic(err)
	}
	return n
}

// Default returns the Normal showing k's default range.
func Default(k Kind) Normal {
	return MustNormal(k, k.DefaultRange())
}

func (t Normal) Kind() Kind {
	return t.kind
}

func (t Normal) Offset() float64 {
	return t.offset
}

func (t Normal) Scale() float64 {
	return t.scale
}

// Inverted reports whether t maps increasing world values to
// decreasing normalized values.
func (t Normal) Inverted() bool {
	return t.scale < 0
}

func (t Normal) Equal(o Normal) bool {
	return t.kind == o.kind && t.offset == o.offset && t.scale == o.scale
}

func (t Normal) String() string {
	return fmt.Sprintf("%v %v", t.kind, t.ValueRange())
}

// ConvToNR maps world value w to normalized space.
func (t Normal) ConvToNR(w float64) float64 {
	return (t.kind.mapping().in(w) - t.offset) / t.scale
}

// ConvFromNR maps normalized value n to world space.
func (t Normal) ConvFromNR(n float64) float64 {
	return t.kind.mapping().out(t.offset + n*t.scale)
}

// NormalRange maps a world range to normalized space.
func (t Normal) NormalRange(w Range) Range {
	return Range{t.ConvToNR(w.Start), t.ConvToNR(w.End)}
}

// WorldRange maps a normalized range to world space.
func (t Normal) WorldRange(n Range) Range {
	return Range{t.ConvFromNR(n.Start), t.ConvFromNR(n.End)}
}

// ValueRange returns the world range shown at [0, 1].
func (t Normal) ValueRange() Range {
	return t.WorldRange(Range{0, 1})
}

// Zoom returns the Normal whose [0, 1] is r in t's normalized space.
// An inverted r flips the axis.
func (t Normal) Zoom(r Range) Normal {
	return Normal{
		kind:   t.kind,
		offset: t.offset + r.Start*t.scale,
		scale:  r.Span() * t.scale,
	}
}

// WithoutOffset returns t with its offset removed. Normalized values
// of the result differ from t's by the constant offset/scale, which
// lets transforms sharing an offset be compared and zoomed without
// re-adding it on every step.
func (t Normal) WithoutOffset() Normal {
	return Normal{kind: t.kind, scale: t.scale}
}

// Shift returns offset/scale, the constant by which t's normalized
// values differ from those of t.WithoutOffset().
func (t Normal) Shift() float64 {
	return t.offset / t.scale
}

// Boundary returns the kind's valid world domain in t's normalized
// space, in increasing order.
func (t Normal) Boundary() Range {
	return t.NormalRange(t.kind.Boundary()).Sorted()
}

// MinSpan returns the smallest normalized span around r for which the
// world values keep relative precision p.
func (t Normal) MinSpan(r Range, p float64) float64 {
	m := t.kind.mapping()
	u1 := t.offset + r.Start*t.scale
	u2 := t.offset + r.End*t.scale
	return m.resolution(u1, u2, p) / math.Abs(t.scale)
}

// Period returns one turn of a circular kind in t's normalized units,
// or +Inf.
func (t Normal) Period() float64 {
	return t.kind.Period() / math.Abs(t.scale)
}

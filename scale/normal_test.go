// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

var testKinds = []struct {
	kind   Kind
	world  Range
	values []float64
}{
	{Linear, Range{-3, 17}, []float64{-1e6, -3, 0, 0.5, 17, 1e9}},
	{Linear, Range{1e9, 1e9 + 1}, []float64{1e9, 1e9 + 0.25, 1e9 + 1}},
	{Linear, Range{5, -5}, []float64{-5, 0, 2.5, 5}},
	{Log, Range{1, 1000}, []float64{1e-200, 0.1, 1, 42, 1e250}},
	{Log, Range{100, 0.01}, []float64{0.01, 3, 100}},
	{Degrees, Range{0, 360}, []float64{-720, 0, 90, 359.5, 1080}},
	{Radians, Range{-math.Pi, math.Pi}, []float64{-1, 0, 1, 6}},
}

func TestRoundTrip(t *testing.T) {
	for _, tc := range testKinds {
		n, err := NewNormal(tc.kind, tc.world)
		require.NoError(t, err)
		for _, v := range tc.values {
			got := n.ConvFromNR(n.ConvToNR(v))
			if v == 0 {
				require.InDelta(t, 0, got, 1e-9, "%v: round trip of %v", n, v)
				continue
			}
			require.InEpsilon(t, v, got, 1e-9, "%v: round trip of %v", n, v)
		}
	}
}

func TestValueRange(t *testing.T) {
	for _, tc := range testKinds {
		n := MustNormal(tc.kind, tc.world)
		vr := n.ValueRange()
		require.InDelta(t, tc.world.Start, vr.Start, 1e-12*math.Max(1, math.Abs(tc.world.Start)))
		require.InDelta(t, tc.world.End, vr.End, 1e-12*math.Max(1, math.Abs(tc.world.End)))
		require.Equal(t, tc.world.Inverted(), n.Inverted())
	}
}

func TestNewNormalErrors(t *testing.T) {
	_, err := NewNormal(Linear, Range{math.NaN(), 1})
	require.ErrorIs(t, err, ErrNaN)
	_, err = NewNormal(Linear, Range{2, 2})
	require.ErrorIs(t, err, ErrZeroWidth)
	_, err = NewNormal(Log, Range{-1, 10})
	require.ErrorIs(t, err, ErrDomain)
	_, err = NewNormal(Log, Range{0, 10})
	require.ErrorIs(t, err, ErrDomain)
}

func TestZoomComposition(t *testing.T) {
	a := Range{0.25, 0.75}
	b := Range{-0.5, 2}
	// Composing a then b: b is expressed in a's normalized space.
	composed := Range{a.Start + b.Start*a.Span(), a.Start + b.End*a.Span()}
	for _, tc := range testKinds {
		n := MustNormal(tc.kind, tc.world)
		z1 := n.Zoom(a).Zoom(b)
		z2 := n.Zoom(composed)
		for _, v := range tc.values {
			require.InDelta(t, z2.ConvToNR(v), z1.ConvToNR(v), 1e-9*math.Max(1, math.Abs(z2.ConvToNR(v))))
		}
	}
}

func TestZoomShowsRange(t *testing.T) {
	n := MustNormal(Linear, Range{0, 100})
	z := n.Zoom(Range{0.1, 0.2})
	vr := z.ValueRange()
	require.InDelta(t, 10, vr.Start, 1e-12)
	require.InDelta(t, 20, vr.End, 1e-12)

	// Inverting the zoom range flips the axis.
	z = n.Zoom(Range{1, 0})
	require.True(t, z.Inverted())
	require.InDelta(t, 100, z.ValueRange().Start, 1e-12)
}

func TestWithoutOffset(t *testing.T) {
	n := MustNormal(Linear, Range{1000, 1010})
	v := n.WithoutOffset()
	require.Equal(t, 0.0, v.Offset())
	require.Equal(t, n.Scale(), v.Scale())
	for _, w := range []float64{990, 1000, 1005, 1020} {
		require.InDelta(t, n.ConvToNR(w)+n.Shift(), v.ConvToNR(w), 1e-9)
	}

	// Zooming the virtual transform to the shifted range
	// reproduces the real transform.
	r := Range{0.2, 0.6}
	got := v.Zoom(Range{r.Start + n.Shift(), r.End + n.Shift()})
	want := n.Zoom(r)
	require.InDelta(t, want.ValueRange().Start, got.ValueRange().Start, 1e-9)
	require.InDelta(t, want.ValueRange().End, got.ValueRange().End, 1e-9)
}

func TestMinSpan(t *testing.T) {
	n := MustNormal(Linear, Range{0, 10})
	// World span needed at 1e6 is 1e6*Precision; normalized
	// divides by the scale of 10.
	require.InEpsilon(t, 1e6*Precision/10, n.MinSpan(Range{1e5, 1e5}, Precision), 1e-12)
	require.Equal(t, 0.0, n.MinSpan(Range{0, 0}, Precision))

	l := MustNormal(Log, Range{1, 10})
	require.Greater(t, l.MinSpan(Range{0, 0}, Precision), 0.0)
}

func TestBoundary(t *testing.T) {
	n := MustNormal(Log, Range{1, 100})
	b := n.Boundary()
	require.False(t, b.IsInf())
	require.Less(t, b.Start, 0.0)
	require.Greater(t, b.End, 1.0)

	inv := MustNormal(Linear, Range{1, -1})
	b = inv.Boundary()
	require.False(t, b.Inverted())
}

func TestPeriod(t *testing.T) {
	n := MustNormal(Degrees, Range{0, 90})
	require.InDelta(t, 4, n.Period(), 1e-12)
	require.True(t, math.IsInf(MustNormal(Linear, Range{0, 1}).Period(), 1))
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aclements/go-axis/scale"
)

func TestVirtualTransforms(t *testing.T) {
	a := scale.MustNormal(scale.Linear, scale.Range{Start: 1000, End: 1001})
	b := scale.MustNormal(scale.Linear, scale.Range{Start: 1000, End: 1001})
	vs := virtualTransforms([]scale.Normal{a, b})
	for _, v := range vs {
		require.Equal(t, 0.0, v.Offset())
		require.Equal(t, a.Scale(), v.Scale())
	}

	c := scale.MustNormal(scale.Linear, scale.Range{Start: 0, End: 1})
	vs = virtualTransforms([]scale.Normal{a, c})
	require.True(t, vs[0].Equal(a))
	require.True(t, vs[1].Equal(c))

	require.Empty(t, virtualTransforms(nil))
}

func TestBoundary(t *testing.T) {
	lin := scale.MustNormal(scale.Linear, scale.Range{Start: 0, End: 1})
	log := scale.MustNormal(scale.Log, scale.Range{Start: 1, End: 10})
	b, ok := boundary([]scale.Normal{lin, log})
	require.True(t, ok)
	// The log domain starts at 1e-300, which is -300 in log's
	// normalized space.
	require.InDelta(t, -300, b.Start, 1e-9)

	b, ok = boundary(nil)
	require.True(t, ok)
	require.Equal(t, scale.All, b)
}

func TestValidateNormalRange(t *testing.T) {
	bound := scale.Range{Start: -1, End: 5}
	for _, tc := range []struct {
		r, want scale.Range
		adj, ok bool
	}{
		{scale.Range{Start: 0, End: 1}, scale.Range{Start: 0, End: 1}, false, true},
		{scale.Range{Start: -3, End: 1}, scale.Range{Start: -1, End: 1}, true, true},
		{scale.Range{Start: 4, End: -3}, scale.Range{Start: 4, End: -1}, true, true},
		{scale.Range{Start: 6, End: 7}, scale.Empty, false, false},
	} {
		got, adj, ok := validateNormalRange(tc.r, bound, [2]bool{}, nil)
		require.Equal(t, tc.ok, ok, "%v", tc.r)
		if !ok {
			continue
		}
		require.Equal(t, tc.want, got, "%v", tc.r)
		require.Equal(t, tc.adj, adj, "%v", tc.r)
	}

	data := func() (scale.Range, bool) { return scale.Range{Start: 2, End: 3}, true }
	got, _, ok := validateNormalRange(scale.Range{Start: math.Inf(-1), End: 4}, bound, [2]bool{true, false}, data)
	require.True(t, ok)
	require.Equal(t, scale.Range{Start: 2, End: 4}, got)

	got, _, ok = validateNormalRange(scale.Range{Start: math.Inf(1), End: math.Inf(-1)}, bound, [2]bool{true, true}, data)
	require.True(t, ok)
	require.Equal(t, scale.Range{Start: 3, End: 2}, got)

	none := func() (scale.Range, bool) { return scale.Empty, false }
	_, _, ok = validateNormalRange(scale.Range{Start: math.Inf(-1), End: 4}, bound, [2]bool{true, false}, none)
	require.False(t, ok)

	// Infinite ends that were not left open are clipped, not
	// resolved against the data.
	got, adj, ok := validateNormalRange(scale.Range{Start: math.Inf(-1), End: 4}, bound, [2]bool{}, data)
	require.True(t, ok)
	require.True(t, adj)
	require.Equal(t, scale.Range{Start: -1, End: 4}, got)
	_, _, ok = validateNormalRange(scale.Range{Start: math.Inf(-1), End: math.Inf(-1)}, bound, [2]bool{}, data)
	require.False(t, ok)
}

func TestEnsurePrecision(t *testing.T) {
	ts := []scale.Normal{scale.MustNormal(scale.Linear, scale.Range{Start: 0, End: 1})}
	bound, _ := boundary(ts)
	for _, r := range []scale.Range{
		{Start: 1e6, End: 1e6},
		{Start: 0.5, End: 0.5 + 1e-15},
		{Start: -42, End: -42 - 1e-14},
	} {
		need := ts[0].MinSpan(r, scale.Precision)
		got, adj := ensurePrecision(r, bound, ts)
		require.True(t, adj, "%v", r)
		slack := 1e-9 * math.Max(1, math.Abs(r.Center()))
		require.GreaterOrEqual(t, got.Len()+slack, need, "%v", r)
		require.InDelta(t, r.Center(), got.Center(), 1e-9*math.Max(1, math.Abs(r.Center())), "%v", r)
	}

	// Wide ranges are left alone.
	r := scale.Range{Start: 0, End: 1}
	got, adj := ensurePrecision(r, bound, ts)
	require.False(t, adj)
	require.Equal(t, r, got)

	// A zero-width range at 0 gets room for four digits.
	got, adj = ensurePrecision(scale.Range{}, bound, ts)
	require.True(t, adj)
	require.InDelta(t, 0.004, got.Len(), 1e-15)
	require.InDelta(t, 0, got.Center(), 1e-15)

	// Widening stays inside the bound.
	got, _ = ensurePrecision(scale.Range{Start: 1, End: 1}, scale.Range{Start: 0.999, End: 1}, ts)
	require.LessOrEqual(t, got.Max(), 1.0)
}

func TestEnsurePrecisionZeroCircular(t *testing.T) {
	// The fixed span at 0 only applies when every axis is linear.
	for _, ts := range [][]scale.Normal{
		{scale.MustNormal(scale.Degrees, scale.Range{Start: 0, End: 90})},
		{
			scale.MustNormal(scale.Linear, scale.Range{Start: 0, End: 1}),
			scale.MustNormal(scale.Degrees, scale.Range{Start: 0, End: 90}),
		},
	} {
		bound, _ := boundary(ts)
		got, adj := ensurePrecision(scale.Range{}, bound, ts)
		require.False(t, adj)
		require.Equal(t, scale.Range{}, got)
	}
}

func TestEnsureCircleSpan(t *testing.T) {
	deg := scale.MustNormal(scale.Degrees, scale.Range{Start: 0, End: 90})
	ts := []scale.Normal{deg}
	// One period is 4 normalized units.
	for _, r := range []scale.Range{
		{Start: 0, End: 1},
		{Start: -3, End: 7},
		{Start: 10, End: -10},
		{Start: 0, End: 4},
	} {
		got, _ := ensureCircleSpan(r, ts)
		require.LessOrEqual(t, got.Len(), 4*(1+1e-12), "%v", r)
		require.InDelta(t, r.Center(), got.Center(), 1e-12)
		require.Equal(t, r.Inverted(), got.Inverted())
	}

	lin := []scale.Normal{scale.MustNormal(scale.Linear, scale.Range{Start: 0, End: 1})}
	r := scale.Range{Start: -1e6, End: 1e6}
	got, adj := ensureCircleSpan(r, lin)
	require.False(t, adj)
	require.Equal(t, r, got)
}

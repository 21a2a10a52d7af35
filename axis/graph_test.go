// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aclements/go-axis/label"
	"github.com/aclements/go-axis/notice"
	"github.com/aclements/go-axis/scale"
	"github.com/aclements/go-axis/ticks"
)

// points is a Layer of (x, y) pairs.
type points struct {
	xs, ys []float64
}

func (p *points) Bounds(dim Dim, valid, orth scale.Range) (extent scale.Range, outside, ok bool) {
	cs, os := p.xs, p.ys
	if dim == Y {
		cs, os = os, cs
	}
	extent = scale.Empty
	for i, c := range cs {
		if math.IsNaN(c) || !orth.Contains(os[i]) {
			continue
		}
		if !valid.Contains(c) {
			outside = true
			continue
		}
		extent = extent.Union(scale.Range{Start: c, End: c})
		ok = true
	}
	return extent, outside, ok
}

func requireRange(t *testing.T, want scale.Range, g *Graph, a AxisID) {
	t.Helper()
	got, err := g.Range(a)
	require.NoError(t, err)
	tol := 1e-9 * math.Max(1, want.Len())
	require.InDelta(t, want.Start, got.Start, tol, "start of %v", got)
	require.InDelta(t, want.End, got.End, tol, "end of %v", got)
}

func newTestGraph(opts ...Option) (*Graph, *notice.Recorder) {
	rec := new(notice.Recorder)
	return New(append([]Option{WithSink(rec)}, opts...)...), rec
}

func mustGroup(t *testing.T, g *Graph, a AxisID) GroupID {
	t.Helper()
	id, err := g.Group(a)
	require.NoError(t, err)
	return id
}

// Two locked X axes with different data share one range covering
// the union of the data plus the margin.
func TestAutoRangeLocked(t *testing.T) {
	g, rec := newTestGraph()
	x1 := g.NewAxis(X, scale.Linear)
	x2 := g.NewAxis(X, scale.Linear)
	y1 := g.NewAxis(Y, scale.Linear)
	y2 := g.NewAxis(Y, scale.Linear)
	require.NoError(t, g.Lock(x1, x2))
	_, err := g.AddLayer(&points{xs: []float64{0, 5, 10}, ys: []float64{1, 2, 3}}, x1, y1)
	require.NoError(t, err)
	_, err = g.AddLayer(&points{xs: []float64{5, 20}, ys: []float64{1, 2}}, x2, y2)
	require.NoError(t, err)

	gx := mustGroup(t, g, x1)
	require.Equal(t, gx, mustGroup(t, g, x2))
	require.True(t, g.CalcAutoRange(gx))
	requireRange(t, scale.Range{Start: -0.3125, End: 20.3125}, g, x1)
	requireRange(t, scale.Range{Start: -0.3125, End: 20.3125}, g, x2)
	require.Equal(t, 1, rec.Count(notice.AutoRanged))
	require.Zero(t, rec.Count(notice.RangeAdjusted))
	require.True(t, g.AutoRange(gx))

	// Not pending any more.
	require.False(t, g.CalcAutoRange(gx))
}

// A full Commit of two locked X axes and two Y axes fits each group
// once. Passes that re-resolve a group without changing it are silent.
func TestCommitAutoRangedOnce(t *testing.T) {
	g, rec := newTestGraph()
	x1 := g.NewAxis(X, scale.Linear)
	x2 := g.NewAxis(X, scale.Linear)
	y1 := g.NewAxis(Y, scale.Linear)
	y2 := g.NewAxis(Y, scale.Linear)
	require.NoError(t, g.Lock(x1, x2))
	_, err := g.AddLayer(&points{xs: []float64{0, 5, 10}, ys: []float64{1, 2, 3}}, x1, y1)
	require.NoError(t, err)
	_, err = g.AddLayer(&points{xs: []float64{5, 20}, ys: []float64{1, 2}}, x2, y2)
	require.NoError(t, err)

	rep := g.Commit(nil)
	require.True(t, rep.Converged)
	require.Greater(t, rep.Iterations, 1)
	requireRange(t, scale.Range{Start: -0.3125, End: 20.3125}, g, x1)
	require.Equal(t, rep.RangeChanges, rec.Count(notice.AutoRanged))

	bySource := make(map[string]int)
	for _, n := range rec.Notices {
		if n.Kind == notice.AutoRanged {
			bySource[n.Source]++
		}
	}
	require.Len(t, bySource, 3)
	for src, c := range bySource {
		require.Equal(t, 1, c, "%s", src)
	}

	// Nothing left to do, so nothing more to say.
	rec.Reset()
	rep = g.Commit(nil)
	require.Zero(t, rep.RangeChanges)
	require.Empty(t, rec.Notices)
}

func TestLockedZoomConsistency(t *testing.T) {
	g, _ := newTestGraph()
	x1 := g.NewAxis(X, scale.Linear)
	x2 := g.NewAxis(X, scale.Linear)
	x3 := g.NewAxis(X, scale.Log)
	require.NoError(t, g.SetRange(x2, scale.Range{Start: 100, End: 200}))
	require.NoError(t, g.Lock(x1, x2))
	require.NoError(t, g.Lock(x1, x3))
	gx := mustGroup(t, g, x1)

	require.NoError(t, g.ZoomNormalRange(gx, scale.Range{Start: 0.25, End: 0.5}))
	requireRange(t, scale.Range{Start: 0.25, End: 0.5}, g, x1)
	requireRange(t, scale.Range{Start: 125, End: 150}, g, x2)
	require.False(t, g.AutoRange(gx))

	for _, a := range g.Members(gx) {
		tr, err := g.Transform(a)
		require.NoError(t, err)
		require.InDelta(t, 0, tr.ConvToNR(tr.ConvFromNR(0)), 1e-9)
		require.InDelta(t, 1, tr.ConvToNR(tr.ConvFromNR(1)), 1e-9)
	}

	require.NoError(t, g.SetZoomable(gx, false))
	require.ErrorIs(t, g.ZoomNormalRange(gx, scale.Range{Start: 0, End: 2}), ErrNotZoomable)
}

// A log axis with only non-positive data keeps its range.
func TestAutoRangeNoValidData(t *testing.T) {
	g, rec := newTestGraph()
	x := g.NewAxis(X, scale.Log)
	y := g.NewAxis(Y, scale.Linear)
	_, err := g.AddLayer(&points{xs: []float64{-3, -1, 0}, ys: []float64{1, 2, 3}}, x, y)
	require.NoError(t, err)

	before, _ := g.Transform(x)
	require.False(t, g.CalcAutoRange(mustGroup(t, g, x)))
	after, _ := g.Transform(x)
	require.True(t, before.Equal(after))
	require.Equal(t, 1, rec.Count(notice.NoValidData))
	require.Equal(t, 1, rec.Count(notice.OutsideBounds))
	require.Zero(t, rec.Count(notice.AutoRanged))
}

func TestSetRangeZeroWidth(t *testing.T) {
	g, rec := newTestGraph()
	x := g.NewAxis(X, scale.Linear)
	require.NoError(t, g.SetRange(x, scale.Range{Start: 0, End: 0}))
	requireRange(t, scale.Range{Start: -0.002, End: 0.002}, g, x)
	require.Equal(t, 1, rec.Count(notice.PrecisionAdjusted))
	require.False(t, g.AutoRange(mustGroup(t, g, x)))
}

// Zooming X re-arms the auto range of the Y group sharing a layer.
func TestZoomMarksOrthogonal(t *testing.T) {
	g, _ := newTestGraph()
	x := g.NewAxis(X, scale.Linear)
	y := g.NewAxis(Y, scale.Linear)
	var p points
	for i := 0; i <= 10; i++ {
		p.xs = append(p.xs, float64(i))
		p.ys = append(p.ys, float64(i*i))
	}
	_, err := g.AddLayer(&p, x, y)
	require.NoError(t, err)
	rep := g.Commit(nil)
	require.True(t, rep.Converged)
	requireRange(t, scale.Range{Start: -0.15625, End: 10.15625}, g, x)
	requireRange(t, scale.Range{Start: -1.5625, End: 101.5625}, g, y)

	gx, gy := mustGroup(t, g, x), mustGroup(t, g, y)
	require.False(t, g.Pending(gy))
	// Show x in [-0.15625, 5.5].
	tx, _ := g.Transform(x)
	require.NoError(t, g.ZoomNormalRange(gx, scale.Range{Start: 0, End: tx.ConvToNR(5.5)}))
	require.True(t, g.Pending(gy))
	require.True(t, g.CalcAutoRange(gy))
	requireRange(t, scale.Range{Start: -0.390625, End: 25.390625}, g, y)

	// X is manual now, so zooming Y does not touch it.
	require.NoError(t, g.ZoomNormalRange(gy, scale.Range{Start: 0, End: 0.5}))
	require.False(t, g.Pending(gx))
}

func TestSetRangeErrors(t *testing.T) {
	g, rec := newTestGraph()
	x := g.NewAxis(X, scale.Log)

	err := g.SetRange(x, scale.Range{Start: math.NaN(), End: 1})
	require.ErrorIs(t, err, ErrNaNRange)
	var re *RangeError
	require.True(t, errors.As(err, &re))
	require.Equal(t, x, re.Axis)

	before, _ := g.Transform(x)
	require.ErrorIs(t, g.SetRange(x, scale.Range{Start: -5, End: -1}), ErrInvalidRange)
	after, _ := g.Transform(x)
	require.True(t, before.Equal(after), "failed SetRange changed the axis")

	require.NoError(t, g.SetRange(x, scale.Range{Start: 1e-320, End: 10}))
	require.Equal(t, 1, rec.Count(notice.RangeAdjusted))
	r, _ := g.Range(x)
	require.InEpsilon(t, 1e-300, r.Start, 1e-6)

	_, err = g.Range(AxisID(99))
	require.ErrorIs(t, err, ErrUnknownAxis)
}

func TestSetRangeUnbounded(t *testing.T) {
	g, _ := newTestGraph()
	x := g.NewAxis(X, scale.Linear)
	y := g.NewAxis(Y, scale.Linear)
	_, err := g.AddLayer(&points{xs: []float64{2, 8}, ys: []float64{0, 0}}, x, y)
	require.NoError(t, err)

	require.NoError(t, g.SetRange(x, scale.Range{Start: math.Inf(-1), End: 20}))
	requireRange(t, scale.Range{Start: 1.90625, End: 20}, g, x)

	// Without data an unbounded end cannot be resolved.
	x2 := g.NewAxis(X, scale.Linear)
	require.ErrorIs(t, g.SetRange(x2, scale.Range{Start: 0, End: math.Inf(1)}), ErrInvalidRange)
}

// Finite ends outside a log domain are clipped or rejected even when
// the axis has data to take a nearest end from.
func TestSetRangeOutsideDomain(t *testing.T) {
	g, rec := newTestGraph()
	x := g.NewAxis(X, scale.Linear)
	y := g.NewAxis(Y, scale.Log)
	_, err := g.AddLayer(&points{xs: []float64{1, 2, 3}, ys: []float64{0.5, 40, 3e4}}, x, y)
	require.NoError(t, err)
	g.Commit(nil)
	rec.Reset()

	before, _ := g.Transform(y)
	require.ErrorIs(t, g.SetRange(y, scale.Range{Start: -5, End: -1}), ErrInvalidRange)
	after, _ := g.Transform(y)
	require.True(t, before.Equal(after), "failed SetRange changed the axis")
	require.Zero(t, rec.Count(notice.RangeAdjusted))

	require.NoError(t, g.SetRange(y, scale.Range{Start: -5, End: 10}))
	require.Equal(t, 1, rec.Count(notice.RangeAdjusted))
	r, _ := g.Range(y)
	require.InEpsilon(t, 1e-300, r.Start, 1e-6)
	require.InEpsilon(t, 10, r.End, 1e-9)
}

func TestSetRangeCircular(t *testing.T) {
	g, rec := newTestGraph()
	a := g.NewAxis(X, scale.Degrees)
	require.NoError(t, g.SetRange(a, scale.Range{Start: 0, End: 720}))
	require.Equal(t, 1, rec.Count(notice.CircleLimited))
	requireRange(t, scale.Range{Start: 180, End: 540}, g, a)

	require.NoError(t, g.SetRange(a, scale.Range{Start: 350, End: 10}))
	requireRange(t, scale.Range{Start: 350, End: 10}, g, a)
}

func TestSetRangeWithMargin(t *testing.T) {
	g, _ := newTestGraph()
	x := g.NewAxis(X, scale.Linear)
	require.NoError(t, g.SetMarginFactor(x, 0.5))
	require.NoError(t, g.SetRangeWithMargin(x, scale.Range{Start: 0, End: 4}))
	requireRange(t, scale.Range{Start: -1, End: 5}, g, x)
	require.ErrorIs(t, g.SetMarginFactor(x, -1), ErrMargin)
}

func TestSetKind(t *testing.T) {
	g, _ := newTestGraph()
	x1 := g.NewAxis(X, scale.Linear)
	x2 := g.NewAxis(X, scale.Linear)
	require.NoError(t, g.Lock(x1, x2))
	require.ErrorIs(t, g.SetKind(x1, scale.Log), ErrMultiplyLocked)

	require.NoError(t, g.Unlock(x1))
	require.NoError(t, g.SetKind(x1, scale.Log))
	k, _ := g.Kind(x1)
	require.Equal(t, scale.Log, k)
	requireRange(t, scale.Range{Start: 1, End: 10}, g, x1)
	require.True(t, g.Pending(mustGroup(t, g, x1)))
}

func TestLockUnlock(t *testing.T) {
	g, _ := newTestGraph()
	x1 := g.NewAxis(X, scale.Linear)
	x2 := g.NewAxis(X, scale.Linear)
	x3 := g.NewAxis(X, scale.Linear)
	y := g.NewAxis(Y, scale.Linear)
	require.ErrorIs(t, g.Lock(x1, y), ErrDimMismatch)

	require.NoError(t, g.Lock(x1, x3))
	require.NoError(t, g.Lock(x1, x2))
	gx := mustGroup(t, g, x1)
	require.ElementsMatch(t, []AxisID{x1, x2, x3}, g.Members(gx))
	p, _ := g.Primary(gx)
	require.Equal(t, x1, p)
	_, owned := g.Owner(gx)
	require.False(t, owned)

	require.NoError(t, g.SetAutoRange(gx, false))
	require.NoError(t, g.Unlock(x1))
	p, _ = g.Primary(gx)
	require.Equal(t, x2, p)

	g1 := mustGroup(t, g, x1)
	require.NotEqual(t, gx, g1)
	o, owned := g.Owner(g1)
	require.True(t, owned)
	require.Equal(t, x1, o)
	require.False(t, g.AutoRange(g1), "new group should inherit auto-range setting")
}

func TestSingleDataPoint(t *testing.T) {
	g, rec := newTestGraph()
	x := g.NewAxis(X, scale.Linear)
	y := g.NewAxis(Y, scale.Linear)
	_, err := g.AddLayer(&points{xs: []float64{3, 3}, ys: []float64{1, 2}}, x, y)
	require.NoError(t, err)
	require.True(t, g.CalcAutoRange(mustGroup(t, g, x)))
	requireRange(t, scale.Range{Start: 2.5, End: 3.5}, g, x)
	require.Equal(t, 1, rec.Count(notice.SingleDataPoint))
}

func TestOrthogonalClip(t *testing.T) {
	g, _ := newTestGraph()
	x := g.NewAxis(X, scale.Linear)
	y := g.NewAxis(Y, scale.Linear)
	_, err := g.AddLayer(&points{xs: []float64{0, 1, 2, 3}, ys: []float64{10, 20, 30, 40}}, x, y)
	require.NoError(t, err)
	require.NoError(t, g.SetRange(x, scale.Range{Start: 0.5, End: 2.5}))
	g.Commit(nil)
	// Only the points with x in [0.5, 2.5] count.
	requireRange(t, scale.Range{Start: 19.84375, End: 30.15625}, g, y)
}

func TestCoreRange(t *testing.T) {
	g, _ := newTestGraph()
	x := g.NewAxis(X, scale.Linear)
	y := g.NewAxis(Y, scale.Linear)
	gx := mustGroup(t, g, x)
	require.NoError(t, g.SetAutoRange(gx, false))
	require.NoError(t, g.SetCoreRange(x, scale.Range{Start: 2, End: 4}))
	require.True(t, g.CalcAutoRange(gx))
	requireRange(t, scale.Range{Start: 1.96875, End: 4.03125}, g, x)
	_, ok := g.CoreRange(x)
	require.True(t, ok)

	// An auto range includes the pinned range.
	_, err := g.AddLayer(&points{xs: []float64{0, 1}, ys: []float64{0, 0}}, x, y)
	require.NoError(t, err)
	require.NoError(t, g.SetAutoRange(gx, true))
	require.True(t, g.CalcAutoRange(gx))
	requireRange(t, scale.Range{Start: -0.0625, End: 4.0625}, g, x)

	// Setting a range clears it.
	require.NoError(t, g.SetRange(x, scale.Range{Start: 0, End: 1}))
	_, ok = g.CoreRange(x)
	require.False(t, ok)

	require.ErrorIs(t, g.SetCoreRange(x, scale.Range{Start: math.NaN(), End: 1}), ErrNaNRange)
}

func TestLayers(t *testing.T) {
	g, _ := newTestGraph()
	x := g.NewAxis(X, scale.Linear)
	y := g.NewAxis(Y, scale.Linear)
	_, err := g.AddLayer(&points{}, y, x)
	require.ErrorIs(t, err, ErrDimMismatch)

	id, err := g.AddLayer(&points{}, x, y)
	require.NoError(t, err)
	require.ErrorIs(t, g.RemoveAxis(x), ErrAxisInUse)
	g.Commit(nil)

	require.NoError(t, g.RemoveLayer(id))
	require.True(t, g.Pending(mustGroup(t, g, x)))
	require.ErrorIs(t, g.RemoveLayer(id), ErrUnknownLayer)
	require.NoError(t, g.RemoveAxis(x))
	require.Equal(t, []AxisID{y}, g.Axes())
}

func TestCommitTickAligned(t *testing.T) {
	g, _ := newTestGraph(WithMeasurer(label.DefaultMonospace))
	x := g.NewAxis(X, scale.Linear)
	y := g.NewAxis(Y, scale.Linear)
	m, err := g.NewTickManager(x)
	require.NoError(t, err)
	_, err = g.AddLayer(&points{xs: []float64{0.3, 9.7}, ys: []float64{0, 1}}, x, y)
	require.NoError(t, err)

	rep := g.Commit(nil)
	require.True(t, rep.Converged)
	requireRange(t, scale.Range{Start: 0, End: 10}, g, x)
	require.Equal(t, 0.0, m.Values()[0])
	require.Equal(t, 10.0, m.Values()[len(m.Values())-1])
	require.Greater(t, rep.Recomputes, 0)

	// Without auto margin the data margin is all that is added.
	require.NoError(t, g.SetAutoMargin(x, false))
	g.Commit(nil)
	requireRange(t, scale.Range{Start: 0.3 - 9.4/64, End: 9.7 + 9.4/64}, g, x)
}

type growingAxis struct {
	length float64
}

func (a *growingAxis) Length() float64          { return a.length }
func (a *growingAxis) Font() label.Font         { return label.Font{Size: 10} }
func (a *growingAxis) OrientationMatches() bool { return true }

func TestCommitNotConverged(t *testing.T) {
	g, rec := newTestGraph(WithMaxIterations(3))
	x := g.NewAxis(X, scale.Linear)
	m, err := g.NewTickManager(x, ticks.WithTickNumber(5))
	require.NoError(t, err)
	inst := &growingAxis{length: 100}
	m.Attach(inst)

	// A layout that never settles.
	rep := g.Commit(RelayoutFunc(func(*Graph) bool {
		inst.length++
		return true
	}))
	require.False(t, rep.Converged)
	require.Equal(t, 3, rep.Iterations)
	require.Equal(t, 1, rec.Count(notice.NotConverged))

	// A layout that settles.
	rep = g.Commit(nil)
	require.True(t, rep.Converged)
}

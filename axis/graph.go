// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axis keeps the ranges of a set of plot axes consistent.
//
// A Graph holds axes, lock groups and data layers as entities
// addressed by integer handles. Every axis belongs to exactly one lock
// group, and all members of a group show the same normalized range. A
// group in auto-range mode derives that range from the data of the
// layers attached to its members. Changing one group can invalidate
// the auto range of the orthogonal groups, so changes are resolved by
// Commit, which iterates to a fixed point.
//
// A Graph is not safe for concurrent use.
package axis

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/aclements/go-axis/label"
	"github.com/aclements/go-axis/notice"
	"github.com/aclements/go-axis/scale"
	"github.com/aclements/go-axis/ticks"
)

// Dim is the dimension an axis measures.
type Dim uint8

const (
	X Dim = iota
	Y
)

func (d Dim) String() string {
	if d == X {
		return "x"
	}
	return "y"
}

// Orth returns the other dimension.
func (d Dim) Orth() Dim {
	return 1 - d
}

type (
	AxisID  int
	GroupID int
	LayerID int
)

type axisState struct {
	dim        Dim
	normal     scale.Normal
	margin     float64
	autoMargin bool
	core       *scale.Range
	group      GroupID
	managers   []*ticks.Manager
}

type groupState struct {
	members   []AxisID
	primary   AxisID
	autoRange bool
	zoomable  bool
}

type layerState struct {
	layer Layer
	axes  [2]AxisID // indexed by Dim
}

// A Graph is the set of axes, lock groups and layers of one plot.
type Graph struct {
	sink     notice.Sink
	measurer label.Measurer
	maxIter  int
	margin   float64

	axes   []*axisState
	groups []*groupState
	layers []*layerState

	// pending holds the groups whose auto range is stale.
	pending bitset.BitSet
}

// New returns an empty Graph.
func New(opts ...Option) *Graph {
	g := &Graph{
		sink:    notice.LogSink{},
		maxIter: DefaultMaxIterations,
		margin:  DefaultMarginFactor,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func validMargin(f float64) bool {
	return f >= 0 && !math.IsInf(f, 0)
}

func (g *Graph) notify(k notice.Kind, source string, format string, args ...any) {
	g.sink.Notice(notice.Notice{Kind: k, Source: source, Message: fmt.Sprintf(format, args...)})
}

func axisSource(a AxisID) string    { return fmt.Sprintf("axis %d", a) }
func groupSource(id GroupID) string { return fmt.Sprintf("group %d", id) }

// NewAxis adds an axis of the given kind showing the kind's default
// range. It starts alone in a new auto-ranging group.
func (g *Graph) NewAxis(dim Dim, kind scale.Kind) AxisID {
	a := AxisID(len(g.axes))
	gid := g.newGroup(a, true, true)
	g.axes = append(g.axes, &axisState{
		dim:        dim,
		normal:     scale.Default(kind),
		margin:     g.margin,
		autoMargin: true,
		group:      gid,
	})
	return a
}

func (g *Graph) newGroup(first AxisID, autoRange, zoomable bool) GroupID {
	gid := GroupID(len(g.groups))
	g.groups = append(g.groups, &groupState{
		members:   []AxisID{first},
		primary:   first,
		autoRange: autoRange,
		zoomable:  zoomable,
	})
	g.pending.Set(uint(gid))
	return gid
}

// RemoveAxis deletes an axis. It fails if any layer is attached to
// it.
func (g *Graph) RemoveAxis(a AxisID) error {
	ax, err := g.axis(a)
	if err != nil {
		return err
	}
	for _, l := range g.layers {
		if l != nil && (l.axes[X] == a || l.axes[Y] == a) {
			return fmt.Errorf("%w: %d", ErrAxisInUse, a)
		}
	}
	g.leaveGroup(a)
	ax.managers = nil
	g.axes[a] = nil
	return nil
}

func (g *Graph) axis(a AxisID) (*axisState, error) {
	if a < 0 || int(a) >= len(g.axes) || g.axes[a] == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAxis, a)
	}
	return g.axes[a], nil
}

func (g *Graph) group(id GroupID) (*groupState, error) {
	if id < 0 || int(id) >= len(g.groups) || g.groups[id] == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnknownGroup, id)
	}
	return g.groups[id], nil
}

// Axes returns the live axes in creation order.
func (g *Graph) Axes() []AxisID {
	var out []AxisID
	for i, ax := range g.axes {
		if ax != nil {
			out = append(out, AxisID(i))
		}
	}
	return out
}

// Dim returns the dimension of axis a.
func (g *Graph) Dim(a AxisID) (Dim, error) {
	ax, err := g.axis(a)
	if err != nil {
		return 0, err
	}
	return ax.dim, nil
}

// Transform returns the normalized transform of axis a.
func (g *Graph) Transform(a AxisID) (scale.Normal, error) {
	ax, err := g.axis(a)
	if err != nil {
		return scale.Normal{}, err
	}
	return ax.normal, nil
}

// Range returns the world range axis a shows.
func (g *Graph) Range(a AxisID) (scale.Range, error) {
	ax, err := g.axis(a)
	if err != nil {
		return scale.Empty, err
	}
	return ax.normal.ValueRange(), nil
}

// Kind returns the kind of axis a.
func (g *Graph) Kind(a AxisID) (scale.Kind, error) {
	ax, err := g.axis(a)
	if err != nil {
		return scale.Kind{}, err
	}
	return ax.normal.Kind(), nil
}

// NewTickManager returns a tick manager that follows the range of
// axis a. Options are applied after the graph's defaults.
func (g *Graph) NewTickManager(a AxisID, opts ...ticks.Option) (*ticks.Manager, error) {
	ax, err := g.axis(a)
	if err != nil {
		return nil, err
	}
	base := []ticks.Option{ticks.WithSink(g.sink), ticks.WithName(axisSource(a))}
	if g.measurer != nil {
		base = append(base, ticks.WithMeasurer(g.measurer))
	}
	m := ticks.NewManager(ax.normal, append(base, opts...)...)
	ax.managers = append(ax.managers, m)
	return m, nil
}

// Managers returns the tick managers of axis a. The first one is used
// to align auto ranges to ticks.
func (g *Graph) Managers(a AxisID) []*ticks.Manager {
	ax, err := g.axis(a)
	if err != nil {
		return nil
	}
	return ax.managers
}

// sameEps is the fraction of the visible span below which two
// transforms are considered to show the same range. Recomputing an
// unchanged auto range can move a transform by a few ulps; those moves
// must not count as changes or Commit would never settle.
const sameEps = 1e-12

func sameNormal(a, b scale.Normal) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	eps := sameEps * math.Abs(a.Scale())
	return math.Abs(a.Offset()-b.Offset()) <= eps && math.Abs(a.Scale()-b.Scale()) <= eps
}

// setNormal installs a new transform on ax and its tick managers. It
// reports whether the transform changed.
func (ax *axisState) setNormal(n scale.Normal) bool {
	if sameNormal(n, ax.normal) {
		return false
	}
	ax.normal = n
	for _, m := range ax.managers {
		m.SetTransform(n)
	}
	return true
}

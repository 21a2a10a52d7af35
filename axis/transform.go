// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"

	"github.com/aclements/go-axis/notice"
	"github.com/aclements/go-axis/scale"
)

// SetRange makes axis a show the world range r, and its lock group
// the corresponding normalized range. An infinite end of r is
// replaced by the nearest data. The group leaves auto-range mode.
//
// If r is NaN or has no valid part for the group, SetRange returns a
// *RangeError and changes nothing. A valid r may still be adjusted to
// the valid domain, for precision, or to one period of a circular
// axis; each adjustment is reported to the notice sink.
func (g *Graph) SetRange(a AxisID, r scale.Range) error {
	return g.setRange(a, r, false)
}

// SetRangeWithMargin is like SetRange but first grows r by the axis's
// margin factor.
func (g *Graph) SetRangeWithMargin(a AxisID, r scale.Range) error {
	return g.setRange(a, r, true)
}

func (g *Graph) setRange(a AxisID, r scale.Range, margin bool) error {
	ax, err := g.axis(a)
	if err != nil {
		return err
	}
	if r.IsNaN() {
		return &RangeError{Axis: a, Range: r, Err: ErrNaNRange}
	}
	grp := g.groups[ax.group]
	vmap := g.virtual(grp.members)
	vt := vmap[indexOf(grp.members, a)]
	nr, err := g.normalRange(ax, grp, vmap, vt, vt.NormalRange(r), openEnds(r), margin)
	if err != nil {
		return &RangeError{Axis: a, Range: r, Err: err}
	}
	grp.autoRange = false
	g.zoomVirtualRange(ax.group, nr, vmap, true)
	return nil
}

// normalRange validates nr, a range in the virtual normalized space
// vmap of grp, and applies the margin, precision and circle
// adjustments. open marks the ends the caller left unbounded. vt is
// the virtual transform of ax, used in notices.
func (g *Graph) normalRange(ax *axisState, grp *groupState, vmap []scale.Normal, vt scale.Normal, nr scale.Range, open [2]bool, margin bool) (scale.Range, error) {
	src := groupSource(ax.group)
	bound, ok := boundary(vmap)
	if !ok {
		return scale.Empty, ErrInvalidRange
	}
	var nearest func() (scale.Range, bool)
	if open[0] || open[1] {
		nearest = func() (scale.Range, bool) {
			d, _, ok := g.dataExtent(grp.members, vmap, bound)
			return d.Expand(ax.margin), ok
		}
	} else if margin {
		nr = nr.Expand(ax.margin)
	}
	valid, adj, ok := validateNormalRange(nr, bound, open, nearest)
	if !ok {
		return scale.Empty, ErrInvalidRange
	}
	if adj {
		g.notify(notice.RangeAdjusted, src, "range adjusted to value bounds: %v", vt.WorldRange(valid))
	}
	valid, adj = ensurePrecision(valid, bound, vmap)
	if adj {
		g.notify(notice.PrecisionAdjusted, src, "range widened for precision: %v", vt.WorldRange(valid))
	}
	valid, adj = ensureCircleSpan(valid, vmap)
	if adj {
		g.notify(notice.CircleLimited, src, "range limited to one period: %v", vt.WorldRange(valid))
	}
	return valid, nil
}

// virtual returns the virtual transforms of members.
func (g *Graph) virtual(members []AxisID) []scale.Normal {
	ts := make([]scale.Normal, len(members))
	for i, m := range members {
		ts[i] = g.axes[m].normal
	}
	return virtualTransforms(ts)
}

func indexOf(members []AxisID, a AxisID) int {
	for i, m := range members {
		if m == a {
			return i
		}
	}
	return -1
}

// SetKind changes the kind of axis a and resets it to the kind's
// default range. It fails with ErrMultiplyLocked if a shares its lock
// group with other axes.
func (g *Graph) SetKind(a AxisID, kind scale.Kind) error {
	ax, err := g.axis(a)
	if err != nil {
		return err
	}
	if len(g.groups[ax.group].members) > 1 {
		return fmt.Errorf("%w: axis %d", ErrMultiplyLocked, a)
	}
	if kind == ax.normal.Kind() {
		return nil
	}
	ax.setNormal(scale.Default(kind))
	ax.core = nil
	g.pending.Set(uint(ax.group))
	return nil
}

// SetMarginFactor sets the fraction of the span added around the data
// of axis a when it is auto-ranged or its range is set with a margin.
func (g *Graph) SetMarginFactor(a AxisID, f float64) error {
	ax, err := g.axis(a)
	if err != nil {
		return err
	}
	if !validMargin(f) {
		return fmt.Errorf("%w: %g", ErrMargin, f)
	}
	ax.margin = f
	g.pending.Set(uint(ax.group))
	return nil
}

// SetAutoMargin sets whether auto ranges of the group led by axis a
// are widened to the nearest major ticks.
func (g *Graph) SetAutoMargin(a AxisID, on bool) error {
	ax, err := g.axis(a)
	if err != nil {
		return err
	}
	ax.autoMargin = on
	g.pending.Set(uint(ax.group))
	return nil
}

// SetCoreRange pins the world range r on axis a. A pinned range is
// part of every auto range of the group, and while the group is not
// auto-ranging it is re-applied, with margins, whenever the group is
// recomputed. Setting a range or zooming clears it.
func (g *Graph) SetCoreRange(a AxisID, r scale.Range) error {
	ax, err := g.axis(a)
	if err != nil {
		return err
	}
	if r.IsNaN() {
		return &RangeError{Axis: a, Range: r, Err: ErrNaNRange}
	}
	if r.IsInf() {
		return &RangeError{Axis: a, Range: r, Err: ErrInvalidRange}
	}
	ax.core = &r
	g.pending.Set(uint(ax.group))
	return nil
}

// ClearCoreRange removes the pinned range of axis a.
func (g *Graph) ClearCoreRange(a AxisID) error {
	ax, err := g.axis(a)
	if err != nil {
		return err
	}
	if ax.core != nil {
		ax.core = nil
		g.pending.Set(uint(ax.group))
	}
	return nil
}

// CoreRange returns the pinned range of axis a, if any.
func (g *Graph) CoreRange(a AxisID) (scale.Range, bool) {
	ax, err := g.axis(a)
	if err != nil || ax.core == nil {
		return scale.Empty, false
	}
	return *ax.core, true
}

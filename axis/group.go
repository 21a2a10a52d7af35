// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"

	"github.com/aclements/go-axis/notice"
	"github.com/aclements/go-axis/scale"
)

// Group returns the lock group of axis a.
func (g *Graph) Group(a AxisID) (GroupID, error) {
	ax, err := g.axis(a)
	if err != nil {
		return -1, err
	}
	return ax.group, nil
}

// Members returns the axes of group id.
func (g *Graph) Members(id GroupID) []AxisID {
	grp, err := g.group(id)
	if err != nil {
		return nil
	}
	return append([]AxisID(nil), grp.members...)
}

// Primary returns the axis that tick-aligns the auto range of group
// id.
func (g *Graph) Primary(id GroupID) (AxisID, error) {
	grp, err := g.group(id)
	if err != nil {
		return -1, err
	}
	return grp.primary, nil
}

// Owner returns the sole member of a single-axis group.
func (g *Graph) Owner(id GroupID) (AxisID, bool) {
	grp, err := g.group(id)
	if err != nil || len(grp.members) != 1 {
		return -1, false
	}
	return grp.members[0], true
}

// Lock moves every axis of b's group into a's group. Both axes must
// measure the same dimension. The merged group keeps a's settings and
// primary axis.
func (g *Graph) Lock(a, b AxisID) error {
	ax, err := g.axis(a)
	if err != nil {
		return err
	}
	bx, err := g.axis(b)
	if err != nil {
		return err
	}
	if ax.dim != bx.dim {
		return fmt.Errorf("%w: cannot lock %v axis %d with %v axis %d", ErrDimMismatch, ax.dim, a, bx.dim, b)
	}
	if ax.group == bx.group {
		return nil
	}
	dst, old := g.groups[ax.group], bx.group
	for _, m := range g.groups[old].members {
		dst.members = append(dst.members, m)
		g.axes[m].group = ax.group
	}
	g.groups[old] = nil
	g.pending.Clear(uint(old))
	g.pending.Set(uint(ax.group))
	return nil
}

// Unlock moves axis a out of its group into a new group of its own,
// which inherits the old group's auto-range and zoom settings.
func (g *Graph) Unlock(a AxisID) error {
	ax, err := g.axis(a)
	if err != nil {
		return err
	}
	old := g.groups[ax.group]
	if len(old.members) == 1 {
		return nil
	}
	g.leaveGroup(a)
	ax.group = g.newGroup(a, old.autoRange, old.zoomable)
	return nil
}

// leaveGroup removes a from its group, re-electing the primary or
// deleting the group as needed.
func (g *Graph) leaveGroup(a AxisID) {
	id := g.axes[a].group
	grp := g.groups[id]
	i := indexOf(grp.members, a)
	grp.members = append(grp.members[:i], grp.members[i+1:]...)
	if len(grp.members) == 0 {
		g.groups[id] = nil
		g.pending.Clear(uint(id))
		return
	}
	if grp.primary == a {
		grp.primary = grp.members[0]
		for _, m := range grp.members[1:] {
			if m < grp.primary {
				grp.primary = m
			}
		}
	}
	g.pending.Set(uint(id))
}

// SetAutoRange turns auto-range mode of group id on or off. Turning
// it on marks the group pending.
func (g *Graph) SetAutoRange(id GroupID, on bool) error {
	grp, err := g.group(id)
	if err != nil {
		return err
	}
	grp.autoRange = on
	if on {
		g.pending.Set(uint(id))
	}
	return nil
}

// AutoRange reports whether group id is in auto-range mode.
func (g *Graph) AutoRange(id GroupID) bool {
	grp, err := g.group(id)
	return err == nil && grp.autoRange
}

// SetZoomable sets whether ZoomNormalRange may change group id.
func (g *Graph) SetZoomable(id GroupID, on bool) error {
	grp, err := g.group(id)
	if err != nil {
		return err
	}
	grp.zoomable = on
	return nil
}

// ReAutoRange marks group id pending, so the next CalcAutoRange
// recomputes it.
func (g *Graph) ReAutoRange(id GroupID) error {
	if _, err := g.group(id); err != nil {
		return err
	}
	g.pending.Set(uint(id))
	return nil
}

// Pending reports whether group id waits for CalcAutoRange.
func (g *Graph) Pending(id GroupID) bool {
	return g.pending.Test(uint(id))
}

// CalcAutoRange resolves a pending group and reports whether any
// member's range changed. An auto-ranging group gets a range derived
// from its data; any other group with pinned core ranges gets those
// ranges back. A group that is not pending is left alone.
func (g *Graph) CalcAutoRange(id GroupID) bool {
	grp, err := g.group(id)
	if err != nil || !g.pending.Test(uint(id)) {
		return false
	}
	g.pending.Clear(uint(id))
	if grp.autoRange {
		return g.autoRange(id, grp)
	}
	return g.applyCore(id, grp)
}

// autoRange fits the range of grp to the data of its layers. The
// notices describing the fit are only sent if a range changed.
func (g *Graph) autoRange(id GroupID, grp *groupState) bool {
	src := groupSource(id)
	vmap := g.virtual(grp.members)
	bound, ok := boundary(vmap)
	if !ok {
		g.notify(notice.NoValidData, src, "valid domains of the locked axes do not overlap")
		return false
	}
	data, outside, ok := g.dataExtent(grp.members, vmap, bound)
	if !ok {
		if outside {
			g.notify(notice.OutsideBounds, src, "data outside the valid domain ignored")
		}
		g.notify(notice.NoValidData, src, "no valid data; range unchanged")
		return false
	}
	pi := indexOf(grp.members, grp.primary)
	prim := g.axes[grp.primary]
	var pending []func()
	later := func(k notice.Kind, format string, args ...any) {
		pending = append(pending, func() { g.notify(k, src, format, args...) })
	}
	if outside {
		later(notice.OutsideBounds, "data outside the valid domain ignored")
	}
	var r scale.Range
	if data.Len() == 0 {
		// Keep the current span, centered on the point.
		cur := vmap[pi].NormalRange(prim.normal.ValueRange())
		r = cur.Recenter(data.Start, cur.Span())
		later(notice.SingleDataPoint, "single data point %g", vmap[pi].ConvFromNR(data.Start))
	} else {
		r = data.Expand(prim.margin)
	}
	if c, ok := r.Intersect(bound); ok {
		r = c
	}
	r, adj := ensurePrecision(r, bound, vmap)
	if adj {
		later(notice.PrecisionAdjusted, "range widened for precision: %v", vmap[pi].WorldRange(r))
	}
	if prim.autoMargin && len(prim.managers) > 0 {
		w := prim.managers[0].ExpandRangeToTick(vmap[pi].WorldRange(r))
		if e, ok := vmap[pi].NormalRange(w).Intersect(bound); ok && !e.IsNaN() {
			r = e
		}
	}
	r, adj = ensureCircleSpan(r, vmap)
	if adj {
		later(notice.CircleLimited, "range limited to one period: %v", vmap[pi].WorldRange(r))
	}
	changed := g.zoomVirtualRange(id, r, vmap, false)
	grp.autoRange = true
	if changed {
		for _, f := range pending {
			f()
		}
		g.notify(notice.AutoRanged, src, "%v axis range %v", prim.dim, vmap[pi].WorldRange(r))
	}
	notice.Logger().Debug("auto range", "group", id, "normal", r, "changed", changed)
	return changed
}

// applyCore restores the pinned core ranges of grp, if any, with
// margins.
func (g *Graph) applyCore(id GroupID, grp *groupState) bool {
	vmap := g.virtual(grp.members)
	core := scale.Empty
	var owner *axisState
	var vt scale.Normal
	for i, m := range grp.members {
		ax := g.axes[m]
		if ax.core == nil {
			continue
		}
		if owner == nil {
			owner, vt = ax, vmap[i]
		}
		core = core.Union(vmap[i].NormalRange(*ax.core).Sorted())
	}
	if owner == nil {
		return false
	}
	r, err := g.normalRange(owner, grp, vmap, vt, core, [2]bool{}, true)
	if err != nil {
		g.notify(notice.NoValidData, groupSource(id), "pinned range %v is not valid", vt.WorldRange(core))
		return false
	}
	return g.zoomVirtualRange(id, r, vmap, false)
}

// ZoomNormalRange makes group id show r, a range in the normalized
// space of its members. [0, 1] is the current range. The group leaves
// auto-range mode.
func (g *Graph) ZoomNormalRange(id GroupID, r scale.Range) error {
	grp, err := g.group(id)
	if err != nil {
		return err
	}
	if !grp.zoomable {
		return fmt.Errorf("%w: %d", ErrNotZoomable, id)
	}
	if r.IsNaN() {
		return &RangeError{Axis: grp.primary, Range: r, Err: ErrNaNRange}
	}
	if r.Len() == 0 || r.IsInf() {
		return &RangeError{Axis: grp.primary, Range: r, Err: ErrInvalidRange}
	}
	ts := make([]scale.Normal, len(grp.members))
	for i, m := range grp.members {
		ts[i] = g.axes[m].normal
	}
	pi := indexOf(grp.members, grp.primary)
	nr, err := g.normalRange(g.axes[grp.primary], grp, ts, ts[pi], r, [2]bool{}, false)
	if err != nil {
		return &RangeError{Axis: grp.primary, Range: r, Err: err}
	}
	grp.autoRange = false
	g.zoomVirtualRange(id, nr, ts, true)
	return nil
}

// zoomVirtualRange writes vmap[i].Zoom(r) into every member i of group
// id and marks the orthogonal auto-ranging groups pending if anything
// changed. A manual zoom also clears pinned core ranges. It reports
// whether any member changed.
func (g *Graph) zoomVirtualRange(id GroupID, r scale.Range, vmap []scale.Normal, manual bool) bool {
	grp := g.groups[id]
	changed := false
	for i, m := range grp.members {
		ax := g.axes[m]
		if ax.setNormal(vmap[i].Zoom(r)) {
			changed = true
		}
		if manual {
			ax.core = nil
		}
	}
	if changed {
		g.markOrthogonal(id)
	}
	return changed
}

// markOrthogonal marks pending every auto-ranging group that shares a
// layer with group id.
func (g *Graph) markOrthogonal(id GroupID) {
	for _, l := range g.layers {
		if l == nil {
			continue
		}
		for d, a := range l.axes {
			if g.axes[a].group != id {
				continue
			}
			o := g.axes[l.axes[Dim(d).Orth()]].group
			if o != id && g.groups[o].autoRange {
				g.pending.Set(uint(o))
			}
		}
	}
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"fmt"

	"github.com/aclements/go-axis/scale"
)

// A Layer is a source of plotted data attached to one X and one Y
// axis.
type Layer interface {
	// Bounds returns the increasing extent along dim of the data
	// points whose coordinate along dim lies in valid and whose
	// orthogonal coordinate lies in orth. Both ranges are
	// increasing world ranges. outside reports whether any point
	// with its orthogonal coordinate in orth was excluded by
	// valid. ok is false if no point qualified.
	Bounds(dim Dim, valid, orth scale.Range) (extent scale.Range, outside, ok bool)
}

// AddLayer attaches l to axes x and y and marks both of their groups
// for auto-ranging.
func (g *Graph) AddLayer(l Layer, x, y AxisID) (LayerID, error) {
	ax, err := g.axis(x)
	if err != nil {
		return -1, err
	}
	ay, err := g.axis(y)
	if err != nil {
		return -1, err
	}
	if ax.dim != X || ay.dim != Y {
		return -1, fmt.Errorf("%w: layer needs an x and a y axis, got %v and %v", ErrDimMismatch, ax.dim, ay.dim)
	}
	id := LayerID(len(g.layers))
	g.layers = append(g.layers, &layerState{layer: l, axes: [2]AxisID{x, y}})
	g.pending.Set(uint(ax.group))
	g.pending.Set(uint(ay.group))
	return id, nil
}

// RemoveLayer detaches a layer and marks its axes' groups for
// auto-ranging.
func (g *Graph) RemoveLayer(id LayerID) error {
	if id < 0 || int(id) >= len(g.layers) || g.layers[id] == nil {
		return fmt.Errorf("%w: %d", ErrUnknownLayer, id)
	}
	for _, a := range g.layers[id].axes {
		g.pending.Set(uint(g.axes[a].group))
	}
	g.layers[id] = nil
	return nil
}

// orthRange returns the world interval along the orthogonal axis of l
// that limits which of l's points count for the dim axis. While the
// orthogonal group is still auto-ranging, every valid value counts.
func (g *Graph) orthRange(l *layerState, dim Dim) scale.Range {
	o := g.axes[l.axes[dim.Orth()]]
	if g.groups[o.group].autoRange {
		return o.normal.Kind().Boundary()
	}
	return o.normal.ValueRange().Sorted()
}

// dataExtent returns the union, in the virtual normalized space vmap,
// of the data of every layer on the members, clipped to the
// normalized bound. Pinned core ranges are included too. outside
// reports whether any data fell outside bound.
func (g *Graph) dataExtent(members []AxisID, vmap []scale.Normal, bound scale.Range) (ext scale.Range, outside, ok bool) {
	ext = scale.Empty
	add := func(r scale.Range) {
		ext = ext.Union(r.Sorted())
		ok = true
	}
	for i, a := range members {
		ax := g.axes[a]
		t := vmap[i]
		valid, vok := t.WorldRange(bound).Sorted().Intersect(t.Kind().Boundary())
		if !vok {
			continue
		}
		for _, l := range g.layers {
			if l == nil || l.axes[ax.dim] != a {
				continue
			}
			e, out, lok := l.layer.Bounds(ax.dim, valid, g.orthRange(l, ax.dim))
			outside = outside || out
			if lok {
				add(t.NormalRange(e))
			}
		}
		if ax.core != nil {
			if c, cok := ax.core.Sorted().Intersect(valid); cok {
				add(t.NormalRange(c))
			}
		}
	}
	return ext, outside, ok
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"github.com/aclements/go-axis/notice"
)

// A Relayouter recomputes the geometry that depends on tick labels,
// such as axis thickness, after the tick managers have recomputed.
// It reports whether anything the tick managers read, like an axis
// length, changed.
type Relayouter interface {
	Relayout(g *Graph) bool
}

// RelayoutFunc adapts a function to a Relayouter.
type RelayoutFunc func(g *Graph) bool

func (f RelayoutFunc) Relayout(g *Graph) bool { return f(g) }

// A Report summarizes one Commit.
type Report struct {
	// Iterations is the number of passes made.
	Iterations int
	// RangeChanges counts the auto-range passes that changed a
	// group.
	RangeChanges int
	// Recomputes counts tick manager recomputations.
	Recomputes int
	// Converged is false if Commit stopped at its iteration cap
	// with work left.
	Converged bool
}

// Commit brings every range and tick layout up to date. Each pass
// resolves the pending groups, recomputes the dirty tick managers and
// then calls rl, which may be nil. Because auto-ranging one group can
// make the orthogonal groups pending, passes repeat until one finds
// nothing to do or the iteration cap is reached. Hitting the cap is
// reported as a notice.NotConverged notice, not an error.
func (g *Graph) Commit(rl Relayouter) Report {
	var rep Report
	for rep.Iterations < g.maxIter {
		rep.Iterations++
		work := false
		for i, ok := g.pending.NextSet(0); ok; i, ok = g.pending.NextSet(i + 1) {
			work = true
			if g.CalcAutoRange(GroupID(i)) {
				rep.RangeChanges++
			}
		}
		for _, ax := range g.axes {
			if ax == nil {
				continue
			}
			for _, m := range ax.managers {
				if m.Recompute() {
					work = true
					rep.Recomputes++
				}
			}
		}
		if rl != nil && rl.Relayout(g) {
			work = true
		}
		if !work && g.pending.None() {
			rep.Converged = true
			return rep
		}
	}
	g.notify(notice.NotConverged, "", "layout did not converge after %d passes", rep.Iterations)
	return rep
}

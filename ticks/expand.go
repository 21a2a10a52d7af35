// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import "github.com/aclements/go-axis/scale"

// ExpandRangeToTick returns the smallest world range containing r
// whose ends fall on major ticks, using the tick count the density
// search would pick for that range. The direction of r is kept.
// It does not change m.
func (m *Manager) ExpandRangeToTick(r scale.Range) scale.Range {
	if r.IsNaN() || r.Len() == 0 {
		return r
	}
	calc := m.algo.Calculator
	disp := scale.ForwardRange(m.tt, r)
	count, floor := m.tickNumber, m.floor()
	var e scale.Range
	for {
		e = calc.Expand(disp, count)
		if len(m.instances) == 0 || !m.autoAdjust {
			break
		}
		tmp, err := scale.NewNormal(m.normal.Kind(), scale.InverseRange(m.tt, e))
		if err != nil {
			break
		}
		res := calc.Ticks(e, count, m.minorNumber)
		d := m.labelDensity(tmp, m.inverse(res.Major), m.labelTexts(res), 1)
		if d <= 1 || count <= floor {
			break
		}
		count = nextTickNumber(count, d, floor)
	}
	return scale.InverseRange(m.tt, e).Orient(r)
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/vec"

	"github.com/aclements/go-axis/notice"
	"github.com/aclements/go-axis/scale"
)

const (
	// labelGap is the empty space required between adjacent
	// labels, in output units.
	labelGap = 4

	// maxStalls is how many font shrink steps may fail to lower
	// the density before giving up.
	maxStalls = 10
	// maxShrinks bounds the font shrink loop outright.
	maxShrinks = 64
)

// labelDensity returns the worst ratio, over all instances and adjacent
// label pairs, of the space two labels need to the space between
// their ticks. Labels fit when the density is at most 1.
func (m *Manager) labelDensity(n scale.Mapper, world []float64, texts []string, fontScale float64) float64 {
	if len(world) < 2 {
		return 0
	}
	pos := vec.Map(n.ConvToNR, world)
	d := 0.0
	for _, inst := range m.instances {
		length := math.Abs(inst.Length())
		if length == 0 {
			continue
		}
		out := scale.NewOutputScale(0, length)
		out.Unclamp()
		font := inst.Font().Scaled(fontScale)
		along := inst.OrientationMatches()
		var prevPx, prevHalf float64
		for i, t := range texts {
			e := m.measurer.Measure(t, font)
			half := e.Height / 2
			if along {
				half = e.Width / 2
			}
			px, _ := out.Of(pos[i])
			if i > 0 {
				dist := math.Abs(px - prevPx)
				need := prevHalf + half + labelGap
				if dist == 0 {
					return math.Inf(1)
				}
				d = math.Max(d, need/dist)
			}
			prevPx, prevHalf = px, half
		}
	}
	return d
}

// nextTickNumber returns the tick count to try after n produced
// density d, never below floor.
func nextTickNumber(n int, d float64, floor int) int {
	next := n - 1
	if f := float64(n) / d; f < float64(next) {
		next = int(f)
	}
	if next < floor {
		next = floor
	}
	return next
}

func (m *Manager) floor() int {
	if m.tickNumber < MinTickNumber {
		return m.tickNumber
	}
	return MinTickNumber
}

// search lowers the tick count from the preferred number until the
// labels fit at full font size on every instance of an axis showing
// n, or the minimum count is reached.
func (m *Manager) search(n scale.Normal, disp scale.Range) (Result, int) {
	calc := m.algo.Calculator
	count, floor := m.tickNumber, m.floor()
	for {
		res := calc.Ticks(disp, count, m.minorNumber)
		d := m.labelDensity(n, m.inverse(res.Major), m.labelTexts(res), 1)
		notice.Logger().Debug("tick density", "source", m.name, "ticks", count, "density", d)
		if d <= 1 || count <= floor {
			return res, count
		}
		count = nextTickNumber(count, d, floor)
	}
}

// fitFont shrinks the label font until the current labels fit, or
// the density stops improving.
func (m *Manager) fitFont() {
	m.fontScale = 1
	d := m.labelDensity(m.normal, m.values, m.texts, 1)
	if d <= 1 {
		m.density = d
		return
	}
	best, stalls := d, 0
	for i := 0; i < maxShrinks && d > 1 && stalls < maxStalls; i++ {
		m.fontScale /= math.Max(d, 1.1)
		d = m.labelDensity(m.normal, m.values, m.texts, m.fontScale)
		if d < best {
			best = d
		} else {
			stalls++
		}
	}
	m.density = d
	msg := fmt.Sprintf("labels scaled to %.3g of requested size", m.fontScale)
	if d > 1 {
		msg += fmt.Sprintf(", still overlapping (density %.3g)", d)
	}
	m.sink.Notice(notice.Notice{Kind: notice.FontShrunk, Source: m.name, Message: msg})
}

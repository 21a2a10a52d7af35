// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"

	"github.com/aclements/go-axis/scale"
	"github.com/aclements/go-axis/ticks"
)

type TicksFormat struct {
	tickLen, minorTickLen, textSep float64
	tickColor, labelColor          color.Color
}

var defaultTicksFormat = TicksFormat{
	tickLen:      6,
	minorTickLen: 3,
	textSep:      3,
	tickColor:    color.Black,
	labelColor:   color.Black,
}

// position maps world value v through n and out. ok is false if v
// falls outside the axis.
func position(n scale.Normal, out scale.OutputScale, v float64) (float64, bool) {
	return out.Of(n.ConvToNR(v))
}

// HTicks draws the ticks and labels of a horizontal axis at height y,
// pointing down.
func (f *TicksFormat) HTicks(svg *SVG, m *ticks.Manager, inst ticks.Instance, x scale.OutputScale, y float64) {
	x.Crop()
	n := m.Transform()

	svg.SetStroke(f.tickColor)
	for _, v := range m.Values() {
		if px, ok := position(n, x, v); ok {
			svg.MoveTo(px, y).LineToRel(0, f.tickLen)
		}
	}
	for _, v := range m.MinorValues() {
		if px, ok := position(n, x, v); ok {
			svg.MoveTo(px, y).LineToRel(0, f.minorTickLen)
		}
	}
	svg.Stroke()
	svg.SetStroke(nil)

	svg.SetFill(f.labelColor)
	for i, l := range m.Labels(inst) {
		if px, ok := position(n, x, m.Values()[i]); ok {
			opts := TextOpts{Anchor: AnchorMiddle, Baseline: BaselineHanging, FontSize: l.Font.Size}
			svg.Text(px, y+f.tickLen+f.textSep, opts, l.Text)
		}
	}
	svg.SetFill(nil)
}

// VTicks draws the ticks and labels of a vertical axis at x, pointing
// left.
func (f *TicksFormat) VTicks(svg *SVG, m *ticks.Manager, inst ticks.Instance, y scale.OutputScale, x float64) {
	y.Crop()
	n := m.Transform()

	svg.SetStroke(f.tickColor)
	for _, v := range m.Values() {
		if py, ok := position(n, y, v); ok {
			svg.MoveTo(x, py).LineToRel(-f.tickLen, 0)
		}
	}
	for _, v := range m.MinorValues() {
		if py, ok := position(n, y, v); ok {
			svg.MoveTo(x, py).LineToRel(-f.minorTickLen, 0)
		}
	}
	svg.Stroke()
	svg.SetStroke(nil)

	svg.SetFill(f.labelColor)
	for i, l := range m.Labels(inst) {
		if py, ok := position(n, y, m.Values()[i]); ok {
			opts := TextOpts{Anchor: AnchorEnd, Baseline: BaselineMiddle, FontSize: l.Font.Size}
			svg.Text(x-f.tickLen-f.textSep, py, opts, l.Text)
		}
	}
	svg.SetFill(nil)
}

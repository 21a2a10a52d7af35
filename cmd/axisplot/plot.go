// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"golang.org/x/image/colornames"

	"github.com/aclements/go-axis/axis"
	"github.com/aclements/go-axis/dataset"
	"github.com/aclements/go-axis/label"
	"github.com/aclements/go-axis/notice"
	"github.com/aclements/go-axis/scale"
	"github.com/aclements/go-axis/ticks"
)

// plotConfig holds everything the command line can set.
type plotConfig struct {
	width, height float64
	fontSize      float64
	measurer      label.Measurer
	sink          notice.Sink

	xKind, yKind   scale.Kind
	xRange, yRange *scale.Range
	unlock         bool
	tickNumber     int
	minorNumber    int
	format         label.Formatter
	colors         []color.Color
}

const (
	pad     = 10
	axisGap = 8
)

var defaultColors = []color.Color{
	colornames.Steelblue,
	colornames.Firebrick,
	colornames.Seagreen,
	colornames.Darkorange,
	colornames.Mediumpurple,
}

// axisView is one drawn axis. It is the ticks.Instance of its
// manager.
type axisView struct {
	id         axis.AxisID
	m          *ticks.Manager
	horizontal bool
	length     float64
	font       label.Font
}

func (v *axisView) Length() float64          { return v.length }
func (v *axisView) Font() label.Font         { return v.font }
func (v *axisView) OrientationMatches() bool { return v.horizontal }

type plot struct {
	cfg    plotConfig
	g      *axis.Graph
	x      *axisView
	ys     []*axisView
	series []*dataset.Series

	// Plot area.
	left, top, right, bottom float64
}

func newPlot(series []*dataset.Series, cfg plotConfig) (*plot, error) {
	if len(series) == 0 {
		return nil, dataset.ErrNoData
	}
	if cfg.measurer == nil {
		cfg.measurer = label.DefaultMonospace
	}
	if len(cfg.colors) == 0 {
		cfg.colors = defaultColors
	}
	opts := []axis.Option{axis.WithMeasurer(cfg.measurer)}
	if cfg.sink != nil {
		opts = append(opts, axis.WithSink(cfg.sink))
	}
	p := &plot{cfg: cfg, g: axis.New(opts...), series: series}

	font := label.Font{Size: cfg.fontSize}
	var err error
	p.x, err = p.newView(axis.X, cfg.xKind, true, font)
	if err != nil {
		return nil, err
	}
	for _, s := range series {
		y, err := p.newView(axis.Y, cfg.yKind, false, font)
		if err != nil {
			return nil, err
		}
		if len(p.ys) > 0 && !cfg.unlock {
			if err := p.g.Lock(p.ys[0].id, y.id); err != nil {
				return nil, err
			}
		}
		p.ys = append(p.ys, y)
		if _, err := p.g.AddLayer(s, p.x.id, y.id); err != nil {
			return nil, err
		}
	}

	if cfg.xRange != nil {
		if err := p.g.SetRange(p.x.id, *cfg.xRange); err != nil {
			return nil, fmt.Errorf("x range: %w", err)
		}
	}
	if cfg.yRange != nil {
		for _, y := range p.ys {
			if err := p.g.SetRange(y.id, *cfg.yRange); err != nil {
				return nil, fmt.Errorf("y range: %w", err)
			}
		}
	}
	return p, nil
}

func (p *plot) newView(dim axis.Dim, kind scale.Kind, horizontal bool, font label.Font) (*axisView, error) {
	id := p.g.NewAxis(dim, kind)
	var topts []ticks.Option
	if p.cfg.tickNumber > 0 {
		topts = append(topts, ticks.WithTickNumber(p.cfg.tickNumber))
	}
	m, err := p.g.NewTickManager(id, topts...)
	if err != nil {
		return nil, err
	}
	m.SetMinorNumber(p.cfg.minorNumber)
	if p.cfg.format != nil {
		m.SetFormat(p.cfg.format)
	}
	v := &axisView{id: id, m: m, horizontal: horizontal, font: font}
	m.Attach(v)
	return v, nil
}

// thickness returns the space an axis needs beside the plot area for
// its ticks and labels.
func (p *plot) thickness(v *axisView) float64 {
	f := defaultTicksFormat
	size := 0.0
	for _, l := range v.m.Labels(v) {
		e := p.cfg.measurer.Measure(l.Text, l.Font)
		if v.horizontal {
			size = math.Max(size, e.Height)
		} else {
			size = math.Max(size, e.Width)
		}
	}
	return f.tickLen + f.textSep + size
}

// Relayout fits the plot area around the current labels and updates
// the axis lengths. It implements axis.Relayouter.
func (p *plot) Relayout(*axis.Graph) bool {
	left := float64(pad)
	for _, y := range p.ys {
		left += p.thickness(y) + axisGap
	}
	p.left, p.top = left, pad
	p.right = p.cfg.width - pad
	p.bottom = p.cfg.height - pad - p.thickness(p.x)

	w := math.Max(p.right-p.left, 1)
	h := math.Max(p.bottom-p.top, 1)
	changed := w != p.x.length
	p.x.length = w
	for _, y := range p.ys {
		changed = changed || h != y.length
		y.length = h
	}
	return changed
}

// layout runs the range and tick engine to a fixed point.
func (p *plot) layout() axis.Report {
	p.Relayout(p.g)
	return p.g.Commit(p)
}

func (p *plot) render(w io.Writer) error {
	cfg := p.cfg
	svg := NewSVG(w, cfg.width, cfg.height)
	f := defaultTicksFormat

	svg.SetStroke(color.Black)
	svg.SetLineWidth(1)
	svg.Rect(p.left, p.top, p.right-p.left, p.bottom-p.top).Stroke()

	xs := scale.NewOutputScale(p.left, p.right)
	f.HTicks(svg, p.x.m, p.x, xs, p.bottom)

	ys := scale.NewOutputScale(p.bottom, p.top)
	ax := p.left
	for i, y := range p.ys {
		if i > 0 {
			svg.SetStroke(color.Black)
			svg.MoveTo(ax, p.top).LineToRel(0, p.bottom-p.top).Stroke()
		}
		f.VTicks(svg, y.m, y, ys, ax)
		ax -= p.thickness(y) + axisGap
	}

	svg.Rect(p.left, p.top, p.right-p.left, p.bottom-p.top).Clip()
	svg.SetLineWidth(1.5)
	xs.Unclamp()
	ys.Unclamp()
	xn := p.x.m.Transform()
	for i, s := range p.series {
		yn := p.ys[i].m.Transform()
		svg.SetStroke(cfg.colors[i%len(cfg.colors)])
		pen := false
		for j := range s.X {
			px, _ := xs.Of(xn.ConvToNR(s.X[j]))
			py, _ := ys.Of(yn.ConvToNR(s.Y[j]))
			if !finite(px) || !finite(py) {
				pen = false
				continue
			}
			if pen {
				svg.LineTo(px, py)
			} else {
				svg.MoveTo(px, py)
				pen = true
			}
		}
		svg.Stroke()
	}
	svg.ResetClip()
	return svg.Done()
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ticks computes tick values and labels for one axis range and
// fits them to every rendered instance of that axis.
//
// A Manager caches its results and recomputes them only when an input
// has changed since the last call to Recompute. In fully automatic
// mode it searches for the largest tick count whose labels do not
// overlap on any instance, and shrinks the label font when even the
// minimum count is too crowded.
package ticks

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/aclements/go-axis/label"
	"github.com/aclements/go-axis/notice"
	"github.com/aclements/go-axis/scale"
)

const (
	// DefaultTickNumber is the preferred major tick count.
	DefaultTickNumber = 11
	// MinTickNumber is the fewest ticks the density search will
	// drop to before shrinking the font instead.
	MinTickNumber = 4
)

// An Instance is one rendered copy of an axis.
type Instance interface {
	// Length returns the length of the axis in output units.
	Length() float64
	// Font returns the requested tick label font.
	Font() label.Font
	// OrientationMatches reports whether labels run along the
	// axis, so that their width rather than their height is what
	// collides.
	OrientationMatches() bool
}

type instanceStatus struct {
	length      float64
	font        label.Font
	orientation bool
}

// Dirty flags.
const (
	dirtyRange uint = iota
	dirtyTickTransform
	dirtyAlgorithm
	dirtyValues
	dirtyLabels
	dirtyAxes
)

// A Manager owns the tick layout of one axis.
type Manager struct {
	name       string
	sink       notice.Sink
	measurer   label.Measurer
	normal     scale.Normal
	tt         scale.TickTransform
	algo       Algorithm
	customAlgo bool

	tickNumber  int
	minorNumber int
	autoAdjust  bool
	interval    float64 // 0 means automatic
	offset      float64
	fixed       []float64 // nil means automatic
	format      label.Formatter

	instances []Instance
	status    map[Instance]instanceStatus

	dirty bitset.BitSet

	// Results.
	res       Result
	values    []float64
	minors    []float64
	texts     []string
	number    int
	fontScale float64
	density   float64
}

// NewManager returns a Manager for the axis currently shown by n.
func NewManager(n scale.Normal, opts ...Option) *Manager {
	m := &Manager{
		sink:        notice.Discard,
		measurer:    label.DefaultMonospace,
		normal:      n,
		algo:        DefaultAlgorithm(n.Kind()),
		tickNumber:  DefaultTickNumber,
		minorNumber: -1,
		autoAdjust:  true,
		status:      make(map[Instance]instanceStatus),
		fontScale:   1,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.dirty.Set(dirtyRange)
	return m
}

// SetTransform sets the normalized transform of the axis. A change of
// kind resets the tick algorithm unless one was set explicitly.
func (m *Manager) SetTransform(n scale.Normal) {
	if n.Equal(m.normal) {
		return
	}
	if n.Kind() != m.normal.Kind() && !m.customAlgo {
		m.algo = DefaultAlgorithm(n.Kind())
		m.dirty.Set(dirtyAlgorithm)
	}
	m.normal = n
	m.dirty.Set(dirtyRange)
}

// Transform returns the transform ticks are computed for.
func (m *Manager) Transform() scale.Normal {
	return m.normal
}

// SetTickTransform sets the mapping from world values to the values
// shown in labels. Nil is the identity.
func (m *Manager) SetTickTransform(t scale.TickTransform) {
	m.tt = t
	m.dirty.Set(dirtyTickTransform)
}

// SetAlgorithm replaces the tick algorithm.
func (m *Manager) SetAlgorithm(a Algorithm) {
	m.algo = a
	m.customAlgo = true
	m.dirty.Set(dirtyAlgorithm)
}

// SetTickNumber sets the preferred number of major ticks.
func (m *Manager) SetTickNumber(n int) error {
	if n < 2 {
		return fmt.Errorf("%w: %d", ErrTickNumber, n)
	}
	if n != m.tickNumber {
		m.tickNumber = n
		m.dirty.Set(dirtyValues)
	}
	return nil
}

// SetMinorNumber sets how many minor ticks divide each major
// interval. A negative n lets the algorithm choose.
func (m *Manager) SetMinorNumber(n int) {
	if n != m.minorNumber {
		m.minorNumber = n
		m.dirty.Set(dirtyValues)
	}
}

// SetAutoAdjustNumber enables or disables the density search. When
// disabled, exactly the preferred tick number is requested.
func (m *Manager) SetAutoAdjustNumber(on bool) {
	if on != m.autoAdjust {
		m.autoAdjust = on
		m.dirty.Set(dirtyValues)
	}
}

// SetInterval fixes the spacing of major ticks in display units. An
// interval of 0 restores automatic spacing.
func (m *Manager) SetInterval(interval float64) error {
	if interval < 0 {
		return fmt.Errorf("%w: %g", ErrNegativeInterval, interval)
	}
	m.interval = interval
	m.dirty.Set(dirtyValues)
	return nil
}

// SetOffset sets the value that fixed-interval ticks are aligned to.
func (m *Manager) SetOffset(offset float64) {
	m.offset = offset
	if m.interval > 0 {
		m.dirty.Set(dirtyValues)
	}
}

// SetValues fixes the major tick values, in display units. Nil
// restores automatic values.
func (m *Manager) SetValues(values []float64) {
	if values == nil {
		m.fixed = nil
	} else {
		m.fixed = append([]float64{}, values...)
	}
	m.dirty.Set(dirtyValues)
}

// SetFormat overrides the algorithm's label formatter. Nil restores
// it.
func (m *Manager) SetFormat(f label.Formatter) {
	m.format = f
	m.dirty.Set(dirtyLabels)
}

// Attach adds a rendered instance of the axis.
func (m *Manager) Attach(inst Instance) {
	if _, ok := m.status[inst]; ok {
		return
	}
	m.instances = append(m.instances, inst)
	m.status[inst] = instanceStatus{}
	m.dirty.Set(dirtyAxes)
}

// Detach removes a rendered instance.
func (m *Manager) Detach(inst Instance) {
	if _, ok := m.status[inst]; !ok {
		return
	}
	delete(m.status, inst)
	for i, x := range m.instances {
		if x == inst {
			m.instances = append(m.instances[:i], m.instances[i+1:]...)
			break
		}
	}
	m.dirty.Set(dirtyAxes)
}

// Dirty reports whether Recompute has work to do.
func (m *Manager) Dirty() bool {
	m.poll()
	return m.dirty.Any()
}

// poll marks the manager dirty if any instance changed length, font
// or orientation.
func (m *Manager) poll() {
	for _, inst := range m.instances {
		st := instanceStatus{inst.Length(), inst.Font(), inst.OrientationMatches()}
		if st != m.status[inst] {
			m.status[inst] = st
			m.dirty.Set(dirtyAxes)
		}
	}
}

// Recompute brings the results up to date and reports whether
// anything was recomputed.
func (m *Manager) Recompute() bool {
	m.poll()
	if m.dirty.None() {
		return false
	}
	values := m.dirty.Test(dirtyRange) || m.dirty.Test(dirtyTickTransform) ||
		m.dirty.Test(dirtyAlgorithm) || m.dirty.Test(dirtyValues)
	if m.dirty.Test(dirtyAxes) && m.searching() {
		values = true
	}
	switch {
	case values:
		m.computeValues()
	case m.dirty.Test(dirtyLabels):
		m.texts = m.labelTexts(m.res)
	}
	m.fitFont()
	m.dirty.ClearAll()
	return true
}

// searching reports whether the tick count depends on the instances.
func (m *Manager) searching() bool {
	return m.fixed == nil && m.interval == 0 && m.autoAdjust
}

func (m *Manager) computeValues() {
	disp := scale.ForwardRange(m.tt, m.normal.ValueRange())
	calc := m.algo.Calculator
	n := m.tickNumber
	var res Result
	switch {
	case m.fixed != nil:
		res = m.fixedResult(disp)
	case m.interval > 0:
		res = calc.TicksByInterval(disp, m.interval, m.offset, m.minorNumber)
	case !m.autoAdjust:
		res = calc.Ticks(disp, n, m.minorNumber)
	default:
		res, n = m.search(m.normal, disp)
	}
	m.res = res
	m.number = n
	m.values = m.inverse(res.Major)
	m.minors = m.inverse(res.Minor)
	m.texts = m.labelTexts(res)
}

func (m *Manager) fixedResult(disp scale.Range) Result {
	var major []float64
	for _, v := range m.fixed {
		if disp.Contains(v) {
			major = append(major, v)
		}
	}
	return Result{Major: major, Interval: interval(major)}
}

func (m *Manager) inverse(ds []float64) []float64 {
	if len(ds) == 0 {
		return nil
	}
	ws := make([]float64, len(ds))
	for i, d := range ds {
		ws[i] = d
		if m.tt != nil {
			ws[i] = m.tt.Inverse(d)
		}
	}
	return ws
}

// labelTexts returns the label text for res. Circular values are shown
// in their canonical period.
func (m *Manager) labelTexts(res Result) []string {
	vals := res.Major
	kind := m.normal.Kind()
	if _, ok := kind.CircularRange(); ok {
		vals = make([]float64, len(res.Major))
		for i, d := range res.Major {
			w := d
			if m.tt != nil {
				w = m.tt.Inverse(d)
			}
			w = kind.Canonical(w)
			if m.tt != nil {
				w = m.tt.Forward(w)
			}
			vals[i] = w
		}
	}
	f := m.format
	if f == nil {
		f = m.algo.Format
	}
	if f == nil {
		f = label.Auto{}
	}
	return f.Format(vals, res.Interval)
}

// Values returns the world positions of the major ticks.
func (m *Manager) Values() []float64 { return m.values }

// MinorValues returns the world positions of the minor ticks.
func (m *Manager) MinorValues() []float64 { return m.minors }

// DisplayValues returns the major tick values in display units.
func (m *Manager) DisplayValues() []float64 { return m.res.Major }

// Interval returns the major tick spacing in display units, or 0 if
// the ticks are not evenly spaced.
func (m *Manager) Interval() float64 { return m.res.Interval }

// TickNumber returns the tick count the layout was computed for.
func (m *Manager) TickNumber() int { return m.number }

// FontScale returns the factor applied to every instance's font.
func (m *Manager) FontScale() float64 { return m.fontScale }

// Density returns the worst label density over all instances. A
// density above 1 means labels overlap.
func (m *Manager) Density() float64 { return m.density }

// Labels returns the labels to draw on inst, in the same order as
// Values.
func (m *Manager) Labels(inst Instance) []label.Model {
	font := label.Font{}
	if inst != nil {
		font = inst.Font().Scaled(m.fontScale)
	}
	models := make([]label.Model, len(m.texts))
	for i, t := range m.texts {
		models[i] = label.Model{Text: t, Font: font}
	}
	return models
}

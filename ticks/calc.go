// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"github.com/aclements/go-axis/label"
	"github.com/aclements/go-axis/scale"
)

// Result is one tick layout, in the display space of the axis.
type Result struct {
	// Major holds the labeled tick values in increasing order.
	Major []float64
	// Minor holds the unlabeled tick values between them.
	Minor []float64
	// Interval is the spacing between major ticks, or 0 if the
	// ticks are not evenly spaced.
	Interval float64
}

// A Calculator computes "nice" tick values for an interval. Ranges
// passed to a Calculator may be inverted; results are always in
// increasing order.
type Calculator interface {
	// Ticks returns at most n major ticks covering r. If minors
	// is non-negative, each major interval is divided into
	// minors+1 parts; otherwise the calculator picks.
	Ticks(r scale.Range, n, minors int) Result

	// TicksByInterval returns the major ticks offset+k*interval
	// that lie in r.
	TicksByInterval(r scale.Range, interval, offset float64, minors int) Result

	// Expand returns the smallest range containing r whose ends
	// are major ticks of an n-tick layout, oriented like r.
	Expand(r scale.Range, n int) scale.Range
}

// An Algorithm is the tick strategy of an axis kind.
type Algorithm struct {
	Name       string
	Calculator Calculator
	Format     label.Formatter
}

// DefaultAlgorithm returns the strategy for kind k.
func DefaultAlgorithm(k scale.Kind) Algorithm {
	switch k.Type {
	case scale.TypeLog:
		return Algorithm{"log", Log{}, label.Compact{}}
	case scale.TypeCircular:
		return Algorithm{"circular", Linear{}, label.Auto{}}
	}
	return Algorithm{"linear", Linear{}, label.Auto{}}
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset provides plot layers backed by columns of numbers,
// and loaders that read them from CSV and XLSX tables.
package dataset

import (
	"fmt"
	"math"

	"github.com/aclements/go-axis/axis"
	"github.com/aclements/go-axis/scale"
)

// A Series is a list of (X, Y) points. NaN coordinates mark missing
// values and are ignored. A Series is an axis.Layer.
type Series struct {
	Name string
	X, Y []float64
}

var _ axis.Layer = (*Series)(nil)

// NewSeries returns a Series of the given points. xs and ys must have
// the same length.
func NewSeries(name string, xs, ys []float64) (*Series, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("series %q: %d x values but %d y values", name, len(xs), len(ys))
	}
	return &Series{Name: name, X: xs, Y: ys}, nil
}

func (s *Series) Len() int {
	return len(s.X)
}

func (s *Series) String() string {
	return fmt.Sprintf("%s (%d points)", s.Name, s.Len())
}

// Bounds implements axis.Layer.
func (s *Series) Bounds(dim axis.Dim, valid, orth scale.Range) (extent scale.Range, outside, ok bool) {
	cs, os := s.X, s.Y
	if dim == axis.Y {
		cs, os = s.Y, s.X
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, c := range cs {
		o := os[i]
		if math.IsNaN(c) || math.IsNaN(o) || !orth.Contains(o) {
			continue
		}
		if math.IsInf(c, 0) || !valid.Contains(c) {
			outside = true
			continue
		}
		lo = math.Min(lo, c)
		hi = math.Max(hi, c)
	}
	if lo > hi {
		return scale.Empty, outside, false
	}
	return scale.Range{Start: lo, End: hi}, outside, true
}

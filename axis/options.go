// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"github.com/aclements/go-axis/label"
	"github.com/aclements/go-axis/notice"
)

const (
	// DefaultMarginFactor is the fraction of the data span added
	// around auto-ranged data, split equally between both ends.
	DefaultMarginFactor = 1.0 / 32

	// DefaultMaxIterations caps the passes of Commit.
	DefaultMaxIterations = 16
)

// An Option configures a Graph.
type Option func(*Graph)

// WithSink sets where notices go. The default is notice.LogSink.
func WithSink(s notice.Sink) Option {
	return func(g *Graph) {
		if s != nil {
			g.sink = s
		}
	}
}

// WithMaxIterations caps the passes Commit makes before giving up.
func WithMaxIterations(n int) Option {
	return func(g *Graph) {
		if n > 0 {
			g.maxIter = n
		}
	}
}

// WithMeasurer sets the label measurer of tick managers created by
// the graph.
func WithMeasurer(m label.Measurer) Option {
	return func(g *Graph) {
		g.measurer = m
	}
}

// WithMarginFactor sets the margin factor of new axes.
func WithMarginFactor(f float64) Option {
	return func(g *Graph) {
		if validMargin(f) {
			g.margin = f
		}
	}
}

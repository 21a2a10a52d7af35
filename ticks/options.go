// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"github.com/aclements/go-axis/label"
	"github.com/aclements/go-axis/notice"
)

// An Option configures a Manager.
type Option func(*Manager)

// WithMeasurer sets how label extents are measured. The default is
// label.DefaultMonospace.
func WithMeasurer(m label.Measurer) Option {
	return func(t *Manager) {
		if m != nil {
			t.measurer = m
		}
	}
}

// WithAlgorithm replaces the kind's default tick algorithm. The
// algorithm is kept across kind changes.
func WithAlgorithm(a Algorithm) Option {
	return func(t *Manager) {
		t.algo = a
		t.customAlgo = true
	}
}

// WithTickNumber sets the preferred number of major ticks. Values
// below 2 are ignored.
func WithTickNumber(n int) Option {
	return func(t *Manager) {
		if n >= 2 {
			t.tickNumber = n
		}
	}
}

// WithSink sets where FontShrunk notices go.
func WithSink(s notice.Sink) Option {
	return func(t *Manager) {
		if s != nil {
			t.sink = s
		}
	}
}

// WithName sets the source name on the manager's notices.
func WithName(name string) Option {
	return func(t *Manager) {
		t.name = name
	}
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package notice carries non-fatal advisories out of the axis and
// tick engines. A Notice never changes control flow: the engine has
// already adjusted its result when it emits one.
package notice

import (
	"context"
	"fmt"
	"log/slog"
)

// Kind classifies a Notice.
type Kind int

const (
	// RangeAdjusted: a requested range was clipped to the valid
	// domain of the axis.
	RangeAdjusted Kind = iota
	// PrecisionAdjusted: a range was widened so world values keep
	// enough significant bits.
	PrecisionAdjusted
	// CircleLimited: a range on a circular axis was capped at one
	// period.
	CircleLimited
	// NoValidData: auto-range found no data inside the valid
	// domain and left the ranges unchanged.
	NoValidData
	// OutsideBounds: some data fell outside the valid domain and
	// was ignored by auto-range.
	OutsideBounds
	// SingleDataPoint: auto-range found only one distinct valid
	// value and centered the axis on it.
	SingleDataPoint
	// AutoRanged: a lock group committed a new auto range.
	AutoRanged
	// FontShrunk: tick labels did not fit at the requested font
	// and were drawn smaller.
	FontShrunk
	// NotConverged: the commit cycle hit its iteration cap.
	NotConverged
)

var kindNames = [...]string{
	RangeAdjusted:     "range adjusted",
	PrecisionAdjusted: "precision adjusted",
	CircleLimited:     "circle limited",
	NoValidData:       "no valid data",
	OutsideBounds:     "data outside bounds",
	SingleDataPoint:   "single data point",
	AutoRanged:        "auto range",
	FontShrunk:        "font shrunk",
	NotConverged:      "not converged",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// level is the slog level a Kind is logged at by LogSink.
func (k Kind) level() slog.Level {
	switch k {
	case NoValidData, NotConverged:
		return slog.LevelWarn
	case AutoRanged:
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// A Notice is a human-readable advisory.
type Notice struct {
	Kind Kind
	// Source names the object the notice is about, such as
	// "axis 3" or "group 1".
	Source  string
	Message string
}

func (n Notice) String() string {
	if n.Source == "" {
		return fmt.Sprintf("%s: %s", n.Kind, n.Message)
	}
	return fmt.Sprintf("%s: %s: %s", n.Source, n.Kind, n.Message)
}

// A Sink receives notices. Implementations must not call back into
// the engine that emitted the notice.
type Sink interface {
	Notice(n Notice)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(n Notice)

func (f SinkFunc) Notice(n Notice) { f(n) }

// Discard drops every notice.
var Discard Sink = SinkFunc(func(Notice) {})

// LogSink forwards notices to Logger().
type LogSink struct{}

func (LogSink) Notice(n Notice) {
	Logger().Log(context.Background(), n.Kind.level(), n.Message,
		"kind", n.Kind.String(), "source", n.Source)
}

// A Recorder keeps every notice it receives, in order.
type Recorder struct {
	Notices []Notice
}

func (r *Recorder) Notice(n Notice) {
	r.Notices = append(r.Notices, n)
}

// Count returns the number of recorded notices of kind k.
func (r *Recorder) Count(k Kind) int {
	c := 0
	for _, n := range r.Notices {
		if n.Kind == k {
			c++
		}
	}
	return c
}

// Reset discards recorded notices.
func (r *Recorder) Reset() {
	r.Notices = r.Notices[:0]
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"math"
)

// Type identifies the family of an axis Kind.
type Type uint8

const (
	TypeLinear Type = iota
	TypeLog
	TypeCircular
)

func (t Type) String() string {
	switch t {
	case TypeLinear:
		return "linear"
	case TypeLog:
		return "log"
	case TypeCircular:
		return "circular"
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// A Kind describes the value domain of an axis: which world values
// are valid, how they map to normalized space, and whether they wrap.
//
// The set of kinds is closed. Circular kinds carry their period as
// the range of one full turn.
type Kind struct {
	Type Type

	// Circle is one period of a circular kind, for example
	// [0, 360) for degrees. It is ignored for other types.
	Circle Range
}

var (
	Linear  = Kind{Type: TypeLinear}
	Log     = Kind{Type: TypeLog}
	Degrees = Circular(Range{0, 360})
	Radians = Circular(Range{0, 2 * math.Pi})
)

// Circular returns a circular kind whose values wrap modulo the
// length of period.
func Circular(period Range) Kind {
	return Kind{Type: TypeCircular, Circle: period.Sorted()}
}

func (k Kind) String() string {
	if k.Type == TypeCircular {
		return fmt.Sprintf("circular%v", k.Circle)
	}
	return k.Type.String()
}

// ParseKind parses the names used on command lines: "linear", "log",
// "deg" (or "degrees") and "rad" (or "radians").
func ParseKind(s string) (Kind, error) {
	switch s {
	case "linear", "lin":
		return Linear, nil
	case "log":
		return Log, nil
	case "deg", "degrees":
		return Degrees, nil
	case "rad", "radians":
		return Radians, nil
	}
	return Kind{}, fmt.Errorf("unknown axis kind %q", s)
}

// logMin is the smallest valid world value on a log axis. Going lower
// would leave log10 with no room to represent the span.
const logMin = 1e-300

// Boundary returns the valid world domain of k.
func (k Kind) Boundary() Range {
	switch k.Type {
	case TypeLog:
		return Range{logMin, math.MaxFloat64}
	}
	return Range{-math.MaxFloat64, math.MaxFloat64}
}

// DefaultRange returns the world range a fresh axis of kind k shows.
func (k Kind) DefaultRange() Range {
	switch k.Type {
	case TypeLog:
		return Range{1, 10}
	case TypeCircular:
		return k.Circle
	}
	return Range{0, 1}
}

// CircularRange returns the period of k if k wraps.
func (k Kind) CircularRange() (Range, bool) {
	if k.Type == TypeCircular {
		return k.Circle, true
	}
	return Range{}, false
}

// Period returns the length of one turn, or +Inf for kinds that
// do not wrap.
func (k Kind) Period() float64 {
	if c, ok := k.CircularRange(); ok {
		return c.Len()
	}
	return math.Inf(1)
}

// Canonical maps v into the kind's period, [min, min+period). Values
// of non-circular kinds are returned unchanged.
func (k Kind) Canonical(v float64) float64 {
	c, ok := k.CircularRange()
	if !ok || c.Len() == 0 {
		return v
	}
	m := math.Mod(v-c.Start, c.Len())
	if m < 0 {
		m += c.Len()
	}
	return m + c.Start
}

// mapping returns the intermediate-space functions for k.
func (k Kind) mapping() mapping {
	if k.Type == TypeLog {
		return logMapping{}
	}
	return linearMapping{}
}

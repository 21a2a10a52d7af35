// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// An OutMode says what OutputScale.Of does with normalized values
// outside [0, 1].
type OutMode uint8

const (
	// OutCrop rejects values outside [0, 1]. Values within
	// cropSlop of an end are pinned to it, so rounding in the
	// normalizing transform does not drop a tick that sits exactly
	// on an axis end.
	OutCrop OutMode = iota
	// OutExtend extrapolates.
	OutExtend
	// OutClamp pins values to the nearest end.
	OutClamp
)

const cropSlop = 1e-9

// OutputScale maps normalized coordinates to output coordinates such
// as pixels. [0, 1] maps to [min, max]; max may be less than min, as
// for a y axis drawn downward.
type OutputScale struct {
	min, max float64
	mode     OutMode
}

// NewOutputScale returns an OutputScale mapping [0, 1] to [min, max].
// It crops by default.
func NewOutputScale(min, max float64) OutputScale {
	return OutputScale{min, max, OutCrop}
}

func (s *OutputScale) Crop()    { s.mode = OutCrop }
func (s *OutputScale) Unclamp() { s.mode = OutExtend }
func (s *OutputScale) Clamp()   { s.mode = OutClamp }

// Mode returns the current out-of-range handling.
func (s OutputScale) Mode() OutMode {
	return s.mode
}

// Length returns the signed output length of [0, 1].
func (s OutputScale) Length() float64 {
	return s.max - s.min
}

// Of maps normalized x to output space. ok is false if x is NaN or
// cropped away.
func (s OutputScale) Of(x float64) (float64, bool) {
	if math.IsNaN(x) {
		return 0, false
	}
	switch s.mode {
	case OutCrop:
		if x < -cropSlop || x > 1+cropSlop {
			return 0, false
		}
		x = math.Min(math.Max(x, 0), 1)
	case OutClamp:
		x = math.Min(math.Max(x, 0), 1)
	}
	return x*(s.max-s.min) + s.min, true
}

// Inverse maps output coordinate y back to normalized space. It is
// the inverse of Of in OutExtend mode.
func (s OutputScale) Inverse(y float64) float64 {
	return (y - s.min) / (s.max - s.min)
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"errors"
	"fmt"

	"github.com/aclements/go-axis/scale"
)

var (
	ErrNaNRange       = errors.New("axis: NaN range bound")
	ErrInvalidRange   = errors.New("axis: range not valid for this axis")
	ErrMultiplyLocked = errors.New("axis: axis is locked with other axes")
	ErrNotZoomable    = errors.New("axis: group is not zoomable")
	ErrUnknownAxis    = errors.New("axis: unknown axis")
	ErrUnknownGroup   = errors.New("axis: unknown group")
	ErrUnknownLayer   = errors.New("axis: unknown layer")
	ErrDimMismatch    = errors.New("axis: dimension mismatch")
	ErrAxisInUse      = errors.New("axis: axis has layers attached")
	ErrMargin         = errors.New("axis: margin factor must be finite and non-negative")
)

// A RangeError records a rejected range request.
type RangeError struct {
	Axis  AxisID
	Range scale.Range
	Err   error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("axis %d: range %v: %v", e.Axis, e.Range, e.Err)
}

func (e *RangeError) Unwrap() error { return e.Err }

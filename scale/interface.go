// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// A Mapper maps world values to normalized [0, 1] physical
// coordinates and back.
type Mapper interface {
	ConvToNR(w float64) float64
	ConvFromNR(n float64) float64
}

// mapping converts between world values and the intermediate space
// in which a Normal is affine.
type mapping interface {
	in(w float64) float64
	out(u float64) float64

	// resolution returns the smallest intermediate span around
	// intermediate values u1 and u2 that still distinguishes
	// world values at relative precision p.
	resolution(u1, u2, p float64) float64
}

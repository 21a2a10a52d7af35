// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// logMapping works in log10 space. Non-positive world values have no
// logarithm and map to -Inf.
type logMapping struct{}

func (logMapping) in(w float64) float64 {
	if w <= 0 {
		return math.Inf(-1)
	}
	return math.Log10(w)
}

func (logMapping) out(u float64) float64 {
	return math.Pow(10, u)
}

func (logMapping) resolution(u1, u2, p float64) float64 {
	// Both the exponent itself and the mantissa it encodes must
	// keep p relative resolution.
	exp := math.Max(math.Abs(u1), math.Abs(u2)) * p
	mant := math.Log10(1 + p)
	return math.Max(exp, mant)
}

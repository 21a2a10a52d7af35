// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// Extent returns the increasing range spanned by the finite values in
// xs that satisfy keep (or all finite values if keep is nil). It
// returns false if there are none.
func Extent(xs []float64, keep func(x float64) bool) (Range, bool) {
	min, max := math.Inf(1), math.Inf(-1)
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		if keep != nil && !keep(x) {
			continue
		}
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	if min > max {
		return Empty, false
	}
	return Range{min, max}, true
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

type linearMapping struct{}

func (linearMapping) in(w float64) float64  { return w }
func (linearMapping) out(u float64) float64 { return u }

func (linearMapping) resolution(u1, u2, p float64) float64 {
	return math.Max(math.Abs(u1), math.Abs(u2)) * p
}

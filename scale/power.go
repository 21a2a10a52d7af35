// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// Power is the TickTransform d = sign(w)*|w|^Exp. It is monotonic for
// any positive Exp.
type Power struct {
	Exp float64
}

func (p Power) Forward(w float64) float64 {
	return math.Copysign(math.Pow(math.Abs(w), p.Exp), w)
}

func (p Power) Inverse(d float64) float64 {
	return math.Copysign(math.Pow(math.Abs(d), 1/p.Exp), d)
}

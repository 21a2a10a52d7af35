// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package label describes tick labels: their text and font, how big
// they are, and how numbers become text.
package label

import (
	"fmt"
	"unicode/utf8"
)

// A Font selects a face and a size in output units (pixels at the
// measurer's resolution).
type Font struct {
	Family string
	Size   float64
}

// Scaled returns f with its size multiplied by s.
func (f Font) Scaled(s float64) Font {
	f.Size *= s
	return f
}

func (f Font) String() string {
	if f.Family == "" {
		return fmt.Sprintf("%gpx", f.Size)
	}
	return fmt.Sprintf("%s %gpx", f.Family, f.Size)
}

// A Model is one label ready to render.
type Model struct {
	Text string
	Font Font
}

// Extent is the size of a rendered label.
type Extent struct {
	Width, Height float64
}

// A Measurer computes label extents.
type Measurer interface {
	Measure(text string, f Font) Extent
}

// Monospace measures every rune as CharWidth*Size wide and every line
// as LineHeight*Size high. It needs no font data, which makes its
// results exact and reproducible.
type Monospace struct {
	CharWidth, LineHeight float64
}

// DefaultMonospace approximates a typical sans-serif face.
var DefaultMonospace = Monospace{CharWidth: 0.6, LineHeight: 1.2}

func (m Monospace) Measure(text string, f Font) Extent {
	return Extent{
		Width:  float64(utf8.RuneCountInString(text)) * m.CharWidth * f.Size,
		Height: m.LineHeight * f.Size,
	}
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package label

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// TrueType measures labels with a parsed TrueType font at 72 DPI, so
// one point is one output unit. Faces are cached per size. A TrueType
// is not safe for concurrent use.
type TrueType struct {
	font  *truetype.Font
	faces map[float64]font.Face
}

// NewTrueType parses ttf.
func NewTrueType(ttf []byte) (*TrueType, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("label: parsing font: %w", err)
	}
	return &TrueType{font: f, faces: make(map[float64]font.Face)}, nil
}

// LoadTrueType reads and parses the font file at path.
func LoadTrueType(path string) (*TrueType, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewTrueType(data)
}

// GoRegular returns a TrueType measurer for the Go Regular font.
func GoRegular() *TrueType {
	m, err := NewTrueType(goregular.TTF)
	if err != nil {
		// The embedded font is known good.
		panic(err)
	}
	return m
}

const maxFaces = 32

func (m *TrueType) face(size float64) font.Face {
	if f, ok := m.faces[size]; ok {
		return f
	}
	if len(m.faces) >= maxFaces {
		// Font shrinking visits many one-off sizes.
		m.faces = make(map[float64]font.Face)
	}
	f := truetype.NewFace(m.font, &truetype.Options{Size: size, DPI: 72})
	m.faces[size] = f
	return f
}

func (m *TrueType) Measure(text string, f Font) Extent {
	if f.Size <= 0 {
		return Extent{}
	}
	face := m.face(f.Size)
	met := face.Metrics()
	return Extent{
		Width:  fixedToFloat(font.MeasureString(face, text)),
		Height: fixedToFloat(met.Ascent + met.Descent),
	}
}

func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/aclements/go-axis/axis"
	"github.com/aclements/go-axis/notice"
	"github.com/aclements/go-axis/scale"
)

func TestSeriesBounds(t *testing.T) {
	s, err := NewSeries("s", []float64{1, 2, math.NaN(), -4, 8}, []float64{10, 20, 30, math.NaN(), 40})
	require.NoError(t, err)

	ext, outside, ok := s.Bounds(axis.X, scale.All, scale.All)
	require.True(t, ok)
	assert.False(t, outside)
	assert.Equal(t, scale.Range{Start: 1, End: 8}, ext)

	ext, outside, ok = s.Bounds(axis.Y, scale.Range{Start: 0, End: 25}, scale.All)
	require.True(t, ok)
	assert.True(t, outside)
	assert.Equal(t, scale.Range{Start: 10, End: 20}, ext)

	// Only points whose x lies in [1.5, 9] count for y.
	ext, _, ok = s.Bounds(axis.Y, scale.All, scale.Range{Start: 1.5, End: 9})
	require.True(t, ok)
	assert.Equal(t, scale.Range{Start: 20, End: 40}, ext)

	_, _, ok = s.Bounds(axis.X, scale.Range{Start: 100, End: 200}, scale.All)
	assert.False(t, ok)

	_, err = NewSeries("bad", []float64{1}, nil)
	assert.Error(t, err)
}

func TestLoadCSV(t *testing.T) {
	in := `t, load, temp
0, 1.5, 20
1, , 21
2, 2.5, x
3, 3
`
	ss, err := LoadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, ss, 2)
	assert.Equal(t, "load", ss[0].Name)
	assert.Equal(t, "temp", ss[1].Name)
	assert.Equal(t, []float64{0, 1, 2, 3}, ss[0].X)
	assert.Equal(t, 1.5, ss[0].Y[0])
	assert.True(t, math.IsNaN(ss[0].Y[1]))
	assert.True(t, math.IsNaN(ss[1].Y[2]))
	assert.True(t, math.IsNaN(ss[1].Y[3]))

	_, err = LoadCSV(strings.NewReader("x\n1\n"))
	assert.ErrorIs(t, err, ErrNoData)
	_, err = LoadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoData)
}

func TestLoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.xlsx")
	f := excelize.NewFile()
	for cell, v := range map[string]any{
		"A1": "x", "B1": "y",
		"A2": 1, "B2": 100,
		"A3": 2, "B3": 400,
		"A4": 3,
	} {
		require.NoError(t, f.SetCellValue("Sheet1", cell, v))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	ss, err := LoadXLSX(path, "")
	require.NoError(t, err)
	require.Len(t, ss, 1)
	assert.Equal(t, "y", ss[0].Name)
	assert.Equal(t, []float64{1, 2, 3}, ss[0].X)
	assert.Equal(t, 400.0, ss[0].Y[1])
	assert.True(t, math.IsNaN(ss[0].Y[2]))

	_, err = LoadXLSX(path, "Missing")
	assert.Error(t, err)
	_, err = LoadXLSX(filepath.Join(t.TempDir(), "none.xlsx"), "")
	assert.Error(t, err)
}

func TestSeriesOnGraph(t *testing.T) {
	ss, err := LoadCSV(strings.NewReader("x,y\n0,0\n10,100\n"))
	require.NoError(t, err)

	g := axis.New(axis.WithSink(notice.Discard))
	x, y := g.NewAxis(axis.X, scale.Linear), g.NewAxis(axis.Y, scale.Linear)
	_, err = g.AddLayer(ss[0], x, y)
	require.NoError(t, err)
	rep := g.Commit(nil)
	require.True(t, rep.Converged)

	xr, err := g.Range(x)
	require.NoError(t, err)
	assert.InDelta(t, -0.15625, xr.Start, 1e-9)
	assert.InDelta(t, 10.15625, xr.End, 1e-9)
}

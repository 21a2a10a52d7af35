// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrNoData = errors.New("dataset: table has no data columns")

// FromRows builds series from a table. The first row holds column
// names, the first column holds X values and every further column is
// the Y values of one series. Empty or non-numeric cells are missing
// values.
func FromRows(rows [][]string) ([]*Series, error) {
	if len(rows) == 0 || len(rows[0]) < 2 {
		return nil, ErrNoData
	}
	header := rows[0]
	n := len(rows) - 1
	xs := make([]float64, n)
	series := make([]*Series, len(header)-1)
	for j := range series {
		name := strings.TrimSpace(header[j+1])
		if name == "" {
			name = fmt.Sprintf("column %d", j+2)
		}
		series[j] = &Series{Name: name, X: xs, Y: make([]float64, n)}
	}
	for i, row := range rows[1:] {
		xs[i] = cell(row, 0)
		for j, s := range series {
			s.Y[i] = cell(row, j+1)
		}
	}
	return series, nil
}

func cell(row []string, i int) float64 {
	if i >= len(row) {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// LoadCSV reads series from CSV text laid out as for FromRows.
func LoadCSV(r io.Reader) ([]*Series, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: reading CSV: %w", err)
	}
	return FromRows(rows)
}

// LoadXLSX reads series from one sheet of an Excel workbook, laid out
// as for FromRows. An empty sheet name selects the first sheet.
func LoadXLSX(path, sheet string) ([]*Series, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: opening %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("dataset: %s: %w", path, ErrNoData)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s sheet %q: %w", path, sheet, err)
	}
	return FromRows(rows)
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command axisplot draws CSV or XLSX data as an SVG line plot whose
// axes are ranged and ticked by the axis engine.
//
// The first column of the table is the x coordinate and every further
// column is one series:
//
//	axisplot -o out.svg data.csv
//	axisplot --ykind log --yrange 1:inf --unlock data.xlsx
package main

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/image/colornames"
	"golang.org/x/text/language"

	"github.com/aclements/go-axis/dataset"
	"github.com/aclements/go-axis/label"
	"github.com/aclements/go-axis/notice"
	"github.com/aclements/go-axis/scale"
)

var (
	outputPath string
	sheet      string
	xKind      string
	yKind      string
	xRange     string
	yRange     string
	width      float64
	height     float64
	fontSize   float64
	fontPath   string
	tickNumber int
	minors     int
	format     string
	colors     string
	unlock     bool
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "axisplot [data.csv|data.xlsx]",
		Short: "Plot tabular data with automatically ranged and ticked axes",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}

	fl := rootCmd.Flags()
	fl.StringVarP(&outputPath, "output", "o", "", "output SVG file (default: stdout)")
	fl.StringVar(&sheet, "sheet", "", "XLSX sheet to read (default: first sheet)")
	fl.StringVar(&xKind, "xkind", "linear", "x axis kind: linear, log, deg or rad")
	fl.StringVar(&yKind, "ykind", "linear", "y axis kind: linear, log, deg or rad")
	fl.StringVar(&xRange, "xrange", "", "fixed x range `lo:hi`; inf picks the nearest data")
	fl.StringVar(&yRange, "yrange", "", "fixed y range `lo:hi`; inf picks the nearest data")
	fl.Float64Var(&width, "width", 640, "plot width")
	fl.Float64Var(&height, "height", 400, "plot height")
	fl.Float64Var(&fontSize, "font-size", 12, "tick label font size")
	fl.StringVar(&fontPath, "font", "", "TrueType font used to measure labels (default: Go Regular)")
	fl.IntVar(&tickNumber, "ticks", 0, "requested major tick count (default: automatic)")
	fl.IntVar(&minors, "minor", -1, "minor ticks between majors; -1 picks automatically")
	fl.StringVar(&format, "format", "auto", "label format: auto, compact, a language tag such as de, or a printf verb")
	fl.StringVar(&colors, "colors", "", "comma-separated SVG color names for the series")
	fl.BoolVar(&unlock, "unlock", false, "give every series its own independently ranged y axis")
	fl.BoolVarP(&verbose, "verbose", "v", false, "log range and tick adjustments to stderr")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		notice.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	series, err := load(args[0])
	if err != nil {
		return err
	}
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	p, err := newPlot(series, cfg)
	if err != nil {
		return err
	}
	if rep := p.layout(); !rep.Converged {
		fmt.Fprintf(os.Stderr, "axisplot: layout did not settle after %d passes\n", rep.Iterations)
	}

	var w io.Writer = os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := p.render(w); err != nil {
		return fmt.Errorf("writing SVG: %w", err)
	}
	return nil
}

func load(path string) ([]*dataset.Series, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return dataset.LoadXLSX(path, sheet)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dataset.LoadCSV(f)
}

func buildConfig() (plotConfig, error) {
	cfg := plotConfig{
		width:       width,
		height:      height,
		fontSize:    fontSize,
		unlock:      unlock,
		tickNumber:  tickNumber,
		minorNumber: minors,
	}
	var err error
	if fontPath != "" {
		if cfg.measurer, err = label.LoadTrueType(fontPath); err != nil {
			return cfg, err
		}
	} else {
		cfg.measurer = label.GoRegular()
	}
	if cfg.xKind, err = scale.ParseKind(xKind); err != nil {
		return cfg, err
	}
	if cfg.yKind, err = scale.ParseKind(yKind); err != nil {
		return cfg, err
	}
	if cfg.xRange, err = parseRange(xRange); err != nil {
		return cfg, err
	}
	if cfg.yRange, err = parseRange(yRange); err != nil {
		return cfg, err
	}
	if cfg.format, err = parseFormat(format); err != nil {
		return cfg, err
	}
	if cfg.colors, err = parseColors(colors); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// parseRange parses "lo:hi". An empty string means no fixed range.
func parseRange(s string) (*scale.Range, error) {
	if s == "" {
		return nil, nil
	}
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf("range %q: want lo:hi", s)
	}
	var r scale.Range
	var err error
	if r.Start, err = strconv.ParseFloat(lo, 64); err != nil {
		return nil, fmt.Errorf("range %q: %w", s, err)
	}
	if r.End, err = strconv.ParseFloat(hi, 64); err != nil {
		return nil, fmt.Errorf("range %q: %w", s, err)
	}
	return &r, nil
}

func parseFormat(s string) (label.Formatter, error) {
	switch {
	case s == "" || s == "auto":
		return nil, nil
	case s == "compact":
		return label.Compact{}, nil
	case strings.Contains(s, "%"):
		return label.Printf(s), nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("format %q: %w", s, err)
	}
	return label.Grouped{Tag: tag, Digits: -1}, nil
}

func parseColors(s string) ([]color.Color, error) {
	if s == "" {
		return nil, nil
	}
	var cs []color.Color
	for _, name := range strings.Split(s, ",") {
		c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown color %q", name)
		}
		cs = append(cs, c)
	}
	return cs, nil
}

// Catalog Charts - Streaming Catalog Analytics and Chart Rendering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogcharts

// Package main is the standalone menu for Catalog Charts.
//
// It loads the catalog once, runs a single numbered selection and exits.
// Text selections are printed to stdout; chart selections are written as a
// PNG file.
//
// # Example Usage
//
//	menu -data netflix_titles.csv -choice 3 -out countries.png
//	menu -choice 7
//
// Running without -choice prints the list of selections.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/tomtom215/catalogcharts/internal/dataset"
	"github.com/tomtom215/catalogcharts/internal/logging"
	"github.com/tomtom215/catalogcharts/internal/menu"
	"github.com/tomtom215/catalogcharts/internal/render"
)

func main() {
	dataPath := flag.String("data", "netflix_titles.csv", "path to the catalog CSV")
	choice := flag.Int("choice", 0, "menu selection (1-7)")
	out := flag.String("out", "chart.png", "output file for chart selections")
	logLevel := flag.String("log-level", "warn", "log level (trace, debug, info, warn, error)")
	flag.Parse()

	logging.Init(logging.Config{Level: *logLevel, Format: "console", Output: os.Stderr})

	if *choice == 0 {
		fmt.Print(menu.Usage())
		return
	}

	table, err := dataset.Load(*dataPath)
	if err != nil {
		logging.Fatal().Err(err).Str("path", *dataPath).Msg("Failed to load dataset")
	}
	logging.Info().Int("rows", table.Len()).Str("path", *dataPath).Msg("Dataset loaded")

	m := menu.New(table, render.NewCanvas(render.DefaultOptions()))
	res, err := m.Select(context.Background(), *choice)
	if err != nil {
		logging.Fatal().Err(err).Int("choice", *choice).Msg("Selection failed")
	}

	if !res.IsImage() {
		fmt.Println(res.Text)
		return
	}
	if err := os.WriteFile(*out, res.Image, 0o644); err != nil { //nolint:gosec // chart output is not sensitive
		logging.Fatal().Err(err).Str("path", *out).Msg("Failed to write chart")
	}
	fmt.Printf("Chart saved to %s\n", *out)
}

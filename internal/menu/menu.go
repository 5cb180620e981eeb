// Catalog Charts - Streaming Catalog Analytics and Chart Rendering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogcharts

// Package menu implements the numbered selection surface used by the
// standalone command. It shares chart definitions with the HTTP API but
// uses the terser menu titles.
package menu

import (
	"context"
	"fmt"
	"strings"

	"github.com/tomtom215/catalogcharts/internal/charts"
	"github.com/tomtom215/catalogcharts/internal/dataset"
	"github.com/tomtom215/catalogcharts/internal/render"
)

// InvalidChoice is the text returned for an unmapped selection.
const InvalidChoice = "❌ Invalid choice"

// Choice numbers.
const (
	ChoiceSummary  = 1
	ChoiceDuration = 7
)

// imageChoices maps the menu numbers that produce a chart.
var imageChoices = map[int]charts.Key{
	2: charts.KeyType,
	3: charts.KeyCountries,
	4: charts.KeyReleaseTrend,
	5: charts.KeyGenres,
	6: charts.KeyRatings,
}

// Result is the outcome of one selection. Exactly one field is set.
type Result struct {
	Text  string
	Image []byte
}

// IsImage reports whether the selection produced a chart.
func (r Result) IsImage() bool {
	return len(r.Image) > 0
}

// Menu dispatches numbered selections.
type Menu struct {
	gen *charts.Generator
}

// New creates a menu over table, drawing on canvas.
func New(table *dataset.Table, canvas *render.Canvas) *Menu {
	return &Menu{gen: charts.NewGenerator(table, canvas, charts.WithStyle(charts.MenuStyle))}
}

// Select runs choice. Unknown choices are not an error; they yield
// InvalidChoice as text.
func (m *Menu) Select(ctx context.Context, choice int) (Result, error) {
	switch choice {
	case ChoiceSummary:
		return Result{Text: m.gen.SchemaSummary()}, nil
	case ChoiceDuration:
		return Result{Text: m.gen.DurationSummary()}, nil
	}

	key, ok := imageChoices[choice]
	if !ok {
		return Result{Text: InvalidChoice}, nil
	}
	img, err := m.gen.Image(ctx, key)
	if err != nil {
		return Result{}, fmt.Errorf("menu choice %d: %w", choice, err)
	}
	return Result{Image: img}, nil
}

// Usage lists the choices, one per line.
func Usage() string {
	var b strings.Builder
	b.WriteString("1. Dataset summary\n")
	for n := 2; n <= 6; n++ {
		fmt.Fprintf(&b, "%d. %s\n", n, charts.MenuStyle[imageChoices[n]].Title)
	}
	b.WriteString("7. Average duration\n")
	return b.String()
}

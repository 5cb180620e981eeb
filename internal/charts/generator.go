// Catalog Charts - Streaming Catalog Analytics and Chart Rendering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogcharts

// Package charts binds each chart key to one aggregation and one figure.
// Both the HTTP API and the standalone menu go through a Generator, so the
// seven charts are defined exactly once.
package charts

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/tomtom215/catalogcharts/internal/analysis"
	"github.com/tomtom215/catalogcharts/internal/dataset"
	"github.com/tomtom215/catalogcharts/internal/logging"
	"github.com/tomtom215/catalogcharts/internal/render"
)

// Duration chart bar labels.
const (
	MoviesBarLabel = "Movies (min)"
	ShowsBarLabel  = "TV Shows (seasons)"
)

// Generator renders charts over one table.
type Generator struct {
	table  *dataset.Table
	canvas *render.Canvas
	style  Style
}

// Option configures a Generator.
type Option func(*Generator)

// WithStyle replaces the default WebStyle.
func WithStyle(s Style) Option {
	return func(g *Generator) {
		g.style = s
	}
}

// NewGenerator creates a generator reading table and drawing on canvas.
func NewGenerator(table *dataset.Table, canvas *render.Canvas, opts ...Option) *Generator {
	g := &Generator{table: table, canvas: canvas, style: WebStyle}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Info describes one available chart.
type Info struct {
	Key   Key    `json:"key"`
	Title string `json:"title"`
	Path  string `json:"path"`
}

// Catalog lists the charts in canonical order.
func (g *Generator) Catalog() []Info {
	out := make([]Info, 0, len(keys))
	for _, k := range keys {
		out = append(out, Info{Key: k, Title: g.style[k].Title, Path: "/plot/" + string(k)})
	}
	return out
}

// Image aggregates and renders the chart for key as PNG.
func (g *Generator) Image(ctx context.Context, key Key) ([]byte, error) {
	fig, err := g.Figure(key)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	img, err := g.canvas.Render(ctx, fig)
	if err != nil {
		return nil, fmt.Errorf("chart %s: %w", key, err)
	}
	logging.Ctx(ctx).Debug().
		Str("chart", string(key)).
		Int("bytes", len(img)).
		Dur("elapsed", time.Since(start)).
		Msg("Chart rendered")
	return img, nil
}

// Figure builds the figure for key without drawing it.
func (g *Generator) Figure(key Key) (render.Figure, error) {
	layout, ok := g.style[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSelection, key)
	}
	frame := render.Frame{
		Chart:  string(key),
		Title:  layout.Title,
		XLabel: layout.XLabel,
		YLabel: layout.YLabel,
		Size:   g.canvas.Inches(layout.Width, layout.Height),
	}

	switch key {
	case KeyType:
		c := analysis.TypeDistribution(g.table)
		return &render.BarFigure{Frame: frame, Labels: c.Labels(), Values: c.Values(), Palette: layout.Palette}, nil
	case KeyCountries:
		c := analysis.TopCountries(g.table, analysis.TopCountriesN)
		return &render.HorizontalBarFigure{Frame: frame, Labels: c.Labels(), Values: c.Values(), Palette: layout.Palette}, nil
	case KeyReleaseTrend:
		trend := analysis.ReleaseTrend(g.table)
		fig := &render.LineFigure{Frame: frame, X: make([]float64, len(trend)), Y: make([]float64, len(trend))}
		for i, yc := range trend {
			fig.X[i], fig.Y[i] = float64(yc.Year), float64(yc.Count)
		}
		if colors := layout.Palette.Colors(1); colors != nil {
			fig.Color = colors[0]
		}
		return fig, nil
	case KeyGenres:
		c := analysis.GenreDistribution(g.table, analysis.TopGenresN)
		return &render.HorizontalBarFigure{Frame: frame, Labels: c.Labels(), Values: c.Values(), Palette: layout.Palette}, nil
	case KeyRatings:
		c := analysis.RatingDistribution(g.table)
		return &render.BarFigure{Frame: frame, Labels: c.Labels(), Values: c.Values(), Palette: layout.Palette, LabelRotation: 45}, nil
	case KeyDuration:
		m := analysis.AverageDuration(g.table)
		return &render.BarFigure{
			Frame:   frame,
			Labels:  []string{MoviesBarLabel, ShowsBarLabel},
			Values:  []float64{m.Movie, m.Show},
			Palette: layout.Palette,
		}, nil
	case KeyDirectors:
		c := analysis.TopDirectors(g.table, analysis.TopDirectorsN)
		return &render.HorizontalBarFigure{Frame: frame, Labels: c.Labels(), Values: c.Values(), Palette: layout.Palette}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSelection, key)
	}
}

// DurationData is the JSON form of analysis.DurationMeans. A mean is null
// when its type has no rows.
type DurationData struct {
	MovieMinutes *float64 `json:"movie_minutes"`
	ShowSeasons  *float64 `json:"show_seasons"`
	MovieCount   int      `json:"movie_count"`
	ShowCount    int      `json:"show_count"`
}

// Data returns the aggregate behind the chart for key, ready for JSON.
func (g *Generator) Data(key Key) (interface{}, error) {
	switch key {
	case KeyType:
		return analysis.TypeDistribution(g.table), nil
	case KeyCountries:
		return analysis.TopCountries(g.table, analysis.TopCountriesN), nil
	case KeyReleaseTrend:
		return analysis.ReleaseTrend(g.table), nil
	case KeyGenres:
		return analysis.GenreDistribution(g.table, analysis.TopGenresN), nil
	case KeyRatings:
		return analysis.RatingDistribution(g.table), nil
	case KeyDuration:
		m := analysis.AverageDuration(g.table)
		return DurationData{
			MovieMinutes: nullable(m.Movie),
			ShowSeasons:  nullable(m.Show),
			MovieCount:   m.MovieCount,
			ShowCount:    m.ShowCount,
		}, nil
	case KeyDirectors:
		return analysis.TopDirectors(g.table, analysis.TopDirectorsN), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSelection, key)
	}
}

// DurationSummary is the one-line text form of the duration chart.
func (g *Generator) DurationSummary() string {
	return analysis.FormatDurationSummary(analysis.AverageDuration(g.table))
}

// SchemaSummary describes the loaded table.
func (g *Generator) SchemaSummary() string {
	return analysis.Summary(g.table)
}

func nullable(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

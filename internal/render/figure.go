// Catalog Charts - Streaming Catalog Analytics and Chart Rendering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogcharts

package render

import (
	"fmt"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Size is a figure size in pixels. Zero fields fall back to the canvas
// defaults.
type Size struct {
	Width  int
	Height int
}

// Frame carries what every figure has in common.
type Frame struct {
	// Chart names the figure in metrics and logs.
	Chart  string
	Title  string
	XLabel string
	YLabel string
	Size   Size
}

// Figure is a chart description the Canvas knows how to draw.
type Figure interface {
	frame() Frame
	empty() bool
	draw(w io.Writer, size Size, dpi float64) error
}

// BarFigure draws vertical bars, one per label.
type BarFigure struct {
	Frame
	Labels  []string
	Values  []float64
	Palette Palette
	// LabelRotation rotates the category labels, in degrees.
	LabelRotation float64
}

// HorizontalBarFigure draws one horizontal bar per label, first label on
// top, with the values along the horizontal axis.
type HorizontalBarFigure struct {
	Frame
	Labels  []string
	Values  []float64
	Palette Palette
}

// LineFigure draws a single line with a marker at every point.
type LineFigure struct {
	Frame
	X     []float64
	Y     []float64
	Color drawing.Color
}

func (f *BarFigure) frame() Frame           { return f.Frame }
func (f *HorizontalBarFigure) frame() Frame { return f.Frame }
func (f *LineFigure) frame() Frame          { return f.Frame }

func (f *BarFigure) empty() bool {
	return len(f.Labels) == 0 || len(f.Labels) != len(f.Values)
}

func (f *HorizontalBarFigure) empty() bool {
	return len(f.Labels) == 0 || len(f.Labels) != len(f.Values)
}

func (f *LineFigure) empty() bool {
	return len(f.X) == 0 || len(f.X) != len(f.Y)
}

func (f *BarFigure) draw(w io.Writer, size Size, dpi float64) error {
	colors := f.Palette.Colors(len(f.Values))
	bars := make([]chart.Value, len(f.Values))
	for i, v := range f.Values {
		style := chart.Style{StrokeWidth: 1}
		if colors != nil {
			style.FillColor = colors[i]
			style.StrokeColor = colors[i]
		}
		bars[i] = chart.Value{Label: f.Labels[i], Value: finite(v), Style: style}
	}

	bottom := 20
	if f.LabelRotation != 0 {
		bottom = 60
	}
	width, spacing := barLayout(size.Width, len(bars))
	graph := chart.BarChart{
		Title:      f.Title,
		Width:      size.Width,
		Height:     size.Height,
		DPI:        dpi,
		BarWidth:   width,
		BarSpacing: spacing,
		Background: chart.Style{Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: bottom}},
		XAxis:      chart.Style{TextRotationDegrees: f.LabelRotation},
		YAxis: chart.YAxis{
			Name:  f.YLabel,
			Range: &chart.ContinuousRange{Min: 0, Max: axisMax(f.Values)},
		},
		Bars: bars,
	}
	return graph.Render(chart.PNG, w)
}

func (f *LineFigure) draw(w io.Writer, size Size, dpi float64) error {
	xs := make([]float64, len(f.X))
	ys := make([]float64, len(f.Y))
	for i := range f.X {
		xs[i], ys[i] = f.X[i], finite(f.Y[i])
	}

	// A single point has a zero-width domain, which go-chart rejects.
	xr := &chart.ContinuousRange{Min: xs[0], Max: xs[len(xs)-1]}
	if xr.Max <= xr.Min {
		xr.Min, xr.Max = xr.Min-1, xr.Max+1
	}

	color := f.Color
	if color.IsZero() {
		color = SteelBlue.stops[0]
	}

	graph := chart.Chart{
		Title:      f.Title,
		Width:      size.Width,
		Height:     size.Height,
		DPI:        dpi,
		Background: chart.Style{Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:           f.XLabel,
			Range:          xr,
			ValueFormatter: integerFormatter,
		},
		YAxis: chart.YAxis{
			Name:           f.YLabel,
			Range:          &chart.ContinuousRange{Min: 0, Max: axisMax(ys)},
			ValueFormatter: integerFormatter,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    f.Chart,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: color,
					StrokeWidth: 2,
					DotColor:    color,
					DotWidth:    3,
				},
			},
		},
	}
	return graph.Render(chart.PNG, w)
}

func integerFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%d", int(math.Round(f)))
	}
	return ""
}

// finite maps NaN and infinities to zero so they draw as empty bars.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// axisMax is the top of a zero-based value axis with some headroom.
func axisMax(values []float64) float64 {
	highest := 0.0
	for _, v := range values {
		if v = finite(v); v > highest {
			highest = v
		}
	}
	if highest == 0 {
		return 1
	}
	return highest * 1.1
}

// barLayout splits the plot width into n slots, 60% bar and 40% gap, so
// the bars never overflow the canvas.
func barLayout(width, n int) (bar, spacing int) {
	if n == 0 {
		return 0, 0
	}
	slot := (width - 120) / n
	bar = slot * 6 / 10
	spacing = slot - bar
	if bar < 4 {
		bar = 4
	}
	if spacing < 1 {
		spacing = 1
	}
	return bar, spacing
}

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

// go-chart's StackedBarChart normalises every bar to 100%, so horizontal
// count bars are drawn directly on a go-chart Renderer instead.

const (
	hbarPadding    = 16
	hbarTitleSize  = 14.0
	hbarLabelSize  = 10.0
	hbarTickSize   = 9.0
	hbarMaxLabelPc = 35 // percent of width the category labels may take
)

var (
	hbarTextColor = drawing.ColorFromHex("333333")
	hbarGridColor = drawing.ColorFromHex("e5e5e5")
	hbarAxisColor = drawing.ColorFromHex("888888")
)

func (f *HorizontalBarFigure) draw(w io.Writer, size Size, dpi float64) error {
	font, err := chart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	r, err := chart.PNG(size.Width, size.Height)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	r.SetDPI(dpi)
	r.SetFont(font)

	chart.Draw.Box(r, chart.Box{Top: 0, Left: 0, Right: size.Width, Bottom: size.Height},
		chart.Style{FillColor: drawing.ColorWhite, StrokeColor: drawing.ColorWhite, StrokeWidth: 1})

	top := hbarPadding
	if f.Title != "" {
		tb := measure(r, f.Title, hbarTitleSize)
		text(r, f.Title, (size.Width-tb.Width())/2, top+tb.Height(), hbarTitleSize, hbarTextColor)
		top += tb.Height() + hbarPadding
	}
	if f.YLabel != "" {
		yb := measure(r, f.YLabel, hbarLabelSize)
		text(r, f.YLabel, hbarPadding, top+yb.Height(), hbarLabelSize, hbarTextColor)
		top += yb.Height() + hbarPadding/2
	}

	maxLabel := size.Width * hbarMaxLabelPc / 100
	labels := make([]string, len(f.Labels))
	labelWidth := 0
	for i, l := range f.Labels {
		labels[i] = fit(r, l, maxLabel)
		if lw := measure(r, labels[i], hbarLabelSize).Width(); lw > labelWidth {
			labelWidth = lw
		}
	}

	tickHeight := measure(r, "0", hbarTickSize).Height()
	bottom := size.Height - hbarPadding - tickHeight - 6
	if f.XLabel != "" {
		xb := measure(r, f.XLabel, hbarLabelSize)
		text(r, f.XLabel, (size.Width-xb.Width())/2, size.Height-hbarPadding, hbarLabelSize, hbarTextColor)
		bottom -= xb.Height() + hbarPadding/2
	}

	plot := chart.Box{
		Top:    top,
		Left:   hbarPadding + labelWidth + 8,
		Right:  size.Width - hbarPadding,
		Bottom: bottom,
	}
	if plot.Right <= plot.Left || plot.Bottom <= plot.Top {
		return fmt.Errorf("canvas %dx%d too small for %d bars", size.Width, size.Height, len(f.Values))
	}

	step, axisTop := niceAxis(f.Values)
	scale := float64(plot.Width()) / axisTop

	for v := 0.0; v <= axisTop+step/2; v += step {
		x := plot.Left + int(math.Round(v*scale))
		line(r, x, plot.Top, x, plot.Bottom, hbarGridColor)
		label := fmt.Sprintf("%d", int(math.Round(v)))
		tb := measure(r, label, hbarTickSize)
		text(r, label, x-tb.Width()/2, plot.Bottom+tb.Height()+6, hbarTickSize, hbarTextColor)
	}
	line(r, plot.Left, plot.Top, plot.Left, plot.Bottom, hbarAxisColor)

	colors := f.Palette.Colors(len(f.Values))
	row := float64(plot.Height()) / float64(len(f.Values))
	for i, v := range f.Values {
		y0 := plot.Top + int(math.Round(row*float64(i)+row*0.15))
		y1 := plot.Top + int(math.Round(row*float64(i+1)-row*0.15))
		x1 := plot.Left + int(math.Round(finite(v)*scale))
		color := SteelBlue.stops[0]
		if colors != nil {
			color = colors[i]
		}
		if x1 > plot.Left {
			chart.Draw.Box(r, chart.Box{Top: y0, Left: plot.Left, Right: x1, Bottom: y1},
				chart.Style{FillColor: color, StrokeColor: color, StrokeWidth: 1})
		}

		lb := measure(r, labels[i], hbarLabelSize)
		text(r, labels[i], plot.Left-8-lb.Width(), (y0+y1)/2+lb.Height()/2, hbarLabelSize, hbarTextColor)
	}

	return r.Save(w)
}

func measure(r chart.Renderer, s string, size float64) chart.Box {
	r.SetFontSize(size)
	return r.MeasureText(s)
}

func text(r chart.Renderer, s string, x, y int, size float64, color drawing.Color) {
	r.SetFontSize(size)
	r.SetFontColor(color)
	r.Text(s, x, y)
}

func line(r chart.Renderer, x0, y0, x1, y1 int, color drawing.Color) {
	r.SetStrokeColor(color)
	r.SetStrokeWidth(1)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y1)
	r.Stroke()
}

// fit shortens s with an ellipsis until it is at most limit pixels wide.
func fit(r chart.Renderer, s string, limit int) string {
	if measure(r, s, hbarLabelSize).Width() <= limit {
		return s
	}
	runes := []rune(s)
	for len(runes) > 1 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "..."
		if measure(r, candidate, hbarLabelSize).Width() <= limit {
			return candidate
		}
	}
	return string(runes)
}

// niceAxis picks a 1/2/5 tick step giving about five ticks and the axis
// top, a multiple of the step at or above the largest value.
func niceAxis(values []float64) (step, top float64) {
	highest := 0.0
	for _, v := range values {
		if v = finite(v); v > highest {
			highest = v
		}
	}
	if highest <= 0 {
		return 1, 1
	}

	raw := highest / 5
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch norm := raw / mag; {
	case norm <= 1:
		step = mag
	case norm <= 2:
		step = 2 * mag
	case norm <= 5:
		step = 5 * mag
	default:
		step = 10 * mag
	}
	if step < 1 {
		step = 1
	}
	return step, math.Ceil(highest/step) * step
}

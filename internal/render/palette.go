// Catalog Charts - Streaming Catalog Analytics and Chart Rendering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogcharts

package render

import (
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Palette produces n bar colors.
type Palette struct {
	name        string
	stops       []drawing.Color
	qualitative bool
}

func qualitative(name string, hexes ...string) Palette {
	return Palette{name: name, stops: fromHex(hexes), qualitative: true}
}

func sequential(name string, hexes ...string) Palette {
	return Palette{name: name, stops: fromHex(hexes)}
}

func fromHex(hexes []string) []drawing.Color {
	out := make([]drawing.Color, len(hexes))
	for i, h := range hexes {
		out[i] = drawing.ColorFromHex(h)
	}
	return out
}

// Named palettes. Sequential maps are sampled evenly from light-to-dark
// anchor stops.
var (
	Set1 = qualitative("Set1",
		"e41a1c", "377eb8", "4daf4a", "984ea3", "ff7f00", "ffff33", "a65628", "f781bf", "999999")
	Set2 = qualitative("Set2",
		"66c2a5", "fc8d62", "8da0cb", "e78ac3", "a6d854", "ffd92f", "e5c494", "b3b3b3")
	Coolwarm = sequential("coolwarm",
		"3b4cc0", "6788ee", "9abbff", "c9d7f0", "edd1c2", "f7a889", "e26952", "b40426")
	Magma = sequential("magma",
		"000004", "1c1044", "4f127b", "812581", "b5367a", "e55064", "fb8761", "fec287", "fcfdbf")
	Viridis = sequential("viridis",
		"440154", "472c7a", "3b518b", "2c718e", "21908d", "27ad81", "5cc863", "aadc32", "fde725")
	Cubehelix = sequential("cubehelix",
		"000000", "1a1530", "163d4e", "1f6642", "54792f", "a07949", "d07e93", "cf9cda", "c1caf3", "ffffff")
	SteelBlue = qualitative("steelblue", "4682b4")
)

// Name returns the palette name.
func (p Palette) Name() string {
	return p.name
}

// Colors returns n colors. Qualitative palettes cycle; sequential ones are
// interpolated across their stops, trimming the extreme ends so no bar is
// pure black or white.
func (p Palette) Colors(n int) []drawing.Color {
	if n <= 0 || len(p.stops) == 0 {
		return nil
	}
	out := make([]drawing.Color, n)
	if p.qualitative || len(p.stops) == 1 {
		for i := range out {
			out[i] = p.stops[i%len(p.stops)]
		}
		return out
	}
	const lo, hi = 0.15, 0.85
	for i := range out {
		pos := 0.5
		if n > 1 {
			pos = lo + (hi-lo)*float64(i)/float64(n-1)
		}
		out[i] = p.at(pos)
	}
	return out
}

// at interpolates the stop list at pos in [0, 1].
func (p Palette) at(pos float64) drawing.Color {
	scaled := pos * float64(len(p.stops)-1)
	i := int(math.Floor(scaled))
	if i >= len(p.stops)-1 {
		return p.stops[len(p.stops)-1]
	}
	frac := scaled - float64(i)
	a, b := p.stops[i], p.stops[i+1]
	return drawing.Color{
		R: lerp(a.R, b.R, frac),
		G: lerp(a.G, b.G, frac),
		B: lerp(a.B, b.B, frac),
		A: 255,
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

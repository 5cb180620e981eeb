// Catalog Charts - Streaming Catalog Analytics and Chart Rendering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogcharts

package render

import (
	"math"
	"testing"
)

func TestPaletteColors(t *testing.T) {
	t.Parallel()

	for _, p := range []Palette{Set1, Set2, Coolwarm, Magma, Viridis, Cubehelix, SteelBlue} {
		t.Run(p.Name(), func(t *testing.T) {
			for _, n := range []int{1, 2, 10, 15} {
				colors := p.Colors(n)
				if len(colors) != n {
					t.Fatalf("Colors(%d) returned %d colors", n, len(colors))
				}
				for i, c := range colors {
					if c.A != 255 {
						t.Errorf("color %d is not opaque: %+v", i, c)
					}
				}
			}
			if p.Colors(0) != nil {
				t.Error("Colors(0) should be nil")
			}
		})
	}
}

func TestQualitativePaletteCycles(t *testing.T) {
	t.Parallel()

	colors := Set2.Colors(10)
	if colors[0] != colors[8] || colors[1] != colors[9] {
		t.Error("Set2 should repeat after eight colors")
	}
}

func TestSequentialPaletteAvoidsExtremes(t *testing.T) {
	t.Parallel()

	colors := Cubehelix.Colors(10)
	first, last := colors[0], colors[len(colors)-1]
	if first.R == 0 && first.G == 0 && first.B == 0 {
		t.Error("first cubehelix bar should not be pure black")
	}
	if last.R == 255 && last.G == 255 && last.B == 255 {
		t.Error("last cubehelix bar should not be pure white")
	}
	if colors[0] == colors[9] {
		t.Error("sequential colors should vary")
	}
}

func TestNiceAxis(t *testing.T) {
	t.Parallel()

	tests := []struct {
		values   []float64
		wantStep float64
		wantTop  float64
	}{
		{[]float64{2818, 972}, 1000, 3000},
		{[]float64{3, 2, 1}, 1, 3},
		{[]float64{19}, 5, 20},
		{[]float64{0}, 1, 1},
		{[]float64{math.NaN()}, 1, 1},
	}
	for _, tt := range tests {
		step, top := niceAxis(tt.values)
		if step != tt.wantStep || top != tt.wantTop {
			t.Errorf("niceAxis(%v) = %v, %v; want %v, %v", tt.values, step, top, tt.wantStep, tt.wantTop)
		}
	}
}

func TestAxisMaxAndFinite(t *testing.T) {
	t.Parallel()

	if got := axisMax([]float64{0, math.NaN()}); got != 1 {
		t.Errorf("axisMax of zeros = %v, want 1", got)
	}
	if got := axisMax([]float64{10, 5}); math.Abs(got-11) > 1e-9 {
		t.Errorf("axisMax = %v, want 11", got)
	}
	if finite(math.Inf(1)) != 0 {
		t.Error("finite(+Inf) should be 0")
	}
}

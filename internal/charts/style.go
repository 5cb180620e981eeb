// Catalog Charts - Streaming Catalog Analytics and Chart Rendering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogcharts

package charts

import "github.com/tomtom215/catalogcharts/internal/render"

// Layout holds the presentation of one chart. Sizes are in inches and are
// converted at the canvas DPI.
type Layout struct {
	Title   string
	XLabel  string
	YLabel  string
	Width   float64
	Height  float64
	Palette render.Palette
}

// Style maps every key to its presentation.
type Style map[Key]Layout

const titlesAxis = "Number of Titles"

// WebStyle is used by the HTTP endpoints.
var WebStyle = Style{
	KeyType:         {Title: "Movies vs TV Shows on Netflix", Width: 6, Height: 4, Palette: render.Set2},
	KeyCountries:    {Title: "Top 10 Content-Producing Countries", XLabel: titlesAxis, YLabel: "Country", Width: 10, Height: 5, Palette: render.Coolwarm},
	KeyReleaseTrend: {Title: "Number of Releases Over the Years", XLabel: "Release Year", YLabel: titlesAxis, Width: 12, Height: 5, Palette: render.SteelBlue},
	KeyGenres:       {Title: "Top 15 Genres on Netflix", XLabel: titlesAxis, YLabel: "Genre", Width: 10, Height: 5, Palette: render.Magma},
	KeyRatings:      {Title: "Distribution of Ratings", Width: 8, Height: 4, Palette: render.Viridis},
	KeyDuration:     {Title: "Average Duration Comparison", Width: 5, Height: 4, Palette: render.Set1},
	KeyDirectors:    {Title: "Top 10 Directors by Number of Titles", XLabel: titlesAxis, YLabel: "Director", Width: 10, Height: 5, Palette: render.Cubehelix},
}

// MenuStyle is used by the standalone menu, which titles its charts more
// tersely and leaves the axes unlabelled.
var MenuStyle = Style{
	KeyType:         {Title: "Movies vs TV Shows", Width: 6, Height: 4, Palette: render.Set2},
	KeyCountries:    {Title: "Top 10 Countries by Content", Width: 10, Height: 5, Palette: render.Coolwarm},
	KeyReleaseTrend: {Title: "Release Trend Over the Years", Width: 12, Height: 5, Palette: render.SteelBlue},
	KeyGenres:       {Title: "Top 15 Genres", Width: 10, Height: 5, Palette: render.Magma},
	KeyRatings:      {Title: "Ratings Distribution", Width: 8, Height: 4, Palette: render.Viridis},
	KeyDuration:     {Title: "Average Duration Comparison", Width: 5, Height: 4, Palette: render.Set1},
	KeyDirectors:    {Title: "Top 10 Directors by Number of Titles", Width: 10, Height: 5, Palette: render.Cubehelix},
}

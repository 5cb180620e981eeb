// Catalog Charts - Streaming Catalog Analytics and Chart Rendering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogcharts

package charts

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"reflect"
	"strings"
	"testing"

	"github.com/tomtom215/catalogcharts/internal/analysis"
	"github.com/tomtom215/catalogcharts/internal/dataset"
	"github.com/tomtom215/catalogcharts/internal/render"
)

const catalogCSV = `show_id,type,title,director,cast,country,date_added,release_year,rating,duration,listed_in
s1,Movie,A,Ava,,India,"September 25, 2021",2019,TV-MA,100 min,"Dramas, International Movies"
s2,TV Show,B,,,United States,,2020,TV-14,2 Seasons,"TV Dramas, Crime TV Shows"
s3,Movie,C,Ben,,United States,,2019,TV-MA,80 min,"Comedies, Dramas"
s4,Movie,D,,,India,,2021,PG,120 min,Dramas
s5,TV Show,E,Ava,,,,2021,TV-MA,1 Season,Crime TV Shows
`

func newTestGenerator(t *testing.T, csv string, opts ...Option) *Generator {
	t.Helper()
	table, err := dataset.LoadReader(strings.NewReader(csv), "test.csv")
	if err != nil {
		t.Fatalf("LoadReader() error = %v", err)
	}
	return NewGenerator(table, render.NewCanvas(render.Options{DPI: 50}), opts...)
}

func TestParseKey(t *testing.T) {
	t.Parallel()

	for _, k := range Keys() {
		got, ok := ParseKey(string(k))
		if !ok || got != k {
			t.Errorf("ParseKey(%q) = %q, %v", k, got, ok)
		}
	}
	for _, bad := range []string{"", "Type", "0", "99", "plot"} {
		if _, ok := ParseKey(bad); ok {
			t.Errorf("ParseKey(%q) should fail", bad)
		}
	}
	if len(Keys()) != 7 {
		t.Errorf("Keys() has %d entries, want 7", len(Keys()))
	}
}

func TestStylesCoverEveryKey(t *testing.T) {
	t.Parallel()

	for _, style := range []Style{WebStyle, MenuStyle} {
		for _, k := range Keys() {
			layout, ok := style[k]
			if !ok || layout.Title == "" || layout.Width <= 0 || layout.Height <= 0 {
				t.Errorf("incomplete layout for %s: %+v", k, layout)
			}
		}
	}
	if WebStyle[KeyType].Title == MenuStyle[KeyType].Title {
		t.Error("menu and web titles for type should differ")
	}
}

func TestImageEveryKey(t *testing.T) {
	g := newTestGenerator(t, catalogCSV)

	for _, k := range Keys() {
		t.Run(string(k), func(t *testing.T) {
			img, err := g.Image(context.Background(), k)
			if err != nil {
				t.Fatalf("Image(%s) error = %v", k, err)
			}
			cfg, err := png.DecodeConfig(bytes.NewReader(img))
			if err != nil {
				t.Fatalf("Image(%s) is not a PNG: %v", k, err)
			}
			layout := WebStyle[k]
			if cfg.Width != int(layout.Width*50) || cfg.Height != int(layout.Height*50) {
				t.Errorf("size = %dx%d, want %vx%v inches at 50 DPI", cfg.Width, cfg.Height, layout.Width, layout.Height)
			}
		})
	}
}

func TestImageInvalidSelection(t *testing.T) {
	g := newTestGenerator(t, catalogCSV)

	for _, k := range []Key{"", "0", "99", "wordcloud"} {
		if _, err := g.Image(context.Background(), k); !errors.Is(err, ErrInvalidSelection) {
			t.Errorf("Image(%q) error = %v, want ErrInvalidSelection", k, err)
		}
		if _, err := g.Data(k); !errors.Is(err, ErrInvalidSelection) {
			t.Errorf("Data(%q) error = %v, want ErrInvalidSelection", k, err)
		}
	}
}

func TestFigureKinds(t *testing.T) {
	g := newTestGenerator(t, catalogCSV)

	tests := map[Key]string{
		KeyType:         "*render.BarFigure",
		KeyCountries:    "*render.HorizontalBarFigure",
		KeyReleaseTrend: "*render.LineFigure",
		KeyGenres:       "*render.HorizontalBarFigure",
		KeyRatings:      "*render.BarFigure",
		KeyDuration:     "*render.BarFigure",
		KeyDirectors:    "*render.HorizontalBarFigure",
	}
	for k, want := range tests {
		fig, err := g.Figure(k)
		if err != nil {
			t.Fatalf("Figure(%s) error = %v", k, err)
		}
		if got := reflect.TypeOf(fig).String(); got != want {
			t.Errorf("Figure(%s) = %s, want %s", k, got, want)
		}
	}

	fig, _ := g.Figure(KeyDuration)
	bar := fig.(*render.BarFigure)
	if !reflect.DeepEqual(bar.Labels, []string{MoviesBarLabel, ShowsBarLabel}) {
		t.Errorf("duration labels = %v", bar.Labels)
	}
	if bar.Values[0] != 100 || bar.Values[1] != 1.5 {
		t.Errorf("duration values = %v, want [100 1.5]", bar.Values)
	}

	fig, _ = g.Figure(KeyRatings)
	if fig.(*render.BarFigure).LabelRotation != 45 {
		t.Error("rating labels should be rotated 45 degrees")
	}
}

func TestDataDuration(t *testing.T) {
	g := newTestGenerator(t, "type,director,cast,country,date_added,release_year,rating,duration,listed_in\n"+
		"Movie,,,,,,,90 min,\n"+
		"TV Show,,,,,,,2 Seasons,\n")

	data, err := g.Data(KeyDuration)
	if err != nil {
		t.Fatal(err)
	}
	d := data.(DurationData)
	if d.MovieMinutes == nil || *d.MovieMinutes != 90.0 {
		t.Errorf("MovieMinutes = %v, want 90", d.MovieMinutes)
	}
	if d.ShowSeasons == nil || *d.ShowSeasons != 2.0 {
		t.Errorf("ShowSeasons = %v, want 2", d.ShowSeasons)
	}
	if got := g.DurationSummary(); got != "🎥 Avg Movie Duration: 90.00 mins | 📺 Avg TV Show Seasons: 2.00" {
		t.Errorf("DurationSummary() = %q", got)
	}
}

func TestDataDurationWithoutShows(t *testing.T) {
	g := newTestGenerator(t, "type,director,cast,country,date_added,release_year,rating,duration,listed_in\n"+
		"Movie,,,,,,,90 min,\n")

	data, _ := g.Data(KeyDuration)
	if d := data.(DurationData); d.ShowSeasons != nil {
		t.Errorf("ShowSeasons = %v, want nil", *d.ShowSeasons)
	}

	// The NaN mean still renders, as an empty bar.
	if _, err := g.Image(context.Background(), KeyDuration); err != nil {
		t.Errorf("Image(duration) error = %v", err)
	}
}

func TestDataIdempotent(t *testing.T) {
	g := newTestGenerator(t, catalogCSV)

	for _, k := range Keys() {
		a, err := g.Data(k)
		if err != nil {
			t.Fatal(err)
		}
		b, _ := g.Data(k)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Data(%s) differs between calls", k)
		}
	}

	top, _ := g.Data(KeyDirectors)
	want := analysis.Counts{{Label: "Ava", Count: 2}, {Label: "Ben", Count: 1}}
	if !reflect.DeepEqual(top, want) {
		t.Errorf("Data(directors) = %v, want %v", top, want)
	}
}

func TestCatalogAndMenuStyle(t *testing.T) {
	web := newTestGenerator(t, catalogCSV)
	menu := newTestGenerator(t, catalogCSV, WithStyle(MenuStyle))

	infos := web.Catalog()
	if len(infos) != 7 || infos[0].Key != KeyType || infos[6].Key != KeyDirectors {
		t.Fatalf("Catalog() = %+v", infos)
	}
	if infos[2].Path != "/plot/release_trend" {
		t.Errorf("Path = %q", infos[2].Path)
	}
	if menu.Catalog()[1].Title != "Top 10 Countries by Content" {
		t.Errorf("menu title = %q", menu.Catalog()[1].Title)
	}
	if !strings.Contains(web.SchemaSummary(), "Entries: 5") {
		t.Errorf("SchemaSummary() = %s", web.SchemaSummary())
	}
}

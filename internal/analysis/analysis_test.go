// Catalog Charts - Streaming Catalog Analytics and Chart Rendering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogcharts

package analysis

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/tomtom215/catalogcharts/internal/dataset"
)

const testHeader = "type,director,country,release_year,rating,duration,listed_in,cast,date_added\n"

// tableFrom builds a table from CSV lines that follow testHeader.
func tableFrom(t *testing.T, lines ...string) *dataset.Table {
	t.Helper()
	csv := testHeader + strings.Join(lines, "\n") + "\n"
	table, err := dataset.LoadReader(strings.NewReader(csv), "test.csv")
	if err != nil {
		t.Fatalf("LoadReader() error = %v", err)
	}
	return table
}

func catalog(t *testing.T) *dataset.Table {
	return tableFrom(t,
		`Movie,Ava,India,2019,TV-MA,100 min,"Dramas, International Movies",,`,
		`TV Show,,United States,2020,TV-14,2 Seasons,"TV Dramas, Crime TV Shows",,`,
		`Movie,Ben,United States,2019,TV-MA,80 min,"Comedies, Dramas",,`,
		`Movie,,India,2021,PG,120 min,Dramas,,`,
		`TV Show,Ava,,2021,TV-MA,1 Season,"Crime TV Shows",,`,
		`Movie,Cal,Japan,,,,"Anime Features, , Comedies",,`,
	)
}

func TestAverageDuration_EndToEnd(t *testing.T) {
	table := tableFrom(t,
		`Movie,,,,,90 min,,,`,
		`TV Show,,,,,2 Seasons,,,`,
	)

	got := AverageDuration(table)
	if got.Movie != 90.0 {
		t.Errorf("Movie mean = %v, want 90.0", got.Movie)
	}
	if got.Show != 2.0 {
		t.Errorf("Show mean = %v, want 2.0", got.Show)
	}
	if got.MovieCount != 1 || got.ShowCount != 1 {
		t.Errorf("counts = %d/%d, want 1/1", got.MovieCount, got.ShowCount)
	}
}

func TestAverageDuration_PerType(t *testing.T) {
	got := AverageDuration(catalog(t))

	if got.Movie != 100.0 {
		t.Errorf("Movie mean = %v, want 100 (100, 80, 120; missing duration skipped)", got.Movie)
	}
	if got.Show != 1.5 {
		t.Errorf("Show mean = %v, want 1.5", got.Show)
	}
	if got.MovieCount != 3 || got.ShowCount != 2 {
		t.Errorf("counts = %d/%d, want 3/2", got.MovieCount, got.ShowCount)
	}
}

func TestAverageDuration_NoShows(t *testing.T) {
	got := AverageDuration(tableFrom(t, `Movie,,,,,45 min,,,`))
	if !math.IsNaN(got.Show) {
		t.Errorf("Show mean = %v, want NaN when there are no shows", got.Show)
	}
	if got.Movie != 45 {
		t.Errorf("Movie mean = %v, want 45", got.Movie)
	}
}

func TestTypeDistribution_FirstSeen(t *testing.T) {
	got := TypeDistribution(catalog(t))
	want := Counts{{"Movie", 4}, {"TV Show", 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TypeDistribution() = %v, want %v", got, want)
	}

	got = TypeDistribution(tableFrom(t, `TV Show,,,,,,,,`, `Movie,,,,,,,,`, `Movie,,,,,,,,`))
	if got[0].Label != "TV Show" {
		t.Errorf("order should follow first appearance, got %v", got)
	}
}

func TestTopCountries(t *testing.T) {
	got := TopCountries(catalog(t), TopCountriesN)
	want := Counts{{"India", 2}, {"United States", 2}, {"Unknown", 1}, {"Japan", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopCountries() = %v, want %v", got, want)
	}
}

func TestTopN_Bounds(t *testing.T) {
	lines := make([]string, 0, 30)
	for i := 0; i < 30; i++ {
		country := string(rune('A' + i%26))
		lines = append(lines, "Movie,Dir"+country+","+country+",2000,PG,90 min,Genre"+country+",,")
	}
	table := tableFrom(t, lines...)

	tests := []struct {
		name string
		got  Counts
		n    int
	}{
		{"countries", TopCountries(table, TopCountriesN), TopCountriesN},
		{"genres", GenreDistribution(table, TopGenresN), TopGenresN},
		{"directors", TopDirectors(table, TopDirectorsN), TopDirectorsN},
		{"small n", TopCountries(table, 3), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.got) > tt.n {
				t.Errorf("len = %d, want <= %d", len(tt.got), tt.n)
			}
			for i := 1; i < len(tt.got); i++ {
				if tt.got[i].Count > tt.got[i-1].Count {
					t.Errorf("not descending at %d: %v", i, tt.got)
				}
			}
		})
	}

	// A..D appear twice, so they lead; the rest keep table order.
	got := TopCountries(table, 6)
	wantLabels := []string{"A", "B", "C", "D", "E", "F"}
	if !reflect.DeepEqual(got.Labels(), wantLabels) {
		t.Errorf("labels = %v, want %v", got.Labels(), wantLabels)
	}
	if got[0].Count != 2 || got[4].Count != 1 {
		t.Errorf("counts = %v", got)
	}

	if len(TopCountries(table, 0)) != 0 {
		t.Error("n = 0 should yield no entries")
	}
}

func TestTopDirectors_ExcludesUnknown(t *testing.T) {
	table := tableFrom(t,
		`Movie,,,,,,,,`,
		`Movie,,,,,,,,`,
		`Movie,,,,,,,,`,
		`Movie,Zoe,,,,,,,`,
		`Movie,Yan,,,,,,,`,
		`Movie,Zoe,,,,,,,`,
	)

	got := TopDirectors(table, TopDirectorsN)
	want := Counts{{"Zoe", 2}, {"Yan", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopDirectors() = %v, want %v", got, want)
	}
	for _, c := range got {
		if c.Label == dataset.Unknown {
			t.Error("Unknown must never appear in top directors")
		}
	}
}

func TestGenreDistribution(t *testing.T) {
	got := GenreDistribution(catalog(t), TopGenresN)
	want := Counts{
		{"Dramas", 3},
		{"Crime TV Shows", 2},
		{"Comedies", 2},
		{"International Movies", 1},
		{"TV Dramas", 1},
		{"Anime Features", 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GenreDistribution() = %v, want %v", got, want)
	}
}

func TestRatingDistribution(t *testing.T) {
	got := RatingDistribution(catalog(t))
	want := Counts{{"TV-MA", 3}, {"TV-14", 1}, {"PG", 1}, {"Unknown", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RatingDistribution() = %v, want %v", got, want)
	}
	if got.Total() != 6 {
		t.Errorf("Total() = %d, want 6", got.Total())
	}
}

func TestReleaseTrend(t *testing.T) {
	got := ReleaseTrend(catalog(t))
	want := []YearCount{{2019, 2}, {2020, 1}, {2021, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReleaseTrend() = %v, want %v", got, want)
	}

	gap := ReleaseTrend(tableFrom(t, `Movie,,,1990,,,,,`, `Movie,,,2000,,,,,`))
	if len(gap) != 2 {
		t.Errorf("missing years must not be filled: %v", gap)
	}
}

func TestAggregationsIdempotent(t *testing.T) {
	table := catalog(t)

	checks := map[string]func() interface{}{
		"type":      func() interface{} { return TypeDistribution(table) },
		"countries": func() interface{} { return TopCountries(table, TopCountriesN) },
		"trend":     func() interface{} { return ReleaseTrend(table) },
		"genres":    func() interface{} { return GenreDistribution(table, TopGenresN) },
		"ratings":   func() interface{} { return RatingDistribution(table) },
		"duration":  func() interface{} { return AverageDuration(table) },
		"directors": func() interface{} { return TopDirectors(table, TopDirectorsN) },
		"summary":   func() interface{} { return Summary(table) },
	}
	for name, fn := range checks {
		if a, b := fn(), fn(); !reflect.DeepEqual(a, b) {
			t.Errorf("%s: results differ between calls: %v vs %v", name, a, b)
		}
	}
}

func TestFormatDurationSummary(t *testing.T) {
	t.Parallel()

	got := FormatDurationSummary(DurationMeans{Movie: 99.5776, Show: 1.7648})
	want := "🎥 Avg Movie Duration: 99.58 mins | 📺 Avg TV Show Seasons: 1.76"
	if got != want {
		t.Errorf("FormatDurationSummary() = %q, want %q", got, want)
	}
}

func TestSummary(t *testing.T) {
	out := Summary(catalog(t))

	for _, want := range []string{
		"Source: test.csv",
		"Entries: 6 (0 to 5)",
		"Data columns (total 12 columns):",
		"director",
		"6 non-null",
		"duration_type",
		"Kinds: date(1), float(1), int(2), string(8)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Summary() missing %q:\n%s", want, out)
		}
	}
}

func TestCountsHelpers(t *testing.T) {
	t.Parallel()

	c := Counts{{"a", 3}, {"b", 1}}
	if !reflect.DeepEqual(c.Labels(), []string{"a", "b"}) {
		t.Errorf("Labels() = %v", c.Labels())
	}
	if !reflect.DeepEqual(c.Values(), []float64{3, 1}) {
		t.Errorf("Values() = %v", c.Values())
	}
}

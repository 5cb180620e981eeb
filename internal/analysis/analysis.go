// Catalog Charts - Streaming Catalog Analytics and Chart Rendering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogcharts

package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/tomtom215/catalogcharts/internal/dataset"
)

// Default sizes of the ranked charts.
const (
	TopCountriesN = 10
	TopGenresN    = 15
	TopDirectorsN = 10
)

// genreSeparator splits the listed_in column.
const genreSeparator = ", "

// YearCount is the number of titles released in one year.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// DurationMeans holds the average duration_num per content type. A mean is
// NaN when its type has no row with a numeric duration.
type DurationMeans struct {
	Movie      float64
	Show       float64
	MovieCount int
	ShowCount  int
}

// TypeDistribution counts rows per content type in first-seen order.
func TypeDistribution(t *dataset.Table) Counts {
	c := newTally()
	t.Each(func(row dataset.Title) {
		c.add(row.Type)
	})
	return c.firstSeen()
}

// TopCountries returns the n countries with the most titles.
func TopCountries(t *dataset.Table, n int) Counts {
	c := newTally()
	t.Each(func(row dataset.Title) {
		c.add(row.Country)
	})
	return c.top(n)
}

// ReleaseTrend counts titles per release year, oldest first. Rows without
// a release year are skipped and missing years are not filled in.
func ReleaseTrend(t *dataset.Table) []YearCount {
	byYear := make(map[int]int)
	t.Each(func(row dataset.Title) {
		if row.HasReleaseYear {
			byYear[row.ReleaseYear]++
		}
	})

	out := make([]YearCount, 0, len(byYear))
	for year, n := range byYear {
		out = append(out, YearCount{Year: year, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// GenreDistribution splits listed_in on ", " and returns the n most common
// genres. Blank genres are ignored.
func GenreDistribution(t *dataset.Table, n int) Counts {
	c := newTally()
	t.Each(func(row dataset.Title) {
		for _, genre := range strings.Split(row.ListedIn, genreSeparator) {
			if genre = strings.TrimSpace(genre); genre != "" {
				c.add(genre)
			}
		}
	})
	return c.top(n)
}

// RatingDistribution counts every rating, most frequent first.
func RatingDistribution(t *dataset.Table) Counts {
	c := newTally()
	t.Each(func(row dataset.Title) {
		c.add(row.Rating)
	})
	return c.descending()
}

// AverageDuration averages duration_num separately over movies and TV
// shows. Rows of other types are ignored.
func AverageDuration(t *dataset.Table) DurationMeans {
	var movieSum, showSum float64
	var m DurationMeans
	t.Each(func(row dataset.Title) {
		if !row.HasDurationNum {
			return
		}
		switch row.Type {
		case dataset.TypeMovie:
			movieSum += row.DurationNum
			m.MovieCount++
		case dataset.TypeTVShow:
			showSum += row.DurationNum
			m.ShowCount++
		}
	})
	m.Movie = mean(movieSum, m.MovieCount)
	m.Show = mean(showSum, m.ShowCount)
	return m
}

func mean(sum float64, n int) float64 {
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// TopDirectors returns the n directors with the most titles, never
// including Unknown.
func TopDirectors(t *dataset.Table, n int) Counts {
	c := newTally()
	t.Each(func(row dataset.Title) {
		if row.Director != dataset.Unknown {
			c.add(row.Director)
		}
	})
	return c.top(n)
}

// FormatDurationSummary renders the duration means as one line of text.
func FormatDurationSummary(m DurationMeans) string {
	return fmt.Sprintf("🎥 Avg Movie Duration: %.2f mins | 📺 Avg TV Show Seasons: %.2f", m.Movie, m.Show)
}

// Catalog Charts - Streaming Catalog Analytics and Chart Rendering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogcharts

package dataset

import "time"

// Unknown replaces missing categorical values during cleaning.
const Unknown = "Unknown"

// Content types found in the catalog's type column.
const (
	TypeMovie  = "Movie"
	TypeTVShow = "TV Show"
)

// DurationType says whether Duration counts minutes or seasons.
type DurationType string

const (
	Minutes DurationType = "Minutes"
	Seasons DurationType = "Seasons"
)

// Title is one cleaned catalog row.
type Title struct {
	ShowID      string
	Type        string
	Title       string
	Director    string
	Cast        string
	Country     string
	DateAdded   time.Time // zero when absent or unparseable
	ReleaseYear int
	Rating      string
	Duration    string
	ListedIn    string
	Description string

	HasReleaseYear bool

	// Derived at load.
	DurationNum    float64
	HasDurationNum bool
	DurationType   DurationType
	Decade         int // valid only when HasReleaseYear
}

// HasDateAdded reports whether date_added parsed to a calendar date.
func (t *Title) HasDateAdded() bool {
	return !t.DateAdded.IsZero()
}

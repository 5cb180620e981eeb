// Catalog Charts - Streaming Catalog Analytics and Chart Rendering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogcharts

// Package dataset loads and cleans the title catalog CSV.
//
// Loading runs once at startup. The resulting *Table is read-only and is
// passed explicitly to everything that aggregates over it.
//
//	table, err := dataset.Load(cfg.Dataset.Path)
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load dataset")
//	}
package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/tomtom215/catalogcharts/internal/logging"
	"github.com/tomtom215/catalogcharts/internal/metrics"
)

// RequiredColumns must all be present in the CSV header.
var RequiredColumns = []string{
	"type", "director", "cast", "country", "date_added",
	"release_year", "rating", "duration", "listed_in",
}

// filledColumns get Unknown in place of missing values.
var filledColumns = map[string]bool{
	"type":     true,
	"director": true,
	"cast":     true,
	"country":  true,
	"rating":   true,
}

var nanValues = []string{"", "NA", "NaN", "<nil>"}

var dateLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"2006-01-02",
	"2 January 2006",
}

var digitRun = regexp.MustCompile(`\d+`)

// ErrMissingColumn is wrapped by FileError when a required column is absent.
var ErrMissingColumn = errors.New("missing required column")

// FileError reports a catalog that could not be opened or parsed.
type FileError struct {
	Path  string
	Op    string // "open" or "parse"
	Cause error
}

// Error implements the error interface.
func (e *FileError) Error() string {
	return fmt.Sprintf("dataset %s %s: %v", e.Op, e.Path, e.Cause)
}

// Unwrap returns the underlying cause for error unwrapping.
func (e *FileError) Unwrap() error {
	return e.Cause
}

// Load opens path and delegates to LoadReader.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Op: "open", Cause: err}
	}
	defer f.Close()

	return LoadReader(f, path)
}

// LoadReader parses CSV from r and cleans it. source is only used for
// error messages and Table.Source.
func LoadReader(r io.Reader, source string) (*Table, error) {
	start := time.Now()

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &FileError{Path: source, Op: "open", Cause: err}
	}

	df := dataframe.ReadCSV(bytes.NewReader(raw),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nanValues),
	)

	var f *frame
	if df.Err != nil {
		// gota rejects a header with no records; that is still a valid,
		// empty catalog.
		header, ok := headerOnly(raw)
		if !ok {
			return nil, &FileError{Path: source, Op: "parse", Cause: df.Err}
		}
		f = emptyFrame(header)
	} else {
		f = newFrame(df)
	}
	for _, col := range RequiredColumns {
		if !f.has(col) {
			return nil, &FileError{
				Path:  source,
				Op:    "parse",
				Cause: fmt.Errorf("%w: %s", ErrMissingColumn, col),
			}
		}
	}

	rows := make([]Title, f.nrow)
	for i := range rows {
		rows[i] = f.title(i)
	}

	t := &Table{
		rows:     rows,
		columns:  f.schema(rows),
		source:   source,
		loadedAt: time.Now(),
	}

	elapsed := time.Since(start)
	metrics.RecordDatasetLoad(len(rows), elapsed)
	logging.Debug().
		Str("source", source).
		Int("rows", len(rows)).
		Dur("elapsed", elapsed).
		Msg("Dataset parsed")

	return t, nil
}

type column struct {
	values  []string
	missing []bool
}

// frame is the string view of a gota DataFrame used while building rows.
type frame struct {
	names []string
	cols  map[string]column
	nrow  int
}

func newFrame(df dataframe.DataFrame) *frame {
	names := df.Names()
	f := &frame{
		names: names,
		cols:  make(map[string]column, len(names)),
		nrow:  df.Nrow(),
	}
	for _, name := range names {
		s := df.Col(name)
		f.cols[name] = column{values: s.Records(), missing: s.IsNaN()}
	}
	return f
}

func emptyFrame(names []string) *frame {
	f := &frame{names: names, cols: make(map[string]column, len(names))}
	for _, name := range names {
		f.cols[name] = column{}
	}
	return f
}

// headerOnly returns the header when raw holds exactly one CSV record.
func headerOnly(raw []byte) ([]string, bool) {
	records, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	if err != nil || len(records) != 1 {
		return nil, false
	}
	header := records[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	return header, true
}

func (f *frame) has(name string) bool {
	_, ok := f.cols[name]
	return ok
}

// text returns the raw cell, or "" when missing or the column is absent.
func (f *frame) text(name string, i int) string {
	c, ok := f.cols[name]
	if !ok || c.missing[i] {
		return ""
	}
	return c.values[i]
}

func (f *frame) filled(name string, i int) string {
	if v := f.text(name, i); v != "" {
		return v
	}
	return Unknown
}

func (f *frame) title(i int) Title {
	t := Title{
		ShowID:      f.text("show_id", i),
		Type:        f.filled("type", i),
		Title:       f.text("title", i),
		Director:    f.filled("director", i),
		Cast:        f.filled("cast", i),
		Country:     f.filled("country", i),
		DateAdded:   parseDate(f.text("date_added", i)),
		Rating:      f.filled("rating", i),
		Duration:    f.text("duration", i),
		ListedIn:    f.text("listed_in", i),
		Description: f.text("description", i),
	}

	t.ReleaseYear, t.HasReleaseYear = parseYear(f.text("release_year", i))
	if t.HasReleaseYear {
		t.Decade = t.ReleaseYear / 10 * 10
	}

	t.DurationNum, t.HasDurationNum = parseDurationNum(t.Duration)
	t.DurationType = classifyDuration(t.Duration)
	return t
}

func (f *frame) schema(rows []Title) []ColumnInfo {
	var dated, years, nums int
	for i := range rows {
		if rows[i].HasDateAdded() {
			dated++
		}
		if rows[i].HasReleaseYear {
			years++
		}
		if rows[i].HasDurationNum {
			nums++
		}
	}

	cols := make([]ColumnInfo, 0, len(f.names)+3)
	for _, name := range f.names {
		info := ColumnInfo{Name: name, Kind: KindString}
		switch {
		case name == "date_added":
			info.Kind, info.NonNull = KindDate, dated
		case name == "release_year":
			info.Kind, info.NonNull = KindInt, years
		case filledColumns[name]:
			info.NonNull = f.nrow
		default:
			for _, m := range f.cols[name].missing {
				if !m {
					info.NonNull++
				}
			}
		}
		cols = append(cols, info)
	}

	return append(cols,
		ColumnInfo{Name: "duration_num", NonNull: nums, Kind: KindFloat},
		ColumnInfo{Name: "duration_type", NonNull: f.nrow, Kind: KindString},
		ColumnInfo{Name: "decade", NonNull: years, Kind: KindInt},
	)
}

// parseDate returns the zero time for anything it cannot read.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d
		}
	}
	return time.Time{}
}

func parseYear(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if y, err := strconv.Atoi(s); err == nil {
		return y, true
	}
	// Spreadsheet exports sometimes write years as 2019.0.
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return int(f), true
	}
	return 0, false
}

// parseDurationNum extracts the first run of digits as a float, so runs
// too long for an int still count.
func parseDurationNum(s string) (float64, bool) {
	m := digitRun.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func classifyDuration(s string) DurationType {
	if strings.Contains(strings.ToLower(s), "season") {
		return Seasons
	}
	return Minutes
}

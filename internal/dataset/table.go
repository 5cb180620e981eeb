// Catalog Charts - Streaming Catalog Analytics and Chart Rendering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogcharts

package dataset

import "time"

// Column kinds reported by Table.Columns.
const (
	KindString = "string"
	KindInt    = "int"
	KindFloat  = "float"
	KindDate   = "date"
)

// ColumnInfo describes one column of the cleaned table.
type ColumnInfo struct {
	Name    string
	NonNull int
	Kind    string
}

// Table is the cleaned catalog. It is never modified after Load returns,
// so concurrent readers need no locking.
type Table struct {
	rows     []Title
	columns  []ColumnInfo
	source   string
	loadedAt time.Time
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns a copy of every row.
func (t *Table) Rows() []Title {
	out := make([]Title, len(t.rows))
	copy(out, t.rows)
	return out
}

// Each calls fn for every row in file order.
func (t *Table) Each(fn func(Title)) {
	for i := range t.rows {
		fn(t.rows[i])
	}
}

// Columns returns the column schema: source columns in file order followed
// by the derived duration_num, duration_type and decade columns.
func (t *Table) Columns() []ColumnInfo {
	out := make([]ColumnInfo, len(t.columns))
	copy(out, t.columns)
	return out
}

// Source is the path or label the table was loaded from.
func (t *Table) Source() string {
	return t.source
}

// LoadedAt is when loading finished.
func (t *Table) LoadedAt() time.Time {
	return t.loadedAt
}

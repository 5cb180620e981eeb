// Catalog Charts - Streaming Catalog Analytics and Chart Rendering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogcharts

package analysis

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/tomtom215/catalogcharts/internal/dataset"
)

// Summary describes the cleaned table's shape: row count, every column with
// its non-null count and kind, and a tally of kinds.
//
//	Source: netflix_titles.csv
//	Entries: 8807 (0 to 8806)
//	Data columns (total 15 columns):
//	 #   Column        Non-Null Count  Kind
//	---  ------        --------------  ----
//	 0   show_id       8807 non-null   string
//	...
//	Kinds: date(1), float(1), int(2), string(11)
func Summary(t *dataset.Table) string {
	var b strings.Builder
	cols := t.Columns()

	fmt.Fprintf(&b, "Source: %s\n", t.Source())
	if t.Len() == 0 {
		b.WriteString("Entries: 0\n")
	} else {
		fmt.Fprintf(&b, "Entries: %d (0 to %d)\n", t.Len(), t.Len()-1)
	}
	fmt.Fprintf(&b, "Data columns (total %d columns):\n", len(cols))

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, " #\tColumn\tNon-Null Count\tKind")
	fmt.Fprintln(tw, "---\t------\t--------------\t----")
	kinds := make(map[string]int)
	for i, c := range cols {
		fmt.Fprintf(tw, " %d\t%s\t%d non-null\t%s\n", i, c.Name, c.NonNull, c.Kind)
		kinds[c.Kind]++
	}
	_ = tw.Flush()

	names := make([]string, 0, len(kinds))
	for k := range kinds {
		names = append(names, k)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, k := range names {
		parts[i] = fmt.Sprintf("%s(%d)", k, kinds[k])
	}
	fmt.Fprintf(&b, "Kinds: %s\n", strings.Join(parts, ", "))

	return b.String()
}

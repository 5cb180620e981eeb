// Catalog Charts - Streaming Catalog Analytics and Chart Rendering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogcharts

// Package analysis computes the catalog aggregates behind every chart.
//
// All functions are pure: they read a *dataset.Table and return fresh
// values, so calling one twice on the same table gives identical results.
// Ties in ranked output keep the order in which labels first appear in the
// table.
package analysis

import "sort"

// Count is one labelled tally.
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Counts is an ordered list of tallies.
type Counts []Count

// Labels returns the labels in order.
func (c Counts) Labels() []string {
	out := make([]string, len(c))
	for i := range c {
		out[i] = c[i].Label
	}
	return out
}

// Values returns the counts in order as float64 for plotting.
func (c Counts) Values() []float64 {
	out := make([]float64, len(c))
	for i := range c {
		out[i] = float64(c[i].Count)
	}
	return out
}

// Total sums every count.
func (c Counts) Total() int {
	total := 0
	for i := range c {
		total += c[i].Count
	}
	return total
}

// tally counts labels and remembers first-seen order.
type tally struct {
	index  map[string]int
	counts Counts
}

func newTally() *tally {
	return &tally{index: make(map[string]int)}
}

func (t *tally) add(label string) {
	if i, ok := t.index[label]; ok {
		t.counts[i].Count++
		return
	}
	t.index[label] = len(t.counts)
	t.counts = append(t.counts, Count{Label: label, Count: 1})
}

// firstSeen returns counts in first-seen order.
func (t *tally) firstSeen() Counts {
	out := make(Counts, len(t.counts))
	copy(out, t.counts)
	return out
}

// descending returns counts by descending count, ties in first-seen order.
func (t *tally) descending() Counts {
	out := t.firstSeen()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// top returns at most n of the highest counts. n <= 0 yields no entries.
func (t *tally) top(n int) Counts {
	out := t.descending()
	if n <= 0 {
		return Counts{}
	}
	if len(out) > n {
		out = out[:n]
	}
	return out
}

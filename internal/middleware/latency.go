// Catalog Charts - Streaming Catalog Analytics and Chart Rendering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogcharts

package middleware

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/tomtom215/catalogcharts/internal/logging"
)

// DefaultSlowThreshold flags requests slower than a typical full-size render.
const DefaultSlowThreshold = time.Second

// Sample is one observed request.
type Sample struct {
	Route    string
	Method   string
	Status   int
	Duration time.Duration
	At       time.Time
}

// RouteStats summarises the samples of one route.
type RouteStats struct {
	Route    string  `json:"route"`
	Requests int     `json:"requests"`
	AvgMS    float64 `json:"avg_ms"`
	P50MS    int64   `json:"p50_ms"`
	P95MS    int64   `json:"p95_ms"`
	P99MS    int64   `json:"p99_ms"`
	MaxMS    int64   `json:"max_ms"`
}

// LatencyTracker keeps the most recent request samples.
type LatencyTracker struct {
	mu      sync.RWMutex
	samples []Sample
	limit   int
	slow    time.Duration
}

// NewLatencyTracker keeps up to limit samples and warns about requests
// slower than slow. Non-positive arguments take defaults.
func NewLatencyTracker(limit int, slow time.Duration) *LatencyTracker {
	if limit <= 0 {
		limit = 1000
	}
	if slow <= 0 {
		slow = DefaultSlowThreshold
	}
	return &LatencyTracker{
		samples: make([]Sample, 0, limit),
		limit:   limit,
		slow:    slow,
	}
}

// Record adds a sample, evicting the oldest when full.
func (t *LatencyTracker) Record(s Sample) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.samples) == t.limit {
		copy(t.samples, t.samples[1:])
		t.samples = t.samples[:t.limit-1]
	}
	t.samples = append(t.samples, s)
}

// Len returns the number of samples held.
func (t *LatencyTracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.samples)
}

// Stats groups samples by "METHOD route", busiest first.
func (t *LatencyTracker) Stats() []RouteStats {
	t.mu.RLock()
	byRoute := make(map[string][]int64)
	for _, s := range t.samples {
		key := s.Method + " " + s.Route
		byRoute[key] = append(byRoute[key], s.Duration.Milliseconds())
	}
	t.mu.RUnlock()

	stats := make([]RouteStats, 0, len(byRoute))
	for route, ms := range byRoute {
		sort.Slice(ms, func(i, j int) bool { return ms[i] < ms[j] })
		var sum int64
		for _, d := range ms {
			sum += d
		}
		stats = append(stats, RouteStats{
			Route:    route,
			Requests: len(ms),
			AvgMS:    float64(sum) / float64(len(ms)),
			P50MS:    percentile(ms, 0.50),
			P95MS:    percentile(ms, 0.95),
			P99MS:    percentile(ms, 0.99),
			MaxMS:    ms[len(ms)-1],
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Requests != stats[j].Requests {
			return stats[i].Requests > stats[j].Requests
		}
		return stats[i].Route < stats[j].Route
	})
	return stats
}

// Middleware records every request and logs slow ones.
func (t *LatencyTracker) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := newStatusWriter(w)
		next.ServeHTTP(rw, r)
		elapsed := time.Since(start)

		route := routePattern(r)
		t.Record(Sample{
			Route:    route,
			Method:   r.Method,
			Status:   rw.status,
			Duration: elapsed,
			At:       start,
		})

		if elapsed > t.slow {
			logging.Ctx(r.Context()).Warn().
				Str("method", r.Method).
				Str("route", route).
				Int64("duration_ms", elapsed.Milliseconds()).
				Int64("threshold_ms", t.slow.Milliseconds()).
				Msg("Slow request detected")
		}
	})
}

// percentile picks from an ascending slice by nearest rank below.
func percentile(sorted []int64, p float64) int64 {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[int(float64(len(sorted)-1)*p)]
}

// Catalog Charts - Streaming Catalog Analytics and Chart Rendering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogcharts

/*
Package middleware provides the HTTP middleware shared by every route.

All middleware uses the chi signature func(http.Handler) http.Handler and is
mounted with r.Use:

  - RequestID: X-Request-ID propagation plus request/correlation IDs in the
    logging context
  - Metrics: Prometheus request counters, latency histograms and the active
    request gauge, labelled by chi route pattern
  - LatencyTracker: sliding window of recent request latencies with
    per-route percentiles, reported by the full health endpoint

Typical stack:

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(tracker.Middleware)

Route patterns are read after the handler has run, so the endpoint label is
"/plot/{key}" rather than one series per key.
*/
package middleware

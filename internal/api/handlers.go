// Catalog Charts - Streaming Catalog Analytics and Chart Rendering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogcharts

package api

import (
	"time"

	"github.com/tomtom215/catalogcharts/internal/charts"
	"github.com/tomtom215/catalogcharts/internal/dataset"
	"github.com/tomtom215/catalogcharts/internal/middleware"
	"github.com/tomtom215/catalogcharts/internal/render"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_plot.go: /plot/{key}
//   - handlers_charts.go: chart list and chart data
//   - handlers_health.go: health probes
//   - handlers_helpers.go: shared response helpers
type Handler struct {
	table     *dataset.Table
	canvas    *render.Canvas
	generator *charts.Generator
	latency   *middleware.LatencyTracker
	startTime time.Time
}

// NewHandler creates a handler serving charts over table. The canvas is
// shared with every other renderer in the process.
//
// Example:
//
//	handler := api.NewHandler(table, canvas)
//	router := api.NewRouter(handler, api.DefaultChiMiddlewareConfig())
//	http.ListenAndServe(":5000", router.SetupChi())
func NewHandler(table *dataset.Table, canvas *render.Canvas) *Handler {
	return &Handler{
		table:     table,
		canvas:    canvas,
		generator: charts.NewGenerator(table, canvas),
		latency:   middleware.NewLatencyTracker(1000, middleware.DefaultSlowThreshold),
		startTime: time.Now(),
	}
}

// Latency exposes the request latency tracker for the router.
func (h *Handler) Latency() *middleware.LatencyTracker {
	return h.latency
}

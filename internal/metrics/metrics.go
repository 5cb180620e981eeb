// Catalog Charts - Streaming Catalog Analytics and Chart Rendering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogcharts

/*
Package metrics exposes Prometheus instrumentation for the HTTP layer, chart
rendering and the one-time dataset load.

Metrics are served at /metrics in Prometheus text format:

	curl http://localhost:5000/metrics
*/
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Chart Metrics
	ChartRenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chart_render_duration_seconds",
			Help:    "Time spent drawing and encoding one chart, including wait for the canvas",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"chart"},
	)

	ChartRenderErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chart_render_errors_total",
			Help: "Total number of failed chart renders",
		},
		[]string{"chart"},
	)

	// Dataset Metrics
	DatasetRows = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_rows",
			Help: "Number of title rows in the loaded catalog",
		},
	)

	DatasetLoadDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_load_duration_seconds",
			Help: "Time taken to read and clean the catalog at startup",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordChartRender records one render attempt for the named chart.
func RecordChartRender(chart string, duration time.Duration, err error) {
	ChartRenderDuration.WithLabelValues(chart).Observe(duration.Seconds())
	if err != nil {
		ChartRenderErrors.WithLabelValues(chart).Inc()
	}
}

// RecordDatasetLoad records the size and load time of the catalog.
func RecordDatasetLoad(rows int, duration time.Duration) {
	DatasetRows.Set(float64(rows))
	DatasetLoadDuration.Set(duration.Seconds())
}

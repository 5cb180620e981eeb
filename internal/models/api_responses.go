// Catalog Charts - Streaming Catalog Analytics and Chart Rendering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogcharts

// Package models defines the JSON shapes returned over HTTP.
package models

import (
	"time"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error codes.
const (
	CodeInvalidSelection = "INVALID_SELECTION"
	CodeRenderFailed     = "RENDER_FAILED"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeRateLimited      = "RATE_LIMIT_EXCEEDED"
	CodeInternal         = "INTERNAL_ERROR"
)

// APIResponse wraps every /api/v1 response.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": [{"label": "Movie", "count": 6131}, {"label": "TV Show", "count": 2676}],
//	  "metadata": {"timestamp": "2026-10-19T12:00:00Z", "query_time_ms": 3}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "metadata": {"timestamp": "2026-10-19T12:00:00Z"},
//	  "error": {"code": "INVALID_SELECTION", "message": "Invalid choice"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata describes how the response was produced.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	RequestID   string    `json:"request_id,omitempty"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError is the error detail of an APIResponse.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// PlotResponse is the body of a successful /plot/{key} request. Image is
// the base64-encoded PNG.
type PlotResponse struct {
	Image string `json:"image"`
}

// PlotError is the body of a failed /plot/{key} request. The plot routes
// keep this flat shape instead of the APIResponse envelope.
type PlotError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ChartList is the data of GET /api/v1/charts.
type ChartList struct {
	Charts []ChartInfo `json:"charts"`
	Count  int         `json:"count"`
}

// ChartInfo describes one chart.
type ChartInfo struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	PlotURL string `json:"plot_url"`
	DataURL string `json:"data_url"`
}

// ChartData is the data of GET /api/v1/charts/{key}/data.
type ChartData struct {
	Key    string      `json:"key"`
	Title  string      `json:"title"`
	Values interface{} `json:"values"`
}

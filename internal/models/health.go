// Catalog Charts - Streaming Catalog Analytics and Chart Rendering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogcharts

package models

import "time"

// HealthStatus is the data of GET /api/v1/health.
type HealthStatus struct {
	Status   string        `json:"status"`
	Version  string        `json:"version"`
	Uptime   float64       `json:"uptime"`
	Dataset  DatasetHealth `json:"dataset"`
	Renderer RenderHealth  `json:"renderer"`
	Routes   interface{}   `json:"routes,omitempty"`
}

// DatasetHealth describes the loaded catalog.
type DatasetHealth struct {
	Source   string    `json:"source"`
	Rows     int       `json:"rows"`
	Columns  int       `json:"columns"`
	LoadedAt time.Time `json:"loaded_at"`
}

// RenderHealth describes the shared canvas.
type RenderHealth struct {
	Busy     bool   `json:"busy"`
	Current  string `json:"current,omitempty"`
	Renders  uint64 `json:"renders"`
	Buffered int    `json:"buffered_bytes"`
}

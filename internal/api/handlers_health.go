// Catalog Charts - Streaming Catalog Analytics and Chart Rendering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogcharts

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/catalogcharts/internal/models"
)

// Health reports dataset, renderer and route latency status.
//
// GET /api/v1/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	if h.table.Len() == 0 {
		status = "degraded"
	}

	current, buffered, renders := h.canvas.Stats()
	health := models.HealthStatus{
		Status:  status,
		Version: Version,
		Uptime:  time.Since(h.startTime).Seconds(),
		Dataset: models.DatasetHealth{
			Source:   h.table.Source(),
			Rows:     h.table.Len(),
			Columns:  len(h.table.Columns()),
			LoadedAt: h.table.LoadedAt(),
		},
		Renderer: models.RenderHealth{
			Busy:     current != "",
			Current:  current,
			Renders:  renders,
			Buffered: buffered,
		},
	}
	if stats := h.latency.Stats(); len(stats) > 0 {
		health.Routes = stats
	}

	respondJSON(w, r, http.StatusOK, health, time.Time{})
}

// HealthLive returns 200 while the process is up.
//
// GET /api/v1/health/live
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, time.Time{})
}

// HealthReady returns 200 once a non-empty catalog is loaded, 503 otherwise.
//
// GET /api/v1/health/ready
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rows := h.table.Len()
	statusCode := http.StatusOK
	if rows == 0 {
		statusCode = http.StatusServiceUnavailable
	}

	respondJSON(w, r, statusCode, map[string]interface{}{
		"ready_to_serve": rows > 0,
		"rows":           rows,
		"uptime":         time.Since(h.startTime).Seconds(),
	}, time.Time{})
}

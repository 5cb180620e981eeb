// Catalog Charts - Streaming Catalog Analytics and Chart Rendering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogcharts

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/catalogcharts/internal/charts"
	"github.com/tomtom215/catalogcharts/internal/models"
)

// Charts lists the available charts.
//
// GET /api/v1/charts
func (h *Handler) Charts(w http.ResponseWriter, r *http.Request) {
	catalog := h.generator.Catalog()
	list := models.ChartList{
		Charts: make([]models.ChartInfo, 0, len(catalog)),
		Count:  len(catalog),
	}
	for _, info := range catalog {
		list.Charts = append(list.Charts, models.ChartInfo{
			Key:     string(info.Key),
			Title:   info.Title,
			PlotURL: info.Path,
			DataURL: "/api/v1/charts/" + string(info.Key) + "/data",
		})
	}
	respondJSON(w, r, http.StatusOK, list, time.Time{})
}

// ChartData returns the aggregate behind one chart without rendering it.
//
// GET /api/v1/charts/{key}/data
func (h *Handler) ChartData(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	raw := chi.URLParam(r, "key")
	key, ok := charts.ParseKey(raw)
	if !ok {
		valid := make([]string, 0, len(charts.Keys()))
		for _, k := range charts.Keys() {
			valid = append(valid, string(k))
		}
		respondErrorDetails(w, r, http.StatusNotFound, models.CodeInvalidSelection, msgInvalidChoice,
			map[string]interface{}{
				"key":        sanitizeLogValue(raw),
				"valid_keys": valid,
			})
		return
	}

	values, err := h.generator.Data(key)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, models.CodeInternal, "Failed to aggregate chart data", err)
		return
	}

	var title string
	for _, info := range h.generator.Catalog() {
		if info.Key == key {
			title = info.Title
			break
		}
	}
	respondJSON(w, r, http.StatusOK, models.ChartData{
		Key:    string(key),
		Title:  title,
		Values: values,
	}, start)
}

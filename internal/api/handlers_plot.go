// Catalog Charts - Streaming Catalog Analytics and Chart Rendering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogcharts

package api

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/catalogcharts/internal/charts"
	"github.com/tomtom215/catalogcharts/internal/logging"
	"github.com/tomtom215/catalogcharts/internal/models"
)

// Messages of the flat /plot error body.
const (
	msgInvalidChoice = "Invalid choice"
	msgRenderFailed  = "Failed to render chart"
)

// Plot renders one chart and returns it as base64 PNG.
//
// GET /plot/{key}
func (h *Handler) Plot(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "key")
	key, ok := charts.ParseKey(raw)
	if !ok {
		logging.Ctx(r.Context()).Debug().Str("key", sanitizeLogValue(raw)).Msg("Invalid chart selection")
		writeJSON(w, r, http.StatusNotFound, &models.PlotError{
			Error: msgInvalidChoice,
			Code:  models.CodeInvalidSelection,
		})
		return
	}

	img, err := h.generator.Image(r.Context(), key)
	if err != nil {
		if errors.Is(err, charts.ErrInvalidSelection) {
			writeJSON(w, r, http.StatusNotFound, &models.PlotError{
				Error: msgInvalidChoice,
				Code:  models.CodeInvalidSelection,
			})
			return
		}
		logging.Ctx(r.Context()).Error().Err(err).Str("chart", string(key)).Msg("Plot failed")
		writeJSON(w, r, http.StatusInternalServerError, &models.PlotError{
			Error: msgRenderFailed,
			Code:  models.CodeRenderFailed,
		})
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, &models.PlotResponse{
		Image: base64.StdEncoding.EncodeToString(img),
	})
}

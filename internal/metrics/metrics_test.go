// Catalog Charts - Streaming Catalog Analytics and Chart Rendering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogcharts

package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/plot/type", "200"))

	RecordAPIRequest("GET", "/plot/type", "200", 15*time.Millisecond)
	RecordAPIRequest("GET", "/plot/type", "200", 25*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/plot/type", "200"))
	if after-before != 2 {
		t.Errorf("api_requests_total increased by %v, want 2", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	start := testutil.ToFloat64(APIActiveRequests)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			TrackActiveRequest(true)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(APIActiveRequests); got != start {
		t.Errorf("api_active_requests = %v, want %v after balanced inc/dec", got, start)
	}
}

func TestRecordChartRender(t *testing.T) {
	tests := []struct {
		name       string
		chart      string
		err        error
		wantErrInc float64
	}{
		{"success", "genres", nil, 0},
		{"failure", "ratings", errors.New("encode failed"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(ChartRenderErrors.WithLabelValues(tt.chart))
			RecordChartRender(tt.chart, 40*time.Millisecond, tt.err)
			after := testutil.ToFloat64(ChartRenderErrors.WithLabelValues(tt.chart))
			if after-before != tt.wantErrInc {
				t.Errorf("chart_render_errors_total delta = %v, want %v", after-before, tt.wantErrInc)
			}
		})
	}

	if n := testutil.CollectAndCount(ChartRenderDuration); n == 0 {
		t.Error("chart_render_duration_seconds has no series")
	}
}

func TestRecordDatasetLoad(t *testing.T) {
	RecordDatasetLoad(8807, 1500*time.Millisecond)

	if got := testutil.ToFloat64(DatasetRows); got != 8807 {
		t.Errorf("dataset_rows = %v, want 8807", got)
	}
	if got := testutil.ToFloat64(DatasetLoadDuration); got != 1.5 {
		t.Errorf("dataset_load_duration_seconds = %v, want 1.5", got)
	}
}

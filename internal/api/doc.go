// Catalog Charts - Streaming Catalog Analytics and Chart Rendering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogcharts

/*
Package api provides the HTTP surface of Catalog Charts.

Routes (chi):

	GET /plot/{key}                 {"image": "<base64 PNG>"}
	GET /api/v1/charts              chart list
	GET /api/v1/charts/{key}/data   aggregate behind one chart
	GET /api/v1/health              dataset, renderer and route latency status
	GET /api/v1/health/live         liveness probe
	GET /api/v1/health/ready        readiness probe (503 when the catalog is empty)
	GET /metrics                    Prometheus exposition

The /plot routes keep their flat body shapes, {"image": ...} on success and
{"error": ..., "code": ...} on failure. Everything under /api/v1 uses the
models.APIResponse envelope.

Valid chart keys are type, countries, release_trend, genres, ratings,
duration and directors. Any other key answers 404 with code
INVALID_SELECTION; the server keeps serving.

Middleware order matters: request IDs come first so every later log line
carries them, and CORS is global so OPTIONS preflights reach it before the
method router rejects them.
*/
package api

// Catalog Charts - Streaming Catalog Analytics and Chart Rendering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogcharts

// Package main is the entry point for the Catalog Charts server.
//
// Catalog Charts loads a static streaming catalog CSV once at startup and
// serves seven fixed charts over it as base64 PNGs.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Environment: Load .env if present (godotenv)
//  2. Configuration: Defaults, optional config.yaml, environment (Koanf v2)
//  3. Logging: Global zerolog logger
//  4. Dataset: Read and clean the catalog; any failure is fatal
//  5. Renderer: One shared canvas for every chart
//  6. HTTP Server: chi router run under a suture supervisor tree
//
// # Configuration
//
// Common environment variables:
//   - DATASET_PATH: catalog CSV (default netflix_titles.csv)
//   - HTTP_HOST, HTTP_PORT: listen address (default 0.0.0.0:5000)
//   - CORS_ORIGINS: comma-separated origins (default *)
//   - LOG_LEVEL, LOG_FORMAT: logging (default info, json)
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the supervisor tree, which shuts the HTTP
// server down gracefully.
//
// # Example Usage
//
//	DATASET_PATH=/data/netflix_titles.csv ./server
//	curl -s localhost:5000/plot/genres | jq -r .image | base64 -d > genres.png
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tomtom215/catalogcharts/internal/api"
	"github.com/tomtom215/catalogcharts/internal/config"
	"github.com/tomtom215/catalogcharts/internal/dataset"
	"github.com/tomtom215/catalogcharts/internal/logging"
	"github.com/tomtom215/catalogcharts/internal/render"
	"github.com/tomtom215/catalogcharts/internal/supervisor"
	"github.com/tomtom215/catalogcharts/internal/supervisor/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env is normal outside development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logging.Warn().Err(err).Msg("Failed to read .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(cfg.LoggingOptions())

	logging.Info().
		Str("dataset", cfg.Dataset.Path).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Catalog Charts")

	table, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Dataset.Path).Msg("Failed to load dataset")
	}
	logging.Info().
		Int("rows", table.Len()).
		Int("columns", len(table.Columns())).
		Msg("Dataset loaded")

	canvas := render.NewCanvas(render.Options{
		Width:  cfg.Render.Width,
		Height: cfg.Render.Height,
		DPI:    cfg.Render.DPI,
	})

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if cfg.IsProduction() && len(cfg.Security.CORSOrigins) == 1 && cfg.Security.CORSOrigins[0] == "*" {
		logging.Warn().Msg("CORS allows any origin in production; set CORS_ORIGINS to restrict it")
	}

	handler := api.NewHandler(table, canvas)
	router := api.NewRouter(handler, api.ChiMiddlewareConfigFrom(cfg.Security))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  shutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, shutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	if err := <-tree.ServeBackground(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Err(err).Msg("Supervisor tree error")
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}
	logging.Info().Msg("Application stopped gracefully")
}

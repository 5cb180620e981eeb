// Catalog Charts - Streaming Catalog Analytics and Chart Rendering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogcharts

// Package render turns chart descriptions into PNG images.
//
// A single Canvas is shared by the whole process. Each Render call is a
// critical section: acquire the surface, draw, encode, copy the bytes out,
// then reset the surface. The reset runs on every exit path, including
// errors and panics raised by the drawing library, so one render can never
// leak a title or half-drawn figure into the next.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/catalogcharts/internal/logging"
	"github.com/tomtom215/catalogcharts/internal/metrics"
)

var (
	// ErrEmptyFigure is returned for a figure with no data to draw.
	ErrEmptyFigure = errors.New("figure has no data")

	// ErrRenderPanic wraps a panic raised while drawing.
	ErrRenderPanic = errors.New("chart renderer panicked")
)

// Options sizes the canvas.
type Options struct {
	Width  int
	Height int
	DPI    float64
}

// DefaultOptions matches the default render configuration.
func DefaultOptions() Options {
	return Options{Width: 1000, Height: 600, DPI: 100}
}

// Canvas is the process-wide drawing surface.
type Canvas struct {
	opts Options
	log  zerolog.Logger

	mu  sync.Mutex // held for a whole draw and encode
	buf bytes.Buffer

	// Readable by Stats without waiting on mu.
	current  atomic.Pointer[string] // chart being drawn, nil when idle
	buffered atomic.Int64
	renders  atomic.Uint64
}

// countingWriter mirrors the surface size into Canvas.buffered.
type countingWriter struct {
	c *Canvas
}

func (w countingWriter) Write(p []byte) (int, error) {
	n, err := w.c.buf.Write(p)
	w.c.buffered.Add(int64(n))
	return n, err
}

// NewCanvas creates a canvas; zero options take DefaultOptions values.
func NewCanvas(opts Options) *Canvas {
	def := DefaultOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.DPI <= 0 {
		opts.DPI = def.DPI
	}
	return &Canvas{opts: opts, log: logging.WithComponent("render")}
}

// Options returns the canvas defaults.
func (c *Canvas) Options() Options {
	return c.opts
}

// Render draws fig and returns the encoded PNG. Calls are serialised.
func (c *Canvas) Render(ctx context.Context, fig Figure) (img []byte, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if fig == nil {
		return nil, ErrEmptyFigure
	}
	fr := fig.frame()
	if fig.empty() {
		metrics.RecordChartRender(fr.Chart, 0, ErrEmptyFigure)
		return nil, fmt.Errorf("render %s: %w", fr.Chart, ErrEmptyFigure)
	}

	start := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()

	chart := fr.Chart
	c.current.Store(&chart)
	defer func() {
		if r := recover(); r != nil {
			img = nil
			err = fmt.Errorf("render %s: %w: %v", fr.Chart, ErrRenderPanic, r)
		}
		c.reset()
		metrics.RecordChartRender(fr.Chart, time.Since(start), err)
		if err != nil {
			c.log.Warn().
				Err(err).
				Str("chart", fr.Chart).
				Str("request_id", logging.RequestIDFromContext(ctx)).
				Msg("Chart render failed")
		}
	}()

	if err := fig.draw(countingWriter{c}, c.sizeFor(fr.Size), c.opts.DPI); err != nil {
		return nil, fmt.Errorf("render %s: %w", fr.Chart, err)
	}
	c.renders.Add(1)
	return bytes.Clone(c.buf.Bytes()), nil
}

// reset clears the surface. Caller holds mu.
func (c *Canvas) reset() {
	c.buf.Reset()
	c.buffered.Store(0)
	c.current.Store(nil)
}

// Inches converts a figure size in inches to pixels at the canvas DPI.
func (c *Canvas) Inches(width, height float64) Size {
	return Size{
		Width:  int(width * c.opts.DPI),
		Height: int(height * c.opts.DPI),
	}
}

func (c *Canvas) sizeFor(s Size) Size {
	if s.Width <= 0 {
		s.Width = c.opts.Width
	}
	if s.Height <= 0 {
		s.Height = c.opts.Height
	}
	return s
}

// Stats reports the surface state: the chart in progress ("" when idle),
// bytes written to the surface so far, and successful renders. It never
// waits for a render to finish.
func (c *Canvas) Stats() (current string, buffered int, renders uint64) {
	if p := c.current.Load(); p != nil {
		current = *p
	}
	return current, int(c.buffered.Load()), c.renders.Load()
}

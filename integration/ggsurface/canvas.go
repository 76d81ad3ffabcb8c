// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsurface

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/sketch"
)

var _ sketch.Surface = (*gg.Context)(nil)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("ggsurface: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("ggsurface: invalid dimensions")
)

// statusFontSize is the status line font size in pixels.
const statusFontSize = 13

// Canvas owns a gg drawing context and repaints a controller into it.
type Canvas struct {
	dc         *gg.Context
	background gg.RGBA
	statusFG   gg.RGBA

	status bool
	font   *text.FontSource
	face   text.Face

	closed bool
}

// Option configures a Canvas during creation.
type Option func(*Canvas)

// WithBackground sets the clear color. The default is white.
func WithBackground(c gg.RGBA) Option {
	return func(cv *Canvas) {
		cv.background = c
	}
}

// WithStatusLine enables the tool, shape and selection summary drawn along
// the bottom edge.
func WithStatusLine(on bool) Option {
	return func(cv *Canvas) {
		cv.status = on
	}
}

// New creates a canvas of the given size.
func New(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	cv := &Canvas{
		background: gg.RGB(1, 1, 1),
		statusFG:   gg.RGB(0.2, 0.2, 0.2),
	}
	for _, opt := range opts {
		opt(cv)
	}

	if cv.status {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("ggsurface: status font: %w", err)
		}
		cv.font = src
		cv.face = src.Face(statusFontSize)
	}

	cv.dc = gg.NewContext(width, height)
	sketch.Logger().Debug("ggsurface: canvas created", "width", width, "height", height, "status", cv.status)
	return cv, nil
}

// Context returns the underlying gg context.
func (cv *Canvas) Context() *gg.Context { return cv.dc }

// Width returns the canvas width in pixels.
func (cv *Canvas) Width() int { return cv.dc.Width() }

// Height returns the canvas height in pixels.
func (cv *Canvas) Height() int { return cv.dc.Height() }

// Resize changes the canvas size. Content is repainted by the next Render.
func (cv *Canvas) Resize(width, height int) error {
	if cv.closed {
		return ErrCanvasClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if err := cv.dc.Resize(width, height); err != nil {
		return fmt.Errorf("ggsurface: %w", err)
	}
	return nil
}

// Render clears the canvas and draws every shape held by ctl, followed by
// the status line when enabled.
func (cv *Canvas) Render(ctl *sketch.Controller) error {
	if cv.closed {
		return ErrCanvasClosed
	}
	cv.dc.ClearWithColor(cv.background)
	ctl.RenderAll(cv.dc)

	if cv.status {
		cv.dc.SetDash()
		cv.dc.SetColor(cv.statusFG.Color())
		cv.dc.SetFont(cv.face)
		cv.dc.DrawString(StatusLine(ctl), 8, float64(cv.dc.Height())-8)
	}
	return nil
}

// StatusLine summarizes the controller for display.
func StatusLine(ctl *sketch.Controller) string {
	return fmt.Sprintf("Tool: %s | Shapes: %d | Selected: %d | %s",
		ctl.Kind().Title(), ctl.Registry().Len(), len(ctl.Selection()), ctl.State())
}

// Image returns a copy of the current pixels. gg snapshots its pixmap into
// a fresh *image.RGBA on every call.
func (cv *Canvas) Image() *image.RGBA {
	return cv.dc.Image().(*image.RGBA)
}

// SavePNG writes the canvas to a PNG file.
func (cv *Canvas) SavePNG(path string) error {
	if cv.closed {
		return ErrCanvasClosed
	}
	return cv.dc.SavePNG(path)
}

// EncodePNG writes the canvas as PNG to w.
func (cv *Canvas) EncodePNG(w io.Writer) error {
	if cv.closed {
		return ErrCanvasClosed
	}
	return cv.dc.EncodePNG(w)
}

// Close releases the drawing context and font. It is safe to call more
// than once.
func (cv *Canvas) Close() error {
	if cv.closed {
		return nil
	}
	cv.closed = true

	var errs []error
	if cv.font != nil {
		errs = append(errs, cv.font.Close())
	}
	errs = append(errs, cv.dc.Close())
	return errors.Join(errs...)
}

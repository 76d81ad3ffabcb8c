// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsurface

import (
	"bytes"
	"errors"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/sketch"
)

func drawRect(ctl *sketch.Controller, a, b sketch.Point) {
	_ = ctl.SetKind(sketch.KindRect)
	ctl.PointerDown(sketch.ButtonLeft, a, 0)
	ctl.PointerUp(sketch.ButtonLeft, b, 0)
}

func rgb(cv *Canvas, x, y int) (r, g, b uint8) {
	c := cv.Image().RGBAAt(x, y)
	return c.R, c.G, c.B
}

func TestNew_InvalidDimensions(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		_, err := New(size[0], size[1])
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("New(%d, %d) error = %v, want ErrInvalidDimensions", size[0], size[1], err)
		}
	}
}

func TestRender_StrokesShapes(t *testing.T) {
	cv, err := New(100, 80)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer cv.Close()

	ctl := sketch.NewController()
	drawRect(ctl, sketch.Pt(20, 20), sketch.Pt(80, 60))
	if ctl.Registry().Len() != 1 {
		t.Fatalf("rect not committed")
	}

	if err := cv.Render(ctl); err != nil {
		t.Fatalf("Render: %v", err)
	}

	// left edge of the rect is stroked in the default red
	if r, g, b := rgb(cv, 20, 40); r < 200 || g > 80 || b > 80 {
		t.Errorf("edge pixel = (%d, %d, %d), want red", r, g, b)
	}
	// interior and outside stay background white
	for _, p := range [][2]int{{50, 40}, {5, 5}} {
		if r, g, b := rgb(cv, p[0], p[1]); r != 255 || g != 255 || b != 255 {
			t.Errorf("pixel %v = (%d, %d, %d), want white", p, r, g, b)
		}
	}
}

func TestRender_PanOffset(t *testing.T) {
	cv, err := New(120, 100, WithBackground(gg.RGB(0, 0, 0)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer cv.Close()

	ctl := sketch.NewController()
	drawRect(ctl, sketch.Pt(20, 20), sketch.Pt(60, 60))
	_ = ctl.SetKind(sketch.KindNone)
	ctl.PointerDown(sketch.ButtonLeft, sketch.Pt(0, 0), sketch.ModAlt)
	ctl.PointerMove(sketch.Pt(30, 0), sketch.Buttons(0).With(sketch.ButtonLeft), sketch.ModAlt)
	ctl.PointerUp(sketch.ButtonLeft, sketch.Pt(30, 0), sketch.ModAlt)

	if err := cv.Render(ctl); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if r, _, _ := rgb(cv, 20, 40); r != 0 {
		t.Errorf("old edge pixel red = %d, want background", r)
	}
	if r, _, _ := rgb(cv, 50, 40); r < 200 {
		t.Errorf("panned edge pixel red = %d, want stroke", r)
	}
}

func TestRender_StatusLine(t *testing.T) {
	cv, err := New(320, 60, WithStatusLine(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer cv.Close()

	ctl := sketch.NewController(sketch.WithKind(sketch.KindEllipse))
	if err := cv.Render(ctl); err != nil {
		t.Fatalf("Render: %v", err)
	}

	img := cv.Image()
	inked := false
	for y := 40; y < 60 && !inked; y++ {
		for x := 0; x < 200; x++ {
			if c := img.RGBAAt(x, y); c.R < 200 {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Error("status line drew no text")
	}
}

func TestImage_IsSnapshot(t *testing.T) {
	cv, err := New(30, 20, WithBackground(gg.RGB(0, 0, 1)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer cv.Close()
	if err := cv.Render(sketch.NewController()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	img := cv.Image()
	if b := img.Bounds(); b.Dx() != 30 || b.Dy() != 20 {
		t.Fatalf("Image size = %v, want 30x20", b.Size())
	}
	img.Pix[0], img.Pix[1], img.Pix[2] = 255, 255, 255

	if r, g, b := rgb(cv, 0, 0); r != 0 || g != 0 || b != 255 {
		t.Errorf("canvas pixel after editing snapshot = (%d, %d, %d), want blue", r, g, b)
	}
}

func TestStatusLine(t *testing.T) {
	ctl := sketch.NewController(sketch.WithKind(sketch.KindPolygon))
	got := StatusLine(ctl)
	for _, want := range []string{"Tool: Polygon", "Shapes: 0", "Selected: 0", "idle"} {
		if !strings.Contains(got, want) {
			t.Errorf("StatusLine() = %q, missing %q", got, want)
		}
	}
}

func TestCanvas_PNGAndClose(t *testing.T) {
	cv, err := New(40, 30)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctl := sketch.NewController()
	if err := cv.Render(ctl); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var buf bytes.Buffer
	if err := cv.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("PNG size = %v, want 40x30", b.Size())
	}
	if err := cv.SavePNG(filepath.Join(t.TempDir(), "out.png")); err != nil {
		t.Errorf("SavePNG: %v", err)
	}

	if err := cv.Resize(50, 50); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if cv.Width() != 50 || cv.Height() != 50 {
		t.Errorf("size after Resize = %dx%d, want 50x50", cv.Width(), cv.Height())
	}

	if err := cv.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := cv.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if err := cv.Render(ctl); !errors.Is(err, ErrCanvasClosed) {
		t.Errorf("Render after Close = %v, want ErrCanvasClosed", err)
	}
}

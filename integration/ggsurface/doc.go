// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggsurface renders a sketch.Controller with gg 2D graphics.
//
// *gg.Context already satisfies sketch.Surface; this package adds the
// per-frame work a host needs around it. The data flow is:
//
//	Controller.RenderAll -> gg.Context (draw) -> Pixmap (CPU) -> PNG or window
//
// # Usage
//
//	canvas, err := ggsurface.New(800, 600, ggsurface.WithStatusLine(true))
//	if err != nil {
//		return err
//	}
//	defer canvas.Close()
//
//	ctl := sketch.NewController(sketch.WithKind(sketch.KindRect))
//	// ... feed pointer and key events ...
//	if err := canvas.Render(ctl); err != nil {
//		return err
//	}
//	return canvas.SavePNG("sketch.png")
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. Render from the goroutine that
// delivers events to the Controller.
package ggsurface

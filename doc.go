// Package sketch is an interactive 2D vector-drawing engine.
//
// # Overview
//
// A host feeds raw pointer and key events into a Controller. The Controller
// drives per-shape construction state machines, resolves selection and
// multi-selection by hit testing, moves and drag-resizes selected shapes and
// reports the cursor affordance the host should display. Painting goes
// through the small Surface interface, which *gg.Context satisfies.
//
// # Quick Start
//
//	ctl := sketch.NewController(sketch.WithKind(sketch.KindRect))
//
//	// click-drag-release builds a rectangle
//	ctl.PointerDown(sketch.ButtonLeft, sketch.Pt(10, 10), 0)
//	ctl.PointerMove(sketch.Pt(80, 60), sketch.Buttons(0).With(sketch.ButtonLeft), 0)
//	ctl.PointerUp(sketch.ButtonLeft, sketch.Pt(120, 90), 0)
//
//	dc := gg.NewContext(640, 480)
//	ctl.RenderAll(dc)
//
// # Shapes
//
// Point, Line, Arc, Circle, Rect and Ellipse complete after a fixed number
// of construction steps. Polygon and Polyline accept any number of vertices
// and finish on a right click. Every shape keeps committed geometry and a
// guide mirror used for previews, and snapshots its geometry when a move
// starts so that deltas never accumulate.
//
// # Registry and Selection
//
// The Registry owns every shape and iterates kinds in a fixed order:
// Point, Line, Arc, Polyline, Circle, Rect, Ellipse, Polygon. Hit tests
// return the first match in that order. The Selection holds opaque Handles
// rather than shape references, so a deleted shape can never be reached
// through it.
//
// # Logging
//
// The package logs through a silent slog.Logger by default. Install one
// with SetLogger to see construction steps and discarded shapes.
//
// # Thread Safety
//
// A Controller and everything it owns must be used from a single
// goroutine, normally the host's event loop.
package sketch

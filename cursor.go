package sketch

// Cursor is the pointer affordance the host should display. It tells the
// user which interaction a press at the current position would start.
type Cursor uint8

const (
	// CursorDefault is the crosshair shown over empty canvas. Shape
	// resize tests also return it to mean "no resize zone here".
	CursorDefault Cursor = iota

	// CursorMove is shown over a shape body and while panning.
	CursorMove

	// CursorResizeNS is shown over the top or bottom resize zone.
	CursorResizeNS

	// CursorResizeEW is shown over the left or right resize zone.
	CursorResizeEW

	// CursorResizeNESW is shown over the top-right or bottom-left corner.
	CursorResizeNESW

	// CursorResizeNWSE is shown over the top-left or bottom-right corner.
	CursorResizeNWSE
)

var cursorNames = [...]string{
	CursorDefault:    "crosshair",
	CursorMove:       "move",
	CursorResizeNS:   "ns-resize",
	CursorResizeEW:   "ew-resize",
	CursorResizeNESW: "nesw-resize",
	CursorResizeNWSE: "nwse-resize",
}

// String returns the CSS-style cursor name.
func (c Cursor) String() string {
	if int(c) < len(cursorNames) {
		return cursorNames[c]
	}
	return "unknown"
}

// IsResize reports whether c is one of the four resize affordances.
func (c Cursor) IsResize() bool {
	return c >= CursorResizeNS && c <= CursorResizeNWSE
}

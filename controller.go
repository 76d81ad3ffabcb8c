package sketch

import "fmt"

// State is the interaction state of a Controller.
type State uint8

const (
	StateIdle State = iota
	StateConstructing
	StateMoving
	StateDragResizing
	StatePanning
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConstructing:
		return "constructing"
	case StateMoving:
		return "moving"
	case StateDragResizing:
		return "drag-resizing"
	case StatePanning:
		return "panning"
	default:
		return "unknown"
	}
}

// ShapeInfo is a read-only snapshot of one registry entry.
type ShapeInfo struct {
	Handle   Handle
	Kind     Kind
	Stage    Stage
	Complete bool
	Selected bool
	Bounds   Rect
}

// Controller turns pointer and keyboard events into shape construction,
// selection, moving and resizing. It owns the Registry and the Selection.
//
// All methods run synchronously on the caller's goroutine. Controller is
// not safe for concurrent use; hosts deliver events from one goroutine.
type Controller struct {
	reg      *Registry
	sel      Selection
	kind     Kind
	active   Handle
	drag     State
	cursor   Cursor
	style    Style
	bindings Bindings

	offset    Point
	panStart  Point
	panOrigin Point

	redraw   bool
	onRedraw func()
}

// NewController creates a controller with an empty registry unless
// WithRegistry is given.
func NewController(opts ...ControllerOption) *Controller {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	reg := o.registry
	if reg == nil {
		reg = NewRegistry()
	}
	return &Controller{
		reg:      reg,
		kind:     o.kind,
		style:    o.style,
		bindings: o.bindings,
		onRedraw: o.onRedraw,
	}
}

// SetKind selects the tool used for the next construction. KindNone
// disables construction while keeping selection working.
func (c *Controller) SetKind(k Kind) error {
	if k != KindNone && !k.Valid() {
		err := fmt.Errorf("%w: %v", ErrInvalidShapeKind, k)
		Logger().Error("sketch: set tool", "err", err)
		return err
	}
	if k != c.kind {
		// An unfinished shape stays in the registry and resumes when its
		// tool is selected again.
		c.active = NilHandle
	}
	c.kind = k
	Logger().Debug("sketch: tool selected", "kind", k)
	return nil
}

// Kind returns the active tool.
func (c *Controller) Kind() Kind { return c.kind }

// Registry returns the shapes owned by the controller. Callers must not
// remove shapes behind the controller's back; use DeleteSelected.
func (c *Controller) Registry() *Registry { return c.reg }

// Selection returns the selected handles in selection order.
func (c *Controller) Selection() []Handle { return c.sel.Handles() }

// Cursor returns the pointer affordance the host should display.
func (c *Controller) Cursor() Cursor { return c.cursor }

// Offset returns the current pan offset of the view.
func (c *Controller) Offset() Point { return c.offset }

// Style returns the pens used by RenderAll.
func (c *Controller) Style() Style { return c.style }

// State returns the current interaction state.
func (c *Controller) State() State {
	if c.drag != StateIdle {
		return c.drag
	}
	if c.constructing() {
		return StateConstructing
	}
	return StateIdle
}

// RedrawRequested reports whether a redraw was requested since the last
// call, and clears the request.
func (c *Controller) RedrawRequested() bool {
	r := c.redraw
	c.redraw = false
	return r
}

// Shapes returns a snapshot of every shape in registry order.
func (c *Controller) Shapes() []ShapeInfo {
	out := make([]ShapeInfo, 0, c.reg.Len())
	for h, s := range c.reg.All() {
		out = append(out, ShapeInfo{
			Handle:   h,
			Kind:     s.Kind(),
			Stage:    s.Stage(),
			Complete: s.Complete(),
			Selected: s.Selected(),
			Bounds:   s.Bounds(),
		})
	}
	return out
}

// Shape returns the shape named by h.
func (c *Controller) Shape(h Handle) (Shape, bool) {
	return c.reg.Get(h)
}

// PointerDown handles a button press at screen position pos.
func (c *Controller) PointerDown(b Button, pos Point, mods Modifiers) {
	p := c.toCanvas(pos)

	switch b {
	case ButtonLeft:
		if mods.Has(c.bindings.Pan) && !c.constructing() {
			c.drag = StatePanning
			c.panStart = pos
			c.panOrigin = c.offset
			c.cursor = CursorMove
			return
		}

		if !c.constructing() {
			if mods.Has(c.bindings.MultiSelect) {
				c.toggleAt(p)
				return
			}
			c.selectPress(p)
			if c.sel.Len() > 0 {
				return
			}
		}

		c.construct(p)

	case ButtonRight:
		if c.kind != KindPolygon && c.kind != KindPolyline {
			return
		}
		if s := c.activeShape(); s != nil {
			s.Update(EventConstructionFinished, p)
			Logger().Debug("sketch: construction finished", "kind", s.Kind(), "step", s.Step())
		}
		c.active = NilHandle
		c.requestRedraw()
	}
}

// PointerMove handles pointer motion to screen position pos.
func (c *Controller) PointerMove(pos Point, held Buttons, mods Modifiers) {
	if c.drag == StatePanning {
		c.offset = c.panOrigin.Add(pos.Sub(c.panStart))
		c.cursor = CursorMove
		c.requestRedraw()
		return
	}

	p := c.toCanvas(pos)
	c.updateCursor(p)

	if mods.Has(c.bindings.MultiSelect) {
		return
	}

	switch c.drag {
	case StateDragResizing:
		c.eachSelected(func(_ Handle, s Shape) {
			if r, ok := s.(Resizer); ok {
				r.DragResize(p)
			}
		})
		c.requestRedraw()
		return
	case StateMoving:
		c.eachSelected(func(_ Handle, s Shape) { s.Move(p) })
		c.requestRedraw()
		return
	}

	if s := c.activeShape(); s != nil && !s.Complete() {
		s.Update(EventGuidePreview, p)
		c.requestRedraw()
	}
}

// PointerUp handles a button release at screen position pos.
func (c *Controller) PointerUp(b Button, pos Point, mods Modifiers) {
	if c.drag == StatePanning {
		if b == ButtonLeft {
			c.drag = StateIdle
			c.cursor = CursorDefault
		}
		return
	}
	if b != ButtonLeft || mods.Has(c.bindings.MultiSelect) {
		return
	}

	p := c.toCanvas(pos)

	switch c.drag {
	case StateDragResizing:
		c.eachSelected(func(_ Handle, s Shape) {
			if r, ok := s.(Resizer); ok {
				r.EndResize()
			}
		})
		c.drag = StateIdle
		c.requestRedraw()
		return
	case StateMoving:
		c.eachSelected(func(_ Handle, s Shape) { s.EndMove(p) })
		c.drag = StateIdle
		c.requestRedraw()
		return
	}

	if !c.constructing() && c.selectRelease(p) {
		return
	}

	s := c.activeShape()
	if s == nil {
		return
	}
	switch s.Kind() {
	case KindLine, KindCircle, KindRect, KindEllipse:
		s.Update(EventConstructionFinished, p)
		c.commit(c.active, s)
		c.active = NilHandle
		c.requestRedraw()
	}
}

// KeyDown handles a key press.
func (c *Controller) KeyDown(k Key, mods Modifiers) {
	switch {
	case k == KeyA && mods.Has(c.bindings.SelectAll):
		c.SelectAll()
	case k == KeyDelete:
		c.DeleteSelected()
	}
}

// SelectAll selects every shape in the registry.
func (c *Controller) SelectAll() {
	c.clearSelection()
	for h, s := range c.reg.All() {
		s.SetSelected(true)
		c.sel.Add(h)
	}
	c.requestRedraw()
}

// DeleteSelected removes every selected shape from the registry and
// empties the selection.
func (c *Controller) DeleteSelected() {
	if c.sel.Len() == 0 {
		return
	}
	for _, h := range c.sel.Handles() {
		s, ok := c.reg.Remove(h)
		if !ok {
			Logger().Error("sketch: delete", "err", fmt.Errorf("%w: %s", ErrStaleReference, h))
			continue
		}
		s.SetSelected(false)
		if h == c.active {
			c.active = NilHandle
		}
	}
	c.sel.Clear()
	c.drag = StateIdle
	c.requestRedraw()
}

// RenderAll draws every shape onto s, shifted by the pan offset.
func (c *Controller) RenderAll(s Surface) {
	s.Push()
	defer s.Pop()
	s.Translate(c.offset.X, c.offset.Y)
	for _, shape := range c.reg.All() {
		shape.Render(s, &c.style)
	}
}

func (c *Controller) toCanvas(pos Point) Point {
	return pos.Sub(c.offset)
}

func (c *Controller) requestRedraw() {
	c.redraw = true
	if c.onRedraw != nil {
		c.onRedraw()
	}
}

// activeShape returns the shape last fed a construction event, if it is
// still registered.
func (c *Controller) activeShape() Shape {
	if c.active.IsNil() {
		return nil
	}
	s, ok := c.reg.Get(c.active)
	if !ok {
		c.active = NilHandle
		return nil
	}
	return s
}

func (c *Controller) constructing() bool {
	s := c.activeShape()
	return s != nil && !s.Complete()
}

func (c *Controller) eachSelected(fn func(Handle, Shape)) {
	for _, h := range c.sel.handles {
		s, ok := c.reg.Get(h)
		if !ok {
			Logger().Error("sketch: selection", "err", fmt.Errorf("%w: %s", ErrStaleReference, h))
			continue
		}
		fn(h, s)
	}
}

func (c *Controller) clearSelection() {
	c.eachSelected(func(_ Handle, s Shape) { s.SetSelected(false) })
	c.sel.Clear()
}

func (c *Controller) selectOnly(h Handle, s Shape) {
	c.clearSelection()
	s.SetSelected(true)
	c.sel.Add(h)
}

// toggleAt flips selection of the shape under p.
func (c *Controller) toggleAt(p Point) {
	h, s, ok := c.reg.HitTest(p)
	if !ok {
		return
	}
	s.SetSelected(c.sel.Toggle(h))
	c.requestRedraw()
}

// selectPress resolves a plain press outside construction: it arms a move
// of the hit shape (or of the whole selection when the hit shape is part of
// a multi-selection), arms a resize when the press lands in the resize zone
// of the single selected shape, and otherwise clears the selection.
func (c *Controller) selectPress(p Point) {
	if h, s, ok := c.reg.HitTest(p); ok {
		if c.sel.Len() <= 1 || !c.sel.Has(h) {
			c.selectOnly(h, s)
		}
		c.eachSelected(func(_ Handle, s Shape) { s.BeginMove(p) })
		c.drag = StateMoving
		Logger().Debug("sketch: move armed", "selected", c.sel.Len())
		c.requestRedraw()
		return
	}

	if c.sel.Len() == 1 {
		if s, ok := c.reg.Get(c.sel.handles[0]); ok {
			if r, ok := s.(Resizer); ok && r.BeginResize(p) {
				c.drag = StateDragResizing
				Logger().Debug("sketch: resize armed", "kind", s.Kind())
				return
			}
		}
	}

	if c.sel.Len() > 0 {
		c.clearSelection()
		c.requestRedraw()
	}
}

// selectRelease collapses a multi-selection to the shape under p when that
// shape is part of it. It reports whether p hit any shape.
func (c *Controller) selectRelease(p Point) bool {
	h, s, ok := c.reg.HitTest(p)
	if !ok {
		return false
	}
	if c.sel.Len() > 1 && c.sel.Has(h) {
		c.selectOnly(h, s)
		c.requestRedraw()
	}
	return true
}

// construct feeds a press to the shape under construction, creating and
// registering a new one when the active tool has none in progress.
func (c *Controller) construct(p Point) {
	if !c.kind.Valid() {
		return
	}

	h, s, ok := c.reg.Last(c.kind)
	if !ok || s.Complete() {
		var err error
		if s, err = NewShape(c.kind); err != nil {
			return
		}
		if h, err = c.reg.Append(c.kind, s); err != nil {
			Logger().Error("sketch: register shape", "err", err)
			return
		}
	}
	c.active = h

	s.Update(EventConstructing, p)
	if s.Complete() {
		c.commit(h, s)
		c.requestRedraw()
	}
}

// commit discards a just-completed shape whose geometry is degenerate.
func (c *Controller) commit(h Handle, s Shape) {
	if !s.Complete() || s.Valid() {
		return
	}
	Logger().Warn("sketch: discarding shape",
		"kind", s.Kind(), "err", ErrDegenerateGeometry, "bounds", s.Bounds())
	c.reg.Remove(h)
	c.sel.Remove(h)
	if c.active == h {
		c.active = NilHandle
	}
}

// updateCursor recomputes the hover affordance: move over a shape body,
// the resize direction over a resize zone, the crosshair elsewhere. The
// scan is skipped while a move or resize drag is in progress.
func (c *Controller) updateCursor(p Point) {
	if c.drag == StateMoving || c.drag == StateDragResizing {
		return
	}
	c.cursor = CursorDefault
	for _, s := range c.reg.All() {
		if !s.Complete() {
			continue
		}
		if s.Contains(p) {
			c.cursor = CursorMove
			return
		}
		if r, ok := s.(Resizer); ok {
			if cur := r.ResizeCursorAt(p); cur != CursorDefault {
				c.cursor = cur
				return
			}
		}
	}
}

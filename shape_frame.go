package sketch

// frame is the rectangle geometry shared by RectShape and EllipseShape:
// construction from two opposite corners, validation, moving and
// drag-resizing. The owning shape supplies the bookkeeping state.
type frame struct {
	anchor   Point
	rect     Rect
	guide    Rect
	old      Rect
	hasGuide bool

	// affordance armed for the current resize drag
	resize   Cursor
	resizing bool
}

func (f *frame) construct(st *shapeState, ev Event, p Point) {
	switch st.stage {
	case StageAwaitingCorner:
		if ev != EventConstructing {
			return
		}
		f.anchor = p
		f.guide = RectFromCorners(p, p)
		f.hasGuide = true
		st.advance(StageAwaitingOppositeCorner)
	case StageAwaitingOppositeCorner:
		switch ev {
		case EventConstructing, EventConstructionFinished:
			f.rect = RectFromCorners(f.anchor, p)
			f.guide = f.rect
			f.hasGuide = false
			st.invalid = f.rect.Width() < RectDelta || f.rect.Height() < RectDelta
			st.advance(StageComplete)
		case EventGuidePreview:
			f.guide = RectFromCorners(f.anchor, p)
		}
	}
}

func (f *frame) snapshot(st *shapeState, p Point) {
	st.beginMove(p)
	f.old = f.rect
}

func (f *frame) translate(st *shapeState, p Point) {
	f.rect = f.old.Translate(st.moveDelta(p))
	f.guide = f.rect
}

func (f *frame) cursorAt(st *shapeState, p Point) Cursor {
	if !st.Complete() {
		return CursorDefault
	}
	return ResizeCursorAt(f.rect, p, RectDelta)
}

func (f *frame) armResize(st *shapeState, p Point) bool {
	c := f.cursorAt(st, p)
	if !c.IsResize() {
		return false
	}
	f.resize = c
	f.resizing = true
	return true
}

func (f *frame) dragResize(p Point) {
	if !f.resizing {
		return
	}
	f.rect = DragResizeRect(f.rect, f.resize, p, RectDelta)
	f.guide = f.rect
}

func (f *frame) endResize() {
	f.resizing = false
	f.resize = CursorDefault
}

// RectShape is an axis-aligned rectangle dragged out from one corner to the
// opposite one.
type RectShape struct {
	shapeState
	frame
}

// NewRect returns an empty rectangle awaiting its first corner.
func NewRect() *RectShape {
	return &RectShape{shapeState: newShapeState(KindRect, StageAwaitingCorner)}
}

// Rect returns the committed, normalized rectangle.
func (s *RectShape) Rect() Rect { return s.rect }

func (s *RectShape) Update(ev Event, p Point)      { s.construct(&s.shapeState, ev, p) }
func (s *RectShape) Contains(p Point) bool         { return s.rect.Contains(p) }
func (s *RectShape) Bounds() Rect                  { return s.rect }
func (s *RectShape) BeginMove(p Point)             { s.snapshot(&s.shapeState, p) }
func (s *RectShape) Move(p Point)                  { s.translate(&s.shapeState, p) }
func (s *RectShape) ResizeCursorAt(p Point) Cursor { return s.cursorAt(&s.shapeState, p) }
func (s *RectShape) BeginResize(p Point) bool      { return s.armResize(&s.shapeState, p) }
func (s *RectShape) DragResize(p Point)            { s.dragResize(p) }
func (s *RectShape) EndResize()                    { s.endResize() }
func (s *RectShape) Resizing() bool                { return s.resizing }

func (s *RectShape) EndMove(p Point) {
	s.Move(p)
	s.moving = false
}

func (s *RectShape) Render(surface Surface, st *Style) {
	pn := pen{s: surface, st: st}

	if s.selected {
		switch {
		case s.resizing:
			pn.guide()
			pn.rect(s.guide)
		case s.moving:
			pn.markers(s.guide.Min, s.guide.Max)
			pn.guide()
			pn.rect(s.guide)
		default:
			pn.guide()
			pn.rect(s.guide)
			h := s.guide.Handles()
			pn.markers(h[:]...)
		}
		return
	}

	if s.hasGuide {
		pn.markers(s.guide.Min, s.guide.Max)
		pn.guide()
		pn.rect(s.guide)
	}

	if s.Complete() {
		pn.solid()
		pn.rect(s.rect)
	}
}

// EllipseShape is the ellipse inscribed in a rectangle dragged out like a
// RectShape. Hit-testing and resizing use the bounding rectangle.
type EllipseShape struct {
	shapeState
	frame
}

// NewEllipse returns an empty ellipse awaiting its first bounding corner.
func NewEllipse() *EllipseShape {
	return &EllipseShape{shapeState: newShapeState(KindEllipse, StageAwaitingCorner)}
}

// Rect returns the committed bounding rectangle.
func (s *EllipseShape) Rect() Rect { return s.rect }

func (s *EllipseShape) Update(ev Event, p Point)      { s.construct(&s.shapeState, ev, p) }
func (s *EllipseShape) Contains(p Point) bool         { return s.rect.Contains(p) }
func (s *EllipseShape) Bounds() Rect                  { return s.rect }
func (s *EllipseShape) BeginMove(p Point)             { s.snapshot(&s.shapeState, p) }
func (s *EllipseShape) Move(p Point)                  { s.translate(&s.shapeState, p) }
func (s *EllipseShape) ResizeCursorAt(p Point) Cursor { return s.cursorAt(&s.shapeState, p) }
func (s *EllipseShape) BeginResize(p Point) bool      { return s.armResize(&s.shapeState, p) }
func (s *EllipseShape) DragResize(p Point)            { s.dragResize(p) }
func (s *EllipseShape) EndResize()                    { s.endResize() }
func (s *EllipseShape) Resizing() bool                { return s.resizing }

func (s *EllipseShape) EndMove(p Point) {
	s.Move(p)
	s.moving = false
}

func (s *EllipseShape) Render(surface Surface, st *Style) {
	pn := pen{s: surface, st: st}

	if s.selected && s.moving {
		pn.markers(s.guide.Center())
		pn.guide()
		pn.ellipse(s.guide)
		return
	}

	if s.hasGuide {
		c := s.guide.Center()
		pn.markers(c)
		pn.guide()
		pn.ellipse(s.guide)
		pn.line(Point{X: s.guide.Min.X, Y: c.Y}, Point{X: s.guide.Max.X, Y: c.Y})
		pn.line(Point{X: c.X, Y: s.guide.Min.Y}, Point{X: c.X, Y: s.guide.Max.Y})
	}

	if s.Complete() {
		pn.solid()
		pn.ellipse(s.rect)
		if s.selected {
			pn.guide()
			pn.rect(s.rect)
			h := s.rect.Handles()
			pn.markers(h[:]...)
		}
	}
}

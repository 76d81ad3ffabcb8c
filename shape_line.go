package sketch

// LineShape is a straight segment: pressed at one end, released at the
// other.
type LineShape struct {
	shapeState
	a, b     Point
	old      [2]Point
	guide    [2]Point
	hasGuide bool
}

// NewLine returns an empty line awaiting its first endpoint.
func NewLine() *LineShape {
	return &LineShape{shapeState: newShapeState(KindLine, StageAwaitingStart)}
}

// Endpoints returns the committed endpoints.
func (s *LineShape) Endpoints() (Point, Point) { return s.a, s.b }

func (s *LineShape) Update(ev Event, p Point) {
	switch s.stage {
	case StageAwaitingStart:
		if ev != EventConstructing {
			return
		}
		s.a = p
		s.guide = [2]Point{p, p}
		s.advance(StageAwaitingEnd)
	case StageAwaitingEnd:
		switch ev {
		case EventConstructing, EventConstructionFinished:
			s.b = p
			s.guide = [2]Point{s.a, s.b}
			s.hasGuide = false
			s.advance(StageComplete)
		case EventGuidePreview:
			s.guide[1] = p
			s.hasGuide = true
		}
	}
}

// Contains reports whether p is within LineDelta of the segment, measured
// perpendicular to it. Points past either endpoint are outside.
func (s *LineShape) Contains(p Point) bool {
	d, ok := segmentDistance(s.a, s.b, p)
	return ok && d <= LineDelta
}

func (s *LineShape) Bounds() Rect {
	return boundsOf(s.a, s.b)
}

func (s *LineShape) BeginMove(p Point) {
	s.beginMove(p)
	s.old = [2]Point{s.a, s.b}
}

func (s *LineShape) Move(p Point) {
	d := s.moveDelta(p)
	s.a = s.old[0].Add(d)
	s.b = s.old[1].Add(d)
	s.guide = [2]Point{s.a, s.b}
}

func (s *LineShape) EndMove(p Point) {
	s.Move(p)
	s.moving = false
}

func (s *LineShape) Render(surface Surface, st *Style) {
	pn := pen{s: surface, st: st}

	if s.selected && s.moving {
		pn.guide()
		pn.line(s.guide[0], s.guide[1])
		return
	}

	if s.stage == StageAwaitingEnd && s.hasGuide {
		pn.guide()
		pn.line(s.guide[0], s.guide[1])
	}

	if s.Complete() {
		pn.solid()
		pn.line(s.a, s.b)
		if s.selected {
			pn.markers(s.a, s.b)
		}
	}
}
